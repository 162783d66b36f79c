package converter

import (
	"time"

	"parkbuddy/internal/domain/user"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/pgconv"
)

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	fullName, err := user.NewFullName(row.FullName)
	if err != nil {
		return nil, err
	}
	var phone user.Phone
	if row.Phone.Valid {
		if phone, err = user.NewPhone(row.Phone.String); err != nil {
			return nil, err
		}
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		email,
		fullName,
		phone,
		row.PasswordHash,
		role,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func UserToCreateParams(u *user.User, now time.Time) sqlc.CreateUserParams {
	var phone *string
	if !u.Phone().IsZero() {
		v := u.Phone().Value()
		phone = &v
	}
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		FullName:     u.FullName().Value(),
		Phone:        pgconv.StringPtrToPgtype(phone),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(now),
	}
}
