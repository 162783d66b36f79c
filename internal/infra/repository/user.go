package repository

import (
	"context"
	"time"

	"parkbuddy/internal/domain/user"
	"parkbuddy/internal/infra"
	"parkbuddy/internal/infra/repository/converter"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	GetUserActiveForShare(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLastLoginParams) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a new account. A taken email surfaces as KindDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, u *user.User, now time.Time) (*user.User, error) {
	row, err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u, now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return converter.UserFromRow(row)
}

func (r *UserRepository) ActiveForShare(ctx context.Context, id uuid.UUID) (bool, error) {
	active, err := r.queries.GetUserActiveForShare(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to lock user", err)
	}
	return active, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.queries.UpdateLastLogin(ctx, r.db, sqlc.UpdateLastLoginParams{
		ID:        id,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
