//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"parkbuddy/internal/domain/user"
	"parkbuddy/internal/infra"
	sqlc "parkbuddy/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) GetUserActiveForShare(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLastLoginParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

// sqlc.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestCreateUser(t *testing.T) {
	at := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	email, _ := user.NewEmail("new@example.com")
	fullName, _ := user.NewFullName("New Driver")
	phone, _ := user.NewPhone("+15551234567")

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
		},
		{
			name:      "email taken",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := user.NewUser(email, fullName, phone, "hashed", user.RoleUser)
			row := sqlc.Users{
				ID:           u.ID(),
				Email:        "new@example.com",
				FullName:     "New Driver",
				Phone:        pgtype.Text{String: "+15551234567", Valid: true},
				PasswordHash: "hashed",
				Role:         "user",
				IsActive:     true,
				CreatedAt:    pgtype.Timestamptz{Time: at, Valid: true},
				UpdatedAt:    pgtype.Timestamptz{Time: at, Valid: true},
			}
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateUserParams) bool {
				return arg.ID == u.ID() &&
					arg.Email == "new@example.com" &&
					arg.Phone.Valid && arg.Phone.String == "+15551234567" &&
					arg.Role == "user" && arg.IsActive &&
					arg.CreatedAt.Time.Equal(at)
			})).Return(row, tt.mockError)

			repo := NewUserRepository(mockQueries, mockQueries)

			created, err := repo.Create(context.Background(), u, at)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.Equal(t, u.ID(), created.ID())
				assert.True(t, created.CreatedAt().Equal(at))
				assert.Equal(t, "+15551234567", created.Phone().Value())
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	at := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateLastLogin", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpdateLastLoginParams) bool {
				return arg.ID == testUserID && arg.LastLogin.Valid && arg.LastLogin.Time.Equal(at)
			})).Return(tt.mockError)

			repo := NewUserRepository(mockQueries, mockQueries)

			err := repo.UpdateLastLogin(context.Background(), testUserID, at)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestActiveForShare(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name       string
		active     bool
		mockError  error
		wantActive bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "active user",
			active:     true,
			wantActive: true,
		},
		{
			name:       "blocked user",
			active:     false,
			wantActive: false,
		},
		{
			name:      "user deleted",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("GetUserActiveForShare", mock.Anything, mock.Anything, testUserID).Return(tt.active, tt.mockError)

			repo := NewUserRepository(mockQueries, mockQueries)

			active, err := repo.ActiveForShare(context.Background(), testUserID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantActive, active)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
