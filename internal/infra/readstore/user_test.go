//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"parkbuddy/internal/infra"
	sqlc "parkbuddy/internal/infra/sqlc/generated"
	"parkbuddy/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	noPhone := builder.NewUserBuilder().WithoutPhone().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlc.Users
		mockError  error
		wantPhone  bool
		wantError  bool
	}{
		{
			name:       "success - user with phone",
			userID:     testUser.ID,
			mockReturn: testUser,
			wantPhone:  true,
		},
		{
			name:       "success - blocked user without phone",
			userID:     noPhone.ID,
			mockReturn: noPhone,
			wantPhone:  false,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: sqlc.Users{},
			mockError:  sql.ErrNoRows,
			wantError:  true,
		},
		{
			name:       "database error",
			userID:     testUser.ID,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)

				if tt.mockError == sql.ErrNoRows {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				} else {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, tt.mockReturn.Email, view.Email)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Equal(t, tt.wantPhone, view.Phone != nil)
				assert.Nil(t, view.LastLogin)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestListUsers(t *testing.T) {
	rows := []sqlc.Users{
		builder.NewUserBuilder().WithEmail("a@example.com").BuildInfra(),
		builder.NewUserBuilder().WithEmail("b@example.com").AsAdmin().BuildInfra(),
	}

	t.Run("success - rows mapped in order", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("ListUsers", mock.Anything, mock.Anything).Return(rows, nil)

		views, err := NewUserReadStore(mockQueries, nil).List(context.Background())

		assert.NoError(t, err)
		if assert.Len(t, views, 2) {
			assert.Equal(t, "a@example.com", views[0].Email)
			assert.Equal(t, "admin", views[1].Role)
		}
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("ListUsers", mock.Anything, mock.Anything).Return([]sqlc.Users(nil), assert.AnError)

		views, err := NewUserReadStore(mockQueries, nil).List(context.Background())

		assert.Error(t, err)
		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
