//go:build unit

package queries_test

import (
	"context"
	"testing"

	"parkbuddy/internal/usecase/queries"
	"parkbuddy/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*queries.UserView), args.Error(1)
}

func (m *MockUserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*queries.UserView), args.Error(1)
}

func TestGetAuthorizedUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success: blocked user still resolves", func(t *testing.T) {
		view := builder.NewUserBuilder().AsInactive().BuildView()
		store := new(MockUserReadStore)
		store.On("FindByID", mock.Anything, view.ID).Return(view, nil)

		got, err := queries.NewUserQueries(store).GetAuthorizedUser(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
		assert.False(t, got.IsActive)
	})

	t.Run("error: unknown user", func(t *testing.T) {
		id := uuid.New()
		store := new(MockUserReadStore)
		store.On("FindByID", mock.Anything, id).Return((*queries.UserView)(nil), notFound())

		_, err := queries.NewUserQueries(store).GetAuthorizedUser(ctx, id)

		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}
