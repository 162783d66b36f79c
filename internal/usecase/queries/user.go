package queries

import (
	"context"

	"parkbuddy/internal/infra"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	// GetAuthorizedUser resolves a token subject. Blocked users still resolve
	// so they can release what they hold.
	GetAuthorizedUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	ListUsers(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (q *userQueriesImpl) GetAuthorizedUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	u, err := q.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}, nil
}

func (q *userQueriesImpl) ListUsers(ctx context.Context) ([]*UserView, error) {
	return q.readStore.List(ctx)
}
