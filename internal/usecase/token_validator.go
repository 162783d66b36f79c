package usecase

import (
	"context"

	"parkbuddy/internal/domain/user"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/pkg/jwt"
	"parkbuddy/internal/usecase/queries"
	"parkbuddy/internal/usecase/shared"
)

var ErrTokenValidation = errs.New("token validation failed")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	// ValidateToken resolves a bearer token to the current state of its
	// user. Blocked users still resolve, with Active=false.
	ValidateToken(ctx context.Context, tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      queries.UserQueries
}

func NewTokenValidator(jwtService *jwt.Service, users queries.UserQueries) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		users:      users,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, ErrTokenValidation)
	}

	u, err := t.users.GetAuthorizedUser(ctx, claims.UserID)
	if err != nil {
		if errs.Is(err, queries.ErrUserNotFound) {
			return shared.Actor{}, errs.Mark(err, ErrTokenValidation)
		}
		return shared.Actor{}, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, ErrTokenValidation)
	}

	return shared.Actor{
		UserID: u.ID,
		Role:   role,
		Active: u.IsActive,
	}, nil
}
