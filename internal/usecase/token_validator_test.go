//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkbuddy/internal/domain/user"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/pkg/jwt"
	"parkbuddy/internal/usecase"
	"parkbuddy/internal/usecase/queries"
	"parkbuddy/internal/usecase/shared"
	"parkbuddy/tests/common/builder"
	queriesmock "parkbuddy/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	svc := jwt.NewService("test-secret", "parkbuddy-test", time.Hour)
	driver := builder.NewUserBuilder().BuildReadModel()

	token, err := svc.GenerateToken(driver.ID, user.RoleUser)
	require.NoError(t, err)

	t.Run("success: actor reflects the stored user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserQueries(ctrl)
		users.EXPECT().GetAuthorizedUser(gomock.Any(), driver.ID).Return(driver, nil)

		actor, err := usecase.NewTokenValidator(svc, users).ValidateToken(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, shared.Actor{UserID: driver.ID, Role: user.RoleUser, Active: true}, actor)
	})

	t.Run("success: role and block state come from the store, not the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserQueries(ctrl)
		stored := builder.NewUserBuilder().WithID(driver.ID).AsAdmin().AsInactive().BuildReadModel()
		users.EXPECT().GetAuthorizedUser(gomock.Any(), driver.ID).Return(stored, nil)

		actor, err := usecase.NewTokenValidator(svc, users).ValidateToken(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, actor.Role)
		assert.False(t, actor.Active)
	})

	testCases := []struct {
		name       string
		token      string
		lookupErr  error
		validation bool
	}{
		{name: "error: garbage token", token: "not-a-jwt", validation: true},
		{name: "error: deleted user", token: token, lookupErr: queries.ErrUserNotFound, validation: true},
		{name: "error: store failure is not a validation failure", token: token, lookupErr: errors.New("db down")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := queriesmock.NewMockUserQueries(ctrl)
			if tc.lookupErr != nil {
				users.EXPECT().GetAuthorizedUser(gomock.Any(), driver.ID).Return(nil, tc.lookupErr)
			}

			_, err := usecase.NewTokenValidator(svc, users).ValidateToken(ctx, tc.token)

			require.Error(t, err)
			assert.Equal(t, tc.validation, errs.Is(err, usecase.ErrTokenValidation))
		})
	}
}
