package commands

import (
	"context"
	"log/slog"
	"time"

	"parkbuddy/internal/domain/user"
	"parkbuddy/internal/infra"
	"parkbuddy/internal/pkg/clock"
	"parkbuddy/internal/pkg/errs"
	"parkbuddy/internal/pkg/password"
	"parkbuddy/internal/usecase/shared"

	"github.com/google/uuid"
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type RegisterInput struct {
	Email    string
	FullName string
	Password string
	Phone    string
}

type RegisterResult struct {
	UserID    uuid.UUID
	Email     string
	FullName  string
	Role      user.Role
	CreatedAt time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	// Register creates an active account with the user role. Admins are
	// provisioned out of band.
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	if in.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.Compare(u.PasswordHash(), in.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	token, err := a.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	// Login succeeds even when the timestamp cannot be written.
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, u.ID(), a.clock.Now())
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to update last login", "user_id", u.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:      u.ID(),
		Role:        u.Role(),
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	fullName, err := user.NewFullName(in.FullName)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	var created *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().Create(ctx, user.NewUser(email, fullName, phone, hash, user.RoleUser), a.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailTaken)
			}
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", created.ID())
	return &RegisterResult{
		UserID:    created.ID(),
		Email:     created.Email().Value(),
		FullName:  created.FullName().Value(),
		Role:      created.Role(),
		CreatedAt: created.CreatedAt(),
	}, nil
}
