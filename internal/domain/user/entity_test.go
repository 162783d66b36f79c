//go:build unit

package user_test

import (
	"testing"

	"parkbuddy/internal/domain/user"
	"parkbuddy/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

type userFields struct {
	Email    string
	FullName string
	Phone    string
	Role     user.Role
	Active   bool
}

func fieldsOf(u *user.User) userFields {
	return userFields{
		Email:    u.Email().Value(),
		FullName: u.FullName().Value(),
		Phone:    u.Phone().Value(),
		Role:     u.Role(),
		Active:   u.IsActive(),
	}
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("driver@example.com")
		fullName, _ := user.NewFullName("Test Driver")
		phone, _ := user.NewPhone("+15551234567")
		expected := user.NewUser(email, fullName, phone, "hashed_password", user.RoleUser)

		if diff := cmp.Diff(fieldsOf(expected), fieldsOf(actual)); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.CanPark())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})

		t.Run("小文字に正規化", func(t *testing.T) {
			u, err := builder.NewUserBuilder().WithEmail("Driver@Example.COM").BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, "driver@example.com", u.Email().Value())
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "user ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("user") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})

		t.Run("権限の大小", func(t *testing.T) {
			assert.True(t, user.RoleAdmin.AtLeast(user.RoleUser))
			assert.True(t, user.RoleAdmin.AtLeast(user.RoleAdmin))
			assert.False(t, user.RoleUser.AtLeast(user.RoleAdmin))
		})
	})

	t.Run("電話番号検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "E.164形式OK",
				mutate: func(b *builder.UserBuilder) { b.Phone = "+819012345678" },
			},
			{
				name:   "電話番号無しOK",
				mutate: func(b *builder.UserBuilder) { b.WithoutPhone() },
			},
			{
				name:   "+なしNG",
				mutate: func(b *builder.UserBuilder) { b.Phone = "09012345678" },
				errIs:  user.ErrInvalidPhone,
			},
		})
	})

	t.Run("状態検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "アクティブユーザーOK",
				mutate: func(b *builder.UserBuilder) {},
			},
			{
				name:   "非アクティブユーザーOK",
				mutate: func(b *builder.UserBuilder) { b.AsInactive() },
			},
		})

		t.Run("ブロック中は駐車不可", func(t *testing.T) {
			u, err := builder.NewUserBuilder().AsInactive().BuildDomain()
			require.NoError(t, err)
			assert.False(t, u.CanPark())
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
