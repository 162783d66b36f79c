package response

import (
	"parkbuddy/internal/usecase/commands"
	"parkbuddy/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		UserID:      r.UserID.String(),
		Role:        r.Role.String(),
	}
}

type RegisterResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
}

func FromRegisterResult(r *commands.RegisterResult) *RegisterResponse {
	return &RegisterResponse{
		UserID:    r.UserID.String(),
		Email:     r.Email,
		FullName:  r.FullName,
		Role:      r.Role.String(),
		CreatedAt: r.CreatedAt.Unix(),
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"is_active"`
	LastLogin *int64  `json:"last_login,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	res := &UserResponse{
		ID:        v.ID.String(),
		Email:     v.Email,
		FullName:  v.FullName,
		Phone:     v.Phone,
		Role:      v.Role,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt.Unix(),
	}
	if v.LastLogin != nil {
		ts := v.LastLogin.Unix()
		res.LastLogin = &ts
	}
	return res
}

func FromUserList(views []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(views))
	for i, v := range views {
		res[i] = FromUserView(v)
	}
	return res
}
