package response

import (
	"time"

	"github.com/userbinhq/userbin/internal/model"
)

// User is the public projection of a user record. The password hash is never
// part of any response.
type User struct {
	Username  string     `json:"username"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// UserFromModel converts a model.User to a response User including CreatedAt.
// Records stored without a creation time keep the field out of the response
// rather than reporting the zero date.
func UserFromModel(u *model.User) User {
	out := User{Username: u.Username}
	if !u.CreatedAt.IsZero() {
		createdAt := u.CreatedAt
		out.CreatedAt = &createdAt
	}
	return out
}

// RegisterResponse is the response for a successful registration
type RegisterResponse struct {
	OK   bool `json:"ok"`
	User User `json:"user"`
}

// RegisterResponseFromModel creates a RegisterResponse
func RegisterResponseFromModel(u *model.User) RegisterResponse {
	return RegisterResponse{
		OK:   true,
		User: UserFromModel(u),
	}
}

// LoginResponse is the response for a successful login. Only the username is
// echoed back; creation time is not part of the login surface.
type LoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LoginResponseFromModel creates a LoginResponse
func LoginResponseFromModel(token string, u *model.User) LoginResponse {
	return LoginResponse{
		OK:    true,
		Token: token,
		User:  User{Username: u.Username},
	}
}

// ListUsersResponse is the response for the user listing
type ListUsersResponse struct {
	OK    bool   `json:"ok"`
	Users []User `json:"users"`
}

// ListUsersResponseFromModel creates a ListUsersResponse preserving order
func ListUsersResponseFromModel(users []model.User) ListUsersResponse {
	out := make([]User, len(users))
	for i := range users {
		out[i] = UserFromModel(&users[i])
	}
	return ListUsersResponse{
		OK:    true,
		Users: out,
	}
}
