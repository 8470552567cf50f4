package taskman

import (
	"context"
	"net/http"
)

var userMessages = map[int]string{
	http.StatusBadRequest:   "Invalid input. Please check the profile details.",
	http.StatusUnauthorized: "Unauthorized. Please log in again.",
	http.StatusNotFound:     "User not found.",
	http.StatusConflict:     "Email already exists.",
}

// UserService calls the profile endpoints of the signed-in user.
type UserService struct {
	client *Client
}

func (s *UserService) Me(ctx context.Context) (*User, error) {
	var user User
	if err := s.client.do(ctx, http.MethodGet, "/api/users/me", nil, nil, &user, userMessages); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, request ProfileRequest) (*User, error) {
	var user User
	if err := s.client.do(ctx, http.MethodPut, "/api/users/me", nil, request, &user, userMessages); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, request PasswordRequest) error {
	return s.client.do(ctx, http.MethodPut, "/api/users/me/password", nil, request, nil, userMessages)
}
