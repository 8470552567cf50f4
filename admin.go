package taskman

import (
	"context"
	"net/http"
)

var adminMessages = map[int]string{
	http.StatusUnauthorized: "Unauthorized. Please log in again.",
	http.StatusForbidden:    "Access denied. Admin privileges required.",
}

// AdminService calls the admin-only endpoints.
type AdminService struct {
	client *Client
}

func (s *AdminService) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.client.do(ctx, http.MethodGet, "/api/admin/users", nil, nil, &users, adminMessages); err != nil {
		return nil, err
	}
	return users, nil
}
