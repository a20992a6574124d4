package api

import (
	"context"

	"github.com/marketfy/storefront/internal/domain/user"
)

// UsersService handles profile reads and updates.
type UsersService struct {
	client *Client
}

// NewUsersService creates a UsersService over the shared client.
func NewUsersService(client *Client) *UsersService {
	return &UsersService{client: client}
}

// Me fetches the authenticated user's profile.
func (s *UsersService) Me(ctx context.Context) (*user.User, error) {
	var u user.User
	if err := s.client.GetJSON(ctx, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile applies a partial profile update and returns the result.
func (s *UsersService) UpdateProfile(ctx context.Context, update user.Update) (*user.User, error) {
	var u user.User
	if err := s.client.PatchJSON(ctx, "/users/me", update, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
