package backend

import (
	"context"
	"fmt"

	"github.com/stockdesk/dashboard/internal/domain/models"
)

// LoginResponse mirrors the backend's token grant.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// Login exchanges credentials for a bearer token. The backend speaks the
// OAuth2 password flow, so credentials go out form-encoded under "username".
func (c *APIClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	result := new(LoginResponse)

	resp, err := c.request(ctx, "").
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		SetResult(result).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return result, nil
}
