// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wolvhq/wolv-site/internal/model"
)

// Session is an authenticated user session issued by the remote auth
// service.
type Session struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"`
	User         AuthUser `json:"user"`
}

// AuthUser is the remote auth service's user representation.
type AuthUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	CreatedAt    time.Time      `json:"created_at"`
	LastSignInAt *time.Time     `json:"last_sign_in_at,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

// ToModel maps an auth user onto the admin user model, pulling the
// profile fields out of user metadata.
func (u AuthUser) ToModel() model.User {
	user := model.User{
		ID:           u.ID,
		Email:        u.Email,
		Role:         model.RoleUser,
		CreatedAt:    u.CreatedAt,
		LastSignInAt: u.LastSignInAt,
	}
	if v, ok := u.UserMetadata["full_name"].(string); ok {
		user.FullName = v
	}
	if v, ok := u.UserMetadata["role"].(string); ok && model.ValidRole(v) {
		user.Role = v
	}
	if v, ok := u.UserMetadata["phone"].(string); ok {
		user.Phone = v
	}
	if v, ok := u.UserMetadata["department"].(string); ok {
		user.Department = v
	}
	return user
}

// SignIn authenticates with email and password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	data, err := c.do(ctx, request{
		method: "POST",
		path:   "/auth/v1/token",
		query:  map[string][]string{"grant_type": {"password"}},
		body:   map[string]string{"email": email, "password": password},
	})
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &session, nil
}

// SignUp registers a new account with the default user role. Depending
// on remote settings the session may be nil until email confirmation.
func (c *Client) SignUp(ctx context.Context, email, password, fullName string) (*Session, error) {
	data, err := c.do(ctx, request{
		method: "POST",
		path:   "/auth/v1/signup",
		body: map[string]any{
			"email":    email,
			"password": password,
			"data": map[string]string{
				"full_name": fullName,
				"role":      model.RoleUser,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decoding signup response: %w", err)
	}
	return &session, nil
}

// SignOut revokes the session behind the given access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.do(ctx, request{
		method: "POST",
		path:   "/auth/v1/logout",
		bearer: accessToken,
	})
	return err
}

// ResetPassword sends a password recovery email.
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	_, err := c.do(ctx, request{
		method: "POST",
		path:   "/auth/v1/recover",
		body:   map[string]string{"email": email},
	})
	return err
}

// GetSession resolves an access token to its user, or an error when the
// token is invalid or expired.
func (c *Client) GetSession(ctx context.Context, accessToken string) (*AuthUser, error) {
	data, err := c.do(ctx, request{
		method: "GET",
		path:   "/auth/v1/user",
		bearer: accessToken,
	})
	if err != nil {
		return nil, err
	}

	var user AuthUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}
	return &user, nil
}

// AdminCreateUser creates a confirmed user with the privileged service
// key. Used by the admin invite endpoint.
func (c *Client) AdminCreateUser(ctx context.Context, email, password, fullName, role string) (*AuthUser, error) {
	if role == "" {
		role = model.RoleUser
	}

	data, err := c.do(ctx, request{
		method:  "POST",
		path:    "/auth/v1/admin/users",
		service: true,
		body: map[string]any{
			"email":         email,
			"password":      password,
			"email_confirm": true,
			"user_metadata": map[string]string{
				"full_name": fullName,
				"role":      role,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	var user AuthUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decoding created user: %w", err)
	}
	return &user, nil
}

// AdminListUsers lists all users via the privileged admin API.
func (c *Client) AdminListUsers(ctx context.Context) ([]AuthUser, error) {
	data, err := c.do(ctx, request{
		method:  "GET",
		path:    "/auth/v1/admin/users",
		service: true,
	})
	if err != nil {
		return nil, err
	}

	// The admin API wraps the list in {users: [...]}.
	var body struct {
		Users []AuthUser `json:"users"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("decoding user list: %w", err)
	}
	return body.Users, nil
}

// AdminUpdateUser updates a user's metadata via the admin API.
func (c *Client) AdminUpdateUser(ctx context.Context, id string, metadata map[string]any) (*AuthUser, error) {
	data, err := c.do(ctx, request{
		method:  "PUT",
		path:    "/auth/v1/admin/users/" + id,
		service: true,
		body:    map[string]any{"user_metadata": metadata},
	})
	if err != nil {
		return nil, err
	}

	var user AuthUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decoding updated user: %w", err)
	}
	return &user, nil
}

// AdminDeleteUser removes a user via the admin API.
func (c *Client) AdminDeleteUser(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{
		method:  "DELETE",
		path:    "/auth/v1/admin/users/" + id,
		service: true,
	})
	return err
}
