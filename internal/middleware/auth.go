// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, and request throttling.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wolvhq/wolv-site/internal/model"
	"github.com/wolvhq/wolv-site/internal/remote"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyUser is the context key for the authenticated user.
const ContextKeyUser ContextKey = "user"

// APIError represents a JSON error response written by middleware.
type APIError struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// WriteAPIError writes a JSON error response.
func WriteAPIError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	apiErr := APIError{}
	apiErr.Error.Code = code
	apiErr.Error.Message = message
	apiErr.Error.Details = details

	_ = json.NewEncoder(w).Encode(apiErr)
}

// SessionAuth validates bearer access tokens against the remote auth
// service and stores the resolved user in the request context.
type SessionAuth struct {
	client *remote.Client
	log    *slog.Logger
}

// NewSessionAuth creates session authentication middleware. The client
// may be nil when the remote store is not configured; every protected
// route then answers 503.
func NewSessionAuth(client *remote.Client, log *slog.Logger) *SessionAuth {
	if log == nil {
		log = slog.Default()
	}
	return &SessionAuth{client: client, log: log}
}

// BearerToken parses the Authorization header. Returns the token if
// present, or writes an error response and returns ("", true).
func BearerToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Missing Authorization header", nil)
		return "", true
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Invalid Authorization header format. Use: Bearer <access_token>", nil)
		return "", true
	}

	token := parts[1]
	if token == "" {
		WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Access token is empty", nil)
		return "", true
	}

	return token, false
}

// RequireUser requires a valid session. The resolved user is stored in
// the request context for handlers downstream.
func (a *SessionAuth) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, errorWritten := a.resolveUser(w, r)
		if errorWritten {
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin requires a valid session whose user holds the admin role.
func (a *SessionAuth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, errorWritten := a.resolveUser(w, r)
		if errorWritten {
			return
		}

		if user.Role != model.RoleAdmin {
			WriteAPIError(w, http.StatusForbidden, "forbidden", "Admin access required", nil)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *SessionAuth) resolveUser(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	if a.client == nil {
		WriteAPIError(w, http.StatusServiceUnavailable, "not_configured", "Authentication is not configured on this deployment", nil)
		return nil, true
	}

	token, errorWritten := BearerToken(w, r)
	if errorWritten {
		return nil, true
	}

	authUser, err := a.client.GetSession(r.Context(), token)
	if err != nil {
		if apiErr, ok := err.(*remote.APIError); ok && apiErr.Status < 500 {
			WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired session", nil)
			return nil, true
		}
		a.log.Error("session lookup failed", "error", err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to validate session", nil)
		return nil, true
	}

	user := authUser.ToModel()
	return &user, false
}

// GetUser retrieves the authenticated user from the request context.
func GetUser(r *http.Request) *model.User {
	user, ok := r.Context().Value(ContextKeyUser).(*model.User)
	if !ok {
		return nil
	}
	return user
}
