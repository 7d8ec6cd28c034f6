// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/wolvhq/wolv-site/internal/middleware"
	"github.com/wolvhq/wolv-site/internal/remote"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// sessionResponse is the payload for successful sign-in and sign-up.
type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	User         any    `json:"user"`
}

// SignIn authenticates against the remote auth service.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		WriteNotConfigured(w)
		return
	}

	var in credentialsRequest
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Email == "" || in.Password == "" {
		WriteBadRequest(w, "Email and password are required", nil)
		return
	}

	session, err := h.client.SignIn(r.Context(), in.Email, in.Password)
	if err != nil {
		WriteUnauthorized(w, remote.ClassifyAuthError(err))
		return
	}

	WriteSuccess(w, sessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		User:         session.User.ToModel(),
	}, nil)
}

// SignUp registers a new account with the default user role.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		WriteNotConfigured(w)
		return
	}

	var in credentialsRequest
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Email == "" || in.Password == "" {
		WriteBadRequest(w, "Email and password are required", nil)
		return
	}

	session, err := h.client.SignUp(r.Context(), in.Email, in.Password, in.FullName)
	if err != nil {
		WriteBadRequest(w, remote.ClassifyAuthError(err), nil)
		return
	}

	WriteCreated(w, sessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		User:         session.User.ToModel(),
	})
}

// SignOut revokes the caller's session.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		WriteNotConfigured(w)
		return
	}

	token, errorWritten := middleware.BearerToken(w, r)
	if errorWritten {
		return
	}

	if err := h.client.SignOut(r.Context(), token); err != nil {
		// Revoking an already-dead token is not an error worth
		// surfacing to the client.
		h.log.Warn("sign-out failed", "error", err)
	}
	WriteSuccess(w, map[string]bool{"ok": true}, nil)
}

// ResetPassword sends a password recovery email.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		WriteNotConfigured(w)
		return
	}

	var in struct {
		Email string `json:"email"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Email == "" {
		WriteBadRequest(w, "Email is required", nil)
		return
	}

	if err := h.client.ResetPassword(r.Context(), in.Email); err != nil {
		h.writeRemoteError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"ok": true}, nil)
}

// Session returns the user behind the caller's access token.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}
	WriteSuccess(w, user, nil)
}
