// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wolvhq/wolv-site/internal/model"
	"github.com/wolvhq/wolv-site/internal/remote"
)

// inviteRequest is the admin invite payload.
type inviteRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Invite creates a confirmed account through the privileged admin API.
// The service key never leaves the server; clients only see the
// resulting user.
func (h *Handler) Invite(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		WriteNotConfigured(w)
		return
	}

	var in inviteRequest
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Email == "" || in.Password == "" {
		WriteBadRequest(w, "Email and password are required", nil)
		return
	}
	if in.Role != "" && !model.ValidRole(in.Role) {
		WriteValidationError(w, map[string]string{"role": "Unknown role"})
		return
	}

	user, err := h.client.AdminCreateUser(r.Context(), in.Email, in.Password, in.FullName, in.Role)
	if err != nil {
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			WriteError(w, apiErr.Status, "invite_failed", remote.ClassifyAuthError(err), nil)
			return
		}
		h.log.Error("invite failed", "email", in.Email, "error", err)
		WriteInternalError(w, "Failed to create user")
		return
	}

	WriteCreated(w, user.ToModel())
}

// ListUsers lists every account known to the remote auth service.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		WriteNotConfigured(w)
		return
	}

	authUsers, err := h.client.AdminListUsers(r.Context())
	if err != nil {
		h.writeRemoteError(w, err)
		return
	}

	users := make([]model.User, 0, len(authUsers))
	for _, u := range authUsers {
		users = append(users, u.ToModel())
	}
	WriteSuccess(w, users, &Meta{Total: len(users)})
}

// updateUserRequest carries the editable profile fields.
type updateUserRequest struct {
	FullName   *string `json:"full_name,omitempty"`
	Role       *string `json:"role,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
}

// UpdateUser updates a user's profile metadata.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		WriteNotConfigured(w)
		return
	}

	id := chi.URLParam(r, "id")
	var in updateUserRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	metadata := map[string]any{}
	if in.FullName != nil {
		metadata["full_name"] = *in.FullName
	}
	if in.Role != nil {
		if !model.ValidRole(*in.Role) {
			WriteValidationError(w, map[string]string{"role": "Unknown role"})
			return
		}
		metadata["role"] = *in.Role
	}
	if in.Phone != nil {
		metadata["phone"] = *in.Phone
	}
	if in.Department != nil {
		metadata["department"] = *in.Department
	}
	if len(metadata) == 0 {
		WriteBadRequest(w, "No fields to update", nil)
		return
	}

	user, err := h.client.AdminUpdateUser(r.Context(), id, metadata)
	if err != nil {
		h.writeRemoteError(w, err)
		return
	}
	WriteSuccess(w, user.ToModel(), nil)
}

// DeleteUser removes an account.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		WriteNotConfigured(w)
		return
	}

	if err := h.client.AdminDeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeRemoteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
