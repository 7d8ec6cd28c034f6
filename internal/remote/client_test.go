// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolvhq/wolv-site/internal/model"
)

// capturedRequest records what the fake platform received.
type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.Query = r.URL.RawQuery
		captured.Header = r.Header.Clone()
		captured.Body, _ = io.ReadAll(r.Body)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		URL:        srv.URL,
		AnonKey:    "anon-key",
		ServiceKey: "service-key",
	})
	require.NoError(t, err)
	return client, captured
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(Config{URL: "https://example.test"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(Config{AnonKey: "key"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRowsListEncodesSelectAndOrder(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Event{{ID: "e1", Title: "Night"}})
	})

	rows := NewRows[model.Event](client, TableEvents, OrderCreatedDesc)
	events, err := rows.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/rest/v1/events", captured.Path)
	assert.Contains(t, captured.Query, "select=%2A")
	assert.Contains(t, captured.Query, "order=created_at.desc")
	assert.Equal(t, "anon-key", captured.Header.Get("apikey"))
	assert.Equal(t, "Bearer anon-key", captured.Header.Get("Authorization"))
}

func TestRowsInsertAsksForRepresentation(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode([]model.Event{{ID: "stored", Title: "Night"}})
	})

	rows := NewRows[model.Event](client, TableEvents, OrderCreatedDesc)
	stored, err := rows.Insert(context.Background(), model.Event{ID: "local", Title: "Night"})
	require.NoError(t, err)
	assert.Equal(t, "stored", stored.ID)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "return=representation", captured.Header.Get("Prefer"))
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
}

func TestRowsUpdateFiltersByID(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rows := NewRows[model.Event](client, TableEvents, "")
	title := "Renamed"
	err := rows.Update(context.Background(), "e1", model.EventPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, captured.Method)
	assert.Equal(t, "id=eq.e1", captured.Query)
	assert.JSONEq(t, `{"title":"Renamed"}`, string(captured.Body))
}

func TestRowsDeleteFiltersByID(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rows := NewRows[model.Event](client, TableEvents, "")
	require.NoError(t, rows.Delete(context.Background(), "e2"))

	assert.Equal(t, http.MethodDelete, captured.Method)
	assert.Equal(t, "id=eq.e2", captured.Query)
}

func TestSingletonFetchEmptyTable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	singleton := NewSingleton[model.SiteSettings](client, TableSettings, model.SettingsID)
	_, ok, err := singleton.Fetch(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSingletonUpsertMergesDuplicates(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	singleton := NewSingleton[model.SiteSettings](client, TableSettings, model.SettingsID)
	err := singleton.Upsert(context.Background(), model.SiteSettings{ID: model.SettingsID, SiteName: "Wolv"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "on_conflict=id", captured.Query)
	assert.Equal(t, "resolution=merge-duplicates", captured.Header.Get("Prefer"))
}

func TestServiceCallsUseServiceKey(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(AuthUser{ID: "u1", Email: "a@b.test"})
	})

	_, err := client.AdminCreateUser(context.Background(), "a@b.test", "secret12", "A B", model.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, "/auth/v1/admin/users", captured.Path)
	assert.Equal(t, "service-key", captured.Header.Get("apikey"))
	assert.Equal(t, "Bearer service-key", captured.Header.Get("Authorization"))
}

func TestServiceCallsWithoutServiceKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("request reached the server without a service key")
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{URL: srv.URL, AnonKey: "anon"})
	require.NoError(t, err)

	_, err = client.AdminListUsers(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestErrorResponsesBecomeAPIErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"23505","message":"duplicate key value"}`))
	})

	rows := NewRows[model.Event](client, TableEvents, "")
	_, err := rows.List(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "23505", apiErr.Code)
	assert.Equal(t, "duplicate key value", apiErr.Message)
}

func TestClassifyAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "duplicate registration",
			err:  &APIError{Status: 422, Message: "User already registered"},
			want: "This email is already registered. Please sign in instead.",
		},
		{
			name: "weak password",
			err:  &APIError{Status: 422, Message: "Password should be at least 6 characters"},
			want: "Password must be at least 6 characters long.",
		},
		{
			name: "bad credentials",
			err:  &APIError{Status: 400, Message: "Invalid login credentials"},
			want: "Invalid email or password.",
		},
		{
			name: "bad email",
			err:  &APIError{Status: 400, Message: "Unable to validate email address"},
			want: "Please enter a valid email address.",
		},
		{
			name: "other api error keeps its message",
			err:  &APIError{Status: 500, Message: "upstream exploded"},
			want: "upstream exploded",
		},
		{
			name: "opaque error gets the generic message",
			err:  errors.New("dial tcp: timeout"),
			want: "Authentication failed. Please try again.",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAuthError(tt.err))
		})
	}
}
