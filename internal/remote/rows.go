package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Row table names in the remote relational store.
const (
	TableEvents      = "events"
	TableGallery     = "gallery_photos"
	TableAftermovies = "aftermovies"
	TableSettings    = "site_settings"
)

// OrderCreatedDesc orders listings newest first, the display order for
// events and aftermovies.
const OrderCreatedDesc = "created_at.desc"

// Rows provides typed CRUD over one remote table.
type Rows[T any] struct {
	client *Client
	table  string
	order  string
}

// NewRows creates a typed binding for a table. An empty order leaves
// listing order to the remote store.
func NewRows[T any](client *Client, table, order string) *Rows[T] {
	return &Rows[T]{client: client, table: table, order: order}
}

// List fetches all rows of the table.
func (r *Rows[T]) List(ctx context.Context) ([]T, error) {
	query := url.Values{"select": {"*"}}
	if r.order != "" {
		query.Set("order", r.order)
	}

	data, err := r.client.do(ctx, request{
		method: "GET",
		path:   "/rest/v1/" + r.table,
		query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.table, err)
	}

	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decoding %s rows: %w", r.table, err)
	}
	return rows, nil
}

// Insert creates a row and returns the stored representation.
func (r *Rows[T]) Insert(ctx context.Context, row T) (T, error) {
	var zero T

	data, err := r.client.do(ctx, request{
		method:  "POST",
		path:    "/rest/v1/" + r.table,
		body:    row,
		headers: map[string]string{"Prefer": "return=representation"},
	})
	if err != nil {
		return zero, fmt.Errorf("inserting into %s: %w", r.table, err)
	}

	// PostgREST returns the inserted rows as an array.
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil || len(rows) == 0 {
		return zero, fmt.Errorf("decoding inserted %s row", r.table)
	}
	return rows[0], nil
}

// Update applies a partial patch to the row with the given id.
func (r *Rows[T]) Update(ctx context.Context, id string, patch any) error {
	_, err := r.client.do(ctx, request{
		method: "PATCH",
		path:   "/rest/v1/" + r.table,
		query:  url.Values{"id": {"eq." + id}},
		body:   patch,
	})
	if err != nil {
		return fmt.Errorf("updating %s row %s: %w", r.table, id, err)
	}
	return nil
}

// Delete removes the row with the given id.
func (r *Rows[T]) Delete(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, request{
		method: "DELETE",
		path:   "/rest/v1/" + r.table,
		query:  url.Values{"id": {"eq." + id}},
	})
	if err != nil {
		return fmt.Errorf("deleting %s row %s: %w", r.table, id, err)
	}
	return nil
}

// Singleton provides fetch/upsert over a single-row table with a fixed id.
type Singleton[T any] struct {
	client *Client
	table  string
	id     string
}

// NewSingleton creates a typed binding for a singleton table.
func NewSingleton[T any](client *Client, table, id string) *Singleton[T] {
	return &Singleton[T]{client: client, table: table, id: id}
}

// Fetch returns the singleton row, or ok=false when none exists yet.
func (s *Singleton[T]) Fetch(ctx context.Context) (T, bool, error) {
	var zero T

	data, err := s.client.do(ctx, request{
		method: "GET",
		path:   "/rest/v1/" + s.table,
		query: url.Values{
			"select": {"*"},
			"order":  {"created_at.asc"},
			"limit":  {"1"},
		},
	})
	if err != nil {
		return zero, false, fmt.Errorf("fetching %s: %w", s.table, err)
	}

	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return zero, false, fmt.Errorf("decoding %s: %w", s.table, err)
	}
	if len(rows) == 0 {
		return zero, false, nil
	}
	return rows[0], true, nil
}

// Upsert writes the singleton row, creating or merging on the fixed id.
func (s *Singleton[T]) Upsert(ctx context.Context, row T) error {
	_, err := s.client.do(ctx, request{
		method: "POST",
		path:   "/rest/v1/" + s.table,
		query:  url.Values{"on_conflict": {"id"}},
		body:   row,
		headers: map[string]string{
			"Prefer": "resolution=merge-duplicates",
		},
	})
	if err != nil {
		return fmt.Errorf("upserting %s: %w", s.table, err)
	}
	return nil
}
