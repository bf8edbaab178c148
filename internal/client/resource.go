package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"dipadubank/internal/models"
	"dipadubank/internal/query"
	"dipadubank/internal/routes"
	"dipadubank/internal/schema"

	"github.com/google/uuid"
)

// Resource is the SDK for one entity mounted at /api/<route>
type Resource[T any] struct {
	client *Client
	route  string
	schema *schema.Schema
}

// NewResource binds T to route. T is usually a models entity, or map[string]interface{}
// for callers that work on raw field values.
func NewResource[T any](c *Client, route string) *Resource[T] {
	s, _ := schema.Lookup(routes.ToEntity(route))
	return &Resource[T]{client: c, route: route, schema: s}
}

func (r *Resource[T]) Route() string {
	return r.route
}

// List fetches one page. A zero Query uses the server's default paging.
func (r *Resource[T]) List(ctx context.Context, q query.Query) (*models.Page[T], error) {
	var page models.Page[T]
	if err := r.client.do(ctx, http.MethodGet, r.route, q.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByID fetches one record. q may select relations to load alongside it.
func (r *Resource[T]) GetByID(ctx context.Context, id uuid.UUID, q query.Query) (*T, error) {
	values := q.Encode()
	values.Del("id")
	values.Del("limit")
	values.Del("offset")

	var out T
	if err := r.client.do(ctx, http.MethodGet, r.member(id), values, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts entity without its system managed fields and returns the stored record
func (r *Resource[T]) Create(ctx context.Context, entity T) (*T, error) {
	payload, err := r.payload(entity)
	if err != nil {
		return nil, err
	}

	var out T
	if err := r.client.do(ctx, http.MethodPost, r.route, nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the client writable fields of the record (PUT)
func (r *Resource[T]) Update(ctx context.Context, id uuid.UUID, entity T) (*T, error) {
	payload, err := r.payload(entity)
	if err != nil {
		return nil, err
	}

	var out T
	if err := r.client.do(ctx, http.MethodPut, r.member(id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch changes only the given fields (PATCH)
func (r *Resource[T]) Patch(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*T, error) {
	var out T
	if err := r.client.do(ctx, http.MethodPatch, r.member(id), nil, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the record and returns its state before removal
func (r *Resource[T]) Delete(ctx context.Context, id uuid.UUID) (*T, error) {
	var out T
	if err := r.client.do(ctx, http.MethodDelete, r.member(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) member(id uuid.UUID) string {
	return r.route + "/" + id.String()
}

// payload renders entity as a JSON object keeping only the schema's client writable fields
func (r *Resource[T]) payload(entity T) (map[string]interface{}, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", r.route, err)
	}

	fields := make(map[string]interface{})
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%s payload must be a JSON object: %w", r.route, err)
	}

	for name := range fields {
		if schema.IsSystemField(name) {
			delete(fields, name)
			continue
		}
		if r.schema != nil {
			if _, ok := r.schema.Field(name); !ok {
				delete(fields, name)
			}
		}
	}
	return fields, nil
}
