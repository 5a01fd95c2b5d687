// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// DefaultListLimit is applied when a caller does not ask for a page size.
const DefaultListLimit = 100

// Filters maps filter keys to values. Keys follow `path__to__column[__op]`, e.g.
// `user__store_id`, `name__icontains`, `state__in`.
type Filters map[string]any

// Patch maps column names to new values. A nil value clears the column.
type Patch map[string]any

// ListOptions controls a listing query.
type ListOptions struct {
	Offset  int
	Limit   int
	Filters Filters
	// Preload lists relation paths in `a__b` form to eager-load.
	Preload []string
	// StoreID restricts the listing to rows reachable from the store through any of
	// the entity's store paths.
	StoreID *uuid.UUID
}

// Repository is the generic persistence contract shared by every entity.
type Repository[E any] interface {
	// Get looks up an entity by primary key. It returns nil, nil when absent.
	Get(ctx context.Context, id uuid.UUID, preload ...string) (*E, error)

	// List applies filters, ordering (newest first when the entity is timestamped)
	// and pagination, in that order.
	List(ctx context.Context, opts ListOptions) ([]*E, error)

	// Create persists a new entity and returns it refetched with its relations loaded.
	Create(ctx context.Context, entity *E) (*E, error)

	// Update applies only the columns present in patch. An empty patch writes nothing
	// and returns the current entity. It returns nil, nil when the row does not exist.
	Update(ctx context.Context, id uuid.UUID, patch Patch) (*E, error)

	// Delete removes by primary key and reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Count counts rows matching opts.Filters, scoped to opts.StoreID when set.
	// Pagination and preloads are ignored.
	Count(ctx context.Context, opts ListOptions) (int64, error)
}
