package repositories

import (
	"context"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

// RequestStore durably records finalized requests. Implementations assign
// the durable identifier; the record's own RequestID is advisory only.
type RequestStore interface {
	// Save persists the record and returns its durable identifier.
	Save(ctx context.Context, req entities.MaterialRequest) (string, error)

	// Get returns the record stored under a durable identifier.
	Get(ctx context.Context, id string) (entities.MaterialRequest, error)

	// List returns persisted records in insertion order.
	List(ctx context.Context) ([]entities.MaterialRequest, error)
}
