package repositories

import (
	"context"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

// InventoryRepository supplies the current stock snapshot. The snapshot is
// fetched fresh per interpretation; the core never mutates it and assumes
// no consistency with a later persistence write.
type InventoryRepository interface {
	Snapshot(ctx context.Context) (entities.Snapshot, error)
}
