package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

// InventoryRepository is an in-memory snapshot provider.
type InventoryRepository struct {
	mu    sync.RWMutex
	stock entities.Snapshot
}

// NewInventoryRepository creates an empty in-memory inventory repository.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{stock: entities.Snapshot{}}
}

// NewSeededInventoryRepository creates a repository seeded with the apparel
// factory stock set.
func NewSeededInventoryRepository() *InventoryRepository {
	r := NewInventoryRepository()
	for name, rec := range seedStock() {
		r.stock[name] = rec
	}
	return r
}

// SetStock adds or replaces the stock record for a canonical material name.
func (r *InventoryRepository) SetStock(name string, rec entities.StockRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stock[name] = rec
}

// Snapshot returns a copy of the current stock positions.
func (r *InventoryRepository) Snapshot(ctx context.Context) (entities.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(entities.Snapshot, len(r.stock))
	for name, rec := range r.stock {
		out[name] = rec
	}
	return out, nil
}

func seedStock() entities.Snapshot {
	qty := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return entities.Snapshot{
		"Cotton Fabric":    {MaterialCode: "COT-001", Qty: qty("800"), Unit: "m", Location: "RM Store A"},
		"Fleece Fabric":    {MaterialCode: "FLE-001", Qty: qty("1200"), Unit: "m", Location: "RM Store A"},
		"Polyester Fabric": {MaterialCode: "POL-001", Qty: qty("950"), Unit: "m", Location: "RM Store B"},
		"Thread (White)":   {MaterialCode: "THR-W01", Qty: qty("10000"), Unit: "m", Location: "Store Room"},
		"Thread (Black)":   {MaterialCode: "THR-B01", Qty: qty("8000"), Unit: "m", Location: "Store Room"},
		"Zipper (Metal)":   {MaterialCode: "ZIP-M01", Qty: qty("5000"), Unit: "pcs", Location: "Accessories"},
		"Elastic Band":     {MaterialCode: "ELA-001", Qty: qty("2000"), Unit: "m", Location: "Accessories"},
		"Drawstring":       {MaterialCode: "DRW-001", Qty: qty("3000"), Unit: "m", Location: "Accessories"},
		"Neck Label":       {MaterialCode: "LAB-N01", Qty: qty("15000"), Unit: "pcs", Location: "Accessories"},
		"Woven Label":      {MaterialCode: "LAB-W01", Qty: qty("12000"), Unit: "pcs", Location: "Accessories"},
		"Printed Tag":      {MaterialCode: "TAG-P01", Qty: qty("20000"), Unit: "pcs", Location: "Packaging"},
		"Poly Bag":         {MaterialCode: "BAG-P01", Qty: qty("25000"), Unit: "pcs", Location: "Packaging"},
	}
}
