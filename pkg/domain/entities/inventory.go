package entities

import (
	"sort"

	"github.com/shopspring/decimal"
)

// StockRecord is the on-hand position for one material at its primary
// location, as supplied by the external inventory read model.
type StockRecord struct {
	MaterialCode string          `json:"material_code"`
	Qty          decimal.Decimal `json:"qty"`
	Unit         string          `json:"unit"`
	Location     string          `json:"location"`
}

// Snapshot maps canonical material names to their current stock position.
// It is supplied fresh per validation call and is read-only from the core's
// perspective; no transactional consistency with a later persistence write
// is assumed.
type Snapshot map[string]StockRecord

// Names returns the canonical material names in the snapshot, sorted so
// that scans over the snapshot are deterministic.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
