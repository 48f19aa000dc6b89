package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

// Loader reads inventory snapshots from CSV files.
type Loader struct{}

// NewLoader creates a new CSV loader.
func NewLoader() *Loader {
	return &Loader{}
}

var expectedHeader = []string{"material", "code", "qty", "unit", "location"}

// LoadSnapshot loads an inventory snapshot from a CSV file with the columns
// material,code,qty,unit,location.
func (l *Loader) LoadSnapshot(filename string) (entities.Snapshot, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("inventory CSV must have header and at least one data row")
	}

	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("inventory CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	snapshot := entities.Snapshot{}
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("inventory CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, fmt.Errorf("inventory CSV row %d: material name cannot be empty", i+2)
		}

		qty, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: invalid qty %q: %w", i+2, record[2], err)
		}

		snapshot[name] = entities.StockRecord{
			MaterialCode: strings.TrimSpace(record[1]),
			Qty:          qty,
			Unit:         strings.TrimSpace(record[3]),
			Location:     strings.TrimSpace(record[4]),
		}
	}

	return snapshot, nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return false
		}
	}
	return true
}
