package excel

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

// Loader reads inventory snapshots from xlsx workbooks, for stores that
// maintain their stock sheet in Excel.
type Loader struct{}

// NewLoader creates a new xlsx loader.
func NewLoader() *Loader {
	return &Loader{}
}

var expectedHeader = []string{"material", "code", "qty", "unit", "location"}

// LoadSnapshot loads an inventory snapshot from the first sheet of an xlsx
// file. Row 1 must carry the header material,code,qty,unit,location.
func (l *Loader) LoadSnapshot(filename string) (entities.Snapshot, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("inventory workbook %s has no sheets", filename)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("inventory sheet must have header and at least one data row")
	}

	if !validateHeader(rows[0]) {
		return nil, fmt.Errorf("inventory sheet header mismatch. Expected: %v, Got: %v", expectedHeader, rows[0])
	}

	snapshot := entities.Snapshot{}
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		if len(row) < len(expectedHeader) {
			return nil, fmt.Errorf("inventory sheet row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(row))
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}

		qty, err := decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("inventory sheet row %d: invalid qty %q: %w", i+2, row[2], err)
		}

		snapshot[name] = entities.StockRecord{
			MaterialCode: strings.TrimSpace(row[1]),
			Qty:          qty,
			Unit:         strings.TrimSpace(row[3]),
			Location:     strings.TrimSpace(row[4]),
		}
	}

	return snapshot, nil
}

func validateHeader(header []string) bool {
	if len(header) < len(expectedHeader) {
		return false
	}
	for i, col := range expectedHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return false
		}
	}
	return true
}
