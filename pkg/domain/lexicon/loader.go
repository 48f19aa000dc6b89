package lexicon

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileLexicon is the on-disk TOML shape of a lexicon. Array-of-table order
// in the file becomes the table's tie-break order.
type fileLexicon struct {
	Materials     []Entry           `toml:"materials"`
	Locations     []Entry           `toml:"locations"`
	SKUs          []Entry           `toml:"skus"`
	Purposes      []Entry           `toml:"purposes"`
	Urgency       []Entry           `toml:"urgency"`
	MaterialCodes map[string]string `toml:"material_codes"`
}

// Load reads a lexicon from a TOML file. Deployments use this to carry
// site-specific aliases without rebuilding; tests use it to substitute
// alternate lexicons.
func Load(path string) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon file %s: %w", path, err)
	}

	var file fileLexicon
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing lexicon file %s: %w", path, err)
	}

	materials, err := NewTable(file.Materials)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s materials: %w", path, err)
	}
	locations, err := NewTable(file.Locations)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s locations: %w", path, err)
	}
	skus, err := NewTable(file.SKUs)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s skus: %w", path, err)
	}
	purposes, err := NewTable(file.Purposes)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s purposes: %w", path, err)
	}
	urgency, err := NewTable(file.Urgency)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s urgency: %w", path, err)
	}

	return New(materials, locations, skus, purposes, urgency, file.MaterialCodes), nil
}
