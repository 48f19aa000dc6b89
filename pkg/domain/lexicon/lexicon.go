// Package lexicon holds the static alias tables used to resolve free-text
// tokens, possibly in any of several languages, to canonical entity names.
// Tables are explicitly constructed and immutable after construction so
// callers (and tests) can substitute alternate lexicons.
package lexicon

import (
	"fmt"
	"strings"
)

// Entry maps one free-text token to a canonical entity name.
type Entry struct {
	Token     string `toml:"token"`
	Canonical string `toml:"canonical"`
}

// Table is an ordered token→canonical mapping. Multiple tokens may map to
// the same canonical value, but a token maps to exactly one canonical value.
// Entry order is the documented tie-break when more than one token appears
// in a piece of text.
type Table struct {
	entries []Entry
	index   map[string]string
}

// NewTable builds a table from entries. Tokens are lowercased; an entry
// whose token is already mapped to a different canonical value is rejected.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		token := strings.ToLower(strings.TrimSpace(e.Token))
		if token == "" {
			return nil, fmt.Errorf("lexicon entry for %q has an empty token", e.Canonical)
		}
		if existing, ok := t.index[token]; ok {
			if existing != e.Canonical {
				return nil, fmt.Errorf("token %q maps to both %q and %q", token, existing, e.Canonical)
			}
			continue
		}
		t.index[token] = e.Canonical
		t.entries = append(t.entries, Entry{Token: token, Canonical: e.Canonical})
	}
	return t, nil
}

// MustTable is like NewTable but panics on invalid entries. Intended for
// the built-in tables, which are checked by tests.
func MustTable(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve scans the text for the first token (in entry order) that occurs
// as a substring and returns its canonical value. The scan is
// case-insensitive.
func (t *Table) Resolve(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, e := range t.entries {
		if strings.Contains(lower, e.Token) {
			return e.Canonical, true
		}
	}
	return "", false
}

// Lookup returns the canonical value for an exact token.
func (t *Table) Lookup(token string) (string, bool) {
	v, ok := t.index[strings.ToLower(token)]
	return v, ok
}

// Len returns the number of distinct tokens in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the ordered entries.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// UnknownMaterialCode is returned when a material has no code mapping.
const UnknownMaterialCode = "UNKNOWN"

// Lexicon aggregates the alias tables the extractor needs.
type Lexicon struct {
	Materials *Table
	Locations *Table
	SKUs      *Table
	Purposes  *Table
	Urgency   *Table

	materialCodes map[string]string
}

// New constructs a lexicon from already-built tables and a canonical
// material name → material code mapping.
func New(materials, locations, skus, purposes, urgency *Table, codes map[string]string) *Lexicon {
	copied := make(map[string]string, len(codes))
	for k, v := range codes {
		copied[k] = v
	}
	return &Lexicon{
		Materials:     materials,
		Locations:     locations,
		SKUs:          skus,
		Purposes:      purposes,
		Urgency:       urgency,
		materialCodes: copied,
	}
}

// MaterialCode returns the material code for a canonical material name, or
// UnknownMaterialCode when no mapping exists.
func (l *Lexicon) MaterialCode(name string) string {
	if code, ok := l.materialCodes[name]; ok {
		return code
	}
	return UnknownMaterialCode
}
