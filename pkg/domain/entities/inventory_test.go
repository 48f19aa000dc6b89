package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSnapshot_Names_Sorted(t *testing.T) {
	snapshot := Snapshot{
		"Zipper (Metal)": {Qty: decimal.NewFromInt(100)},
		"Cotton Fabric":  {Qty: decimal.NewFromInt(50)},
		"Poly Bag":       {Qty: decimal.NewFromInt(200)},
	}

	names := snapshot.Names()
	want := []string{"Cotton Fabric", "Poly Bag", "Zipper (Metal)"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestSnapshot_Names_Empty(t *testing.T) {
	if names := (Snapshot{}).Names(); len(names) != 0 {
		t.Errorf("expected no names, got %v", names)
	}
}
