package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stitchworks/matreq/pkg/domain/entities"
	"github.com/stitchworks/matreq/pkg/domain/lexicon"
)

func testSnapshot() entities.Snapshot {
	return entities.Snapshot{
		"Cotton Fabric": {MaterialCode: "COT-001", Qty: decimal.NewFromInt(50), Unit: "kg", Location: "RM Store A"},
		"Rib Fabric":    {MaterialCode: "FAB-RIB-004", Qty: decimal.NewFromInt(500), Unit: "m", Location: "RM Store A"},
	}
}

func newTestExtractor() *Extractor {
	return NewExtractor(lexicon.Default())
}

func TestExtractor_Parse_FullTransferUtterance(t *testing.T) {
	e := newTestExtractor()

	partial := e.Parse("transfer 20 kg cotton fabric from RM Store A to sewing floor", testSnapshot())

	if partial.RequestType != entities.RequestTypeTransfer {
		t.Errorf("request type = %q, want transfer", partial.RequestType)
	}
	if len(partial.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(partial.Materials))
	}
	m := partial.Materials[0]
	if m.Name != "Cotton Fabric" {
		t.Errorf("material = %q, want Cotton Fabric", m.Name)
	}
	if m.MaterialCode != "COT-001" {
		t.Errorf("material code = %q, want COT-001", m.MaterialCode)
	}
	if !m.RequestedQty.Equal(decimal.NewFromInt(20)) {
		t.Errorf("requested qty = %s, want 20", m.RequestedQty)
	}
	if m.UOM != "kg" {
		t.Errorf("uom = %q, want kg", m.UOM)
	}
	if partial.Destination != "Sewing Floor" {
		t.Errorf("destination = %q, want Sewing Floor", partial.Destination)
	}
	if partial.SourceWarehouse == "" {
		t.Error("expected a source warehouse for a transfer")
	}
	if partial.Urgency != entities.UrgencyNormal {
		t.Errorf("urgency = %q, want normal", partial.Urgency)
	}
}

func TestExtractor_Parse_RequestTypePriorityOrder(t *testing.T) {
	e := newTestExtractor()

	// Both transfer and purchase keywords present; transfer is checked
	// first and wins.
	partial := e.Parse("transfer and purchase cotton", testSnapshot())
	if partial.RequestType != entities.RequestTypeTransfer {
		t.Errorf("request type = %q, want transfer", partial.RequestType)
	}
}

func TestExtractor_Parse_RequestTypes(t *testing.T) {
	e := newTestExtractor()
	cases := []struct {
		text string
		want entities.RequestType
	}{
		{"issue 5 kg cotton to cutting", entities.RequestTypeIssue},
		{"move cotton to sewing", entities.RequestTypeTransfer},
		{"order 100 pcs zipper", entities.RequestTypePurchase},
		{"need elastic for repair", entities.RequestTypeMaintenance},
		{"poly bag for packing", entities.RequestTypePackaging},
		{"chemicals needed in testing", entities.RequestTypeQCLab},
		{"need 5 kg cotton", entities.RequestTypeIssue},
	}
	for _, c := range cases {
		if got := e.Parse(c.text, testSnapshot()).RequestType; got != c.want {
			t.Errorf("Parse(%q).RequestType = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtractor_Parse_QuantityAndUnit(t *testing.T) {
	e := newTestExtractor()
	cases := []struct {
		text    string
		wantQty string
		wantUOM string
	}{
		{"need 20 kg cotton", "20", "kg"},
		{"need 2.5 kg cotton", "2.5", "kg"},
		{"need 100 pcs zip", "100", "pcs"},
		{"need 50 units elastic", "50", "pcs"},
		{"need 30 metre thread", "30", "m"},
		{"need 5 किलो cotton", "5", "kg"},
	}
	for _, c := range cases {
		partial := e.Parse(c.text, testSnapshot())
		if len(partial.Materials) != 1 {
			t.Fatalf("Parse(%q): expected 1 material, got %d", c.text, len(partial.Materials))
		}
		m := partial.Materials[0]
		if !m.RequestedQty.Equal(decimal.RequireFromString(c.wantQty)) {
			t.Errorf("Parse(%q) qty = %s, want %s", c.text, m.RequestedQty, c.wantQty)
		}
		if m.UOM != c.wantUOM {
			t.Errorf("Parse(%q) uom = %q, want %q", c.text, m.UOM, c.wantUOM)
		}
	}
}

func TestExtractor_Parse_MissingQuantityDefaultsToZeroKg(t *testing.T) {
	e := newTestExtractor()

	partial := e.Parse("need thread urgently", testSnapshot())
	if len(partial.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(partial.Materials))
	}
	m := partial.Materials[0]
	if !m.RequestedQty.IsZero() {
		t.Errorf("qty = %s, want 0 (missing-quantity signal)", m.RequestedQty)
	}
	if m.UOM != "kg" {
		t.Errorf("uom = %q, want default kg", m.UOM)
	}
}

func TestExtractor_Parse_MaterialSnapshotFallback(t *testing.T) {
	e := newTestExtractor()

	// "rib" has no alias; the canonical name comes from the snapshot.
	partial := e.Parse("need 10 m rib fabric at cutting", testSnapshot())
	if len(partial.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(partial.Materials))
	}
	if partial.Materials[0].Name != "Rib Fabric" {
		t.Errorf("material = %q, want Rib Fabric", partial.Materials[0].Name)
	}
	if partial.Materials[0].MaterialCode != lexicon.UnknownMaterialCode {
		t.Errorf("material code = %q, want %q", partial.Materials[0].MaterialCode, lexicon.UnknownMaterialCode)
	}
}

func TestExtractor_Parse_NoMaterialYieldsEmptyList(t *testing.T) {
	e := newTestExtractor()

	partial := e.Parse("please send something to sewing floor", testSnapshot())
	if len(partial.Materials) != 0 {
		t.Errorf("expected no materials, got %+v", partial.Materials)
	}
}

func TestExtractor_Parse_MultilingualMaterialAlias(t *testing.T) {
	e := newTestExtractor()

	partial := e.Parse("सिलाई के लिए 10 किलो कपास चाहिए", testSnapshot())
	if len(partial.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(partial.Materials))
	}
	if partial.Materials[0].Name != "Cotton Fabric" {
		t.Errorf("material = %q, want Cotton Fabric", partial.Materials[0].Name)
	}
	// No destination keyword; the whole-text alias scan finds सिलाई.
	if partial.Destination != "Sewing Floor" {
		t.Errorf("destination = %q, want Sewing Floor", partial.Destination)
	}
}

func TestExtractor_Parse_DestinationUnknownWhenAbsent(t *testing.T) {
	e := newTestExtractor()

	partial := e.Parse("need thread urgently", testSnapshot())
	if partial.Destination != "Unknown" {
		t.Errorf("destination = %q, want Unknown", partial.Destination)
	}
}

func TestExtractor_Parse_SourceOnlyForTransfers(t *testing.T) {
	e := newTestExtractor()

	transfer := e.Parse("transfer cotton from accessories for production", testSnapshot())
	if transfer.SourceWarehouse != "Accessories" {
		t.Errorf("source = %q, want Accessories", transfer.SourceWarehouse)
	}

	issue := e.Parse("issue cotton from accessories for production", testSnapshot())
	if issue.SourceWarehouse != "" {
		t.Errorf("source = %q, want empty for non-transfer", issue.SourceWarehouse)
	}
}

func TestExtractor_Parse_ProductionOrder(t *testing.T) {
	e := newTestExtractor()
	cases := []struct {
		text string
		want string
	}{
		{"issue cotton for po 4521", "PO-4521"},
		{"issue cotton for PO-789", "PO-789"},
		{"issue cotton for po1234", "PO-1234"},
		{"issue cotton", ""},
	}
	for _, c := range cases {
		if got := e.Parse(c.text, testSnapshot()).LinkedProductionOrder; got != c.want {
			t.Errorf("Parse(%q).LinkedProductionOrder = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtractor_Parse_SKUAndPurpose(t *testing.T) {
	e := newTestExtractor()

	partial := e.Parse("need fleece for hoodie rework", testSnapshot())
	if partial.LinkedSKU != "HD-001" {
		t.Errorf("sku = %q, want HD-001", partial.LinkedSKU)
	}
	if partial.Purpose != "Rework" {
		t.Errorf("purpose = %q, want Rework", partial.Purpose)
	}
}

func TestExtractor_Parse_Urgency(t *testing.T) {
	e := newTestExtractor()
	cases := []struct {
		text string
		want entities.Urgency
	}{
		{"need thread urgently", entities.UrgencyUrgent},
		{"need thread asap", entities.UrgencyUrgent},
		{"धागा तुरंत चाहिए", entities.UrgencyUrgent},
		{"need thread", entities.UrgencyNormal},
	}
	for _, c := range cases {
		if got := e.Parse(c.text, testSnapshot()).Urgency; got != c.want {
			t.Errorf("Parse(%q).Urgency = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtractor_Parse_Deterministic(t *testing.T) {
	e := newTestExtractor()
	text := "transfer 20 kg cotton fabric from RM Store A to sewing floor for po 42"

	first := e.Parse(text, testSnapshot())
	second := e.Parse(text, testSnapshot())

	if first.RequestType != second.RequestType ||
		first.Destination != second.Destination ||
		first.SourceWarehouse != second.SourceWarehouse ||
		first.LinkedProductionOrder != second.LinkedProductionOrder ||
		len(first.Materials) != len(second.Materials) {
		t.Errorf("Parse is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
