package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stitchworks/matreq/pkg/domain/entities"
	"github.com/stitchworks/matreq/pkg/domain/lexicon"
)

// Keywords that introduce a destination or source phrase in an utterance.
var (
	destinationKeywords = []string{"to", "for", "at"}
	sourceKeywords      = []string{"from"}
)

// typeKeywords is the request-type scan order. The order is a tie-break
// policy: text containing both "transfer" and "purchase" resolves to
// transfer because transfer is checked first.
var typeKeywords = []struct {
	requestType entities.RequestType
	words       []string
}{
	{entities.RequestTypeTransfer, []string{"transfer", "move", "shift"}},
	{entities.RequestTypePurchase, []string{"purchase", "buy", "order"}},
	{entities.RequestTypeMaintenance, []string{"maintenance", "repair"}},
	{entities.RequestTypePackaging, []string{"packaging", "bag"}},
	{entities.RequestTypeQCLab, []string{"qc", "quality", "testing"}},
}

// Extractor pulls structured request fields out of free-text utterances
// using the lexicon it was constructed with. It is pure and deterministic;
// all methods are safe for concurrent use.
type Extractor struct {
	lex        *lexicon.Lexicon
	qtyPattern *regexp.Regexp
	poPattern  *regexp.Regexp
	phrase     map[string]*regexp.Regexp
}

// NewExtractor builds an extractor over the given lexicon.
func NewExtractor(lex *lexicon.Lexicon) *Extractor {
	phrase := make(map[string]*regexp.Regexp)
	for _, kw := range append(append([]string{}, destinationKeywords...), sourceKeywords...) {
		// Captures the phrase after the keyword up to the next clause
		// boundary (for/by/on) or end of text.
		phrase[kw] = regexp.MustCompile(`(?i)` + kw + `\s+([\w\s]+?)(?:\s+for|\s+by|\s+on|$)`)
	}
	return &Extractor{
		lex:        lex,
		qtyPattern: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(kg|m|pcs|units?|metre|meter|किलो|मीटर)`),
		poPattern:  regexp.MustCompile(`(?i)po[-\s]?(\d+)`),
		phrase:     phrase,
	}
}

// Parse extracts whatever request fields it can find in text. The snapshot
// is consulted only as a fallback for material names that have no alias.
// No validation is performed; a missing quantity comes back as zero with
// the default unit, which the validator treats as a missing-info signal.
func (e *Extractor) Parse(text string, inv entities.Snapshot) entities.PartialRequest {
	lower := strings.ToLower(text)

	requestType := e.extractRequestType(lower)

	qty, uom := e.extractQuantity(text)

	var materials []entities.MaterialLine
	if name, ok := e.extractMaterial(lower, inv); ok {
		materials = append(materials, entities.MaterialLine{
			MaterialCode: e.lex.MaterialCode(name),
			Name:         name,
			RequestedQty: qty,
			UOM:          uom,
		})
	}

	destination := e.extractLocation(text, destinationKeywords)
	if destination == "" {
		destination = "Unknown"
	}

	source := ""
	if requestType == entities.RequestTypeTransfer {
		source = e.extractLocation(text, sourceKeywords)
	}

	urgency := entities.UrgencyNormal
	if v, ok := e.lex.Urgency.Resolve(lower); ok && v == string(entities.UrgencyUrgent) {
		urgency = entities.UrgencyUrgent
	}

	purpose, _ := e.lex.Purposes.Resolve(lower)
	sku, _ := e.lex.SKUs.Resolve(lower)

	return entities.PartialRequest{
		RequestType:           requestType,
		Materials:             materials,
		SourceWarehouse:       source,
		Destination:           destination,
		LinkedProductionOrder: e.extractProductionOrder(text),
		LinkedSKU:             sku,
		Purpose:               purpose,
		Urgency:               urgency,
	}
}

func (e *Extractor) extractRequestType(lower string) entities.RequestType {
	for _, group := range typeKeywords {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				return group.requestType
			}
		}
	}
	return entities.RequestTypeIssue
}

// extractMaterial resolves the first material alias found in the text, then
// falls back to canonical names already present in the snapshot. Snapshot
// names are scanned in sorted order so the fallback is deterministic.
func (e *Extractor) extractMaterial(lower string, inv entities.Snapshot) (string, bool) {
	if name, ok := e.lex.Materials.Resolve(lower); ok {
		return name, true
	}
	for _, name := range inv.Names() {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name, true
		}
	}
	return "", false
}

// extractQuantity matches "<number> <unit>". A missing match yields zero kg,
// which downstream validation reports as an unspecified quantity.
func (e *Extractor) extractQuantity(text string) (decimal.Decimal, string) {
	m := e.qtyPattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, "kg"
	}
	qty, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero, "kg"
	}
	return qty, normalizeUnit(m[2])
}

// extractLocation finds the phrase following one of the keywords and
// resolves it through the location table, falling back to the raw phrase.
// With no keyword match, the whole text is scanned for location aliases.
func (e *Extractor) extractLocation(text string, keywords []string) string {
	for _, kw := range keywords {
		m := e.phrase[kw].FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.TrimSpace(m[1])
		if canonical, ok := e.lex.Locations.Resolve(raw); ok {
			return canonical
		}
		return raw
	}
	if canonical, ok := e.lex.Locations.Resolve(text); ok {
		return canonical
	}
	return ""
}

func (e *Extractor) extractProductionOrder(text string) string {
	m := e.poPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("PO-%s", m[1])
}

func normalizeUnit(unit string) string {
	u := strings.ToLower(unit)
	switch {
	case strings.Contains(u, "kg") || strings.Contains(u, "किलो"):
		return "kg"
	case strings.Contains(u, "m") || strings.Contains(u, "मीटर"):
		return "m"
	case strings.Contains(u, "pc") || strings.Contains(u, "unit"):
		return "pcs"
	}
	return unit
}
