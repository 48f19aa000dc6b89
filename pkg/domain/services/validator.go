package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

// Missing-info field names reported through the completeness gate.
const (
	missingMaterial    = "Material name not specified"
	missingDestination = "Destination department not specified"
	missingQuantity    = "Quantity not specified"
)

// ValidatorPolicy configures a Validator.
//
// StrictCompleteness selects the full validation path: incomplete requests
// come back as pending_clarification and shortfalls are checked against
// secondary warehouses. With StrictCompleteness off, an empty materials
// list is a structural error and no secondary fallback is attempted.
type ValidatorPolicy struct {
	StrictCompleteness bool

	// SecondaryLocations pairs a primary location with the alternate
	// warehouse worth checking when the primary runs short.
	SecondaryLocations map[string]string

	// SecondaryFraction estimates alternate-warehouse stock as a fraction
	// of the required quantity, rounded down. This is a placeholder
	// heuristic, not a live multi-warehouse query; the estimate is labeled
	// as such in the shortfall record.
	SecondaryFraction decimal.Decimal

	// ReorderFraction triggers a reorder warning when remaining stock
	// after the transaction would fall below this fraction of current
	// availability.
	ReorderFraction decimal.Decimal
}

// DefaultPolicy returns the strict policy with the RM Store A → RM Store B
// pairing, a 30% secondary estimate and a 20% reorder threshold.
func DefaultPolicy() ValidatorPolicy {
	return ValidatorPolicy{
		StrictCompleteness: true,
		SecondaryLocations: map[string]string{"RM Store A": "RM Store B"},
		SecondaryFraction:  decimal.RequireFromString("0.3"),
		ReorderFraction:    decimal.RequireFromString("0.2"),
	}
}

// SimplePolicy returns the non-strict policy: no completeness gate, no
// secondary-warehouse fallback, same reorder threshold.
func SimplePolicy() ValidatorPolicy {
	p := DefaultPolicy()
	p.StrictCompleteness = false
	return p
}

// Validator checks a partial request against an inventory snapshot and
// produces the finalized, status-bearing request record. It never mutates
// the snapshot and never fails: every outcome is a status plus warnings.
type Validator struct {
	policy ValidatorPolicy
	now    func() time.Time
}

// NewValidator creates a validator with the given policy.
func NewValidator(policy ValidatorPolicy) *Validator {
	return NewValidatorWithClock(policy, time.Now)
}

// NewValidatorWithClock creates a validator with an explicit clock, used by
// tests that need deterministic request ids and timestamps.
func NewValidatorWithClock(policy ValidatorPolicy, now func() time.Time) *Validator {
	return &Validator{policy: policy, now: now}
}

// Validate computes availability, shortfalls, warnings and status for the
// partial request. The returned record carries a time-based request id; the
// id is advisory only and durable identity belongs to the persistence store.
func (v *Validator) Validate(partial entities.PartialRequest, inv entities.Snapshot) entities.MaterialRequest {
	now := v.now()

	req := entities.MaterialRequest{
		RequestType:           partial.RequestType,
		RequestID:             fmt.Sprintf("MR-%d", now.UnixMilli()),
		RequestingDepartment:  partial.RequestingDepartment,
		Destination:           partial.Destination,
		SourceWarehouse:       partial.SourceWarehouse,
		Materials:             append([]entities.MaterialLine(nil), partial.Materials...),
		LinkedProductionOrder: partial.LinkedProductionOrder,
		LinkedSKU:             partial.LinkedSKU,
		Purpose:               partial.Purpose,
		Urgency:               partial.Urgency,
		Status:                entities.StatusDraft,
		Timestamp:             now,
	}
	if req.Urgency == "" {
		req.Urgency = entities.UrgencyNormal
	}
	if req.RequestingDepartment == "" {
		req.RequestingDepartment = req.Destination
	}
	if req.RequestingDepartment == "" {
		req.RequestingDepartment = "Unknown"
	}

	validation := entities.Validation{StockAvailable: true}

	if v.policy.StrictCompleteness {
		if missing := completenessGaps(req); len(missing) > 0 {
			validation.MissingInfo = missing
			req.Status = entities.StatusPendingClarification
			req.Validation = validation
			return req
		}
	} else if len(req.Materials) == 0 {
		validation.StockAvailable = false
		validation.Warnings = append(validation.Warnings, "No materials specified in request")
		req.Status = entities.StatusError
		req.Validation = validation
		return req
	}

	for i := range req.Materials {
		v.checkMaterial(&req.Materials[i], inv, &validation)
	}

	req.Status = deriveStatus(validation)
	req.Validation = validation
	return req
}

// completenessGaps lists the essential fields absent from the request.
func completenessGaps(req entities.MaterialRequest) []string {
	var missing []string
	if len(req.Materials) == 0 {
		missing = append(missing, missingMaterial)
	}
	if req.Destination == "" || req.Destination == "Unknown" {
		missing = append(missing, missingDestination)
	}
	if len(req.Materials) > 0 && req.Materials[0].RequestedQty.IsZero() {
		missing = append(missing, missingQuantity)
	}
	return missing
}

// checkMaterial resolves one line against the snapshot, filling available
// and shortage quantities and accumulating warnings and shortfalls.
func (v *Validator) checkMaterial(line *entities.MaterialLine, inv entities.Snapshot, validation *entities.Validation) {
	stock, ok := inv[line.Name]
	if !ok {
		validation.Warnings = append(validation.Warnings,
			fmt.Sprintf("Material %q not found in inventory", line.Name))
		validation.StockAvailable = false
		line.AvailableQty = decimal.Zero
		line.ShortageQty = line.RequestedQty
		return
	}

	line.AvailableQty = stock.Qty

	if line.RequestedQty.GreaterThan(stock.Qty) {
		line.ShortageQty = line.RequestedQty.Sub(stock.Qty)
		validation.StockAvailable = false

		shortfall := entities.Shortfall{
			Material:  line.Name,
			Required:  line.RequestedQty,
			Available: stock.Qty,
			Shortage:  line.ShortageQty,
		}

		if v.policy.StrictCompleteness {
			if alt, paired := v.policy.SecondaryLocations[stock.Location]; paired {
				estimate := line.RequestedQty.Mul(v.policy.SecondaryFraction).Floor()
				shortfall.AvailableInSecondary = []entities.SecondaryStock{
					{Location: alt, Quantity: estimate},
				}
				validation.PartialAvailable = true
				validation.Warnings = append(validation.Warnings,
					fmt.Sprintf("%s: Partial stock in %s. Check secondary locations.", line.Name, stock.Location))
			} else {
				validation.Warnings = append(validation.Warnings,
					fmt.Sprintf("%s: Insufficient stock. Purchase requisition required.", line.Name))
			}
		}

		validation.Shortfall = append(validation.Shortfall, shortfall)
		return
	}

	line.ShortageQty = decimal.Zero

	remaining := stock.Qty.Sub(line.RequestedQty)
	if remaining.LessThan(stock.Qty.Mul(v.policy.ReorderFraction)) {
		validation.Warnings = append(validation.Warnings,
			fmt.Sprintf("%s will be below reorder level after this transaction", line.Name))
	}
}

// deriveStatus maps the aggregate of per-material outcomes to a status:
// a secondary-sourcing signal downgrades insufficiency to partial_stock.
func deriveStatus(validation entities.Validation) entities.Status {
	switch {
	case validation.PartialAvailable && !validation.StockAvailable:
		return entities.StatusPartialStock
	case !validation.StockAvailable:
		return entities.StatusInsufficientStock
	default:
		return entities.StatusValidated
	}
}
