package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestType classifies what kind of material movement is being asked for.
type RequestType string

const (
	RequestTypeIssue       RequestType = "issue"
	RequestTypeTransfer    RequestType = "transfer"
	RequestTypePurchase    RequestType = "purchase"
	RequestTypeMaintenance RequestType = "maintenance"
	RequestTypePackaging   RequestType = "packaging"
	RequestTypeQCLab       RequestType = "qc_lab"
)

// Valid reports whether the request type is one of the closed set.
func (t RequestType) Valid() bool {
	switch t {
	case RequestTypeIssue, RequestTypeTransfer, RequestTypePurchase,
		RequestTypeMaintenance, RequestTypePackaging, RequestTypeQCLab:
		return true
	}
	return false
}

// Status is the validation outcome of a material request. Every status is
// terminal: a follow-up utterance produces a fresh request, never a
// transition on an existing one.
type Status string

const (
	StatusDraft                Status = "draft"
	StatusPendingClarification Status = "pending_clarification"
	StatusValidated            Status = "validated"
	StatusPartialStock         Status = "partial_stock"
	StatusInsufficientStock    Status = "insufficient_stock"
	StatusError                Status = "error"
)

// Valid reports whether the status is one of the closed set.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingClarification, StatusValidated,
		StatusPartialStock, StatusInsufficientStock, StatusError:
		return true
	}
	return false
}

// Urgency indicates how quickly the requester needs the material.
type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyUrgent Urgency = "urgent"
)

// ApprovalLevel is the organizational tier that must sign off on a request.
type ApprovalLevel string

const (
	ApprovalSupervisor  ApprovalLevel = "supervisor"
	ApprovalManager     ApprovalLevel = "manager"
	ApprovalProcurement ApprovalLevel = "procurement"
)

func (l ApprovalLevel) rank() int {
	switch l {
	case ApprovalProcurement:
		return 3
	case ApprovalManager:
		return 2
	case ApprovalSupervisor:
		return 1
	}
	return 0
}

// MoreRestrictive returns whichever of the two levels sits higher in the
// escalation chain: procurement > manager > supervisor.
func MoreRestrictive(a, b ApprovalLevel) ApprovalLevel {
	if b.rank() > a.rank() {
		return b
	}
	return a
}

// MaterialLine is one requested material on a request. AvailableQty and
// ShortageQty are filled by the validator; once validated,
// ShortageQty == max(0, RequestedQty - AvailableQty).
type MaterialLine struct {
	MaterialCode string          `json:"material_code"`
	Name         string          `json:"name"`
	RequestedQty decimal.Decimal `json:"requested_qty"`
	AvailableQty decimal.Decimal `json:"available_qty"`
	ShortageQty  decimal.Decimal `json:"shortage_qty"`
	UOM          string          `json:"uom"`
}

// SecondaryStock is an estimated quantity available at an alternate
// warehouse. The quantity is a heuristic estimate, not a live count.
type SecondaryStock struct {
	Location string          `json:"location"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Shortfall records the gap between what was requested and what the primary
// location can supply for one material.
type Shortfall struct {
	Material             string           `json:"material"`
	Required             decimal.Decimal  `json:"required"`
	Available            decimal.Decimal  `json:"available"`
	Shortage             decimal.Decimal  `json:"shortage"`
	AvailableInSecondary []SecondaryStock `json:"available_in_secondary,omitempty"`
}

// Validation is the stock-check outcome attached to a request.
type Validation struct {
	StockAvailable   bool        `json:"stock_available"`
	PartialAvailable bool        `json:"partial_available"`
	Shortfall        []Shortfall `json:"shortfall,omitempty"`
	Warnings         []string    `json:"warnings,omitempty"`
	MissingInfo      []string    `json:"missing_info,omitempty"`
}

// AuditEntry is one append-only entry in a request's audit trail.
type AuditEntry struct {
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

// PartialRequest is the extractor's output: whichever fields could be
// resolved from free text, with no validation applied. The materials list
// may be empty and quantities may be zero; the validator interprets those
// as missing-information signals.
type PartialRequest struct {
	RequestType           RequestType
	RequestingDepartment  string
	Materials             []MaterialLine
	SourceWarehouse       string
	Destination           string
	LinkedProductionOrder string
	LinkedSKU             string
	Purpose               string
	Urgency               Urgency
}

// MaterialRequest is the finalized decision record for one operator
// utterance. It is constructed fresh on every parse+validate call and never
// mutated afterwards; the RequestID is a time-based, process-local
// placeholder and durable identity belongs to the persistence store.
type MaterialRequest struct {
	RequestType           RequestType    `json:"request_type"`
	RequestID             string         `json:"request_id"`
	RequestingDepartment  string         `json:"requesting_department"`
	Destination           string         `json:"destination"`
	SourceWarehouse       string         `json:"source_warehouse,omitempty"`
	Materials             []MaterialLine `json:"materials"`
	LinkedProductionOrder string         `json:"linked_production_order,omitempty"`
	LinkedSKU             string         `json:"linked_sku,omitempty"`
	Purpose               string         `json:"purpose,omitempty"`
	Urgency               Urgency        `json:"urgency"`
	Status                Status         `json:"status"`
	Validation            Validation     `json:"validation"`
	ApprovalRequired      bool           `json:"approval_required"`
	ApprovalLevel         ApprovalLevel  `json:"approval_level,omitempty"`
	NextSteps             []string       `json:"next_steps,omitempty"`
	Notes                 string         `json:"notes,omitempty"`
	AuditTrail            []AuditEntry   `json:"audit_trail,omitempty"`
	Timestamp             time.Time      `json:"timestamp"`
}

// Persistable reports whether the record should be handed to the
// persistence collaborator. Draft and error records are never persisted.
func (r *MaterialRequest) Persistable() bool {
	return r.Status != StatusDraft && r.Status != StatusError
}

// AppendAudit appends an audit entry. The trail is append-only; entries are
// never rewritten or removed.
func (r *MaterialRequest) AppendAudit(action, actor string, at time.Time) {
	r.AuditTrail = append(r.AuditTrail, AuditEntry{Action: action, Actor: actor, Timestamp: at})
}
