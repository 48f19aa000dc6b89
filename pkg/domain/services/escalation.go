package services

import (
	"strings"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

// Next-step scripts keyed by status.
var (
	nextStepsValidated = []string{
		"Ready to issue materials",
		"Scan to confirm pickup",
	}
	nextStepsPartial = []string{
		"Issue available stock now",
		"Transfer from secondary warehouse",
		"Create purchase requisition for shortage",
	}
	nextStepsInsufficient = []string{
		"Create purchase requisition",
		"Or adjust production quantity",
	}
)

// Decide derives the approval requirement, approval level and ordered next
// steps from the validated request. Rules fire independently and the most
// restrictive approval level wins (procurement > manager > supervisor).
func Decide(req entities.MaterialRequest) entities.MaterialRequest {
	level := entities.ApprovalSupervisor
	required := false

	if req.Urgency == entities.UrgencyUrgent {
		required = true
		level = entities.MoreRestrictive(level, entities.ApprovalManager)
	}
	if req.Status == entities.StatusInsufficientStock {
		required = true
		level = entities.MoreRestrictive(level, entities.ApprovalProcurement)
	}

	req.ApprovalRequired = required
	req.ApprovalLevel = level
	req.NextSteps = nextSteps(req)
	return req
}

func nextSteps(req entities.MaterialRequest) []string {
	switch req.Status {
	case entities.StatusValidated:
		return append([]string(nil), nextStepsValidated...)
	case entities.StatusPartialStock:
		return append([]string(nil), nextStepsPartial...)
	case entities.StatusInsufficientStock:
		return append([]string(nil), nextStepsInsufficient...)
	case entities.StatusPendingClarification:
		return []string{"Please provide: " + strings.Join(req.Validation.MissingInfo, ", ")}
	default:
		return nil
	}
}
