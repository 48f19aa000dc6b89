package entities

import (
	"testing"
	"time"
)

func TestRequestType_Valid(t *testing.T) {
	valid := []RequestType{
		RequestTypeIssue, RequestTypeTransfer, RequestTypePurchase,
		RequestTypeMaintenance, RequestTypePackaging, RequestTypeQCLab,
	}
	for _, rt := range valid {
		if !rt.Valid() {
			t.Errorf("expected %q to be valid", rt)
		}
	}
	if RequestType("restock").Valid() {
		t.Error("expected unknown request type to be invalid")
	}
}

func TestStatus_Valid(t *testing.T) {
	valid := []Status{
		StatusDraft, StatusPendingClarification, StatusValidated,
		StatusPartialStock, StatusInsufficientStock, StatusError,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if Status("approved").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}

func TestMoreRestrictive(t *testing.T) {
	cases := []struct {
		a, b, want ApprovalLevel
	}{
		{ApprovalSupervisor, ApprovalManager, ApprovalManager},
		{ApprovalManager, ApprovalSupervisor, ApprovalManager},
		{ApprovalManager, ApprovalProcurement, ApprovalProcurement},
		{ApprovalProcurement, ApprovalManager, ApprovalProcurement},
		{ApprovalSupervisor, ApprovalSupervisor, ApprovalSupervisor},
	}
	for _, c := range cases {
		if got := MoreRestrictive(c.a, c.b); got != c.want {
			t.Errorf("MoreRestrictive(%q, %q) = %q, want %q", c.a, c.b, got, c.want)
		}
	}
}

func TestMaterialRequest_Persistable(t *testing.T) {
	cases := []struct {
		status Status
		want   bool
	}{
		{StatusDraft, false},
		{StatusError, false},
		{StatusPendingClarification, true},
		{StatusValidated, true},
		{StatusPartialStock, true},
		{StatusInsufficientStock, true},
	}
	for _, c := range cases {
		req := MaterialRequest{Status: c.status}
		if got := req.Persistable(); got != c.want {
			t.Errorf("Persistable() with status %q = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestMaterialRequest_AppendAudit(t *testing.T) {
	req := MaterialRequest{}
	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	req.AppendAudit("created", "Sewing Floor", at)
	req.AppendAudit("submitted", "Sewing Floor", at.Add(time.Minute))

	if len(req.AuditTrail) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(req.AuditTrail))
	}
	if req.AuditTrail[0].Action != "created" || req.AuditTrail[1].Action != "submitted" {
		t.Errorf("audit entries out of order: %+v", req.AuditTrail)
	}
	if req.AuditTrail[0].Actor != "Sewing Floor" {
		t.Errorf("expected actor Sewing Floor, got %q", req.AuditTrail[0].Actor)
	}
}
