package render

import (
	"fmt"
	"strings"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

func englishTemplates() TemplateSet {
	return TemplateSet{
		entities.StatusPendingClarification: func(req entities.MaterialRequest) string {
			var b strings.Builder
			b.WriteString("❓ Need More Information\n\n")
			b.WriteString(strings.Join(req.Validation.MissingInfo, "\n"))
			b.WriteString("\n\nPlease provide these details to create the material request.")
			return b.String()
		},

		entities.StatusError: func(req entities.MaterialRequest) string {
			return "❌ Error\n\n" + strings.Join(req.Validation.Warnings, "\n")
		},

		entities.StatusPartialStock: func(req entities.MaterialRequest) string {
			m := firstMaterial(req)
			sf := firstShortfall(req)

			var b strings.Builder
			b.WriteString("⚠️ Partial Stock Available\n\n")
			fmt.Fprintf(&b, "Request ID: %s\n", req.RequestID)
			fmt.Fprintf(&b, "Material: %s (%s)\n", m.Name, m.MaterialCode)
			fmt.Fprintf(&b, "Required: %s %s\n", m.RequestedQty, m.UOM)
			fmt.Fprintf(&b, "Available: %s %s\n", sf.Available, m.UOM)
			fmt.Fprintf(&b, "Shortage: %s %s", sf.Shortage, m.UOM)
			for _, sec := range sf.AvailableInSecondary {
				fmt.Fprintf(&b, "\n\n📦 Additional Stock Found:\n%s: %s %s (estimated)", sec.Location, sec.Quantity, m.UOM)
			}
			b.WriteString("\n\n💡 Options:\n")
			b.WriteString(numbered(req.NextSteps))
			return b.String()
		},

		entities.StatusInsufficientStock: func(req entities.MaterialRequest) string {
			m := firstMaterial(req)
			sf := firstShortfall(req)

			var b strings.Builder
			b.WriteString("❌ Insufficient Stock\n\n")
			fmt.Fprintf(&b, "Request ID: %s\n", req.RequestID)
			fmt.Fprintf(&b, "Material: %s (%s)\n", m.Name, m.MaterialCode)
			fmt.Fprintf(&b, "Required: %s %s\n", m.RequestedQty, m.UOM)
			fmt.Fprintf(&b, "Available: %s %s\n", sf.Available, m.UOM)
			fmt.Fprintf(&b, "Shortage: %s %s\n", sf.Shortage, m.UOM)
			if len(req.Validation.Warnings) > 0 {
				b.WriteString("\n⚠️ Warnings:\n" + strings.Join(req.Validation.Warnings, "\n") + "\n")
			}
			fmt.Fprintf(&b, "\n🛒 Action Required:\n%s\n", strings.Join(req.NextSteps, "\n"))
			fmt.Fprintf(&b, "\n📋 Approval: %s level", strings.ToUpper(string(req.ApprovalLevel)))
			return b.String()
		},

		entities.StatusValidated: func(req entities.MaterialRequest) string {
			m := firstMaterial(req)

			var b strings.Builder
			b.WriteString("✅ Material Request Created\n\n")
			urgencyMark := ""
			if req.Urgency == entities.UrgencyUrgent {
				urgencyMark = "🔴 "
			}
			fmt.Fprintf(&b, "Request ID: %s%s\n", urgencyMark, req.RequestID)
			fmt.Fprintf(&b, "Type: %s\n", strings.ToUpper(string(req.RequestType)))
			fmt.Fprintf(&b, "Department: %s\n", req.RequestingDepartment)
			fmt.Fprintf(&b, "Material: %s (%s)\n", m.Name, m.MaterialCode)
			fmt.Fprintf(&b, "Quantity: %s %s\n", m.RequestedQty, m.UOM)
			if req.SourceWarehouse != "" {
				fmt.Fprintf(&b, "From: %s\n", req.SourceWarehouse)
			}
			fmt.Fprintf(&b, "To: %s\n", req.Destination)
			if req.LinkedProductionOrder != "" {
				fmt.Fprintf(&b, "Linked PO: %s\n", req.LinkedProductionOrder)
			}
			if req.LinkedSKU != "" {
				fmt.Fprintf(&b, "Linked SKU: %s\n", req.LinkedSKU)
			}
			if req.Purpose != "" {
				fmt.Fprintf(&b, "Purpose: %s\n", req.Purpose)
			}
			if req.ApprovalRequired {
				fmt.Fprintf(&b, "Approval: %s required\n", strings.ToUpper(string(req.ApprovalLevel)))
			}
			b.WriteString("Status: Ready to issue\n")
			if len(req.Validation.Warnings) > 0 {
				b.WriteString("\n⚠️ Warnings:\n" + strings.Join(req.Validation.Warnings, "\n") + "\n")
			}
			b.WriteString("\n📱 Next Steps:\n" + strings.Join(req.NextSteps, "\n"))
			return b.String()
		},
	}
}

func numbered(steps []string) string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	return strings.Join(out, "\n")
}
