package render

import (
	"fmt"
	"strings"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

func hindiTemplates() TemplateSet {
	return TemplateSet{
		entities.StatusPendingClarification: func(req entities.MaterialRequest) string {
			var b strings.Builder
			b.WriteString("❓ अधिक जानकारी चाहिए\n\n")
			b.WriteString(strings.Join(req.Validation.MissingInfo, "\n"))
			b.WriteString("\n\nकृपया सामग्री अनुरोध बनाने के लिए ये विवरण प्रदान करें।")
			return b.String()
		},

		entities.StatusError: func(req entities.MaterialRequest) string {
			return "❌ त्रुटि\n\n" + strings.Join(req.Validation.Warnings, "\n")
		},

		entities.StatusPartialStock: func(req entities.MaterialRequest) string {
			m := firstMaterial(req)
			sf := firstShortfall(req)

			var b strings.Builder
			b.WriteString("⚠️ आंशिक स्टॉक उपलब्ध\n\n")
			fmt.Fprintf(&b, "अनुरोध ID: %s\n", req.RequestID)
			fmt.Fprintf(&b, "सामग्री: %s (%s)\n", m.Name, m.MaterialCode)
			fmt.Fprintf(&b, "आवश्यक: %s %s\n", m.RequestedQty, m.UOM)
			fmt.Fprintf(&b, "उपलब्ध: %s %s\n", sf.Available, m.UOM)
			fmt.Fprintf(&b, "कमी: %s %s", sf.Shortage, m.UOM)
			for _, sec := range sf.AvailableInSecondary {
				fmt.Fprintf(&b, "\n\n📦 अतिरिक्त स्टॉक मिला:\n%s: %s %s (अनुमानित)", sec.Location, sec.Quantity, m.UOM)
			}
			b.WriteString("\n\n💡 विकल्प:\n")
			b.WriteString(numbered(req.NextSteps))
			return b.String()
		},

		entities.StatusInsufficientStock: func(req entities.MaterialRequest) string {
			m := firstMaterial(req)
			sf := firstShortfall(req)

			var b strings.Builder
			b.WriteString("❌ अपर्याप्त स्टॉक\n\n")
			fmt.Fprintf(&b, "अनुरोध ID: %s\n", req.RequestID)
			fmt.Fprintf(&b, "सामग्री: %s (%s)\n", m.Name, m.MaterialCode)
			fmt.Fprintf(&b, "आवश्यक: %s %s\n", m.RequestedQty, m.UOM)
			fmt.Fprintf(&b, "उपलब्ध: %s %s\n", sf.Available, m.UOM)
			fmt.Fprintf(&b, "कमी: %s %s\n", sf.Shortage, m.UOM)
			if len(req.Validation.Warnings) > 0 {
				b.WriteString("\n⚠️ चेतावनी:\n" + strings.Join(req.Validation.Warnings, "\n") + "\n")
			}
			fmt.Fprintf(&b, "\n🛒 आवश्यक कार्रवाई:\n%s\n", strings.Join(req.NextSteps, "\n"))
			fmt.Fprintf(&b, "\n📋 अनुमोदन: %s स्तर", strings.ToUpper(string(req.ApprovalLevel)))
			return b.String()
		},

		entities.StatusValidated: func(req entities.MaterialRequest) string {
			m := firstMaterial(req)

			var b strings.Builder
			b.WriteString("✅ सामग्री अनुरोध बनाया गया\n\n")
			urgencyMark := ""
			if req.Urgency == entities.UrgencyUrgent {
				urgencyMark = "🔴 "
			}
			fmt.Fprintf(&b, "अनुरोध ID: %s%s\n", urgencyMark, req.RequestID)
			fmt.Fprintf(&b, "प्रकार: %s\n", strings.ToUpper(string(req.RequestType)))
			fmt.Fprintf(&b, "विभाग: %s\n", req.RequestingDepartment)
			fmt.Fprintf(&b, "सामग्री: %s (%s)\n", m.Name, m.MaterialCode)
			fmt.Fprintf(&b, "मात्रा: %s %s\n", m.RequestedQty, m.UOM)
			if req.SourceWarehouse != "" {
				fmt.Fprintf(&b, "स्रोत: %s\n", req.SourceWarehouse)
			}
			fmt.Fprintf(&b, "गंतव्य: %s\n", req.Destination)
			if req.LinkedProductionOrder != "" {
				fmt.Fprintf(&b, "लिंक किया गया PO: %s\n", req.LinkedProductionOrder)
			}
			if req.LinkedSKU != "" {
				fmt.Fprintf(&b, "लिंक किया गया SKU: %s\n", req.LinkedSKU)
			}
			if req.Purpose != "" {
				fmt.Fprintf(&b, "उद्देश्य: %s\n", req.Purpose)
			}
			if req.ApprovalRequired {
				fmt.Fprintf(&b, "अनुमोदन: %s आवश्यक\n", strings.ToUpper(string(req.ApprovalLevel)))
			}
			b.WriteString("स्थिति: जारी करने के लिए तैयार\n")
			if len(req.Validation.Warnings) > 0 {
				b.WriteString("\n⚠️ चेतावनी:\n" + strings.Join(req.Validation.Warnings, "\n") + "\n")
			}
			b.WriteString("\n📱 अगले कदम:\n" + strings.Join(req.NextSteps, "\n"))
			return b.String()
		},
	}
}
