// Package render turns finalized material requests into human-readable
// messages. Templates live in a locale→template-set registry keyed by
// status, so adding a locale never touches the status-branching logic.
package render

import (
	"fmt"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

// TemplateFunc formats one request for one status.
type TemplateFunc func(req entities.MaterialRequest) string

// TemplateSet maps statuses to their template functions for one locale.
type TemplateSet map[entities.Status]TemplateFunc

// FallbackLocale is used when a requested locale has no registered set.
const FallbackLocale = "en"

// Renderer renders requests using registered locale template sets. The
// built-in sets cover English ("en") and Hindi ("hi") with full parity of
// information content.
type Renderer struct {
	locales map[string]TemplateSet
}

// New returns a renderer with the built-in locales registered.
func New() *Renderer {
	r := &Renderer{locales: make(map[string]TemplateSet)}
	r.Register("en", englishTemplates())
	r.Register("hi", hindiTemplates())
	return r
}

// Register adds or replaces the template set for a locale.
func (r *Renderer) Register(locale string, set TemplateSet) {
	r.locales[locale] = set
}

// Supports reports whether a locale has a registered template set.
func (r *Renderer) Supports(locale string) bool {
	_, ok := r.locales[locale]
	return ok
}

// Render formats the request for the locale, falling back to English for
// unknown locales so a response can always be produced.
func (r *Renderer) Render(req entities.MaterialRequest, locale string) string {
	set, ok := r.locales[locale]
	if !ok {
		set = r.locales[FallbackLocale]
	}
	if fn, ok := set[req.Status]; ok {
		return fn(req)
	}
	return fmt.Sprintf("Request %s: %s", req.RequestID, req.Status)
}

// firstMaterial returns the leading material line, or a zero line when the
// request carries none (pending clarification and error records may not).
func firstMaterial(req entities.MaterialRequest) entities.MaterialLine {
	if len(req.Materials) > 0 {
		return req.Materials[0]
	}
	return entities.MaterialLine{UOM: "kg"}
}

// firstShortfall returns the leading shortfall entry, or a zero entry.
func firstShortfall(req entities.MaterialRequest) entities.Shortfall {
	if len(req.Validation.Shortfall) > 0 {
		return req.Validation.Shortfall[0]
	}
	m := firstMaterial(req)
	return entities.Shortfall{
		Material:  m.Name,
		Required:  m.RequestedQty,
		Available: m.AvailableQty,
		Shortage:  m.ShortageQty,
	}
}
