package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stitchworks/matreq/pkg/domain/entities"
	"github.com/stitchworks/matreq/pkg/domain/repositories"
	domainservices "github.com/stitchworks/matreq/pkg/domain/services"
	"github.com/stitchworks/matreq/pkg/render"
)

// Input is one operator utterance plus its declared context.
type Input struct {
	Text       string
	Locale     string
	Department string
}

// Result pairs the finalized record with its rendered message and, when the
// record was persisted, the durable identifier the store assigned.
type Result struct {
	Request   entities.MaterialRequest
	Message   string
	DurableID string
}

// RequestService runs the interpretation pipeline: parse the utterance,
// validate it against the current stock snapshot, decide the escalation
// path, hand the record to the persistence collaborator and render the
// localized response. Each call is independent; the service holds no state
// between calls and may be used concurrently.
type RequestService struct {
	extractor *domainservices.Extractor
	validator *domainservices.Validator
	renderer  *render.Renderer
	inventory repositories.InventoryRepository
	store     repositories.RequestStore
}

// NewRequestService wires the pipeline. The store may be nil, in which case
// records are returned but not persisted.
func NewRequestService(
	extractor *domainservices.Extractor,
	validator *domainservices.Validator,
	renderer *render.Renderer,
	inventory repositories.InventoryRepository,
	store repositories.RequestStore,
) *RequestService {
	return &RequestService{
		extractor: extractor,
		validator: validator,
		renderer:  renderer,
		inventory: inventory,
		store:     store,
	}
}

// Process interprets one utterance. Interpretation outcomes, including
// incomplete or unsatisfiable requests, are expressed in the record's
// status; an error is returned only when a collaborator (inventory read or
// persistence write) fails.
func (s *RequestService) Process(ctx context.Context, in Input) (Result, error) {
	snapshot, err := s.inventory.Snapshot(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetching inventory snapshot: %w", err)
	}

	locale := in.Locale
	if locale == "" {
		locale = render.FallbackLocale
	}

	partial := s.extractor.Parse(in.Text, snapshot)
	if in.Department != "" {
		partial.RequestingDepartment = in.Department
	}

	req := s.validator.Validate(partial, snapshot)
	req = domainservices.Decide(req)

	actor := in.Department
	if actor == "" {
		actor = "assistant"
	}
	req.Notes = fmt.Sprintf("Request created via assistant in %s at %s", locale, req.Timestamp.Format(time.RFC3339))
	req.AppendAudit("created", actor, req.Timestamp)

	result := Result{Request: req}

	if s.store != nil && req.Persistable() {
		id, err := s.store.Save(ctx, req)
		if err != nil {
			return Result{}, fmt.Errorf("persisting request %s: %w", req.RequestID, err)
		}
		result.DurableID = id
	}

	result.Message = s.renderer.Render(req, locale)
	result.Request = req
	return result, nil
}
