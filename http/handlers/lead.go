package handlers

import (
	"net/http"
	"time"

	resp "lead-ingest/http/response"
	"lead-ingest/logger"
	"lead-ingest/models"
	"lead-ingest/registry"
	"lead-ingest/services"
	"lead-ingest/storage"
	"lead-ingest/utils"
)

// LeadService encapsulates the lead ingestion flow. The store and registry
// are injected so tests can substitute a fake store and count side effects.
type LeadService struct {
	store    storage.RowStore
	registry *registry.Registry
	now      func() time.Time
}

func NewLeadService(store storage.RowStore, reg *registry.Registry) *LeadService {
	return &LeadService{
		store:    store,
		registry: reg,
		now:      time.Now,
	}
}

// SubmitLead handles POST /vendor/submit-lead.
//
// The body is parsed and validated structurally first, then business rules
// run in fixed order: auth, partner match, append. The append is the last
// step, so any earlier failure guarantees zero persisted state.
func (s *LeadService) SubmitLead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		resp.Failure(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var lead models.Lead
	if err := utils.DecodeJSONRequest(r, &lead); err != nil {
		resp.ValidationFailed(w, http.StatusUnprocessableEntity, map[string]string{
			"body": "invalid JSON payload: " + err.Error(),
		})
		return
	}

	if fieldErrors := utils.ValidateLead(&lead); len(fieldErrors) > 0 {
		resp.ValidationFailed(w, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	apiKey := r.Header.Get("X-Api-Key")
	partner, ok := s.registry.Partner(apiKey)
	if apiKey == "" || !ok {
		resp.Unauthorized(w)
		return
	}

	if partner != lead.PartnerID {
		resp.ValidationFailed(w, http.StatusBadRequest, map[string]string{
			"partner_id": "partner_id does not match supplied API key",
		})
		return
	}

	row := lead.Row(s.now())
	if err := s.store.AppendRow(r.Context(), row); err != nil {
		logger.Error("Error appending lead row for partner %s: %v", partner, err)
		resp.Failure(w, http.StatusInternalServerError, "Failed to persist lead")
		return
	}

	services.PublishLeadAcceptedEvent(&lead)
	services.SendLeadAcknowledgment(&lead)

	resp.Success(w, "Lead created successfully")
}
