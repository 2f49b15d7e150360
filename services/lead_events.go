package services

import (
	"time"

	"lead-ingest/config"
	"lead-ingest/logger"
	"lead-ingest/models"

	"github.com/google/uuid"
)

// LeadAcceptedEvent represents a lead acceptance event for Kafka
type LeadAcceptedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"` // "lead.accepted"
	PartnerID string    `json:"partner_id"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	PAN       string    `json:"pan"`
	Timestamp time.Time `json:"timestamp"`
}

// PublishLeadAcceptedEvent publishes a lead accepted event to Kafka after the
// row has been appended. Best-effort delivery: the publish runs in the
// background and a failure never affects the HTTP response.
func PublishLeadAcceptedEvent(lead *models.Lead) {
	event := LeadAcceptedEvent{
		EventID:   uuid.NewString(),
		EventType: "lead.accepted",
		PartnerID: lead.PartnerID,
		Phone:     lead.Phone,
		Email:     lead.Email,
		PAN:       lead.PAN,
		Timestamp: time.Now().UTC(),
	}

	go func() {
		if err := Publish(config.AppConfig.KafkaTopic, "partner-"+event.PartnerID, event); err != nil {
			logger.Warn("Failed to publish lead.accepted event for partner %s: %v", event.PartnerID, err)
		}
	}()
}
