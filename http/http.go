package http

import (
	"net/http"

	"lead-ingest/http/handlers"
	"lead-ingest/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware
func SetupRoutes(leads *handlers.LeadService) {
	// Vendor Lead Ingestion API
	http.HandleFunc("/vendor/submit-lead", middleware.EnableCORS(leads.SubmitLead))
}
