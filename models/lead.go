package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HeaderRow is the fixed column order for persisted lead rows. Appends must
// keep this order; the header is written once when the tab is created.
var HeaderRow = []string{
	"timestamp", "phone", "email", "first name", "last name",
	"dob", "pan", "employment_type", "pincode", "income",
	"consent_datetime", "ip_address", "partner_id",
}

// Lead represents a partner-submitted lead. The "first name" and "last name"
// JSON keys carry a literal space; everything else is snake_case.
type Lead struct {
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	FirstName       string          `json:"first name"`
	LastName        string          `json:"last name"`
	DOB             string          `json:"dob"`
	PAN             string          `json:"pan"`
	EmploymentType  string          `json:"employment_type"`
	Pincode         string          `json:"pincode"`
	Income          json.RawMessage `json:"income"`
	ConsentDatetime string          `json:"consent_datetime,omitempty"`
	IPAddress       string          `json:"ip_address,omitempty"`
	PartnerID       string          `json:"partner_id"`

	// IncomeAmount is the parsed income, set by validation.
	IncomeAmount int64 `json:"-"`
}

// IncomeValue parses the raw income field. A JSON number or a quoted numeric
// string are both accepted.
func (l *Lead) IncomeValue() (int64, error) {
	raw := strings.TrimSpace(string(l.Income))
	if raw == "" || raw == "null" {
		return 0, fmt.Errorf("income is required")
	}
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("income must be an integer")
	}
	return n, nil
}

// Row builds the persisted row for an already-validated lead. The timestamp
// column is server-side UTC, never client input; optional fields persist as
// empty strings.
func (l *Lead) Row(ts time.Time) []string {
	return []string{
		ts.UTC().Format(time.RFC3339),
		l.Phone,
		l.Email,
		l.FirstName,
		l.LastName,
		l.DOB,
		l.PAN,
		l.EmploymentType,
		l.Pincode,
		strconv.FormatInt(l.IncomeAmount, 10),
		l.ConsentDatetime,
		l.IPAddress,
		l.PartnerID,
	}
}
