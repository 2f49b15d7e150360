package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"lead-ingest/models"
)

// Field regex patterns
var (
	EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	PANRegex   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

const dobLayout = "2006-01-02"

// consent_datetime accepts RFC 3339 or a zone-less ISO-8601 timestamp
var consentLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

// ValidatePhone checks the phone is exactly 10 decimal digits
func ValidatePhone(phone string) error {
	if len(phone) != 10 || !isDigits(phone) {
		return fmt.Errorf("phone must be exactly 10 digits")
	}
	return nil
}

// ValidateEmail checks if email format is valid
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !EmailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateDOB checks the date of birth parses as YYYY-MM-DD
func ValidateDOB(dob string) error {
	if _, err := time.Parse(dobLayout, dob); err != nil {
		return fmt.Errorf("dob must be YYYY-MM-DD")
	}
	return nil
}

// ValidatePAN checks the PAN pattern after uppercasing and returns the
// canonical uppercased value
func ValidatePAN(pan string) (string, error) {
	upper := strings.ToUpper(pan)
	if !PANRegex.MatchString(upper) {
		return "", fmt.Errorf("invalid PAN format")
	}
	return upper, nil
}

// ValidateEmploymentType checks the employment type enum
func ValidateEmploymentType(employmentType string) error {
	if employmentType != EmploymentSalaried && employmentType != EmploymentSelfEmployed {
		return fmt.Errorf("employment_type must be %s or %s", EmploymentSalaried, EmploymentSelfEmployed)
	}
	return nil
}

// ValidatePincode checks the pincode is exactly 6 decimal digits
func ValidatePincode(pincode string) error {
	if len(pincode) != 6 || !isDigits(pincode) {
		return fmt.Errorf("pincode must be exactly 6 digits")
	}
	return nil
}

// ValidateConsentDatetime checks an optional ISO-8601 consent timestamp
func ValidateConsentDatetime(consent string) error {
	if consent == "" {
		return nil
	}
	for _, layout := range consentLayouts {
		if _, err := time.Parse(layout, consent); err == nil {
			return nil
		}
	}
	return fmt.Errorf("consent_datetime must be ISO-8601")
}

// ValidateLead runs every field rule and returns one entry per failing field.
// All checks run independently so the caller gets the full set of violations
// in a single pass. On success the lead is normalized in place: PAN is
// uppercased and IncomeAmount is set from the raw income field.
func ValidateLead(lead *models.Lead) map[string]string {
	fieldErrors := map[string]string{}

	if err := ValidatePhone(lead.Phone); err != nil {
		fieldErrors["phone"] = err.Error()
	}

	if err := ValidateEmail(lead.Email); err != nil {
		fieldErrors["email"] = err.Error()
	}

	if lead.FirstName == "" {
		fieldErrors["first name"] = "first name is required"
	}

	if lead.LastName == "" {
		fieldErrors["last name"] = "last name is required"
	}

	if err := ValidateDOB(lead.DOB); err != nil {
		fieldErrors["dob"] = err.Error()
	}

	if pan, err := ValidatePAN(lead.PAN); err != nil {
		fieldErrors["pan"] = err.Error()
	} else {
		lead.PAN = pan
	}

	if err := ValidateEmploymentType(lead.EmploymentType); err != nil {
		fieldErrors["employment_type"] = err.Error()
	}

	if err := ValidatePincode(lead.Pincode); err != nil {
		fieldErrors["pincode"] = err.Error()
	}

	if income, err := lead.IncomeValue(); err != nil {
		fieldErrors["income"] = err.Error()
	} else {
		lead.IncomeAmount = income
	}

	if err := ValidateConsentDatetime(lead.ConsentDatetime); err != nil {
		fieldErrors["consent_datetime"] = err.Error()
	}

	if lead.PartnerID == "" {
		fieldErrors["partner_id"] = "partner_id is required"
	}

	return fieldErrors
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
