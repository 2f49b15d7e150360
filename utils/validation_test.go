package utils

import (
	"encoding/json"
	"testing"

	"lead-ingest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLead() *models.Lead {
	return &models.Lead{
		Phone:          "9876543210",
		Email:          "ravi.kumar@example.com",
		FirstName:      "Ravi",
		LastName:       "Kumar",
		DOB:            "1990-01-01",
		PAN:            "ABCDE1234F",
		EmploymentType: EmploymentSalaried,
		Pincode:        "560001",
		Income:         json.RawMessage(`50000`),
		PartnerID:      "CM",
	}
}

func TestValidateLead_Valid(t *testing.T) {
	lead := validLead()

	fieldErrors := ValidateLead(lead)

	require.Empty(t, fieldErrors)
	assert.Equal(t, int64(50000), lead.IncomeAmount)
}

func TestValidateLead_PANUppercased(t *testing.T) {
	lead := validLead()
	lead.PAN = "abcde1234f"

	fieldErrors := ValidateLead(lead)

	require.Empty(t, fieldErrors)
	assert.Equal(t, "ABCDE1234F", lead.PAN)
}

func TestValidateLead_Phone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
	}{
		{"too short", "987654321"},
		{"too long", "98765432100"},
		{"non-digit char", "987654321x"},
		{"empty", ""},
		{"with plus prefix", "+919876543"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := validLead()
			lead.Phone = tt.phone

			fieldErrors := ValidateLead(lead)

			assert.Contains(t, fieldErrors, "phone")
		})
	}
}

func TestValidateLead_Email(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain address", "a@b.co", true},
		{"with plus tag", "ravi+leads@example.com", true},
		{"missing domain", "ravi@", false},
		{"missing at", "ravi.example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := validLead()
			lead.Email = tt.email

			fieldErrors := ValidateLead(lead)

			if tt.valid {
				assert.NotContains(t, fieldErrors, "email")
			} else {
				assert.Contains(t, fieldErrors, "email")
			}
		})
	}
}

func TestValidateLead_DOB(t *testing.T) {
	lead := validLead()
	lead.DOB = "01-01-1990"

	fieldErrors := ValidateLead(lead)

	assert.Contains(t, fieldErrors, "dob")
}

func TestValidateLead_PANPattern(t *testing.T) {
	tests := []struct {
		name string
		pan  string
	}{
		{"too few letters", "ABCD1234F"},
		{"digits first", "1234ABCDEF"},
		{"trailing digit", "ABCDE12345"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := validLead()
			lead.PAN = tt.pan

			fieldErrors := ValidateLead(lead)

			assert.Contains(t, fieldErrors, "pan")
		})
	}
}

func TestValidateLead_EmploymentType(t *testing.T) {
	lead := validLead()
	lead.EmploymentType = "freelancer"

	fieldErrors := ValidateLead(lead)

	assert.Contains(t, fieldErrors, "employment_type")

	lead = validLead()
	lead.EmploymentType = EmploymentSelfEmployed
	assert.Empty(t, ValidateLead(lead))
}

func TestValidateLead_Pincode(t *testing.T) {
	lead := validLead()
	lead.Pincode = "12345"

	fieldErrors := ValidateLead(lead)

	assert.Contains(t, fieldErrors, "pincode")
}

func TestValidateLead_Income(t *testing.T) {
	tests := []struct {
		name   string
		income string
		valid  bool
		want   int64
	}{
		{"json number", `50000`, true, 50000},
		{"numeric string", `"75000"`, true, 75000},
		{"float", `50000.5`, false, 0},
		{"word", `"plenty"`, false, 0},
		{"absent", ``, false, 0},
		{"null", `null`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := validLead()
			lead.Income = json.RawMessage(tt.income)

			fieldErrors := ValidateLead(lead)

			if tt.valid {
				require.NotContains(t, fieldErrors, "income")
				assert.Equal(t, tt.want, lead.IncomeAmount)
			} else {
				assert.Contains(t, fieldErrors, "income")
			}
		})
	}
}

func TestValidateLead_ConsentDatetime(t *testing.T) {
	lead := validLead()
	lead.ConsentDatetime = ""
	assert.Empty(t, ValidateLead(lead))

	lead.ConsentDatetime = "2025-08-01T10:30:00Z"
	assert.Empty(t, ValidateLead(lead))

	lead.ConsentDatetime = "2025-08-01T10:30:00"
	assert.Empty(t, ValidateLead(lead))

	lead.ConsentDatetime = "yesterday"
	assert.Contains(t, ValidateLead(lead), "consent_datetime")
}

func TestValidateLead_AggregatesAllFailures(t *testing.T) {
	lead := validLead()
	lead.Phone = "12345"
	lead.Pincode = "12"
	lead.PAN = "nope"
	lead.EmploymentType = "retired"

	fieldErrors := ValidateLead(lead)

	assert.Len(t, fieldErrors, 4)
	assert.Contains(t, fieldErrors, "phone")
	assert.Contains(t, fieldErrors, "pincode")
	assert.Contains(t, fieldErrors, "pan")
	assert.Contains(t, fieldErrors, "employment_type")
}
