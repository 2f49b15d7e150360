package utils

// Employment Type Constants
const (
	EmploymentSalaried     = "salaried"
	EmploymentSelfEmployed = "self-employed"
)

// Store Backend Constants
const (
	BackendSheets = "sheets"
	BackendXLSX   = "xlsx"
)
