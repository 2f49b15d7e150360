package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string

	// Google Sheets backing store
	GoogleCredJSON string
	GoogleSheetID  string
	SheetTitle     string
	TabName        string

	// Store backend selection: "sheets" (default) or "xlsx" for a local workbook
	StoreBackend string
	XLSXPath     string

	// Partner registry: JSON object mapping API key -> partner id
	PartnerAPIKeys string

	// Kafka (comma-separated brokers; empty disables event publishing)
	KafkaBrokers string
	KafkaTopic   string

	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	EmailFrom string
}

var AppConfig Config

func LoadConfig() {
	// Try loading .env from different locations
	envLocations := []string{
		".env",              // project root
		"config/.env",       // config subdirectory
		"../config/.env",    // one level up
		"../../config/.env", // two levels up
	}

	envLoaded := false
	for _, location := range envLocations {
		if err := godotenv.Load(location); err == nil {
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = Config{
		ListenAddr: getEnvWithDefault("LISTEN_ADDR", ":8080"),

		GoogleCredJSON: os.Getenv("GOOGLE_CRED_JSON"),
		GoogleSheetID:  os.Getenv("GOOGLE_SHEET_ID"),
		SheetTitle:     getEnvWithDefault("SHEET_TITLE", "AadiFinance Leads"),
		TabName:        getEnvWithDefault("TAB_NAME", "Leads"),

		StoreBackend: getEnvWithDefault("STORE_BACKEND", "sheets"),
		XLSXPath:     getEnvWithDefault("XLSX_PATH", "leads.xlsx"),

		PartnerAPIKeys: getEnvWithDefault("PARTNER_API_KEYS", `{"YBJD1FRUY45THJ":"CM"}`),

		// Kafka settings (comma-separated brokers; empty disables publishing)
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getEnvWithDefault("KAFKA_TOPIC", "leads.accepted"),

		SMTPHost:  getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  getEnvWithDefault("SMTP_PORT", "587"),
		SMTPUser:  os.Getenv("SMTP_USER"),
		SMTPPass:  os.Getenv("SMTP_PASS"),
		EmailFrom: os.Getenv("EMAIL_FROM"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
