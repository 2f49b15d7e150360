package services

import (
	"fmt"
	"strconv"

	"lead-ingest/config"
	"lead-ingest/logger"
	"lead-ingest/models"

	"gopkg.in/gomail.v2"
)

// SendLeadAcknowledgment sends a short acknowledgment email to the lead after
// acceptance. Silently skipped unless SMTP is configured; runs in the
// background so a slow or failing SMTP server never blocks the request.
func SendLeadAcknowledgment(lead *models.Lead) {
	if config.AppConfig.SMTPUser == "" || config.AppConfig.SMTPPass == "" {
		return
	}

	to := lead.Email
	name := lead.FirstName

	go func() {
		if err := sendAcknowledgmentEmail(to, name); err != nil {
			logger.Warn("Failed to send acknowledgment email to %s: %v", to, err)
		}
	}()
}

func sendAcknowledgmentEmail(to, firstName string) error {
	from := config.AppConfig.EmailFrom
	if from == "" {
		from = config.AppConfig.SMTPUser
	}

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <p>Dear <strong>%s</strong>,</p>
    <p>Thank you for your application. We have received your details and our team will reach out to you shortly.</p>
    <p>Best regards,<br/>AadiFinance Team</p>
</body>
</html>
	`, firstName)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "We have received your application")
	m.SetBody("text/html", body)

	port := 587
	if p, err := strconv.Atoi(config.AppConfig.SMTPPort); err == nil {
		port = p
	}

	d := gomail.NewDialer(config.AppConfig.SMTPHost, port, config.AppConfig.SMTPUser, config.AppConfig.SMTPPass)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info("Acknowledgment email sent to: %s", to)
	return nil
}
