package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"insure-backend/internal/models"

	"gopkg.in/gomail.v2"
)

// EmailSender delivers quote notifications to the admin mailbox over SMTP.
type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	AdminTo  string
}

func NewEmailSender(host string, port int, user, password, adminTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		AdminTo:  adminTo,
	}
}

// Configured reports whether SMTP credentials were provided. Quote intake
// skips the email side effect when they were not.
func (s *EmailSender) Configured() bool {
	return s.Host != "" && s.User != ""
}

var quoteTemplate = template.Must(template.New("quote").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
    <h2 style="color: #004aad;">New Insurance Quote Request</h2>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Email:</strong> {{if .Email}}{{.Email}}{{else}}N/A{{end}}</p>
    <p><strong>Insurance Type:</strong> {{.InsuranceType}}</p>
    {{if .VehicleNumber}}<p><strong>Vehicle Number:</strong> {{.VehicleNumber}}</p>{{end}}
    {{if .DateOfBirth}}<p><strong>Date of Birth:</strong> {{.DateOfBirth}}</p>{{end}}
    <p><strong>Message:</strong></p>
    <p style="background: #f9f9f9; padding: 10px; border-radius: 5px;">{{if .Message}}{{.Message}}{{else}}No message provided{{end}}</p>
</div>
`))

// SendQuoteNotification emails the admin mailbox about a new quote request.
func (s *EmailSender) SendQuoteNotification(q *models.QuoteRequest) error {
	var body bytes.Buffer
	if err := quoteTemplate.Execute(&body, q); err != nil {
		return fmt.Errorf("failed to render quote email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.User)
	m.SetHeader("To", s.AdminTo)
	m.SetHeader("Subject", fmt.Sprintf("New Quote Request: %s - %s", q.InsuranceType, q.Name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send quote email: %w", err)
	}

	return nil
}
