package email

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/dezporcento/tipshare-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// ReportRow is one work record rendered in the report e-mail table.
type ReportRow struct {
	Name     string
	Amount   string
	CheckIn  string
	CheckOut string
	Note     string
}

// ReportEmailData feeds the daily report template.
type ReportEmailData struct {
	WorkDate      string
	Weekday       string
	EmployeeCount int
	Total         string
	DayNote       string
	Rows          []ReportRow
	ArtifactURLs  []ArtifactLink
	GeneratedAt   string
}

// ArtifactLink is a download button in the report e-mail.
type ArtifactLink struct {
	Label string
	URL   string
}

// Attachment is a file attached to the report e-mail.
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Sender credentials come from the mail settings table, not from config,
// so they are passed per send.
type Sender struct {
	From        string
	AppPassword string
}

// EmailService defines the interface for sending emails
type EmailService interface {
	SendDailyReport(sender Sender, to string, data ReportEmailData, attachments []Attachment) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

// SendDailyReport sends the daily tip-share report with all artifacts attached
func (s *emailServiceImpl) SendDailyReport(sender Sender, to string, data ReportEmailData, attachments []Attachment) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "report.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Tip-share report - %s, %s", data.Weekday, data.WorkDate)
	return s.sendHTML(sender, to, subject, body.String(), attachments)
}

func (s *emailServiceImpl) sendHTML(sender Sender, to, subject, htmlBody string, attachments []Attachment) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	const boundary = "tipshare-report-boundary"

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", sender.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	msg.WriteString("\r\n")

	// HTML body part
	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")

	// Attachment parts, base64 encoded
	for _, att := range attachments {
		fmt.Fprintf(&msg, "--%s\r\n", boundary)
		fmt.Fprintf(&msg, "Content-Type: %s\r\n", att.ContentType)
		msg.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&msg, "Content-Disposition: attachment; filename=%q\r\n", att.FileName)
		msg.WriteString("\r\n")

		encoded := base64.StdEncoding.EncodeToString(att.Data)
		for len(encoded) > 76 {
			msg.WriteString(encoded[:76])
			msg.WriteString("\r\n")
			encoded = encoded[76:]
		}
		msg.WriteString(encoded)
		msg.WriteString("\r\n")
	}
	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	auth := smtp.PlainAuth("", sender.From, sender.AppPassword, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, sender.From, []string{to}, msg.Bytes())
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
