package email

import (
	"bytes"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"kentkonut/config"
	"kentkonut/pkg/logger"
)

//go:embed templates/*.html
var templateFiles embed.FS

var templates = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// EmailType selects the template
type EmailType string

const (
	// TypeFeedbackNotification sent to staff when a citizen submits feedback
	TypeFeedbackNotification EmailType = "feedback_notification"
)

const defaultProductName = "Kent Konut"

// EmailData template input
type EmailData struct {
	To              string
	Subject         string
	ProductName     string
	FeedbackID      int64
	Category        string
	Name            string
	Email           string
	Phone           string
	FeedbackSubject string
	Message         string
	CreatedAt       time.Time
}

// Sender delivers rendered mail
type Sender interface {
	SendEmail(emailType EmailType, data EmailData) error
}

// Service SMTP mail sender
type Service struct {
	config config.EmailConfig
	logger *logger.Logger
}

// NewService creates the SMTP mail service
func NewService(cfg config.EmailConfig, logger *logger.Logger) *Service {
	return &Service{config: cfg, logger: logger}
}

// Enabled reports whether SMTP is configured
func (s *Service) Enabled() bool {
	return s.config.Host != "" && s.config.From != ""
}

// SendEmail renders the template for emailType and sends it
func (s *Service) SendEmail(emailType EmailType, data EmailData) error {
	if data.ProductName == "" {
		data.ProductName = defaultProductName
	}
	if data.Subject == "" && emailType == TypeFeedbackNotification {
		data.Subject = fmt.Sprintf("%s - Yeni geri bildirim: %s", data.ProductName, data.FeedbackSubject)
	}

	content, err := Render(emailType, data)
	if err != nil {
		return err
	}

	msg := buildMessage(fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From), data.To, data.Subject, content)
	return s.send(data.To, msg)
}

// Render executes the template for emailType
func Render(emailType EmailType, data EmailData) (string, error) {
	buf := new(bytes.Buffer)
	if err := templates.ExecuteTemplate(buf, string(emailType)+".html", data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}

func buildMessage(from, to, subject, body string) []byte {
	headers := [][2]string{
		{"From", from},
		{"To", to},
		{"Subject", mime.QEncoding.Encode("utf-8", subject)},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
	}

	var sb strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&sb, "%s: %s\r\n", h[0], h[1])
	}
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return []byte(sb.String())
}

func (s *Service) send(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		return fmt.Errorf("failed to open TLS connection: %w", err)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if s.config.Username != "" {
		auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}

	if err = client.Mail(s.config.From); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	s.logger.Info("email sent", "to", to)
	return client.Quit()
}
