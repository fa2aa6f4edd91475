package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/techhype/cardlink_backend/internal/platform/config"
)

const (
	dialTimeout = 8 * time.Second
	connTimeout = 15 * time.Second
)

var verifyTemplate = template.Must(template.New("verify").Parse(`
<table width="100%" cellspacing="0" cellpadding="0">
  <tr>
    <td align="center">
      <h1>Thank you for signing up on Techhype!</h1>
      <p>To verify your email, please click the button below:</p>
      <a href="{{.Link}}">Verify Email</a>
    </td>
  </tr>
</table>`))

var resetTemplate = template.Must(template.New("reset").Parse(`
<p>You requested a password reset for your Techhype account.</p>
<p>To reset your password, please click on the following link:</p>
<a href="{{.Link}}" target="_blank">Reset Password</a>
<p>If you did not request a password reset, please ignore this email.</p>`))

// SMTPMailer delivers verification and reset mails over SMTP with STARTTLS.
type SMTPMailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
	fromName string
	baseURL  string
	logger   *slog.Logger
}

// NewSMTPMailer builds a mailer from configuration. The base URL is embedded
// in the links we mail out, with the token as a path segment.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
		fromName: cfg.MailFromName,
		baseURL:  cfg.BaseURL,
		logger:   logger,
	}
}

// SendVerificationEmail mails the signup verification link.
func (m *SMTPMailer) SendVerificationEmail(ctx context.Context, to string, token string) error {
	link := fmt.Sprintf("%s/auth/verify/%s", m.baseURL, token)
	body, err := renderTemplate(verifyTemplate, link)
	if err != nil {
		return err
	}
	return m.send(ctx, to, "Email Verification - Techhype", body)
}

// SendPasswordResetEmail mails the password reset link.
func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, to string, token string) error {
	link := fmt.Sprintf("%s/auth/resetpassword/%s", m.baseURL, token)
	body, err := renderTemplate(resetTemplate, link)
	if err != nil {
		return err
	}
	return m.send(ctx, to, "Password Reset - Techhype", body)
}

func renderTemplate(tmpl *template.Template, link string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string{"Link": link}); err != nil {
		return "", fmt.Errorf("failed to render mail template: %w", err)
	}
	return buf.String(), nil
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if m.host == "" {
		m.logger.Warn("SMTP not configured, dropping outbound mail", slog.String("to", to), slog.String("subject", subject))
		return nil
	}

	fromHeader := fmt.Sprintf("%s <%s>", m.fromName, m.from)
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	if err := m.sendSMTP(ctx, to, []byte(msg)); err != nil {
		return fmt.Errorf("smtp delivery to %s failed: %w", to, err)
	}
	m.logger.Info("Mail sent", slog.String("to", to), slog.String("subject", subject))
	return nil
}

func (m *SMTPMailer) sendSMTP(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(m.host, m.port)

	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	// Deadline covers the whole SMTP conversation so a stalled server cannot
	// pin the goroutine.
	_ = conn.SetDeadline(time.Now().Add(connTimeout))

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return err
		}
	}
	if m.user != "" {
		auth := smtp.PlainAuth("", m.user, m.password, m.host)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}
	if err := c.Mail(m.from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
