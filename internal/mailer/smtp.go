package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
)

// SMTPConfig holds configuration for the SMTP mailer.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// SMTPMailer delivers mail over plain SMTP with multipart MIME bodies.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (s *SMTPMailer) SendVerificationCode(ctx context.Context, to, code string, expiresInMinutes int) error {
	subject := "Verification Code - Mockrithm"

	htmlBody, err := buildCodeEmail(code, expiresInMinutes)
	if err != nil {
		return fmt.Errorf("build email body: %w", err)
	}

	textBody := buildCodeTextEmail(code, expiresInMinutes)
	msg := s.buildMIMEMessage(to, subject, textBody, htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPMailer) buildMIMEMessage(to, subject, textBody, htmlBody string) []byte {
	var buf bytes.Buffer
	boundary := "==MockrithmBoundary=="

	fromHeader := s.cfg.From
	if s.cfg.FromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.From)
	}

	buf.WriteString(fmt.Sprintf("From: %s\r\n", fromHeader))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary))
	buf.WriteString("\r\n")

	buf.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	buf.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	buf.WriteString("Content-Transfer-Encoding: 7bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(textBody)
	buf.WriteString("\r\n")

	buf.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("Content-Transfer-Encoding: 7bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)
	buf.WriteString("\r\n")

	buf.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return buf.Bytes()
}

func buildCodeTextEmail(code string, expiresInMinutes int) string {
	return fmt.Sprintf(`Verification Code

You requested a password reset. Use the code below to proceed:

%s

This code will expire in %d minutes. If you didn't request this, you can
safely ignore this email.
`, code, expiresInMinutes)
}

const codeEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Verification Code</title>
</head>
<body>
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 10px;">
        <h2 style="text-align: center; color: #333;">Verification Code</h2>
        <p>Hello,</p>
        <p>You requested a password reset. Use the code below to proceed:</p>
        <div style="text-align: center; margin: 30px 0;">
            <span style="font-size: 32px; font-weight: bold; letter-spacing: 5px; background: #f4f4f4; padding: 10px 20px; border-radius: 5px; color: #000;">{{.Code}}</span>
        </div>
        <p style="color: #666; font-size: 14px;">This code will expire in {{.ExpiresInMinutes}} minutes.</p>
        <p>If you didn't request this, you can safely ignore this email.</p>
        <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
        <p style="font-size: 12px; color: #999; text-align: center;">Mockrithm</p>
    </div>
</body>
</html>`

func buildCodeEmail(code string, expiresInMinutes int) (string, error) {
	tmpl, err := template.New("email").Parse(codeEmailTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]interface{}{
		"Code":             code,
		"ExpiresInMinutes": expiresInMinutes,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
