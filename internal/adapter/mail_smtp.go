// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"

	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/models"
)

// implicitTLSPort is the SMTPS port where TLS starts before the greeting.
const implicitTLSPort = 465

const passwordResetSubject = "Reset your password"

var (
	//go:embed templates/password_reset.html
	mailTemplates embed.FS

	passwordResetTemplate = template.Must(template.New("password_reset.html").ParseFS(mailTemplates, "templates/password_reset.html"))
)

// sendMailFunc has the signature of smtp.SendMail.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	cfg  config.SMTP
	from string

	sendMail sendMailFunc
}

// NewSMTPMailer returns a Mailer delivering through an SMTP relay. Port 465
// uses implicit TLS, every other port STARTTLS when the server offers it.
func NewSMTPMailer(cfg config.Mail) (Mailer, error) {
	if cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("%w: smtp host is empty", ErrMailNotConfigured)
	}

	from := cfg.From
	if from == "" {
		from = cfg.SMTP.Username
	}

	return &smtpMailer{cfg: cfg.SMTP, from: from, sendMail: smtp.SendMail}, nil
}

func (m *smtpMailer) SendPasswordReset(ctx context.Context, mail models.PasswordResetMail) error {
	var body bytes.Buffer
	if err := passwordResetTemplate.Execute(&body, mail); err != nil {
		return fmt.Errorf("render password reset template: %w", err)
	}

	msg := buildHTMLMessage(m.from, mail.To, passwordResetSubject, body.String())
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	var auth smtp.Auth
	if m.cfg.Username != "" || m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if m.cfg.Port == implicitTLSPort {
		return m.sendImplicitTLS(ctx, addr, auth, mail.To, msg)
	}

	if err := m.sendMail(addr, auth, m.from, []string{mail.To}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (m *smtpMailer) sendImplicitTLS(ctx context.Context, addr string, auth smtp.Auth, to string, msg []byte) error {
	dialer := &tls.Dialer{Config: &tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err = client.Mail(m.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err = wc.Write(msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err = wc.Close(); err != nil {
		return fmt.Errorf("smtp data close: %w", err)
	}

	return client.Quit()
}

func buildHTMLMessage(from, to, subject, htmlBody string) []byte {
	return fmt.Appendf(nil, "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"utf-8\"\r\n\r\n%s", from, to, subject, htmlBody)
}
