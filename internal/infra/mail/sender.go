package mail

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/alpha-site/internal/entity"
)

// Dialer is the part of gomail.Dialer the sender uses.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewEmailSender(host string, port int, user, password, from, fromName, to string) *EmailSender {
	if from == "" {
		from = user
	}
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		FromName: fromName,
		To:       to,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

// WithDialer swaps the SMTP transport, mainly for tests.
func (s *EmailSender) WithDialer(d Dialer) *EmailSender {
	s.dialer = d
	return s
}

// NotifyLead relays a lead to the business inbox.
func (s *EmailSender) NotifyLead(ctx context.Context, lead entity.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.To == "" || s.From == "" {
		return fmt.Errorf("mail: sender or recipient not configured")
	}

	m, err := s.BuildLeadMessage(lead)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: smtp send failed: %w", err)
	}
	return nil
}

// BuildLeadMessage renders the lead as a multipart text and html message.
func (s *EmailSender) BuildLeadMessage(lead entity.Lead) (*gomail.Message, error) {
	submitted := lead.SubmittedAt
	if submitted.IsZero() {
		submitted = time.Now().UTC()
	}
	data := leadEmailData{
		Lead:        lead,
		SubmittedAt: submitted.Format(time.RFC1123),
	}

	var text bytes.Buffer
	if err := leadTextTemplate.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("mail: render text body: %w", err)
	}
	var html bytes.Buffer
	if err := leadHTMLTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("mail: render html body: %w", err)
	}

	m := gomail.NewMessage()
	if s.FromName != "" {
		m.SetAddressHeader("From", s.From, s.FromName)
	} else {
		m.SetHeader("From", s.From)
	}
	m.SetHeader("To", s.To)
	m.SetAddressHeader("Reply-To", lead.Email, lead.Name)
	m.SetHeader("Subject", fmt.Sprintf("New Contact Form Submission from %s", lead.Name))
	m.SetBody("text/plain", text.String())
	m.AddAlternative("text/html", html.String())
	return m, nil
}
