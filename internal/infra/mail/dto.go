package mail

import "github.com/xavierca1/alpha-site/internal/entity"

// leadEmailData feeds both the text and html templates.
type leadEmailData struct {
	Lead        entity.Lead
	SubmittedAt string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
	To       string

	dialer Dialer
}
