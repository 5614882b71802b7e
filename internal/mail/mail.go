package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/versepath/scripture-companion/internal/bible"
)

type Mailer struct {
	FromName string
	From     string
	Password string
	Host     string
	Port     string
	auth     smtp.Auth
}

func NewMail(from, fromName, password, host, port string) *Mailer {
	auth := smtp.PlainAuth("", from, password, host)
	return &Mailer{
		FromName: fromName,
		From:     from,
		Password: password,
		Host:     host,
		Port:     port,
		auth:     auth,
	}
}

var dailyVerseTemplate = template.Must(template.New("daily-verse").Parse(`
<div style="font-family: Georgia, serif; max-width: 480px; margin: 0 auto;">
  <h2>Your verse for today</h2>
  <blockquote style="font-size: 1.1em; line-height: 1.6;">{{.Text}}</blockquote>
  <p><strong>{{.Reference}}</strong></p>
  <p style="color: #888; font-size: 0.85em;">Sent by Scripture Companion</p>
</div>
`))

// SendDailyVerse emails today's verse to the configured recipient.
func (m *Mailer) SendDailyVerse(to string, verse *bible.VerseWithBook) error {
	reference := bible.FormatReference(verse.BookName, verse.Chapter, verse.Verse.Verse, 0)

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	body.WriteString(fmt.Sprintf("From: %s <%s>\r\n", m.FromName, m.From))
	body.WriteString(fmt.Sprintf("To: %s\r\n", to))
	body.WriteString(fmt.Sprintf("Subject: Your daily verse: %s\r\n\r\n", reference))

	data := map[string]string{
		"Text":      verse.Text,
		"Reference": reference,
	}
	if err := dailyVerseTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	if err := smtp.SendMail(addr, m.auth, m.From, []string{to}, body.Bytes()); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
