package mail

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/bafnalights-dot/stock/internal/application/reports"
)

var _ reports.Sender = (*Sender)(nil)

// Config carries the SMTP connection parameters.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Sender delivers report emails over SMTP.
type Sender struct {
	cfg Config
}

// NewSender builds the sender.
func NewSender(cfg Config) *Sender { return &Sender{cfg: cfg} }

// Send mails the attachment to the recipient.
func (s *Sender) Send(to, subject, body, attachmentName string, attachment []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: send to %s: %w", to, err)
	}
	return nil
}
