package mailer

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail over SMTP. When no SMTP host is configured
// the mailer is disabled and Send becomes a logged no-op, so local setups
// work without mail credentials.
type Mailer struct {
	host     string
	port     int
	username string
	password string
}

func New(host string, port int, username, password string) *Mailer {
	return &Mailer{host: host, port: port, username: username, password: password}
}

func (m *Mailer) Enabled() bool {
	return m.host != ""
}

// SendEmail sends a single HTML email.
func (m *Mailer) SendEmail(to string, subject string, body string) error {
	if !m.Enabled() {
		log.Printf("Mailer disabled, skipping email to %s", to)
		return nil
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.username)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)

	if err := dialer.DialAndSend(mailer); err != nil {
		log.Printf("Failed to send email: %v", err)
		return err
	}

	log.Printf("Email sent successfully to %s", to)
	return nil
}
