package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"dialdesk/internal/config"
)

// Sender delivers a password-reset code to an account email.
type Sender interface {
	SendOTP(to, code string) error
}

type EmailSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

func NewEmailSender(cfg config.SMTPConfig) *EmailSender {
	return &EmailSender{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

const otpBody = `<p>Hello,</p>
<p>Your password reset code is:</p>
<h2>%s</h2>
<p>This code expires in 10 minutes. If you did not request a reset, you can ignore this email.</p>`

func (s *EmailSender) SendOTP(to, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your password reset code")
	m.SetBody("text/html", fmt.Sprintf(otpBody, code))

	d := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}
	return nil
}
