// file: internals/features/notifications/service/mail_service.go
package service

import (
	"errors"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/configs"
)

var ErrMailNotConfigured = errors.New("SMTP is not configured")

// Sender pushes one message through the configured SMTP relay.
type Sender interface {
	Send(recipients []string, subject, body string) error
}

type smtpSender struct{}

func NewSMTPSender() Sender { return &smtpSender{} }

func (s *smtpSender) Send(recipients []string, subject, body string) error {
	if configs.SMTPHost == "" || configs.SMTPFrom == "" {
		return ErrMailNotConfigured
	}

	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		port = 587
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", configs.SMTPFrom)
	msg.SetHeader("Bcc", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(configs.SMTPHost, port, configs.SMTPUser, configs.SMTPPass)
	return dialer.DialAndSend(msg)
}
