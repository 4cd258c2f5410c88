// Package mail — отправка писем сервиса (подтверждение почты, сброс пароля).
package mail

import (
	"gopkg.in/gomail.v2"

	"go.uber.org/zap"
)

// Sender — внешний коллаборатор доставки почты.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender шлёт письма через gomail/SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender создаёт отправителя. from — заголовок From целиком.
func NewSMTPSender(host string, port int, user, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}

// LogSender — заглушка для окружений без SMTP: письмо уходит в лог.
// Удобно при локальной разработке, ссылку можно скопировать из консоли.
type LogSender struct {
	Logger *zap.SugaredLogger
}

func (s *LogSender) Send(to, subject, htmlBody string) error {
	s.Logger.Infow("email (smtp not configured)", "to", to, "subject", subject, "body", htmlBody)
	return nil
}
