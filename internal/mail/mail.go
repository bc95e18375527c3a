// Package mail delivers invitation email. The SMTP implementation sits
// behind the Sender interface so the invitation service can run against
// a fake in tests.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers one invitation email.
type Sender interface {
	SendInvitation(to, coupleNames, siteURL string) error
}

// SMTPConfig holds the dialer settings for the SMTP sender.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender delivers invitations through an SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates a sender for the given relay.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendInvitation sends the wedding invitation with a link to the public
// site.
func (s *SMTPSender) SendInvitation(to, coupleNames, siteURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Você está convidado: casamento de %s", coupleNames))
	m.SetBody("text/html", fmt.Sprintf(`
		<div style="font-family: Georgia, serif; max-width: 600px; margin: auto; padding: 24px; border: 1px solid #ddd; border-radius: 8px;">
			<h2 style="text-align: center;">%s</h2>
			<p>Temos a alegria de convidar você para o nosso casamento.</p>
			<p>Todos os detalhes — local, horário, lista de presentes e confirmação de presença — estão no nosso site:</p>
			<p style="text-align: center;"><a href="%s" style="display: inline-block; padding: 10px 20px; background-color: #8b7355; color: #fff; text-decoration: none; border-radius: 5px;">Ver convite</a></p>
			<p>Com carinho,<br>%s</p>
		</div>
	`, coupleNames, siteURL, coupleNames))

	return s.dialer.DialAndSend(m)
}
