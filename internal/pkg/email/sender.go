package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender реализация Sender поверх gomail
type SMTPSender struct {
	config    Config
	templates *TemplateManager
	dialer    *gomail.Dialer
}

// NewSMTPSender создает новый SMTP отправитель
func NewSMTPSender(config Config) (Sender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	return &SMTPSender{
		config:    config,
		templates: tm,
		dialer: gomail.NewDialer(
			config.SMTPHost,
			config.SMTPPort,
			config.Username,
			config.Password,
		),
	}, nil
}

// Send отправляет email
func (s *SMTPSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.Body != "" {
		m.SetBody("text/plain", email.Body)
		if email.HTMLBody != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		}
	} else {
		m.SetBody("text/html", email.HTMLBody)
	}

	return s.dialer.DialAndSend(m)
}

// SendAccountApproved отправляет письмо с временным паролем
func (s *SMTPSender) SendAccountApproved(to, name, loginEmail, tempPassword string) error {
	data := AccountApprovedData{
		TemplateData: s.baseData(name),
		LoginEmail:   loginEmail,
		TempPassword: tempPassword,
	}

	htmlBody, err := s.templates.Render("account_approved", data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return s.Send(&Email{
		To:       []string{to},
		Subject:  "Ваша заявка одобрена",
		HTMLBody: htmlBody,
	})
}

// SendApplicationRejected отправляет уведомление об отклонении заявки
func (s *SMTPSender) SendApplicationRejected(to, name, reason string) error {
	data := ApplicationRejectedData{
		TemplateData: s.baseData(name),
		Reason:       reason,
	}

	htmlBody, err := s.templates.Render("application_rejected", data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return s.Send(&Email{
		To:       []string{to},
		Subject:  "Решение по вашей заявке",
		HTMLBody: htmlBody,
	})
}

func (s *SMTPSender) baseData(name string) TemplateData {
	return TemplateData{
		UserName:     name,
		SupportEmail: s.config.FromEmail,
		CompanyName:  s.config.FromName,
	}
}
