package app

import "trustfluence_backend/internal/pkg/email"

// MockEmailSender используется для тестов и локальной разработки.
type MockEmailSender struct{}

func (m *MockEmailSender) Send(e *email.Email) error { return nil }
func (m *MockEmailSender) SendAccountApproved(to, name, loginEmail, tempPassword string) error {
	return nil
}
func (m *MockEmailSender) SendApplicationRejected(to, name, reason string) error { return nil }
