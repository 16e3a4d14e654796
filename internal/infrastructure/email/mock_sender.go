package email

import (
	"context"
	"log"
	"sync"

	"pagalotodo/internal/domain/conciliation"
	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"
)

// MockSender accepts every message and keeps it in memory. Enabled with
// MAIL_MOCK for local runs.
type MockSender struct {
	mu   sync.Mutex
	sent map[string][]conciliation.ReportArtifact
}

var _ interfaces.IConciliationSender = (*MockSender)(nil)

func NewMockSender() *MockSender {
	return &MockSender{sent: make(map[string][]conciliation.ReportArtifact)}
}

func (m *MockSender) Send(_ context.Context, provider entities.Provider, artifacts []conciliation.ReportArtifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent[provider.ID] = append(m.sent[provider.ID], artifacts...)
	for _, a := range artifacts {
		log.Printf("[mail][sender] mock accepted provider_id=%s email=%s file=%s bytes=%d", provider.ID, provider.Email, a.FileName, len(a.Content))
	}
	return nil
}

// Sent returns what was delivered to a provider so far.
func (m *MockSender) Sent(providerID string) []conciliation.ReportArtifact {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]conciliation.ReportArtifact(nil), m.sent[providerID]...)
}
