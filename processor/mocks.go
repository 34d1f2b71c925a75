package processor

import (
	"sync"

	"github.com/arieltecnotron/tecnobot-v1/whatsapp"
)

// MockWhatsAppClient implements WhatsAppClientInterface for tests. It records
// every send and can be told to fail.
type MockWhatsAppClient struct {
	mu   sync.Mutex
	Sent []SentMessage
	Err  error
}

type SentMessage struct {
	To   string
	Body string
}

func (m *MockWhatsAppClient) SendTextMessage(to, body string) (*whatsapp.MessageResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	m.Sent = append(m.Sent, SentMessage{To: to, Body: body})
	return &whatsapp.MessageResponse{
		Messages: []whatsapp.MessageResult{{ID: "mock-message-id"}},
	}, nil
}

// LastSent returns the most recent send, or a zero value when none happened.
func (m *MockWhatsAppClient) LastSent() SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Sent) == 0 {
		return SentMessage{}
	}
	return m.Sent[len(m.Sent)-1]
}
