package processor

import (
	"github.com/arieltecnotron/tecnobot-v1/whatsapp"
)

// WhatsAppClientInterface defines the outbound send capability the processor
// needs from the WhatsApp client.
type WhatsAppClientInterface interface {
	SendTextMessage(to, body string) (*whatsapp.MessageResponse, error)
}
