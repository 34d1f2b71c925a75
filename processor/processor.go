package processor

import (
	"context"
	"fmt"

	"github.com/arieltecnotron/tecnobot-v1/conversation"
	"github.com/arieltecnotron/tecnobot-v1/store"

	"github.com/rs/zerolog/log"
)

type MessageProcessor struct {
	whatsappClient WhatsAppClientInterface
	conversations  store.ConversationStore
	locks          *senderLocks
}

func NewMessageProcessor(whatsappClient WhatsAppClientInterface, conversations store.ConversationStore) *MessageProcessor {
	return &MessageProcessor{
		whatsappClient: whatsappClient,
		conversations:  conversations,
		locks:          newSenderLocks(),
	}
}

// ProcessMessage advances the sender's dialog with one inbound text and sends
// the resulting reply. The whole cycle runs under the sender's lock so that
// redelivered or reordered events for the same sender cannot interleave.
// Errors propagate to the webhook handler, which acks with a server error so
// the platform retries the delivery.
func (mp *MessageProcessor) ProcessMessage(ctx context.Context, senderID, text string) error {
	mp.locks.lock(senderID)
	defer mp.locks.unlock(senderID)

	state, found, err := mp.conversations.Get(ctx, senderID)
	if err != nil {
		return fmt.Errorf("failed to load conversation: %w", err)
	}
	if !found {
		state = conversation.NewState()
	}

	next, reply, done := conversation.Advance(state, text)

	if done {
		if err := mp.conversations.Delete(ctx, senderID); err != nil {
			return fmt.Errorf("failed to delete conversation: %w", err)
		}
	} else {
		if err := mp.conversations.Set(ctx, senderID, next); err != nil {
			return fmt.Errorf("failed to store conversation: %w", err)
		}
	}

	if _, err := mp.whatsappClient.SendTextMessage(senderID, reply); err != nil {
		log.Error().
			Err(err).
			Str("sender_id", senderID).
			Msg("Error sending reply")
		return fmt.Errorf("failed to send reply: %w", err)
	}

	log.Info().
		Str("sender_id", senderID).
		Str("step", string(next.Step)).
		Bool("done", done).
		Msg("Processed message")

	return nil
}

// Status is the health snapshot exposed by the server.
type Status struct {
	StoreBackend string `json:"store_backend"`
	InFlight     int    `json:"in_flight"`
}

func (mp *MessageProcessor) GetProcessorStatus() Status {
	return Status{
		StoreBackend: mp.conversations.Backend(),
		InFlight:     mp.locks.inFlight(),
	}
}
