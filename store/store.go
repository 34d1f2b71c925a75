// Package store provides the conversation store: the mapping from sender
// identifier to dialog state shared by concurrent webhook deliveries.
package store

import (
	"context"

	"github.com/arieltecnotron/tecnobot-v1/conversation"
)

// ConversationStore maps sender identifiers to dialog state. Implementations
// must be safe for concurrent use; serializing the read-modify-write cycle for
// a single sender is the caller's job (see processor).
type ConversationStore interface {
	// Get returns the state for a sender, with found=false when the sender
	// has no active conversation.
	Get(ctx context.Context, senderID string) (state conversation.State, found bool, err error)

	// Set stores the state for a sender, refreshing its expiry.
	Set(ctx context.Context, senderID string, state conversation.State) error

	// Delete removes the sender's conversation, if any.
	Delete(ctx context.Context, senderID string) error

	// ActiveSenders lists the senders with a live conversation, in no
	// particular order.
	ActiveSenders(ctx context.Context) ([]string, error)

	// Backend names the implementation for logs and health reporting.
	Backend() string

	Close() error
}
