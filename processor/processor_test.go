package processor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arieltecnotron/tecnobot-v1/conversation"
	"github.com/arieltecnotron/tecnobot-v1/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessMessage_FirstMessageCreatesConversation(t *testing.T) {
	client := &MockWhatsAppClient{}
	conversations := store.NewMemory(0)
	defer conversations.Close()
	mp := NewMessageProcessor(client, conversations)

	err := mp.ProcessMessage(context.Background(), "5551", "hi")
	require.NoError(t, err)

	state, found, err := conversations.Get(context.Background(), "5551")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, conversation.StepWaitingName, state.Step)

	sent := client.LastSent()
	assert.Equal(t, "5551", sent.To)
	assert.Contains(t, sent.Body, "dime tu nombre")
}

func TestProcessMessage_TerminalFarewellDeletesConversation(t *testing.T) {
	client := &MockWhatsAppClient{}
	conversations := store.NewMemory(0)
	defer conversations.Close()
	mp := NewMessageProcessor(client, conversations)

	ctx := context.Background()
	require.NoError(t, conversations.Set(ctx, "5551", conversation.State{
		Step: conversation.StepAskMoreHelp,
		Data: conversation.Data{Name: "Ana", TopSize: "M", BottomSize: "34"},
	}))

	require.NoError(t, mp.ProcessMessage(ctx, "5551", "NO"))

	_, found, err := conversations.Get(ctx, "5551")
	require.NoError(t, err)
	assert.False(t, found, "terminal dialog must be deleted")
	assert.Contains(t, client.LastSent().Body, "excelente día")

	// The next message starts from scratch.
	require.NoError(t, mp.ProcessMessage(ctx, "5551", "hola"))
	state, found, err := conversations.Get(ctx, "5551")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, conversation.StepWaitingName, state.Step)
}

func TestProcessMessage_SendFailurePropagates(t *testing.T) {
	client := &MockWhatsAppClient{Err: errors.New("rate limited")}
	conversations := store.NewMemory(0)
	defer conversations.Close()
	mp := NewMessageProcessor(client, conversations)

	err := mp.ProcessMessage(context.Background(), "5551", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send reply")
}

// overlapStore counts read-modify-write cycles that overlap for the same
// sender. With the per-sender lock the count must stay at zero.
type overlapStore struct {
	*store.Memory
	inCritical int32
	overlaps   int32
}

func (s *overlapStore) Get(ctx context.Context, senderID string) (conversation.State, bool, error) {
	if atomic.AddInt32(&s.inCritical, 1) > 1 {
		atomic.AddInt32(&s.overlaps, 1)
	}
	time.Sleep(time.Millisecond)
	return s.Memory.Get(ctx, senderID)
}

func (s *overlapStore) Set(ctx context.Context, senderID string, state conversation.State) error {
	defer atomic.AddInt32(&s.inCritical, -1)
	return s.Memory.Set(ctx, senderID, state)
}

func (s *overlapStore) Delete(ctx context.Context, senderID string) error {
	defer atomic.AddInt32(&s.inCritical, -1)
	return s.Memory.Delete(ctx, senderID)
}

func TestProcessMessage_SerializesPerSender(t *testing.T) {
	client := &MockWhatsAppClient{}
	memory := store.NewMemory(0)
	defer memory.Close()
	conversations := &overlapStore{Memory: memory}
	mp := NewMessageProcessor(client, conversations)

	const deliveries = 10
	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = mp.ProcessMessage(context.Background(), "5551", "hola")
		}()
	}
	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&conversations.overlaps),
		"deliveries for one sender must not interleave")
	assert.Len(t, client.Sent, deliveries)
	assert.Zero(t, mp.locks.inFlight(), "lock registry must drain")
}

func TestGetProcessorStatus(t *testing.T) {
	conversations := store.NewMemory(0)
	defer conversations.Close()
	mp := NewMessageProcessor(&MockWhatsAppClient{}, conversations)

	status := mp.GetProcessorStatus()
	assert.Equal(t, "memory", status.StoreBackend)
	assert.Zero(t, status.InFlight)
}
