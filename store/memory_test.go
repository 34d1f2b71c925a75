package store

import (
	"context"
	"testing"
	"time"

	"github.com/arieltecnotron/tecnobot-v1/conversation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetDelete(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	ctx := context.Background()

	_, found, err := m.Get(ctx, "5551")
	require.NoError(t, err)
	assert.False(t, found)

	state := conversation.State{
		Step: conversation.StepWaitingTopSize,
		Data: conversation.Data{Name: "Ana"},
	}
	require.NoError(t, m.Set(ctx, "5551", state))

	got, found, err := m.Get(ctx, "5551")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, state, got)

	require.NoError(t, m.Delete(ctx, "5551"))

	_, found, err = m.Get(ctx, "5551")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory_DeleteUnknownSenderIsNoop(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()

	assert.NoError(t, m.Delete(context.Background(), "nobody"))
}

func TestMemory_TTLExpiry(t *testing.T) {
	m := NewMemory(20 * time.Millisecond)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "5551", conversation.NewState()))

	_, found, err := m.Get(ctx, "5551")
	require.NoError(t, err)
	require.True(t, found)

	time.Sleep(40 * time.Millisecond)

	_, found, err = m.Get(ctx, "5551")
	require.NoError(t, err)
	assert.False(t, found, "expired conversation must be gone")
}

func TestMemory_SetRefreshesDeadline(t *testing.T) {
	m := NewMemory(50 * time.Millisecond)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "5551", conversation.NewState()))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, m.Set(ctx, "5551", conversation.NewState()))
	time.Sleep(30 * time.Millisecond)

	_, found, err := m.Get(ctx, "5551")
	require.NoError(t, err)
	assert.True(t, found, "refreshed conversation must still be live")
}

func TestMemory_ActiveSenders(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	ctx := context.Background()

	senders, err := m.ActiveSenders(ctx)
	require.NoError(t, err)
	assert.Empty(t, senders)

	require.NoError(t, m.Set(ctx, "5551", conversation.NewState()))
	require.NoError(t, m.Set(ctx, "5552", conversation.NewState()))

	senders, err = m.ActiveSenders(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"5551", "5552"}, senders)
}
