package processor

import "sync"

// senderLocks serializes processing per sender identifier. The platform may
// redeliver or reorder webhook events, so two deliveries for the same sender
// can be in flight at once; without this lock their read-modify-write of the
// conversation state would interleave and lose updates. Locks are refcounted
// so the registry does not grow with every sender ever seen.
type senderLocks struct {
	mu    sync.Mutex
	locks map[string]*senderLock
}

type senderLock struct {
	mu   sync.Mutex
	refs int
}

func newSenderLocks() *senderLocks {
	return &senderLocks{locks: make(map[string]*senderLock)}
}

func (sl *senderLocks) lock(senderID string) {
	sl.mu.Lock()
	entry, ok := sl.locks[senderID]
	if !ok {
		entry = &senderLock{}
		sl.locks[senderID] = entry
	}
	entry.refs++
	sl.mu.Unlock()

	entry.mu.Lock()
}

func (sl *senderLocks) unlock(senderID string) {
	sl.mu.Lock()
	entry := sl.locks[senderID]
	entry.refs--
	if entry.refs == 0 {
		delete(sl.locks, senderID)
	}
	sl.mu.Unlock()

	entry.mu.Unlock()
}

// inFlight returns the number of senders with a delivery currently held or
// queued, for health reporting.
func (sl *senderLocks) inFlight() int {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return len(sl.locks)
}
