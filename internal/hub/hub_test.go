package hub

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeConn collects events written to it.
type fakeConn struct {
	mu     sync.Mutex
	events []Event
}

func (c *fakeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, v.(Event))
	return nil
}

func (c *fakeConn) received() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

func TestHub_JoinLeaveRegistry(t *testing.T) {
	h := New()

	h.Join("r1", "u1", &fakeConn{})
	h.Join("r1", "u2", &fakeConn{})
	if got := h.RoomSize("r1"); got != 2 {
		t.Errorf("RoomSize = %d, want 2", got)
	}

	h.Leave("r1", "u1")
	if got := h.RoomSize("r1"); got != 1 {
		t.Errorf("RoomSize after leave = %d, want 1", got)
	}

	h.Leave("r1", "u2")
	if got := h.RoomSize("r1"); got != 0 {
		t.Errorf("RoomSize after last leave = %d, want 0", got)
	}

	// Leaving twice or from an unknown room is a no-op.
	h.Leave("r1", "u2")
	h.Leave("ghost", "u1")
}

func TestHub_BroadcastExcludesSender(t *testing.T) {
	h := New()
	sender := &fakeConn{}
	receiver := &fakeConn{}

	h.Join("r1", "u1", sender)
	h.Join("r1", "u2", receiver)

	h.Broadcast("r1", "u1", Event{"type": "chat", "message": "hi", "user_id": "u1"})

	found := false
	for _, ev := range receiver.received() {
		if ev["type"] == "chat" {
			found = true
			if ev["message"] != "hi" {
				t.Errorf("chat payload = %v, want hi", ev["message"])
			}
		}
	}
	if !found {
		t.Error("receiver did not get chat event")
	}

	for _, ev := range sender.received() {
		if ev["type"] == "chat" {
			t.Error("sender received its own chat event")
		}
	}
}

func TestHub_MembershipEvents(t *testing.T) {
	h := New()
	first := &fakeConn{}

	h.Join("r1", "u1", first)
	h.Join("r1", "u2", &fakeConn{})

	var sawJoin bool
	for _, ev := range first.received() {
		if ev["type"] == "user_joined" && ev["user_id"] == "u2" {
			sawJoin = true
		}
	}
	if !sawJoin {
		t.Error("existing member did not see user_joined for u2")
	}

	h.Leave("r1", "u2")
	var sawLeave bool
	for _, ev := range first.received() {
		if ev["type"] == "user_left" && ev["user_id"] == "u2" {
			sawLeave = true
		}
	}
	if !sawLeave {
		t.Error("remaining member did not see user_left for u2")
	}
}

func TestHub_RoomsAreIndependent(t *testing.T) {
	h := New()
	r1Conn := &fakeConn{}
	r2Conn := &fakeConn{}

	h.Join("r1", "u1", r1Conn)
	h.Join("r2", "u1", r2Conn)

	h.Broadcast("r1", "other", Event{"type": "seek", "position": 42})

	for _, ev := range r2Conn.received() {
		if ev["type"] == "seek" {
			t.Error("event leaked across rooms")
		}
	}
}

// A join racing the departure of a room's last remaining member must leave
// the joiner registered in the room the hub tracks, never in a reclaimed
// room object.
func TestHub_JoinRacingLastLeaveKeepsJoiner(t *testing.T) {
	h := New()

	for i := 0; i < 2000; i++ {
		h.Join("r1", "stayer", &fakeConn{})

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.Leave("r1", "stayer")
		}()
		go func() {
			defer wg.Done()
			h.Join("r1", "joiner", &fakeConn{})
		}()
		wg.Wait()

		if got := h.RoomSize("r1"); got != 1 {
			t.Fatalf("iteration %d: RoomSize = %d, want 1 (joiner lost)", i, got)
		}
		h.Leave("r1", "joiner")
	}
}

// A connection stuck mid-write must not hold up joins on the same room.
func TestHub_SlowWriterDoesNotBlockJoin(t *testing.T) {
	h := New()
	writing := make(chan struct{})
	release := make(chan struct{})
	stuck := &stallingConn{writing: writing, release: release}

	h.Join("r1", "u1", stuck)

	go h.Broadcast("r1", "other", Event{"type": "chat", "message": "hi"})
	<-writing

	joined := make(chan struct{})
	go func() {
		h.Join("r1", "u2", &fakeConn{})
		close(joined)
	}()

	select {
	case <-joined:
	case <-time.After(2 * time.Second):
		t.Fatal("Join blocked behind an in-flight broadcast write")
	}
	close(release)
}

// stallingConn blocks its first write until released and signals when that
// write has started. Later writes pass through.
type stallingConn struct {
	writing chan struct{}
	release chan struct{}
	stalled atomic.Bool
}

func (c *stallingConn) WriteJSON(v any) error {
	if c.stalled.CompareAndSwap(false, true) {
		close(c.writing)
		<-c.release
	}
	return nil
}

func TestHub_ConcurrentJoinLeave(t *testing.T) {
	h := New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			roomID := "r1"
			if n%2 == 0 {
				roomID = "r2"
			}
			userID := string(rune('a' + n%26))
			h.Join(roomID, userID, &fakeConn{})
			h.Broadcast(roomID, userID, Event{"type": "ping"})
			h.Leave(roomID, userID)
		}(i)
	}
	wg.Wait()
}
