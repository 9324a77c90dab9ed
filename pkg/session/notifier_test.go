package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dromero-dev/comanda-api/pkg/session"
)

func TestNotifierDeliversToAllSubscribers(t *testing.T) {
	n := session.NewNotifier()

	ch1, cancel1 := n.Subscribe()
	defer cancel1()
	ch2, cancel2 := n.Subscribe()
	defer cancel2()

	n.Notify(session.ExpiryEvent{Email: "mesero@local"})

	for _, ch := range []<-chan session.ExpiryEvent{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, "mesero@local", ev.Email)
			assert.False(t, ev.OccurredAt.IsZero())
		case <-time.After(time.Second):
			t.Fatal("expected event was not delivered")
		}
	}
}

func TestNotifierCancelStopsDelivery(t *testing.T) {
	n := session.NewNotifier()

	ch, cancel := n.Subscribe()
	cancel()
	cancel() // safe to call twice

	_, open := <-ch
	require.False(t, open)

	// Notifying after cancellation must not panic.
	n.Notify(session.ExpiryEvent{Email: "gone@local"})
}

func TestNotifierDoesNotBlockOnSlowSubscriber(t *testing.T) {
	n := session.NewNotifier()

	_, cancel := n.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Far more events than the subscriber buffer holds.
		for i := 0; i < 100; i++ {
			n.Notify(session.ExpiryEvent{Email: "busy@local"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked on a slow subscriber")
	}
}
