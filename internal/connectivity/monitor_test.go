package connectivity

import (
	"testing"
	"time"
)

func TestMonitor(t *testing.T) {
	t.Run("InitialProbe", func(t *testing.T) {
		m := NewMonitor(func() bool { return false })
		defer m.Close()
		if m.Online() {
			t.Error("Expected offline after failing probe")
		}

		m = NewMonitor(func() bool { return true })
		defer m.Close()
		if !m.Online() {
			t.Error("Expected online after succeeding probe")
		}
	})

	t.Run("EdgeTriggeredNotification", func(t *testing.T) {
		m := NewMonitor(func() bool { return true })
		defer m.Close()
		sub := m.Subscribe()

		// Same state again: no notification.
		m.Set(true)
		select {
		case v := <-sub:
			t.Fatalf("Expected no notification for repeated state, got %v", v)
		case <-time.After(20 * time.Millisecond):
		}

		m.Set(false)
		select {
		case v := <-sub:
			if v {
				t.Error("Expected offline notification")
			}
		case <-time.After(time.Second):
			t.Fatal("Expected a notification for the offline transition")
		}
		if m.Online() {
			t.Error("Expected Online() to report false")
		}
	})

	t.Run("FlapDeliversLatestState", func(t *testing.T) {
		m := NewMonitor(func() bool { return true })
		defer m.Close()
		sub := m.Subscribe()

		// Two transitions before the subscriber drains: the stale offline
		// value must be replaced, not keep the online one out.
		m.Set(false)
		m.Set(true)

		select {
		case v := <-sub:
			if !v {
				t.Error("Expected the latest (online) transition, got offline")
			}
		case <-time.After(time.Second):
			t.Fatal("Expected a pending notification")
		}
		if !m.Online() {
			t.Error("Expected Online() to report true")
		}
	})

	t.Run("CloseUnbinds", func(t *testing.T) {
		m := NewMonitor(func() bool { return true })
		sub := m.Subscribe()
		m.Close()

		if _, ok := <-sub; ok {
			t.Error("Expected subscriber channel to be closed")
		}

		// Set after Close must not panic or notify.
		m.Set(false)
	})
}
