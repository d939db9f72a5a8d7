package connectivity

import (
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ProbeFunc reports whether the network is currently reachable.
type ProbeFunc func() bool

// DialProbe returns a probe that attempts a TCP connection to address.
func DialProbe(address string, timeout time.Duration) ProbeFunc {
	return func() bool {
		conn, err := net.DialTimeout("tcp", address, timeout)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}
}

// Monitor tracks connectivity transitions. The platform's online/offline
// signals are fed in through Set; subscribers are notified on transitions
// only, never on repeated reports of the same state.
type Monitor struct {
	mu     sync.Mutex
	online bool
	subs   []chan bool
	closed bool
}

// NewMonitor creates a Monitor and performs the initial synchronous check.
func NewMonitor(probe ProbeFunc) *Monitor {
	m := &Monitor{online: true}
	if probe != nil {
		m.online = probe()
	}
	return m
}

// Online reports the current connectivity state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Set records a connectivity report. Subscribers are only notified when the
// state actually changes.
func (m *Monitor) Set(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.online == online {
		return
	}
	m.online = online
	log.Info().Bool("online", online).Msg("connectivity changed")
	for _, sub := range m.subs {
		// Coalesce to the newest state: a subscriber that has not drained
		// the previous transition must not be left holding a stale one.
		select {
		case <-sub:
		default:
		}
		select {
		case sub <- online:
		default:
		}
	}
}

// Subscribe returns a channel receiving connectivity transitions.
func (m *Monitor) Subscribe() <-chan bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan bool, 1)
	m.subs = append(m.subs, ch)
	return ch
}

// Close unbinds all subscribers.
func (m *Monitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	for _, sub := range m.subs {
		close(sub)
	}
	m.subs = nil
}
