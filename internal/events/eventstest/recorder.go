// Package eventstest provides an in-memory events.Publisher for tests.
package eventstest

import (
	"sync"

	"github.com/ariefcatur/go-user-orders/internal/events"
)

// Recorder keeps published envelopes in memory. It is safe for concurrent
// Publish calls; read Topics and Events once publishing has finished.
type Recorder struct {
	mu     sync.Mutex
	Topics []string
	Events []events.Envelope
}

func (r *Recorder) Publish(topic string, _ []byte, ev events.Envelope) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Topics = append(r.Topics, topic)
	r.Events = append(r.Events, ev)
}

// Len reports how many envelopes have been published so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Events)
}
