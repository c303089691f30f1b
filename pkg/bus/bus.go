package bus

import "sync"

// Envelope is one message on the in-process bus.
type Envelope struct {
	Topic   string
	Payload map[string]interface{}
}

// Bus is an explicit in-process broadcaster with subscribe/unsubscribe
// lifecycle, injected into both producers and consumers. It replaces what
// would otherwise be an ambient process-wide hook.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan Envelope
	next int
}

func New() *Bus {
	return &Bus{subs: make(map[int]chan Envelope)}
}

// Subscribe returns a buffered channel of envelopes and a token for
// Unsubscribe. The channel is closed on unsubscribe.
func (b *Bus) Subscribe(buffer int) (<-chan Envelope, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Envelope, buffer)
	b.subs[id] = ch
	return ch, id
}

func (b *Bus) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish delivers to every subscriber without blocking: a subscriber whose
// buffer is full misses the message. Producers fire and forget.
func (b *Bus) Publish(env Envelope) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- env:
		default:
		}
	}
}
