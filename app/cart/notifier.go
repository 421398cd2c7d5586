package cart

import "sync"

// Notifier fans cart changes out to subscribed views through an explicit
// subscription list. Subscribe returns the matching unsubscribe func.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Cart)
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(Cart))}
}

func (n *Notifier) Subscribe(fn func(Cart)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *Notifier) Publish(c Cart) {
	n.mu.Lock()
	subs := make([]func(Cart), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	for _, fn := range subs {
		fn(c)
	}
}
