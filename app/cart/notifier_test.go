package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierPublishesToSubscribers(t *testing.T) {
	n := NewNotifier()

	var got []int
	unsubscribe := n.Subscribe(func(c Cart) {
		got = append(got, c.ItemCount())
	})

	n.Publish(Cart{}.AddLine(testItem(1, 299), 2, nil))
	assert.Equal(t, []int{2}, got)

	unsubscribe()
	n.Publish(Cart{}.AddLine(testItem(1, 299), 5, nil))
	assert.Equal(t, []int{2}, got, "unsubscribed callbacks must not fire")
}

func TestNotifierUnsubscribeIsIdempotent(t *testing.T) {
	n := NewNotifier()

	calls := 0
	first := n.Subscribe(func(Cart) { calls++ })
	n.Subscribe(func(Cart) { calls++ })

	first()
	first()
	n.Publish(Cart{})

	assert.Equal(t, 1, calls)
}
