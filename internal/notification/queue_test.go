package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPreservesOrder(t *testing.T) {
	q := NewQueue(time.Minute)
	defer q.Close()

	q.Push("first", KindSuccess)
	q.Push("second", KindError)
	q.Push("third", KindInfo)

	items := q.List()
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Message)
	assert.Equal(t, "second", items[1].Message)
	assert.Equal(t, "third", items[2].Message)
	assert.Equal(t, KindError, items[1].Kind)
}

func TestDismiss(t *testing.T) {
	q := NewQueue(time.Minute)
	defer q.Close()

	a := q.Push("a", KindSuccess)
	b := q.Push("b", KindSuccess)

	assert.True(t, q.Dismiss(a.ID))
	items := q.List()
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)

	assert.False(t, q.Dismiss("unknown-id"))
	assert.False(t, q.Dismiss(a.ID), "dismissing twice is a no-op")
}

func TestExpiryRemovesNotification(t *testing.T) {
	q := NewQueue(20 * time.Millisecond)
	defer q.Close()

	q.Push("fleeting", KindInfo)
	require.Len(t, q.List(), 1)

	assert.Eventually(t, func() bool {
		return len(q.List()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestZeroTTLNeverExpires(t *testing.T) {
	q := NewQueue(0)
	defer q.Close()

	q.Push("sticky", KindWarning)
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, q.List(), 1)
}

func TestCloseDropsEverything(t *testing.T) {
	q := NewQueue(time.Minute)
	q.Push("a", KindSuccess)
	q.Push("b", KindSuccess)

	q.Close()
	assert.Empty(t, q.List())

	q.Push("after close", KindSuccess)
	assert.Empty(t, q.List(), "a closed queue accepts nothing")
}
