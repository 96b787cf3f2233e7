package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_ShowAndExpire(t *testing.T) {
	c := NewCenter(30*time.Millisecond, nil)

	c.Show("Removed", KindSuccess)
	msg := c.Current()
	require.NotNil(t, msg)
	assert.Equal(t, "Removed", msg.Text)
	assert.Equal(t, KindSuccess, msg.Kind)

	assert.Eventually(t, func() bool { return c.Current() == nil },
		time.Second, 5*time.Millisecond, "message must auto-expire")
}

func TestCenter_NewMessagePreemptsPrior(t *testing.T) {
	c := NewCenter(40*time.Millisecond, nil)

	c.Show("first", KindError)
	time.Sleep(25 * time.Millisecond)
	c.Show("second", KindSuccess)

	// the first message's timer would have fired by now; the second must
	// still be visible for its own full interval
	time.Sleep(25 * time.Millisecond)
	msg := c.Current()
	require.NotNil(t, msg)
	assert.Equal(t, "second", msg.Text)

	assert.Eventually(t, func() bool { return c.Current() == nil },
		time.Second, 5*time.Millisecond)
}

func TestCenter_OnChangeCallback(t *testing.T) {
	got := make(chan *Message, 4)
	c := NewCenter(20*time.Millisecond, func(m *Message) { got <- m })

	c.Show("hello", KindSuccess)

	first := <-got
	require.NotNil(t, first)
	assert.Equal(t, "hello", first.Text)

	select {
	case second := <-got:
		assert.Nil(t, second, "expiry must report a nil message")
	case <-time.After(time.Second):
		t.Fatal("expiry callback never fired")
	}
}
