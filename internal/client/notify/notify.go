// Package notify holds the single ephemeral status message shown to the
// user. A new message replaces the previous one and restarts the expiry
// timer, so the latest message is always visible for a full interval.
package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is a transient user-facing status line.
type Message struct {
	Text string
	Kind Kind
}

// Center owns at most one visible message at a time.
type Center struct {
	mu       sync.Mutex
	ttl      time.Duration
	timer    *time.Timer
	current  *Message
	onChange func(*Message)
}

// NewCenter creates a Center whose messages expire after ttl. onChange, if
// non-nil, is invoked with the new message on Show and with nil on expiry.
func NewCenter(ttl time.Duration, onChange func(*Message)) *Center {
	return &Center{ttl: ttl, onChange: onChange}
}

// Show replaces the visible message and restarts the expiry timer.
func (c *Center) Show(text string, kind Kind) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	msg := &Message{Text: text, Kind: kind}
	c.current = msg
	c.timer = time.AfterFunc(c.ttl, func() { c.expire(msg) })
	onChange := c.onChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(msg)
	}
}

// expire clears the message, but only if it is still the visible one.
func (c *Center) expire(msg *Message) {
	c.mu.Lock()
	if c.current != msg {
		c.mu.Unlock()
		return
	}
	c.current = nil
	onChange := c.onChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(nil)
	}
}

// Current returns the visible message, or nil if none.
func (c *Center) Current() *Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
