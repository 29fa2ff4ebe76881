// Package notify holds the transient user-facing status message. There
// is no queue: a new publication supersedes whatever is currently shown,
// and the message dismisses itself after a kind-dependent duration.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Display durations, matching the toast timings in the UI.
const (
	SuccessDuration = 3 * time.Second
	ErrorDuration   = 5 * time.Second
)

// Notification is one transient status message.
type Notification struct {
	Message   string
	Kind      Kind
	ExpiresAt time.Time
}

// Duration returns how long a notification of this kind stays visible.
func (k Kind) Duration() time.Duration {
	if k == KindError {
		return ErrorDuration
	}
	return SuccessDuration
}

// Center holds the single active notification.
type Center struct {
	mu      sync.Mutex
	current *Notification
	now     func() time.Time
}

func NewCenter() *Center {
	return &Center{now: time.Now}
}

// Publish replaces the active notification.
func (c *Center) Publish(message string, kind Kind) Notification {
	n := Notification{
		Message:   message,
		Kind:      kind,
		ExpiresAt: c.now().Add(kind.Duration()),
	}
	c.mu.Lock()
	c.current = &n
	c.mu.Unlock()
	return n
}

// Current returns the active notification, or false once it has expired
// or none was ever published.
func (c *Center) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil || c.now().After(c.current.ExpiresAt) {
		c.current = nil
		return Notification{}, false
	}
	return *c.current, true
}
