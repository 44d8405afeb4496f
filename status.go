package main

import "time"

// StatusMessage is the transient text shown on the bottom message row.
// A new message replaces the old one wholesale and stays visible for
// its hold duration.
type StatusMessage struct {
	Text     string
	IssuedAt time.Time
	Hold     time.Duration
}

// Set replaces the message.
func (m *StatusMessage) Set(text string, hold time.Duration, now time.Time) {
	*m = StatusMessage{Text: text, IssuedAt: now, Hold: hold}
}

// TextAt returns the message text if it is still within its hold
// window at the given instant. An expired message is cleared, not just
// hidden.
func (m *StatusMessage) TextAt(now time.Time) string {
	if m.Text == "" {
		return ""
	}
	if now.Sub(m.IssuedAt) > m.Hold {
		m.Text = ""
		return ""
	}
	return m.Text
}
