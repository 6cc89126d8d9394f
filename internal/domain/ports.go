package domain

import "time"

// Notifier is the consumed audio/voice notification capability.
// Implementations must be fire-and-forget and never block the caller;
// config gating (beep/voice enablement, empty text) happens before
// the port is invoked.
type Notifier interface {
	// Announce speaks or prints the given text.
	Announce(text string)

	// Beep emits a short audible signal.
	Beep()
}

// MediaController is the consumed embedded-media control capability.
type MediaController interface {
	// Play starts playback of the media embedded for the given key.
	Play(key MediaKey)

	// PauseAll stops every playing embed. It is called before Play on
	// every task transition so at most one task's media plays.
	PauseAll()
}

// StateTx is the transactional access port to the application state.
// Mutations happen inside Transact; Snapshot returns the latest
// published state, which callers must treat as read-only.
type StateTx interface {
	Transact(fn func(*State) error) error
	Snapshot() *State
}

// Logger writes categorized log messages.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
