// Package notify implements the audio notification and media control
// ports. The console notifier uses the terminal bell and an optional
// external voice command; media control is intent logging until a real
// player backend is attached.
package notify

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"timetally/internal/domain"
)

// Ensure implementations satisfy the domain ports.
var (
	_ domain.Notifier        = (*Console)(nil)
	_ domain.MediaController = (*MediaLog)(nil)
)

// Console announces via an external voice command and beeps via the
// terminal bell. An empty voice command disables speech.
// Fields are ordered to minimize memory padding.
type Console struct {
	out          io.Writer
	logger       domain.Logger
	voiceCommand string
}

// NewConsole creates a Console notifier. voiceCommand is a program
// that receives the announcement text as its single argument, for
// example "say" on macOS or "espeak" on Linux.
func NewConsole(voiceCommand string, logger domain.Logger) *Console {
	return &Console{out: os.Stdout, voiceCommand: voiceCommand, logger: logger}
}

// WithOutput overrides the bell destination. Used by tests.
func (c *Console) WithOutput(w io.Writer) *Console {
	c.out = w
	return c
}

// Announce speaks text through the configured voice command. The
// command runs fire-and-forget so ticking is never blocked on audio.
func (c *Console) Announce(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if c.logger != nil {
		c.logger.Debug("notify", "announce: "+text)
	}
	if c.voiceCommand == "" {
		return
	}

	// #nosec G204 - the voice command comes from the user's own settings
	cmd := exec.Command(c.voiceCommand, text)
	if err := cmd.Start(); err != nil {
		if c.logger != nil {
			c.logger.Warn("notify", fmt.Sprintf("voice command failed: %v", err))
		}
		return
	}
	go func() { _ = cmd.Wait() }()
}

// Beep rings the terminal bell.
func (c *Console) Beep() {
	if c.logger != nil {
		c.logger.Debug("notify", "beep")
	}
	fmt.Fprint(c.out, "\a")
}

// MediaLog records playback intents in the log. It keeps the media
// handoff ordering observable without owning a player process.
type MediaLog struct {
	logger domain.Logger
}

// NewMediaLog creates a MediaLog controller.
func NewMediaLog(logger domain.Logger) *MediaLog {
	return &MediaLog{logger: logger}
}

// Play records the intent to start the referenced media.
func (m *MediaLog) Play(key domain.MediaKey) {
	if m.logger != nil {
		m.logger.Info("media", "play "+key.String())
	}
}

// PauseAll records the intent to pause all playing media.
func (m *MediaLog) PauseAll() {
	if m.logger != nil {
		m.logger.Info("media", "pause all")
	}
}
