// Package statefile persists the application state as one JSON
// snapshot file, with debounced writes and last-writer-wins
// semantics across processes.
package statefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"timetally/internal/domain"
)

// DebounceWindow is how long the gateway coalesces Schedule calls
// before committing the latest snapshot to disk.
const DebounceWindow = 150 * time.Millisecond

// formatVersion tags the persisted envelope so future shape changes
// can migrate explicitly instead of through repair alone.
const formatVersion = 1

// envelope is the durable file structure.
type envelope struct {
	State   *domain.State `json:"state"`
	Version int           `json:"version"`
}

// Gateway serializes state snapshots to a single file. Writes are
// atomic (temp file + rename) and serialized across processes with a
// file lock.
// Fields are ordered to minimize memory padding.
type Gateway struct {
	pending  *domain.State
	timer    *time.Timer
	logger   domain.Logger
	path     string
	lockPath string
	window   time.Duration
	mu       sync.Mutex
}

// New creates a Gateway for the given state file path. The file does
// not need to exist; Load substitutes the default state.
func New(path string) *Gateway {
	return &Gateway{
		path:     path,
		lockPath: path + ".lock",
		window:   DebounceWindow,
	}
}

// WithWindow overrides the debounce window. Used by tests.
func (g *Gateway) WithWindow(d time.Duration) *Gateway {
	g.window = d
	return g
}

// WithLogger attaches a logger.
func (g *Gateway) WithLogger(l domain.Logger) *Gateway {
	g.logger = l
	return g
}

// Schedule records the snapshot for a debounced write. Repeated calls
// within the window coalesce into a single write of the latest state.
func (g *Gateway) Schedule(st *domain.State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = st
	if g.timer == nil {
		g.timer = time.AfterFunc(g.window, g.writePending)
	} else {
		g.timer.Reset(g.window)
	}
}

// Flush synchronously writes any pending snapshot. Call on process
// exit so the last in-window update is not lost.
func (g *Gateway) Flush() error {
	g.mu.Lock()
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	pending := g.pending
	g.pending = nil
	g.mu.Unlock()

	if pending == nil {
		return nil
	}
	return g.Save(pending)
}

// Save writes the snapshot immediately, bypassing the debounce.
func (g *Gateway) Save(st *domain.State) error {
	lock, err := g.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer g.releaseLock(lock)
	return g.write(st)
}

// Load reads the durable snapshot. A missing or unparseable file
// yields the default state; the result is always normalized. This is
// never surfaced as a user-facing error.
func (g *Gateway) Load() (*domain.State, error) {
	lock, err := g.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer g.releaseLock(lock)

	content, err := os.ReadFile(g.path)
	if err != nil {
		if !os.IsNotExist(err) {
			g.warn("read state file: " + err.Error())
		}
		return domain.DefaultState(), nil
	}

	var env envelope
	if err := json.Unmarshal(content, &env); err != nil || env.State == nil {
		// Pre-versioned installs stored the bare state document.
		var legacy domain.State
		if err := json.Unmarshal(content, &legacy); err != nil || legacy.Lists == nil {
			g.warn("state file unparseable, starting fresh")
			return domain.DefaultState(), nil
		}
		env.State = &legacy
	}

	domain.Normalize(env.State)
	return env.State, nil
}

// writePending is the debounce timer callback.
func (g *Gateway) writePending() {
	g.mu.Lock()
	pending := g.pending
	g.pending = nil
	g.timer = nil
	g.mu.Unlock()

	if pending == nil {
		return
	}
	if err := g.Save(pending); err != nil {
		g.warn("save state: " + err.Error())
	}
}

func (g *Gateway) write(st *domain.State) error {
	content, err := json.MarshalIndent(envelope{Version: formatVersion, State: st}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	// Write to temp file first, then rename for atomicity.
	tmpPath := g.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, g.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (g *Gateway) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(g.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	lock, err := os.OpenFile(g.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return lock, nil
}

func (g *Gateway) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (g *Gateway) warn(msg string) {
	if g.logger != nil {
		g.logger.Warn("persist", msg)
	}
}
