// Package signal implements the cross-process change notification
// channel: lightweight "state patched" markers dropped into a shared
// directory and discovered by polling.
package signal

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"timetally/internal/domain"
)

const (
	defaultPollInterval = 200 * time.Millisecond
	markerKind          = "state-patched"
	// Markers only need to outlive one poll cycle of every sibling;
	// anything older is garbage from a dead burst.
	staleAfter = 10 * time.Second
)

// marker is the broadcast payload. Receivers never trust it beyond
// the origin check; they always re-read durable state.
type marker struct {
	SentAt time.Time `json:"sentAt"`
	Origin string    `json:"origin"`
	Kind   string    `json:"kind"`
}

// Broadcaster publishes and watches state-change markers in a shared
// directory next to the state file. Each process carries a random
// origin ID so it never reacts to its own writes.
// Fields are ordered to minimize memory padding.
type Broadcaster struct {
	logger domain.Logger
	dir    string
	origin string
	poll   time.Duration
}

// New creates a Broadcaster for the given signal directory.
func New(dir string) *Broadcaster {
	return &Broadcaster{
		dir:    dir,
		origin: newOrigin(),
		poll:   defaultPollInterval,
	}
}

// WithPoll overrides the poll interval. Used by tests.
func (b *Broadcaster) WithPoll(d time.Duration) *Broadcaster {
	b.poll = d
	return b
}

// WithLogger attaches a logger.
func (b *Broadcaster) WithLogger(l domain.Logger) *Broadcaster {
	b.logger = l
	return b
}

// Origin returns this process's origin ID.
func (b *Broadcaster) Origin() string {
	return b.origin
}

// Publish drops a state-patched marker for sibling processes and
// prunes stale ones. Marker names sort by send time so watchers can
// track a high-water mark.
func (b *Broadcaster) Publish() error {
	if err := os.MkdirAll(b.dir, 0o750); err != nil {
		return fmt.Errorf("create signal dir: %w", err)
	}

	now := time.Now().UTC()
	m := marker{Origin: b.origin, Kind: markerKind, SentAt: now}
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal marker: %w", err)
	}

	name := fmt.Sprintf("%020d-%s.json", now.UnixNano(), b.origin)
	tmpPath := filepath.Join(b.dir, ".tmp-"+name)
	finalPath := filepath.Join(b.dir, name)
	if err := os.WriteFile(tmpPath, payload, 0o600); err != nil {
		return fmt.Errorf("write marker temp file: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("finalize marker file: %w", err)
	}

	b.prune(now)
	return nil
}

// Watch polls the signal directory until ctx is canceled, invoking fn
// once per observed burst of markers from other processes. Receivers
// are expected to reload durable state in fn; a burst of remote
// changes therefore collapses into the latest snapshot.
func (b *Broadcaster) Watch(ctx context.Context, fn func()) error {
	var lastSeen string
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		names, err := b.listMarkers()
		if err != nil {
			return err
		}

		remote := false
		for _, name := range names {
			if name <= lastSeen {
				continue
			}
			lastSeen = name
			if b.readMarker(name).Origin != b.origin {
				remote = true
			}
		}
		if remote {
			fn()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(b.poll):
		}
	}
}

func (b *Broadcaster) listMarkers() ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read signal dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, ".tmp-") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (b *Broadcaster) readMarker(name string) marker {
	var m marker
	content, err := os.ReadFile(filepath.Join(b.dir, name))
	if err != nil {
		return m
	}
	_ = json.Unmarshal(content, &m)
	return m
}

// prune removes markers old enough that every live watcher has seen
// them.
func (b *Broadcaster) prune(now time.Time) {
	names, err := b.listMarkers()
	if err != nil {
		return
	}
	cutoff := fmt.Sprintf("%020d", now.Add(-staleAfter).UnixNano())
	for _, name := range names {
		if name < cutoff {
			_ = os.Remove(filepath.Join(b.dir, name))
		}
	}
}

func newOrigin() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UTC().UnixNano())
	}
	return hex.EncodeToString(buf)
}
