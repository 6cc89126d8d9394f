package domain

import (
	"fmt"
	"math/rand"
	"strings"
)

// Affirmations is the fixed set of phrases spoken on completion when a
// list uses AnnounceAffirmation.
var Affirmations = []string{
	"Well done",
	"Great work",
	"Nice job, keep it up",
	"One step closer",
	"That one is behind you",
	"Excellent, onwards",
}

// SpeakDuration renders a duration in seconds as natural speech text,
// e.g. "5 minutes 30 seconds".
func SpeakDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	var parts []string
	if h := seconds / 3600; h > 0 {
		parts = append(parts, plural(h, "hour"))
	}
	if m := seconds % 3600 / 60; m > 0 {
		parts = append(parts, plural(m, "minute"))
	}
	if s := seconds % 60; s > 0 || len(parts) == 0 {
		parts = append(parts, plural(s, "second"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// StartAnnouncement builds the voice text spoken when a task becomes
// active. Completion-only modes fall back to the full announcement.
func StartAnnouncement(cfg ListConfig, t Task) string {
	switch cfg.AnnounceMode {
	case AnnounceNameOnly:
		return t.Name
	case AnnounceDurationOnly:
		return SpeakDuration(t.Duration)
	default:
		return fmt.Sprintf("%s, %s", t.Name, SpeakDuration(t.Duration))
	}
}

// CompletionAnnouncement builds the voice text spoken when a task
// completes. It returns "" for modes that only beep on completion.
func CompletionAnnouncement(cfg ListConfig, rng *rand.Rand) string {
	switch cfg.AnnounceMode {
	case AnnounceCustomMessage:
		return cfg.CustomMessage
	case AnnounceAffirmation:
		return Affirmations[rng.Intn(len(Affirmations))]
	default:
		return ""
	}
}
