package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeakDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0 seconds"},
		{1, "1 second"},
		{45, "45 seconds"},
		{60, "1 minute"},
		{90, "1 minute 30 seconds"},
		{330, "5 minutes 30 seconds"},
		{3600, "1 hour"},
		{3661, "1 hour 1 minute 1 second"},
		{-5, "0 seconds"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpeakDuration(tt.seconds))
	}
}

func TestStartAnnouncement(t *testing.T) {
	task := NewTask("Warmup", 90)

	cfg := DefaultListConfig()
	assert.Equal(t, "Warmup, 1 minute 30 seconds", StartAnnouncement(cfg, task))

	cfg.AnnounceMode = AnnounceNameOnly
	assert.Equal(t, "Warmup", StartAnnouncement(cfg, task))

	cfg.AnnounceMode = AnnounceDurationOnly
	assert.Equal(t, "1 minute 30 seconds", StartAnnouncement(cfg, task))

	// Completion-only modes still announce the full form on start.
	cfg.AnnounceMode = AnnounceAffirmation
	assert.Equal(t, "Warmup, 1 minute 30 seconds", StartAnnouncement(cfg, task))
}

func TestCompletionAnnouncement(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cfg := DefaultListConfig()
	assert.Empty(t, CompletionAnnouncement(cfg, rng))

	cfg.AnnounceMode = AnnounceCustomMessage
	cfg.CustomMessage = "Break time"
	assert.Equal(t, "Break time", CompletionAnnouncement(cfg, rng))

	cfg.AnnounceMode = AnnounceAffirmation
	assert.Contains(t, Affirmations, CompletionAnnouncement(cfg, rng))
}

func TestValidAnnounceMode(t *testing.T) {
	assert.True(t, ValidAnnounceMode(AnnounceNameAndDuration))
	assert.True(t, ValidAnnounceMode(AnnounceAffirmation))
	assert.False(t, ValidAnnounceMode("shout"))
	assert.False(t, ValidAnnounceMode(""))
}
