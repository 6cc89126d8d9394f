package domain

// AnnounceMode selects what the voice announcement says on task
// transitions.
type AnnounceMode string

// Announce modes.
const (
	AnnounceNameAndDuration AnnounceMode = "name_and_duration"
	AnnounceNameOnly        AnnounceMode = "name_only"
	AnnounceDurationOnly    AnnounceMode = "duration_only"
	AnnounceCustomMessage   AnnounceMode = "custom_on_complete"
	AnnounceAffirmation     AnnounceMode = "affirmation_on_complete"
)

// ValidAnnounceMode reports whether m is a known announce mode.
func ValidAnnounceMode(m AnnounceMode) bool {
	switch m {
	case AnnounceNameAndDuration, AnnounceNameOnly, AnnounceDurationOnly,
		AnnounceCustomMessage, AnnounceAffirmation:
		return true
	}
	return false
}

// ListConfig holds per-list notification settings.
// Fields are ordered to minimize memory padding.
type ListConfig struct {
	VoiceID       string       `json:"voiceId,omitempty"`
	AnnounceMode  AnnounceMode `json:"announceMode"`
	CustomMessage string       `json:"customMessage,omitempty"`
	BeepEnabled   bool         `json:"beepEnabled"`
	VoiceEnabled  bool         `json:"voiceEnabled"`
}

// DefaultListConfig returns the config attached to newly created lists.
func DefaultListConfig() ListConfig {
	return ListConfig{
		BeepEnabled:  true,
		VoiceEnabled: true,
		AnnounceMode: AnnounceNameAndDuration,
	}
}
