package usecase

import (
	"context"

	"timetally/internal/domain"
)

// UpdateConfigInput contains the parameters for updating a list's
// notification config. Nil fields are left unchanged.
// Fields are ordered to minimize memory padding.
type UpdateConfigInput struct {
	BeepEnabled   *bool
	VoiceEnabled  *bool
	VoiceID       *string
	AnnounceMode  *domain.AnnounceMode
	CustomMessage *string
	List          string // Target list name (empty = active list)
}

// UpdateConfigOutput contains the resulting config.
type UpdateConfigOutput struct {
	Config domain.ListConfig
}

// UpdateConfig is the use case for changing per-list notification
// settings.
type UpdateConfig struct {
	tx domain.StateTx
}

// NewUpdateConfig creates a new UpdateConfig use case.
func NewUpdateConfig(tx domain.StateTx) *UpdateConfig {
	return &UpdateConfig{tx: tx}
}

// Execute applies the non-nil fields to the list's config.
func (uc *UpdateConfig) Execute(_ context.Context, in UpdateConfigInput) (*UpdateConfigOutput, error) {
	if in.AnnounceMode != nil && !domain.ValidAnnounceMode(*in.AnnounceMode) {
		return nil, domain.ErrInvalidMode
	}

	out := &UpdateConfigOutput{}
	err := uc.tx.Transact(func(st *domain.State) error {
		list, err := targetList(st, in.List)
		if err != nil {
			return err
		}

		cfg := &list.Config
		if in.BeepEnabled != nil {
			cfg.BeepEnabled = *in.BeepEnabled
		}
		if in.VoiceEnabled != nil {
			cfg.VoiceEnabled = *in.VoiceEnabled
		}
		if in.VoiceID != nil {
			cfg.VoiceID = *in.VoiceID
		}
		if in.AnnounceMode != nil {
			cfg.AnnounceMode = *in.AnnounceMode
		}
		if in.CustomMessage != nil {
			cfg.CustomMessage = *in.CustomMessage
		}
		out.Config = *cfg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
