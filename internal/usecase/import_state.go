package usecase

import (
	"context"
	"fmt"

	"timetally/internal/domain"
	"timetally/internal/interchange"
)

// ImportStateInput contains the parameters for importing an
// interchange document.
type ImportStateInput struct {
	Content []byte // XML document
}

// ImportState is the use case for merging an interchange document into
// the current state.
type ImportState struct {
	tx     domain.StateTx
	logger domain.Logger
}

// NewImportState creates a new ImportState use case.
func NewImportState(tx domain.StateTx, logger domain.Logger) *ImportState {
	return &ImportState{tx: tx, logger: logger}
}

// Execute merges the document. A malformed document leaves the state
// untouched; the transaction is discarded on error.
func (uc *ImportState) Execute(_ context.Context, in ImportStateInput) error {
	err := uc.tx.Transact(func(st *domain.State) error {
		return interchange.Import(st, in.Content)
	})
	if err != nil {
		return err
	}
	if uc.logger != nil {
		uc.logger.Info("interchange", fmt.Sprintf("imported %d bytes", len(in.Content)))
	}
	return nil
}
