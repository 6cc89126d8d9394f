package usecase

import (
	"context"

	"timetally/internal/domain"
	"timetally/internal/interchange"
)

// ExportState is the use case for serializing all lists to the XML
// interchange format.
type ExportState struct {
	tx domain.StateTx
}

// NewExportState creates a new ExportState use case.
func NewExportState(tx domain.StateTx) *ExportState {
	return &ExportState{tx: tx}
}

// Execute renders the current snapshot as an interchange document.
func (uc *ExportState) Execute(_ context.Context) ([]byte, error) {
	return interchange.Export(uc.tx.Snapshot())
}
