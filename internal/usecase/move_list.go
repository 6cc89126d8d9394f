package usecase

import (
	"context"

	"timetally/internal/domain"
)

// MoveListInput contains the parameters for reordering the list order.
type MoveListInput struct {
	From int // Current position in the list order
	To   int // Destination position
}

// MoveList is the use case for reordering task lists.
type MoveList struct {
	tx domain.StateTx
}

// NewMoveList creates a new MoveList use case.
func NewMoveList(tx domain.StateTx) *MoveList {
	return &MoveList{tx: tx}
}

// Execute moves a list within the list order. The active list follows
// by name, so no cursor adjustment is needed. Out-of-range indices are
// a silent no-op.
func (uc *MoveList) Execute(_ context.Context, in MoveListInput) error {
	return uc.tx.Transact(func(st *domain.State) error {
		st.ListOrder, _ = domain.Move(st.ListOrder, in.From, in.To)
		return nil
	})
}
