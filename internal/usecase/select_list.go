package usecase

import (
	"context"

	"timetally/internal/domain"
)

// SelectListInput contains the parameters for switching the active
// list.
type SelectListInput struct {
	Name string // List name (required)
}

// SelectList is the use case for switching the active list.
type SelectList struct {
	tx domain.StateTx
}

// NewSelectList creates a new SelectList use case.
func NewSelectList(tx domain.StateTx) *SelectList {
	return &SelectList{tx: tx}
}

// Execute makes the named list active and resets the task cursor.
func (uc *SelectList) Execute(_ context.Context, in SelectListInput) error {
	return uc.tx.Transact(func(st *domain.State) error {
		if _, ok := st.Lists[in.Name]; !ok {
			return domain.ErrListNotFound
		}
		if st.ActiveList == in.Name {
			return nil
		}
		st.ActiveList = in.Name
		st.ActiveTask = 0
		return nil
	})
}
