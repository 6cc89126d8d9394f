package usecase

import (
	"context"

	"timetally/internal/domain"
)

// DeleteListInput contains the parameters for deleting a list.
type DeleteListInput struct {
	Name string // List name (required)
}

// DeleteList is the use case for deleting a task list.
type DeleteList struct {
	tx domain.StateTx
}

// NewDeleteList creates a new DeleteList use case.
func NewDeleteList(tx domain.StateTx) *DeleteList {
	return &DeleteList{tx: tx}
}

// Execute removes the list and its config together. The last remaining
// list cannot be deleted; deleting the active list falls back to the
// first entry of the list order.
func (uc *DeleteList) Execute(_ context.Context, in DeleteListInput) error {
	return uc.tx.Transact(func(st *domain.State) error {
		if _, ok := st.Lists[in.Name]; !ok {
			return domain.ErrListNotFound
		}
		if len(st.Lists) == 1 {
			return domain.ErrLastList
		}

		delete(st.Lists, in.Name)
		order := st.ListOrder[:0]
		for _, name := range st.ListOrder {
			if name != in.Name {
				order = append(order, name)
			}
		}
		st.ListOrder = order

		if st.ActiveList == in.Name {
			st.ActiveList = st.ListOrder[0]
			st.ActiveTask = 0
		}
		return nil
	})
}
