package usecase

import (
	"context"
	"strings"

	"timetally/internal/domain"
)

// RenameListInput contains the parameters for renaming a list.
type RenameListInput struct {
	From string // Current name (required)
	To   string // New name (required, unique)
}

// RenameList is the use case for renaming a task list.
type RenameList struct {
	tx domain.StateTx
}

// NewRenameList creates a new RenameList use case.
func NewRenameList(tx domain.StateTx) *RenameList {
	return &RenameList{tx: tx}
}

// Execute renames the list, keeping its position in the list order and
// the active-list reference intact.
func (uc *RenameList) Execute(_ context.Context, in RenameListInput) error {
	to := strings.TrimSpace(in.To)
	if to == "" {
		return domain.ErrEmptyListName
	}

	return uc.tx.Transact(func(st *domain.State) error {
		list, ok := st.Lists[in.From]
		if !ok {
			return domain.ErrListNotFound
		}
		if to == in.From {
			return nil
		}
		if _, ok := st.Lists[to]; ok {
			return domain.ErrDuplicateList
		}

		delete(st.Lists, in.From)
		list.Name = to
		st.Lists[to] = list
		for i, name := range st.ListOrder {
			if name == in.From {
				st.ListOrder[i] = to
			}
		}
		if st.ActiveList == in.From {
			st.ActiveList = to
		}
		return nil
	})
}
