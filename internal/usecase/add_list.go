package usecase

import (
	"context"
	"strings"

	"timetally/internal/domain"
)

// AddListInput contains the parameters for creating a list.
type AddListInput struct {
	Name string // List name (required, unique)
}

// AddList is the use case for creating a task list.
type AddList struct {
	tx domain.StateTx
}

// NewAddList creates a new AddList use case.
func NewAddList(tx domain.StateTx) *AddList {
	return &AddList{tx: tx}
}

// Execute creates an empty list with a default config, appends it to
// the list order, and makes it active.
func (uc *AddList) Execute(_ context.Context, in AddListInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ErrEmptyListName
	}

	return uc.tx.Transact(func(st *domain.State) error {
		if _, ok := st.Lists[name]; ok {
			return domain.ErrDuplicateList
		}
		st.Lists[name] = &domain.TaskList{Name: name, Config: domain.DefaultListConfig()}
		st.ListOrder = append(st.ListOrder, name)
		st.ActiveList = name
		st.ActiveTask = 0
		return nil
	})
}
