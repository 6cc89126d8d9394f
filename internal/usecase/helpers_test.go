package usecase

import (
	"timetally/internal/domain"
	"timetally/internal/store"
)

// seededStore returns a store whose default list holds the given
// tasks.
func seededStore(tasks ...domain.Task) *store.Store {
	st := domain.DefaultState()
	st.Lists[domain.DefaultListName].Tasks = tasks
	return store.New(st)
}

func ptr[T any](v T) *T {
	return &v
}
