package domain

import "sort"

// DefaultListName is the name of the list created when no state exists.
const DefaultListName = "Tasks"

// State is the aggregate root: every list, the list ordering, the
// active selection, and UI display flags.
// Fields are ordered to minimize memory padding.
type State struct {
	Lists      map[string]*TaskList `json:"lists"`
	ActiveList string               `json:"activeList"`
	Theme      string               `json:"theme,omitempty"`
	ListOrder  []string             `json:"listOrder"`
	ActiveTask int                  `json:"activeTask"`
	Compact    bool                 `json:"compact,omitempty"`
}

// DefaultState returns the state used when no durable record exists:
// one empty default list with the default config.
func DefaultState() *State {
	return &State{
		Lists: map[string]*TaskList{
			DefaultListName: {Name: DefaultListName, Config: DefaultListConfig()},
		},
		ListOrder:  []string{DefaultListName},
		ActiveList: DefaultListName,
	}
}

// Clone returns a deep, structurally independent copy of the state.
func (s *State) Clone() *State {
	c := &State{
		ActiveList: s.ActiveList,
		ActiveTask: s.ActiveTask,
		Theme:      s.Theme,
		Compact:    s.Compact,
		Lists:      make(map[string]*TaskList, len(s.Lists)),
		ListOrder:  append([]string(nil), s.ListOrder...),
	}
	for name, list := range s.Lists {
		lc := &TaskList{
			Name:   list.Name,
			Config: list.Config,
			Tasks:  make([]Task, len(list.Tasks)),
		}
		for i, t := range list.Tasks {
			lc.Tasks[i] = t
			if t.Media != nil {
				m := *t.Media
				lc.Tasks[i].Media = &m
			}
		}
		c.Lists[name] = lc
	}
	return c
}

// ActiveTaskList returns the currently active list. Normalize
// guarantees the active list always resolves.
func (s *State) ActiveTaskList() *TaskList {
	return s.Lists[s.ActiveList]
}

// ListByName returns the named list or ErrListNotFound.
func (s *State) ListByName(name string) (*TaskList, error) {
	if list, ok := s.Lists[name]; ok {
		return list, nil
	}
	return nil, ErrListNotFound
}

// Normalize repairs the state invariants in place. It is idempotent
// and runs after every mutation, load, and import:
//   - at least one list exists (the default list is recreated if none)
//   - ListOrder is a duplicate-free permutation of the list names
//   - ActiveList names an existing list, falling back to the first
//     entry of ListOrder
//   - ActiveTask is a valid position, or 0 when the list is empty
//   - task durations are at least 1 second and remaining times are
//     clamped into [0, duration]
//   - media metadata is inferred for tasks whose name matches a
//     supported media-link pattern
func Normalize(s *State) {
	if s.Lists == nil {
		s.Lists = make(map[string]*TaskList)
	}
	if len(s.Lists) == 0 {
		s.Lists[DefaultListName] = &TaskList{Name: DefaultListName, Config: DefaultListConfig()}
	}

	// Rebuild ListOrder: keep known names in order, drop the rest,
	// append missing names deterministically.
	seen := make(map[string]bool, len(s.Lists))
	order := make([]string, 0, len(s.Lists))
	for _, name := range s.ListOrder {
		if _, ok := s.Lists[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	missing := make([]string, 0)
	for name := range s.Lists {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	s.ListOrder = append(order, missing...)

	if _, ok := s.Lists[s.ActiveList]; !ok {
		s.ActiveList = s.ListOrder[0]
	}

	for name, list := range s.Lists {
		list.Name = name
		if !ValidAnnounceMode(list.Config.AnnounceMode) {
			list.Config.AnnounceMode = AnnounceNameAndDuration
		}
		for i := range list.Tasks {
			t := &list.Tasks[i]
			if t.Duration < 1 {
				t.Duration = 1
			}
			if t.Remaining < 0 {
				t.Remaining = 0
			}
			if t.Remaining > float64(t.Duration) {
				t.Remaining = float64(t.Duration)
			}
			if t.Media == nil {
				t.Media = InferMedia(t.Name)
			}
		}
	}

	active := s.ActiveTaskList()
	if len(active.Tasks) == 0 {
		s.ActiveTask = 0
	} else if s.ActiveTask < 0 {
		s.ActiveTask = 0
	} else if s.ActiveTask >= len(active.Tasks) {
		s.ActiveTask = len(active.Tasks) - 1
	}
}
