package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultState(t *testing.T) {
	st := DefaultState()

	require.Len(t, st.Lists, 1)
	assert.Equal(t, []string{DefaultListName}, st.ListOrder)
	assert.Equal(t, DefaultListName, st.ActiveList)
	assert.Equal(t, 0, st.ActiveTask)
	assert.Equal(t, DefaultListConfig(), st.Lists[DefaultListName].Config)
}

func TestClone_Independence(t *testing.T) {
	st := DefaultState()
	st.Lists[DefaultListName].Tasks = []Task{NewTask("a https://youtu.be/dQw4w9WgXcQ", 10)}

	c := st.Clone()
	c.Lists[DefaultListName].Tasks[0].Name = "changed"
	c.Lists[DefaultListName].Tasks[0].Media.ID = "changed"
	c.ListOrder[0] = "changed"
	c.Lists["extra"] = &TaskList{Name: "extra"}

	assert.Equal(t, "a https://youtu.be/dQw4w9WgXcQ", st.Lists[DefaultListName].Tasks[0].Name)
	assert.Equal(t, "dQw4w9WgXcQ", st.Lists[DefaultListName].Tasks[0].Media.ID)
	assert.Equal(t, DefaultListName, st.ListOrder[0])
	assert.Len(t, st.Lists, 1)
}

func TestNormalize_EmptyState(t *testing.T) {
	st := &State{}
	Normalize(st)

	require.Len(t, st.Lists, 1)
	assert.Equal(t, DefaultListName, st.ActiveList)
	assert.Equal(t, []string{DefaultListName}, st.ListOrder)
}

func TestNormalize_RepairsListOrder(t *testing.T) {
	st := &State{
		Lists: map[string]*TaskList{
			"a": {Name: "a"},
			"b": {Name: "b"},
			"c": {Name: "c"},
		},
		// Duplicate entry, a stale name, and a missing one.
		ListOrder:  []string{"b", "b", "gone", "a"},
		ActiveList: "gone",
	}
	Normalize(st)

	assert.Equal(t, []string{"b", "a", "c"}, st.ListOrder)
	assert.Equal(t, "b", st.ActiveList)
}

func TestNormalize_ClampsCursorAndTasks(t *testing.T) {
	st := &State{
		Lists: map[string]*TaskList{
			"a": {Name: "a", Tasks: []Task{
				{Name: "over", Duration: 10, Remaining: 99, Enabled: true},
				{Name: "under", Duration: 10, Remaining: -1, Enabled: true},
				{Name: "zero duration", Duration: 0, Remaining: 0},
			}},
		},
		ListOrder:  []string{"a"},
		ActiveList: "a",
		ActiveTask: 42,
	}
	Normalize(st)

	tasks := st.Lists["a"].Tasks
	assert.Equal(t, float64(10), tasks[0].Remaining)
	assert.Equal(t, float64(0), tasks[1].Remaining)
	assert.Equal(t, 1, tasks[2].Duration)
	assert.Equal(t, 2, st.ActiveTask)
}

func TestNormalize_CursorZeroOnEmptyList(t *testing.T) {
	st := DefaultState()
	st.ActiveTask = 7
	Normalize(st)
	assert.Equal(t, 0, st.ActiveTask)
}

func TestNormalize_InfersMedia(t *testing.T) {
	st := DefaultState()
	st.Lists[DefaultListName].Tasks = []Task{
		{Name: "Video https://youtu.be/dQw4w9WgXcQ", Duration: 10, Remaining: 10, Enabled: true},
	}
	Normalize(st)

	ref := st.Lists[DefaultListName].Tasks[0].Media
	require.NotNil(t, ref)
	assert.Equal(t, "dQw4w9WgXcQ", ref.ID)
}

func TestNormalize_Idempotent(t *testing.T) {
	st := &State{
		Lists: map[string]*TaskList{
			"a": {Name: "a", Tasks: []Task{
				{Name: "Video https://youtu.be/dQw4w9WgXcQ", Duration: 10, Remaining: 20, Enabled: true},
			}},
		},
		ListOrder:  []string{"stale", "a"},
		ActiveTask: 9,
	}
	Normalize(st)
	once := st.Clone()
	Normalize(st)
	assert.Equal(t, once, st)
}

func TestListByName(t *testing.T) {
	st := DefaultState()

	list, err := st.ListByName(DefaultListName)
	require.NoError(t, err)
	assert.Equal(t, DefaultListName, list.Name)

	_, err = st.ListByName("missing")
	assert.ErrorIs(t, err, ErrListNotFound)
}
