package statefile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetally/internal/domain"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "state.json")).WithWindow(20 * time.Millisecond)
}

func stateWithTask(name string, duration int) *domain.State {
	st := domain.DefaultState()
	st.Lists[domain.DefaultListName].Tasks = []domain.Task{domain.NewTask(name, duration)}
	return st
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	g := newTestGateway(t)

	st, err := g.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultListName, st.ActiveList)
	assert.Empty(t, st.ActiveTaskList().Tasks)
}

func TestLoad_CorruptFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	st, err := New(path).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultListName, st.ActiveList)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	g := newTestGateway(t)
	st := stateWithTask("Warmup https://youtu.be/dQw4w9WgXcQ", 300)

	require.NoError(t, g.Save(st))
	loaded, err := g.Load()
	require.NoError(t, err)

	tasks := loaded.ActiveTaskList().Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, "Warmup https://youtu.be/dQw4w9WgXcQ", tasks[0].Name)
	assert.Equal(t, 300, tasks[0].Duration)
	require.NotNil(t, tasks[0].Media)
	assert.Equal(t, "dQw4w9WgXcQ", tasks[0].Media.ID)
}

func TestSave_WritesVersionedEnvelope(t *testing.T) {
	g := newTestGateway(t)
	require.NoError(t, g.Save(domain.DefaultState()))

	content, err := os.ReadFile(g.path)
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(content, &env))
	assert.JSONEq(t, "1", string(env["version"]))
	assert.Contains(t, env, "state")
}

func TestLoad_LegacyBareState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	legacy := stateWithTask("Old", 60)
	content, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	loaded, err := New(path).Load()
	require.NoError(t, err)
	require.Len(t, loaded.ActiveTaskList().Tasks, 1)
	assert.Equal(t, "Old", loaded.ActiveTaskList().Tasks[0].Name)
}

func TestSchedule_DebouncesToLatest(t *testing.T) {
	g := newTestGateway(t)

	g.Schedule(stateWithTask("first", 10))
	g.Schedule(stateWithTask("second", 10))
	g.Schedule(stateWithTask("third", 10))

	time.Sleep(80 * time.Millisecond)

	loaded, err := g.Load()
	require.NoError(t, err)
	require.Len(t, loaded.ActiveTaskList().Tasks, 1)
	assert.Equal(t, "third", loaded.ActiveTaskList().Tasks[0].Name)
}

func TestFlush_WritesPendingSynchronously(t *testing.T) {
	g := New(filepath.Join(t.TempDir(), "state.json")).WithWindow(time.Hour)

	g.Schedule(stateWithTask("pending", 10))
	require.NoError(t, g.Flush())

	loaded, err := g.Load()
	require.NoError(t, err)
	require.Len(t, loaded.ActiveTaskList().Tasks, 1)
	assert.Equal(t, "pending", loaded.ActiveTaskList().Tasks[0].Name)
}

func TestFlush_NothingPending(t *testing.T) {
	g := newTestGateway(t)
	require.NoError(t, g.Flush())
	_, err := os.Stat(g.path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_NormalizesLoadedState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	broken := &domain.State{
		Lists: map[string]*domain.TaskList{
			"a": {Name: "a", Tasks: []domain.Task{{Name: "t", Duration: 10, Remaining: 99, Enabled: true}}},
		},
		ListOrder:  []string{"a", "a", "gone"},
		ActiveList: "gone",
		ActiveTask: 42,
	}
	content, err := json.Marshal(envelope{Version: formatVersion, State: broken})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	loaded, err := New(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "a", loaded.ActiveList)
	assert.Equal(t, []string{"a"}, loaded.ListOrder)
	assert.Equal(t, float64(10), loaded.Lists["a"].Tasks[0].Remaining)
	assert.Equal(t, 0, loaded.ActiveTask)
}
