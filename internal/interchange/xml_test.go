package interchange

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetally/internal/domain"
)

func TestExportImport_RoundTrip(t *testing.T) {
	st := domain.DefaultState()
	st.Lists[domain.DefaultListName].Tasks = []domain.Task{
		{Name: "Warmup", Duration: 300, Remaining: 120.4, Enabled: true},
		{Name: "Stretch https://youtu.be/dQw4w9WgXcQ", Duration: 60, Remaining: 60, Enabled: false,
			Media: &domain.MediaRef{ID: "dQw4w9WgXcQ", SourceURL: "https://youtu.be/dQw4w9WgXcQ"}},
	}
	st.Lists["Evening"] = &domain.TaskList{
		Name:   "Evening",
		Tasks:  []domain.Task{{Name: "Read", Duration: 900, Remaining: 900, Enabled: true}},
		Config: domain.DefaultListConfig(),
	}
	st.ListOrder = []string{domain.DefaultListName, "Evening"}

	data, err := Export(st)
	require.NoError(t, err)

	fresh := domain.DefaultState()
	require.NoError(t, Import(fresh, data))
	domain.Normalize(fresh)

	require.Equal(t, []string{domain.DefaultListName, "Evening"}, fresh.ListOrder)

	tasks := fresh.Lists[domain.DefaultListName].Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "Warmup", tasks[0].Name)
	assert.Equal(t, 300, tasks[0].Duration)
	assert.Equal(t, float64(120), tasks[0].Remaining)
	assert.True(t, tasks[0].Enabled)
	assert.False(t, tasks[1].Enabled)
	require.NotNil(t, tasks[1].Media)
	assert.Equal(t, "dQw4w9WgXcQ", tasks[1].Media.ID)

	evening := fresh.Lists["Evening"]
	require.Len(t, evening.Tasks, 1)
	assert.Equal(t, "Read", evening.Tasks[0].Name)
}

func TestExport_FollowsListOrder(t *testing.T) {
	st := domain.DefaultState()
	st.Lists["Alpha"] = &domain.TaskList{Name: "Alpha", Config: domain.DefaultListConfig()}
	st.ListOrder = []string{"Alpha", domain.DefaultListName}

	data, err := Export(st)
	require.NoError(t, err)

	out := string(data)
	assert.Less(t, strings.Index(out, `name="Alpha"`), strings.Index(out, `name="Tasks"`))
}

func TestImport_Defaults(t *testing.T) {
	doc := `<timetally>
  <list name="Tasks">
    <task name="plain" time="30"/>
    <task name="drained" time="30" remaining="0"/>
    <task name="off" time="30" enabled="0"/>
  </list>
</timetally>`

	st := domain.DefaultState()
	require.NoError(t, Import(st, []byte(doc)))

	tasks := st.Lists[domain.DefaultListName].Tasks
	require.Len(t, tasks, 3)
	assert.Equal(t, float64(30), tasks[0].Remaining)
	assert.True(t, tasks[0].Enabled)
	assert.Equal(t, float64(30), tasks[1].Remaining) // non-positive remaining resets
	assert.False(t, tasks[2].Enabled)
}

func TestImport_MediaIDTrustedVerbatim(t *testing.T) {
	doc := `<timetally>
  <list name="Tasks">
    <task name="custom" time="30" mediaId="abc123xyz00" mediaUrl="https://example.com/v"/>
    <task name="inferred https://www.youtube.com/watch?v=dQw4w9WgXcQ" time="30"/>
  </list>
</timetally>`

	st := domain.DefaultState()
	require.NoError(t, Import(st, []byte(doc)))

	tasks := st.Lists[domain.DefaultListName].Tasks
	require.NotNil(t, tasks[0].Media)
	assert.Equal(t, "abc123xyz00", tasks[0].Media.ID)
	assert.Equal(t, "https://example.com/v", tasks[0].Media.SourceURL)
	require.NotNil(t, tasks[1].Media)
	assert.Equal(t, "dQw4w9WgXcQ", tasks[1].Media.ID)
}

func TestImport_MalformedLeavesStateUntouched(t *testing.T) {
	st := domain.DefaultState()
	st.Lists[domain.DefaultListName].Tasks = []domain.Task{domain.NewTask("keep", 10)}

	for _, data := range []string{"<not-even-xml", "<timetally></timetally>", "<other><list name='x'/></other>"} {
		err := Import(st, []byte(data))
		assert.ErrorIs(t, err, domain.ErrMalformedImport)
		require.Len(t, st.Lists[domain.DefaultListName].Tasks, 1)
	}
}

func TestImport_AppendsToExistingList(t *testing.T) {
	st := domain.DefaultState()
	st.Lists[domain.DefaultListName].Tasks = []domain.Task{domain.NewTask("existing", 10)}

	doc := `<timetally><list name="Tasks"><task name="added" time="20"/></list></timetally>`
	require.NoError(t, Import(st, []byte(doc)))

	tasks := st.Lists[domain.DefaultListName].Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "existing", tasks[0].Name)
	assert.Equal(t, "added", tasks[1].Name)
}
