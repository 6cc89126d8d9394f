// Package tui implements the interactive terminal interface: list
// tabs, the task table with live countdowns, and timer control keys.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"timetally/internal/app"
	"timetally/internal/domain"
	"timetally/internal/scheduler"
	"timetally/internal/usecase"
)

// refreshInterval drives the countdown redraw. The scheduler ticks on
// its own cadence; this only refreshes what is shown.
const refreshInterval = 200 * time.Millisecond

// tickMsg requests a redraw of the countdown display.
type tickMsg time.Time

// Model is the root bubbletea model.
// Fields are ordered to minimize memory padding.
type Model struct {
	container *app.Container
	keys      KeyMap
	status    string
	width     int
	height    int
	showHelp  bool
}

// NewModel creates the root TUI model.
func NewModel(c *app.Container) Model {
	return Model{container: c, keys: DefaultKeyMap()}
}

// Init schedules the first redraw tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key presses and redraw ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	snap := m.container.Store.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Up):
		m.runOp(m.container.SelectTaskUseCase().Execute(ctx, usecase.SelectTaskInput{Index: snap.ActiveTask - 1}))

	case key.Matches(msg, m.keys.Down):
		m.runOp(m.container.SelectTaskUseCase().Execute(ctx, usecase.SelectTaskInput{Index: snap.ActiveTask + 1}))

	case key.Matches(msg, m.keys.PrevList):
		m.selectAdjacentList(ctx, snap, -1)

	case key.Matches(msg, m.keys.NextList):
		m.selectAdjacentList(ctx, snap, +1)

	case key.Matches(msg, m.keys.StartPause):
		if m.container.Scheduler.Phase() == scheduler.PhaseRunning {
			m.container.Scheduler.Pause()
			m.status = "paused"
		} else if err := m.container.Scheduler.Start(); err != nil {
			m.runOp(err)
		} else {
			m.status = "running"
		}

	case key.Matches(msg, m.keys.Skip):
		m.container.Scheduler.Skip()

	case key.Matches(msg, m.keys.Complete):
		m.container.Scheduler.CompleteEarly()

	case key.Matches(msg, m.keys.Restart):
		m.container.Scheduler.Restart()
		m.status = "restarted"

	case key.Matches(msg, m.keys.MoveUp):
		m.runOp(m.container.MoveTaskUseCase().Execute(ctx, usecase.MoveTaskInput{
			From: snap.ActiveTask, To: snap.ActiveTask - 1,
		}))

	case key.Matches(msg, m.keys.MoveDown):
		m.runOp(m.container.MoveTaskUseCase().Execute(ctx, usecase.MoveTaskInput{
			From: snap.ActiveTask, To: snap.ActiveTask + 1,
		}))

	case key.Matches(msg, m.keys.Toggle):
		_, err := m.container.ToggleTaskUseCase().Execute(ctx, usecase.ToggleTaskInput{Index: snap.ActiveTask})
		m.runOp(err)

	case key.Matches(msg, m.keys.Delete):
		m.runOp(m.container.DeleteTaskUseCase().Execute(ctx, usecase.DeleteTaskInput{Index: snap.ActiveTask}))
	}

	return m, nil
}

// runOp records an operation result in the status line. Expected
// rejections (cursor at the edge, empty list) are shown, not fatal.
func (m *Model) runOp(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrTaskNotFound) {
		return // cursor stepped past the edge
	}
	m.status = err.Error()
}

func (m *Model) selectAdjacentList(ctx context.Context, snap *domain.State, delta int) {
	for i, name := range snap.ListOrder {
		if name != snap.ActiveList {
			continue
		}
		next := i + delta
		if next < 0 || next >= len(snap.ListOrder) {
			return
		}
		m.runOp(m.container.SelectListUseCase().Execute(ctx, usecase.SelectListInput{Name: snap.ListOrder[next]}))
		return
	}
}

// View renders the tab bar, the task table, and the status line.
func (m Model) View() string {
	snap := m.container.Store.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("timetally"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs(snap))
	b.WriteString("\n\n")
	b.WriteString(m.renderTasks(snap))
	b.WriteString("\n")
	b.WriteString(m.renderStatus(snap))
	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.renderHelp())
	}
	return b.String()
}

func (m Model) renderTabs(snap *domain.State) string {
	tabs := make([]string, 0, len(snap.ListOrder))
	for _, name := range snap.ListOrder {
		if name == snap.ActiveList {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	return strings.Join(tabs, "")
}

func (m Model) renderTasks(snap *domain.State) string {
	tasks := snap.ActiveTaskList().Tasks
	if len(tasks) == 0 {
		return helpStyle.Render("  no tasks; add one with the CLI: timetally task add")
	}

	running := m.container.Scheduler.Phase() == scheduler.PhaseRunning
	var b strings.Builder
	for i, task := range tasks {
		cursor := "  "
		line := fmt.Sprintf("%s  %s", FormatClock(task.Remaining), task.Name)

		style := taskStyle
		switch {
		case !task.Enabled:
			style = disabledTaskStyle
		case i == snap.ActiveTask && running:
			cursor = "▶ "
			style = runningTaskStyle
		case i == snap.ActiveTask:
			cursor = "> "
			style = selectedTaskStyle
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStatus(snap *domain.State) string {
	parts := []string{m.container.Scheduler.Phase().String()}
	if total := totalRemaining(snap.ActiveTaskList().Tasks); total > 0 {
		parts = append(parts, "total "+FormatClock(total))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return statusStyle.Render(strings.Join(parts, " · "))
}

func (m Model) renderHelp() string {
	entries := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.PrevList, m.keys.NextList,
		m.keys.StartPause, m.keys.Skip, m.keys.Complete, m.keys.Restart,
		m.keys.MoveUp, m.keys.MoveDown, m.keys.Toggle, m.keys.Delete,
		m.keys.Quit,
	}
	parts := make([]string, 0, len(entries))
	for _, b := range entries {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	return helpStyle.Render(strings.Join(parts, "  "))
}

// totalRemaining sums the remaining seconds of enabled tasks.
func totalRemaining(tasks []domain.Task) float64 {
	var total float64
	for _, task := range tasks {
		if task.Enabled {
			total += task.Remaining
		}
	}
	return total
}

// FormatClock renders seconds as m:ss or h:mm:ss.
func FormatClock(seconds float64) string {
	total := int(seconds + 0.5)
	h := total / 3600
	mi := total % 3600 / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mi, s)
	}
	return fmt.Sprintf("%d:%02d", mi, s)
}

// Run starts the TUI event loop and the cross-process watcher, and
// blocks until the user quits.
func Run(c *app.Container) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.StartWatcher(ctx)

	p := tea.NewProgram(NewModel(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
