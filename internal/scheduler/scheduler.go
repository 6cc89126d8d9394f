// Package scheduler drives the countdown playlist: a periodic tick
// loop that advances the active task's remaining time, fires
// notifications, and walks the cursor through the enabled tasks.
package scheduler

import (
	"math/rand"
	"sync"
	"time"

	"timetally/internal/domain"
	"timetally/internal/store"
)

// Phase is the scheduler lifecycle state.
type Phase int

// Scheduler phases.
const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "idle"
	}
}

// DefaultTickInterval is the period of the tick loop. Each tick
// carries a monotonic-clock delta rather than a fixed decrement, so
// scheduling jitter never accumulates as drift.
const DefaultTickInterval = 200 * time.Millisecond

type eventKind int

const (
	eventStarted eventKind = iota
	eventCompleted
)

// event is a notification side effect collected inside a transaction
// and dispatched after it commits, so ports never observe partial
// state and the completed/started order is preserved.
// Fields are ordered to minimize memory padding.
type event struct {
	task     domain.Task
	key      domain.MediaKey
	cfg      domain.ListConfig
	kind     eventKind
	hasMedia bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval overrides the tick interval.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l domain.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// WithRand overrides the affirmation source for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Scheduler) { s.rng = r }
}

// Scheduler advances the active list through the store's transaction
// primitive. All phase bookkeeping is internal; task state and the
// cursor live in the store so concurrent edits stay coherent.
// Fields are ordered to minimize memory padding.
type Scheduler struct {
	store    *store.Store
	notifier domain.Notifier
	media    domain.MediaController
	clock    domain.Clock
	logger   domain.Logger
	rng      *rand.Rand
	stop     chan struct{}
	done     chan struct{}
	last     time.Time
	interval time.Duration
	mu       sync.Mutex
	rngMu    sync.Mutex
	phase    Phase
}

// New creates an idle scheduler.
func New(st *store.Store, notifier domain.Notifier, media domain.MediaController, clock domain.Clock, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:    st,
		notifier: notifier,
		media:    media,
		clock:    clock,
		interval: DefaultTickInterval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase returns the current lifecycle phase.
func (s *Scheduler) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Start begins periodic ticking on the next enabled task at or after
// the cursor. Already running is a no-op. When no enabled task exists
// the state is left untouched and ErrNoEnabledTasks is returned.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	if s.phase == PhaseRunning {
		s.mu.Unlock()
		return nil
	}

	var events []event
	err := s.store.Transact(func(st *domain.State) error {
		list := st.ActiveTaskList()
		idx := domain.NextEnabled(list.Tasks, st.ActiveTask)
		if idx < 0 {
			return domain.ErrNoEnabledTasks
		}
		st.ActiveTask = idx
		events = append(events, startedEvent(st.ActiveList, list, idx))
		return nil
	})
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.phase = PhaseRunning
	s.last = s.clock.Now()
	stop := make(chan struct{})
	done := make(chan struct{})
	s.stop, s.done = stop, done
	go s.loop(stop, done)
	s.mu.Unlock()

	s.dispatch(events)
	s.logf("scheduler", "started")
	return nil
}

// Pause stops ticking and retains every remaining value and the
// cursor. It blocks until the tick goroutine has exited: no tick
// fires after Pause returns. A no-op unless Running.
func (s *Scheduler) Pause() {
	if s.stopLoop(PhasePaused) {
		s.logf("scheduler", "paused")
	}
}

// Skip moves the cursor to the next enabled task after the current
// one, preserving the current task's partial progress. The elapsed
// time origin is rebased so the skip gap is not attributed to the
// next task. No next enabled task is a no-op.
func (s *Scheduler) Skip() {
	s.mu.Lock()
	running := s.phase == PhaseRunning
	s.mu.Unlock()

	var events []event
	err := s.store.Transact(func(st *domain.State) error {
		list := st.ActiveTaskList()
		next := domain.NextEnabled(list.Tasks, st.ActiveTask+1)
		if next < 0 {
			return domain.ErrNoEnabledTasks
		}
		st.ActiveTask = next
		if running {
			events = append(events, startedEvent(st.ActiveList, list, next))
		}
		return nil
	})
	if err != nil {
		return
	}
	s.rebase()
	s.dispatch(events)
}

// CompleteEarly zeroes the active task's remaining time and advances
// exactly as a natural completion would, including the end-of-queue
// full reset.
func (s *Scheduler) CompleteEarly() {
	var events []event
	exhausted := false
	err := s.store.Transact(func(st *domain.State) error {
		list := st.ActiveTaskList()
		if len(list.Tasks) == 0 {
			return domain.ErrNoEnabledTasks
		}
		idx := st.ActiveTask
		t := &list.Tasks[idx]
		t.Remaining = 0
		events = append(events, completedEvent(list, *t))

		next := domain.NextEnabled(list.Tasks, idx+1)
		if next < 0 {
			resetAll(list)
			st.ActiveTask = 0
			exhausted = true
			return nil
		}
		st.ActiveTask = next
		events = append(events, startedEvent(st.ActiveList, list, next))
		return nil
	})
	if err != nil {
		return
	}
	s.rebase()
	s.dispatch(events)
	if exhausted {
		s.settleIdle()
	}
}

// rebase resets the elapsed time origin after a cursor jump committed,
// so the gap spent on the previous task is not charged to the next
// one. Called only after a successful transaction; a failed jump must
// not disturb the running task's timing.
func (s *Scheduler) rebase() {
	s.mu.Lock()
	if s.phase == PhaseRunning {
		s.last = s.clock.Now()
	}
	s.mu.Unlock()
}

// Restart stops ticking, resets every task in the active list to its
// full duration, and moves the cursor to the front.
func (s *Scheduler) Restart() {
	s.settleIdle()
	_ = s.store.Transact(func(st *domain.State) error {
		list := st.ActiveTaskList()
		resetAll(list)
		st.ActiveTask = 0
		return nil
	})
	s.logf("scheduler", "restarted")
}

// loop is the tick goroutine. stop and done are captured per run so a
// stale loop can never race a successor started later.
func (s *Scheduler) loop(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := s.clock.Now()
			elapsed := now.Sub(s.last).Seconds()
			s.last = now
			s.mu.Unlock()
			if elapsed <= 0 {
				continue
			}
			if s.advance(elapsed) {
				s.mu.Lock()
				if s.phase == PhaseRunning {
					s.phase = PhaseIdle
					s.stop, s.done = nil, nil
				}
				s.mu.Unlock()
				s.logf("scheduler", "queue completed")
				return
			}
		}
	}
}

// advance applies one tick of elapsed seconds to the active task and
// reports whether the queue was exhausted (which ends the run).
func (s *Scheduler) advance(elapsed float64) bool {
	var events []event
	exhausted := false
	err := s.store.Transact(func(st *domain.State) error {
		list := st.ActiveTaskList()
		if len(list.Tasks) == 0 {
			exhausted = true
			return nil
		}
		idx := st.ActiveTask
		t := &list.Tasks[idx]
		t.Remaining -= elapsed
		if t.Remaining > 0 {
			return nil
		}
		t.Remaining = 0
		events = append(events, completedEvent(list, *t))

		next := domain.NextEnabled(list.Tasks, idx+1)
		if next < 0 {
			resetAll(list)
			st.ActiveTask = 0
			exhausted = true
			return nil
		}
		st.ActiveTask = next
		events = append(events, startedEvent(st.ActiveList, list, next))
		return nil
	})
	if err != nil {
		s.logf("scheduler", "tick aborted: "+err.Error())
		return false
	}
	s.dispatch(events)
	return exhausted
}

// dispatch fires collected notification events in order. Starting a
// task always pauses all media first so at most one embed plays.
func (s *Scheduler) dispatch(events []event) {
	for _, ev := range events {
		switch ev.kind {
		case eventStarted:
			s.media.PauseAll()
			if ev.hasMedia {
				s.media.Play(ev.key)
			}
			if ev.cfg.VoiceEnabled {
				if text := domain.StartAnnouncement(ev.cfg, ev.task); text != "" {
					s.notifier.Announce(text)
				}
			}
			s.logf("task", "started: "+ev.task.Name)
		case eventCompleted:
			if ev.cfg.BeepEnabled {
				s.notifier.Beep()
			}
			if ev.cfg.VoiceEnabled {
				if text := s.completionText(ev.cfg); text != "" {
					s.notifier.Announce(text)
				}
			}
			s.logf("task", "completed: "+ev.task.Name)
		}
	}
}

// stopLoop transitions out of Running and waits for the tick
// goroutine to exit, guaranteeing no further tick after return.
func (s *Scheduler) stopLoop(next Phase) bool {
	s.mu.Lock()
	if s.phase != PhaseRunning || s.stop == nil {
		s.mu.Unlock()
		return false
	}
	stop, done := s.stop, s.done
	s.phase = next
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	close(stop)
	<-done
	return true
}

// settleIdle forces the scheduler to Idle, stopping the loop if one
// is running.
func (s *Scheduler) settleIdle() {
	if s.stopLoop(PhaseIdle) {
		return
	}
	s.mu.Lock()
	s.phase = PhaseIdle
	s.mu.Unlock()
}

func (s *Scheduler) completionText(cfg domain.ListConfig) string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return domain.CompletionAnnouncement(cfg, s.rng)
}

func (s *Scheduler) logf(category, msg string) {
	if s.logger != nil {
		s.logger.Info(category, msg)
	}
}

func resetAll(list *domain.TaskList) {
	for i := range list.Tasks {
		list.Tasks[i].ResetRemaining()
	}
}

func startedEvent(listName string, list *domain.TaskList, idx int) event {
	t := list.Tasks[idx]
	return event{
		kind:     eventStarted,
		cfg:      list.Config,
		task:     t,
		key:      domain.MediaKey{List: listName, Index: idx},
		hasMedia: t.Media != nil,
	}
}

func completedEvent(list *domain.TaskList, t domain.Task) event {
	return event{kind: eventCompleted, cfg: list.Config, task: t}
}
