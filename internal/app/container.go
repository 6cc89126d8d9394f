// Package app provides the dependency injection container for the
// application.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"timetally/internal/domain"
	"timetally/internal/infra/config"
	"timetally/internal/infra/logging"
	"timetally/internal/infra/notify"
	"timetally/internal/infra/signal"
	"timetally/internal/infra/statefile"
	"timetally/internal/scheduler"
	"timetally/internal/store"
	"timetally/internal/usecase"
)

// Paths holds the resolved filesystem locations.
type Paths struct {
	DataDir   string // Root data directory
	StatePath string // Path to state.json
	SignalDir string // Path to the cross-process signal directory
}

func newPaths(dataDir string) Paths {
	return Paths{
		DataDir:   dataDir,
		StatePath: filepath.Join(dataDir, "state.json"),
		SignalDir: filepath.Join(dataDir, "signals"),
	}
}

// Container provides dependency injection for the application. It owns
// the store, the scheduler, and the persistence and sync wiring.
type Container struct {
	Store       *store.Store
	Scheduler   *scheduler.Scheduler
	Gateway     *statefile.Gateway
	Broadcaster *signal.Broadcaster
	Notifier    domain.Notifier
	Media       domain.MediaController
	Logger      *logging.Logger
	Settings    *config.Settings
	Paths       Paths
}

// New creates a fully wired Container: settings, logging, durable
// state, the store with persistence and broadcast observers, and the
// scheduler.
func New() (*Container, error) {
	settings, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return NewWithSettings(settings)
}

// NewWithSettings creates a Container from explicit settings. Used by
// tests and by commands that override the data directory.
func NewWithSettings(settings *config.Settings) (*Container, error) {
	paths := newPaths(settings.DataDir)
	logger := logging.New(paths.DataDir, logging.ParseLevel(settings.LogLevel))
	for _, w := range settings.Warnings {
		logger.Warn("config", w)
	}

	gateway := statefile.New(paths.StatePath).WithLogger(logger)
	initial, err := gateway.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	st := store.New(initial)

	broadcaster := signal.New(paths.SignalDir).WithLogger(logger)

	// Observer order matters: persist before announcing the change to
	// sibling processes.
	st.OnCommit(gateway.Schedule)
	st.OnCommit(func(*domain.State) {
		if err := broadcaster.Publish(); err != nil {
			logger.Warn("signal", fmt.Sprintf("publish failed: %v", err))
		}
	})

	notifier := notify.NewConsole(settings.VoiceCommand, logger)
	media := notify.NewMediaLog(logger)
	sched := scheduler.New(st, notifier, media, domain.RealClock{},
		scheduler.WithInterval(settings.TickInterval),
		scheduler.WithLogger(logger),
	)

	return &Container{
		Store:       st,
		Scheduler:   sched,
		Gateway:     gateway,
		Broadcaster: broadcaster,
		Notifier:    notifier,
		Media:       media,
		Logger:      logger,
		Settings:    settings,
		Paths:       paths,
	}, nil
}

// StartWatcher runs the cross-process sync loop until ctx is canceled:
// on every remote change signal the durable state is reloaded and
// merged into the store (last write wins).
func (c *Container) StartWatcher(ctx context.Context) {
	go func() {
		err := c.Broadcaster.Watch(ctx, func() {
			st, loadErr := c.Gateway.Load()
			if loadErr != nil {
				c.Logger.Warn("signal", fmt.Sprintf("reload failed: %v", loadErr))
				return
			}
			c.Store.Merge(st)
		})
		if err != nil && ctx.Err() == nil {
			c.Logger.Error("signal", fmt.Sprintf("watcher stopped: %v", err))
		}
	}()
}

// Close flushes pending writes and releases resources.
func (c *Container) Close() error {
	c.Scheduler.Pause()
	if err := c.Gateway.Flush(); err != nil {
		c.Logger.Error("store", fmt.Sprintf("flush failed: %v", err))
		_ = c.Logger.Close()
		return err
	}
	return c.Logger.Close()
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Store)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store)
}

// MoveTaskUseCase returns a new MoveTask use case.
func (c *Container) MoveTaskUseCase() *usecase.MoveTask {
	return usecase.NewMoveTask(c.Store)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Store)
}

// AddTasksFromFileUseCase returns a new AddTasksFromFile use case.
func (c *Container) AddTasksFromFileUseCase() *usecase.AddTasksFromFile {
	return usecase.NewAddTasksFromFile(c.Store, c.Logger)
}

// AddListUseCase returns a new AddList use case.
func (c *Container) AddListUseCase() *usecase.AddList {
	return usecase.NewAddList(c.Store)
}

// RenameListUseCase returns a new RenameList use case.
func (c *Container) RenameListUseCase() *usecase.RenameList {
	return usecase.NewRenameList(c.Store)
}

// DeleteListUseCase returns a new DeleteList use case.
func (c *Container) DeleteListUseCase() *usecase.DeleteList {
	return usecase.NewDeleteList(c.Store)
}

// MoveListUseCase returns a new MoveList use case.
func (c *Container) MoveListUseCase() *usecase.MoveList {
	return usecase.NewMoveList(c.Store)
}

// SelectListUseCase returns a new SelectList use case.
func (c *Container) SelectListUseCase() *usecase.SelectList {
	return usecase.NewSelectList(c.Store)
}

// SelectTaskUseCase returns a new SelectTask use case.
func (c *Container) SelectTaskUseCase() *usecase.SelectTask {
	return usecase.NewSelectTask(c.Store)
}

// UpdateConfigUseCase returns a new UpdateConfig use case.
func (c *Container) UpdateConfigUseCase() *usecase.UpdateConfig {
	return usecase.NewUpdateConfig(c.Store)
}

// ExportStateUseCase returns a new ExportState use case.
func (c *Container) ExportStateUseCase() *usecase.ExportState {
	return usecase.NewExportState(c.Store)
}

// ImportStateUseCase returns a new ImportState use case.
func (c *Container) ImportStateUseCase() *usecase.ImportState {
	return usecase.NewImportState(c.Store, c.Logger)
}
