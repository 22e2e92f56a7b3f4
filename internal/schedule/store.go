package schedule

import (
	"context"
	"fmt"
	"sync"
)

// Logger defines the logging interface used by this package.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Store holds scheduled tasks and automated triggers.
//
// It wraps a Repository and keeps an in-memory cache in creation order, so
// the scheduler's per-tick scan never touches the database. The cache is
// populated on startup via Refresh and kept in sync by the mutating methods.
//
// All public methods are thread-safe. Returned slices are copies; callers
// cannot corrupt store state through them.
type Store struct {
	repo Repository

	mu       sync.RWMutex
	tasks    []Task
	triggers []Trigger

	logger Logger
}

// NewStore creates a new schedule store backed by the given repository.
func NewStore(repo Repository) *Store {
	return &Store{
		repo:   repo,
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the store.
func (s *Store) SetLogger(logger Logger) {
	s.logger = logger
}

// Refresh reloads all tasks and triggers from the repository into the cache.
// This should be called on application startup.
func (s *Store) Refresh(ctx context.Context) error {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("loading scheduled tasks: %w", err)
	}
	triggers, err := s.repo.ListTriggers(ctx)
	if err != nil {
		return fmt.Errorf("loading automated triggers: %w", err)
	}

	s.mu.Lock()
	s.tasks = tasks
	s.triggers = triggers
	s.mu.Unlock()

	s.logger.Info("schedule store refreshed",
		"tasks", len(tasks),
		"triggers", len(triggers),
	)
	return nil
}

// AddTask validates, persists, and caches a new scheduled task.
// The action must pass Validate; a malformed action is rejected before
// anything is stored.
func (s *Store) AddTask(ctx context.Context, deviceID string, at TimeOfDay, action Action) (*Task, error) {
	if err := action.Validate(); err != nil {
		return nil, err
	}

	task := &Task{
		ID:       GenerateID(),
		DeviceID: deviceID,
		At:       at,
		Action:   action,
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, *task)
	s.mu.Unlock()

	s.logger.Info("scheduled task added",
		"task_id", task.ID,
		"device_id", deviceID,
		"at", at.String(),
		"action", action.String(),
	)
	return task, nil
}

// RemoveTask deletes a scheduled task by ID.
func (s *Store) RemoveTask(ctx context.Context, id string) error {
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.logger.Info("scheduled task removed", "task_id", id)
	return nil
}

// AddTrigger validates, persists, and caches a new automated trigger.
// The condition is stored as opaque text and never evaluated.
func (s *Store) AddTrigger(ctx context.Context, condition, deviceID string, action Action) (*Trigger, error) {
	if err := action.Validate(); err != nil {
		return nil, err
	}

	trigger := &Trigger{
		ID:        GenerateID(),
		Condition: condition,
		DeviceID:  deviceID,
		Action:    action,
	}
	if err := s.repo.CreateTrigger(ctx, trigger); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.triggers = append(s.triggers, *trigger)
	s.mu.Unlock()

	s.logger.Info("automated trigger added",
		"trigger_id", trigger.ID,
		"condition", condition,
		"device_id", deviceID,
		"action", action.String(),
	)
	return trigger, nil
}

// Tasks returns a copy of all scheduled tasks in creation order.
func (s *Store) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Triggers returns a copy of all automated triggers in creation order.
func (s *Store) Triggers() []Trigger {
	s.mu.RLock()
	defer s.mu.RUnlock()

	triggers := make([]Trigger, len(s.triggers))
	copy(triggers, s.triggers)
	return triggers
}

// DueTasks returns copies of the tasks whose trigger time equals at.
func (s *Store) DueTasks(at TimeOfDay) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var due []Task
	for _, t := range s.tasks {
		if t.At == at {
			due = append(due, t)
		}
	}
	return due
}

// TaskCount returns the number of cached scheduled tasks.
func (s *Store) TaskCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
