package schedule

import (
	"context"
	"sync"
	"time"
)

// defaultTickInterval is how often the scheduler evaluates due tasks.
const defaultTickInterval = time.Minute

// Clock supplies the scheduler's notion of current time. Production uses
// SystemClock; tests inject a fixed or stepping clock for deterministic
// tick evaluation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Dispatcher executes a resolved action against a device. The hub implements
// this; the scheduler never touches devices directly.
type Dispatcher interface {
	Dispatch(ctx context.Context, deviceID string, action Action) error
}

// Scheduler periodically evaluates scheduled tasks and dispatches the due
// ones.
//
// The loop alternates between idling on the ticker and dispatching every
// task whose trigger time equals the clock's current time of day. A failed
// dispatch is logged and skipped; no error stops the loop. Cancellation
// (context or Stop) is observed within one tick interval.
type Scheduler struct {
	store      *Store
	dispatcher Dispatcher
	clock      Clock
	interval   time.Duration
	logger     Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewScheduler creates a scheduler over the given store and dispatcher,
// ticking once a minute against the system clock.
func NewScheduler(store *Store, dispatcher Dispatcher) *Scheduler {
	return &Scheduler{
		store:      store,
		dispatcher: dispatcher,
		clock:      SystemClock{},
		interval:   defaultTickInterval,
		logger:     noopLogger{},
	}
}

// SetLogger sets the logger for the scheduler.
func (s *Scheduler) SetLogger(logger Logger) {
	s.logger = logger
}

// SetClock replaces the time source. Must be called before Start.
func (s *Scheduler) SetClock(clock Clock) {
	s.clock = clock
}

// SetInterval replaces the tick interval. Must be called before Start.
func (s *Scheduler) SetInterval(interval time.Duration) {
	if interval > 0 {
		s.interval = interval
	}
}

// Start launches the tick loop in its own goroutine. It returns
// ErrAlreadyRunning if the scheduler is already started. The loop runs until
// ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.running = true
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(runCtx)

	s.logger.Info("scheduler started", "interval", s.interval.String())
	return nil
}

// Stop cancels the tick loop and blocks until it has exited.
// Safe to call when the scheduler is not running.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.logger.Info("scheduler stopped")
}

// run is the tick loop. Each tick snapshots the due tasks and dispatches
// them; the loop itself holds no locks across ticks.
func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick dispatches every task due at the clock's current time of day.
func (s *Scheduler) tick(ctx context.Context) {
	now := TimeOfDayOf(s.clock.Now())

	for _, task := range s.store.DueTasks(now) {
		if ctx.Err() != nil {
			return
		}

		err := s.dispatcher.Dispatch(ctx, task.DeviceID, task.Action)
		if err != nil {
			// Recoverable: skip this task, keep the loop alive.
			s.logger.Warn("scheduled task dispatch failed",
				"task_id", task.ID,
				"device_id", task.DeviceID,
				"action", task.Action.String(),
				"error", err,
			)
			continue
		}

		s.logger.Info("scheduled task dispatched",
			"task_id", task.ID,
			"device_id", task.DeviceID,
			"at", task.At.String(),
			"action", task.Action.String(),
		)
	}
}
