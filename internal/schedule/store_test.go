package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// mockRepository is a test implementation of Repository.
type mockRepository struct {
	mu       sync.Mutex
	tasks    []Task
	triggers []Trigger

	// For testing error paths
	createTaskErr    error
	createTriggerErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{}
}

func (m *mockRepository) CreateTask(_ context.Context, task *Task) error {
	if m.createTaskErr != nil {
		return m.createTaskErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, *task)
	return nil
}

func (m *mockRepository) ListTasks(_ context.Context) ([]Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tasks := make([]Task, len(m.tasks))
	copy(tasks, m.tasks)
	return tasks, nil
}

func (m *mockRepository) DeleteTask(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

func (m *mockRepository) CreateTrigger(_ context.Context, trigger *Trigger) error {
	if m.createTriggerErr != nil {
		return m.createTriggerErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.triggers = append(m.triggers, *trigger)
	return nil
}

func (m *mockRepository) ListTriggers(_ context.Context) ([]Trigger, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	triggers := make([]Trigger, len(m.triggers))
	copy(triggers, m.triggers)
	return triggers, nil
}

func TestStoreAddTask(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	store := NewStore(repo)

	at, _ := ParseTimeOfDay("06:00")
	task, err := store.AddTask(ctx, "1", at, Action{Command: CommandTurnOn})
	if err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}
	if task.ID == "" {
		t.Error("AddTask() assigned no ID")
	}

	tasks := store.Tasks()
	if len(tasks) != 1 || tasks[0].DeviceID != "1" || tasks[0].At != at {
		t.Errorf("Tasks() = %+v", tasks)
	}

	// Persisted too.
	persisted, _ := repo.ListTasks(ctx)
	if len(persisted) != 1 {
		t.Errorf("repository holds %d tasks, want 1", len(persisted))
	}
}

func TestStoreAddTaskRejectsMalformedAction(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMockRepository())

	at, _ := ParseTimeOfDay("06:00")
	_, err := store.AddTask(ctx, "1", at, Action{Command: "explode"})
	if !errors.Is(err, ErrMalformedAction) {
		t.Fatalf("AddTask() error = %v, want ErrMalformedAction", err)
	}
	if store.TaskCount() != 0 {
		t.Errorf("TaskCount() = %d after rejected add", store.TaskCount())
	}
}

func TestStoreRemoveTask(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMockRepository())

	at, _ := ParseTimeOfDay("06:00")
	task, err := store.AddTask(ctx, "1", at, Action{Command: CommandTurnOn})
	if err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}

	if err := store.RemoveTask(ctx, task.ID); err != nil {
		t.Fatalf("RemoveTask() error: %v", err)
	}
	if store.TaskCount() != 0 {
		t.Errorf("TaskCount() = %d, want 0", store.TaskCount())
	}

	if err := store.RemoveTask(ctx, "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("RemoveTask(missing) error = %v, want ErrTaskNotFound", err)
	}
}

func TestStoreAddTrigger(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMockRepository())

	trigger, err := store.AddTrigger(ctx, "device.temperature > 75", "1", Action{Command: CommandTurnOff})
	if err != nil {
		t.Fatalf("AddTrigger() error: %v", err)
	}
	if trigger.Condition != "device.temperature > 75" {
		t.Errorf("Condition = %q", trigger.Condition)
	}

	triggers := store.Triggers()
	if len(triggers) != 1 || triggers[0].DeviceID != "1" {
		t.Errorf("Triggers() = %+v", triggers)
	}
}

func TestStoreDueTasks(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMockRepository())

	six, _ := ParseTimeOfDay("06:00")
	seven, _ := ParseTimeOfDay("07:00")
	if _, err := store.AddTask(ctx, "1", six, Action{Command: CommandTurnOn}); err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}
	if _, err := store.AddTask(ctx, "2", six, Action{Command: CommandTurnOff}); err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}
	if _, err := store.AddTask(ctx, "3", seven, Action{Command: CommandLock}); err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}

	due := store.DueTasks(six)
	if len(due) != 2 {
		t.Fatalf("DueTasks(06:00) returned %d tasks, want 2", len(due))
	}
	if due[0].DeviceID != "1" || due[1].DeviceID != "2" {
		t.Errorf("DueTasks(06:00) order = %s, %s", due[0].DeviceID, due[1].DeviceID)
	}

	if got := store.DueTasks(TimeOfDay{Hour: 12}); len(got) != 0 {
		t.Errorf("DueTasks(12:00) = %+v, want none", got)
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMockRepository())

	at, _ := ParseTimeOfDay("06:00")
	if _, err := store.AddTask(ctx, "1", at, Action{Command: CommandTurnOn}); err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}

	tasks := store.Tasks()
	tasks[0].DeviceID = "corrupted"

	if store.Tasks()[0].DeviceID != "1" {
		t.Error("mutating the returned slice corrupted store state")
	}
}

func TestStoreRefresh(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()

	at, _ := ParseTimeOfDay("06:00")
	seed := &Task{ID: GenerateID(), DeviceID: "1", At: at, Action: Action{Command: CommandTurnOn}}
	if err := repo.CreateTask(ctx, seed); err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}

	store := NewStore(repo)
	if err := store.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if store.TaskCount() != 1 {
		t.Errorf("TaskCount() = %d after refresh, want 1", store.TaskCount())
	}
}
