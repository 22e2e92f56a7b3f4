package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository defines the persistence interface for scheduled tasks and
// automated triggers. The SQLite implementation is the production one; tests
// substitute an in-memory mock.
type Repository interface {
	// CreateTask inserts a new scheduled task.
	CreateTask(ctx context.Context, task *Task) error

	// ListTasks retrieves all scheduled tasks in creation order.
	ListTasks(ctx context.Context) ([]Task, error)

	// DeleteTask removes a scheduled task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id string) error

	// CreateTrigger inserts a new automated trigger.
	CreateTrigger(ctx context.Context, trigger *Trigger) error

	// ListTriggers retrieves all automated triggers in creation order.
	ListTriggers(ctx context.Context) ([]Trigger, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
// The db parameter should be an open SQLite connection with the schedule
// migrations applied.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateTask inserts a new scheduled task.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO scheduled_tasks (id, device_id, trigger_at, command, value, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.DeviceID,
		task.At.String(),
		string(task.Action.Command),
		nullableInt(task.Action.Value),
		task.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting scheduled task: %w", err)
	}
	return nil
}

// ListTasks retrieves all scheduled tasks in creation order.
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]Task, error) {
	query := `
		SELECT id, device_id, trigger_at, command, value, created_at
		FROM scheduled_tasks
		ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying scheduled tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var (
			t         Task
			at        string
			command   string
			value     sql.NullInt64
			createdAt string
		)
		if err := rows.Scan(&t.ID, &t.DeviceID, &at, &command, &value, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning scheduled task: %w", err)
		}

		t.At, err = ParseTimeOfDay(at)
		if err != nil {
			return nil, fmt.Errorf("parsing trigger_at: %w", err)
		}
		t.Action.Command = CommandName(command)
		if value.Valid {
			v := int(value.Int64)
			t.Action.Value = &v
		}
		t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scheduled tasks: %w", err)
	}
	return tasks, nil
}

// DeleteTask removes a scheduled task by ID.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM scheduled_tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting scheduled task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// CreateTrigger inserts a new automated trigger.
func (r *SQLiteRepository) CreateTrigger(ctx context.Context, trigger *Trigger) error {
	if trigger.CreatedAt.IsZero() {
		trigger.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO automated_triggers (id, condition, device_id, command, value, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		trigger.ID,
		trigger.Condition,
		trigger.DeviceID,
		string(trigger.Action.Command),
		nullableInt(trigger.Action.Value),
		trigger.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting automated trigger: %w", err)
	}
	return nil
}

// ListTriggers retrieves all automated triggers in creation order.
func (r *SQLiteRepository) ListTriggers(ctx context.Context) ([]Trigger, error) {
	query := `
		SELECT id, condition, device_id, command, value, created_at
		FROM automated_triggers
		ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying automated triggers: %w", err)
	}
	defer rows.Close()

	var triggers []Trigger
	for rows.Next() {
		var (
			tr        Trigger
			command   string
			value     sql.NullInt64
			createdAt string
		)
		if err := rows.Scan(&tr.ID, &tr.Condition, &tr.DeviceID, &command, &value, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning automated trigger: %w", err)
		}

		tr.Action.Command = CommandName(command)
		if value.Valid {
			v := int(value.Int64)
			tr.Action.Value = &v
		}
		var err error
		tr.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		triggers = append(triggers, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating automated triggers: %w", err)
	}
	return triggers, nil
}

// nullableInt returns a sql.NullInt64 for optional int pointers.
func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
