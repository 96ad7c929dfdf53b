package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/workflo/workflo-go/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository handles task persistence operations.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task. The caller supplies the generated ID and timestamps.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (id, owner_id, title, description, status, priority, deadline, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.Deadline,
		task.CreatedAt,
		task.UpdatedAt,
	)
	return err
}

// GetByID retrieves a task by its ID regardless of owner. The caller decides
// whether the requester may see or touch it.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	query := `SELECT id, owner_id, title, description, status, priority, deadline, created_at, updated_at
		FROM tasks WHERE id = ?`

	task := &model.Task{}
	var deadline sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.OwnerID, &task.Title, &task.Description,
		&task.Status, &task.Priority, &deadline, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if deadline.Valid {
		task.Deadline = &deadline.Time
	}

	return task, nil
}

// ListByOwner retrieves all tasks owned by a user, newest first.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error) {
	query := `SELECT id, owner_id, title, description, status, priority, deadline, created_at, updated_at
		FROM tasks WHERE owner_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var deadline sql.NullTime
		if err := rows.Scan(
			&t.ID, &t.OwnerID, &t.Title, &t.Description,
			&t.Status, &t.Priority, &deadline, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if deadline.Valid {
			t.Deadline = &deadline.Time
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update replaces all mutable columns of a task. Partial-update merging
// happens in the service layer before this is called.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, status = ?, priority = ?, deadline = ?, updated_at = ?
		WHERE id = ?`

	// RowsAffected is zero both when the row is gone and when nothing
	// changed, so missing rows are detected by the preceding GetByID.
	_, err := r.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.Deadline,
		task.UpdatedAt,
		task.ID,
	)
	return err
}

// Delete removes a task by ID.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
