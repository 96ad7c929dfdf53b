package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/workflo/workflo-go/internal/model"
	"github.com/workflo/workflo-go/internal/repository"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidDeadline = errors.New("deadline must be an RFC 3339 timestamp")
	ErrTaskNotFound    = errors.New("task not found")
	ErrNotTaskOwner    = errors.New("task belongs to another user")
)

// TaskStore defines the persistence operations the task service needs.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id string) (*model.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id string) error
}

// TaskService handles task business logic. Every operation is scoped to the
// authenticated owner.
type TaskService struct {
	store TaskStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

// List returns all tasks owned by the user, newest first.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]model.TaskResponse, error) {
	tasks, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return tasksToResponse(tasks), nil
}

// Create creates a new task for the user.
func (s *TaskService) Create(ctx context.Context, ownerID int64, req model.CreateTaskRequest) (model.TaskResponse, error) {
	if req.Title == "" {
		return model.TaskResponse{}, ErrTitleRequired
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return model.TaskResponse{}, err
	}

	now := time.Now().UTC()
	task := model.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Deadline:    deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Create(ctx, &task); err != nil {
		return model.TaskResponse{}, err
	}

	return taskToResponse(task), nil
}

// Update applies a partial update to an existing task. Nil request fields
// keep the stored value; an empty deadline string clears the deadline.
func (s *TaskService) Update(ctx context.Context, requesterID int64, taskID string, req model.UpdateTaskRequest) (model.TaskResponse, error) {
	task, err := s.store.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.TaskResponse{}, ErrTaskNotFound
		}
		return model.TaskResponse{}, err
	}

	if task.OwnerID != requesterID {
		return model.TaskResponse{}, ErrNotTaskOwner
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Deadline != nil {
		deadline, err := parseDeadline(*req.Deadline)
		if err != nil {
			return model.TaskResponse{}, err
		}
		task.Deadline = deadline
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, task); err != nil {
		return model.TaskResponse{}, err
	}

	return taskToResponse(*task), nil
}

// Delete removes a task after checking the requester owns it.
func (s *TaskService) Delete(ctx context.Context, requesterID int64, taskID string) error {
	task, err := s.store.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	if task.OwnerID != requesterID {
		return ErrNotTaskOwner
	}

	err = s.store.Delete(ctx, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	return err
}

// parseDeadline converts a deadline string to a timestamp. Empty means unset.
func parseDeadline(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, ErrInvalidDeadline
	}
	return &t, nil
}

// taskToResponse converts a Task to its API representation.
func taskToResponse(t model.Task) model.TaskResponse {
	return model.TaskResponse{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		Deadline:    t.Deadline,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// tasksToResponse converts a slice of Task to a slice of TaskResponse.
func tasksToResponse(tasks []model.Task) []model.TaskResponse {
	result := make([]model.TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = taskToResponse(t)
	}
	return result
}
