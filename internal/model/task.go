package model

import "time"

// Task represents a task record in the database.
type Task struct {
	ID          string
	OwnerID     int64
	Title       string
	Description string
	Status      string
	Priority    string
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateTaskRequest represents a task creation request. Deadline, when
// present, is an RFC 3339 timestamp string.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline"`
}

// UpdateTaskRequest represents a partial task update.
// Pointer fields allow distinguishing between missing (nil -> keep stored
// value) and provided. An empty deadline string clears the deadline.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Deadline    *string `json:"deadline"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          string     `json:"id"`
	OwnerID     int64      `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DeleteTaskResponse confirms a successful deletion.
type DeleteTaskResponse struct {
	Message string `json:"message"`
}
