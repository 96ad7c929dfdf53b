package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workflo/workflo-go/internal/middleware"
	"github.com/workflo/workflo-go/internal/model"
	"github.com/workflo/workflo-go/internal/service"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// HandleListTasks handles GET /api/tasks requests.
func (h *TaskHandler) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	tasks, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("Something went wrong"))
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// HandleCreateTask handles POST /api/tasks requests.
func (h *TaskHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrInvalidDeadline):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("Something went wrong"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdateTask handles PUT /api/tasks/{task_id} requests.
func (h *TaskHandler) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	taskID := chi.URLParam(r, "task_id")
	if taskID == "" || len(taskID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid task id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Update(r.Context(), userID, taskID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDeadline):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrTaskNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("Task not found"))
		case errors.Is(err, service.ErrNotTaskOwner):
			writeJSON(w, http.StatusForbidden, errorResponse("Not authorized"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("Something went wrong"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeleteTask handles DELETE /api/tasks/{task_id} requests.
func (h *TaskHandler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	taskID := chi.URLParam(r, "task_id")
	if taskID == "" || len(taskID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid task id"))
		return
	}

	err := h.service.Delete(r.Context(), userID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("Task not found"))
		case errors.Is(err, service.ErrNotTaskOwner):
			writeJSON(w, http.StatusForbidden, errorResponse("Not authorized"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("Something went wrong"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.DeleteTaskResponse{Message: "Task deleted successfully"})
}
