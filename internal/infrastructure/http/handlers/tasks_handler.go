package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/task"
	"github.com/Maksim-Borisov7/TaskApp/internal/domain"
	domerrors "github.com/Maksim-Borisov7/TaskApp/internal/domain/errors"
	"github.com/Maksim-Borisov7/TaskApp/internal/infrastructure/http/middleware"
)

// TasksHandler handles /tasks/*. Requires the auth resolver middleware.
type TasksHandler struct {
	list     *task.List
	create   *task.Create
	toggle   *task.Toggle
	delete   *task.Delete
	validate *validator.Validate
	log      zerolog.Logger
}

func NewTasksHandler(list *task.List, create *task.Create, toggle *task.Toggle, del *task.Delete, log zerolog.Logger) *TasksHandler {
	return &TasksHandler{
		list:     list,
		create:   create,
		toggle:   toggle,
		delete:   del,
		validate: validator.New(),
		log:      log,
	}
}

type taskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
		CreatedAt:   t.CreatedAt,
	}
}

func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusForbidden, ErrCodeForbidden, domerrors.ErrInsufficientPrivilege.Error())
		return
	}
	tasks, err := h.list.Execute(r.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list tasks failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusForbidden, ErrCodeForbidden, domerrors.ErrInsufficientPrivilege.Error())
		return
	}
	var body struct {
		Title       string `json:"title" validate:"required,min=1,max=255"`
		Description string `json:"description" validate:"max=1024"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	created, err := h.create.Execute(r.Context(), user.ID, task.CreateInput{
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("create task failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(created))
}

func (h *TasksHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusForbidden, ErrCodeForbidden, domerrors.ErrInsufficientPrivilege.Error())
		return
	}
	taskID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid task id")
		return
	}
	result, err := h.toggle.Execute(r.Context(), user.ID, taskID)
	if err != nil {
		if errors.Is(err, domerrors.ErrTaskNotFound) {
			writeErr(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("toggle task failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":   result.TaskID,
		"done": result.Done,
	})
}

func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusForbidden, ErrCodeForbidden, domerrors.ErrInsufficientPrivilege.Error())
		return
	}
	taskID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid task id")
		return
	}
	if err := h.delete.Execute(r.Context(), user.ID, taskID); err != nil {
		if errors.Is(err, domerrors.ErrTaskNotFound) {
			writeErr(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("delete task failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
