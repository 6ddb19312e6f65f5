package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tasklist/internal/logger"
	"tasklist/internal/manager"
	"tasklist/internal/models"
)

type viewResponse struct {
	Tasks        []models.Task         `json:"tasks"`
	Filter       manager.FilterOptions `json:"filter"`
	EmptyMessage string                `json:"empty_message,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewRouter(s *manager.Session) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", listTasksHandler(s))
		r.Post("/", addTaskHandler(s))
		r.Post("/{id}/toggle", toggleTaskHandler(s))
		r.Delete("/{id}", deleteTaskHandler(s))
	})
	r.Put("/filter", setFilterHandler(s))

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func addTaskHandler(s *manager.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req models.CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		due := time.Now()
		if strings.TrimSpace(req.DueDate) != "" {
			d, err := models.ParseDueDate(req.DueDate, s.Location())
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			due = d
		}

		task, err := s.AddTask(req.Title, req.Description, due)
		if err != nil {
			var verr *manager.ValidationError
			if errors.As(err, &verr) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Error(r.Context(), err, "add task failed")
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		logger.Info(r.Context(), "task created", "id", task.ID, "request_id", middleware.GetReqID(r.Context()))
		writeJSON(w, http.StatusCreated, task)
	}
}

// listTasksHandler renders the session view. status and date query parameters
// narrow this one response without touching the session filter.
func listTasksHandler(s *manager.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := s.Filter()

		q := r.URL.Query()
		if q.Has("status") {
			f, err := manager.ParseStatusFilter(q.Get("status"))
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			opts.Status = f
		}
		if q.Has("date") {
			d, err := parseOptionalDate(q.Get("date"), s.Location())
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			opts.Date = d
		}

		tasks := manager.ComputeView(s.Tasks().GetAllTasks(), opts)
		resp := viewResponse{Tasks: tasks, Filter: opts}
		if len(tasks) == 0 {
			resp.EmptyMessage = manager.EmptyViewMessage
			if s.Tasks().Len() == 0 {
				resp.EmptyMessage = manager.EmptyStoreMessage
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func toggleTaskHandler(s *manager.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskID(w, r)
		if !ok {
			return
		}

		task, found := s.ToggleStatus(id)
		if !found {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		writeJSON(w, http.StatusOK, task)
	}
}

// deleteTaskHandler answers 204 whether or not the task existed.
func deleteTaskHandler(s *manager.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskID(w, r)
		if !ok {
			return
		}

		if s.DeleteTask(id) {
			logger.Info(r.Context(), "task deleted", "id", id)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func setFilterHandler(s *manager.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req models.FilterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		var day *time.Time
		if req.Date != nil {
			d, err := parseOptionalDate(*req.Date, s.Location())
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			day = d
		}

		if err := s.SetStatusFilter(req.Status); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.SetDateFilter(day)

		writeJSON(w, http.StatusOK, s.Filter())
	}
}

func parseOptionalDate(v string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	d, err := models.ParseDueDate(v, loc)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func taskID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "task id must be a number")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(context.Background(), err, "encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
