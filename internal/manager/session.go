package manager

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tasklist/internal/logger"
	"tasklist/internal/models"
)

const (
	EmptyStoreMessage = "No tasks yet. Add your first task!"
	EmptyViewMessage  = "No tasks match your filters."
)

// Session is what a front end talks to: one task store plus the current filter.
// Calendar days are judged in the session's location.
type Session struct {
	tasks *TaskManager
	loc   *time.Location

	mu     sync.Mutex
	filter FilterOptions
}

func NewSession(tm *TaskManager) *Session {
	return NewSessionInLocation(tm, time.Local)
}

func NewSessionInLocation(tm *TaskManager, loc *time.Location) *Session {
	if tm == nil {
		tm = NewTaskManager()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Session{
		tasks:  tm,
		loc:    loc,
		filter: FilterOptions{Status: FilterAll, Location: loc},
	}
}

func (s *Session) Location() *time.Location {
	return s.loc
}

func (s *Session) Tasks() *TaskManager {
	return s.tasks
}

func (s *Session) AddTask(title, description string, due time.Time) (models.Task, error) {
	task, err := s.tasks.AddTask(title, description, due)
	if err != nil {
		return models.Task{}, err
	}
	logger.Debug(context.Background(), "task added", "id", task.ID, "due", task.DayKey(s.loc))
	return task, nil
}

func (s *Session) ToggleStatus(id int) (models.Task, bool) {
	return s.tasks.ToggleStatus(id)
}

func (s *Session) DeleteTask(id int) bool {
	return s.tasks.DeleteTask(id)
}

// SetStatusFilter rejects anything other than all, pending or completed.
func (s *Session) SetStatusFilter(value string) error {
	f, err := ParseStatusFilter(value)
	if err != nil {
		return fmt.Errorf("set status filter: %w", err)
	}

	s.mu.Lock()
	s.filter.Status = f
	s.mu.Unlock()
	return nil
}

// SetDateFilter restricts the view to one calendar day. nil clears it.
func (s *Session) SetDateFilter(day *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if day == nil {
		s.filter.Date = nil
		return
	}
	d := *day
	s.filter.Date = &d
}

func (s *Session) Filter() FilterOptions {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.filter
	if f.Date != nil {
		d := *f.Date
		f.Date = &d
	}
	return f
}

// GetVisibleTasks recomputes the filtered view from the current store snapshot.
func (s *Session) GetVisibleTasks() []models.Task {
	return ComputeView(s.tasks.GetAllTasks(), s.Filter())
}

// EmptyMessage explains an empty view, or returns "" when there is something to show.
func (s *Session) EmptyMessage() string {
	if s.tasks.Len() == 0 {
		return EmptyStoreMessage
	}
	if len(s.GetVisibleTasks()) == 0 {
		return EmptyViewMessage
	}
	return ""
}

// SeedDemo adds the three starter tasks relative to now.
func (s *Session) SeedDemo(now time.Time) error {
	demo := []struct {
		title, description string
		due                time.Time
		completed          bool
	}{
		{"Complete project proposal", "Finish the draft and send for review", now, false},
		{"Buy groceries", "Milk, eggs, bread, and vegetables", now.AddDate(0, 0, -1), true},
		{"Schedule dentist appointment", "Call Dr. Smith's office", now.AddDate(0, 0, 2), false},
	}

	for _, d := range demo {
		task, err := s.tasks.AddTask(d.title, d.description, d.due)
		if err != nil {
			return err
		}
		if d.completed {
			s.tasks.ToggleStatus(task.ID)
		}
	}
	return nil
}
