package models

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// DueDateLayout is the calendar-day key used for date filtering and input.
const DueDateLayout = "2006-01-02"

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Label is the capitalised form shown to users.
func (s Status) Label() string {
	if s == StatusCompleted {
		return "Completed"
	}
	return "Pending"
}

func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(v)))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown status %q", v)
	}
	return s, nil
}

type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Status      Status    `json:"status"`
}

func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// DayKey truncates the due date to calendar-day granularity as seen from loc.
// A nil loc means time.Local.
func (t Task) DayKey(loc *time.Location) string {
	return DayKey(t.DueDate, loc)
}

func DayKey(d time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return d.In(loc).Format(DueDateLayout)
}

// FormatDueDate renders a date the long way, e.g. "March 1, 2024".
func FormatDueDate(d time.Time) string {
	return d.Format("January 2, 2006")
}

// ParseDueDate accepts either a bare calendar day or an RFC 3339 timestamp.
// Bare days are interpreted in loc.
func ParseDueDate(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if loc == nil {
		loc = time.Local
	}
	if d, err := time.ParseInLocation(DueDateLayout, v, loc); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v)
	}
	return d, nil
}

// CreateTaskRequest is the body accepted by the HTTP API.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// FilterRequest replaces the session filter. A null or empty date clears it.
type FilterRequest struct {
	Status string  `json:"status"`
	Date   *string `json:"date"`
}
