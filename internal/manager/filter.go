package manager

import (
	"fmt"
	"strings"
	"time"

	"tasklist/internal/models"
)

type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterPending   StatusFilter = "pending"
	FilterCompleted StatusFilter = "completed"
)

func (f StatusFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterPending, FilterCompleted:
		return true
	}
	return false
}

// ParseStatusFilter accepts any casing; an empty value means all.
func ParseStatusFilter(v string) (StatusFilter, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" || StatusFilter(v) == FilterAll {
		return FilterAll, nil
	}
	status, err := models.ParseStatus(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatusFilter, v)
	}
	return StatusFilter(status), nil
}

// FilterOptions is the view configuration. A nil Date means no date filter.
// Calendar days of both the filter and the due dates are taken in Location,
// time.Local when nil.
type FilterOptions struct {
	Status   StatusFilter   `json:"status"`
	Date     *time.Time     `json:"date,omitempty"`
	Location *time.Location `json:"-"`
}

// ComputeView returns the tasks matching opts in their original relative order.
// The result never shares memory with tasks. An unknown status filter behaves as all.
func ComputeView(tasks []models.Task, opts FilterOptions) []models.Task {
	var dayKey string
	if opts.Date != nil {
		dayKey = models.DayKey(*opts.Date, opts.Location)
	}

	view := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if !matchesStatus(task, opts.Status) {
			continue
		}
		if opts.Date != nil && task.DayKey(opts.Location) != dayKey {
			continue
		}
		view = append(view, task)
	}
	return view
}

func matchesStatus(task models.Task, f StatusFilter) bool {
	if f == FilterPending || f == FilterCompleted {
		return task.Status == models.Status(f)
	}
	return true
}
