package manager

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tasklist/internal/models"
)

var (
	addTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasklist_tasks_added_total",
			Help: "Total number of AddTask operations",
		},
		[]string{"status"},
	)

	toggleTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasklist_tasks_toggled_total",
			Help: "Total number of ToggleStatus operations",
		},
		[]string{"result"},
	)

	deleteTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasklist_tasks_deleted_total",
			Help: "Total number of DeleteTask operations",
		},
		[]string{"result"},
	)

	taskTitleLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tasklist_task_title_length_bytes",
			Help:    "Length distribution of task titles",
			Buckets: []float64{10, 25, 50, 100, 250},
		},
	)

	addTaskDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tasklist_add_task_duration_seconds",
			Help:    "Duration of AddTask operation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// TaskManager owns the ordered task sequence and is the only place tasks change.
// Ids come from a counter that never goes backwards, so a deleted id is never handed out again.
type TaskManager struct {
	tasks  []models.Task
	lastID int
	mu     sync.Mutex
}

func NewTaskManager() *TaskManager {
	return &TaskManager{}
}

// AddTask appends a pending task. A title that is blank after trimming is rejected
// with a *ValidationError and the store is left unchanged.
func (tm *TaskManager) AddTask(title, description string, due time.Time) (models.Task, error) {
	startTime := time.Now()
	defer func() {
		addTaskDuration.Observe(time.Since(startTime).Seconds())
	}()

	title = strings.TrimSpace(title)
	if title == "" {
		addTaskCount.WithLabelValues("error").Inc()
		return models.Task{}, &ValidationError{Field: "title", Err: ErrEmptyTitle}
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.lastID++
	task := models.Task{
		ID:          tm.lastID,
		Title:       title,
		Description: description,
		DueDate:     due,
		Status:      models.StatusPending,
	}
	tm.tasks = append(tm.tasks, task)

	addTaskCount.WithLabelValues("success").Inc()
	taskTitleLength.Observe(float64(len(title)))

	return task, nil
}

// ToggleStatus flips the status of the task with id. Unknown ids are a silent no-op.
func (tm *TaskManager) ToggleStatus(id int) (models.Task, bool) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	i := tm.indexOf(id)
	if i < 0 {
		toggleTaskCount.WithLabelValues("not_found").Inc()
		return models.Task{}, false
	}

	tm.tasks[i].Status = tm.tasks[i].Status.Toggle()
	toggleTaskCount.WithLabelValues("success").Inc()
	return tm.tasks[i], true
}

// DeleteTask removes the task with id if present and reports whether it did.
func (tm *TaskManager) DeleteTask(id int) bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	i := tm.indexOf(id)
	if i < 0 {
		deleteTaskCount.WithLabelValues("not_found").Inc()
		return false
	}

	tm.tasks = append(tm.tasks[:i], tm.tasks[i+1:]...)
	deleteTaskCount.WithLabelValues("success").Inc()
	return true
}

func (tm *TaskManager) GetTask(id int) (models.Task, bool) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	i := tm.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return tm.tasks[i], true
}

// GetAllTasks returns a copy of the sequence in insertion order.
func (tm *TaskManager) GetAllTasks() []models.Task {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tasks := make([]models.Task, len(tm.tasks))
	copy(tasks, tm.tasks)
	return tasks
}

func (tm *TaskManager) Len() int {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return len(tm.tasks)
}

// indexOf must be called with mu held.
func (tm *TaskManager) indexOf(id int) int {
	for i := range tm.tasks {
		if tm.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
