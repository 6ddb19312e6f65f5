package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"tasklist/internal/manager"
	"tasklist/internal/models"
)

const welcomeText = `Welcome to the task list bot!

/add title | description | YYYY-MM-DD - add a task
/list - show tasks matching your filters
/done ID - switch a task between pending and completed
/delete ID - delete a task
/status all|pending|completed - filter by status
/date YYYY-MM-DD|none - filter by due date
/help - this message

Any other text is added as a task due today.
Tasks are kept only while the bot is running.`

// sessions keeps one task list per chat.
type sessions struct {
	mu     sync.Mutex
	byChat map[int64]*manager.Session
	loc    *time.Location
	now    func() time.Time
}

func newSessions(loc *time.Location, now func() time.Time) *sessions {
	return &sessions{
		byChat: make(map[int64]*manager.Session),
		loc:    loc,
		now:    now,
	}
}

func (s *sessions) get(chatID int64) *manager.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byChat[chatID]
	if !ok {
		sess = manager.NewSessionInLocation(nil, s.loc)
		s.byChat[chatID] = sess
	}
	return sess
}

func (s *sessions) handleCommand(chatID int64, command, args string) string {
	sess := s.get(chatID)
	args = strings.TrimSpace(args)

	switch command {
	case "start", "help":
		return welcomeText
	case "add":
		if args == "" {
			return "Give the task after the command: /add Buy milk"
		}
		return s.add(sess, args)
	case "list":
		return renderList(sess, s.loc)
	case "done", "toggle":
		id, err := strconv.Atoi(args)
		if err != nil {
			return "Task ID must be a number: /done 1"
		}
		task, ok := sess.ToggleStatus(id)
		if !ok {
			return fmt.Sprintf("Task #%d not found", id)
		}
		return fmt.Sprintf("Task #%d is now %s", id, task.Status)
	case "delete":
		id, err := strconv.Atoi(args)
		if err != nil {
			return "Task ID must be a number: /delete 1"
		}
		if !sess.DeleteTask(id) {
			return fmt.Sprintf("Task #%d not found", id)
		}
		return fmt.Sprintf("Task #%d deleted", id)
	case "status":
		if err := sess.SetStatusFilter(args); err != nil {
			return "Use /status all, /status pending or /status completed"
		}
		return fmt.Sprintf("Status filter: %s", sess.Filter().Status)
	case "date":
		if args == "" || strings.EqualFold(args, "none") {
			sess.SetDateFilter(nil)
			return "Date filter cleared"
		}
		d, err := models.ParseDueDate(args, s.loc)
		if err != nil {
			return "Use /date YYYY-MM-DD or /date none"
		}
		sess.SetDateFilter(&d)
		return fmt.Sprintf("Showing tasks due %s", models.FormatDueDate(d.In(s.loc)))
	default:
		return "Unknown command. Use /help for the list of commands."
	}
}

func (s *sessions) handleText(chatID int64, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return s.add(s.get(chatID), text)
}

func (s *sessions) add(sess *manager.Session, args string) string {
	parts := strings.SplitN(args, "|", 3)

	var description string
	if len(parts) > 1 {
		description = strings.TrimSpace(parts[1])
	}

	due := s.now()
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		d, err := models.ParseDueDate(parts[2], s.loc)
		if err != nil {
			return "Due date must look like 2024-03-01"
		}
		due = d
	}

	task, err := sess.AddTask(parts[0], description, due)
	if err != nil {
		return "Error: " + err.Error()
	}
	return fmt.Sprintf("Task added!\n\nID: #%d\nTask: %s\nDue: %s", task.ID, task.Title, models.FormatDueDate(task.DueDate.In(s.loc)))
}

func renderList(sess *manager.Session, loc *time.Location) string {
	tasks := sess.GetVisibleTasks()
	if len(tasks) == 0 {
		return sess.EmptyMessage()
	}

	var b strings.Builder
	b.WriteString("Your tasks:\n\n")
	for _, task := range tasks {
		mark := "[ ]"
		if task.Completed() {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s #%d: %s (%s)\n", mark, task.ID, task.Title, models.FormatDueDate(task.DueDate.In(loc)))
		if task.Description != "" {
			fmt.Fprintf(&b, "    %s\n", task.Description)
		}
	}
	return b.String()
}
