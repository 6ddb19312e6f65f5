package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"tasklist/internal/manager"
	"tasklist/internal/models"
)

const helpText = `Commands:
  add TITLE [| DESCRIPTION [| YYYY-MM-DD]]  Add new task (due today by default)
  list                                      Show tasks matching the filters
  toggle ID                                 Switch a task between pending and completed
  delete ID                                 Delete task
  status all|pending|completed              Filter by status
  date YYYY-MM-DD|none                      Filter by due date
  export json|csv                           Print the visible tasks
  help                                      Show this help
  quit                                      Exit

Tasks live only as long as this session.`

type cli struct {
	session *manager.Session
	out     io.Writer
	now     func() time.Time
}

var errQuit = errors.New("quit")

// run reads commands line by line until EOF or quit.
func (c *cli) run(in io.Reader) error {
	fmt.Fprintln(c.out, "Type help for the list of commands.")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := c.exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (c *cli) exec(line string) error {
	command, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch strings.ToLower(command) {
	case "add":
		return c.handleAdd(args)
	case "list", "ls":
		c.handleList()
	case "toggle", "done":
		return c.handleToggle(args)
	case "delete", "rm":
		return c.handleDelete(args)
	case "status":
		return c.handleStatus(args)
	case "date":
		return c.handleDate(args)
	case "export":
		return c.handleExport(args)
	case "help":
		fmt.Fprintln(c.out, helpText)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, type help", command)
	}
	return nil
}

func (c *cli) today() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

func (c *cli) handleAdd(args string) error {
	parts := strings.SplitN(args, "|", 3)
	title := strings.TrimSpace(parts[0])

	var description string
	if len(parts) > 1 {
		description = strings.TrimSpace(parts[1])
	}

	due := c.today()
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		d, err := models.ParseDueDate(parts[2], c.session.Location())
		if err != nil {
			return err
		}
		due = d
	}

	task, err := c.session.AddTask(title, description, due)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Added task with ID %d\n", task.ID)
	return nil
}

func (c *cli) handleList() {
	tasks := c.session.GetVisibleTasks()
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, c.session.EmptyMessage())
		return
	}

	loc := c.session.Location()
	for _, task := range tasks {
		due := models.FormatDueDate(task.DueDate.In(loc))
		fmt.Fprintf(c.out, "%d: %s [%s] due %s\n", task.ID, task.Title, task.Status.Label(), due)
		if task.Description != "" {
			fmt.Fprintf(c.out, "   %s\n", task.Description)
		}
	}
}

func (c *cli) handleToggle(args string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	task, ok := c.session.ToggleStatus(id)
	if !ok {
		fmt.Fprintf(c.out, "No task with ID %d\n", id)
		return nil
	}
	fmt.Fprintf(c.out, "Task %d is now %s\n", id, task.Status)
	return nil
}

func (c *cli) handleDelete(args string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	if c.session.DeleteTask(id) {
		fmt.Fprintf(c.out, "Task %d deleted\n", id)
	} else {
		fmt.Fprintf(c.out, "No task with ID %d\n", id)
	}
	return nil
}

func (c *cli) handleStatus(args string) error {
	if err := c.session.SetStatusFilter(args); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Status filter: %s\n", c.session.Filter().Status)
	return nil
}

func (c *cli) handleDate(args string) error {
	if args == "" || strings.EqualFold(args, "none") {
		c.session.SetDateFilter(nil)
		fmt.Fprintln(c.out, "Date filter cleared")
		return nil
	}

	d, err := models.ParseDueDate(args, c.session.Location())
	if err != nil {
		return err
	}
	c.session.SetDateFilter(&d)
	fmt.Fprintf(c.out, "Date filter: %s\n", models.FormatDueDate(d.In(c.session.Location())))
	return nil
}

func (c *cli) handleExport(args string) error {
	tasks := c.session.GetVisibleTasks()
	switch strings.ToLower(args) {
	case "", "json":
		return models.WriteJSON(c.out, tasks)
	case "csv":
		return models.WriteCSV(c.out, tasks, c.session.Location())
	default:
		return fmt.Errorf("unsupported format %s", args)
	}
}

func parseID(args string) (int, error) {
	if args == "" {
		return 0, errors.New("task ID is required")
	}
	id, err := strconv.Atoi(args)
	if err != nil {
		return 0, fmt.Errorf("task ID must be a number: %q", args)
	}
	return id, nil
}
