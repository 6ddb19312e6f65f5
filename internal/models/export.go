package models

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{"id", "title", "description", "due_date", "status"}

// WriteJSON renders tasks as an indented JSON array.
func WriteJSON(w io.Writer, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return nil
}

// WriteCSV renders tasks with a header row. Due dates are written as calendar days in loc.
func WriteCSV(w io.Writer, tasks []Task, loc *time.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, task := range tasks {
		record := []string{
			strconv.Itoa(task.ID),
			task.Title,
			task.Description,
			task.DayKey(loc),
			string(task.Status),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write task %d: %w", task.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
