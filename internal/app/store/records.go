package store

import (
	"time"

	"taskplanner/internal/core/domain"
)

// Mirror records. Field names match the key-value payload layout: camelCase
// keys, RFC 3339 timestamps, optional fields omitted.

type taskRecord struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Completed bool           `json:"completed"`
	Priority  string         `json:"priority"`
	CreatedAt time.Time      `json:"createdAt"`
	DueDate   *time.Time     `json:"dueDate,omitempty"`
	Notes     *string        `json:"notes,omitempty"`
	Steps     []stepRecord   `json:"steps,omitempty"`
	Weather   *weatherRecord `json:"weather,omitempty"`
}

type stepRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type weatherRecord struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Icon        string `json:"icon"`
}

type userRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

func toTaskRecords(tasks []domain.Task) []taskRecord {
	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, toTaskRecord(task))
	}
	return records
}

func toTaskRecord(task domain.Task) taskRecord {
	record := taskRecord{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		Priority:  string(task.Priority),
		CreatedAt: task.CreatedAt,
		DueDate:   task.DueDate,
		Notes:     task.Notes,
	}

	for _, step := range task.Steps {
		record.Steps = append(record.Steps, stepRecord(step))
	}

	if task.Weather != nil {
		value := weatherRecord(*task.Weather)
		record.Weather = &value
	}

	return record
}

func fromTaskRecords(records []taskRecord) []domain.Task {
	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		tasks = append(tasks, fromTaskRecord(record))
	}
	return tasks
}

func fromTaskRecord(record taskRecord) domain.Task {
	task := domain.Task{
		ID:        record.ID,
		Title:     record.Title,
		Completed: record.Completed,
		Priority:  domain.Priority(record.Priority),
		CreatedAt: record.CreatedAt,
		DueDate:   record.DueDate,
		Notes:     record.Notes,
	}

	for _, step := range record.Steps {
		task.Steps = append(task.Steps, domain.Step(step))
	}

	if record.Weather != nil {
		value := domain.Weather(*record.Weather)
		task.Weather = &value
	}

	return task
}

func toUserRecord(user domain.User) userRecord {
	return userRecord(user)
}

func fromUserRecord(record userRecord) domain.User {
	return domain.User(record)
}
