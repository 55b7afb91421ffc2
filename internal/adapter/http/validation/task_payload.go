package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const dueDateLayout = "2006-01-02"

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.Priority(*req.Priority)
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:    title,
		Priority: priority,
		DueDate:  dueDate,
		Notes:    req.Notes,
	}, nil
}

// BuildUpdateTaskInput validates a wholesale task replacement. The raw field
// map distinguishes an absent due_date from an explicit null: both clear it,
// but a present non-null value must parse.
func BuildUpdateTaskInput(id string, req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	priority := domain.PriorityMedium
	if hasJSONField(raw, "priority") && !isJSONNull(raw["priority"]) {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		priority = domain.Priority(*req.Priority)
	}
	if !priority.Valid() {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var dueDate *time.Time
	if hasJSONField(raw, "due_date") && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := parseDueDate(req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		dueDate = parsed
	}

	steps := make([]domain.Step, 0, len(req.Steps))
	for _, entry := range req.Steps {
		stepTitle := strings.TrimSpace(entry.Title)
		if entry.ID == "" || stepTitle == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		steps = append(steps, domain.Step{
			ID:        entry.ID,
			Title:     stepTitle,
			Completed: entry.Completed,
		})
	}
	if len(steps) == 0 {
		steps = nil
	}

	return domain.UpdateTaskInput{
		ID:        id,
		Title:     title,
		Completed: req.Completed,
		Priority:  priority,
		DueDate:   dueDate,
		Notes:     req.Notes,
		Steps:     steps,
	}, nil
}

func parseDueDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(dueDateLayout, *value)
	if err != nil {
		return nil, ErrInvalidTaskPayload
	}
	return &parsed, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
