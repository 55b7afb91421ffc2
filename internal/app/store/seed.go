package store

import (
	"strconv"
	"time"

	"taskplanner/internal/core/domain"
)

// seedTasks is the demo list installed on a first run with empty storage.
func seedTasks(now time.Time) []domain.Task {
	seeds := []struct {
		title     string
		priority  domain.Priority
		completed bool
	}{
		{"Buy groceries", domain.PriorityMedium, false},
		{"Finish project report", domain.PriorityHigh, false},
		{"Call the bank", domain.PriorityLow, false},
		{"Schedule dentist appointment", domain.PriorityMedium, false},
		{"Plan weekend trip", domain.PriorityLow, false},
		{"Read a book", domain.PriorityLow, true},
		{"Clean the house", domain.PriorityMedium, true},
		{"Prepare presentation", domain.PriorityHigh, true},
		{"Update blog", domain.PriorityLow, true},
	}

	tasks := make([]domain.Task, 0, len(seeds))
	for i, seed := range seeds {
		tasks = append(tasks, domain.Task{
			ID:        strconv.Itoa(i + 1),
			Title:     seed.title,
			Completed: seed.completed,
			Priority:  seed.priority,
			CreatedAt: now,
		})
	}
	return tasks
}
