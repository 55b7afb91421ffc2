package ports

import (
	"context"
	"time"

	"taskplanner/internal/core/domain"
)

type TaskStore interface {
	List(opts domain.ListOptions) []domain.Task
	Stats() domain.TaskStats

	Add(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleCompletion(ctx context.Context, id string) (domain.Task, error)
	Delete(ctx context.Context, id string) error
	SetPriority(ctx context.Context, id string, priority domain.Priority) (domain.Task, error)
	SetDueDate(ctx context.Context, id string, due *time.Time) (domain.Task, error)
	SetNotes(ctx context.Context, id string, notes string) (domain.Task, error)
	AddStep(ctx context.Context, taskID, title string) (domain.Task, error)
	ToggleStep(ctx context.Context, taskID, stepID string) (domain.Task, error)

	SearchQuery() string
	SetSearchQuery(query string)
	ViewMode() domain.ViewMode
	ToggleViewMode(ctx context.Context) (domain.ViewMode, error)
}

// TaskEnricher attaches best-effort supplementary data to a task without
// blocking the caller.
type TaskEnricher interface {
	EnrichTask(task domain.Task)
}
