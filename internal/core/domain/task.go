package domain

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities for display sorting: high before medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

type ViewMode string

const (
	ViewModeList ViewMode = "list"
	ViewModeCard ViewMode = "card"
)

type Step struct {
	ID        string
	Title     string
	Completed bool
}

// Weather is non-authoritative enrichment attached to a task after the fact.
type Weather struct {
	Temperature int
	Condition   string
	Icon        string
}

type Task struct {
	ID        string
	Title     string
	Completed bool
	Priority  Priority
	CreatedAt time.Time
	DueDate   *time.Time
	Notes     *string
	Steps     []Step
	Weather   *Weather
}

type CreateTaskInput struct {
	Title    string
	Priority Priority
	DueDate  *time.Time
	Notes    *string
}

// UpdateTaskInput replaces a stored task wholesale. ID selects the target;
// CreatedAt and Weather are preserved from the stored record.
type UpdateTaskInput struct {
	ID        string
	Title     string
	Completed bool
	Priority  Priority
	DueDate   *time.Time
	Notes     *string
	Steps     []Step
}

type TaskStats struct {
	Total      int
	Completed  int
	Remaining  int
	Percentage int
	ByPriority map[Priority]int
}
