package dto

type StepItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type WeatherItem struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Icon        string `json:"icon"`
}

type TaskItem struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Completed bool         `json:"completed"`
	Priority  string       `json:"priority"`
	CreatedAt string       `json:"created_at"`
	DueDate   *string      `json:"due_date,omitempty"`
	Notes     *string      `json:"notes,omitempty"`
	Steps     []StepItem   `json:"steps,omitempty"`
	Weather   *WeatherItem `json:"weather,omitempty"`
}

type CreateTaskRequest struct {
	Title    string  `json:"title" binding:"required,max=255"`
	Priority *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	DueDate  *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Notes    *string `json:"notes" binding:"omitempty,max=65535"`
}

type UpdateTaskRequest struct {
	Title     string            `json:"title"`
	Completed bool              `json:"completed"`
	Priority  *string           `json:"priority"`
	DueDate   *string           `json:"due_date"`
	Notes     *string           `json:"notes"`
	Steps     []UpdateStepEntry `json:"steps"`
}

type UpdateStepEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type SetPriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=high medium low"`
}

type SetDueDateRequest struct {
	DueDate *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type SetNotesRequest struct {
	Notes string `json:"notes" binding:"max=65535"`
}

type AddStepRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

type ViewModeItem struct {
	ViewMode string `json:"view_mode"`
}

type DarkModeItem struct {
	DarkMode bool `json:"dark_mode"`
}

type TaskStatsItem struct {
	Total      int            `json:"total"`
	Completed  int            `json:"completed"`
	Remaining  int            `json:"remaining"`
	Percentage int            `json:"percentage"`
	ByPriority map[string]int `json:"by_priority"`
}
