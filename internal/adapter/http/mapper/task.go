package mapper

import (
	"time"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		Priority:  string(task.Priority),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	if task.Notes != nil {
		value := *task.Notes
		item.Notes = &value
	}

	for _, step := range task.Steps {
		item.Steps = append(item.Steps, dto.StepItem(step))
	}

	if task.Weather != nil {
		item.Weather = ToWeatherItem(*task.Weather)
	}

	return item
}

func ToWeatherItem(weather domain.Weather) *dto.WeatherItem {
	value := dto.WeatherItem(weather)
	return &value
}

func ToTaskStatsItem(stats domain.TaskStats) dto.TaskStatsItem {
	item := dto.TaskStatsItem{
		Total:      stats.Total,
		Completed:  stats.Completed,
		Remaining:  stats.Remaining,
		Percentage: stats.Percentage,
		ByPriority: make(map[string]int, len(stats.ByPriority)),
	}
	for priority, count := range stats.ByPriority {
		item.ByPriority[string(priority)] = count
	}
	return item
}
