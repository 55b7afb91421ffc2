package domain

import (
	"sort"
	"strings"
	"time"
)

// TaskView selects one of the derived task list filters. Views are computed on
// read; the stored list keeps insertion order.
type TaskView string

const (
	ViewAll       TaskView = "all"
	ViewToday     TaskView = "today"
	ViewImportant TaskView = "important"
	ViewPlanned   TaskView = "planned"
)

func (v TaskView) Valid() bool {
	switch v {
	case ViewAll, ViewToday, ViewImportant, ViewPlanned:
		return true
	}
	return false
}

type ListOptions struct {
	View   TaskView
	Query  string
	Sorted bool
	Now    time.Time
}

// FilterTasks applies the view filter and search query without mutating the
// input slice.
func FilterTasks(tasks []Task, opts ListOptions) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchesView(t, opts) {
			continue
		}
		if !MatchesQuery(t, opts.Query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesView(t Task, opts ListOptions) bool {
	switch opts.View {
	case ViewToday:
		return t.DueDate != nil && sameCalendarDay(*t.DueDate, opts.Now)
	case ViewImportant:
		return t.Priority == PriorityHigh
	case ViewPlanned:
		return t.DueDate != nil
	}
	return true
}

// MatchesQuery reports whether the task matches a case-insensitive substring
// search over title and notes. An empty query matches everything.
func MatchesQuery(t Task, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}
	if t.Notes != nil && strings.Contains(strings.ToLower(*t.Notes), query) {
		return true
	}
	return false
}

// SortForDisplay orders incomplete tasks before completed ones, then by
// priority rank. The sort is stable, so ties keep insertion order.
func SortForDisplay(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

func ComputeStats(tasks []Task) TaskStats {
	stats := TaskStats{
		Total:      len(tasks),
		ByPriority: map[Priority]int{},
	}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
		stats.ByPriority[t.Priority]++
	}
	stats.Remaining = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.Percentage = stats.Completed * 100 / stats.Total
	}
	return stats
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
