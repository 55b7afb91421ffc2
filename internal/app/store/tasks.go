package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

// TaskStore owns the authoritative in-memory task list. Every committed
// mutation is mirrored whole to durable storage; mirror failures are logged
// and never surfaced to the caller.
type TaskStore struct {
	mu          sync.RWMutex
	tasks       []domain.Task
	searchQuery string
	viewMode    domain.ViewMode

	// weatherGen tracks the latest enrichment request per task id so a stale
	// fetch cannot overwrite a newer one.
	weatherGen map[string]uint64

	kv    ports.KVStore
	now   func() time.Time
	newID func() string
}

var _ ports.TaskStore = (*TaskStore)(nil)

func NewTaskStore(kv ports.KVStore) *TaskStore {
	return &TaskStore{
		viewMode:   domain.ViewModeList,
		weatherGen: map[string]uint64{},
		kv:         kv,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Load restores the task list and view mode from durable storage. A first run
// with no stored tasks is seeded with the demo list.
func (s *TaskStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(ctx, ports.KeyTasks)
	if err != nil {
		return err
	}
	if ok {
		var records []taskRecord
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			return err
		}
		s.tasks = fromTaskRecords(records)
	} else {
		s.tasks = seedTasks(s.now())
		s.mirrorTasksLocked(ctx)
	}

	if mode, ok, err := s.kv.Get(ctx, ports.KeyViewMode); err != nil {
		return err
	} else if ok && domain.ViewMode(mode) == domain.ViewModeCard {
		s.viewMode = domain.ViewModeCard
	}

	return nil
}

func (s *TaskStore) List(opts domain.ListOptions) []domain.Task {
	s.mu.RLock()
	tasks := make([]domain.Task, len(s.tasks))
	for i, task := range s.tasks {
		tasks[i] = cloneTask(task)
	}
	s.mu.RUnlock()

	tasks = domain.FilterTasks(tasks, opts)
	if opts.Sorted {
		tasks = domain.SortForDisplay(tasks)
	}
	return tasks
}

func (s *TaskStore) Stats() domain.TaskStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ComputeStats(s.tasks)
}

func (s *TaskStore) Add(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return domain.Task{}, domain.ErrInvalidPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.Task{
		ID:        s.newID(),
		Title:     title,
		Priority:  priority,
		CreatedAt: s.now(),
		DueDate:   input.DueDate,
		Notes:     input.Notes,
	}
	s.tasks = append(s.tasks, task)
	s.mirrorTasksLocked(ctx)

	return task, nil
}

func (s *TaskStore) Update(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}
	if !input.Priority.Valid() {
		return domain.Task{}, domain.ErrInvalidPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfLocked(input.ID)
	if index < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	stored := s.tasks[index]
	s.tasks[index] = domain.Task{
		ID:        stored.ID,
		Title:     title,
		Completed: input.Completed,
		Priority:  input.Priority,
		CreatedAt: stored.CreatedAt,
		DueDate:   input.DueDate,
		Notes:     input.Notes,
		Steps:     input.Steps,
		Weather:   stored.Weather,
	}
	s.mirrorTasksLocked(ctx)

	return cloneTask(s.tasks[index]), nil
}

func (s *TaskStore) ToggleCompletion(ctx context.Context, id string) (domain.Task, error) {
	return s.mutateTask(ctx, id, func(task *domain.Task) error {
		task.Completed = !task.Completed
		return nil
	})
}

// Delete is idempotent: removing an id that is already gone is a no-op.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfLocked(id)
	if index < 0 {
		return nil
	}

	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	delete(s.weatherGen, id)
	s.mirrorTasksLocked(ctx)

	return nil
}

func (s *TaskStore) SetPriority(ctx context.Context, id string, priority domain.Priority) (domain.Task, error) {
	if !priority.Valid() {
		return domain.Task{}, domain.ErrInvalidPriority
	}
	return s.mutateTask(ctx, id, func(task *domain.Task) error {
		task.Priority = priority
		return nil
	})
}

func (s *TaskStore) SetDueDate(ctx context.Context, id string, due *time.Time) (domain.Task, error) {
	return s.mutateTask(ctx, id, func(task *domain.Task) error {
		task.DueDate = due
		return nil
	})
}

func (s *TaskStore) SetNotes(ctx context.Context, id string, notes string) (domain.Task, error) {
	return s.mutateTask(ctx, id, func(task *domain.Task) error {
		if notes == "" {
			task.Notes = nil
			return nil
		}
		task.Notes = &notes
		return nil
	})
}

func (s *TaskStore) AddStep(ctx context.Context, taskID, title string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}
	return s.mutateTask(ctx, taskID, func(task *domain.Task) error {
		task.Steps = append(task.Steps, domain.Step{
			ID:    s.newID(),
			Title: title,
		})
		return nil
	})
}

func (s *TaskStore) ToggleStep(ctx context.Context, taskID, stepID string) (domain.Task, error) {
	return s.mutateTask(ctx, taskID, func(task *domain.Task) error {
		for i := range task.Steps {
			if task.Steps[i].ID == stepID {
				task.Steps[i].Completed = !task.Steps[i].Completed
				return nil
			}
		}
		return domain.ErrStepNotFound
	})
}

func (s *TaskStore) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// SetSearchQuery stores the query in view state; it never touches task data.
func (s *TaskStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

func (s *TaskStore) ViewMode() domain.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewMode
}

func (s *TaskStore) ToggleViewMode(ctx context.Context) (domain.ViewMode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.viewMode == domain.ViewModeList {
		s.viewMode = domain.ViewModeCard
	} else {
		s.viewMode = domain.ViewModeList
	}

	if err := s.kv.Put(ctx, ports.KeyViewMode, string(s.viewMode)); err != nil {
		zap.L().Warn("failed to mirror view mode", zap.Error(err))
	}

	return s.viewMode, nil
}

// BeginWeatherFetch registers a new enrichment attempt for the task and
// returns its generation. ok is false when the task no longer exists.
func (s *TaskStore) BeginWeatherFetch(id string) (gen uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfLocked(id) < 0 {
		return 0, false
	}
	s.weatherGen[id]++
	return s.weatherGen[id], true
}

// ApplyWeather patches the weather field if the task still exists and gen is
// still the latest fetch for it. Stale or orphaned patches are dropped.
func (s *TaskStore) ApplyWeather(ctx context.Context, id string, gen uint64, weather domain.Weather) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfLocked(id)
	if index < 0 || s.weatherGen[id] != gen {
		return false
	}

	s.tasks[index].Weather = &weather
	s.mirrorTasksLocked(ctx)

	return true
}

func (s *TaskStore) mutateTask(ctx context.Context, id string, apply func(*domain.Task) error) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfLocked(id)
	if index < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	if err := apply(&s.tasks[index]); err != nil {
		return domain.Task{}, err
	}
	s.mirrorTasksLocked(ctx)

	return cloneTask(s.tasks[index]), nil
}

// cloneTask detaches the returned value from the store. Steps get their own
// backing array so an in-place step mutation cannot race a caller still
// reading an earlier snapshot.
func cloneTask(task domain.Task) domain.Task {
	if len(task.Steps) > 0 {
		steps := make([]domain.Step, len(task.Steps))
		copy(steps, task.Steps)
		task.Steps = steps
	}
	return task
}

func (s *TaskStore) indexOfLocked(id string) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) mirrorTasksLocked(ctx context.Context) {
	payload, err := json.Marshal(toTaskRecords(s.tasks))
	if err != nil {
		zap.L().Warn("failed to encode task list for mirror", zap.Error(err))
		return
	}
	if err := s.kv.Put(ctx, ports.KeyTasks, string(payload)); err != nil {
		zap.L().Warn("failed to mirror task list", zap.Error(err))
	}
}
