package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"taskplanner/internal/core/domain"
)

type taskStoreMock struct {
	mock.Mock
}

func (m *taskStoreMock) List(opts domain.ListOptions) []domain.Task {
	args := m.Called(opts)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks
}

func (m *taskStoreMock) Stats() domain.TaskStats {
	args := m.Called()
	return args.Get(0).(domain.TaskStats)
}

func (m *taskStoreMock) Add(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) Update(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) ToggleCompletion(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskStoreMock) SetPriority(ctx context.Context, id string, priority domain.Priority) (domain.Task, error) {
	args := m.Called(ctx, id, priority)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) SetDueDate(ctx context.Context, id string, due *time.Time) (domain.Task, error) {
	args := m.Called(ctx, id, due)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) SetNotes(ctx context.Context, id string, notes string) (domain.Task, error) {
	args := m.Called(ctx, id, notes)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) AddStep(ctx context.Context, taskID, title string) (domain.Task, error) {
	args := m.Called(ctx, taskID, title)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) ToggleStep(ctx context.Context, taskID, stepID string) (domain.Task, error) {
	args := m.Called(ctx, taskID, stepID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) SearchQuery() string {
	args := m.Called()
	return args.String(0)
}

func (m *taskStoreMock) SetSearchQuery(query string) {
	m.Called(query)
}

func (m *taskStoreMock) ViewMode() domain.ViewMode {
	args := m.Called()
	return args.Get(0).(domain.ViewMode)
}

func (m *taskStoreMock) ToggleViewMode(ctx context.Context) (domain.ViewMode, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ViewMode), args.Error(1)
}

type taskEnricherMock struct {
	mock.Mock
}

func (m *taskEnricherMock) EnrichTask(task domain.Task) {
	m.Called(task)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *authServiceMock) Session() (domain.User, bool) {
	args := m.Called()
	return args.Get(0).(domain.User), args.Bool(1)
}

type weatherServiceMock struct {
	mock.Mock
}

func (m *weatherServiceMock) Current(ctx context.Context) (domain.Weather, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Weather), args.Error(1)
}

type kvStoreMock struct {
	mock.Mock
}

func (m *kvStoreMock) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *kvStoreMock) Put(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *kvStoreMock) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
