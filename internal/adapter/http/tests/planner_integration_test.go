//go:build integration
// +build integration

package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"taskplanner/internal/adapter/http/dto"
	"taskplanner/internal/app/store"
	"taskplanner/internal/core/domain"
	"taskplanner/pkg/translator"
)

type PlannerIntegrationSuite struct {
	IntegrationSuiteBase
}

func (s *PlannerIntegrationSuite) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func (s *PlannerIntegrationSuite) createTask(body string) dto.TaskItem {
	rec := s.request(http.MethodPost, "/api/tasks", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var item dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &item))
	return item
}

func (s *PlannerIntegrationSuite) listTasks(path string) []dto.TaskItem {
	rec := s.request(http.MethodGet, path, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var items []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &items))
	return items
}

func (s *PlannerIntegrationSuite) TestTaskLifecycle() {
	created := s.createTask(`{"title":"Finish project report","priority":"high","due_date":"2026-09-01"}`)
	s.NotEmpty(created.ID)
	s.Equal("high", created.Priority)

	second := s.createTask(`{"title":"Call the bank"}`)
	s.NotEqual(created.ID, second.ID)

	items := s.listTasks("/api/tasks")
	s.Require().Len(items, 2)
	s.Equal(created.ID, items[0].ID, "list keeps insertion order")

	rec := s.request(http.MethodPost, "/api/tasks/"+created.ID+"/toggle", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var toggled dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &toggled))
	s.True(toggled.Completed)

	rec = s.request(http.MethodDelete, "/api/tasks/"+second.ID, "")
	s.Require().Equal(http.StatusNoContent, rec.Code)

	// Deleting again stays a no-op.
	rec = s.request(http.MethodDelete, "/api/tasks/"+second.ID, "")
	s.Require().Equal(http.StatusNoContent, rec.Code)
	s.Require().Len(s.listTasks("/api/tasks"), 1)
}

func (s *PlannerIntegrationSuite) TestSortedListing() {
	s.createTask(`{"title":"done high","priority":"high"}`)
	doneHigh := s.listTasks("/api/tasks")[0]
	s.request(http.MethodPost, "/api/tasks/"+doneHigh.ID+"/toggle", "")

	s.createTask(`{"title":"open low","priority":"low"}`)
	s.createTask(`{"title":"open high","priority":"high"}`)

	items := s.listTasks("/api/tasks?sorted=true")
	s.Require().Len(items, 3)
	s.Equal("open high", items[0].Title)
	s.Equal("open low", items[1].Title)
	s.Equal("done high", items[2].Title)
}

func (s *PlannerIntegrationSuite) TestMutationTargetsMissingTask() {
	rec := s.request(http.MethodPatch, "/api/tasks/nope/priority", `{"priority":"high"}`)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.request(http.MethodPost, "/api/tasks/nope/toggle", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *PlannerIntegrationSuite) TestStateSurvivesReload() {
	created := s.createTask(`{"title":"Buy groceries","notes":"eggs, milk"}`)
	s.request(http.MethodPost, "/api/tasks/"+created.ID+"/steps", `{"title":"make a list"}`)

	// A fresh store over the same sqlite file sees the identical list.
	reloaded := store.NewTaskStore(s.KV)
	s.Require().NoError(reloaded.Load(context.Background()))

	tasks := reloaded.List(domain.ListOptions{})
	s.Require().Len(tasks, 1)
	s.Equal(created.ID, tasks[0].ID)
	s.Require().NotNil(tasks[0].Notes)
	s.Equal("eggs, milk", *tasks[0].Notes)
	s.Require().Len(tasks[0].Steps, 1)
	s.Equal("make a list", tasks[0].Steps[0].Title)
}

func (s *PlannerIntegrationSuite) TestAuthFlow() {
	rec := s.request(http.MethodPost, "/api/auth/login", `{"email":"john@example.com","password":"wrong"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.request(http.MethodPost, "/api/auth/login", `{"email":"john@example.com","password":"password123"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var user dto.UserItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &user))
	s.Equal("John Doe", user.Name)

	rec = s.request(http.MethodGet, "/api/auth/session", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var session dto.SessionItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &session))
	s.True(session.Authenticated)

	rec = s.request(http.MethodPost, "/api/auth/logout", "")
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.request(http.MethodGet, "/api/auth/session", "")
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &session))
	s.False(session.Authenticated)
}

func (s *PlannerIntegrationSuite) TestWeatherEndpoint() {
	rec := s.request(http.MethodGet, "/api/weather", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var weather dto.WeatherItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &weather))
	s.GreaterOrEqual(weather.Temperature, 10)
	s.NotEmpty(weather.Condition)
}

func (s *PlannerIntegrationSuite) TestHealthReport() {
	rec := s.request(http.MethodGet, "/api/health/report", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"sqlite":"ok"`)
}
