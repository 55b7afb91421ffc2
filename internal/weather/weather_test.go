package weather

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskplanner/internal/core/domain"
)

func TestIsOutdoorTask(t *testing.T) {
	outdoor := []string{
		"Walk the dog",
		"Plan weekend TRIP",
		"morning jog",
		"fix the garden fence",
	}
	for _, title := range outdoor {
		assert.True(t, IsOutdoorTask(title), title)
	}

	indoor := []string{"File taxes", "Call the bank", ""}
	for _, title := range indoor {
		assert.False(t, IsOutdoorTask(title), title)
	}
}

func TestFallbackProvider_GeneratesPlausibleValues(t *testing.T) {
	provider := NewFallbackProvider(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		got, err := provider.CurrentWeather(context.Background(), 0, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Temperature, 10)
		assert.Less(t, got.Temperature, 40)
		assert.Contains(t, conditions, got.Condition)
		assert.Equal(t, iconFor(got.Condition), got.Icon)
	}
}

func TestFallbackProvider_SafeForConcurrentUse(t *testing.T) {
	provider := NewFallbackProvider(rand.NewSource(1))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := provider.CurrentWeather(context.Background(), 0, 0)
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, got.Temperature, 10)
				assert.Less(t, got.Temperature, 40)
			}
		}()
	}
	wg.Wait()
}

func TestConditionFromCode(t *testing.T) {
	cases := map[int]string{
		0:  ConditionSunny,
		1:  ConditionPartlyCloudy,
		2:  ConditionPartlyCloudy,
		3:  ConditionCloudy,
		45: ConditionCloudy,
		61: ConditionRainy,
		80: ConditionRainy,
		95: ConditionStormy,
		99: ConditionStormy,
	}
	for code, want := range cases {
		assert.Equal(t, want, conditionFromCode(code), "code %d", code)
	}
}

func TestOpenMeteoProvider_CurrentWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "48.8566", r.URL.Query().Get("latitude"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":21.6,"weather_code":61}}`))
	}))
	defer server.Close()

	provider := NewOpenMeteoProvider(server.URL, server.Client())
	got, err := provider.CurrentWeather(context.Background(), 48.8566, 2.3522)
	require.NoError(t, err)
	assert.Equal(t, 22, got.Temperature)
	assert.Equal(t, ConditionRainy, got.Condition)
	assert.Equal(t, "🌧️", got.Icon)
}

func TestOpenMeteoProvider_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := NewOpenMeteoProvider(server.URL, server.Client())
	_, err := provider.CurrentWeather(context.Background(), 0, 0)
	require.Error(t, err)
}

type stubProvider struct {
	weather domain.Weather
	err     error
}

func (p stubProvider) CurrentWeather(context.Context, float64, float64) (domain.Weather, error) {
	return p.weather, p.err
}

type fakePatcher struct {
	mu      sync.Mutex
	gens    map[string]uint64
	known   map[string]bool
	applied chan domain.Weather
}

func newFakePatcher(ids ...string) *fakePatcher {
	known := map[string]bool{}
	for _, id := range ids {
		known[id] = true
	}
	return &fakePatcher{
		gens:    map[string]uint64{},
		known:   known,
		applied: make(chan domain.Weather, 1),
	}
}

func (p *fakePatcher) BeginWeatherFetch(id string) (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.known[id] {
		return 0, false
	}
	p.gens[id]++
	return p.gens[id], true
}

func (p *fakePatcher) ApplyWeather(_ context.Context, id string, gen uint64, weather domain.Weather) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.known[id] || p.gens[id] != gen {
		return false
	}
	p.applied <- weather
	return true
}

func TestService_Current_FallsBack(t *testing.T) {
	fallback := stubProvider{weather: domain.Weather{Temperature: 18, Condition: ConditionCloudy, Icon: "☁️"}}
	service := NewService(stubProvider{err: errors.New("network down")}, fallback, nil, 0, 0, time.Second)

	got, err := service.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fallback.weather, got)
}

func TestService_EnrichTask_PatchesOutdoorTask(t *testing.T) {
	want := domain.Weather{Temperature: 24, Condition: ConditionSunny, Icon: "☀️"}
	patcher := newFakePatcher("t1")
	service := NewService(stubProvider{weather: want}, nil, patcher, 0, 0, time.Second)

	service.EnrichTask(domain.Task{ID: "t1", Title: "Walk in the park"})

	select {
	case got := <-patcher.applied:
		assert.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatal("enrichment never applied")
	}
}

func TestService_EnrichTask_SkipsIndoorAndMissingTasks(t *testing.T) {
	patcher := newFakePatcher("t1")
	service := NewService(stubProvider{}, nil, patcher, 0, 0, time.Second)

	service.EnrichTask(domain.Task{ID: "t1", Title: "File taxes"})
	service.EnrichTask(domain.Task{ID: "deleted", Title: "Hike the ridge"})

	select {
	case <-patcher.applied:
		t.Fatal("unexpected patch")
	case <-time.After(50 * time.Millisecond):
	}
}
