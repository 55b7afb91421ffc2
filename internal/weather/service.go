package weather

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

// TaskPatcher is the slice of the task store the enricher needs: register a
// fetch, then apply its result if it is still the latest one.
type TaskPatcher interface {
	BeginWeatherFetch(id string) (gen uint64, ok bool)
	ApplyWeather(ctx context.Context, id string, gen uint64, weather domain.Weather) bool
}

// Service attaches best-effort weather data to outdoor tasks. Enrichment
// never blocks task operations and never surfaces an error; when the real
// lookup fails the fallback values are used instead.
type Service struct {
	provider ports.WeatherProvider
	fallback ports.WeatherProvider
	tasks    TaskPatcher

	latitude  float64
	longitude float64
	timeout   time.Duration
}

var (
	_ ports.WeatherService = (*Service)(nil)
	_ ports.TaskEnricher   = (*Service)(nil)
)

func NewService(provider, fallback ports.WeatherProvider, tasks TaskPatcher, latitude, longitude float64, timeout time.Duration) *Service {
	return &Service{
		provider:  provider,
		fallback:  fallback,
		tasks:     tasks,
		latitude:  latitude,
		longitude: longitude,
		timeout:   timeout,
	}
}

// Current returns the ambient conditions for the configured coordinates.
func (s *Service) Current(ctx context.Context) (domain.Weather, error) {
	return s.lookup(ctx)
}

// EnrichTask starts an asynchronous weather fetch for the task if its title
// mentions an outdoor activity. The patch is dropped when the task is deleted
// first or a later fetch for the same task resolves before this one applies.
func (s *Service) EnrichTask(task domain.Task) {
	if !IsOutdoorTask(task.Title) {
		return
	}

	gen, ok := s.tasks.BeginWeatherFetch(task.ID)
	if !ok {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		current, err := s.lookup(ctx)
		if err != nil {
			return
		}

		if s.tasks.ApplyWeather(context.Background(), task.ID, gen, current) {
			zap.L().Debug("attached weather to task",
				zap.String("task_id", task.ID),
				zap.String("condition", current.Condition),
			)
		}
	}()
}

func (s *Service) lookup(ctx context.Context) (domain.Weather, error) {
	current, err := s.provider.CurrentWeather(ctx, s.latitude, s.longitude)
	if err == nil {
		return current, nil
	}

	zap.L().Debug("weather lookup failed, using fallback", zap.Error(err))
	return s.fallback.CurrentWeather(ctx, s.latitude, s.longitude)
}
