package ports

import (
	"context"

	"taskplanner/internal/core/domain"
)

// WeatherProvider returns current conditions for a coordinate pair.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, latitude, longitude float64) (domain.Weather, error)
}

type WeatherService interface {
	Current(ctx context.Context) (domain.Weather, error)
}
