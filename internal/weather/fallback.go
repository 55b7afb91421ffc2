package weather

import (
	"context"
	"math/rand"
	"sync"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

// FallbackProvider generates plausible local values when the real lookup is
// unavailable. It never fails. The mutex guards the RNG: enrichment
// goroutines and weather requests call in concurrently.
type FallbackProvider struct {
	mu   sync.Mutex
	rand *rand.Rand
}

var _ ports.WeatherProvider = (*FallbackProvider)(nil)

func NewFallbackProvider(source rand.Source) *FallbackProvider {
	return &FallbackProvider{rand: rand.New(source)}
}

func (p *FallbackProvider) CurrentWeather(_ context.Context, _, _ float64) (domain.Weather, error) {
	p.mu.Lock()
	condition := conditions[p.rand.Intn(len(conditions))]
	temperature := p.rand.Intn(30) + 10
	p.mu.Unlock()

	return domain.Weather{
		Temperature: temperature,
		Condition:   condition,
		Icon:        iconFor(condition),
	}, nil
}
