package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

// OpenMeteoProvider looks up current conditions from the Open-Meteo public
// API. No API key is required.
type OpenMeteoProvider struct {
	baseURL string
	client  *http.Client
}

var _ ports.WeatherProvider = (*OpenMeteoProvider)(nil)

func NewOpenMeteoProvider(baseURL string, client *http.Client) *OpenMeteoProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenMeteoProvider{baseURL: baseURL, client: client}
}

type openMeteoResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

func (p *OpenMeteoProvider) CurrentWeather(ctx context.Context, latitude, longitude float64) (domain.Weather, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", latitude))
	query.Set("longitude", fmt.Sprintf("%.4f", longitude))
	query.Set("current", "temperature_2m,weather_code")

	endpoint := p.baseURL + "/v1/forecast?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Weather{}, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Weather{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Weather{}, fmt.Errorf("weather lookup returned status %d", resp.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Weather{}, err
	}

	condition := conditionFromCode(payload.Current.WeatherCode)
	return domain.Weather{
		Temperature: int(math.Round(payload.Current.Temperature)),
		Condition:   condition,
		Icon:        iconFor(condition),
	}, nil
}

// conditionFromCode collapses WMO weather codes into the five conditions the
// application understands.
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return ConditionSunny
	case code <= 2:
		return ConditionPartlyCloudy
	case code == 3 || (code >= 45 && code <= 48):
		return ConditionCloudy
	case code >= 95:
		return ConditionStormy
	case code >= 51:
		return ConditionRainy
	default:
		return ConditionCloudy
	}
}
