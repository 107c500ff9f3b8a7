package weather

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"StyleMate-Server/domain"
	"StyleMate-Server/internal/utils"

	"encoding/json"

	"github.com/gofiber/fiber/v2/log"
)

const requestTimeout = 5 * time.Second

type (
	// WeatherService returns current conditions for a coordinate, or nil when
	// the provider is unavailable and no snapshot is cached. Callers treat nil
	// as degraded mode; a provider failure never fails a recommendation.
	WeatherService interface {
		GetCurrentWeather(ctx context.Context, lat, lon float64) *domain.Weather
	}

	weatherService struct {
		baseURL string
		client  *http.Client

		mu        sync.RWMutex
		lastKnown map[string]domain.Weather
	}

	providerResponse struct {
		Current struct {
			Temperature   float64 `json:"temperature_2m"`
			Precipitation float64 `json:"precipitation"`
			WeatherCode   int     `json:"weather_code"`
		} `json:"current"`
	}
)

func NewWeatherService() WeatherService {
	return &weatherService{
		baseURL:   utils.GetConfig("WEATHER_API_URL"),
		client:    &http.Client{Timeout: requestTimeout},
		lastKnown: make(map[string]domain.Weather),
	}
}

func (s *weatherService) GetCurrentWeather(ctx context.Context, lat, lon float64) *domain.Weather {
	url := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,precipitation,weather_code",
		s.baseURL, lat, lon,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return s.fallback(lat, lon)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warnf("weather provider unavailable: %v", err)
		return s.fallback(lat, lon)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("weather provider returned %s", resp.Status)
		return s.fallback(lat, lon)
	}

	var parsed providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Warnf("weather provider response unreadable: %v", err)
		return s.fallback(lat, lon)
	}

	weather := domain.Weather{
		Temperature:   parsed.Current.Temperature,
		Condition:     conditionForCode(parsed.Current.WeatherCode),
		Precipitation: parsed.Current.Precipitation,
	}

	s.mu.Lock()
	s.lastKnown[coordKey(lat, lon)] = weather
	s.mu.Unlock()

	return &weather
}

// fallback serves the last-known snapshot for the coordinate, if any.
func (s *weatherService) fallback(lat, lon float64) *domain.Weather {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if w, ok := s.lastKnown[coordKey(lat, lon)]; ok {
		return &w
	}
	return nil
}

func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.2f,%.2f", lat, lon)
}

// conditionForCode collapses WMO weather codes into the condition set items
// declare against.
func conditionForCode(code int) string {
	switch {
	case code <= 1:
		return domain.ConditionClear
	case code <= 48:
		return domain.ConditionCloudy
	case code >= 71 && code <= 77, code >= 85 && code <= 86:
		return domain.ConditionSnow
	default:
		return domain.ConditionRain
	}
}
