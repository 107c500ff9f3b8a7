package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"StyleMate-Server/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(baseURL string) *weatherService {
	return &weatherService{
		baseURL:   baseURL,
		client:    http.DefaultClient,
		lastKnown: make(map[string]domain.Weather),
	}
}

func TestGetCurrentWeather_ParsesProviderResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "-33.8700", r.URL.Query().Get("latitude"))
		w.Write([]byte(`{"current":{"temperature_2m":21.5,"precipitation":0.2,"weather_code":3}}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL)
	weather := svc.GetCurrentWeather(context.Background(), -33.87, 151.21)

	require.NotNil(t, weather)
	assert.InDelta(t, 21.5, weather.Temperature, 1e-9)
	assert.InDelta(t, 0.2, weather.Precipitation, 1e-9)
	assert.Equal(t, domain.ConditionCloudy, weather.Condition)
}

func TestGetCurrentWeather_NilWhenProviderDownAndNoCache(t *testing.T) {
	svc := newTestService("http://127.0.0.1:0")

	assert.Nil(t, svc.GetCurrentWeather(context.Background(), -33.87, 151.21))
}

func TestGetCurrentWeather_FallsBackToLastKnown(t *testing.T) {
	var failing atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"current":{"temperature_2m":18,"precipitation":0,"weather_code":0}}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL)

	first := svc.GetCurrentWeather(context.Background(), -33.87, 151.21)
	require.NotNil(t, first)

	failing.Store(true)
	cached := svc.GetCurrentWeather(context.Background(), -33.87, 151.21)
	require.NotNil(t, cached)
	assert.Equal(t, *first, *cached)

	// Other coordinates never got a snapshot.
	assert.Nil(t, svc.GetCurrentWeather(context.Background(), 51.51, -0.13))
}

func TestConditionForCode(t *testing.T) {
	assert.Equal(t, domain.ConditionClear, conditionForCode(0))
	assert.Equal(t, domain.ConditionClear, conditionForCode(1))
	assert.Equal(t, domain.ConditionCloudy, conditionForCode(3))
	assert.Equal(t, domain.ConditionCloudy, conditionForCode(45))
	assert.Equal(t, domain.ConditionRain, conditionForCode(61))
	assert.Equal(t, domain.ConditionSnow, conditionForCode(71))
	assert.Equal(t, domain.ConditionSnow, conditionForCode(86))
	assert.Equal(t, domain.ConditionRain, conditionForCode(95))
}
