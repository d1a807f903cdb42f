package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/mullinsd/fishing-companion/internal/weather"
)

// OpenWeatherProvider implements weather.Provider against OpenWeatherMap's
// current-conditions and 5-day/3-hour forecast endpoints. Requests use
// imperial units, matching the units the rest of the system works in.
type OpenWeatherProvider struct {
	name        string
	apiKey      string
	currentURL  string
	forecastURL string
	httpCfg     HTTPClientConfig
	circuit     *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:        "openweathermap",
		apiKey:      apiKey,
		currentURL:  "https://api.openweathermap.org/data/2.5/weather",
		forecastURL: "https://api.openweathermap.org/data/2.5/forecast",
		httpCfg:     defaultHTTPConfig(client),
		circuit:     newCircuit("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// openWeatherItem is the shared shape of one reading in both the current and
// forecast payloads.
type openWeatherItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Rain struct {
		OneH   float64 `json:"1h"`
		ThreeH float64 `json:"3h"`
	} `json:"rain"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

func (item openWeatherItem) toObservation() weather.Observation {
	ts := time.Unix(item.Dt, 0).UTC()

	precip := item.Rain.OneH
	if precip == 0 {
		precip = item.Rain.ThreeH
	}

	obs := weather.Observation{
		Date:          ts,
		Temperature:   item.Main.Temp,
		WindSpeed:     item.Wind.Speed,
		WindDirection: weather.CompassPoint(item.Wind.Deg),
		Pressure:      item.Main.Pressure,
		Humidity:      item.Main.Humidity,
		Precipitation: precip,
	}
	if len(item.Weather) > 0 {
		obs.Conditions = item.Weather[0].Description
		obs.Icon = item.Weather[0].Icon
	}
	return obs
}

func (p *OpenWeatherProvider) buildRequest(baseURL string, lat, lon float64) func() (*http.Request, error) {
	return func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("units", "imperial")
		values.Set("lat", fmt.Sprintf("%f", lat))
		values.Set("lon", fmt.Sprintf("%f", lon))

		u := fmt.Sprintf("%s?%s", baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}
}

func (p *OpenWeatherProvider) Current(ctx context.Context, lat, lon float64) (weather.Observation, error) {
	if p.apiKey == "" {
		return weather.Observation{}, fmt.Errorf("openweather api key is not configured")
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, p.buildRequest(p.currentURL, lat, lon))
	if err != nil {
		return weather.Observation{}, err
	}
	defer resp.Body.Close()

	var payload openWeatherItem
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, err
	}

	obs := payload.toObservation()
	if obs.Date.IsZero() {
		obs.Date = time.Now().UTC()
	}
	return obs, nil
}

func (p *OpenWeatherProvider) Forecast(ctx context.Context, lat, lon float64) ([]weather.Observation, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, p.buildRequest(p.forecastURL, lat, lon))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		List []openWeatherItem `json:"list"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	observations := make([]weather.Observation, 0, len(payload.List))
	for _, item := range payload.List {
		observations = append(observations, item.toObservation())
	}
	return observations, nil
}
