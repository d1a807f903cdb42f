package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/mullinsd/fishing-companion/internal/weather"
)

// SunriseSunsetProvider implements weather.SunProvider against
// sunrise-sunset.org. The API is keyless.
type SunriseSunsetProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewSunriseSunsetProvider(client *http.Client) *SunriseSunsetProvider {
	return &SunriseSunsetProvider{
		name:    "sunrise-sunset",
		baseURL: "https://api.sunrise-sunset.org/json",
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuit("sunrise-sunset"),
	}
}

func (p *SunriseSunsetProvider) Name() string {
	return p.name
}

func (p *SunriseSunsetProvider) Sun(ctx context.Context, lat, lon float64, date time.Time) (weather.SunData, error) {
	dateStr := date.Format("2006-01-02")

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", fmt.Sprintf("%f", lat))
		values.Set("lng", fmt.Sprintf("%f", lon))
		values.Set("date", dateStr)
		values.Set("formatted", "0")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.SunData{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Results struct {
			Sunrise string `json:"sunrise"`
			Sunset  string `json:"sunset"`
		} `json:"results"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.SunData{}, err
	}
	if payload.Status != "OK" {
		return weather.SunData{}, fmt.Errorf("sunrise-sunset api status %q", payload.Status)
	}

	return weather.SunData{
		Date:      dateStr,
		Sunrise:   clockPart(payload.Results.Sunrise),
		Sunset:    clockPart(payload.Results.Sunset),
		MoonPhase: weather.MoonPhase(date),
	}, nil
}

// clockPart cuts an RFC3339 timestamp like 2026-06-01T05:12:41+00:00 down to
// its HH:MM:SS part.
func clockPart(rfc3339 string) string {
	_, after, ok := strings.Cut(rfc3339, "T")
	if !ok {
		return rfc3339
	}
	clock, _, _ := strings.Cut(after, "+")
	return clock
}
