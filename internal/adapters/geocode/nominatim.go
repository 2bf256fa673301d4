package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/platform/obs"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org/search"

var (
	errEmptyResult = errors.New("empty geocode result")
	errBadStatus   = errors.New("unexpected status code")
)

// NominatimConfig bundles client settings. Zero values get defaults
// suitable for the public Nominatim instance.
type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	// Delay is the politeness interval awaited before every request.
	// The public instance allows at most one request per second.
	Delay  time.Duration
	Client *http.Client
}

// NominatimGeocoder resolves free-text place queries via the
// OpenStreetMap Nominatim API. Calls go through a circuit breaker so a
// failing upstream is skipped quickly instead of being hammered once per
// cascade step.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	delay     time.Duration
	client    *http.Client
	breaker   *gobreaker.CircuitBreaker
}

func NewNominatimGeocoder(cfg NominatimConfig) *NominatimGeocoder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "VedicChartService/1.0"
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 10 * time.Second}
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nominatim",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &NominatimGeocoder{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		delay:     cfg.Delay,
		client:    cfg.Client,
		breaker:   cb,
	}
}

// Lookup resolves one place query to coordinates. Any failure (network,
// non-2xx status, empty or malformed payload) is returned as an error
// for the caller's cascade to absorb; there is no retry here.
func (g *NominatimGeocoder) Lookup(ctx context.Context, query string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Lookup")(&err)

	if err := g.throttle(ctx); err != nil {
		return domain.Coordinates{}, err
	}

	req, err := g.newRequest(ctx, query)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim: create request: %w", err)
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		resp, err := g.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: %d", errBadStatus, resp.StatusCode)
		}

		return decodeResult(resp)
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim: query %q: %w", query, err)
	}

	coord, ok := result.(domain.Coordinates)
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("nominatim: unexpected result type from circuit breaker")
	}

	return coord, nil
}

func (g *NominatimGeocoder) newRequest(ctx context.Context, query string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL, nil)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("addressdetails", "1")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// throttle waits the politeness interval while respecting cancellation.
func (g *NominatimGeocoder) throttle(ctx context.Context) error {
	if g.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// decodeResult performs a strict typed decode of the Nominatim payload.
// Nominatim encodes lat/lon as strings; both must parse as floats and
// lie in geographic range, otherwise the query fails closed.
func decodeResult(resp *http.Response) (domain.Coordinates, error) {
	var payload []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode response: %w", err)
	}

	if len(payload) == 0 {
		return domain.Coordinates{}, errEmptyResult
	}

	lat, err := strconv.ParseFloat(payload[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lat %q: %w", payload[0].Lat, err)
	}

	lon, err := strconv.ParseFloat(payload[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lon %q: %w", payload[0].Lon, err)
	}

	coord := domain.Coordinates{Lat: lat, Lon: lon}
	if !coord.Valid() {
		return domain.Coordinates{}, fmt.Errorf("coordinates out of range: %s", coord)
	}

	return coord, nil
}
