package ephemeris

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/platform/obs"
)

// HTTPProvider implements the ephemeris port against an external Swiss
// Ephemeris computation service. Mode flags are fixed: sidereal zodiac,
// Lahiri ayanamsa, Placidus houses. Provider errors are fatal for the
// request; callers do not retry.
type HTTPProvider struct {
	client  *http.Client
	baseURL string
}

func NewHTTPProvider(baseURL string, client *http.Client) (*HTTPProvider, error) {
	if baseURL == "" {
		return nil, errors.New("ephemeris base URL is empty")
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &HTTPProvider{
		client:  client,
		baseURL: baseURL,
	}, nil
}

// BodyLongitude fetches the sidereal ecliptic longitude of one body.
func (p *HTTPProvider) BodyLongitude(
	ctx context.Context,
	julianDay float64,
	body domain.CelestialBody,
) (_ float64, err error) {
	defer obs.Time(ctx, "ephemeris.BodyLongitude")(&err)

	q := url.Values{}
	q.Set("jd", strconv.FormatFloat(julianDay, 'f', -1, 64))
	q.Set("body", wireBody(body))
	q.Set("zodiac", "sidereal")
	q.Set("ayanamsa", "lahiri")

	var payload struct {
		Longitude *float64 `json:"longitude"`
	}
	if err := p.get(ctx, "/v1/longitude", q, &payload); err != nil {
		return 0, fmt.Errorf("body longitude %s: %w", body, err)
	}
	if payload.Longitude == nil {
		return 0, fmt.Errorf("body longitude %s: missing longitude field", body)
	}

	return *payload.Longitude, nil
}

// AscendantLongitude fetches the sidereal ascendant for an instant and place.
func (p *HTTPProvider) AscendantLongitude(
	ctx context.Context,
	julianDay float64,
	coord domain.Coordinates,
) (_ float64, err error) {
	defer obs.Time(ctx, "ephemeris.AscendantLongitude")(&err)

	q := url.Values{}
	q.Set("jd", strconv.FormatFloat(julianDay, 'f', -1, 64))
	q.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	q.Set("house_system", "placidus")
	q.Set("zodiac", "sidereal")
	q.Set("ayanamsa", "lahiri")

	var payload struct {
		Ascendant *float64 `json:"ascendant"`
	}
	if err := p.get(ctx, "/v1/houses", q, &payload); err != nil {
		return 0, fmt.Errorf("ascendant longitude: %w", err)
	}
	if payload.Ascendant == nil {
		return 0, errors.New("ascendant longitude: missing ascendant field")
	}

	return *payload.Ascendant, nil
}

func (p *HTTPProvider) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// wireBody maps body identifiers to the computation service's naming.
func wireBody(b domain.CelestialBody) string {
	if b == domain.MeanNode {
		return "mean_node"
	}

	buf := []byte(string(b))
	if len(buf) > 0 && buf[0] >= 'A' && buf[0] <= 'Z' {
		buf[0] += 'a' - 'A'
	}
	return string(buf)
}
