package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/platform/obs"
	"vedic-chart-service/internal/ports"
)

const maxManualAttempts = 3

// LocationResolver turns a district/state/country triple into coordinates.
//
// It tries up to three provider queries in decreasing specificity, fronted
// by an optional persistent cache, and falls back to a manual coordinate
// provider when every query fails. Per-query provider errors are
// recoverable: the cascade simply advances to the next variant.
type LocationResolver struct {
	geocoder ports.Geocoder
	cache    ports.GeocodeCache
	manual   ports.ManualCoordinateProvider
}

// NewLocationResolver wires the resolver. cache and manual may be nil;
// a nil manual provider disables the interactive fallback entirely.
func NewLocationResolver(
	geocoder ports.Geocoder,
	cache ports.GeocodeCache,
	manual ports.ManualCoordinateProvider,
) *LocationResolver {
	return &LocationResolver{
		geocoder: geocoder,
		cache:    cache,
		manual:   manual,
	}
}

// Resolve returns the first valid coordinate found for the place.
func (r *LocationResolver) Resolve(
	ctx context.Context,
	district, state, country string,
) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "resolver.Resolve")(&err)

	for _, query := range buildQueries(district, state, country) {
		coord, ok := r.resolveQuery(ctx, query)
		if ok {
			log.Printf("location resolved: query=%q coord=%s", query, coord)
			return coord, nil
		}
	}

	log.Printf("all geocode queries failed: district=%q state=%q country=%q", district, state, country)

	coord, ok := r.manualFallback()
	if ok {
		return coord, nil
	}

	return domain.Coordinates{}, fmt.Errorf(
		"%w: %s, %s, %s",
		domain.ErrLocationResolution, district, state, country,
	)
}

// buildQueries returns the provider query variants, most specific first.
func buildQueries(district, state, country string) []string {
	district = strings.TrimSpace(district)
	state = strings.TrimSpace(state)
	country = strings.TrimSpace(country)

	return []string{
		district + ", " + state + ", " + country,
		district + ", " + country,
		state + ", " + country,
	}
}

// resolveQuery answers one cascade step: cache, then provider. Any error
// or out-of-range result is reported as a miss, never as a failure.
func (r *LocationResolver) resolveQuery(ctx context.Context, query string) (domain.Coordinates, bool) {
	if r.cache != nil {
		coord, hit, err := r.cache.Get(ctx, query)
		if err != nil {
			log.Printf("geocode cache read failed: query=%q err=%v", query, err)
		} else if hit && coord.Valid() {
			return coord, true
		}
	}

	coord, err := r.geocoder.Lookup(ctx, query)
	if err != nil {
		log.Printf("geocode query failed: query=%q err=%v", query, err)
		return domain.Coordinates{}, false
	}

	if !coord.Valid() {
		log.Printf("geocode result out of range: query=%q coord=%s", query, coord)
		return domain.Coordinates{}, false
	}

	if r.cache != nil {
		if err := r.cache.Put(ctx, query, coord); err != nil {
			log.Printf("geocode cache write failed: query=%q err=%v", query, err)
		}
	}

	return coord, true
}

// manualFallback asks the manual provider for coordinates, up to
// maxManualAttempts times, accepting only in-range pairs.
func (r *LocationResolver) manualFallback() (domain.Coordinates, bool) {
	if r.manual == nil {
		return domain.Coordinates{}, false
	}

	for attempt := 1; attempt <= maxManualAttempts; attempt++ {
		coord, err := r.manual.ReadCoordinates(attempt, maxManualAttempts)
		if err != nil {
			log.Printf("manual coordinate entry failed: attempt=%d err=%v", attempt, err)
			continue
		}

		if coord.Valid() {
			return coord, true
		}

		log.Printf("manual coordinates out of range: attempt=%d coord=%s", attempt, coord)
	}

	return domain.Coordinates{}, false
}
