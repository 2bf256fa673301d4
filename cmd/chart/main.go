package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	_ "modernc.org/sqlite"

	"vedic-chart-service/internal/adapters/cache"
	"vedic-chart-service/internal/adapters/ephemeris"
	"vedic-chart-service/internal/adapters/geocode"
	"vedic-chart-service/internal/platform/obs"
	"vedic-chart-service/internal/ports"
	"vedic-chart-service/internal/services"
)

// Interactive shell around the calculation pipeline: computes one birth
// chart from flags and prints the formatted positions. When geocoding
// fails, coordinates can be entered on the terminal.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	name := flag.String("name", "User", "display name")
	year := flag.String("year", "", "birth year (1900-2100)")
	month := flag.String("month", "", "birth month (1-12)")
	day := flag.String("day", "", "birth day (1-31)")
	hour := flag.String("hour", "", "birth hour, 24h format (0-23)")
	minute := flag.String("minute", "", "birth minute (0-59)")
	district := flag.String("district", "", "birth district or city")
	state := flag.String("state", "", "birth state or province")
	country := flag.String("country", "", "birth country")
	flag.Parse()

	ephemerisURL := os.Getenv("EPHEMERIS_URL")
	if strings.TrimSpace(ephemerisURL) == "" {
		log.Fatal("EPHEMERIS_URL is required")
	}

	provider, err := ephemeris.NewHTTPProvider(ephemerisURL, nil)
	if err != nil {
		log.Fatal(err)
	}

	geocoder := geocode.NewNominatimGeocoder(geocode.NominatimConfig{
		BaseURL:   os.Getenv("NOMINATIM_URL"),
		UserAgent: getEnv("GEOCODE_USER_AGENT", "VedicChartService/1.0 (cli)"),
		Delay:     1 * time.Second,
	})

	geocodeCache, closeCache := openSqliteCache(getEnv("DB_PATH", "data/geocode.db"))
	if closeCache != nil {
		defer closeCache()
	}

	prompt := &geocode.StdinCoordinatePrompt{In: os.Stdin, Out: os.Stdout}
	resolver := services.NewLocationResolver(geocoder, geocodeCache, prompt)
	engine := services.NewChartEngine(provider)

	ctx := obs.WithRequestID(context.Background(), "")

	result := services.ComputeBirthChart(ctx, services.ChartRequest{
		Name:     *name,
		Year:     *year,
		Month:    *month,
		Day:      *day,
		Hour:     *hour,
		Minute:   *minute,
		District: *district,
		State:    *state,
		Country:  *country,
	}, resolver, engine)

	if !result.Success {
		fmt.Fprintln(os.Stderr, result.Error)
		os.Exit(1)
	}

	fmt.Printf("Birth chart for %s\n", *name)
	fmt.Printf("Location: %s (%s)\n\n", result.Location, result.Coordinates)
	for _, line := range result.Positions {
		fmt.Println(line)
	}
}

// openSqliteCache opens the local geocode cache. A failure is not fatal
// for a CLI run; resolution just skips the cache.
func openSqliteCache(path string) (ports.GeocodeCache, func()) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("geocode cache unavailable: %v", err)
		return nil, nil
	}
	if err := db.Ping(); err != nil {
		log.Printf("geocode cache unavailable: %v", err)
		_ = db.Close()
		return nil, nil
	}
	if err := cache.InitSqliteSchema(db); err != nil {
		log.Printf("geocode cache unavailable: %v", err)
		_ = db.Close()
		return nil, nil
	}

	return cache.NewSqliteGeocodeCache(db), func() { _ = db.Close() }
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
