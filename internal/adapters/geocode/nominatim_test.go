package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGeocoder(srv *httptest.Server) *NominatimGeocoder {
	return NewNominatimGeocoder(NominatimConfig{
		BaseURL:   srv.URL,
		UserAgent: "test-agent",
		Delay:     0,
		Client:    srv.Client(),
	})
}

func TestLookupParsesCoordinates(t *testing.T) {
	var gotQuery, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")

		if r.URL.Query().Get("format") != "json" {
			t.Errorf("format = %q, want json", r.URL.Query().Get("format"))
		}
		if r.URL.Query().Get("limit") != "1" {
			t.Errorf("limit = %q, want 1", r.URL.Query().Get("limit"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"19.0760","lon":"72.8777","display_name":"Mumbai"}]`))
	}))
	defer srv.Close()

	coord, err := newTestGeocoder(srv).Lookup(context.Background(), "Mumbai, Maharashtra, India")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "Mumbai, Maharashtra, India" {
		t.Fatalf("q param = %q", gotQuery)
	}
	if gotUA != "test-agent" {
		t.Fatalf("user agent = %q", gotUA)
	}
	if coord.Lat != 19.076 || coord.Lon != 72.8777 {
		t.Fatalf("coord = %v", coord)
	}
}

func TestLookupEmptyResultFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := newTestGeocoder(srv).Lookup(context.Background(), "Nowhere"); err == nil {
		t.Fatal("expected error for empty result")
	}
}

func TestLookupServerErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := newTestGeocoder(srv).Lookup(context.Background(), "Mumbai"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestLookupMalformedPayloadFailsClosed(t *testing.T) {
	payloads := []string{
		`{"lat":"19.0","lon":"72.8"}`,            // object, not array
		`[{"lat":"not-a-number","lon":"72.8"}]`,  // unparseable lat
		`[{"lon":"72.8"}]`,                       // missing lat
		`[{"lat":"95.0","lon":"72.8"}]`,          // latitude out of range
		`[{"lat":"19.0","lon":"-200.0"}]`,        // longitude out of range
	}

	for _, p := range payloads {
		payload := p
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))

		_, err := newTestGeocoder(srv).Lookup(context.Background(), "Mumbai")
		srv.Close()

		if err == nil {
			t.Fatalf("expected error for payload %s", payload)
		}
	}
}

func TestLookupRespectsCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"19.0","lon":"72.8"}]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(NominatimConfig{
		BaseURL: srv.URL,
		Delay:   0,
		Client:  srv.Client(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Lookup(ctx, "Mumbai"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
