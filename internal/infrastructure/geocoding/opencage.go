package geocoding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/exp/slog"

	"safetrip/internal/infrastructure/breaker"
)

var ErrNoResults = errors.New("no geocoding results")

// Place is a human readable description of a coordinate.
type Place struct {
	Address string `json:"address"`
	Nearby  string `json:"nearby"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// ReverseGeocoder resolves coordinates to a place.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (*Place, error)
}

type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// OpenCage implements ReverseGeocoder against the OpenCage JSON API.
type OpenCage struct {
	http    *http.Client
	cfg     Config
	breaker *breaker.Breaker[*Place]
	log     *slog.Logger
}

func NewOpenCage(cfg Config, log *slog.Logger) *OpenCage {
	return &OpenCage{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		breaker: breaker.New[*Place]("geocoder", log),
		log:     log.With("component", "opencage"),
	}
}

type response struct {
	Results []struct {
		Formatted  string         `json:"formatted"`
		Components map[string]any `json:"components"`
	} `json:"results"`
}

func (o *OpenCage) Reverse(ctx context.Context, lat, lng float64) (*Place, error) {
	return o.breaker.Execute(func() (*Place, error) {
		return o.reverse(ctx, lat, lng)
	})
}

func (o *OpenCage) reverse(ctx context.Context, lat, lng float64) (*Place, error) {
	q := url.Values{}
	q.Set("q", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("key", o.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.cfg.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := o.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request: status %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(body.Results) == 0 {
		return nil, ErrNoResults
	}

	first := body.Results[0]
	c := first.Components
	return &Place{
		Address: first.Formatted,
		Nearby:  firstNonEmpty(component(c, "neighbourhood"), component(c, "suburb"), component(c, "city_district")),
		City:    component(c, "city"),
		State:   component(c, "state"),
		Country: component(c, "country"),
	}, nil
}

func component(c map[string]any, key string) string {
	if s, ok := c[key].(string); ok {
		return s
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
