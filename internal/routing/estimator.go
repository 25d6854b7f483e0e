// Package routing estimates drive time between the home base and a job
// site. Geocoding and route lookups go through an external OSRM-style
// service; the rest of the app only consumes the resulting hours.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/brushworkslabs/brushworks/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	ErrNoResults     = errors.New("no_geocode_results")
	ErrRouteFailed   = errors.New("route_lookup_failed")
	ErrNotConfigured = errors.New("routing_not_configured")
)

// Estimator resolves a one-way drive time in hours from the shop's home
// base to a destination address or zip.
type Estimator interface {
	OneWayHours(ctx context.Context, destination string) (float64, error)
}

// RoundTrip doubles a one-way estimate and rounds to the nearest half hour,
// which is the granularity quotes are written in.
func RoundTrip(oneWayHours float64) float64 {
	return math.Round(oneWayHours*2*2) / 2
}

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
}

type httpEstimator struct {
	baseURL string
	homeZip string
	log     *zap.Logger
	client  *http.Client
}

func New(p Params) Estimator {
	return &httpEstimator{
		baseURL: strings.TrimRight(strings.TrimSpace(p.Config.RoutingBaseURL), "/"),
		homeZip: strings.TrimSpace(p.Config.HomeBaseZip),
		log:     p.Log.Named("routing"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type geocodeResponse struct {
	Results []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"results"`
}

type routeResponse struct {
	Routes []struct {
		DurationSeconds float64 `json:"duration"`
	} `json:"routes"`
}

func (e *httpEstimator) OneWayHours(ctx context.Context, destination string) (float64, error) {
	if e.baseURL == "" {
		return 0, ErrNotConfigured
	}

	origin, err := e.geocode(ctx, e.homeZip)
	if err != nil {
		return 0, err
	}
	dest, err := e.geocode(ctx, destination)
	if err != nil {
		return 0, err
	}

	seconds, err := e.route(ctx, origin, dest)
	if err != nil {
		return 0, err
	}
	return seconds / 3600, nil
}

type coordinate struct {
	lat float64
	lon float64
}

func (e *httpEstimator) geocode(ctx context.Context, query string) (coordinate, error) {
	endpoint := fmt.Sprintf("%s/geocode?q=%s", e.baseURL, url.QueryEscape(strings.TrimSpace(query)))

	var decoded geocodeResponse
	if err := e.getJSON(ctx, endpoint, &decoded); err != nil {
		return coordinate{}, err
	}
	if len(decoded.Results) == 0 {
		return coordinate{}, ErrNoResults
	}
	return coordinate{lat: decoded.Results[0].Lat, lon: decoded.Results[0].Lon}, nil
}

func (e *httpEstimator) route(ctx context.Context, origin, dest coordinate) (float64, error) {
	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		e.baseURL, origin.lon, origin.lat, dest.lon, dest.lat)

	var decoded routeResponse
	if err := e.getJSON(ctx, endpoint, &decoded); err != nil {
		return 0, err
	}
	if len(decoded.Routes) == 0 {
		return 0, ErrRouteFailed
	}
	return decoded.Routes[0].DurationSeconds, nil
}

func (e *httpEstimator) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("routing_request_failed_status_%d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// EstimateAsync resolves a round-trip estimate in the background and hands
// it to apply. On failure the previous value stays in place; quotes fall
// back to the manual transport hours already on the record.
func EstimateAsync(log *zap.Logger, estimator Estimator, destination string, apply func(hours float64)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		oneWay, err := estimator.OneWayHours(ctx, destination)
		if err != nil {
			log.Debug("transport estimate lookup failed, keeping prior value",
				zap.String("destination", destination),
				zap.Error(err),
			)
			return
		}
		apply(RoundTrip(oneWay))
	}()
}

var Module = fx.Module("routing",
	fx.Provide(New),
)
