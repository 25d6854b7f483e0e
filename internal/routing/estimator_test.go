package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brushworkslabs/brushworks/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRoundTripRoundsToHalfHours(t *testing.T) {
	tests := []struct {
		oneWay float64
		want   float64
	}{
		{0, 0},
		{0.5, 1.0},
		{0.6, 1.0},
		{0.65, 1.5},
		{1.0, 2.0},
		{1.1, 2.0},
		{1.2, 2.5},
		{2.35, 4.5},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundTrip(tt.oneWay), 1e-9, "one-way %v", tt.oneWay)
	}
}

func TestOneWayHoursNotConfigured(t *testing.T) {
	est := New(Params{
		Config: config.Config{},
		Log:    zap.NewNop(),
	})

	_, err := est.OneWayHours(context.Background(), "30720")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestOneWayHours(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/geocode":
			switch r.URL.Query().Get("q") {
			case "30143":
				w.Write([]byte(`{"results":[{"lat":34.45,"lon":-84.42}]}`))
			case "412 Hollis Creek Rd":
				w.Write([]byte(`{"results":[{"lat":34.77,"lon":-84.96}]}`))
			default:
				w.Write([]byte(`{"results":[]}`))
			}
		default:
			// 45 minutes one way
			w.Write([]byte(`{"routes":[{"duration":2700}]}`))
		}
	}))
	defer srv.Close()

	est := New(Params{
		Config: config.Config{RoutingBaseURL: srv.URL, HomeBaseZip: "30143"},
		Log:    zap.NewNop(),
	})

	hours, err := est.OneWayHours(context.Background(), "412 Hollis Creek Rd")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, hours, 1e-9)
	assert.InDelta(t, 1.5, RoundTrip(hours), 1e-9)

	_, err = est.OneWayHours(context.Background(), "nowhere in particular")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestOneWayHoursUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/geocode" {
			w.Write([]byte(`{"results":[{"lat":34.45,"lon":-84.42}]}`))
			return
		}
		w.Write([]byte(`{"routes":[]}`))
	}))
	defer srv.Close()

	est := New(Params{
		Config: config.Config{RoutingBaseURL: srv.URL, HomeBaseZip: "30143"},
		Log:    zap.NewNop(),
	})

	_, err := est.OneWayHours(context.Background(), "30720")
	assert.ErrorIs(t, err, ErrRouteFailed)
}
