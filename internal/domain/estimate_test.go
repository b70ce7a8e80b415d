package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistanceEstimate(t *testing.T) {
	tests := []struct {
		name        string
		meters      float64
		costPerMile float64
		wantMiles   float64
		wantCost    float64
		wantErrKind ErrorKind
	}{
		{name: "ten miles one way", meters: 16093.4, costPerMile: 0, wantMiles: 20.0, wantCost: 0},
		{name: "half rate", meters: 16093.4, costPerMile: 0.5, wantMiles: 20.0, wantCost: 10.0},
		{name: "round trip of 12.35 rounds up", meters: 9937.6745, costPerMile: 0, wantMiles: 12.4, wantCost: 0},
		{name: "zero distance", meters: 0, costPerMile: 0.67, wantMiles: 0, wantCost: 0},
		{name: "negative distance", meters: -1, costPerMile: 0.5, wantErrKind: KindValidation},
		{name: "nan distance", meters: math.NaN(), costPerMile: 0.5, wantErrKind: KindValidation},
		{name: "infinite distance", meters: math.Inf(1), costPerMile: 0.5, wantErrKind: KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDistanceEstimate(tt.meters, tt.costPerMile)
			if tt.wantErrKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrKind, KindOf(err))
				assert.EqualError(t, err, "invalid distance result")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMiles, got.RoundTripDistanceMiles)
			assert.Equal(t, tt.wantCost, got.RoundTripCost)
		})
	}
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 12.3, Round1(12.34999))
	assert.Equal(t, 12.4, Round1(12.35))
	assert.Equal(t, 1.23, Round2(1.23499))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, 0.0, Round1(0.04))
}

func TestKindOf(t *testing.T) {
	wrapped := func(err error) error { return errors.Join(errors.New("outer"), err) }

	assert.Equal(t, KindValidation, KindOf(wrapped(NewValidationError("x"))))
	assert.Equal(t, KindNotFound, KindOf(NewNotFoundError("event", "e1")))
	assert.Equal(t, KindTransport, KindOf(&TransportError{StatusCode: 503, Err: errors.New("unavailable")}))
	assert.Equal(t, KindService, KindOf(&ServiceError{Status: "REQUEST_DENIED"}))
	assert.Equal(t, KindRouteUnavailable, KindOf(&RouteUnavailableError{Status: "NOT_FOUND"}))
	assert.Equal(t, KindMalformedResponse, KindOf(ErrMalformedResponse))
	assert.Equal(t, KindMissingDistance, KindOf(wrapped(ErrMissingDistance)))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("boom")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}
