package distance

import (
	"context"
	"encoding/json"
	"errors"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/platform/obs"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL        = "https://maps.googleapis.com"
	distanceMatrixPath    = "/maps/api/distancematrix/json"
	statusOK              = "OK"
	defaultRoutingTimeout = 10 * time.Second
	maxResponseBytes      = 1 << 20
)

type textValue struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

type distanceMatrixElement struct {
	Status   string     `json:"status"`
	Distance *textValue `json:"distance"`
	Duration *textValue `json:"duration"`
}

type distanceMatrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []distanceMatrixElement `json:"elements"`
	} `json:"rows"`
}

// GoogleDistanceMatrix implements RoutingService using the Google
// Distance Matrix API. It holds no per-call state and is safe for
// concurrent use. The credential is supplied on every call.
type GoogleDistanceMatrix struct {
	session *http.Client
	baseURL string
}

// NewGoogleDistanceMatrix builds a client; an empty baseURL targets Google and a
// non-positive timeout falls back to 10s.
func NewGoogleDistanceMatrix(baseURL string, timeout time.Duration) *GoogleDistanceMatrix {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultRoutingTimeout
	}

	return &GoogleDistanceMatrix{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// normalize collapses whitespace so equivalent addresses produce identical queries.
func (g *GoogleDistanceMatrix) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (g *GoogleDistanceMatrix) DrivingDistanceMeters(
	ctx context.Context,
	origin string,
	destination string,
	credential string,
) (_ float64, err error) {
	defer obs.Time(ctx, "google.DrivingDistanceMeters")(&err)

	normOrigin := g.normalize(origin)
	normDestination := g.normalize(destination)
	if normOrigin == "" || normDestination == "" {
		return 0, domain.NewValidationError("addresses required")
	}

	endpoint := g.baseURL + distanceMatrixPath

	q := url.Values{}
	q.Set("origins", normOrigin)
	q.Set("destinations", normDestination)
	q.Set("units", "imperial")
	q.Set("mode", "driving")
	q.Set("key", credential)

	req, err := g.newRequest(ctx, http.MethodGet, endpoint, q)
	if err != nil {
		return 0, fmt.Errorf("distance matrix: %w", err)
	}

	resp, err := g.do(req)
	if err != nil {
		return 0, transportError(err, endpoint)
	}
	defer resp.Body.Close()

	var decoded distanceMatrixResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&decoded); err != nil {
		return 0, &domain.TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode distance matrix response: %w", err),
		}
	}

	return decoded.distanceMeters()
}

// distanceMeters applies the response checks in contract order.
func (r *distanceMatrixResponse) distanceMeters() (float64, error) {
	if r.Status != statusOK {
		return 0, &domain.ServiceError{Status: r.Status, Message: r.ErrorMessage}
	}

	if len(r.Rows) == 0 || len(r.Rows[0].Elements) == 0 {
		return 0, domain.ErrMalformedResponse
	}

	element := r.Rows[0].Elements[0]
	if element.Status != statusOK {
		return 0, &domain.RouteUnavailableError{Status: element.Status}
	}

	if element.Distance == nil {
		return 0, domain.ErrMissingDistance
	}

	return element.Distance.Value, nil
}

// IsTimeout reports whether err is a routing transport timeout.
func IsTimeout(err error) bool {
	var te *domain.TransportError
	return errors.As(err, &te) && te.Timeout
}
