package distance

import (
	"context"
	"errors"
	"event-staffing-service/internal/domain"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (g *GoogleDistanceMatrix) newRequest(
	ctx context.Context,
	method string,
	endpoint string,
	query url.Values,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// do performs a single attempt; the routing contract forbids retries.
func (g *GoogleDistanceMatrix) do(req *http.Request) (*http.Response, error) {
	resp, err := g.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// transportError converts a failed attempt into the domain taxonomy. The
// request URL carries the API key, so it is stripped from url.Error.
func transportError(err error, endpoint string) error {
	var he *httpStatusError
	if errors.As(err, &he) {
		return &domain.TransportError{StatusCode: he.Code, Err: he}
	}

	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = endpoint
	}

	timeout := errors.Is(err, context.DeadlineExceeded)
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		timeout = true
	}

	return &domain.TransportError{Timeout: timeout, Err: err}
}
