package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/damoang/angple-community/internal/common"
	"github.com/damoang/angple-community/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	remoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "community_remote_requests_total",
			Help: "Total number of calls to the remote community API",
		},
		[]string{"op", "status"},
	)

	remoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "community_remote_request_duration_seconds",
			Help:    "Remote community API call duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"op"},
	)
)

// maxErrorBody bounds how much of a failed response is read for logging
const maxErrorBody = 4 << 10

// NewHTTPClient returns the client used for remote calls, traced through otelhttp
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// remote holds what every remote call needs
type remote struct {
	baseURL    string
	cookieName string
	client     *http.Client
}

func (r *remote) newRequest(ctx context.Context, method, path string, body io.Reader, session *domain.Session) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if session != nil && session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
		req.AddCookie(&http.Cookie{Name: r.cookieName, Value: session.Token})
	}
	return req, nil
}

// do sends req and records metrics under op. Non-2xx answers are returned as
// *common.RemoteStatusError with the body drained and closed.
func (r *remote) do(op string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := r.client.Do(req)
	remoteRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		remoteRequestsTotal.WithLabelValues(op, "error").Inc()
		return nil, err
	}
	remoteRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, &common.RemoteStatusError{Op: op, Status: resp.StatusCode}
	}
	return resp, nil
}

// getJSON performs a GET and decodes the JSON answer into dest
func (r *remote) getJSON(ctx context.Context, op, path string, session *domain.Session, dest interface{}) error {
	req, err := r.newRequest(ctx, http.MethodGet, path, nil, session)
	if err != nil {
		return err
	}
	resp, err := r.do(op, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}
	return nil
}

// send performs a state-changing request and returns the (bounded) answer body
func (r *remote) send(ctx context.Context, op, method, path string, body io.Reader, contentType string, session *domain.Session) ([]byte, error) {
	req, err := r.newRequest(ctx, method, path, body, session)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := r.do(op, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
}

func isStatus(err error, status int) bool {
	var se *common.RemoteStatusError
	return errors.As(err, &se) && se.Status == status
}
