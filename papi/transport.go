package papi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/DarienLibrary/PolarisAPI/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request is a fully signed request descriptor, ready for transmission.
// Operation names the catalog entry for logging and metrics only; it is not
// part of the wire contract.
type Request struct {
	Operation string
	Method    string
	URL       string
	Header    http.Header
	Body      []byte
}

// Response is the raw result of an exchange. The client never interprets the
// status code: a signature the server rejected comes back here as the
// server's own authentication error payload, not as a Go error.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Transport performs the HTTP exchange for a signed request. It owns
// connection lifecycle and any timeout policy; the client applies no retries
// on top. Sharing one Client across goroutines requires a Transport that is
// safe for concurrent use.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// DefaultTimeout bounds each exchange made by the built-in transport.
const DefaultTimeout = 30 * time.Second

// HTTPTransport is the default Transport: a single *http.Client reused for
// every call. *http.Client is safe for concurrent use, so one Client backed
// by an HTTPTransport may be shared across goroutines.
type HTTPTransport struct {
	client *http.Client
	logger *zap.Logger
}

// NewHTTPTransport builds the default transport. A non-positive timeout
// falls back to DefaultTimeout; a nil logger disables logging.
func NewHTTPTransport(timeout time.Duration, logger *zap.Logger) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPTransport{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Do sends the signed request unchanged and returns the raw response.
// Network, TLS and timeout failures come back as transport errors; non-2xx
// statuses do not.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, errors.WrapTransportError(err, "request construction failed", req.Operation)
	}
	httpReq.Header = req.Header.Clone()
	// net/http transmits Content-Length from the request field and ignores
	// the header map entry; keep the two in sync with the signed descriptor.
	httpReq.ContentLength = int64(len(req.Body))

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := t.client.Do(httpReq)
	if err != nil {
		requestsTotal.WithLabelValues(req.Operation, req.Method, "error").Inc()
		requestDuration.WithLabelValues(req.Operation).Observe(time.Since(start).Seconds())
		t.logger.Error("papi exchange failed",
			zap.String("request_id", requestID),
			zap.String("operation", req.Operation),
			zap.Error(err))
		return nil, errors.WrapTransportError(err, "http exchange failed", req.Operation)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(req.Operation, req.Method, "error").Inc()
		requestDuration.WithLabelValues(req.Operation).Observe(time.Since(start).Seconds())
		return nil, errors.WrapTransportError(err, "response read failed", req.Operation)
	}

	elapsed := time.Since(start)
	requestsTotal.WithLabelValues(req.Operation, req.Method, statusClass(resp.StatusCode)).Inc()
	requestDuration.WithLabelValues(req.Operation).Observe(elapsed.Seconds())
	t.logger.Debug("papi exchange complete",
		zap.String("request_id", requestID),
		zap.String("operation", req.Operation),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed))

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
