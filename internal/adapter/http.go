package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/logger"
)

// maxResponseBody bounds how much of a callback response is kept
const maxResponseBody = 4 * 1024

// HTTPResponse is the outcome of a request that reached the remote server
type HTTPResponse struct {
	StatusCode int
	Body       []byte
}

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// Post sends body with the given headers. Any status code is returned to the caller;
	// only transport failures and 429 responses are retried, unless the policy disables retries.
	Post(ctx context.Context, url string, headers map[string]string, body []byte) (*HTTPResponse, error)
}

// RetryPolicy bounds the backoff applied to retryable failures.
// Disabled makes every Post a single attempt.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Disabled        bool
}

// NoRetry sends each request once and reports the first failure
var NoRetry = RetryPolicy{Disabled: true}

// DefaultRetryPolicy is used when NewHTTPClient receives a zero policy
var DefaultRetryPolicy = RetryPolicy{
	InitialInterval: 2 * time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  1 * time.Minute,
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
	policy RetryPolicy
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration, policy RetryPolicy) HTTPClient {
	if policy == (RetryPolicy{}) {
		policy = DefaultRetryPolicy
	}
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		policy: policy,
	}
}

var errRateLimited = errors.New("rate limited (429)")

// Post performs a POST request with exponential backoff on network errors and 429 responses
func (c *RealHTTPClient) Post(ctx context.Context, url string, headers map[string]string, body []byte) (*HTTPResponse, error) {
	var result *HTTPResponse

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", url))
			}
		}()

		if resp.StatusCode == http.StatusTooManyRequests {
			logger.Warn("rate limited", zap.String("url", url))
			return errRateLimited
		}

		respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		result = &HTTPResponse{StatusCode: resp.StatusCode, Body: respBody}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(c.backOff(), ctx)); err != nil {
		if errors.Is(err, errRateLimited) {
			return &HTTPResponse{StatusCode: http.StatusTooManyRequests}, nil
		}
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return result, nil
}

func (c *RealHTTPClient) backOff() backoff.BackOff {
	if c.policy.Disabled {
		return &backoff.StopBackOff{}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.policy.InitialInterval
	b.MaxInterval = c.policy.MaxInterval
	b.MaxElapsedTime = c.policy.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5
	return b
}
