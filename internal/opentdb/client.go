package opentdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const (
	DefaultBaseURL          = "https://opentdb.com"
	DefaultMaxRetryAttempts = 3
)

// Query selects the questions to fetch. Zero values are omitted from the request.
type Query struct {
	Amount     int
	Category   int
	Difficulty string
	Type       string
}

type ClientConfig struct {
	BaseURL          string
	Timeout          time.Duration
	MaxRetryAttempts uint
	// RetryDelay is the base delay of the exponential back-off.
	RetryDelay time.Duration
}

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func NewClient(config ClientConfig) *Client {
	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetHeader("Accept", "application/json")
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}

	retryDelay := config.RetryDelay
	if retryDelay <= 0 {
		retryDelay = time.Second
	}
	return &Client{
		httpClient:       client,
		maxRetryAttempts: config.MaxRetryAttempts,
		retryDelay:       retryDelay,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// FetchQuestions returns the results of one batch as the server sent them.
// The returned error wraps ErrEmptyResult or ErrTransportFailure.
func (client *Client) FetchQuestions(ctx context.Context, query Query) ([]Result, error) {
	var results []Result
	err := retry.Do(
		func() error {
			response, err := client.fetchQuestions(ctx, query)
			if err != nil {
				var retryable *retryableError
				if errors.As(err, &retryable) {
					return retryable.err
				}
				return retry.Unrecoverable(err)
			}
			results = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying Open Trivia DB request",
				"attempt", n+1,
				"amount", query.Amount,
				"category", query.Category,
				"lastError", err)
		}),
	)
	if err != nil {
		if !errors.Is(err, ErrEmptyResult) && !errors.Is(err, ErrTransportFailure) {
			// context errors from the retry loop itself
			return nil, fmt.Errorf("%w: %w", ErrTransportFailure, err)
		}
		return nil, err
	}
	return results, nil
}

// retryableError marks an error from a single attempt that is worth retrying.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func (client *Client) fetchQuestions(ctx context.Context, query Query) ([]Result, error) {
	request := client.httpClient.R().
		SetContext(ctx)
	if query.Amount > 0 {
		request.SetQueryParam("amount", strconv.Itoa(query.Amount))
	}
	if query.Category > 0 {
		request.SetQueryParam("category", strconv.Itoa(query.Category))
	}
	if query.Difficulty != "" {
		request.SetQueryParam("difficulty", query.Difficulty)
	}
	if query.Type != "" {
		request.SetQueryParam("type", query.Type)
	}

	response, err := request.Get("/api.php")
	if err != nil {
		err = fmt.Errorf("%w: httpClient.Get > %w", ErrTransportFailure, err)
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, &retryableError{err: err}
	}
	if response.IsError() {
		err := fmt.Errorf("%w: response error %d: %s", ErrTransportFailure, response.StatusCode(), response.String())
		if response.StatusCode() >= http.StatusInternalServerError || response.StatusCode() == http.StatusTooManyRequests {
			return nil, &retryableError{err: err}
		}
		return nil, err
	}

	var body questionsResponse
	if err := json.Unmarshal([]byte(response.String()), &body); err != nil {
		return nil, fmt.Errorf("%w: json.Unmarshal > %w", ErrTransportFailure, err)
	}
	slog.Default().Debug("open trivia db response",
		"responseCode", body.ResponseCode,
		"query", query,
	)

	if body.ResponseCode == nil {
		return nil, fmt.Errorf("%w: response code is missing", ErrEmptyResult)
	}
	if code := *body.ResponseCode; code != ResponseCodeSuccess {
		err := fmt.Errorf("%w: response code %d (%s)", ErrEmptyResult, code, code)
		if code == ResponseCodeRateLimit {
			return nil, &retryableError{err: err}
		}
		return nil, err
	}

	results, ok := decodeResults(body.Results)
	if !ok {
		return nil, fmt.Errorf("%w: results is not a list", ErrEmptyResult)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: results is empty", ErrEmptyResult)
	}
	return results, nil
}
