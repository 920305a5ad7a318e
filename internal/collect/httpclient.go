package collect

import (
	"log/slog"
	"time"

	"resty.dev/v3"
)

// RetryProfile tunes a backend client's retry behavior. Backends throttle
// very differently, so each one picks the profile matching its limits instead
// of sharing a single backoff.
type RetryProfile struct {
	Count   int
	Wait    time.Duration
	MaxWait time.Duration
}

// QuoteRetryProfile returns the retry profile for the quote backend: quick
// retries, it tolerates bursts.
func QuoteRetryProfile() RetryProfile {
	return RetryProfile{
		Count:   3,
		Wait:    1 * time.Second,
		MaxWait: 10 * time.Second,
	}
}

// TrendsRetryProfile returns the retry profile for the trends backend, which
// throttles aggressively: fewer attempts with longer waits.
func TrendsRetryProfile() RetryProfile {
	return RetryProfile{
		Count:   2,
		Wait:    5 * time.Second,
		MaxWait: 30 * time.Second,
	}
}

// NewHTTPClient creates the HTTP client a collection backend uses: JSON
// accept header, retry with exponential backoff per the given profile.
func NewHTTPClient(baseURL string, profile RetryProfile) *resty.Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(profile.Count).
		SetRetryWaitTime(profile.Wait).
		SetRetryMaxWaitTime(profile.MaxWait).
		AddRetryConditions(retryCondition).
		AddRetryHooks(retryHook)

	return client
}

// retryCondition determines whether a request should be retried based on the response and error
func retryCondition(r *resty.Response, err error) bool {
	// Retry on network errors
	if err != nil {
		return true
	}

	// Retry on server errors (5xx), rate limit (429) and request timeout (408)
	if r.StatusCode() >= 500 {
		return true
	}
	if r.StatusCode() == 429 || r.StatusCode() == 408 {
		return true
	}

	return false
}

// retryHook logs retry attempts for observability
func retryHook(r *resty.Response, err error) {
	if err != nil {
		slog.Debug("retrying request due to error",
			"url", r.Request.URL,
			"attempt", r.Request.Attempt,
			"error", err.Error())
		return
	}

	slog.Debug("retrying request due to status code",
		"url", r.Request.URL,
		"attempt", r.Request.Attempt,
		"status_code", r.StatusCode())
}
