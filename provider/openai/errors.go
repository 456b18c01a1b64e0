package openai

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/loomlight/weft"
	"github.com/openai/openai-go"
)

// wrapError wraps an OpenAI SDK error with weft error categorization.
// It extracts status codes and Retry-After headers so callers can build
// retry policies on top of the provider.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		// Not an API error, likely a network failure.
		return err
	}

	code := apiErr.StatusCode
	category := categorizeStatusCode(code)
	retryAfter := parseRetryAfter(apiErr.Response)

	msg := err.Error()
	if retryAfter > 0 {
		return weft.NewTransientErrorWithRetry(msg, code, retryAfter, err)
	}

	switch category {
	case weft.ErrorTransient:
		return weft.NewTransientError(msg, code, err)
	case weft.ErrorPermanent:
		return weft.NewPermanentError(msg, code, err)
	case weft.ErrorUserInput:
		return weft.NewUserInputError(msg, code, err)
	default:
		return err
	}
}

// categorizeStatusCode determines the error category from an HTTP status code.
func categorizeStatusCode(code int) weft.ErrorCategory {
	switch {
	case code == 429:
		return weft.ErrorTransient
	case code >= 500 && code < 600:
		return weft.ErrorTransient
	case code == 401 || code == 403:
		return weft.ErrorPermanent
	case code == 400 || code == 404 || code == 422:
		return weft.ErrorUserInput
	default:
		return weft.ErrorPermanent
	}
}

// parseRetryAfter extracts the Retry-After duration from an HTTP response.
// Returns 0 if the header is not present or cannot be parsed.
func parseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(header); err == nil {
		delay := time.Until(t)
		if delay > 0 {
			return delay
		}
	}

	return 0
}
