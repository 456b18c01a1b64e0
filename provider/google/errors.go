package google

import (
	"errors"

	"github.com/loomlight/weft"
	"google.golang.org/genai"
)

// wrapError wraps a Google GenAI error with weft error categorization.
// genai.APIError does not expose response headers, so Retry-After is not
// available.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		// Not an API error, likely a network failure.
		return err
	}

	code := apiErr.Code
	msg := err.Error()

	switch categorizeStatusCode(code) {
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
