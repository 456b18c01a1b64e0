package weft

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrNilClient(t *testing.T) {
	t.Run("is a sentinel error", func(t *testing.T) {
		assert.Error(t, ErrNilClient)
		assert.True(t, errors.Is(ErrNilClient, ErrNilClient))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error names schema and field", func(t *testing.T) {
		err := &ValidationError{Schema: "chat_output", Field: "chat_message", Message: "missing required field"}
		assert.Equal(t, `weft: schema "chat_output": field "chat_message": missing required field`, err.Error())
	})

	t.Run("Error without field names only the schema", func(t *testing.T) {
		err := &ValidationError{Schema: "chat_output", Message: "payload is not a JSON object"}
		assert.Equal(t, `weft: schema "chat_output": payload is not a JSON object`, err.Error())
	})

	t.Run("detected through wrapping", func(t *testing.T) {
		err := fmt.Errorf("run failed: %w", &ValidationError{Schema: "s", Message: "m"})
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(errors.New("other")))
	})
}

func TestCategorizedError(t *testing.T) {
	t.Run("transient with retry delay", func(t *testing.T) {
		cause := errors.New("429 too many requests")
		err := NewTransientErrorWithRetry("rate limited", 429, 30*time.Second, cause)

		assert.Equal(t, ErrorTransient, err.Category())
		assert.Equal(t, 429, err.StatusCode())
		assert.Equal(t, 30*time.Second, err.RetryAfter())
		assert.Equal(t, "rate limited: 429 too many requests", err.Error())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("permanent", func(t *testing.T) {
		err := NewPermanentError("invalid api key", 401, nil)
		assert.Equal(t, ErrorPermanent, err.Category())
		assert.Equal(t, "invalid api key", err.Error())
		assert.True(t, IsPermanent(err))
		assert.False(t, IsTransient(err))
	})

	t.Run("user input", func(t *testing.T) {
		err := NewUserInputError("bad request", 400, nil)
		assert.Equal(t, ErrorUserInput, err.Category())
		assert.False(t, IsTransient(err))
		assert.False(t, IsPermanent(err))
	})

	t.Run("category helpers see through wrapping", func(t *testing.T) {
		err := fmt.Errorf("complete: %w", NewTransientError("overloaded", 503, nil))
		assert.True(t, IsTransient(err))
	})

	t.Run("plain errors are uncategorized", func(t *testing.T) {
		err := errors.New("dial tcp: connection refused")
		assert.False(t, IsTransient(err))
		assert.False(t, IsPermanent(err))
	})
}
