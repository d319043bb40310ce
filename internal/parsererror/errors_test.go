package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountNotFoundError(t *testing.T) {
	err := &AmountNotFoundError{Transcript: "halo dunia"}
	assert.Contains(t, err.Error(), "halo dunia")
}

func TestIsAmountNotFound(t *testing.T) {
	err := &AmountNotFoundError{Transcript: "halo"}
	assert.True(t, IsAmountNotFound(err))

	wrapped := fmt.Errorf("parse failed: %w", err)
	assert.True(t, IsAmountNotFound(wrapped))

	assert.False(t, IsAmountNotFound(errors.New("something else")))
	assert.False(t, IsAmountNotFound(nil))
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("bad digits")
	err := &ParseError{Stage: "amount", Value: "12..3", Err: cause}

	assert.Contains(t, err.Error(), "amount")
	assert.Contains(t, err.Error(), "12..3")
	assert.True(t, errors.Is(err, cause))
}
