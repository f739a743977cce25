package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitErrorMessage(t *testing.T) {
	err := NewExitError(ExitCommandError, "bad flag")
	assert.Equal(t, "bad flag", err.Error())

	wrapped := WrapExitError(ExitFailure, "session failed", errors.New("boom"))
	assert.Equal(t, "session failed: boom", wrapped.Error())
	assert.Equal(t, "boom", errors.Unwrap(wrapped).Error())
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"command error", NewExitError(ExitCommandError, "bad flag"), ExitCommandError},
		{"failure", NewExitError(ExitFailure, "broken"), ExitFailure},
		{"wrapped exit error", fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "inner")), ExitCommandError},
		{"plain error", errors.New("plain"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, GetExitCode(tt.err))
		})
	}
}
