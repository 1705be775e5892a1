package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	assert "github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"missing file", NewValidationError(http.StatusBadRequest, "No video file provided"), http.StatusBadRequest},
		{"too large", NewValidationError(http.StatusRequestEntityTooLarge, "File too large"), http.StatusRequestEntityTooLarge},
		{"wrapped validation", fmt.Errorf("upload: %w", NewValidationError(http.StatusUnsupportedMediaType, "nope")), http.StatusUnsupportedMediaType},
		{"not found", NewNotFoundError(ZoneOutbound, "abc"), http.StatusNotFound},
		{"write", NewWriteError(ZoneInbound, "abc", errors.New("disk full")), http.StatusInternalServerError},
		{"job", NewJobError(1, "boom", false, nil), http.StatusInternalServerError},
		{"cleanup", NewCleanupError(errors.New("permission denied")), http.StatusInternalServerError},
		{"plain", errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusForError(tt.err))
		})
	}
}

func TestJobError_Error(t *testing.T) {
	assert.Equal(t, "transformation timed out", NewJobError(-1, "", true, nil).Error())
	assert.Equal(t, "transformation exited with code 2: bad input", NewJobError(2, "bad input", false, nil).Error())
	assert.Equal(t, "transformation exited with code 2", NewJobError(2, "", false, nil).Error())
	assert.Equal(t, "transformation failed: exec: not found", NewJobError(0, "", false, errors.New("exec: not found")).Error())
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("disk full")

	assert.ErrorIs(t, NewWriteError(ZoneInbound, "abc", cause), cause)
	assert.ErrorIs(t, NewJobError(1, "", false, cause), cause)
	assert.ErrorIs(t, NewCleanupError(cause), cause)
}
