package server

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError represents a user-correctable problem with an upload
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError answered with the given HTTP status
func NewValidationError(status int, format string, args ...any) error {
	return &ValidationError{Status: status, Message: fmt.Sprintf(format, args...)}
}

// WriteError represents a storage fault while persisting an artifact
type WriteError struct {
	Zone       Zone
	ArtifactID string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s artifact %s: %v", e.Zone, e.ArtifactID, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError
func NewWriteError(zone Zone, artifactID string, err error) error {
	return &WriteError{Zone: zone, ArtifactID: artifactID, Err: err}
}

// JobError represents a failed run of the external transformation process
type JobError struct {
	ExitCode int
	Output   string
	TimedOut bool
	Err      error
}

func (e *JobError) Error() string {
	switch {
	case e.TimedOut:
		return "transformation timed out"
	case e.Err != nil && e.ExitCode == 0:
		return fmt.Sprintf("transformation failed: %v", e.Err)
	case e.Output != "":
		return fmt.Sprintf("transformation exited with code %d: %s", e.ExitCode, e.Output)
	default:
		return fmt.Sprintf("transformation exited with code %d", e.ExitCode)
	}
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// NewJobError creates a new JobError
func NewJobError(exitCode int, output string, timedOut bool, err error) error {
	return &JobError{ExitCode: exitCode, Output: output, TimedOut: timedOut, Err: err}
}

// NotFoundError represents a lookup of a missing or expired artifact
type NotFoundError struct {
	Zone       Zone
	ArtifactID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s artifact %s not found", e.Zone, e.ArtifactID)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(zone Zone, artifactID string) error {
	return &NotFoundError{Zone: zone, ArtifactID: artifactID}
}

// CleanupError represents a sweep that could not scan every zone
type CleanupError struct {
	Err error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("cleanup failed: %v", e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}

// NewCleanupError creates a new CleanupError
func NewCleanupError(err error) error {
	return &CleanupError{Err: err}
}

// statusForError maps the error taxonomy onto HTTP status codes
func statusForError(err error) int {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Status
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
