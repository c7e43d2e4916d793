package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when a task is absent or not visible to the caller
	ErrTaskNotFound = errors.New("task not found")

	// ErrLabelNotFound is returned when a label is not found
	ErrLabelNotFound = errors.New("label not found")

	// ErrDuplicateEmail is returned when the email unique constraint is violated
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateLabelName is returned when the label name unique constraint is violated
	ErrDuplicateLabelName = errors.New("label name already exists")

	// ErrDuplicateParticipant is returned when the participant edge already exists
	ErrDuplicateParticipant = errors.New("user already participates in task")

	// ErrParticipantNotFound is returned when the participant edge does not exist
	ErrParticipantNotFound = errors.New("user is not a participant of task")
)
