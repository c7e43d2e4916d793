package service

import "errors"

// Business-rule outcomes returned by the services. The handler layer maps
// each to a response status; repository sentinels pass through unchanged.
var (
	// ErrNotTaskOwner is returned when a visible task is mutated by a
	// non-owner in an owner-only way
	ErrNotTaskOwner = errors.New("only the task owner may perform this action")

	// ErrUserNotFound is returned when the target user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyParticipant is returned on a duplicate invite
	ErrAlreadyParticipant = errors.New("user already participates in this task")

	// ErrNotAParticipant is returned when removing a user who does not participate
	ErrNotAParticipant = errors.New("user is not a participant of this task")

	// ErrOwnerParticipant is returned when the owner is invited to their own task
	ErrOwnerParticipant = errors.New("task owner cannot be added as a participant")
)
