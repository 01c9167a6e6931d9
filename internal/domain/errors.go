package domain

import "errors"

var (
	// ErrNotFound indicates the session does not exist
	ErrNotFound = errors.New("session not found")
	// ErrConflict indicates the session id is already taken
	ErrConflict = errors.New("session already exists")
	// ErrInvalidMessage indicates a malformed or oversized chat message
	ErrInvalidMessage = errors.New("invalid message")
	// ErrMissingCredential indicates no completion API credential was supplied
	ErrMissingCredential = errors.New("missing API key")
	// ErrPolicyBlocked indicates the message was rejected by moderation
	ErrPolicyBlocked = errors.New("message blocked by moderation")
	// ErrUpstream indicates the completion collaborator failed
	ErrUpstream = errors.New("completion request failed")
)
