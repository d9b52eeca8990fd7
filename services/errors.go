package services

import "errors"

// Sentinel errors handlers translate into HTTP statuses: conflicts map to 409,
// not-found to 404, credential and password failures to 401, the rest to 400/500.
var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email already exists")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrNotPending         = errors.New("product is not in Pending status and cannot be approved")
	ErrInvalidRole        = errors.New("invalid role, use 'admin' or 'user'")
)

// EventPublisher delivers a JSON-serializable event to every live connection
// of a user. A nil publisher is valid and means no real-time push.
type EventPublisher interface {
	PublishToUser(username string, event interface{})
}
