package constants

import "time"

// Context keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"
)

// Headers
const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	BearerScheme        = "Bearer"
)

// Tokens
const (
	DefaultAccessTokenTTL = time.Hour
)

// Passwords
const (
	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// Tasks
const (
	SearchQueryParam = "q"
	// MaxDescriptionLength matches the tasks.description column width.
	MaxDescriptionLength = 255
)
