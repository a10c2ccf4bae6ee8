package services

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")

	// ErrInvalidArgument is wrapped by every input validation error below.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNameRequired        = fmt.Errorf("%w: name is required", ErrInvalidArgument)
	ErrEmailRequired       = fmt.Errorf("%w: email is required", ErrInvalidArgument)
	ErrPasswordRequired    = fmt.Errorf("%w: password is required", ErrInvalidArgument)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 72 bytes", ErrInvalidArgument)
	ErrDescriptionRequired = fmt.Errorf("%w: task description is required", ErrInvalidArgument)
	ErrDescriptionTooLong  = fmt.Errorf("%w: task description must be at most 255 characters", ErrInvalidArgument)
	ErrSearchTermRequired  = fmt.Errorf("%w: search term is required", ErrInvalidArgument)
)
