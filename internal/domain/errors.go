package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrNoAvailableTickets = errors.New("not enough tickets available")
	ErrEventNotPublished  = errors.New("event is not published")
	ErrBookingNotPending  = errors.New("booking is not in pending status")
	ErrBookingExpired     = errors.New("booking has expired")
)

var (
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("not authorized")
	ErrForbidden          = errors.New("forbidden")
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrTicketTypeNotFound = fmt.Errorf("%w: ticket type not found", ErrValidation)
)
