package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when user is not authenticated
	ErrUnauthorized = errors.New("unauthorized")

	// ErrLeadNotFound is returned when a lead is not found
	ErrLeadNotFound = errors.New("lead not found")

	// ErrCompanyNotFound is returned when no lead belongs to the company key
	ErrCompanyNotFound = errors.New("company not found")

	// ErrInvalidStatus is returned when a status is outside the lead status enumeration
	ErrInvalidStatus = errors.New("invalid lead status")
)
