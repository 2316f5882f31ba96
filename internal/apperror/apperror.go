// Package apperror defines the error kinds surfaced by the API and how each
// one maps onto an HTTP response.
package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// ErrorType categorises an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors
	UnknownError ErrorType = iota
	// NotFoundError means a referenced resource does not exist
	NotFoundError
	// ValidationError means a required input is missing or malformed
	ValidationError
	// ConflictError means a uniqueness rule was violated
	ConflictError
	// DatabaseError wraps a persistence failure
	DatabaseError
)

// AppError carries a user-facing message and the underlying cause.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error type. Conflicts share the
// 400 response with validation failures.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, ConflictError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func New(errType ErrorType, message string, err error) *AppError {
	return &AppError{Type: errType, Message: message, Err: err}
}

func NewNotFoundError(message string, err error) *AppError {
	return New(NotFoundError, message, err)
}

func NewValidationError(message string, err error) *AppError {
	return New(ValidationError, message, err)
}

func NewConflictError(message string, err error) *AppError {
	return New(ConflictError, message, err)
}

func NewDatabaseError(message string, err error) *AppError {
	return New(DatabaseError, message, err)
}

func is(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool { return is(err, NotFoundError) }

// IsValidationError checks if an error is a Validation error
func IsValidationError(err error) bool { return is(err, ValidationError) }

// IsConflictError checks if an error is a Conflict error
func IsConflictError(err error) bool { return is(err, ConflictError) }

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Write renders err as {"error": ...}. Client errors keep their own message;
// anything that ends up as a 500 is logged and replaced by fallback.
func Write(w http.ResponseWriter, err error, fallback string) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.StatusCode() != http.StatusInternalServerError {
		WriteJSON(w, appErr.StatusCode(), ErrorResponse{Error: appErr.Message})
		return
	}
	log.Printf("%s: %v", fallback, err)
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: fallback})
}
