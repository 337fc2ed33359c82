/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotPoddable is returned when a type was never marked as participating
	ErrNotPoddable = errors.New("class is not poddable")

	// ErrNotFound is returned when a pod or class cannot be located
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrRegistryInconsistent is returned when a pod's class label no longer
	// matches any registered class; this is a fatal invariant violation
	ErrRegistryInconsistent = errors.New("registry inconsistency")

	// ErrInitFailed is returned when a class initializer fails during
	// construction or conversion
	ErrInitFailed = errors.New("initializer failed")
)

// NotPoddableError represents an error when a type does not participate
type NotPoddableError struct {
	Type string
}

func (e *NotPoddableError) Error() string {
	return fmt.Sprintf("type %s is not poddable", e.Type)
}

func (e *NotPoddableError) Is(target error) bool {
	return target == ErrNotPoddable
}

// NotFoundError represents an error when a pod or class is not found
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// RegistryInconsistencyError represents a pod whose class label does not match
// any registered class. Conversions never recover from this condition.
type RegistryInconsistencyError struct {
	Type   string
	Detail string
}

func (e *RegistryInconsistencyError) Error() string {
	return fmt.Sprintf("registry inconsistency for type %s: %s", e.Type, e.Detail)
}

func (e *RegistryInconsistencyError) Is(target error) bool {
	return target == ErrRegistryInconsistent
}

// InitError wraps a failure from a class initializer
type InitError struct {
	Class string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializer for class %s failed: %v", e.Class, e.Err)
}

func (e *InitError) Is(target error) bool {
	return target == ErrInitFailed
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewNotPoddableError creates a new NotPoddableError
func NewNotPoddableError(typeName string) error {
	return &NotPoddableError{Type: typeName}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewRegistryInconsistencyError creates a new RegistryInconsistencyError
func NewRegistryInconsistencyError(typeName, detail string) error {
	return &RegistryInconsistencyError{Type: typeName, Detail: detail}
}

// NewInitError creates a new InitError wrapping the initializer failure
func NewInitError(class string, err error) error {
	return &InitError{Class: class, Err: err}
}

// IsNotPoddable checks if an error is a not poddable error
func IsNotPoddable(err error) bool {
	return errors.Is(err, ErrNotPoddable)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRegistryInconsistent checks if an error is a registry inconsistency error
func IsRegistryInconsistent(err error) bool {
	return errors.Is(err, ErrRegistryInconsistent)
}

// IsInitFailed checks if an error is an initializer failure
func IsInitFailed(err error) bool {
	return errors.Is(err, ErrInitFailed)
}
