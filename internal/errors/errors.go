// Package errors provides centralized error definitions and error handling
// utilities for the underlords codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent failed roster mutations:
//   - CapacityError: a change would push the roster past its hero limit
//   - CompositionError: a claimed alliance level cannot be satisfied by the
//     heroes actually available to it
//
// Semantic errors represent common error conditions:
//   - NotFoundError: a hero or alliance name is unknown
//   - AlreadyExistsError: a duplicate name in the data file
//   - ValidationError: invalid input, configuration, or data
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewCapacityError("Savage", 12, 10).WithOverlap([]string{"Magnus"})
//
//	// Semantic error
//	err := errors.NewNotFoundError("hero", "Axe")
//
// Checking errors:
//
//	// Check for specific sentinel errors
//	if errors.Is(err, errors.ErrTeamCapacity) { ... }
//
//	// Check for error types
//	var capErr *errors.CapacityError
//	if errors.As(err, &capErr) { ... }
//
//	// Use classification helpers
//	if errors.IsRecoverable(err) { ... }
//	if errors.IsUserFacing(err) { ... }
//
// # Error Classification
//
// Errors can be classified by severity and behavior:
//   - Recoverable: the mutation was rolled back and the caller may simply try
//     a different candidate (capacity and composition failures are recoverable)
//   - UserFacing: errors safe to display to users (vs internal errors)
//   - Severity: Debug, Info, Warning, Error, Critical
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Roster-related sentinel errors
var (
	// ErrTeamCapacity indicates that a mutation would exceed the roster's hero limit.
	ErrTeamCapacity = New("team capacity exceeded")
	// ErrComposition indicates that a claimed alliance level cannot be backed
	// by enough eligible heroes.
	ErrComposition = New("alliance composition unsatisfiable")
)

// Data-related sentinel errors
var (
	// ErrDataCorrupted indicates that the hero data file could not be decoded.
	ErrDataCorrupted = New("hero data corrupted")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// RosterError is the base interface for all underlords errors.
// It extends the standard error interface with additional methods for
// error handling and classification.
type RosterError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	// This is used by errors.Is() for error comparison.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRecoverable returns true if the failed operation rolled back cleanly
	// and the caller can continue with a different candidate.
	IsRecoverable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message     string
	cause       error
	severity    Severity
	recoverable bool
	userFacing  bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRecoverable returns whether the operation rolled back and can be retried
// with different arguments.
func (e *baseError) IsRecoverable() bool {
	return e.recoverable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// CapacityError reports a mutation that would push the roster past its hero
// limit. The team is unchanged when it is returned.
//
// Example:
//
//	err := errors.NewCapacityError("Savage", 12, 10).WithOverlap([]string{"Magnus"})
//	fmt.Println(err) // "capacity error [alliance=Savage, required=12, limit=10, overlap=Magnus]: ..."
type CapacityError struct {
	baseError
	// Alliance is the alliance whose level claim did not fit, empty for
	// direct hero additions.
	Alliance string
	// Hero is the hero that did not fit, empty for alliance level claims.
	Hero string
	// Required is the smallest roster size any candidate level would have needed.
	Required int
	// Limit is the roster's hero limit.
	Limit int
	// Overlap names the shared heroes that reduced the requirement but still
	// could not make it fit.
	Overlap []string
}

// NewCapacityError creates a new CapacityError for an alliance level claim.
func NewCapacityError(alliance string, required, limit int) *CapacityError {
	return &CapacityError{
		baseError: baseError{
			message:     "not enough roster slots",
			cause:       ErrTeamCapacity,
			severity:    SeverityWarning,
			recoverable: true,
			userFacing:  true,
		},
		Alliance: alliance,
		Required: required,
		Limit:    limit,
	}
}

// NewHeroCapacityError creates a CapacityError for a direct hero addition.
func NewHeroCapacityError(hero string, required, limit int) *CapacityError {
	e := NewCapacityError("", required, limit)
	e.Hero = hero
	return e
}

// WithOverlap records the shared heroes counted toward the failed claim.
func (e *CapacityError) WithOverlap(names []string) *CapacityError {
	e.Overlap = names
	return e
}

// WithSeverity sets the error severity.
func (e *CapacityError) WithSeverity(s Severity) *CapacityError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *CapacityError) Error() string {
	var parts []string
	if e.Alliance != "" {
		parts = append(parts, fmt.Sprintf("alliance=%s", e.Alliance))
	}
	if e.Hero != "" {
		parts = append(parts, fmt.Sprintf("hero=%s", e.Hero))
	}
	parts = append(parts, fmt.Sprintf("required=%d", e.Required), fmt.Sprintf("limit=%d", e.Limit))
	if len(e.Overlap) > 0 {
		parts = append(parts, fmt.Sprintf("overlap=%s", strings.Join(e.Overlap, "+")))
	}

	return fmt.Sprintf("capacity error [%s]: %s", strings.Join(parts, ", "), e.message)
}

// Is checks if this error matches the target.
func (e *CapacityError) Is(target error) bool {
	if _, ok := target.(*CapacityError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// Shortfall identifies which hero pool of an alliance came up short.
type Shortfall int

const (
	// ShortfallOutstanding means too few heroes remain outside the roster to
	// ever finish the claimed level.
	ShortfallOutstanding Shortfall = iota
	// ShortfallMixed means too few unconfirmed roster heroes remain to cover
	// the alliance's share of the mixed pool.
	ShortfallMixed
)

// String returns the string representation of the shortfall kind.
func (s Shortfall) String() string {
	switch s {
	case ShortfallOutstanding:
		return "outstanding"
	case ShortfallMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// CompositionError reports a claimed alliance level that the remaining heroes
// cannot satisfy. The mutation that detected it has been rolled back.
//
// Example:
//
//	err := errors.NewCompositionError("Knight", errors.ShortfallOutstanding, 4, available)
type CompositionError struct {
	baseError
	// Alliance is the alliance whose claim is unsatisfiable.
	Alliance string
	// Kind says which pool fell short.
	Kind Shortfall
	// Need is how many heroes the claim still requires.
	Need int
	// Available names the heroes that remain eligible.
	Available []string
}

// NewCompositionError creates a new CompositionError.
func NewCompositionError(alliance string, kind Shortfall, need int, available []string) *CompositionError {
	return &CompositionError{
		baseError: baseError{
			message:     fmt.Sprintf("not enough %s heroes to back the claimed level", kind),
			cause:       ErrComposition,
			severity:    SeverityWarning,
			recoverable: true,
			userFacing:  true,
		},
		Alliance:  alliance,
		Kind:      kind,
		Need:      need,
		Available: available,
	}
}

// WithSeverity sets the error severity.
func (e *CompositionError) WithSeverity(s Severity) *CompositionError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *CompositionError) Error() string {
	parts := []string{
		fmt.Sprintf("alliance=%s", e.Alliance),
		fmt.Sprintf("need=%d", e.Need),
	}
	if len(e.Available) > 0 {
		parts = append(parts, fmt.Sprintf("have=%s", strings.Join(e.Available, "+")))
	} else {
		parts = append(parts, "have=none")
	}

	return fmt.Sprintf("composition error [%s]: %s", strings.Join(parts, ", "), e.message)
}

// Is checks if this error matches the target.
func (e *CompositionError) Is(target error) bool {
	if _, ok := target.(*CompositionError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("alliance", "Savage")
//	fmt.Println(err) // "alliance 'Savage' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:     fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:    SeverityWarning,
			recoverable: false,
			userFacing:  true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// AlreadyExistsError represents a resource that already exists, typically a
// duplicate name in the hero data file.
//
// Example:
//
//	err := errors.NewAlreadyExistsError("hero", "Axe")
//	fmt.Println(err) // "hero 'Axe' already exists"
type AlreadyExistsError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewAlreadyExistsError creates a new AlreadyExistsError.
func NewAlreadyExistsError(resourceType, resourceID string) *AlreadyExistsError {
	return &AlreadyExistsError{
		baseError: baseError{
			message:     fmt.Sprintf("%s '%s' already exists", resourceType, resourceID),
			severity:    SeverityWarning,
			recoverable: false,
			userFacing:  true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *AlreadyExistsError) WithCause(cause error) *AlreadyExistsError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *AlreadyExistsError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' already exists: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' already exists", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *AlreadyExistsError) Is(target error) bool {
	if _, ok := target.(*AlreadyExistsError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("limit must be positive")
//	err = err.WithField("limit").WithValue(-1)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:     message,
			severity:    SeverityWarning,
			recoverable: false,
			userFacing:  true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRecoverable returns true if the error represents a cleanly rolled-back
// mutation that the caller may retry with a different candidate. This checks
// for:
//   - Errors implementing RosterError with IsRecoverable() returning true
//   - Errors wrapping ErrTeamCapacity or ErrComposition
//
// Example:
//
//	if errors.IsRecoverable(err) {
//	    continue // try the next alliance
//	}
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}

	var rosterErr RosterError
	if As(err, &rosterErr) {
		return rosterErr.IsRecoverable()
	}

	return Is(err, ErrTeamCapacity) || Is(err, ErrComposition)
}

// IsUserFacing returns true if the error message is safe to display to end users.
// This checks for:
//   - Errors implementing RosterError with IsUserFacing() returning true
//   - Semantic errors (NotFoundError, AlreadyExistsError, ValidationError)
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    displayToUser(err.Error())
//	} else {
//	    displayToUser("An internal error occurred")
//	    log.Error("internal error", "err", err)
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var rosterErr RosterError
	if As(err, &rosterErr) {
		return rosterErr.IsUserFacing()
	}

	var notFound *NotFoundError
	var alreadyExists *AlreadyExistsError
	var validation *ValidationError

	if As(err, &notFound) || As(err, &alreadyExists) || As(err, &validation) {
		return true
	}

	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement RosterError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var rosterErr RosterError
	if As(err, &rosterErr) {
		return rosterErr.Severity()
	}

	return SeverityError
}

// IsDomainError returns true if the error is a roster mutation failure
// (CapacityError or CompositionError).
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}

	var capacity *CapacityError
	var composition *CompositionError

	return As(err, &capacity) || As(err, &composition)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
// Unlike fmt.Errorf with %w, this reads naturally at call sites that already
// import this package.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to load data file")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "failed to resolve hero %s", name)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
