package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeMembership represents a member missing from the tree or graph
	ErrorTypeMembership ErrorType = "membership"
	// ErrorTypeRelationship represents cardinality and marriage rule violations
	ErrorTypeRelationship ErrorType = "relationship"
	// ErrorTypeGenderRole represents a relationship kind that does not fit a member's gender
	ErrorTypeGenderRole ErrorType = "gender_role"
	// ErrorTypeTree represents tree lifecycle errors
	ErrorTypeTree ErrorType = "tree"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Membership Errors

// Scope tells which existence check rejected a member.
type Scope string

const (
	// ScopeGraph is the adjacency-level check done before any edge is added
	ScopeGraph Scope = "graph"
	// ScopeTree is the registry-level check done by the tree facade
	ScopeTree Scope = "tree"
)

// ErrMemberNotRegistered is returned when a member has not been added to the tree
type ErrMemberNotRegistered struct {
	*BaseError
	MemberID int
	Name     string
	Scope    Scope
}

func NewMemberNotRegistered(memberID int, name string, scope Scope) *ErrMemberNotRegistered {
	who := fmt.Sprintf("member %d", memberID)
	if name != "" {
		who = fmt.Sprintf("%s (%s)", who, name)
	}
	return &ErrMemberNotRegistered{
		BaseError: NewBaseError(ErrorTypeMembership, fmt.Sprintf("%s is not in the %s", who, scope), nil),
		MemberID:  memberID,
		Name:      name,
		Scope:     scope,
	}
}

// Relationship Errors

// Reasons carried by ErrInvalidRelationship
const (
	ReasonDuplicate          = "duplicate"
	ReasonSameGenderMarriage = "same_gender_marriage"
	ReasonSelf               = "self"
	ReasonUnknownKind        = "unknown_kind"
)

// ErrInvalidRelationship is returned when a relationship conflicts with existing ones
type ErrInvalidRelationship struct {
	*BaseError
	MemberID int
	Name     string
	Kind     string
	Reason   string
}

func NewInvalidRelationship(memberID int, name, kind, reason string) *ErrInvalidRelationship {
	var msg string
	switch reason {
	case ReasonSameGenderMarriage:
		msg = fmt.Sprintf("member %d (%s): same-gender marriages are not allowed", memberID, name)
	case ReasonSelf:
		msg = fmt.Sprintf("member %d (%s) cannot be related to themselves", memberID, name)
	case ReasonUnknownKind:
		msg = fmt.Sprintf("member %d (%s): unknown relationship %q", memberID, name, kind)
	default:
		msg = fmt.Sprintf("member %d (%s): cannot add relationship %s, it conflicts with an existing relationship", memberID, name, kind)
	}
	return &ErrInvalidRelationship{
		BaseError: NewBaseError(ErrorTypeRelationship, msg, nil),
		MemberID:  memberID,
		Name:      name,
		Kind:      kind,
		Reason:    reason,
	}
}

// Gender Role Errors

// ErrInvalidGenderRole is returned when a member's gender does not fit the declared kind
type ErrInvalidGenderRole struct {
	*BaseError
	MemberID int
	Name     string
	Gender   string
	Expected string
	Kind     string
}

func NewInvalidGenderRole(memberID int, name, gender, expected, kind string) *ErrInvalidGenderRole {
	return &ErrInvalidGenderRole{
		BaseError: NewBaseError(ErrorTypeGenderRole,
			fmt.Sprintf("member %d (%s, %s) cannot be assigned role %s, expected a %s member", memberID, name, gender, kind, expected), nil),
		MemberID: memberID,
		Name:     name,
		Gender:   gender,
		Expected: expected,
		Kind:     kind,
	}
}

// Tree Errors

// ErrTreeNotEmpty is returned when the first-member bootstrap runs on a populated tree
type ErrTreeNotEmpty struct {
	*BaseError
	Size int
}

func NewTreeNotEmpty(size int) *ErrTreeNotEmpty {
	return &ErrTreeNotEmpty{
		BaseError: NewBaseError(ErrorTypeTree, fmt.Sprintf("tree already has %d members", size), nil),
		Size:      size,
	}
}

// Config Errors

// ErrConfigValidationFailed is returned when configuration validation fails
type ErrConfigValidationFailed struct {
	*BaseError
	Field  string
	Reason string
}

func NewConfigValidationFailed(field, reason string) *ErrConfigValidationFailed {
	return &ErrConfigValidationFailed{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("config validation failed: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// typed is satisfied by every error in this package through the embedded *BaseError.
type typed interface {
	errorType() ErrorType
}

func (e *BaseError) errorType() ErrorType {
	return e.Type
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	if t, ok := err.(typed); ok {
		return t.errorType() == errType
	}
	// Check wrapped errors
	if wrapped, ok := err.(interface{ Unwrap() error }); ok {
		return IsErrorType(wrapped.Unwrap(), errType)
	}
	return false
}
