package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the base interface for all application errors
type AppError interface {
	error
	HTTPStatus() int
	Code() string
}

// UnknownObjectError represents an object name absent from the schema registry
type UnknownObjectError struct {
	Object string
}

func (e *UnknownObjectError) Error() string {
	return fmt.Sprintf("unknown object '%s'", e.Object)
}

func (e *UnknownObjectError) HTTPStatus() int {
	return http.StatusNotFound
}

func (e *UnknownObjectError) Code() string {
	return "UNKNOWN_OBJECT"
}

// NewUnknownObjectError creates a new UnknownObjectError
func NewUnknownObjectError(object string) *UnknownObjectError {
	return &UnknownObjectError{Object: object}
}

// UnknownFieldError represents a field name absent from an object's fields
type UnknownFieldError struct {
	Object string
	Field  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field '%s' on object '%s'", e.Field, e.Object)
}

func (e *UnknownFieldError) HTTPStatus() int {
	return http.StatusNotFound
}

func (e *UnknownFieldError) Code() string {
	return "UNKNOWN_FIELD"
}

// NewUnknownFieldError creates a new UnknownFieldError
func NewUnknownFieldError(object, field string) *UnknownFieldError {
	return &UnknownFieldError{Object: object, Field: field}
}

// UnsupportedFieldSetMemberError represents a field set member that points at a related object's field
type UnsupportedFieldSetMemberError struct {
	Object    string
	FieldSet  string
	FieldPath string
}

func (e *UnsupportedFieldSetMemberError) Error() string {
	return fmt.Sprintf("field set '%s' on '%s' references related field '%s'; cross-object members are not supported",
		e.FieldSet, e.Object, e.FieldPath)
}

func (e *UnsupportedFieldSetMemberError) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

func (e *UnsupportedFieldSetMemberError) Code() string {
	return "UNSUPPORTED_FIELD_SET_MEMBER"
}

// NewUnsupportedFieldSetMemberError creates a new UnsupportedFieldSetMemberError
func NewUnsupportedFieldSetMemberError(object, fieldSet, fieldPath string) *UnsupportedFieldSetMemberError {
	return &UnsupportedFieldSetMemberError{Object: object, FieldSet: fieldSet, FieldPath: fieldPath}
}

// EmptyFieldSetError is returned when joining a field set that has no members
type EmptyFieldSetError struct {
	Object   string
	FieldSet string
}

func (e *EmptyFieldSetError) Error() string {
	return fmt.Sprintf("field set '%s' on '%s' has no members", e.FieldSet, e.Object)
}

func (e *EmptyFieldSetError) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

func (e *EmptyFieldSetError) Code() string {
	return "EMPTY_FIELD_SET"
}

// NewEmptyFieldSetError creates a new EmptyFieldSetError
func NewEmptyFieldSetError(object, fieldSet string) *EmptyFieldSetError {
	return &EmptyFieldSetError{Object: object, FieldSet: fieldSet}
}

// NotFoundError represents a resource that was not found
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with ID '%s' not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

func (e *NotFoundError) Code() string {
	return "NOT_FOUND"
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents invalid input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

func (e *ValidationError) Code() string {
	return "VALIDATION_ERROR"
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InternalError represents unexpected collaborator failures
type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("internal error: %s (caused by: %v)", e.Message, e.Cause)
	}
	return fmt.Sprintf("internal error: %s", e.Message)
}

func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

func (e *InternalError) Code() string {
	return "INTERNAL_ERROR"
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

// NewInternalError creates a new InternalError
func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{Message: message, Cause: cause}
}

// Helper functions for error checking

// IsUnknownObject checks if an error is an UnknownObjectError
func IsUnknownObject(err error) bool {
	var unknown *UnknownObjectError
	return errors.As(err, &unknown)
}

// IsUnknownField checks if an error is an UnknownFieldError
func IsUnknownField(err error) bool {
	var unknown *UnknownFieldError
	return errors.As(err, &unknown)
}

// IsUnsupportedFieldSetMember checks if an error is an UnsupportedFieldSetMemberError
func IsUnsupportedFieldSetMember(err error) bool {
	var unsupported *UnsupportedFieldSetMemberError
	return errors.As(err, &unsupported)
}

// IsEmptyFieldSet checks if an error is an EmptyFieldSetError
func IsEmptyFieldSet(err error) bool {
	var empty *EmptyFieldSetError
	return errors.As(err, &empty)
}

// GetHTTPStatus returns the HTTP status code for an error
// Returns 500 if the error doesn't implement AppError
func GetHTTPStatus(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// GetErrorCode returns the error code for an error
// Returns "UNKNOWN_ERROR" if the error doesn't implement AppError
func GetErrorCode(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Code()
	}
	return "UNKNOWN_ERROR"
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

// ToResponse converts an error to an ErrorResponse
func ToResponse(err error) ErrorResponse {
	return ErrorResponse{
		Code:    GetErrorCode(err),
		Message: err.Error(),
		Status:  GetHTTPStatus(err),
	}
}
