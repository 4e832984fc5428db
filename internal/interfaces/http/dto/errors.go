package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	ErrCodeValidation       = "ERR_VALIDATION"
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	ErrCodeValidationRange  = "ERR_VALIDATION_RANGE"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	ErrCodeConflict      = "ERR_CONFLICT"
)

// Business rule error codes
const (
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodeScoringLocked is returned when a score arrives past the group's lock time
	ErrCodeScoringLocked = "ERR_SCORING_LOCKED"
	// ErrCodeDefenseAssigned is returned when a group is already linked to another defense
	ErrCodeDefenseAssigned = "ERR_DEFENSE_ASSIGNED"
)

// Input error codes
const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 422 Unprocessable Entity
	ErrCodeValidation:       http.StatusUnprocessableEntity,
	ErrCodeValidationFormat: http.StatusUnprocessableEntity,
	ErrCodeValidationRange:  http.StatusUnprocessableEntity,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	// Business rule errors
	ErrCodeInvalidState:    http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:    http.StatusUnprocessableEntity,
	ErrCodeScoringLocked:   http.StatusForbidden,
	ErrCodeDefenseAssigned: http.StatusConflict,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to transport codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":              ErrCodeNotFound,
	"ALREADY_EXISTS":         ErrCodeAlreadyExists,
	"INVALID_INPUT":          ErrCodeValidation,
	"INVALID_STATE":          ErrCodeInvalidState,
	"ALREADY_ACTIVE":         ErrCodeInvalidState,
	"ALREADY_INACTIVE":       ErrCodeInvalidState,
	"UNAUTHORIZED":           ErrCodeUnauthorized,
	"INVALID_CREDENTIALS":    ErrCodeUnauthorized,
	"FORBIDDEN":              ErrCodeForbidden,
	"ACCOUNT_INACTIVE":       ErrCodeForbidden,
	"SCORING_LOCKED":         ErrCodeScoringLocked,
	"GROUP_ALREADY_ASSIGNED": ErrCodeDefenseAssigned,
	"BAD_REQUEST":            ErrCodeBadRequest,
	"INTERNAL_ERROR":         ErrCodeInternal,
	"HASH_FAILED":            ErrCodeInternal,

	// Field-level constructor violations all map to the validation code
	"INVALID_CODE":       ErrCodeValidation,
	"INVALID_DATE":       ErrCodeValidation,
	"INVALID_DEFENSE":    ErrCodeValidation,
	"INVALID_DEF_STATUS": ErrCodeValidation,
	"INVALID_EMAIL":      ErrCodeValidation,
	"INVALID_GROUP":      ErrCodeValidation,
	"INVALID_LECTURER":   ErrCodeValidation,
	"INVALID_NAME":       ErrCodeValidation,
	"INVALID_PASSWORD":   ErrCodeValidation,
	"INVALID_POINT":      ErrCodeValidation,
	"INVALID_ROLE":       ErrCodeValidation,
	"INVALID_TIME":       ErrCodeValidation,
	"INVALID_TITLE":      ErrCodeValidation,
	"INVALID_TOPIC":      ErrCodeValidation,
	"INVALID_USERNAME":   ErrCodeValidation,
}

// NormalizeErrorCode converts a domain error code to the transport format.
// Codes already in the transport format pass through unchanged.
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
