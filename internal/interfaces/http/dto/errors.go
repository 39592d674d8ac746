package dto

import "net/http"

// Error code constants
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation and input error codes
const (
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
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
	ErrCodeInvalidState        = "ERR_INVALID_STATE"
	ErrCodeBusinessRule        = "ERR_BUSINESS_RULE"
	ErrCodeComparisonSideEmpty = "ERR_COMPARISON_SIDE_EMPTY"
	ErrCodeNoRecords           = "ERR_NO_RECORDS"
)

// Share link error codes. An unknown or disabled link reads as not
// found, an expired link as gone.
const (
	ErrCodeShareInactive = "ERR_SHARE_INACTIVE"
	ErrCodeShareExpired  = "ERR_SHARE_EXPIRED"
)

// Ingestion error codes
const (
	ErrCodeIngestFailed  = "ERR_INGEST_FAILED"
	ErrCodePayloadTooBig = "ERR_PAYLOAD_TOO_LARGE"
)

// AI provider error codes
const (
	ErrCodeAIRateLimited      = "ERR_AI_RATE_LIMITED"
	ErrCodeAICreditsExhausted = "ERR_AI_CREDITS_EXHAUSTED"
	ErrCodeAIUnavailable      = "ERR_AI_UNAVAILABLE"
	ErrCodeAIMalformed        = "ERR_AI_MALFORMED_RESPONSE"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	ErrCodeInvalidState:        http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:        http.StatusUnprocessableEntity,
	ErrCodeComparisonSideEmpty: http.StatusUnprocessableEntity,
	ErrCodeNoRecords:           http.StatusUnprocessableEntity,

	ErrCodeShareInactive: http.StatusNotFound,
	ErrCodeShareExpired:  http.StatusGone,

	ErrCodeIngestFailed:  http.StatusUnprocessableEntity,
	ErrCodePayloadTooBig: http.StatusRequestEntityTooLarge,

	ErrCodeAIRateLimited:      http.StatusTooManyRequests,
	ErrCodeAICreditsExhausted: http.StatusPaymentRequired,
	ErrCodeAIUnavailable:      http.StatusBadGateway,
	ErrCodeAIMalformed:        http.StatusBadGateway,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes default to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":             ErrCodeNotFound,
	"ALREADY_EXISTS":        ErrCodeAlreadyExists,
	"INVALID_INPUT":         ErrCodeInvalidInput,
	"INVALID_ID":            ErrCodeInvalidInput,
	"INVALID_STATE":         ErrCodeInvalidState,
	"UNAUTHORIZED":          ErrCodeUnauthorized,
	"FORBIDDEN":             ErrCodeForbidden,
	"VALIDATION_ERROR":      ErrCodeValidation,
	"SHARE_INACTIVE":        ErrCodeShareInactive,
	"SHARE_EXPIRED":         ErrCodeShareExpired,
	"COMPARISON_SIDE_EMPTY": ErrCodeComparisonSideEmpty,
	"NO_RECORDS":            ErrCodeNoRecords,
	"MALFORMED_ANALYSIS":    ErrCodeAIMalformed,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Codes already in the API format or unknown are returned as-is.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
