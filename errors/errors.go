package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable, machine-readable error identifier.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"
	ErrCodeEmailExists     ErrorCode = "EMAIL_EXISTS"

	// Lookup errors
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodeBuildingNotFound ErrorCode = "BUILDING_NOT_FOUND"
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodePaymentNotFound  ErrorCode = "PAYMENT_NOT_FOUND"

	// Occupancy errors
	ErrCodeDuplicateRoomNumber ErrorCode = "DUPLICATE_ROOM_NUMBER"
	ErrCodeAlreadyAssigned     ErrorCode = "ALREADY_ASSIGNED"
	ErrCodeInvalidState        ErrorCode = "INVALID_STATE"
	ErrCodeRoomOccupied        ErrorCode = "ROOM_OCCUPIED"
	ErrCodeNotOccupied         ErrorCode = "NOT_OCCUPIED"
	ErrCodeBuildingHasRooms    ErrorCode = "BUILDING_HAS_ROOMS"

	// Ledger errors
	ErrCodeNotAssigned            ErrorCode = "NOT_ASSIGNED"
	ErrCodeDuplicateBillingPeriod ErrorCode = "DUPLICATE_BILLING_PERIOD"
	ErrCodeInvalidAmount          ErrorCode = "INVALID_AMOUNT"
	ErrCodeOverpayment            ErrorCode = "OVERPAYMENT"

	// Database errors
	ErrCodeDBError            ErrorCode = "DB_ERROR"
	ErrCodeDBDuplicate        ErrorCode = "DB_DUPLICATE"
	ErrCodeReferenceViolation ErrorCode = "REFERENCE_VIOLATION"
	ErrCodeUnavailable        ErrorCode = "STORE_UNAVAILABLE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Kind groups error codes by how a caller is expected to react.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: missing or malformed input.
	KindValidation
	// KindConflict: the write collides with an existing record.
	KindConflict
	// KindState: the entity is in the wrong state for the operation.
	KindState
	// KindNotFound: unknown id.
	KindNotFound
	// KindUnavailable: the store could not be reached.
	KindUnavailable
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindState:
		return "state"
	case KindNotFound:
		return "not_found"
	case KindUnavailable:
		return "unavailable"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// AppError is the error type returned by services.
type AppError struct {
	Kind    Kind
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError by code so that errors.Is works against the
// sentinels below.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewAppError builds an AppError whose kind is derived from code.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Kind:    kindForCode(code),
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Validation(code ErrorCode, message string) *AppError {
	return &AppError{Kind: KindValidation, Code: code, Message: message}
}

func Conflict(code ErrorCode, message string) *AppError {
	return &AppError{Kind: KindConflict, Code: code, Message: message}
}

func State(code ErrorCode, message string) *AppError {
	return &AppError{Kind: KindState, Code: code, Message: message}
}

func NotFound(code ErrorCode, message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

// Unavailable wraps a store failure. The driver error stays reachable through
// errors.Unwrap.
func Unavailable(message string, err error) *AppError {
	return &AppError{Kind: KindUnavailable, Code: ErrCodeUnavailable, Message: message, Err: err}
}

// IsAppError reports whether err wraps an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError returns the first AppError in err's chain.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// KindOf returns the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind
	}
	return KindUnknown
}

// CodeOf returns the code of err, or an empty code for foreign errors.
func CodeOf(err error) ErrorCode {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ""
}

func kindForCode(code ErrorCode) Kind {
	switch code {
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeMissingToken, ErrCodeInvalidPassword:
		return KindUnauthorized
	case ErrCodeInvalidRole:
		return KindForbidden
	case ErrCodeNotFound, ErrCodeUserNotFound, ErrCodeBuildingNotFound, ErrCodeRoomNotFound, ErrCodePaymentNotFound:
		return KindNotFound
	case ErrCodeDuplicateRoomNumber, ErrCodeAlreadyAssigned, ErrCodeDuplicateBillingPeriod,
		ErrCodeEmailExists, ErrCodeDBDuplicate:
		return KindConflict
	case ErrCodeInvalidState, ErrCodeRoomOccupied, ErrCodeNotOccupied, ErrCodeBuildingHasRooms, ErrCodeNotAssigned,
		ErrCodeReferenceViolation:
		return KindState
	case ErrCodeUnavailable, ErrCodeDBError:
		return KindUnavailable
	default:
		return KindValidation
	}
}

var (
	ErrUserNotFound     = NotFound(ErrCodeUserNotFound, "user not found")
	ErrBuildingNotFound = NotFound(ErrCodeBuildingNotFound, "building not found")
	ErrRoomNotFound     = NotFound(ErrCodeRoomNotFound, "room not found")
	ErrPaymentNotFound  = NotFound(ErrCodePaymentNotFound, "payment not found")

	ErrEmailExists = Conflict(ErrCodeEmailExists, "email is already registered")

	ErrDuplicateRoomNumber    = Conflict(ErrCodeDuplicateRoomNumber, "room number already exists in this building")
	ErrAlreadyAssigned        = Conflict(ErrCodeAlreadyAssigned, "tenant already holds another room")
	ErrInvalidState           = State(ErrCodeInvalidState, "room is not available")
	ErrRoomOccupied           = State(ErrCodeRoomOccupied, "room is occupied")
	ErrNotOccupied            = State(ErrCodeNotOccupied, "room is not occupied")
	ErrBuildingHasRooms       = State(ErrCodeBuildingHasRooms, "building still has rooms")
	ErrNotAssigned            = State(ErrCodeNotAssigned, "tenant is not assigned to this room")
	ErrDuplicateBillingPeriod = Conflict(ErrCodeDuplicateBillingPeriod, "a payment already exists for this tenant, room and month")

	ErrInvalidCredentials = NewAppError(ErrCodeUnauthorized, "invalid email or password", nil)
)
