package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidStatus       = 4003
	CodeInvalidRole         = 4004
	CodeSameCard            = 4005
	CodeInvalidCredentials  = 4010
	CodeUserDisabled        = 4011
	CodeAccessDenied        = 4030
	CodeCardNotFound        = 4040
	CodeUserNotFound        = 4041
	CodeNotFound            = 4042
	CodeUsernameTaken       = 4090
	CodeAlreadyBlocked      = 4091
	CodeUserHasCards        = 4092
	CodeConflict            = 4093
	CodeCardNotActive       = 4220
	CodeCardExpired         = 4221

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when a transfer or balance amount is not a positive two-decimal value
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance is returned when the source card cannot cover the amount
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrCardNotFound is returned when the requested card doesn't exist
	ErrCardNotFound = errors.New("card not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrAccessDenied is returned when a card is not owned by the acting user
	ErrAccessDenied = errors.New("access denied")

	// ErrCardNotActive is returned when a card taking part in a transfer is not ACTIVE
	ErrCardNotActive = errors.New("card is not active")

	// ErrCardExpired is returned when a card's expiration date has passed
	ErrCardExpired = errors.New("card expired")

	// ErrAlreadyBlocked is returned when blocking a card that is already blocked
	ErrAlreadyBlocked = errors.New("card already blocked")

	// ErrInvalidStatus is returned for an unknown card status value
	ErrInvalidStatus = errors.New("invalid card status")

	// ErrUsernameTaken is returned when creating a user whose username exists
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidRole is returned when the role is neither USER nor ADMIN
	ErrInvalidRole = errors.New("invalid role")

	// ErrSameCard is returned when source and destination of a transfer are the same card
	ErrSameCard = errors.New("source and destination cards must differ")

	// ErrUserHasCards is returned when deleting a user that still owns cards
	ErrUserHasCards = errors.New("user still owns cards")

	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserDisabled is returned when a disabled user tries to log in
	ErrUserDisabled = errors.New("user is disabled")

	// ErrConflict is returned when a concurrent transaction aborted the operation
	ErrConflict = errors.New("concurrent update conflict")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDuplicateKey is returned when a unique index rejects an insert
	ErrDuplicateKey = errors.New("duplicate key")
)

// Kind classifies an error into one of the business categories the boundary maps to responses
type Kind string

const (
	KindNotFound            Kind = "NOT_FOUND"
	KindAccessDenied        Kind = "ACCESS_DENIED"
	KindInvalidAmount       Kind = "INVALID_AMOUNT"
	KindInsufficientBalance Kind = "INSUFFICIENT_BALANCE"
	KindCardNotActive       Kind = "CARD_NOT_ACTIVE"
	KindCardExpired         Kind = "CARD_EXPIRED"
	KindAlreadyBlocked      Kind = "ALREADY_BLOCKED"
	KindInvalidStatus       Kind = "INVALID_STATUS"
	KindUsernameTaken       Kind = "USERNAME_TAKEN"
	KindInvalidRole         Kind = "INVALID_ROLE"
	KindConflict            Kind = "CONFLICT"
	KindInvalidRequest      Kind = "INVALID_REQUEST"
	KindInvalidCredentials  Kind = "INVALID_CREDENTIALS"
	KindUserDisabled        Kind = "USER_DISABLED"
	KindUserHasCards        Kind = "USER_HAS_CARDS"
	KindInternal            Kind = "INTERNAL"
)

var kindTable = []struct {
	err  error
	kind Kind
}{
	{ErrCardNotFound, KindNotFound},
	{ErrUserNotFound, KindNotFound},
	{ErrNotFound, KindNotFound},
	{ErrAccessDenied, KindAccessDenied},
	{ErrInvalidAmount, KindInvalidAmount},
	{ErrInsufficientBalance, KindInsufficientBalance},
	{ErrCardExpired, KindCardExpired},
	{ErrCardNotActive, KindCardNotActive},
	{ErrAlreadyBlocked, KindAlreadyBlocked},
	{ErrInvalidStatus, KindInvalidStatus},
	{ErrUsernameTaken, KindUsernameTaken},
	{ErrInvalidRole, KindInvalidRole},
	{ErrConflict, KindConflict},
	{ErrSameCard, KindInvalidRequest},
	{ErrInvalidRequest, KindInvalidRequest},
	{ErrInvalidCredentials, KindInvalidCredentials},
	{ErrUserDisabled, KindUserDisabled},
	{ErrUserHasCards, KindUserHasCards},
}

// KindOf returns the business kind of err, or KindInternal for anything unrecognised
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, entry := range kindTable {
		if errors.Is(err, entry.err) {
			return entry.kind
		}
	}
	return KindInternal
}

// IsBusinessError reports whether err carries a business kind rather than an internal failure
func IsBusinessError(err error) bool {
	kind := KindOf(err)
	return kind != "" && kind != KindInternal
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidStatus):
		return CodeInvalidStatus
	case errors.Is(err, ErrInvalidRole):
		return CodeInvalidRole
	case errors.Is(err, ErrSameCard):
		return CodeSameCard
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUserDisabled):
		return CodeUserDisabled
	case errors.Is(err, ErrAccessDenied):
		return CodeAccessDenied
	case errors.Is(err, ErrCardNotFound):
		return CodeCardNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrUsernameTaken):
		return CodeUsernameTaken
	case errors.Is(err, ErrAlreadyBlocked):
		return CodeAlreadyBlocked
	case errors.Is(err, ErrUserHasCards):
		return CodeUserHasCards
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrCardExpired):
		return CodeCardExpired
	case errors.Is(err, ErrCardNotActive):
		return CodeCardNotActive
	default:
		return CodeInternalServer
	}
}

// CardStateError tags a card-state failure with the role the card played in the operation
type CardStateError struct {
	CardID  uint64
	Context string // "source" or "destination"
	Status  string
	Err     error
}

// Error implements the error interface for CardStateError
func (e *CardStateError) Error() string {
	return fmt.Sprintf("%s card %d (status %s): %v", e.Context, e.CardID, e.Status, e.Err)
}

// Unwrap returns the underlying error
func (e *CardStateError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *CardStateError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "card_state_error",
		"card_id":    e.CardID,
		"context":    e.Context,
		"status":     e.Status,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewCardStateError creates a context-tagged card state error
func NewCardStateError(cardID uint64, context, status string, err error) error {
	return &CardStateError{
		CardID:  cardID,
		Context: context,
		Status:  status,
		Err:     err,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	CardID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance on card %d: required %s, available %s",
		e.CardID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"card_id":         e.CardID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(cardID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		CardID:      cardID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// TransferError wraps a failed transfer with the request that caused it
type TransferError struct {
	Username   string
	FromCardID uint64
	ToCardID   uint64
	Amount     string
	Err        error
}

// Error implements the error interface for TransferError
func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %s from card %d to card %d by %s failed: %v",
		e.Amount, e.FromCardID, e.ToCardID, e.Username, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":   "transfer_error",
		"username":     e.Username,
		"from_card_id": e.FromCardID,
		"to_card_id":   e.ToCardID,
		"amount":       e.Amount,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
		"error_kind":   string(KindOf(e.Err)),
	}
	return fields
}

// LogFieldser is implemented by errors that carry structured logging context
type LogFieldser interface {
	LogFields() map[string]any
}

// LogFieldsOf extracts structured fields from err when any error in its chain provides them
func LogFieldsOf(err error) map[string]any {
	var lf LogFieldser
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{"error": err.Error()}
}

// IsConflictError checks if the error is a retryable concurrency conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}
