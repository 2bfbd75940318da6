package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientBalance.Error() != "insufficient balance" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
	if ErrCardExpired.Error() != "card expired" {
		t.Errorf("ErrCardExpired has unexpected message: %s", ErrCardExpired.Error())
	}
	if ErrAlreadyBlocked.Error() != "card already blocked" {
		t.Errorf("ErrAlreadyBlocked has unexpected message: %s", ErrAlreadyBlocked.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidStatus", ErrInvalidStatus, 4003},
		{"AccessDenied", ErrAccessDenied, 4030},
		{"CardNotFound", ErrCardNotFound, 4040},
		{"UserNotFound", ErrUserNotFound, 4041},
		{"UsernameTaken", ErrUsernameTaken, 4090},
		{"AlreadyBlocked", ErrAlreadyBlocked, 4091},
		{"Conflict", ErrConflict, 4093},
		{"CardExpired", ErrCardExpired, 4221},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidRole), 4004},
		{"CardState", NewCardStateError(1, "source", "BLOCKED", ErrCardNotActive), 4220},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"Nil", nil, ""},
		{"CardNotFound", ErrCardNotFound, KindNotFound},
		{"UserNotFound", fmt.Errorf("lookup: %w", ErrUserNotFound), KindNotFound},
		{"InsufficientDetailed", NewInsufficientBalanceError(3, "10.00", "5.00"), KindInsufficientBalance},
		{"ExpiredDestination", NewCardStateError(2, "destination", "EXPIRED", ErrCardExpired), KindCardExpired},
		{"SameCard", ErrSameCard, KindInvalidRequest},
		{"Database", fmt.Errorf("%w: boom", ErrDatabaseConnection), KindInternal},
		{"Plain", errors.New("boom"), KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.expected {
				t.Errorf("KindOf(%v) = %q, want %q", tc.err, got, tc.expected)
			}
		})
	}
}

func TestIsBusinessError(t *testing.T) {
	if !IsBusinessError(ErrConflict) {
		t.Errorf("ErrConflict should be a business error")
	}
	if IsBusinessError(ErrInternalServer) {
		t.Errorf("ErrInternalServer should not be a business error")
	}
	if IsBusinessError(nil) {
		t.Errorf("nil should not be a business error")
	}
}

func TestCardStateError(t *testing.T) {
	err := NewCardStateError(7, "source", "BLOCKED", ErrCardNotActive)

	expected := "source card 7 (status BLOCKED): card is not active"
	if err.Error() != expected {
		t.Errorf("CardStateError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrCardNotActive) {
		t.Errorf("errors.Is(err, ErrCardNotActive) = false, want true")
	}

	var stateErr *CardStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("errors.As should find CardStateError")
	}
	fields := stateErr.LogFields()
	if fields["context"] != "source" || fields["card_id"] != uint64(7) {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(5, "1000.00", "60.00")

	expected := "insufficient balance on card 5: required 1000.00, available 60.00"
	if err.Error() != expected {
		t.Errorf("InsufficientBalanceError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("errors.Is(err, ErrInsufficientBalance) = false, want true")
	}
}

func TestTransferError(t *testing.T) {
	err := &TransferError{Username: "john", FromCardID: 1, ToCardID: 2, Amount: "40.00", Err: ErrCardExpired}

	if !errors.Is(err, ErrCardExpired) {
		t.Errorf("TransferError should unwrap to ErrCardExpired")
	}
	fields := LogFieldsOf(fmt.Errorf("outer: %w", err))
	if fields["error_kind"] != string(KindCardExpired) {
		t.Errorf("error_kind = %v, want %s", fields["error_kind"], KindCardExpired)
	}
}

func TestLogFieldsOfPlainError(t *testing.T) {
	fields := LogFieldsOf(errors.New("boom"))
	if fields["error"] != "boom" {
		t.Errorf("LogFieldsOf plain error = %v", fields)
	}
}
