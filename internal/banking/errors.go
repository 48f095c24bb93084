package banking

import "errors"

// Rejections that abort an operation before any write. The HTTP layer maps
// each of them to a status code.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateUser   = errors.New("user already exists")
	ErrSameAccount     = errors.New("source and payee account are the same")
	ErrInvalidAmount   = errors.New("transfer amount must be positive with at most two decimals")
	ErrInvalidPeriod   = errors.New("month must be 1-12 and year must be positive")
	ErrInvalidDate     = errors.New("date of birth must be YYYY-MM-DD")
	ErrInvalidPrefix   = errors.New("account number prefix must be at least 4 digits")
	ErrTokenExhausted  = errors.New("could not generate a unique token")
	ErrForbidden       = errors.New("account does not belong to the caller")
	ErrInvalidSession  = errors.New("invalid session token")
)
