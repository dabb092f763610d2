package shared

import "errors"

var (
	// ErrNotFound indicates a lookup by id or number matched no account.
	ErrNotFound = errors.New("accounting: account not found")
	// ErrInvalidInput indicates missing or out-of-domain fields.
	ErrInvalidInput = errors.New("accounting: invalid input")
	// ErrDuplicateNumber indicates the account number is already taken.
	ErrDuplicateNumber = errors.New("accounting: account number already in use")
	// ErrSeedAborted indicates the default-account batch was rolled back.
	ErrSeedAborted = errors.New("accounting: default account seeding aborted")
)
