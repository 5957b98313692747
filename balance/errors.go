package balance

import "errors"

// Sentinel errors returned by New. Callers branch on these with errors.Is;
// messages are never wrapped with fmt.Errorf where the sentinel already says
// enough.
var (
	// ErrEmptyIdentifier indicates an entry's ID is the empty string.
	ErrEmptyIdentifier = errors.New("balance: identifier is empty")

	// ErrDuplicateIdentifier indicates two entries share the same identifier.
	ErrDuplicateIdentifier = errors.New("balance: duplicate identifier")

	// ErrUnbalancedNetwork indicates the entries' balances do not sum to zero.
	ErrUnbalancedNetwork = errors.New("balance: net balances do not sum to zero")

	// ErrZeroBalance indicates an entry carries a zero balance; zero-balance
	// participants must be dropped before constructing a Model (see §4.1).
	ErrZeroBalance = errors.New("balance: zero-balance participant")
)
