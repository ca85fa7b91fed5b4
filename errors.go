package money

import "errors"

// Errors returned by this package. Use [errors.Is] to check for them;
// returned errors carry additional context.
//
// Failed currency lookups are not errors: they resolve to [None].
var (
	// ErrValidation reports malformed or conflicting currency definitions,
	// and locales that do not name a region.
	ErrValidation = errors.New("validation failed")

	// ErrCurrencyMismatch reports a binary operation on amounts
	// denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrFormat reports text that cannot be parsed as an amount and
	// unrecognized format specifiers.
	ErrFormat = errors.New("invalid format")

	// ErrArgument reports an operand of an unsupported type or value.
	ErrArgument = errors.New("invalid argument")

	// ErrUnknownCurrency is returned by [ParseCurr] for codes that are not
	// in the registry.
	ErrUnknownCurrency = errors.New("unknown currency")

	errAmountOverflow = errors.New("amount overflow")
)
