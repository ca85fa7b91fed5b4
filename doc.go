/*
Package money implements monetary amounts in ISO 4217 currencies with
locale-aware formatting and parsing.
It combines the [decimal] package's decimal floating-point numbers with a
[Currency] taken from a [Registry] of currency definitions.

# Features

  - Immutable amounts and currencies, safe for use by multiple goroutines
  - Arithmetic that never mixes currencies
  - Allocation of an amount into parts that sum to the original
  - Rounding to the minor units of the currency or to any scale
  - Formatting and parsing with the number conventions of a locale
  - Currency definitions from the built-in ISO 4217 table or from files

# Representation

[Money] holds the ISO 4217 numeric code of its currency and a
[decimal.Decimal] value. The numeric code is resolved against the
[DefaultRegistry] when the currency is needed, so the zero value of Money
is "XXX 0", an amount in [None].

A [Currency] carries its alphabetic and numeric codes, its name, symbol and
number of minor units. Lookups that fail return [None] instead of an error.

# Registries

A [Registry] reads its definitions from a [Source] once, on first use, and
validates them. Exact duplicate records are skipped; records that reuse a code
or a number are rejected with [ErrValidation].
[BuiltinSource] serves the table generated from scripts/currency.
Package currencyfile loads definitions from YAML and CSV files.

# Locales

Locale names are BCP 47 tags such as "en-US" or POSIX names such as
"de_DE.UTF-8". The empty string and "C" denote the invariant locale.
The current locale and the number conventions of every locale come from the
[LocaleProvider] installed with [SetLocaleProvider]; package locale provides
the default implementation.

# Formatting

[Money.Text], [Money.TextLocale] and [Currency.FormatMoney] accept the
following specifiers, each optionally followed by a precision of one or two
digits:

	| Spec | Example (en-US)  | Description                         |
	| ---- | ---------------- | ----------------------------------- |
	| C, G | $1,234.57        | Currency symbol and group separator |
	| N    | 1,234.57         | Group separator, no symbol          |
	| F    | 1234.57          | No group separator, no symbol       |
	| L    | 1,234.57 USD     | Group separator and ISO code        |
	| I    | 1234.57 USD      | ISO code, no group separator        |

A specifier made only of the characters "0#.," is a custom pattern, such
as "#,##0.00". Without a precision the minor units of the currency are used.
Ties are rounded away from zero.

# Parsing

[Parse] accepts the text produced by the C specifier in the same locale, and
tolerates a missing symbol, the ISO code instead of the symbol, a trailing
negative sign and enclosing parentheses.

# Errors

Errors wrap one of [ErrValidation], [ErrCurrencyMismatch], [ErrFormat],
[ErrArgument] or [ErrUnknownCurrency]. Use [errors.Is] to check for them.
Functions prefixed with Must panic instead of returning an error.
*/
package money
