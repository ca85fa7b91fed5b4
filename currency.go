package money

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"github.com/ledgerkit/money/locale"
)

// Currency represents a currency in the global financial system.
// Currencies are obtained from a [Registry]; the zero value is not a valid
// currency, use [None] instead.
//
// Currency is immutable and therefore safe for concurrent use by multiple
// goroutines.
//
// When persisting a currency value, use the alphabetic code returned by
// the [Currency.Code] method.
type Currency struct {
	code   string // ISO 4217 alphabetic code, upper case
	num    int    // ISO 4217 numeric code
	name   string
	symbol string
	scale  int // minor units
}

// None is the currency returned by every failed lookup.
// It is always present in a [Registry].
var None = Currency{
	code:   "XXX",
	num:    999,
	name:   "No Currency",
	symbol: "¤",
	scale:  0,
}

func newCurrency(rec CurrencyRecord) Currency {
	return Currency{
		code:   strings.ToUpper(rec.Code),
		num:    rec.Num,
		name:   rec.Name,
		symbol: rec.Symbol,
		scale:  rec.MinorUnits,
	}
}

// ParseCurr converts a string to currency using the default registry.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// Unlike [CurrencyByCode], ParseCurr returns an error wrapping
// [ErrUnknownCurrency] if the string does not represent a known currency.
func ParseCurr(curr string) (Currency, error) {
	return DefaultRegistry().parse(curr)
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	return c.code
}

// Num returns the [numeric code] assigned to the currency by the ISO 4217 standard.
//
// [numeric code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() int {
	return c.num
}

// Name returns the English name of the currency.
func (c Currency) Name() string {
	return c.name
}

// Symbol returns the symbol used when formatting amounts, such as "$".
func (c Currency) Symbol() string {
	return c.symbol
}

// MinorUnits returns the number of digits after the decimal point required
// for representing the minor unit of the currency:
//   - 0 for currencies without minor units, such as the [Japanese Yen];
//   - 2 for currencies such as the [US Dollar], whose cent is 0.01 dollars;
//   - 3 for currencies such as the [Omani Rial], whose baisa is 0.001 rials.
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Omani Rial]: https://en.wikipedia.org/wiki/Omani_rial
func (c Currency) MinorUnits() int {
	return c.scale
}

// Scale is an alias of [Currency.MinorUnits].
func (c Currency) Scale() int {
	return c.scale
}

// IsNone reports whether c is the [None] currency.
func (c Currency) IsNone() bool {
	return c.Equal(None)
}

// Equal reports whether currencies have the same code, ignoring case,
// and the same number.
func (c Currency) Equal(d Currency) bool {
	return c.num == d.num && strings.EqualFold(c.code, d.code)
}

// Key returns a string that is equal for equal currencies.
// It is suitable as a map key.
func (c Currency) Key() string {
	return strings.ToUpper(c.code) + ":" + strconv.Itoa(c.num)
}

// String implements the [fmt.Stringer] interface and returns the name
// and code of the currency, e.g. "US Dollar (USD)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.name + " (" + c.code + ")"
}

// FormatMoney renders the amount of m as text using the symbol and minor
// units of c and the number format nf.
// The format specifier spec is one of:
//
//	| Specifier  | Example (en-US) | Description                                  |
//	| ---------- | --------------- | -------------------------------------------- |
//	| C, C<n>    | $1,234.57       | Currency symbol, grouped                     |
//	| G, G<n>    | $1,234.57       | Same as C                                    |
//	| N, N<n>    | 1,234.57        | Grouped number                               |
//	| F, F<n>    | 1234.57         | Fixed-point number                           |
//	| L, L<n>    | 1,234.57 USD    | Grouped number and ISO code                  |
//	| I, I<n>    | 1234.57 USD     | Fixed-point number and ISO code              |
//	| 0#.,       | $1,234.6        | Custom pattern ("#,##0.#") and symbol        |
//
// The optional precision n (0 to 99) sets the number of digits after the
// decimal point and defaults to the minor units of c. An empty spec means "C".
// Amounts are rounded half away from zero.
//
// FormatMoney returns an error wrapping [ErrFormat] for unrecognized specifiers.
func (c Currency) FormatMoney(spec string, m Money, nf locale.NumberFormat) (string, error) {
	req, err := parseFormatSpec(spec)
	if err != nil {
		return "", err
	}
	return c.format(req, m.Decimal(), nf), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
// See also method [Currency.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", None, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(c.code)+2)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return c.UnmarshalText(text)
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case int64:
		*c, err = ParseCurr(strconv.FormatInt(value, 10))
	case nil:
		err = fmt.Errorf("%w: %T does not support null values, use %T", ErrArgument, None, NullCurrency{})
	default:
		err = fmt.Errorf("%w: type %T is not supported", ErrArgument, value)
	}
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, None, err)
	}
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// NullCurrency represents a currency that can be null.
// Its zero value is null.
// NullCurrency is not thread-safe.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Currency.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		n.Currency = None
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Currency.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}
