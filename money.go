package money

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// Money represents a monetary amount: a decimal value tagged with the ISO 4217
// numeric code of its currency.
// The currency is resolved through the [DefaultRegistry]; numbers the registry
// does not know resolve to [None].
// Its zero value is an amount of 0 in [None].
// Money is immutable and safe for concurrent use by multiple goroutines.
type Money struct {
	num   int             // ISO 4217 numeric code
	value decimal.Decimal // monetary value
}

// newMoneyUnsafe creates a new amount without checking the scale.
// Use it only if you are absolutely sure that the arguments are valid.
func newMoneyUnsafe(c Currency, d decimal.Decimal) Money {
	return Money{num: c.Num(), value: d}
}

// newMoneySafe creates a new amount and checks the scale.
func newMoneySafe(c Currency, d decimal.Decimal) (Money, error) {
	if d.Scale() < c.Scale() {
		d = d.Pad(c.Scale())
		if d.Scale() < c.Scale() {
			return Money{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
		}
	}
	return newMoneyUnsafe(c, d), nil
}

// New returns an amount of d in currency curr.
// If the scale of d is less than the minor units of the currency, the result
// is zero-padded to the right.
//
// New returns an error if the integer part of d has more than
// ([decimal.MaxPrec] - [Currency.MinorUnits]) digits.
func New(curr Currency, d decimal.Decimal) (Money, error) {
	return newMoneySafe(curr, d)
}

// MustNew is like [New] but panics if the amount cannot be constructed.
func MustNew(curr Currency, d decimal.Decimal) Money {
	m, err := New(curr, d)
	if err != nil {
		panic(fmt.Sprintf("New(%q, %v) failed: %v", curr.Code(), d, err))
	}
	return m
}

// NewLocal returns an amount of d in the currency of the current locale's
// region. See [Locales] and [CurrencyForLocale].
func NewLocal(d decimal.Decimal) (Money, error) {
	c, err := CurrencyForLocale(Locales().Current())
	if err != nil {
		return Money{}, fmt.Errorf("resolving currency: %w", err)
	}
	return New(c, d)
}

// NewFromInt64 returns an amount equal to a whole number of major units.
//
// NewFromInt64 returns an error if the currency code is not valid, or if the
// number has more than ([decimal.MaxPrec] - [Currency.MinorUnits]) digits.
func NewFromInt64(curr string, whole int64) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.New(whole, 0)
	if err != nil {
		return Money{}, fmt.Errorf("converting integer: %w", err)
	}
	return newMoneySafe(c, d)
}

// NewFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount.
// See also method [Money.MinorUnits].
//
// NewFromMinorUnits returns an error if currency code is not valid.
func NewFromMinorUnits(curr string, units int64) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.New(units, c.Scale())
	if err != nil {
		return Money{}, fmt.Errorf("converting minor units: %w", err)
	}
	return newMoneySafe(c, d)
}

// NewFromFloat64 converts a float to a (possibly rounded) amount.
// See also method [Money.Float64].
//
// NewFromFloat64 returns an error if:
//   - the currency code is not valid;
//   - the float is a special value (NaN or Inf);
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.MinorUnits]) digits.
func NewFromFloat64(curr string, amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("converting float: %w: special value %v", ErrArgument, amount)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	m, err := ParseAmount(curr, s)
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w", err)
	}
	return m, nil
}

// ParseAmount converts currency and decimal strings to a (possibly rounded) amount.
// If the scale of the amount is less than the minor units of the currency,
// the result will be zero-padded to the right.
// See also constructors [ParseCurr], [Parse] and [decimal.Parse].
func ParseAmount(curr, amount string) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.ParseExact(amount, c.Scale())
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w: %w", ErrFormat, err)
	}
	return newMoneySafe(c, d)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Money {
	m, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// Curr returns the currency of the amount.
func (m Money) Curr() Currency {
	return DefaultRegistry().ByNum(m.Num())
}

// Num returns the ISO 4217 numeric code of the currency of the amount.
// The zero value reports the number of [None].
func (m Money) Num() int {
	if m.num == 0 {
		return None.num
	}
	return m.num
}

// Decimal returns the decimal representation of the amount.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// MinorUnits returns a (possibly rounded) amount in minor units of currency
// (e.g. cents, pennies, fens).
// If the scale of the amount is greater than the minor units of the currency,
// the fractional part is rounded using [rounding half to even] (banker's rounding).
// See also constructor [NewFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) MinorUnits() (units int64, ok bool) {
	d := m.RoundToCurr().Decimal()
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, false
		}
		return -int64(u), true //nolint:gosec
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.value.Sign()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.value.IsNeg()
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.value.IsPos()
}

// SameCurr returns true if amounts are denominated in the same currency.
func (m Money) SameCurr(b Money) bool {
	return m.Num() == b.Num()
}

// decimalOp is the shape of the exact decimal operations, such as
// [decimal.Decimal.AddExact].
type decimalOp func(d, e decimal.Decimal, scale int) (decimal.Decimal, error)

// remOp computes the remainder of the truncated division d / e.
func remOp(d, e decimal.Decimal, _ int) (decimal.Decimal, error) {
	// Quotient
	q, err := d.Quo(e)
	if err != nil {
		return decimal.Decimal{}, err
	}
	q = q.Trunc(0)

	// Reminder
	r, err := q.Mul(e)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Sub(r)
}

func (m Money) binary(b Money, op decimalOp) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	return m.scalar(b.value, op)
}

func (m Money) scalar(e decimal.Decimal, op decimalOp) (Money, error) {
	c := m.Curr()
	d, err := op(m.value, e, c.Scale())
	if err != nil {
		return Money{}, err
	}
	return newMoneySafe(c, d)
}

// Add returns the (possibly rounded) sum of amounts m and b.
//
// Add returns an error if:
//   - amounts are denominated in different currencies ([ErrCurrencyMismatch]);
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.MinorUnits]) digits.
//     For example, when currency is US Dollars, Add will return an error if the integer
//     part of the result has more than 17 digits (19 - 2 = 17).
func (m Money) Add(b Money) (Money, error) {
	c, err := m.binary(b, decimal.Decimal.AddExact)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

// AddDec returns the (possibly rounded) sum of amount m and decimal e.
// The result has the currency of m.
func (m Money) AddDec(e decimal.Decimal) (Money, error) {
	c, err := m.scalar(e, decimal.Decimal.AddExact)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, e, err)
	}
	return c, nil
}

// Sub returns the (possibly rounded) difference between amounts m and b.
//
// Sub returns an error if amounts are denominated in different currencies or
// if the integer part of the result is too large. See [Money.Add].
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.binary(b, decimal.Decimal.SubExact)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

// SubDec returns the (possibly rounded) difference between amount m and decimal e.
func (m Money) SubDec(e decimal.Decimal) (Money, error) {
	c, err := m.scalar(e, decimal.Decimal.SubExact)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, e, err)
	}
	return c, nil
}

// Mul returns the (possibly rounded) product of the values of amounts m and b,
// denominated in their common currency.
//
// Mul returns an error if amounts are denominated in different currencies or
// if the integer part of the result is too large.
func (m Money) Mul(b Money) (Money, error) {
	c, err := m.binary(b, decimal.Decimal.MulExact)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, b, err)
	}
	return c, nil
}

// MulDec returns the (possibly rounded) product of amount m and factor e.
func (m Money) MulDec(e decimal.Decimal) (Money, error) {
	c, err := m.scalar(e, decimal.Decimal.MulExact)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return c, nil
}

// Quo returns the (possibly rounded) quotient of the values of amounts m and b,
// denominated in their common currency.
//
// Quo returns an error if:
//   - amounts are denominated in different currencies;
//   - the divisor is 0;
//   - the integer part of the result is too large.
func (m Money) Quo(b Money) (Money, error) {
	c, err := m.binary(b, decimal.Decimal.QuoExact)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	return c, nil
}

// QuoDec returns the (possibly rounded) quotient of amount m and divisor e.
//
// QuoDec returns an error if the divisor is 0 or the integer part of the
// result is too large.
func (m Money) QuoDec(e decimal.Decimal) (Money, error) {
	c, err := m.scalar(e, decimal.Decimal.QuoExact)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return c, nil
}

// Rem returns the remainder r of the truncated division of the values of
// amounts m and b, such that m = b * q + r for an integer q.
// The sign of the remainder is the sign of m.
//
// Rem returns an error if amounts are denominated in different currencies
// or the divisor is 0.
func (m Money) Rem(b Money) (Money, error) {
	c, err := m.binary(b, remOp)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v mod %v]: %w", m, b, err)
	}
	return c, nil
}

// RemDec returns the remainder of the truncated division of amount m by e.
// See [Money.Rem].
func (m Money) RemDec(e decimal.Decimal) (Money, error) {
	c, err := m.scalar(e, remOp)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v mod %v]: %w", m, e, err)
	}
	return c, nil
}

// Inc returns the amount increased by one major unit of its currency.
func (m Money) Inc() (Money, error) {
	return m.AddDec(m.value.One())
}

// Dec returns the amount decreased by one major unit of its currency.
func (m Money) Dec() (Money, error) {
	return m.SubDec(m.value.One())
}

// ChangeCurrency returns amount m multiplied by rate and denominated in
// currency target. The rate is taken at face value.
func (m Money) ChangeCurrency(target Currency, rate decimal.Decimal) (Money, error) {
	d, err := m.value.MulExact(rate, target.Scale())
	if err != nil {
		return Money{}, fmt.Errorf("converting %v to %v at %v: %w", m, target.Code(), rate, err)
	}
	c, err := newMoneySafe(target, d)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v to %v at %v: %w", m, target.Code(), rate, err)
	}
	return c, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice.
//
// Split returns an error wrapping [ErrArgument] if the number of parts is
// not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	r, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return r, nil
}

func (m Money) split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: number of parts must be positive", ErrArgument)
	}
	par, err := decimal.New(int64(parts), 0)
	if err != nil {
		return nil, err
	}
	c, d := m.Curr(), m.value

	// Quotient
	quo, err := d.Quo(par)
	if err != nil {
		return nil, err
	}
	quo = quo.Trunc(d.Scale()).Pad(d.Scale())

	// Reminder
	rem, err := quo.Mul(par)
	if err != nil {
		return nil, err
	}
	rem, err = d.Sub(rem)
	if err != nil {
		return nil, err
	}
	ulp := rem.ULP().CopySign(rem)

	res := make([]Money, parts)
	for i := range res {
		res[i] = newMoneyUnsafe(c, quo)
		// Reminder distribution
		if !rem.IsZero() {
			rem, err = rem.Sub(ulp)
			if err != nil {
				return nil, err
			}
			part, err := quo.Add(ulp)
			if err != nil {
				return nil, err
			}
			res[i] = newMoneyUnsafe(c, part)
		}
	}
	return res, nil
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return Money{num: m.num, value: m.value.Abs()}
}

// Neg returns an amount with the opposite sign.
func (m Money) Neg() Money {
	return Money{num: m.num, value: m.value.Neg()}
}

// Round returns an amount rounded to the specified number of digits after
// the decimal point using the given rounding mode.
// The result keeps at least as many digits as the minor units of the currency.
// See also method [Money.RoundToCurr].
func (m Money) Round(scale int, mode RoundingMode) Money {
	c := m.Curr()
	d := roundDecimal(m.value, scale, mode).Pad(c.Scale())
	return Money{num: m.num, value: d}
}

// RoundToCurr returns an amount rounded to the minor units of its currency
// using [rounding half to even] (banker's rounding).
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) RoundToCurr() Money {
	return m.Round(m.Curr().Scale(), HalfEven)
}

// Floor returns the largest whole amount less than or equal to m.
func (m Money) Floor() Money {
	return m.Round(0, TowardNegative)
}

// Ceil returns the smallest whole amount greater than or equal to m.
func (m Money) Ceil() Money {
	return m.Round(0, TowardPositive)
}

// Trunc returns the whole part of m.
func (m Money) Trunc() Money {
	return m.Round(0, TowardZero)
}

// Cmp compares amounts by currency number and then by value, and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Amounts in different currencies are ordered by their ISO 4217 numeric codes,
// regardless of their values.
func (m Money) Cmp(b Money) int {
	mn, bn := m.Num(), b.Num()
	switch {
	case mn < bn:
		return -1
	case mn > bn:
		return 1
	}
	return m.value.Cmp(b.value)
}

// Compare is like [Money.Cmp]. It can be used with [slices.SortFunc].
func Compare(a, b Money) int {
	return a.Cmp(b)
}

// Equal reports whether amounts have the same currency and numerically equal
// values. Trailing zeros are ignored: USD 1.00 equals USD 1.000.
func (m Money) Equal(b Money) bool {
	return m.Cmp(b) == 0
}

// Less reports whether m orders before b. See [Money.Cmp].
func (m Money) Less(b Money) bool {
	return m.Cmp(b) < 0
}

// Min returns the smaller amount. See [Money.Cmp].
func (m Money) Min(b Money) Money {
	if m.Cmp(b) <= 0 {
		return m
	}
	return b
}

// Max returns the larger amount. See [Money.Cmp].
func (m Money) Max(b Money) Money {
	if m.Cmp(b) >= 0 {
		return m
	}
	return b
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "USD 19.99".
// See also methods [Money.Text] and [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	var buf [32]byte
	pos := len(buf) - 1
	coef := m.value.Coef()
	scale := m.value.Scale()

	// Coefficient
	for {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if coef == 0 {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if coef == 0 && scale == 0 {
			break
		}
	}

	// Sign
	if m.value.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	return m.Curr().Code() + " " + string(buf[pos+1:])
}

// Text renders the amount in the current locale.
// See [Currency.FormatMoney] for the format specifiers.
func (m Money) Text(spec string) (string, error) {
	return m.TextLocale(spec, Locales().Current())
}

// TextLocale renders the amount in the given locale.
// See [Currency.FormatMoney] for the format specifiers.
func (m Money) TextLocale(spec, loc string) (string, error) {
	s, err := m.Curr().FormatMoney(spec, m, Locales().NumberFormat(loc))
	if err != nil {
		return "", fmt.Errorf("formatting %v with %q: %w", m, spec, err)
	}
	return s, nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb           | Example   | Description                          |
//	| -------------- | --------- | ------------------------------------ |
//	| %s, %v         | USD 5.67  | Currency and amount                  |
//	| %q             | "USD 5.67"| Quoted currency and amount           |
//	| %d             | 567       | Amount in minor units                |
//	| %C, %G         | $5.67     | Specifier C in the current locale    |
//	| %N             | 5.67      | Specifier N in the current locale    |
//	| %F             | 5.67      | Specifier F in the current locale    |
//	| %L             | 5.67 USD  | Specifier L in the current locale    |
//	| %I             | 5.67 USD  | Specifier I in the current locale    |
//
// The precision of %C, %G, %N, %F, %L and %I is the precision of the
// specifier. Width and the '-' flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	var (
		text string
		ok   = true
	)
	switch verb {
	case 's', 'S', 'v', 'V':
		text = m.String()
	case 'q', 'Q':
		text = `"` + m.String() + `"`
	case 'd', 'D':
		var units int64
		units, ok = m.MinorUnits()
		text = strconv.FormatInt(units, 10)
	case 'C', 'G', 'N', 'F', 'L', 'I':
		spec := string(verb)
		if p, has := state.Precision(); has {
			spec += strconv.Itoa(p)
		}
		var err error
		text, err = m.Text(spec)
		ok = err == nil
	default:
		ok = false
	}

	//nolint:errcheck
	if !ok {
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(money.Money="))
		state.Write([]byte(m.String()))
		state.Write([]byte(")"))
		return
	}

	// Padding
	if w, has := state.Width(); has {
		if n := w - utf8.RuneCountInString(text); n > 0 {
			spaces := make([]byte, n)
			for i := range spaces {
				spaces[i] = ' '
			}
			if state.Flag('-') {
				text += string(spaces)
			} else {
				text = string(spaces) + text
			}
		}
	}
	state.Write([]byte(text)) //nolint:errcheck
}
