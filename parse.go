package money

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/govalues/decimal"

	"github.com/ledgerkit/money/locale"
)

// Parse converts a locale-formatted currency string, such as "$1,234.56"
// in en-US or "-1.234,56 €" in de-DE, to an amount.
// The currency is the currency of the locale's region.
//
// The text may carry the currency symbol or the ISO code before or after the
// number, a leading or trailing negative sign or enclosing parentheses, and
// the group and decimal separators of the locale.
//
// Parse returns an error wrapping [ErrFormat] if the text is malformed, and
// an error wrapping [ErrValidation] if the locale names no region.
func Parse(text, loc string) (Money, error) {
	c, err := CurrencyForLocale(loc)
	if err != nil {
		return Money{}, fmt.Errorf("parsing %q: %w", text, err)
	}
	d, err := parseNumber(text, c, Locales().NumberFormat(loc))
	if err != nil {
		return Money{}, fmt.Errorf("parsing %q: %w", text, err)
	}
	m, err := New(c, d)
	if err != nil {
		return Money{}, fmt.Errorf("parsing %q: %w", text, err)
	}
	return m, nil
}

// TryParse is like [Parse] but reports failure with a boolean instead of an error.
func TryParse(text, loc string) (Money, bool) {
	m, err := Parse(text, loc)
	if err != nil {
		return Money{}, false
	}
	return m, true
}

func parseNumber(text string, c Currency, nf locale.NumberFormat) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty text", ErrFormat)
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	sign := negativeSign(nf)
	cutSign := func() error {
		var ok bool
		if s, ok = cutAffix(s, sign); ok {
			if neg {
				return fmt.Errorf("%w: more than one negative sign in %q", ErrFormat, text)
			}
			neg = true
		}
		return nil
	}
	if err := cutSign(); err != nil {
		return decimal.Decimal{}, err
	}
	s = cutMark(s, c)
	if err := cutSign(); err != nil {
		return decimal.Decimal{}, err
	}

	num, err := normalizeDigits(s, nf)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %w", ErrFormat, text, err)
	}
	d, err := decimal.Parse(num)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %w", ErrFormat, text, err)
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

// cutAffix removes affix from either end of s.
func cutAffix(s, affix string) (string, bool) {
	if affix == "" {
		return s, false
	}
	if rest, ok := strings.CutPrefix(s, affix); ok {
		return strings.TrimSpace(rest), true
	}
	if rest, ok := strings.CutSuffix(s, affix); ok {
		return strings.TrimSpace(rest), true
	}
	return s, false
}

// cutMark removes the currency symbol or code from either end of s.
func cutMark(s string, c Currency) string {
	if rest, ok := cutAffix(s, c.Symbol()); ok {
		return rest
	}
	code := c.Code()
	switch {
	case len(s) >= len(code) && strings.EqualFold(s[:len(code)], code):
		return strings.TrimSpace(s[len(code):])
	case len(s) >= len(code) && strings.EqualFold(s[len(s)-len(code):], code):
		return strings.TrimSpace(s[:len(s)-len(code)])
	}
	return s
}

// normalizeDigits turns locale digits into the form accepted by [decimal.Parse].
func normalizeDigits(s string, nf locale.NumberFormat) (string, error) {
	whole, frac, found := strings.Cut(s, decimalSeparator(nf))
	if found && frac == "" {
		return "", errors.New("missing digits after the decimal separator")
	}

	if sep := nf.GroupSeparator; sep != "" {
		if isBlank(sep) {
			whole = strings.Map(func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}
				return r
			}, whole)
		} else {
			whole = strings.ReplaceAll(whole, sep, "")
			if alt, ok := groupAlternates[sep]; ok {
				whole = strings.ReplaceAll(whole, alt, "")
			}
		}
	}
	if !isDigits(whole) || !isDigits(frac) || whole+frac == "" {
		return "", errors.New("unexpected characters")
	}
	if whole == "" {
		whole = "0"
	}
	if frac == "" {
		return whole, nil
	}
	return whole + "." + frac, nil
}

// groupAlternates maps typographic group separators to the ASCII
// characters typed in their place.
var groupAlternates = map[string]string{
	"’": "'",
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
