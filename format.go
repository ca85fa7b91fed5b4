package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/decimal"

	"github.com/ledgerkit/money/locale"
)

type formatKind int

const (
	formatCustom     formatKind = iota // pattern of 0 # . ,
	formatStandard                     // C, G, N, F
	formatISOGrouped                   // L
	formatISOFixed                     // I
)

// formatRequest is a parsed format specifier.
type formatRequest struct {
	kind    formatKind
	verb    byte // C, N or F for formatStandard
	prec    int  // digits after the decimal point, -1 means minor units
	pattern string
}

const patternChars = "0#.,"

func parseFormatSpec(spec string) (formatRequest, error) {
	if spec == "" {
		return formatRequest{kind: formatStandard, verb: 'C', prec: -1}, nil
	}
	if strings.Trim(spec, patternChars) == "" {
		return formatRequest{kind: formatCustom, pattern: spec}, nil
	}

	req := formatRequest{prec: -1}
	switch spec[0] {
	case 'C', 'c', 'G', 'g':
		req.kind, req.verb = formatStandard, 'C'
	case 'N', 'n':
		req.kind, req.verb = formatStandard, 'N'
	case 'F', 'f':
		req.kind, req.verb = formatStandard, 'F'
	case 'L', 'l':
		req.kind = formatISOGrouped
	case 'I', 'i':
		req.kind = formatISOFixed
	default:
		return formatRequest{}, fmt.Errorf("%w: unknown format specifier %q", ErrFormat, spec)
	}

	if p := spec[1:]; p != "" {
		if len(p) > 2 || strings.Trim(p, "0123456789") != "" {
			return formatRequest{}, fmt.Errorf("%w: invalid precision in format specifier %q", ErrFormat, spec)
		}
		req.prec, _ = strconv.Atoi(p)
	}
	return req, nil
}

// format renders d according to req using the symbol, code and minor units of c.
func (c Currency) format(req formatRequest, d decimal.Decimal, nf locale.NumberFormat) string {
	if req.kind == formatCustom {
		return c.formatPattern(req.pattern, d, nf)
	}

	prec := req.prec
	if prec < 0 {
		prec = c.Scale()
	}
	r := roundDecimal(d, prec, HalfAwayFromZero)
	whole, frac := formatDigits(r, prec)

	grouped := req.kind == formatISOGrouped || (req.kind == formatStandard && req.verb != 'F')
	if grouped {
		whole = group(whole, nf.GroupSeparator, nf.GroupSizes)
	}
	text := whole
	if frac != "" {
		text += decimalSeparator(nf) + frac
	}

	switch {
	case req.kind == formatStandard && req.verb == 'C':
		text = placeSymbol(text, c.Symbol(), nf.SymbolPosition)
	case req.kind == formatISOGrouped, req.kind == formatISOFixed:
		text += " " + c.Code()
	}
	return signed(text, r, nf)
}

// formatPattern applies a custom pattern such as "#,##0.00" and attaches the symbol.
func (c Currency) formatPattern(pattern string, d decimal.Decimal, nf locale.NumberFormat) string {
	intPat, fracPat, _ := strings.Cut(pattern, ".")
	fracPat = strings.ReplaceAll(fracPat, ".", "")
	minInt := strings.Count(intPat, "0")
	minFrac := strings.Count(fracPat, "0")
	maxFrac := minFrac + strings.Count(fracPat, "#")

	r := roundDecimal(d, maxFrac, HalfAwayFromZero)
	whole, frac := formatDigits(r, maxFrac)

	frac = strings.TrimRight(frac, "0")
	if len(frac) < minFrac {
		frac += strings.Repeat("0", minFrac-len(frac))
	}
	if whole == "0" && minInt == 0 {
		whole = ""
	}
	if len(whole) < minInt {
		whole = strings.Repeat("0", minInt-len(whole)) + whole
	}
	if strings.Contains(intPat, ",") {
		whole = group(whole, nf.GroupSeparator, nf.GroupSizes)
	}

	text := whole
	if frac != "" {
		text += decimalSeparator(nf) + frac
	}
	if text == "" {
		text = "0"
	}
	return signed(placeSymbol(text, c.Symbol(), nf.SymbolPosition), r, nf)
}

// formatDigits returns the digits of |d| before the decimal point and
// exactly prec digits after it.
func formatDigits(d decimal.Decimal, prec int) (whole, frac string) {
	whole, frac, _ = strings.Cut(d.Abs().String(), ".")
	switch {
	case len(frac) < prec:
		frac += strings.Repeat("0", prec-len(frac))
	case len(frac) > prec:
		frac = frac[:prec]
	}
	return whole, frac
}

// group inserts sep into a string of digits.
// sizes lists group lengths from the decimal point leftwards; the last one
// repeats, and a trailing 0 stops grouping.
func group(digits, sep string, sizes []int) string {
	if sep == "" || len(sizes) == 0 {
		return digits
	}
	var parts []string
	i, k := len(digits), 0
	for i > 0 {
		size := sizes[k]
		if size <= 0 || i <= size {
			parts = append(parts, digits[:i])
			break
		}
		parts = append(parts, digits[i-size:i])
		i -= size
		if k+1 < len(sizes) {
			k++
		}
	}
	for l, r := 0, len(parts)-1; l < r; l, r = l+1, r-1 {
		parts[l], parts[r] = parts[r], parts[l]
	}
	return strings.Join(parts, sep)
}

// placeSymbol attaches the currency symbol according to a position code:
//
//	0  $n
//	1  n$
//	2  $ n
//	3  n $
//
// placeSymbol panics on any other code.
func placeSymbol(num, symbol string, pos int) string {
	switch pos {
	case 0:
		return symbol + num
	case 1:
		return num + symbol
	case 2:
		return symbol + " " + num
	case 3:
		return num + " " + symbol
	}
	panic(fmt.Sprintf("money: invalid symbol position %d", pos))
}

func signed(text string, d decimal.Decimal, nf locale.NumberFormat) string {
	if !d.IsNeg() || d.IsZero() {
		return text
	}
	return negativeSign(nf) + text
}

func negativeSign(nf locale.NumberFormat) string {
	if nf.NegativeSign == "" {
		return "-"
	}
	return nf.NegativeSign
}

func decimalSeparator(nf locale.NumberFormat) string {
	if nf.DecimalSeparator == "" {
		return "."
	}
	return nf.DecimalSeparator
}
