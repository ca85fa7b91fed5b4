package money

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"

	"github.com/ledgerkit/money/locale"
)

var (
	enUS = locale.NumberFormat{GroupSeparator: ",", DecimalSeparator: ".", GroupSizes: []int{3}, NegativeSign: "-", SymbolPosition: 0}
	deDE = locale.NumberFormat{GroupSeparator: ".", DecimalSeparator: ",", GroupSizes: []int{3}, NegativeSign: "-", SymbolPosition: 3}
	enIN = locale.NumberFormat{GroupSeparator: ",", DecimalSeparator: ".", GroupSizes: []int{3, 2}, NegativeSign: "-", SymbolPosition: 0}
	frFR = locale.NumberFormat{GroupSeparator: " ", DecimalSeparator: ",", GroupSizes: []int{3}, NegativeSign: "-", SymbolPosition: 3}
)

func TestParseFormatSpec(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			spec string
			want formatRequest
		}{
			{"", formatRequest{kind: formatStandard, verb: 'C', prec: -1}},
			{"C", formatRequest{kind: formatStandard, verb: 'C', prec: -1}},
			{"c2", formatRequest{kind: formatStandard, verb: 'C', prec: 2}},
			{"G", formatRequest{kind: formatStandard, verb: 'C', prec: -1}},
			{"g0", formatRequest{kind: formatStandard, verb: 'C', prec: 0}},
			{"N0", formatRequest{kind: formatStandard, verb: 'N', prec: 0}},
			{"F99", formatRequest{kind: formatStandard, verb: 'F', prec: 99}},
			{"L", formatRequest{kind: formatISOGrouped, prec: -1}},
			{"I3", formatRequest{kind: formatISOFixed, prec: 3}},
			{"#,##0.00", formatRequest{kind: formatCustom, pattern: "#,##0.00"}},
			{"0", formatRequest{kind: formatCustom, pattern: "0"}},
		}
		for _, tt := range tests {
			got, err := parseFormatSpec(tt.spec)
			if err != nil {
				t.Errorf("parseFormatSpec(%q) failed: %v", tt.spec, err)
				continue
			}
			if got != tt.want {
				t.Errorf("parseFormatSpec(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"X", "Z2", "C100", "Cx", "C-1", "N 2", "$#,##0", "E"}
		for _, spec := range tests {
			_, err := parseFormatSpec(spec)
			if !errors.Is(err, ErrFormat) {
				t.Errorf("parseFormatSpec(%q) = %v, want %v", spec, err, ErrFormat)
			}
		}
	})
}

func TestCurrency_FormatMoney(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount, spec string
			nf                 locale.NumberFormat
			want               string
		}{
			// Standard specifiers
			{"USD", "19.99", "C", enUS, "$19.99"},
			{"JPY", "1000", "C", enUS, "¥1,000"},
			{"USD", "1234567.891", "C", enUS, "$1,234,567.89"},
			{"USD", "1234567.891", "G", enUS, "$1,234,567.89"},
			{"USD", "1234567.891", "N", enUS, "1,234,567.89"},
			{"USD", "1234567.891", "F", enUS, "1234567.89"},
			{"USD", "1234.5", "C0", enUS, "$1,235"},
			{"USD", "1234.5", "C3", enUS, "$1,234.500"},
			{"USD", "0.125", "C", enUS, "$0.13"},
			{"USD", "-0.125", "C", enUS, "-$0.13"},
			{"USD", "-1234.5", "C", enUS, "-$1,234.50"},
			{"USD", "-0.001", "C", enUS, "$0.00"},
			{"USD", "0", "C", enUS, "$0.00"},
			{"OMR", "1.5", "N", enUS, "1.500"},
			{"USD", "1", "F25", enUS, "1.0000000000000000000000000"},

			// ISO specifiers
			{"USD", "1234567.891", "L", enUS, "1,234,567.89 USD"},
			{"USD", "1234567.891", "I", enUS, "1234567.89 USD"},
			{"USD", "-1234.5", "L0", enUS, "-1,235 USD"},
			{"EUR", "1234.5", "L", deDE, "1.234,50 EUR"},
			{"EUR", "1234.5", "I", deDE, "1234,50 EUR"},

			// Locales
			{"EUR", "1234.56", "C", deDE, "1.234,56 €"},
			{"EUR", "-1234.56", "C", deDE, "-1.234,56 €"},
			{"INR", "12345678", "N", enIN, "1,23,45,678.00"},
			{"INR", "123", "C", enIN, "₹123.00"},
			{"EUR", "1234.5", "N", frFR, "1 234,50"},
			{"EUR", "1234567", "C0", frFR, "1 234 567 €"},

			// Custom patterns
			{"USD", "1234.56", "#,##0.#", enUS, "$1,234.6"},
			{"USD", "1234.56", "0.000", enUS, "$1234.560"},
			{"USD", "0.5", "#.##", enUS, "$.5"},
			{"USD", "42", "00000", enUS, "$00042"},
			{"USD", "-42.5", "0", enUS, "-$43"},
			{"USD", "0", "#", enUS, "$0"},
			{"EUR", "1234.5", "#,##0.00", deDE, "1.234,50 €"},
		}
		for _, tt := range tests {
			c := MustParseCurr(tt.curr)
			m := MustParseAmount(tt.curr, tt.amount)
			got, err := c.FormatMoney(tt.spec, m, tt.nf)
			if err != nil {
				t.Errorf("%v.FormatMoney(%q, %q) failed: %v", c.Code(), tt.spec, m, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.FormatMoney(%q, %q) = %q, want %q", c.Code(), tt.spec, m, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		c := MustParseCurr("USD")
		m := MustParseAmount("USD", "1")
		for _, spec := range []string{"X", "C100", "Q2"} {
			_, err := c.FormatMoney(spec, m, enUS)
			if !errors.Is(err, ErrFormat) {
				t.Errorf("%v.FormatMoney(%q, %q) = %v, want %v", c.Code(), spec, m, err, ErrFormat)
			}
		}
	})
}

func TestPlaceSymbol(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			pos  int
			want string
		}{
			{0, "$19.99"},
			{1, "19.99$"},
			{2, "$ 19.99"},
			{3, "19.99 $"},
		}
		for _, tt := range tests {
			if got := placeSymbol("19.99", "$", tt.pos); got != tt.want {
				t.Errorf("placeSymbol(%q, %q, %v) = %q, want %q", "19.99", "$", tt.pos, got, tt.want)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		for _, pos := range []int{-1, 4, 7} {
			func() {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("placeSymbol(%q, %q, %v) did not panic", "19.99", "$", pos)
					}
				}()
				placeSymbol("19.99", "$", pos)
			}()
		}
	})
}

func TestGroup(t *testing.T) {
	tests := []struct {
		digits string
		sep    string
		sizes  []int
		want   string
	}{
		{"1", ",", []int{3}, "1"},
		{"123", ",", []int{3}, "123"},
		{"1234", ",", []int{3}, "1,234"},
		{"1234567", ",", []int{3}, "1,234,567"},
		{"1234567", ",", []int{3, 2}, "12,34,567"},
		{"1234567", ",", []int{3, 0}, "1234,567"},
		{"1234567", ",", nil, "1234567"},
		{"1234567", "", []int{3}, "1234567"},
		{"1234567", "'", []int{2}, "1'23'45'67"},
	}
	for _, tt := range tests {
		if got := group(tt.digits, tt.sep, tt.sizes); got != tt.want {
			t.Errorf("group(%q, %q, %v) = %q, want %q", tt.digits, tt.sep, tt.sizes, got, tt.want)
		}
	}
}

func TestFormatDigits(t *testing.T) {
	tests := []struct {
		d           string
		prec        int
		whole, frac string
	}{
		{"0", 0, "0", ""},
		{"0", 2, "0", "00"},
		{"-12.3", 2, "12", "30"},
		{"12.345", 2, "12", "34"},
		{"0.001", 3, "0", "001"},
	}
	for _, tt := range tests {
		d := decimal.MustParse(tt.d)
		whole, frac := formatDigits(d, tt.prec)
		if whole != tt.whole || frac != tt.frac {
			t.Errorf("formatDigits(%v, %v) = %q, %q, want %q, %q", d, tt.prec, whole, frac, tt.whole, tt.frac)
		}
	}
}

func TestMoney_TextLocale(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount, spec, loc, want string
		}{
			{"USD", "19.99", "C", "en-US", "$19.99"},
			{"JPY", "1000", "C", "en-US", "¥1,000"},
			{"JPY", "1000", "", "ja-JP", "¥1,000"},
			{"EUR", "-1234.56", "C", "de-DE", "-1.234,56 €"},
			{"EUR", "1234.56", "N", "de-DE", "1.234,56"},
			{"CHF", "1234.5", "C", "de-CH", "CHF 1’234.50"},
			{"USD", "1234.5", "C", "", "$1,234.50"},
			{"USD", "1234.5", "C", "xx-invalid-", "$1,234.50"},
		}
		for _, tt := range tests {
			m := MustParseAmount(tt.curr, tt.amount)
			got, err := m.TextLocale(tt.spec, tt.loc)
			if err != nil {
				t.Errorf("%q.TextLocale(%q, %q) failed: %v", m, tt.spec, tt.loc, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.TextLocale(%q, %q) = %q, want %q", m, tt.spec, tt.loc, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		m := MustParseAmount("USD", "1")
		_, err := m.TextLocale("X", "en-US")
		if !errors.Is(err, ErrFormat) {
			t.Errorf("%q.TextLocale(\"X\", \"en-US\") = %v, want %v", m, err, ErrFormat)
		}
	})
}

func TestMoney_Text(t *testing.T) {
	tests := []struct {
		curr, amount, spec, want string
	}{
		{"USD", "19.99", "C", "$19.99"},
		{"JPY", "1000", "C", "¥1,000"},
		{"USD", "19.99", "I", "19.99 USD"},
	}
	for _, tt := range tests {
		m := MustParseAmount(tt.curr, tt.amount)
		got, err := m.Text(tt.spec)
		if err != nil {
			t.Errorf("%q.Text(%q) failed: %v", m, tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q.Text(%q) = %q, want %q", m, tt.spec, got, tt.want)
		}
	}
}
