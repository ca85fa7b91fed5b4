package money

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			text, loc, curr, want string
		}{
			{"$1,234.56", "en-US", "USD", "1234.56"},
			{"1234.56", "en-US", "USD", "1234.56"},
			{"USD 1,234.56", "en-US", "USD", "1234.56"},
			{"1,234.56 usd", "en-US", "USD", "1234.56"},
			{"  $ 12  ", "en-US", "USD", "12"},
			{".5", "en-US", "USD", "0.5"},
			{"-$1.00", "en-US", "USD", "-1"},
			{"$-1.00", "en-US", "USD", "-1"},
			{"1.00-", "en-US", "USD", "-1"},
			{"($1.00)", "en-US", "USD", "-1"},
			{"$0.001", "en-US", "USD", "0.001"},
			{"1.234,56 €", "de-DE", "EUR", "1234.56"},
			{"-1.234,56 €", "de-DE", "EUR", "-1234.56"},
			{"1234,56", "de-DE", "EUR", "1234.56"},
			{"1 234,56 €", "fr-FR", "EUR", "1234.56"},
			{"1 234,56 €", "fr-FR", "EUR", "1234.56"},
			{"1 234,56 €", "fr-FR", "EUR", "1234.56"},
			{"¥1,000", "ja-JP", "JPY", "1000"},
			{"CHF 1’234.50", "de-CH", "CHF", "1234.5"},
			{"CHF 1'234.50", "de-CH", "CHF", "1234.5"},
			{"-1'234'567", "de-CH", "CHF", "-1234567"},
			{"¤1,234.00", "", "XXX", "1234"},
		}
		for _, tt := range tests {
			got, err := Parse(tt.text, tt.loc)
			if err != nil {
				t.Errorf("Parse(%q, %q) failed: %v", tt.text, tt.loc, err)
				continue
			}
			want := MustParseAmount(tt.curr, tt.want)
			if !got.Equal(want) {
				t.Errorf("Parse(%q, %q) = %q, want %q", tt.text, tt.loc, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			text, loc string
			want      error
		}{
			{"", "en-US", ErrFormat},
			{"   ", "en-US", ErrFormat},
			{"abc", "en-US", ErrFormat},
			{"$", "en-US", ErrFormat},
			{"$1.2.3", "en-US", ErrFormat},
			{"1,234.", "en-US", ErrFormat},
			{"--1", "en-US", ErrFormat},
			{"(-1)", "en-US", ErrFormat},
			{"1e5", "en-US", ErrFormat},
			{"€1.00", "en-US", ErrFormat},
			{"1,234.56", "de-DE", ErrFormat},
			{"1'234.56", "en-US", ErrFormat},
			{"12345678901234567890", "en-US", ErrFormat},
			{"1.00", "en", ErrValidation},
			{"1.00", "de", ErrValidation},
		}
		for _, tt := range tests {
			_, err := Parse(tt.text, tt.loc)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q, %q) = %v, want %v", tt.text, tt.loc, err, tt.want)
			}
		}
	})
}

func TestTryParse(t *testing.T) {
	got, ok := TryParse("$19.99", "en-US")
	if !ok {
		t.Fatalf("TryParse(\"$19.99\", \"en-US\") failed")
	}
	if want := MustParseAmount("USD", "19.99"); got != want {
		t.Errorf("TryParse(\"$19.99\", \"en-US\") = %q, want %q", got, want)
	}

	got, ok = TryParse("nineteen dollars", "en-US")
	if ok {
		t.Errorf("TryParse(\"nineteen dollars\", \"en-US\") = %q, true, want false", got)
	}
	if got != (Money{}) {
		t.Errorf("TryParse(\"nineteen dollars\", \"en-US\") = %q, want zero value", got)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	tests := []struct {
		curr, loc string
		amounts   []string
	}{
		{"USD", "en-US", []string{"0.00", "0.01", "19.99", "-19.99", "1000000.01", "-1234567.89", "99999999999999.99"}},
		{"JPY", "ja-JP", []string{"0", "1", "1000", "-987654321", "9999999999999999"}},
		{"EUR", "de-DE", []string{"0.00", "1234.56", "-0.50"}},
		{"EUR", "fr-FR", []string{"1234567.89", "-1.00"}},
		{"INR", "en-IN", []string{"12345678.90"}},
	}
	for _, tt := range tests {
		for _, s := range tt.amounts {
			m := MustParseAmount(tt.curr, s)
			text, err := m.TextLocale("C", tt.loc)
			if err != nil {
				t.Errorf("%q.TextLocale(\"C\", %q) failed: %v", m, tt.loc, err)
				continue
			}
			got, err := Parse(text, tt.loc)
			if err != nil {
				t.Errorf("Parse(%q, %q) failed: %v", text, tt.loc, err)
				continue
			}
			if !got.Equal(m) {
				t.Errorf("Parse(%q, %q) = %q, want %q", text, tt.loc, got, m)
			}
		}
	}
}
