// Package locale supplies the locale rules consumed by package money:
// locale normalisation, region derivation, the legal tender of a region
// and the number formatting conventions of a locale.
//
// Locales are BCP 47 tags ("en-US", "de-CH") or POSIX locale names
// ("en_US.UTF-8"). The empty string, "C", "POSIX", "und" and "root"
// denote the invariant locale.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// NumberFormat describes how a locale writes numbers.
// A NumberFormat must not be modified after it has been handed to a [Provider].
type NumberFormat struct {
	GroupSeparator   string
	DecimalSeparator string
	// GroupSizes lists digit group sizes from the decimal point leftwards.
	// The last size repeats; a size of 0 stops grouping.
	GroupSizes   []int
	NegativeSign string
	// SymbolPosition places a currency symbol relative to the number:
	//
	//	0  $n
	//	1  n$
	//	2  $ n
	//	3  n $
	SymbolPosition int
}

// Invariant is the culture-independent number format.
var Invariant = NumberFormat{
	GroupSeparator:   ",",
	DecimalSeparator: ".",
	GroupSizes:       []int{3},
	NegativeSign:     "-",
	SymbolPosition:   0,
}

// Provider answers locale questions from the built-in rules table and the
// CLDR data shipped with golang.org/x/text.
// Provider is immutable and safe for concurrent use.
type Provider struct {
	current string
	tags    []language.Tag
	formats []NumberFormat
	matcher language.Matcher
}

// New returns a provider whose current locale is loc.
func New(loc string) *Provider {
	tags := make([]language.Tag, 0, len(builtinFormats)+1)
	formats := make([]NumberFormat, 0, len(builtinFormats)+1)
	tags = append(tags, language.Und)
	formats = append(formats, Invariant)
	for _, f := range builtinFormats {
		tags = append(tags, language.MustParse(f.tag))
		formats = append(formats, f.format)
	}
	return newProvider(Normalize(loc), tags, formats)
}

// FromEnv returns a provider whose current locale is taken from the
// LC_ALL, LC_MONETARY and LANG environment variables, in that order.
func FromEnv() *Provider {
	for _, key := range []string{"LC_ALL", "LC_MONETARY", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return New(v)
		}
	}
	return New("")
}

func newProvider(current string, tags []language.Tag, formats []NumberFormat) *Provider {
	return &Provider{
		current: current,
		tags:    tags,
		formats: formats,
		matcher: language.NewMatcher(tags),
	}
}

// With returns a copy of the provider that uses nf for locale loc.
// An existing rule for the same locale is replaced.
// With returns the provider unchanged if loc is not a well-formed tag.
func (p *Provider) With(loc string, nf NumberFormat) *Provider {
	tag, err := language.Parse(Normalize(loc))
	if err != nil {
		return p
	}
	tags := append([]language.Tag(nil), p.tags...)
	formats := append([]NumberFormat(nil), p.formats...)
	for i, t := range tags {
		if t == tag {
			formats[i] = nf
			return newProvider(p.current, tags, formats)
		}
	}
	tags = append(tags, tag)
	formats = append(formats, nf)
	return newProvider(p.current, tags, formats)
}

// Current returns the normalised current locale.
func (p *Provider) Current() string {
	return p.current
}

// Region returns the region of the locale.
// It returns false for the invariant locale, for neutral locales such as "en"
// that name a language without a region, and for malformed locales.
func (p *Provider) Region(loc string) (string, bool) {
	n := Normalize(loc)
	if n == "" {
		return "", false
	}
	tag, err := language.Parse(n)
	if err != nil {
		return "", false
	}
	r, conf := tag.Region()
	if conf != language.Exact {
		return "", false
	}
	return r.String(), true
}

// RegionCurrency returns the ISO 4217 code of the currency that is legal
// tender in the region.
func (p *Provider) RegionCurrency(region string) (string, bool) {
	r, err := language.ParseRegion(strings.ToUpper(strings.TrimSpace(region)))
	if err != nil {
		return "", false
	}
	unit, ok := currency.FromRegion(r)
	if !ok {
		return "", false
	}
	return unit.String(), true
}

// NumberFormat returns the number format of the closest known locale,
// or [Invariant] if nothing matches.
func (p *Provider) NumberFormat(loc string) NumberFormat {
	n := Normalize(loc)
	if n == "" {
		return Invariant
	}
	tag, err := language.Parse(n)
	if err != nil {
		return Invariant
	}
	_, i, conf := p.matcher.Match(tag)
	if conf == language.No || i <= 0 || i >= len(p.formats) {
		return Invariant
	}
	return p.formats[i]
}

// Normalize converts a POSIX or BCP 47 locale name to its canonical
// BCP 47 form. It returns "" for the invariant locale.
// Malformed names are returned with only the POSIX decorations removed.
func Normalize(loc string) string {
	s := strings.TrimSpace(loc)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	switch strings.ToLower(s) {
	case "", "c", "posix", "und", "root", "invariant":
		return ""
	}
	tag, err := language.Parse(s)
	if err != nil {
		return s
	}
	if tag == language.Und {
		return ""
	}
	return tag.String()
}

// IsInvariant reports whether loc denotes the invariant locale.
func IsInvariant(loc string) bool {
	return Normalize(loc) == ""
}
