package money

import (
	"sync/atomic"

	"github.com/ledgerkit/money/locale"
)

// LocaleProvider supplies the locale rules used for currency resolution,
// formatting and parsing. [locale.Provider] is the default implementation.
type LocaleProvider interface {
	// Current returns the active locale.
	Current() string
	// Region returns the region of a locale, or false if the locale is
	// neutral and names no region.
	Region(loc string) (region string, ok bool)
	// RegionCurrency returns the ISO 4217 code of the currency used in a region.
	RegionCurrency(region string) (code string, ok bool)
	// NumberFormat returns the number formatting rules of a locale.
	NumberFormat(loc string) locale.NumberFormat
}

type localeHolder struct {
	p LocaleProvider
}

var localeProvider atomic.Pointer[localeHolder]

// Locales returns the package locale provider.
// Unless replaced with [SetLocaleProvider], it is built from the process
// environment on first use.
func Locales() LocaleProvider {
	if h := localeProvider.Load(); h != nil {
		return h.p
	}
	localeProvider.CompareAndSwap(nil, &localeHolder{p: locale.FromEnv()})
	return localeProvider.Load().p
}

// SetLocaleProvider replaces the package locale provider.
// Passing nil restores the environment-based default.
func SetLocaleProvider(p LocaleProvider) {
	if p == nil {
		localeProvider.Store(nil)
		return
	}
	localeProvider.Store(&localeHolder{p: p})
}
