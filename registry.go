package money

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ledgerkit/money/locale"
)

//go:generate go run scripts/currency/codegen.go

// CurrencyRecord is a single currency definition as supplied by a [Source].
type CurrencyRecord struct {
	Code       string `validate:"required,len=3,alpha"`
	Num        int    `validate:"gte=1"`
	Name       string `validate:"required"`
	Symbol     string `validate:"required"`
	MinorUnits int    `validate:"gte=0,lte=19"`
}

// Source supplies currency definitions to a [Registry].
// Records is called at most once per registry.
type Source interface {
	Records() ([]CurrencyRecord, error)
}

// SourceFunc adapts a function to the [Source] interface.
type SourceFunc func() ([]CurrencyRecord, error)

// Records calls f.
func (f SourceFunc) Records() ([]CurrencyRecord, error) {
	return f()
}

// BuiltinSource returns the ISO 4217 definitions compiled into the package.
func BuiltinSource() Source {
	return SourceFunc(func() ([]CurrencyRecord, error) {
		return slices.Clone(builtinRecords), nil
	})
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Registry is the set of known currencies.
// The set is read from its [Source] on first use and never changes afterwards,
// so a Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	src     Source
	logger  *zap.Logger
	locales LocaleProvider

	once sync.Once
	set  *currencySet
	err  error
}

// RegistryOption configures a [Registry].
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report registry builds.
func WithLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLocaleProvider sets the provider used by [Registry.ForRegion] and
// [Registry.ForLocale]. By default the package provider is used.
func WithLocaleProvider(p LocaleProvider) RegistryOption {
	return func(r *Registry) {
		r.locales = p
	}
}

// NewRegistry returns a registry over the given source.
// The source is not read until the registry is first used.
func NewRegistry(src Source, opts ...RegistryOption) *Registry {
	r := &Registry{
		src:    src,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Build reads and validates the currency definitions.
// The work is done once, however many goroutines call Build concurrently;
// later calls return the result of the first one.
// Lookup methods call Build implicitly, so calling it is only needed to
// observe validation errors.
func (r *Registry) Build() error {
	r.once.Do(func() {
		r.set, r.err = buildSet(r.src, r.logger)
		if r.err != nil {
			r.logger.Error("building currency registry", zap.Error(r.err))
			return
		}
		r.logger.Debug("currency registry built", zap.Int("currencies", len(r.set.list)))
	})
	return r.err
}

// currencies returns the built set, or a set holding only [None] if the build failed.
func (r *Registry) currencies() *currencySet {
	if err := r.Build(); err != nil {
		return noneSet
	}
	return r.set
}

func (r *Registry) localeProvider() LocaleProvider {
	if r.locales != nil {
		return r.locales
	}
	return Locales()
}

// ByNum returns the currency with the given ISO 4217 numeric code, or [None].
func (r *Registry) ByNum(num int) Currency {
	c, ok := r.currencies().byNum[num]
	if !ok {
		return None
	}
	return c
}

// ByCode returns the currency with the given ISO 4217 alphabetic code, or [None].
// The code is matched case-insensitively.
func (r *Registry) ByCode(code string) Currency {
	c, ok := r.currencies().byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return None
	}
	return c
}

// ForRegion returns the currency used in the region, or [None].
func (r *Registry) ForRegion(region string) Currency {
	code, ok := r.localeProvider().RegionCurrency(region)
	if !ok {
		return None
	}
	return r.ByCode(code)
}

// ForLocale returns the currency used in the region of the locale.
// The invariant locale maps to [None].
//
// ForLocale returns an error wrapping [ErrValidation] if the locale is
// neutral, i.e. it names a language but no region.
func (r *Registry) ForLocale(loc string) (Currency, error) {
	if locale.IsInvariant(loc) {
		return None, nil
	}
	region, ok := r.localeProvider().Region(loc)
	if !ok {
		return None, fmt.Errorf("%w: locale %q does not name a region", ErrValidation, loc)
	}
	return r.ForRegion(region), nil
}

// Currencies returns all known currencies ordered by code.
func (r *Registry) Currencies() []Currency {
	return slices.Clone(r.currencies().list)
}

// parse resolves an alphabetic or numeric code.
func (r *Registry) parse(curr string) (Currency, error) {
	s := strings.TrimSpace(curr)
	var (
		c  Currency
		ok bool
	)
	if n, err := strconv.Atoi(s); err == nil {
		c, ok = r.currencies().byNum[n]
	} else {
		c, ok = r.currencies().byCode[strings.ToUpper(s)]
	}
	if !ok {
		return None, fmt.Errorf("%w: %q", ErrUnknownCurrency, curr)
	}
	return c, nil
}

type currencySet struct {
	list   []Currency
	byCode map[string]Currency
	byNum  map[int]Currency
}

var noneSet = newCurrencySet(1).add(None)

func newCurrencySet(size int) *currencySet {
	return &currencySet{
		list:   make([]Currency, 0, size),
		byCode: make(map[string]Currency, size),
		byNum:  make(map[int]Currency, size),
	}
}

func (s *currencySet) add(c Currency) *currencySet {
	s.list = append(s.list, c)
	s.byCode[c.code] = c
	s.byNum[c.num] = c
	return s
}

func buildSet(src Source, logger *zap.Logger) (*currencySet, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no currency source", ErrValidation)
	}
	recs, err := src.Records()
	if err != nil {
		return nil, fmt.Errorf("reading currency definitions: %w", err)
	}

	s := newCurrencySet(len(recs) + 1).add(None)
	for i, rec := range recs {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: currency record %d (%q): %w", ErrValidation, i, rec.Code, err)
		}
		c := newCurrency(rec)
		byCode, codeTaken := s.byCode[c.code]
		byNum, numTaken := s.byNum[c.num]
		switch {
		case codeTaken && byCode.Equal(c):
			if !c.Equal(None) {
				logger.Warn("skipping duplicate currency record",
					zap.Int("record", i),
					zap.String("code", c.code),
					zap.Int("num", c.num),
				)
			}
			continue
		case codeTaken:
			return nil, fmt.Errorf("%w: currency record %d: code %v is already assigned to number %v", ErrValidation, i, c.code, byCode.num)
		case numTaken:
			return nil, fmt.Errorf("%w: currency record %d: number %v is already assigned to code %v", ErrValidation, i, c.num, byNum.code)
		}
		s.add(c)
	}

	slices.SortFunc(s.list, func(a, b Currency) int {
		return strings.Compare(a.code, b.code)
	})
	return s, nil
}

var defaultRegistry atomic.Pointer[Registry]

// DefaultRegistry returns the registry used by the package-level lookup
// functions and by [Money] to resolve its currency.
// Unless replaced with [SetDefaultRegistry], it serves [BuiltinSource].
func DefaultRegistry() *Registry {
	if r := defaultRegistry.Load(); r != nil {
		return r
	}
	defaultRegistry.CompareAndSwap(nil, NewRegistry(BuiltinSource()))
	return defaultRegistry.Load()
}

// SetDefaultRegistry replaces the default registry.
// Passing nil restores the built-in definitions.
// Amounts created before the call resolve their currency numbers against
// the new registry.
func SetDefaultRegistry(r *Registry) {
	defaultRegistry.Store(r)
}

// CurrencyByCode returns the currency with the given alphabetic code from the
// default registry, or [None]. See [Registry.ByCode].
func CurrencyByCode(code string) Currency {
	return DefaultRegistry().ByCode(code)
}

// CurrencyByNum returns the currency with the given numeric code from the
// default registry, or [None]. See [Registry.ByNum].
func CurrencyByNum(num int) Currency {
	return DefaultRegistry().ByNum(num)
}

// CurrencyForRegion returns the currency used in the region from the
// default registry, or [None]. See [Registry.ForRegion].
func CurrencyForRegion(region string) Currency {
	return DefaultRegistry().ForRegion(region)
}

// CurrencyForLocale returns the currency used in the region of the locale
// from the default registry. See [Registry.ForLocale].
func CurrencyForLocale(loc string) (Currency, error) {
	return DefaultRegistry().ForLocale(loc)
}

// Currencies returns all currencies of the default registry ordered by code.
func Currencies() []Currency {
	return DefaultRegistry().Currencies()
}
