package money

import (
	"math"

	"github.com/govalues/decimal"
)

// The conversions below truncate the fractional part of the amount toward zero
// and report false when the whole part does not fit the target type.

// Int8 returns the whole part of the amount as an int8.
func (m Money) Int8() (int8, bool) {
	v, ok := toSigned(m.value, math.MinInt8, math.MaxInt8)
	return int8(v), ok
}

// Int16 returns the whole part of the amount as an int16.
func (m Money) Int16() (int16, bool) {
	v, ok := toSigned(m.value, math.MinInt16, math.MaxInt16)
	return int16(v), ok
}

// Int32 returns the whole part of the amount as an int32.
func (m Money) Int32() (int32, bool) {
	v, ok := toSigned(m.value, math.MinInt32, math.MaxInt32)
	return int32(v), ok
}

// Int64 returns the whole part of the amount as an int64.
func (m Money) Int64() (int64, bool) {
	return toSigned(m.value, math.MinInt64, math.MaxInt64)
}

// Uint8 returns the whole part of the amount as a uint8.
func (m Money) Uint8() (uint8, bool) {
	v, ok := toUnsigned(m.value, math.MaxUint8)
	return uint8(v), ok
}

// Uint16 returns the whole part of the amount as a uint16.
func (m Money) Uint16() (uint16, bool) {
	v, ok := toUnsigned(m.value, math.MaxUint16)
	return uint16(v), ok
}

// Uint32 returns the whole part of the amount as a uint32.
func (m Money) Uint32() (uint32, bool) {
	v, ok := toUnsigned(m.value, math.MaxUint32)
	return uint32(v), ok
}

// Uint64 returns the whole part of the amount as a uint64.
func (m Money) Uint64() (uint64, bool) {
	return toUnsigned(m.value, math.MaxUint64)
}

// Float64 returns the nearest binary floating-point number rounded
// using [rounding half to even] (banker's rounding).
// See also constructor [NewFromFloat64].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) Float64() (float64, bool) {
	return m.value.Float64()
}

// Float32 is like [Money.Float64] but returns false if the amount is out of
// the range of a float32.
func (m Money) Float32() (float32, bool) {
	f, ok := m.value.Float64()
	if !ok || math.Abs(f) > math.MaxFloat32 {
		return 0, false
	}
	return float32(f), true
}

func toSigned(d decimal.Decimal, lo, hi int64) (int64, bool) {
	whole, _, ok := d.Trunc(0).Int64(0)
	if !ok || whole < lo || whole > hi {
		return 0, false
	}
	return whole, true
}

func toUnsigned(d decimal.Decimal, hi uint64) (uint64, bool) {
	t := d.Trunc(0).Rescale(0)
	u := t.Coef()
	if u == 0 {
		return 0, true
	}
	if t.IsNeg() || u > hi {
		return 0, false
	}
	return u, true
}
