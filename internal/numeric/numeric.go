// Package numeric classifies loosely typed values as numbers and handles the
// decimal-place bookkeeping shared by range sampling and summing merges.
package numeric

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cecil-the-coder/kitutil/pkg/types"
)

// Number is a value recognised as numeric. Integers keep their exact value
// in Int; floats keep theirs in Float.
type Number struct {
	Int     int64
	Float   float64
	IsFloat bool
}

// FromValue reports whether v is a Go numeric value. Booleans are not numbers.
// Unsigned values above math.MaxInt64 are rejected.
func FromValue(v interface{}) (Number, bool) {
	switch n := v.(type) {
	case int:
		return Number{Int: int64(n)}, true
	case int8:
		return Number{Int: int64(n)}, true
	case int16:
		return Number{Int: int64(n)}, true
	case int32:
		return Number{Int: int64(n)}, true
	case int64:
		return Number{Int: n}, true
	case uint:
		return fromUnsigned(uint64(n))
	case uint8:
		return Number{Int: int64(n)}, true
	case uint16:
		return Number{Int: int64(n)}, true
	case uint32:
		return Number{Int: int64(n)}, true
	case uint64:
		return fromUnsigned(n)
	case float32:
		// Go through the shortest decimal form so 0.1f stays 0.1.
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(n), 'g', -1, 32), 64)
		return Number{Float: f, IsFloat: true}, true
	case float64:
		return Number{Float: n, IsFloat: true}, true
	}
	return Number{}, false
}

func fromUnsigned(u uint64) (Number, bool) {
	if u > math.MaxInt64 {
		return Number{}, false
	}
	return Number{Int: int64(u)}, true
}

// Float64 returns the number as a float64.
func (n Number) Float64() float64 {
	if n.IsFloat {
		return n.Float
	}
	return float64(n.Int)
}

// Decimal returns the number as an exact decimal of its shortest
// representation.
func (n Number) Decimal() decimal.Decimal {
	if n.IsFloat {
		return decimal.NewFromFloat(n.Float)
	}
	return decimal.NewFromInt(n.Int)
}

// Value returns the number as int for integers and float64 for floats.
func (n Number) Value() interface{} {
	if n.IsFloat {
		return n.Float
	}
	return int(n.Int)
}

// DecimalPlaces counts the digits after the decimal point in the shortest
// representation of a float. Floats always count at least one place, the
// way 2.0 is written; integers have none.
func (n Number) DecimalPlaces() int {
	if !n.IsFloat {
		return 0
	}
	if math.IsNaN(n.Float) || math.IsInf(n.Float, 0) {
		return 1
	}
	s := strconv.FormatFloat(n.Float, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 1
	}
	return len(s) - i - 1
}

// Round rounds f half-to-even at the given number of decimal places.
func Round(f float64, places int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	r, _ := decimal.NewFromFloat(f).RoundBank(int32(places)).Float64()
	return r
}

// Sum adds a and b. Two integers give an integer; otherwise the float result
// is rounded to the larger decimal-place count of the operands.
func Sum(a, b Number) Number {
	if !a.IsFloat && !b.IsFloat {
		return Number{Int: a.Int + b.Int}
	}
	places := a.DecimalPlaces()
	if p := b.DecimalPlaces(); p > places {
		places = p
	}
	if !isFinite(a) || !isFinite(b) {
		return Number{Float: a.Float64() + b.Float64(), IsFloat: true}
	}
	f, _ := a.Decimal().Add(b.Decimal()).RoundBank(int32(places)).Float64()
	return Number{Float: f, IsFloat: true}
}

func isFinite(n Number) bool {
	if !n.IsFloat {
		return true
	}
	return !math.IsNaN(n.Float) && !math.IsInf(n.Float, 0)
}

// PairOf extracts two numbers from a types.Pair, or from a slice or array of
// length two. Byte slices are raw data, not number lists, and are rejected.
func PairOf(v interface{}) (Number, Number, bool) {
	if p, ok := v.(types.Pair); ok {
		return pairFrom(p.First(), p.Second())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return Number{}, Number{}, false
	}
	if rv.Len() != 2 || rv.Type().Elem().Kind() == reflect.Uint8 {
		return Number{}, Number{}, false
	}
	return pairFrom(rv.Index(0).Interface(), rv.Index(1).Interface())
}

func pairFrom(a, b interface{}) (Number, Number, bool) {
	na, ok := FromValue(a)
	if !ok {
		return Number{}, Number{}, false
	}
	nb, ok := FromValue(b)
	if !ok {
		return Number{}, Number{}, false
	}
	return na, nb, true
}
