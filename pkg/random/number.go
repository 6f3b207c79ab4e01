package random

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Defaults applied to unset NumberOptions fields.
const (
	DefaultMin             = 0
	DefaultMax             = 99999
	DefaultNumberPrecision = 1
	DefaultFloatPrecision  = 0.01
)

// stepTolerance is the relative slack allowed when counting steps, so that
// (0.99-0.5)/0.01 evaluating to 48.99999999999999 still counts 49.
const stepTolerance = 1e-9

// NumberOptions bounds a generated number. Nil fields take the package
// defaults. Options are only read, never written through.
type NumberOptions struct {
	Min       *float64
	Max       *float64
	Precision *float64
}

// Value returns a pointer to v, for filling NumberOptions inline.
func Value(v float64) *float64 {
	return &v
}

// numberRange is the effective range after defaults and clamping.
type numberRange struct {
	min, max, precision float64
}

func (o NumberOptions) resolve(defaultPrecision float64) (numberRange, error) {
	nr := numberRange{min: DefaultMin, max: DefaultMax, precision: defaultPrecision}
	if o.Min != nil {
		nr.min = *o.Min
	}
	if o.Max != nil {
		nr.max = *o.Max
	}
	if o.Precision != nil {
		nr.precision = *o.Precision
	}

	for _, v := range [...]float64{nr.min, nr.max, nr.precision} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return numberRange{}, fmt.Errorf("%w: non-finite option %v", ErrInvalidArgument, v)
		}
	}
	if nr.precision <= 0 {
		return numberRange{}, fmt.Errorf("%w: precision must be positive, got %v", ErrInvalidArgument, nr.precision)
	}

	// An inverted range collapses onto min.
	if nr.max < nr.min {
		nr.max = nr.min
	}
	return nr, nil
}

// sample draws min + k*precision for a uniform k, rounded to the decimal
// digits of min and precision so binary drift never surfaces.
func (r *Random) sample(nr numberRange) float64 {
	digits := max(Decimals(nr.min), Decimals(nr.precision))

	// The tolerant floor may count one step past max; drop it so every k
	// lands on the grid inside the range.
	steps := math.Floor((nr.max - nr.min) / nr.precision * (1 + stepTolerance))
	for steps > 0 && Round(nr.min+steps*nr.precision, digits) > nr.max {
		steps--
	}
	k := math.Floor(r.Float64() * (steps + 1))

	return Round(nr.min+k*nr.precision, digits)
}

// Number returns a value in the inclusive range [Min, Max] that is reachable
// as Min + k*Precision. Precision defaults to 1, so with integral bounds the
// result is an integer. Max below Min yields Min.
func (r *Random) Number(opts NumberOptions) (float64, error) {
	nr, err := opts.resolve(DefaultNumberPrecision)
	if err != nil {
		return 0, err
	}
	return r.sample(nr), nil
}

// NumberMax is Number with only Max set.
func (r *Random) NumberMax(max float64) (float64, error) {
	return r.Number(NumberOptions{Max: &max})
}

// Int returns an integer in [min, max]. Max below min yields min.
func (r *Random) Int(min, max int) int {
	if max < min {
		max = min
	}
	return int(r.sample(numberRange{min: float64(min), max: float64(max), precision: 1}))
}

// Float is Number with a default precision of 0.01. The result is always
// rounded to the decimal digits of the precision step.
func (r *Random) Float(opts NumberOptions) (float64, error) {
	nr, err := opts.resolve(DefaultFloatPrecision)
	if err != nil {
		return 0, err
	}
	return r.sample(nr), nil
}

// FloatPrecision is Float with only Precision set.
func (r *Random) FloatPrecision(precision float64) (float64, error) {
	return r.Float(NumberOptions{Precision: &precision})
}

// Round rounds x half away from zero to the given number of decimal digits.
// Negative digits are treated as zero.
func Round(x float64, digits int) float64 {
	if digits <= 0 {
		return math.Round(x)
	}
	p := math.Pow10(digits)
	scaled := x * p
	if math.IsInf(scaled, 0) {
		return x
	}
	return math.Round(scaled) / p
}

// Decimals reports how many digits follow the decimal point in the shortest
// representation of x, e.g. 2 for 0.01 and 0 for 5.
func Decimals(x float64) int {
	s := strconv.FormatFloat(math.Abs(x), 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}
