// Package decimal provides null-tolerant comparison and arithmetic helpers
// over shopspring decimals.
//
// An absent value is a decimal.NullDecimal whose Valid field is false. It is
// never coerced to zero except by ValueOrZero and TotalOf. All comparisons
// go through Cmp, so values that differ only in scale (1.5 and 1.50) are
// treated as equal.
package decimal

import (
	"github.com/shopspring/decimal"
)

// Some wraps a present decimal.
func Some(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// None returns an absent decimal.
func None() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

// SomeFromString wraps the decimal parsed from s and panics if s is malformed.
// Intended for literals in tests and initialisers.
func SomeFromString(s string) decimal.NullDecimal {
	return Some(decimal.RequireFromString(s))
}

// Equal reports whether a and b have the same value, ignoring scale.
// Two absent values are equal; a present and an absent value are not.
func Equal(a, b decimal.NullDecimal) bool {
	if !a.Valid && !b.Valid {
		return true
	}
	if !a.Valid || !b.Valid {
		return false
	}
	return a.Decimal.Cmp(b.Decimal) == 0
}

// NotEqual is the negation of Equal.
func NotEqual(a, b decimal.NullDecimal) bool {
	return !Equal(a, b)
}

// LessThan reports a < b. False if either side is absent.
func LessThan(a, b decimal.NullDecimal) bool {
	if !a.Valid || !b.Valid {
		return false
	}
	return a.Decimal.Cmp(b.Decimal) < 0
}

// LessThanOrEqual reports a <= b. False if either side is absent.
func LessThanOrEqual(a, b decimal.NullDecimal) bool {
	if !a.Valid || !b.Valid {
		return false
	}
	return a.Decimal.Cmp(b.Decimal) <= 0
}

// GreaterThan reports a > b. False if either side is absent.
func GreaterThan(a, b decimal.NullDecimal) bool {
	if !a.Valid || !b.Valid {
		return false
	}
	return !LessThanOrEqual(a, b)
}

// GreaterThanOrEqual reports a >= b. False if either side is absent.
func GreaterThanOrEqual(a, b decimal.NullDecimal) bool {
	if !a.Valid || !b.Valid {
		return false
	}
	return !LessThan(a, b)
}

var zero = Some(decimal.Zero)

// IsNegative reports d < 0. False when d is absent.
func IsNegative(d decimal.NullDecimal) bool {
	return LessThan(d, zero)
}

// IsNegativeOrNull reports d < 0 or d absent.
func IsNegativeOrNull(d decimal.NullDecimal) bool {
	if !d.Valid {
		return true
	}
	return IsNegative(d)
}

// IsPositive reports d > 0. False when d is absent.
func IsPositive(d decimal.NullDecimal) bool {
	return GreaterThan(d, zero)
}

// IsPositiveOrNull reports d > 0 or d absent.
func IsPositiveOrNull(d decimal.NullDecimal) bool {
	if !d.Valid {
		return true
	}
	return IsPositive(d)
}

// IsNotPositive reports d <= 0 or d absent.
func IsNotPositive(d decimal.NullDecimal) bool {
	return !IsPositive(d)
}

// IsZero reports whether d is present and equal to zero at any scale.
func IsZero(d decimal.NullDecimal) bool {
	if !d.Valid {
		return false
	}
	return d.Decimal.Cmp(decimal.Zero) == 0
}

// IsNotZero reports whether d is present and not zero.
// Absent is neither zero nor not zero, so IsNotZero(None()) is false.
func IsNotZero(d decimal.NullDecimal) bool {
	if !d.Valid {
		return false
	}
	return !IsZero(d)
}

// IsZeroOrNull reports whether d is absent or equal to zero.
func IsZeroOrNull(d decimal.NullDecimal) bool {
	return !d.Valid || d.Decimal.Cmp(decimal.Zero) == 0
}

// IsNotZeroOrNull is the negation of IsZeroOrNull.
func IsNotZeroOrNull(d decimal.NullDecimal) bool {
	return !IsZeroOrNull(d)
}

// Add returns a + b. If exactly one side is absent the other is returned
// as is, keeping its scale. If both are absent the result is absent.
func Add(a, b decimal.NullDecimal) decimal.NullDecimal {
	switch {
	case !a.Valid:
		return b
	case !b.Valid:
		return a
	}
	return Some(a.Decimal.Add(b.Decimal))
}

// Sub returns a - b with the same absence rules as Add.
// Note that Sub(None(), b) returns b, not -b.
func Sub(a, b decimal.NullDecimal) decimal.NullDecimal {
	switch {
	case !a.Valid:
		return b
	case !b.Valid:
		return a
	}
	return Some(a.Decimal.Sub(b.Decimal))
}

// ValueOrZero returns the value of d, or decimal.Zero when d is absent.
func ValueOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
