package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	negOne  = SomeFromString("-1.01")
	one     = SomeFromString("1.01")
	almost2 = SomeFromString("1.999")
	pi3     = SomeFromString("3.141592653")
	pi4     = SomeFromString("3.141592654")
	pi5     = SomeFromString("3.141592655")
	null    = None()
)

func TestAdd(t *testing.T) {
	assert.False(t, Add(null, null).Valid)

	assert.True(t, Equal(one, Add(one, null)))
	assert.True(t, Equal(one, Add(null, one)))
	assert.True(t, Equal(one, Add(one, Some(stddec.Zero))))
	assert.True(t, Equal(one, Add(Some(stddec.Zero), one)))

	assert.Equal(t, "11.01", Add(one, Some(stddec.NewFromInt(10))).Decimal.String())
	assert.Equal(t, "11.999", Add(almost2, Some(stddec.NewFromInt(10))).Decimal.String())
}

func TestAdd_PreservesScaleOfPresentOperand(t *testing.T) {
	x := SomeFromString("1.500")

	got := Add(null, x)
	assert.True(t, got.Valid)
	assert.Equal(t, int32(-3), got.Decimal.Exponent())

	got = Add(x, null)
	assert.Equal(t, int32(-3), got.Decimal.Exponent())

	sum := Add(SomeFromString("1.5"), SomeFromString("2.25"))
	assert.Equal(t, int32(-2), sum.Decimal.Exponent())
	assert.Equal(t, "3.75", sum.Decimal.String())
}

func TestSub(t *testing.T) {
	assert.False(t, Sub(null, null).Valid)

	// An absent left side returns the right side unchanged, not its negation.
	assert.True(t, Equal(one, Sub(null, one)))
	assert.True(t, Equal(one, Sub(one, null)))
	assert.Equal(t, int32(-2), Sub(null, one).Decimal.Exponent())

	assert.Equal(t, "-8.99", Sub(one, Some(stddec.NewFromInt(10))).Decimal.String())
	assert.True(t, IsZero(Sub(pi4, pi4)))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(null, null))
	assert.False(t, Equal(one, null))
	assert.False(t, Equal(null, one))
	assert.True(t, Equal(one, one))

	// scale is ignored
	assert.True(t, Equal(one, SomeFromString("1.0100000")))
	assert.True(t, Equal(almost2, SomeFromString("1.99900")))
	assert.True(t, Equal(SomeFromString("1.5"), SomeFromString("1.50")))
	assert.True(t, Equal(SomeFromString("1.5"), SomeFromString("1.500000")))
	assert.False(t, Equal(pi3, pi4))
}

func TestNotEqual(t *testing.T) {
	assert.False(t, NotEqual(null, null))
	assert.True(t, NotEqual(one, null))
	assert.True(t, NotEqual(null, one))
	assert.False(t, NotEqual(one, SomeFromString("1.0100000")))
	assert.False(t, NotEqual(almost2, SomeFromString("1.99900")))
}

func TestOrderingPredicates(t *testing.T) {
	tests := []struct {
		name   string
		a, b   stddec.NullDecimal
		lt, le bool
		gt, ge bool
	}{
		{"both absent", null, null, false, false, false, false},
		{"left absent", null, pi4, false, false, false, false},
		{"right absent", pi4, null, false, false, false, false},
		{"equal", pi3, pi3, false, true, false, true},
		{"equal other", pi5, pi5, false, true, false, true},
		{"less", pi3, pi4, true, true, false, false},
		{"greater", pi4, pi3, false, false, true, true},
		{"less again", pi4, pi5, true, true, false, false},
		{"greater again", pi5, pi4, false, false, true, true},
		{"equal across scale", one, SomeFromString("1.0100000"), false, true, false, true},
		{"equal across scale 2", almost2, SomeFromString("1.99900"), false, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lt, LessThan(tt.a, tt.b), "LessThan")
			assert.Equal(t, tt.le, LessThanOrEqual(tt.a, tt.b), "LessThanOrEqual")
			assert.Equal(t, tt.gt, GreaterThan(tt.a, tt.b), "GreaterThan")
			assert.Equal(t, tt.ge, GreaterThanOrEqual(tt.a, tt.b), "GreaterThanOrEqual")
		})
	}
}

func TestOrderingIsTotalForPresentValues(t *testing.T) {
	values := []stddec.NullDecimal{negOne, one, almost2, pi3, pi4, pi5, SomeFromString("1.010"), Some(stddec.Zero)}
	for _, a := range values {
		for _, b := range values {
			holds := 0
			for _, ok := range []bool{LessThan(a, b), Equal(a, b), LessThan(b, a)} {
				if ok {
					holds++
				}
			}
			assert.Equal(t, 1, holds, "%s vs %s", a.Decimal, b.Decimal)
		}
	}
}

func TestSignPredicates(t *testing.T) {
	assert.False(t, IsNegative(null))
	assert.True(t, IsNegative(negOne))
	assert.False(t, IsNegative(one))

	assert.True(t, IsNegativeOrNull(null))
	assert.True(t, IsNegativeOrNull(negOne))
	assert.False(t, IsNegativeOrNull(one))

	assert.False(t, IsPositive(null))
	assert.False(t, IsPositive(negOne))
	assert.True(t, IsPositive(one))

	assert.True(t, IsNotPositive(null))
	assert.True(t, IsNotPositive(negOne))
	assert.False(t, IsNotPositive(one))

	assert.True(t, IsPositiveOrNull(null))
	assert.False(t, IsPositiveOrNull(negOne))
	assert.True(t, IsPositiveOrNull(one))

	zero := SomeFromString("0.00")
	assert.False(t, IsNegative(zero))
	assert.False(t, IsPositive(zero))
	assert.True(t, IsNotPositive(zero))
}

func TestZeroPredicates(t *testing.T) {
	scaledZero := SomeFromString("0.000000")

	assert.False(t, IsZero(null))
	assert.True(t, IsZero(Some(stddec.Zero)))
	assert.True(t, IsZero(scaledZero))
	assert.True(t, IsZero(SomeFromString("0.00")))
	assert.False(t, IsZero(negOne))
	assert.False(t, IsZero(one))

	assert.False(t, IsNotZero(null))
	assert.False(t, IsNotZero(Some(stddec.Zero)))
	assert.False(t, IsNotZero(scaledZero))
	assert.True(t, IsNotZero(negOne))
	assert.True(t, IsNotZero(one))

	assert.True(t, IsZeroOrNull(null))
	assert.True(t, IsZeroOrNull(scaledZero))
	assert.False(t, IsZeroOrNull(one))

	assert.False(t, IsNotZeroOrNull(null))
	assert.False(t, IsNotZeroOrNull(scaledZero))
	assert.True(t, IsNotZeroOrNull(negOne))
}

func TestValueOrZero(t *testing.T) {
	assert.True(t, ValueOrZero(null).IsZero())
	assert.Equal(t, "1.01", ValueOrZero(one).String())

	for _, x := range []stddec.NullDecimal{null, one, negOne} {
		once := ValueOrZero(x)
		twice := ValueOrZero(Some(once))
		assert.True(t, once.Equal(twice))
	}
}
