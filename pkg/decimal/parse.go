package decimal

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMalformedDecimal is returned by Parse when non-empty text is not a
// valid decimal literal.
var ErrMalformedDecimal = errors.New("malformed decimal text")

// Logger is the error sink Parse reports failures to.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Errorf(format string, args ...any) {}

// Parse converts s to a decimal, keeping the exact scale of the text.
// Empty s yields def. Malformed s is logged once and returned as an error
// wrapping ErrMalformedDecimal; def is never substituted for it.
// A nil log discards the message.
func Parse(s string, def decimal.NullDecimal, log Logger) (decimal.NullDecimal, error) {
	if s == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		if log == nil {
			log = NopLogger{}
		}
		log.Errorf("could not convert %q to a decimal: %v", s, err)
		return decimal.NullDecimal{}, fmt.Errorf("%w %q: %v", ErrMalformedDecimal, s, err)
	}
	return Some(d), nil
}

// ParseOrNull is Parse with an absent default.
func ParseOrNull(s string, log Logger) (decimal.NullDecimal, error) {
	return Parse(s, None(), log)
}
