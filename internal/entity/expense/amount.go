package expense

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Amount is a non-negative decimal quantity kept as its textual form.
// Sums are computed with decimal.Decimal, never float64; rounding to cents
// happens only when a value is rendered.
type Amount string

var (
	errEmptyAmount    = errors.New("empty amount")
	errNegativeAmount = errors.New("negative amount")
)

func NewAmount(d decimal.Decimal) Amount {
	return Amount(d.String())
}

func (a Amount) IsEmpty() bool {
	return strings.TrimSpace(string(a)) == ""
}

func (a Amount) Decimal() (decimal.Decimal, error) {
	if a.IsEmpty() {
		return decimal.Zero, errEmptyAmount
	}
	d, err := decimal.NewFromString(strings.TrimSpace(string(a)))
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "not a number %q", string(a))
	}
	if d.IsNegative() {
		return decimal.Zero, errNegativeAmount
	}
	return d, nil
}

// Normalized rounds the amount to cents, the precision the store keeps.
func (a Amount) Normalized() (Amount, error) {
	d, err := a.Decimal()
	if err != nil {
		return "", err
	}
	return Amount(d.StringFixed(2)), nil
}

func (a Amount) String() string {
	return string(a)
}

// MarshalJSON writes valid amounts as JSON numbers, keeping trailing zeros,
// and anything else as a string.
func (a Amount) MarshalJSON() ([]byte, error) {
	raw := strings.TrimSpace(string(a))
	if raw == "" {
		return []byte("null"), nil
	}
	d, err := a.Decimal()
	if err != nil {
		return json.Marshal(raw)
	}
	if json.Valid([]byte(raw)) {
		return []byte(raw), nil
	}
	return []byte(d.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*a = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode amount")
		}
		*a = Amount(s)
	default:
		*a = Amount(raw)
	}
	return nil
}
