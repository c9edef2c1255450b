// Package money normalizes the heterogeneous price representations found in
// catalog data. Prices arrive as numbers or currency-formatted strings
// ("$1,234.56 / ton"); both are reduced to a decimal amount.
//
// Parsing is fail-soft on purpose: malformed catalog data resolves to zero
// instead of an error so that pricing and rendering never crash on bad input.
// Callers treat zero as "price unknown" and must not divide by it.
package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the rounding applied at the response edge. Internal math
// keeps full precision so aggregation does not compound rounding error.
const DisplayPlaces = 2

// Parse converts a raw price value into a decimal amount. Numeric kinds pass
// through; strings are stripped to digits and decimal points before parsing.
// Anything unparsable yields zero, never an error.
func Parse(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case string:
		return parseString(v)
	case json.Number:
		return parseString(v.String())
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

func parseString(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}
	parsed, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return parsed
}

// Display rounds an amount to the fixed display precision.
func Display(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPlaces)
}
