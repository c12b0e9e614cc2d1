// Package valueobject contains small domain value types and pure helpers.
package valueobject

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var sizeSeparator = regexp.MustCompile(`[x*]`)

// SizeMultiplier converts a free-text size field (ukuran) into the numeric
// multiplier applied to quantity x unit price.
//
// Rules, in order:
//   - empty or whitespace-only input yields 1 (the item is unit-priced)
//   - "AxB" or "A*B" with numeric A and B yields A*B (area pricing)
//   - a single parseable number yields that number (length or precomputed area)
//   - anything else falls back to 1
//
// Malformed input is never an error: order entry must not stall on a size the
// operator typed loosely, so the fallback is silent.
func SizeMultiplier(ukuran string) decimal.Decimal {
	normalized := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(ukuran, ",", ".")))
	if normalized == "" {
		return decimal.NewFromInt(1)
	}

	parts := sizeSeparator.Split(normalized, -1)
	if len(parts) == 2 {
		a, errA := decimal.NewFromString(strings.TrimSpace(parts[0]))
		b, errB := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if errA == nil && errB == nil {
			return a.Mul(b)
		}
	}

	if size, err := decimal.NewFromString(normalized); err == nil {
		return size
	}
	return decimal.NewFromInt(1)
}
