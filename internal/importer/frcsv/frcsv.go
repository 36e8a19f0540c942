// Package frcsv holds parsing helpers shared by the French CSV
// importers: European number formatting and day-first dates.
package frcsv

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a European-formatted amount into cents.
// Examples: "1.234,56" -> 123456, "-588,74" -> -58874, "10,00" -> 1000.
func ParseAmount(s string) (int64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// ParseRate parses a VAT rate such as "10" or "5,5".
func ParseRate(s string) (decimal.Decimal, error) {
	clean := strings.TrimSuffix(strings.TrimSpace(s), "%")
	clean = strings.TrimSpace(clean)
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing rate %q: %w", s, err)
	}

	return d, nil
}

// dateLayouts are the day-first formats seen across till and
// purchasing exports.
var dateLayouts = []string{"02/01/2006", "02-01-2006", "2006-01-02"}

// ParseDate parses a calendar date, trying each known layout.
func ParseDate(s string) (time.Time, error) {
	clean := strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
