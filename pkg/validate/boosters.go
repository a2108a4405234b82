package validate

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var boosterRe = regexp.MustCompile(`^([^()]+?)\s*(?:\((\d+(?:[.,]\d+)?)\))?$`)

// BoostersFromString parses a spreadsheet booster cell of the form
// "alice(100) + bob(200)". Entries without an amount map to nil. An empty
// cell yields an empty map.
func BoostersFromString(s string) map[string]*decimal.Decimal {
	result := make(map[string]*decimal.Decimal)
	s = strings.TrimSpace(s)
	if s == "" {
		return result
	}
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := boosterRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if m[2] == "" {
			result[name] = nil
			continue
		}
		amount, err := decimal.NewFromString(strings.ReplaceAll(m[2], ",", "."))
		if err != nil {
			result[name] = nil
			continue
		}
		result[name] = &amount
	}
	return result
}

type BoosterShare struct {
	Name    string
	Dollars decimal.Decimal
}

// BoostersToString renders shares back into the spreadsheet cell format.
func BoostersToString(shares []BoosterShare) string {
	parts := make([]string, 0, len(shares))
	for _, share := range shares {
		parts = append(parts, share.Name+"("+share.Dollars.String()+")")
	}
	return strings.Join(parts, " + ")
}
