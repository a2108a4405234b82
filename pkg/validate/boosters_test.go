package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBoostersFromString(t *testing.T) {
	amount := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	tests := []struct {
		name     string
		cell     string
		expected map[string]*decimal.Decimal
	}{
		{
			name:     "Single entry with amount",
			cell:     "alice(100)",
			expected: map[string]*decimal.Decimal{"alice": amount("100")},
		},
		{
			name: "Multiple entries split on plus",
			cell: "alice(100) + bob(200)",
			expected: map[string]*decimal.Decimal{
				"alice": amount("100"),
				"bob":   amount("200"),
			},
		},
		{
			name:     "Name without amount maps to nil",
			cell:     "alice",
			expected: map[string]*decimal.Decimal{"alice": nil},
		},
		{
			name: "Mixed entries",
			cell: "alice(70.5) + bob",
			expected: map[string]*decimal.Decimal{
				"alice": amount("70.5"),
				"bob":   nil,
			},
		},
		{
			name:     "Comma decimal separator",
			cell:     "alice(70,5)",
			expected: map[string]*decimal.Decimal{"alice": amount("70.5")},
		},
		{
			name:     "Empty cell yields empty map",
			cell:     "  ",
			expected: map[string]*decimal.Decimal{},
		},
		{
			name:     "Stray separators are skipped",
			cell:     " + alice(100) + ",
			expected: map[string]*decimal.Decimal{"alice": amount("100")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BoostersFromString(tt.cell)
			assert.Len(t, result, len(tt.expected))
			for name, expected := range tt.expected {
				actual, ok := result[name]
				assert.True(t, ok, "missing entry %q", name)
				if expected == nil {
					assert.Nil(t, actual)
					continue
				}
				assert.NotNil(t, actual)
				assert.True(t, expected.Equal(*actual))
			}
		})
	}
}

func TestBoostersToString(t *testing.T) {
	shares := []BoosterShare{
		{Name: "alice", Dollars: decimal.RequireFromString("35")},
		{Name: "bob", Dollars: decimal.RequireFromString("17.5")},
	}

	cell := BoostersToString(shares)
	assert.Equal(t, "alice(35) + bob(17.5)", cell)

	parsed := BoostersFromString(cell)
	assert.Len(t, parsed, 2)
	assert.True(t, parsed["alice"].Equal(decimal.RequireFromString("35")))
	assert.True(t, parsed["bob"].Equal(decimal.RequireFromString("17.5")))
}

func TestBoostersToStringEmpty(t *testing.T) {
	assert.Equal(t, "", BoostersToString(nil))
}
