package sheets

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
)

func testParser() *domain.SheetParser {
	return &domain.SheetParser{
		Spreadsheet: "sheet-1",
		SheetID:     "Orders",
		StartRow:    2,
		IsSync:      true,
		Items: []domain.ParseItem{
			{Name: "order_id", Column: 0, Type: domain.FieldString},
			{Name: "date", Column: 1, Type: domain.FieldDatetime},
			{Name: "shop", Column: 2, Type: domain.FieldString, Nullable: true},
			{Name: "shop_order_id", Column: 3, Type: domain.FieldString, Nullable: true},
			{Name: "game", Column: 4, Type: domain.FieldString, Nullable: true},
			{Name: "price_dollar", Column: 5, Type: domain.FieldFloat},
			{Name: "price_booster_dollar", Column: 6, Type: domain.FieldFloat},
			{Name: "status", Column: 7, Type: domain.FieldEnum, Nullable: true,
				Enum: []string{"In Progress", "Completed", "Refund"}},
			{Name: "booster", Column: 8, Type: domain.FieldString, Nullable: true, Generated: true},
		},
	}
}

func TestParseRow(t *testing.T) {
	parser := testParser()

	tests := []struct {
		name          string
		row           []any
		check         func(t *testing.T, values map[string]any)
		expectedField string
	}{
		{
			name: "Full row decodes by schema",
			row:  []any{"D-1337", "01.05.2024 10:30:00", "DudeDuck", "SH-42", "WoW", "100", "70,5", "in progress", "alice(70)"},
			check: func(t *testing.T, values map[string]any) {
				assert.Equal(t, "D-1337", values["order_id"])
				assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), values["date"])
				assert.True(t, values["price_booster_dollar"].(decimal.Decimal).Equal(decimal.RequireFromString("70.5")))
				assert.Equal(t, "In Progress", values["status"])
			},
		},
		{
			name: "Short row leaves nullable fields unset",
			row:  []any{"D-1338", "02.05.2024", "", "", "", "80", "56"},
			check: func(t *testing.T, values map[string]any) {
				_, ok := values["shop"]
				assert.False(t, ok)
				_, ok = values["status"]
				assert.False(t, ok)
			},
		},
		{
			name:          "Empty non-nullable field is a validation error",
			row:           []any{"", "01.05.2024", "", "", "", "100", "70"},
			expectedField: "order_id",
		},
		{
			name:          "Garbage number is a validation error",
			row:           []any{"D-1339", "01.05.2024", "", "", "", "ten bucks", "70"},
			expectedField: "price_dollar",
		},
		{
			name:          "Status outside the enum is a validation error",
			row:           []any{"D-1340", "01.05.2024", "", "", "", "100", "70", "Cancelled"},
			expectedField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := ParseRow(parser, tt.row)
			if tt.expectedField != "" {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.expectedField, vErr.Field)
				return
			}
			assert.NoError(t, err)
			tt.check(t, values)
		})
	}
}

func TestDataToRowSkipsGenerated(t *testing.T) {
	parser := testParser()
	values := map[string]any{
		"order_id":             "D-1337",
		"date":                 time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		"price_dollar":         decimal.RequireFromString("100"),
		"price_booster_dollar": decimal.RequireFromString("70.5"),
		"booster":              "alice(70)",
	}

	row := DataToRow(parser, values)

	assert.Len(t, row, 9)
	assert.Equal(t, "D-1337", row[0])
	assert.Equal(t, "01.05.2024 10:30:00", row[1])
	assert.Equal(t, "70.5", row[6])
	assert.Equal(t, "", row[8], "generated column must stay untouched")
}

func TestRowRoundTrip(t *testing.T) {
	parser := testParser()
	original := []any{"D-1337", "01.05.2024 10:30:00", "DudeDuck", "SH-42", "WoW", "100", "70.5", "Completed"}

	values, err := ParseRow(parser, original)
	assert.NoError(t, err)

	row := DataToRow(parser, values)
	reparsed, err := ParseRow(parser, row)
	assert.NoError(t, err)

	assert.Equal(t, values["order_id"], reparsed["order_id"])
	assert.Equal(t, values["date"], reparsed["date"])
	assert.Equal(t, values["status"], reparsed["status"])
	assert.True(t, values["price_dollar"].(decimal.Decimal).Equal(reparsed["price_dollar"].(decimal.Decimal)))
}

func TestOrderFromValuesDefaults(t *testing.T) {
	order := OrderFromValues(map[string]any{
		"order_id":             "D-1337",
		"price_dollar":         decimal.RequireFromString("100"),
		"price_booster_dollar": decimal.RequireFromString("70"),
	})

	assert.Equal(t, domain.OrderStatusInProgress, order.Status)
	assert.Equal(t, domain.OrderNotPaid, order.StatusPaid)
	assert.True(t, order.Price.PriceDollar.Equal(decimal.RequireFromString("100")))
}

func TestOrdersDiffer(t *testing.T) {
	base := func() *domain.Order {
		return OrderFromValues(map[string]any{
			"order_id":             "D-1337",
			"date":                 time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			"shop":                 "DudeDuck",
			"price_dollar":         decimal.RequireFromString("100"),
			"price_booster_dollar": decimal.RequireFromString("70"),
		})
	}

	t.Run("Identical rows don't differ", func(t *testing.T) {
		assert.False(t, ordersDiffer(base(), base()))
	})

	t.Run("Payout edit differs", func(t *testing.T) {
		edited := base()
		edited.Price.PriceBoosterDollar = decimal.RequireFromString("90")
		assert.True(t, ordersDiffer(base(), edited))
	})

	t.Run("Status change differs", func(t *testing.T) {
		edited := base()
		edited.Status = domain.OrderStatusCompleted
		assert.True(t, ordersDiffer(base(), edited))
	})

	t.Run("Paid flip is volatile and ignored", func(t *testing.T) {
		edited := base()
		edited.StatusPaid = domain.OrderPaid
		assert.False(t, ordersDiffer(base(), edited))
	})
}
