package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
)

// ValidationError marks a row that can't be decoded with the configured
// schema. Sync logs it and moves on to the next row.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

var datetimeLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func cellString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func decodeCell(item domain.ParseItem, raw any) (any, error) {
	s := cellString(raw)
	if s == "" {
		if !item.Nullable {
			return nil, &ValidationError{Field: item.Name, Reason: "empty value for non-nullable field"}
		}
		return nil, nil
	}

	switch item.Type {
	case domain.FieldInt:
		value, err := strconv.ParseInt(strings.ReplaceAll(s, " ", ""), 10, 64)
		if err != nil {
			return nil, &ValidationError{Field: item.Name, Reason: "not an integer: " + s}
		}
		return value, nil
	case domain.FieldFloat:
		value, err := decimal.NewFromString(strings.ReplaceAll(strings.ReplaceAll(s, ",", "."), " ", ""))
		if err != nil {
			return nil, &ValidationError{Field: item.Name, Reason: "not a number: " + s}
		}
		return value, nil
	case domain.FieldString:
		return s, nil
	case domain.FieldDatetime:
		for _, layout := range datetimeLayouts {
			if value, err := time.Parse(layout, s); err == nil {
				return value, nil
			}
		}
		return nil, &ValidationError{Field: item.Name, Reason: "unrecognized datetime: " + s}
	case domain.FieldDuration:
		if value, err := time.ParseDuration(s); err == nil {
			return value, nil
		}
		if hours, err := strconv.ParseFloat(s, 64); err == nil {
			return time.Duration(hours * float64(time.Hour)), nil
		}
		return nil, &ValidationError{Field: item.Name, Reason: "unrecognized duration: " + s}
	case domain.FieldEnum:
		for _, valid := range item.Enum {
			if strings.EqualFold(valid, s) {
				return valid, nil
			}
		}
		return nil, &ValidationError{Field: item.Name, Reason: "value not in enum: " + s}
	default:
		return nil, &ValidationError{Field: item.Name, Reason: "unknown field type: " + string(item.Type)}
	}
}

func encodeCell(value any) any {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format("02.01.2006 15:04:05")
	case time.Duration:
		return v.String()
	case decimal.Decimal:
		return v.String()
	case *decimal.Decimal:
		if v == nil {
			return ""
		}
		return v.String()
	default:
		return v
	}
}

// ParseRow decodes one raw sheet row into named, typed values per the
// parser schema.
func ParseRow(parser *domain.SheetParser, row []any) (map[string]any, error) {
	values := make(map[string]any, len(parser.Items))
	for _, item := range parser.Items {
		var raw any
		if item.Column < len(row) {
			raw = row[item.Column]
		}
		value, err := decodeCell(item, raw)
		if err != nil {
			return nil, err
		}
		if value != nil {
			values[item.Name] = value
		}
	}
	return values, nil
}

// DataToRow is the inverse of ParseRow. Generated fields are write-skipped
// and left empty.
func DataToRow(parser *domain.SheetParser, values map[string]any) []any {
	width := 0
	for _, item := range parser.Items {
		if item.Column+1 > width {
			width = item.Column + 1
		}
	}
	row := make([]any, width)
	for i := range row {
		row[i] = ""
	}
	for _, item := range parser.Items {
		if item.Generated {
			continue
		}
		if value, ok := values[item.Name]; ok {
			row[item.Column] = encodeCell(value)
		}
	}
	return row
}

func stringValue(values map[string]any, name string) string {
	if v, ok := values[name].(string); ok {
		return v
	}
	return ""
}

func decimalValue(values map[string]any, name string) decimal.Decimal {
	if v, ok := values[name].(decimal.Decimal); ok {
		return v
	}
	return decimal.Zero
}

func timeValue(values map[string]any, name string) time.Time {
	if v, ok := values[name].(time.Time); ok {
		return v
	}
	return time.Time{}
}

// OrderFromValues routes decoded fields into the order and its owned
// sub-records by name.
func OrderFromValues(values map[string]any) *domain.Order {
	order := &domain.Order{
		OrderID:     stringValue(values, "order_id"),
		Date:        timeValue(values, "date"),
		Shop:        stringValue(values, "shop"),
		ShopOrderID: stringValue(values, "shop_order_id"),
		Status:      domain.OrderStatus(stringValue(values, "status")),
		StatusPaid:  domain.OrderPaidStatus(stringValue(values, "status_paid")),
		Info: &domain.OrderInfo{
			Game:     stringValue(values, "game"),
			Category: stringValue(values, "category"),
			Purchase: stringValue(values, "purchase"),
			Comment:  stringValue(values, "comment"),
		},
		Price: &domain.OrderPrice{
			PriceDollar:        decimalValue(values, "price_dollar"),
			PriceBoosterDollar: decimalValue(values, "price_booster_dollar"),
		},
		Credentials: &domain.OrderCredentials{
			BattleTag: stringValue(values, "battle_tag"),
			Login:     stringValue(values, "login"),
			Password:  stringValue(values, "password"),
		},
	}
	if gold, ok := values["price_booster_gold"].(decimal.Decimal); ok {
		order.Price.PriceBoosterGold = &gold
	}
	if authDate, ok := values["auth_date"].(time.Time); ok {
		order.AuthDate = &authDate
	}
	if endDate, ok := values["end_date"].(time.Time); ok {
		order.EndDate = &endDate
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusInProgress
	}
	if order.StatusPaid == "" {
		order.StatusPaid = domain.OrderNotPaid
	}
	return order
}

func PreOrderFromValues(values map[string]any) *domain.PreOrder {
	return &domain.PreOrder{
		OrderID:            stringValue(values, "order_id"),
		Date:               timeValue(values, "date"),
		Shop:               stringValue(values, "shop"),
		Game:               stringValue(values, "game"),
		Category:           stringValue(values, "category"),
		Purchase:           stringValue(values, "purchase"),
		PriceDollar:        decimalValue(values, "price_dollar"),
		PriceBoosterDollar: decimalValue(values, "price_booster_dollar"),
	}
}

// ValuesFromOrder is the push-back direction for DataToRow.
func ValuesFromOrder(order *domain.Order) map[string]any {
	values := map[string]any{
		"order_id":      order.OrderID,
		"date":          order.Date,
		"shop":          order.Shop,
		"shop_order_id": order.ShopOrderID,
		"status":        string(order.Status),
		"status_paid":   string(order.StatusPaid),
	}
	if order.AuthDate != nil {
		values["auth_date"] = *order.AuthDate
	}
	if order.EndDate != nil {
		values["end_date"] = *order.EndDate
	}
	if order.Info != nil {
		values["game"] = order.Info.Game
		values["category"] = order.Info.Category
		values["purchase"] = order.Info.Purchase
		values["comment"] = order.Info.Comment
	}
	if order.Price != nil {
		values["price_dollar"] = order.Price.PriceDollar
		values["price_booster_dollar"] = order.Price.PriceBoosterDollar
		values["price_booster_gold"] = order.Price.PriceBoosterGold
	}
	if order.Credentials != nil {
		values["battle_tag"] = order.Credentials.BattleTag
		values["login"] = order.Credentials.Login
		values["password"] = order.Credentials.Password
	}
	return values
}

// ordersDiffer compares the fields the sheet owns, ignoring volatile ones
// (locator, paid status, booster cell).
func ordersDiffer(existing, incoming *domain.Order) bool {
	if existing.Shop != incoming.Shop ||
		existing.ShopOrderID != incoming.ShopOrderID ||
		existing.Status != incoming.Status ||
		!existing.Date.Equal(incoming.Date) {
		return true
	}
	if (existing.Info == nil) != (incoming.Info == nil) {
		return true
	}
	if existing.Info != nil && incoming.Info != nil {
		a, b := *existing.Info, *incoming.Info
		a.OrderID, b.OrderID = 0, 0
		if a != b {
			return true
		}
	}
	if (existing.Price == nil) != (incoming.Price == nil) {
		return true
	}
	if existing.Price != nil {
		if !existing.Price.PriceDollar.Equal(incoming.Price.PriceDollar) ||
			!existing.Price.PriceBoosterDollar.Equal(incoming.Price.PriceBoosterDollar) {
			return true
		}
	}
	if existing.Credentials != nil && incoming.Credentials != nil {
		a, b := *existing.Credentials, *incoming.Credentials
		a.OrderID, b.OrderID = 0, 0
		if a != b {
			return true
		}
	}
	return false
}
