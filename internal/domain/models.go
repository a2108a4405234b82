package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusRefund     OrderStatus = "Refund"
)

type OrderPaidStatus string

const (
	OrderPaid    OrderPaidStatus = "Paid"
	OrderNotPaid OrderPaidStatus = "Not Paid"
)

type UserRole string

const (
	RoleBooster UserRole = "booster"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         UserRole  `db:"role"`
	IsVerified   bool      `db:"is_verified"`
	MaxOrders    int       `db:"max_orders"`
	Telegram     string    `db:"telegram"`
	CreatedAt    time.Time `db:"created_at"`
}

type Payroll struct {
	ID     int    `db:"id"`
	UserID int    `db:"user_id"`
	Bank   string `db:"bank"`
	Type   string `db:"type"`
	Value  string `db:"value"`
}

type Order struct {
	ID          int             `db:"id"`
	OrderID     string          `db:"order_id"`
	Spreadsheet string          `db:"spreadsheet"`
	SheetID     string          `db:"sheet_id"`
	RowID       int             `db:"row_id"`
	Date        time.Time       `db:"order_date"`
	Shop        string          `db:"shop"`
	ShopOrderID string          `db:"shop_order_id"`
	Status      OrderStatus     `db:"status"`
	StatusPaid  OrderPaidStatus `db:"status_paid"`
	AuthDate    *time.Time      `db:"auth_date"`
	EndDate     *time.Time      `db:"end_date"`
	CreatedAt   time.Time       `db:"created_at"`

	Info        *OrderInfo
	Price       *OrderPrice
	Credentials *OrderCredentials
}

type OrderInfo struct {
	OrderID  int    `db:"order_id"`
	Game     string `db:"game"`
	Category string `db:"category"`
	Purchase string `db:"purchase"`
	Comment  string `db:"comment"`
}

type OrderPrice struct {
	OrderID            int              `db:"order_id"`
	PriceDollar        decimal.Decimal  `db:"price_dollar"`
	PriceBoosterDollar decimal.Decimal  `db:"price_booster_dollar"`
	PriceBoosterGold   *decimal.Decimal `db:"price_booster_gold"`
}

type OrderCredentials struct {
	OrderID   int    `db:"order_id"`
	BattleTag string `db:"battle_tag"`
	Login     string `db:"login"`
	Password  string `db:"password"`
}

type Screenshot struct {
	ID        int       `db:"id"`
	OrderID   int       `db:"order_id"`
	URL       string    `db:"url"`
	CreatedAt time.Time `db:"created_at"`
}

type PreOrder struct {
	ID                 int             `db:"id"`
	OrderID            string          `db:"order_id"`
	Spreadsheet        string          `db:"spreadsheet"`
	SheetID            string          `db:"sheet_id"`
	RowID              int             `db:"row_id"`
	Date               time.Time       `db:"order_date"`
	Shop               string          `db:"shop"`
	Game               string          `db:"game"`
	Category           string          `db:"category"`
	Purchase           string          `db:"purchase"`
	PriceDollar        decimal.Decimal `db:"price_dollar"`
	PriceBoosterDollar decimal.Decimal `db:"price_booster_dollar"`
	CreatedAt          time.Time       `db:"created_at"`
}

// UserOrder is one booster's share of an order's payout.
type UserOrder struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	OrderID     int             `db:"order_id"`
	Dollars     decimal.Decimal `db:"dollars"`
	Completed   bool            `db:"completed"`
	Paid        bool            `db:"paid"`
	Refunded    bool            `db:"refunded"`
	OrderDate   time.Time       `db:"order_date"`
	CompletedAt *time.Time      `db:"completed_at"`
	PaidAt      *time.Time      `db:"paid_at"`
}

type Response struct {
	ID        int              `db:"id"`
	OrderID   int              `db:"order_id"`
	UserID    int              `db:"user_id"`
	Approved  bool             `db:"approved"`
	Closed    bool             `db:"closed"`
	Refund    bool             `db:"refund"`
	Text      string           `db:"text"`
	Price     *decimal.Decimal `db:"price"`
	CreatedAt time.Time        `db:"created_at"`
}

// PreOrderResponse is a booster's expressed interest in a preorder. A
// responded preorder is kept past its TTL until an admin decides on it.
type PreOrderResponse struct {
	ID         int              `db:"id"`
	PreOrderID int              `db:"preorder_id"`
	UserID     int              `db:"user_id"`
	Text       string           `db:"text"`
	Price      *decimal.Decimal `db:"price"`
	CreatedAt  time.Time        `db:"created_at"`
}

// Currency holds one calendar day of code->rate quotes.
type Currency struct {
	ID     int                        `db:"id"`
	Date   time.Time                  `db:"quote_date"`
	Quotes map[string]decimal.Decimal `db:"quotes"`
}

type APIToken struct {
	Token string `json:"token"`
	Uses  int    `json:"uses"`
}

type Settings struct {
	ID           int              `db:"id"`
	CurrencyFee  decimal.Decimal  `db:"currency_fee"`
	PreOrderTTL  time.Duration    `db:"preorder_ttl_min"`
	Precisions   map[string]int32 `db:"precisions"`
	APITokens    []APIToken       `db:"api_tokens"`
	SyncBoosters bool             `db:"sync_boosters"`
}

// Precision returns the rounding precision for a currency code, defaulting
// to cents.
func (s *Settings) Precision(code string) int32 {
	if p, ok := s.Precisions[code]; ok {
		return p
	}
	return 2
}

type FieldType string

const (
	FieldInt      FieldType = "int"
	FieldFloat    FieldType = "float"
	FieldString   FieldType = "str"
	FieldDatetime FieldType = "datetime"
	FieldDuration FieldType = "timedelta"
	FieldEnum     FieldType = "enum"
)

// ParseItem maps one logical field onto a spreadsheet column.
type ParseItem struct {
	Name      string    `json:"name"`
	Column    int       `json:"column"`
	Type      FieldType `json:"type"`
	Nullable  bool      `json:"null"`
	Generated bool      `json:"generated"`
	Enum      []string  `json:"valid_values,omitempty"`
}

// SheetParser is the per-(spreadsheet, sheet) column-mapping schema.
type SheetParser struct {
	ID          int         `db:"id"`
	Spreadsheet string      `db:"spreadsheet"`
	SheetID     string      `db:"sheet_id"`
	StartRow    int         `db:"start_row"`
	IsSync      bool        `db:"is_sync"`
	Items       []ParseItem `db:"items"`
}
