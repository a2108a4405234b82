package dto

import "time"

type OrderInfoDTO struct {
	Game     string `json:"game" example:"WoW"`
	Category string `json:"category" example:"Mythic+"`
	Purchase string `json:"purchase" example:"+15 key"`
	Comment  string `json:"comment,omitempty"`
}

type OrderPriceDTO struct {
	PriceDollar        float64  `json:"price_dollar" example:"100"`
	PriceBoosterDollar float64  `json:"price_booster_dollar" example:"70"`
	PriceBoosterGold   *float64 `json:"price_booster_gold,omitempty" example:"250000"`
}

type OrderCredentialsDTO struct {
	BattleTag string `json:"battle_tag,omitempty" example:"Dude#1234"`
	Login     string `json:"login,omitempty"`
	Password  string `json:"password,omitempty"`
}

type CreateOrderRequestDTO struct {
	OrderID     string               `json:"order_id" validate:"required" example:"D-1337"`
	Date        time.Time            `json:"date"`
	Shop        string               `json:"shop" example:"DudeDuck"`
	ShopOrderID string               `json:"shop_order_id" example:"SH-42"`
	Info        OrderInfoDTO         `json:"info"`
	Price       OrderPriceDTO        `json:"price"`
	Credentials *OrderCredentialsDTO `json:"credentials,omitempty"`
}

type UpdateOrderRequestDTO struct {
	Shop        *string              `json:"shop,omitempty"`
	ShopOrderID *string              `json:"shop_order_id,omitempty"`
	AuthDate    *time.Time           `json:"auth_date,omitempty"`
	Info        *OrderInfoDTO        `json:"info,omitempty"`
	Price       *OrderPriceDTO       `json:"price,omitempty"`
	Credentials *OrderCredentialsDTO `json:"credentials,omitempty"`
}

type OrderResponseDTO struct {
	ID          int                  `json:"id" example:"1"`
	OrderID     string               `json:"order_id" example:"D-1337"`
	Spreadsheet string               `json:"spreadsheet,omitempty"`
	SheetID     string               `json:"sheet_id,omitempty"`
	RowID       int                  `json:"row_id,omitempty" example:"7"`
	Date        time.Time            `json:"date"`
	Shop        string               `json:"shop" example:"DudeDuck"`
	ShopOrderID string               `json:"shop_order_id" example:"SH-42"`
	Status      string               `json:"status" example:"In Progress"`
	StatusPaid  string               `json:"status_paid" example:"Not Paid"`
	AuthDate    *time.Time           `json:"auth_date,omitempty"`
	EndDate     *time.Time           `json:"end_date,omitempty"`
	Info        *OrderInfoDTO        `json:"info,omitempty"`
	Price       *OrderPriceDTO       `json:"price,omitempty"`
	Credentials *OrderCredentialsDTO `json:"credentials,omitempty"`
}

type SetStatusRequestDTO struct {
	Status string `json:"status" validate:"required" example:"Completed"`
}

type CloseOrderRequestDTO struct {
	URL string `json:"url" validate:"required,url" example:"https://imgur.com/a/proof"`
}

type ScreenshotResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	URL       string    `json:"url" example:"https://imgur.com/a/proof"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatePreOrderRequestDTO struct {
	OrderID            string    `json:"order_id" validate:"required" example:"D-1338"`
	Date               time.Time `json:"date"`
	Shop               string    `json:"shop" example:"DudeDuck"`
	Game               string    `json:"game" example:"WoW"`
	Category           string    `json:"category" example:"Raid"`
	Purchase           string    `json:"purchase" example:"Heroic clear"`
	PriceDollar        float64   `json:"price_dollar" example:"80"`
	PriceBoosterDollar float64   `json:"price_booster_dollar" example:"56"`
}

type PreOrderResponseDTO struct {
	ID                 int       `json:"id" example:"1"`
	OrderID            string    `json:"order_id" example:"D-1338"`
	Date               time.Time `json:"date"`
	Shop               string    `json:"shop" example:"DudeDuck"`
	Game               string    `json:"game" example:"WoW"`
	Category           string    `json:"category" example:"Raid"`
	Purchase           string    `json:"purchase" example:"Heroic clear"`
	PriceDollar        float64   `json:"price_dollar" example:"80"`
	PriceBoosterDollar float64   `json:"price_booster_dollar" example:"56"`
	CreatedAt          time.Time `json:"created_at"`
}
