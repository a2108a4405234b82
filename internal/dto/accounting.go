package dto

import "time"

type AddBoosterRequestDTO struct {
	UserID int      `json:"user_id" validate:"required" example:"2"`
	Price  *float64 `json:"price,omitempty" example:"35"`
}

type UpdateBoosterPriceRequestDTO struct {
	Dollars float64 `json:"dollars" validate:"required" example:"42.5"`
}

type BoosterResponseDTO struct {
	ID          int        `json:"id" example:"1"`
	UserID      int        `json:"user_id" example:"2"`
	Login       string     `json:"login" example:"alice"`
	Dollars     float64    `json:"dollars" example:"35"`
	Completed   bool       `json:"completed" example:"false"`
	Paid        bool       `json:"paid" example:"false"`
	OrderDate   time.Time  `json:"order_date"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

type PaidOrderResponseDTO struct {
	Message string `json:"message"`
}

type ReportRequestDTO struct {
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	Spreadsheet string    `json:"spreadsheet,omitempty"`
	SheetID     string    `json:"sheet_id,omitempty"`
	Username    string    `json:"username,omitempty" example:"alice"`
	Completed   *bool     `json:"completed,omitempty"`
	Paid        *bool     `json:"paid,omitempty"`
	SortBy      string    `json:"sort_by,omitempty" example:"date"`
	ThenBy      string    `json:"then_by,omitempty" example:"username"`
}

type ReportRowDTO struct {
	OrderID   string    `json:"order_id" example:"D-1337"`
	Username  string    `json:"username" example:"alice"`
	Dollars   float64   `json:"dollars" example:"35"`
	OrderDate time.Time `json:"order_date"`
	Completed bool      `json:"completed" example:"true"`
	Paid      bool      `json:"paid" example:"false"`
}

type ReportResponseDTO struct {
	Total   float64        `json:"total" example:"420.5"`
	Orders  int            `json:"orders" example:"12"`
	Users   int            `json:"users" example:"4"`
	Entries []ReportRowDTO `json:"entries"`
}
