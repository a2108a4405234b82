package dto

type UserResponseDTO struct {
	ID         int    `json:"id" example:"1"`
	Login      string `json:"login" example:"alice"`
	Role       string `json:"role" example:"booster"`
	IsVerified bool   `json:"is_verified" example:"true"`
	MaxOrders  int    `json:"max_orders" example:"3"`
	Telegram   string `json:"telegram" example:"@dude_booster"`
}

type VerifyUserRequestDTO struct {
	Verified bool `json:"verified" example:"true"`
}

type MaxOrdersRequestDTO struct {
	MaxOrders int `json:"max_orders" validate:"required,min=0" example:"5"`
}

type PayrollDTO struct {
	Bank  string `json:"bank" example:"Tinkoff"`
	Type  string `json:"type" example:"card"`
	Value string `json:"value" example:"5536 9137 0000 0000"`
}
