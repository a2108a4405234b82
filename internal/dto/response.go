package dto

import "time"

type ApplyRequestDTO struct {
	Text  string   `json:"text" example:"can start in 2 hours"`
	Price *float64 `json:"price,omitempty" example:"40"`
}

type PreOrderApplyResponseDTO struct {
	ID         int       `json:"id" example:"1"`
	PreOrderID int       `json:"preorder_id" example:"1"`
	UserID     int       `json:"user_id" example:"2"`
	Login      string    `json:"login,omitempty" example:"alice"`
	Text       string    `json:"text,omitempty"`
	Price      *float64  `json:"price,omitempty" example:"40"`
	CreatedAt  time.Time `json:"created_at"`
}

type ResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	OrderID   int       `json:"order_id" example:"1"`
	UserID    int       `json:"user_id" example:"2"`
	Login     string    `json:"login,omitempty" example:"alice"`
	Approved  bool      `json:"approved" example:"false"`
	Closed    bool      `json:"closed" example:"false"`
	Text      string    `json:"text,omitempty"`
	Price     *float64  `json:"price,omitempty" example:"40"`
	CreatedAt time.Time `json:"created_at"`
}
