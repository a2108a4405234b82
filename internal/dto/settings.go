package dto

type APITokenDTO struct {
	Token string `json:"token" example:"fx-live-key"`
	Uses  int    `json:"uses" example:"17"`
}

type SettingsResponseDTO struct {
	CurrencyFee    float64          `json:"currency_fee" example:"1.03"`
	PreOrderTTLMin int              `json:"preorder_ttl_min" example:"4320"`
	Precisions     map[string]int32 `json:"precisions"`
	APITokens      []APITokenDTO    `json:"api_tokens"`
	SyncBoosters   bool             `json:"sync_boosters" example:"true"`
}

type UpdateSettingsRequestDTO struct {
	CurrencyFee    *float64         `json:"currency_fee,omitempty" example:"1.03"`
	PreOrderTTLMin *int             `json:"preorder_ttl_min,omitempty" example:"4320"`
	Precisions     map[string]int32 `json:"precisions,omitempty"`
	APITokens      []APITokenDTO    `json:"api_tokens,omitempty"`
	SyncBoosters   *bool            `json:"sync_boosters,omitempty" example:"true"`
}

type ConvertResponseDTO struct {
	Amount   float64 `json:"amount" example:"3150.25"`
	Currency string  `json:"currency" example:"RUB"`
}
