package dto

type ParseItemDTO struct {
	Name      string   `json:"name" validate:"required" example:"order_id"`
	Column    int      `json:"column" example:"0"`
	Type      string   `json:"type" validate:"required" example:"str"`
	Nullable  bool     `json:"null" example:"false"`
	Generated bool     `json:"generated" example:"false"`
	Enum      []string `json:"valid_values,omitempty"`
}

type SheetParserRequestDTO struct {
	Spreadsheet string         `json:"spreadsheet" validate:"required" example:"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`
	SheetID     string         `json:"sheet_id" validate:"required" example:"Orders"`
	StartRow    int            `json:"start_row" example:"2"`
	IsSync      bool           `json:"is_sync" example:"true"`
	Items       []ParseItemDTO `json:"items" validate:"required"`
}

type SheetParserResponseDTO struct {
	ID          int            `json:"id" example:"1"`
	Spreadsheet string         `json:"spreadsheet" example:"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`
	SheetID     string         `json:"sheet_id" example:"Orders"`
	StartRow    int            `json:"start_row" example:"2"`
	IsSync      bool           `json:"is_sync" example:"true"`
	Items       []ParseItemDTO `json:"items"`
}

type SyncResponseDTO struct {
	Message string `json:"message"`
}
