package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale продажа товара: наименование, количество, цена за единицу
// и вычисленный итог (quantity × unit_price).
type Sale struct {
	ID        int             `json:"id"`
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// DummySale используется для приёма данных продажи из JSON-запроса.
type DummySale struct {
	Product   string          `json:"product" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}
