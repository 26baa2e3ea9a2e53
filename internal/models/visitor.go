package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VisitorBatch группа разовых посетителей за день: количество,
// цена за человека и вычисленный итог (count × price).
type VisitorBatch struct {
	ID              int             `json:"id"`
	VisitorCount    int             `json:"visitor_count"`
	PricePerVisitor decimal.Decimal `json:"price_per_visitor"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"created_at"`
}

// DummyVisitorBatch используется для приёма данных группы посетителей
// из JSON-запроса. Итог не принимается снаружи, он всегда пересчитывается.
type DummyVisitorBatch struct {
	VisitorCount    int             `json:"visitor_count" validate:"required,gt=0"`
	PricePerVisitor decimal.Decimal `json:"price_per_visitor" validate:"required"`
}
