// Package models содержит доменные структуры гимнастического зала:
// клиентов с месячным абонементом, разовых посетителей, продажи, расходы
// и дневную статистику, а также вспомогательные типы для приёма JSON-запросов.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Member представляет клиента с месячным абонементом.
// EndDate всегда вычисляется из пары (StartDate, Duration),
// Status — из пары (EndDate, текущая дата); оба поля никогда
// не задаются снаружи напрямую.
type Member struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Surname      string           `json:"surname"`
	Weight       *decimal.Decimal `json:"weight,omitempty"` // Вес клиента, опционально
	Phone        string           `json:"phone"`
	MonthlyPrice decimal.Decimal  `json:"monthly_price"`
	StartDate    Date             `json:"start_date"`
	EndDate      Date             `json:"end_date"`
	Duration     int              `json:"duration"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// DummyMember используется для приёма данных клиента из JSON-запроса
// до их валидации. Дата начала приходит строкой формата 2006-01-02.
type DummyMember struct {
	Name         string           `json:"name" validate:"required"`
	Surname      string           `json:"surname" validate:"required"`
	Weight       *decimal.Decimal `json:"weight,omitempty" validate:"omitempty"`
	Phone        string           `json:"phone" validate:"required"`
	MonthlyPrice decimal.Decimal  `json:"monthly_price" validate:"required"`
	StartDate    string           `json:"start_date" validate:"required"`
	Duration     int              `json:"duration" validate:"required,gt=0"`
}

// DummyRenewal используется для приёма данных продления абонемента.
// Продление перезапускает цикл: новая дата начала, новый срок, новая цена.
type DummyRenewal struct {
	StartDate    string          `json:"start_date" validate:"required"`
	Duration     int             `json:"duration" validate:"required,gt=0"`
	MonthlyPrice decimal.Decimal `json:"monthly_price" validate:"required"`
}

// MemberStatusRow минимальная проекция клиента для пересчёта статуса.
type MemberStatusRow struct {
	ID      int
	EndDate Date
}

// Payment запись истории оплат клиента. Сейчас история синтезируется
// из текущего цикла абонемента, отдельной таблицы оплат нет.
type Payment struct {
	ID        int             `json:"id"`
	MemberID  int             `json:"member_id"`
	StartDate Date            `json:"start_date"`
	EndDate   Date            `json:"end_date"`
	Duration  int             `json:"duration"`
	Price     decimal.Decimal `json:"price"`
	PaidAt    Date            `json:"paid_at"`
	Kind      string          `json:"kind"`
}
