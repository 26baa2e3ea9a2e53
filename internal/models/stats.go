package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyStats строка дневной статистики. На каждую календарную дату
// существует не больше одной строки (уникальный индекс по stat_date),
// значения перезаписываются при каждом пересчёте.
type DailyStats struct {
	ID            int             `json:"id"`
	StatDate      Date            `json:"stat_date"`
	TotalMembers  int             `json:"total_members"`
	DailyUsers    int             `json:"daily_users"`
	Sales         int             `json:"sales"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	DailyProfit   decimal.Decimal `json:"daily_profit"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DailyTotals сырые агрегаты, собранные хранилищем за одну дату.
// Производные значения (итоговый доход, прибыль, пользователи за день)
// из них считает сервис статистики.
type DailyTotals struct {
	TotalMembers   int
	ExpiredMembers int
	MembersToday   int
	VisitorsToday  int
	SalesToday     int
	MembersIncome  decimal.Decimal
	VisitorsIncome decimal.Decimal
	SalesIncome    decimal.Decimal
	ExpensesToday  decimal.Decimal
}

// StatsSnapshot снимок статистики за день, отдаваемый API:
// значения строки DailyStats плюс разбивка дохода по источникам.
type StatsSnapshot struct {
	StatDate       Date            `json:"stat_date"`
	TotalMembers   int             `json:"total_members"`
	ExpiredMembers int             `json:"expired_members"`
	DailyUsers     int             `json:"daily_users"`
	Sales          int             `json:"sales"`
	IncomeToday    decimal.Decimal `json:"income_today"`
	ExpensesToday  decimal.Decimal `json:"expenses_today"`
	ProfitToday    decimal.Decimal `json:"profit_today"`
	MembersIncome  decimal.Decimal `json:"members_income"`
	VisitorsIncome decimal.Decimal `json:"visitors_income"`
	SalesIncome    decimal.Decimal `json:"sales_income"`
}
