package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CrisDa7/activeGym/internal/lib/subscription"
	"github.com/CrisDa7/activeGym/internal/models"
)

// ReadDailyStats возвращает строку статистики за указанную дату.
func (s *Storage) ReadDailyStats(ctx context.Context, day models.Date) (*models.DailyStats, error) {
	const op = "storage.ReadDailyStats"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, stat_date, total_members, daily_users, sales,
			      total_income, total_expenses, daily_profit, created_at
			  FROM daily_stats WHERE stat_date = $1`
	row := s.DB.QueryRowContext(ctx, query, day)

	var result models.DailyStats
	err := row.Scan(&result.ID, &result.StatDate, &result.TotalMembers,
		&result.DailyUsers, &result.Sales, &result.TotalIncome,
		&result.TotalExpenses, &result.DailyProfit, &result.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// InitDailyStats вставляет нулевую строку статистики за дату.
// Гонка первых обращений за одну дату гасится уникальным индексом
// по stat_date: проигравший INSERT молча пропускается.
func (s *Storage) InitDailyStats(ctx context.Context, day models.Date) error {
	const op = "storage.InitDailyStats"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO daily_stats (stat_date, total_members, daily_users, sales,
			      total_income, total_expenses, daily_profit)
			  VALUES ($1, 0, 0, 0, 0, 0, 0)
			  ON CONFLICT (stat_date) DO NOTHING`
	if _, err := s.DB.ExecContext(ctx, query, day); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GatherDailyTotals собирает сырые агрегаты за дату. Всё считается
// по дате создания записи, кроме расходов: они привязаны к собственной
// дате expense_date, потому что расход можно занести задним числом.
func (s *Storage) GatherDailyTotals(ctx context.Context, day models.Date) (*models.DailyTotals, error) {
	const op = "storage.GatherDailyTotals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var totals models.DailyTotals

	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM members`).Scan(&totals.TotalMembers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM members WHERE status = $1`,
		subscription.StatusExpired).Scan(&totals.ExpiredMembers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(monthly_price), 0)
		 FROM members WHERE created_at::date = $1`,
		day).Scan(&totals.MembersToday, &totals.MembersIncome)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.DB.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(visitor_count), 0), COALESCE(SUM(total), 0)
		 FROM daily_visitors WHERE created_at::date = $1`,
		day).Scan(&totals.VisitorsToday, &totals.VisitorsIncome)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total), 0)
		 FROM sales WHERE created_at::date = $1`,
		day).Scan(&totals.SalesToday, &totals.SalesIncome)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = s.DB.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM expenses WHERE expense_date = $1`,
		day).Scan(&totals.ExpensesToday)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &totals, nil
}

// SaveDailyStats перезаписывает значения строки статистики за дату.
func (s *Storage) SaveDailyStats(ctx context.Context, stats models.DailyStats) error {
	const op = "storage.SaveDailyStats"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE daily_stats
			  SET total_members = $1, daily_users = $2, sales = $3,
			      total_income = $4, total_expenses = $5, daily_profit = $6
			  WHERE stat_date = $7`
	_, err := s.DB.ExecContext(ctx, query,
		stats.TotalMembers, stats.DailyUsers, stats.Sales,
		stats.TotalIncome, stats.TotalExpenses, stats.DailyProfit, stats.StatDate)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListDailyStats возвращает последние строки статистики по убыванию даты.
func (s *Storage) ListDailyStats(ctx context.Context, limit int) ([]*models.DailyStats, error) {
	const op = "storage.ListDailyStats"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, stat_date, total_members, daily_users, sales,
			      total_income, total_expenses, daily_profit, created_at
			  FROM daily_stats
			  ORDER BY stat_date DESC
			  LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.DailyStats
	for rows.Next() {
		var item models.DailyStats
		if err := rows.Scan(&item.ID, &item.StatDate, &item.TotalMembers,
			&item.DailyUsers, &item.Sales, &item.TotalIncome,
			&item.TotalExpenses, &item.DailyProfit, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
