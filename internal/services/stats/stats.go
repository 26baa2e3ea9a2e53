// Package stats реализует дневную статистику зала: инициализацию
// строки за текущую дату, идемпотентный пересчёт агрегатов из четырёх
// источников (клиенты, разовые посетители, продажи, расходы) и историю
// за последние дни.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/CrisDa7/activeGym/internal/lib/sl"
	"github.com/CrisDa7/activeGym/internal/models"
)

// HistoryLimit число строк истории, отдаваемых дашборду.
const HistoryLimit = 30

const historyCacheKey = "stats:history"

// Repository определяет методы для работы с дневной статистикой в хранилище.
type Repository interface {
	ReadDailyStats(ctx context.Context, day models.Date) (*models.DailyStats, error)
	InitDailyStats(ctx context.Context, day models.Date) error
	GatherDailyTotals(ctx context.Context, day models.Date) (*models.DailyTotals, error)
	SaveDailyStats(ctx context.Context, stats models.DailyStats) error
	ListDailyStats(ctx context.Context, limit int) ([]*models.DailyStats, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует бизнес-логику дневной статистики.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
	now   func() time.Time
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

// Today возвращает снимок статистики за текущую дату, предварительно
// инициализировав строку и пересчитав её значения. Пересчёт
// детерминирован и идемпотентен: повторный вызов без изменения данных
// записывает те же значения, при конкурентных вызовах побеждает
// последняя запись.
func (s *Service) Today(ctx context.Context) (*models.StatsSnapshot, error) {
	today := models.NewDate(s.now())

	if err := s.ensureRecord(ctx, today); err != nil {
		return nil, err
	}
	return s.Recompute(ctx, today)
}

// Recompute собирает сырые агрегаты за дату, выводит производные
// значения и перезаписывает строку статистики.
func (s *Service) Recompute(ctx context.Context, day models.Date) (*models.StatsSnapshot, error) {
	totals, err := s.repo.GatherDailyTotals(ctx, day)
	if err != nil {
		return nil, err
	}

	// Пользователи за день: новые клиенты плюс разовые посетители.
	dailyUsers := totals.MembersToday + totals.VisitorsToday
	totalIncome := totals.MembersIncome.Add(totals.VisitorsIncome).Add(totals.SalesIncome)
	profit := totalIncome.Sub(totals.ExpensesToday)

	err = s.repo.SaveDailyStats(ctx, models.DailyStats{
		StatDate:      day,
		TotalMembers:  totals.TotalMembers,
		DailyUsers:    dailyUsers,
		Sales:         totals.SalesToday,
		TotalIncome:   totalIncome,
		TotalExpenses: totals.ExpensesToday,
		DailyProfit:   profit,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(historyCacheKey); err != nil {
		s.log.Warn("failed to invalidate stats history cache", sl.Err(err))
	}

	return &models.StatsSnapshot{
		StatDate:       day,
		TotalMembers:   totals.TotalMembers,
		ExpiredMembers: totals.ExpiredMembers,
		DailyUsers:     dailyUsers,
		Sales:          totals.SalesToday,
		IncomeToday:    totalIncome,
		ExpensesToday:  totals.ExpensesToday,
		ProfitToday:    profit,
		MembersIncome:  totals.MembersIncome,
		VisitorsIncome: totals.VisitorsIncome,
		SalesIncome:    totals.SalesIncome,
	}, nil
}

// History возвращает последние HistoryLimit строк статистики,
// кешируя результат на короткое время.
func (s *Service) History(ctx context.Context) ([]*models.DailyStats, error) {
	var cached []*models.DailyStats
	found, err := s.cache.Get(historyCacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read stats history from cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	history, err := s.repo.ListDailyStats(ctx, HistoryLimit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(historyCacheKey, history, time.Minute); err != nil {
		s.log.Warn("failed to cache stats history", sl.Err(err))
	}
	return history, nil
}

// ensureRecord гарантирует наличие строки за дату: нулевая вставка
// под уникальным индексом безопасна при конкурентном первом обращении.
func (s *Service) ensureRecord(ctx context.Context, day models.Date) error {
	if err := s.repo.InitDailyStats(ctx, day); err != nil {
		return err
	}
	_, err := s.repo.ReadDailyStats(ctx, day)
	return err
}
