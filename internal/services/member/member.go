// Package member реализует бизнес-логику учёта клиентов: создание и
// обновление с пересчётом даты окончания абонемента, продление,
// пересчёт статусов перед выдачей списка и историю оплат.
package member

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/CrisDa7/activeGym/internal/lib/sl"
	"github.com/CrisDa7/activeGym/internal/lib/subscription"
	"github.com/CrisDa7/activeGym/internal/models"
	"github.com/CrisDa7/activeGym/internal/services"
	"github.com/CrisDa7/activeGym/internal/storage/repository"
)

// Repository определяет методы для работы с клиентами в хранилище.
type Repository interface {
	CreateMember(ctx context.Context, member models.Member) (int, error)
	UpdateMember(ctx context.Context, member models.Member, id int) (int, error)
	RenewMember(ctx context.Context, id int, renewal models.Member) (int, error)
	RemoveMember(ctx context.Context, id int) (int, error)
	ReadMember(ctx context.Context, id int) (*models.Member, error)
	ListMembers(ctx context.Context) ([]*models.Member, error)
	ListMemberStatusRows(ctx context.Context) ([]models.MemberStatusRow, error)
	UpdateMemberStatus(ctx context.Context, id int, status string) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует бизнес-логику работы с клиентами.
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

// Create создает нового клиента, вычисляя дату окончания и статус
// абонемента, и возвращает ID.
func (s *Service) Create(ctx context.Context, req models.DummyMember) (int, error) {
	startDate, err := models.ParseDate(req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid start date", services.ErrInvalidInput)
	}
	if !req.MonthlyPrice.IsPositive() {
		return 0, fmt.Errorf("%w: monthly price must be positive", services.ErrInvalidInput)
	}

	endDate := models.NewDate(subscription.EndDate(startDate.Time, req.Duration))
	entry := models.Member{
		Name:         req.Name,
		Surname:      req.Surname,
		Weight:       req.Weight,
		Phone:        req.Phone,
		MonthlyPrice: req.MonthlyPrice,
		StartDate:    startDate,
		EndDate:      endDate,
		Duration:     req.Duration,
		Status:       subscription.Status(endDate.Time, s.now()),
	}

	id, err := s.repo.CreateMember(ctx, entry)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new member", slog.Int("id", id))
	return id, nil
}

// Update обновляет данные клиента. Дата окончания не правится
// инкрементально, а пересчитывается заново из новых даты начала и срока.
func (s *Service) Update(ctx context.Context, req models.DummyMember, id int) (int, error) {
	startDate, err := models.ParseDate(req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid start date", services.ErrInvalidInput)
	}
	if !req.MonthlyPrice.IsPositive() {
		return 0, fmt.Errorf("%w: monthly price must be positive", services.ErrInvalidInput)
	}

	endDate := models.NewDate(subscription.EndDate(startDate.Time, req.Duration))
	entry := models.Member{
		Name:         req.Name,
		Surname:      req.Surname,
		Weight:       req.Weight,
		Phone:        req.Phone,
		MonthlyPrice: req.MonthlyPrice,
		StartDate:    startDate,
		EndDate:      endDate,
		Duration:     req.Duration,
		Status:       subscription.Status(endDate.Time, s.now()),
	}

	count, err := s.repo.UpdateMember(ctx, entry, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	s.invalidate(id)
	return count, nil
}

// Renew перезапускает цикл абонемента: новая дата начала, срок и цена.
// Статус принудительно ACTIVE независимо от вычисленного значения,
// прежняя дата окончания полностью отбрасывается.
func (s *Service) Renew(ctx context.Context, req models.DummyRenewal, id int) (int, error) {
	startDate, err := models.ParseDate(req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid start date", services.ErrInvalidInput)
	}
	if !req.MonthlyPrice.IsPositive() {
		return 0, fmt.Errorf("%w: monthly price must be positive", services.ErrInvalidInput)
	}

	renewal := models.Member{
		StartDate:    startDate,
		EndDate:      models.NewDate(subscription.EndDate(startDate.Time, req.Duration)),
		Duration:     req.Duration,
		MonthlyPrice: req.MonthlyPrice,
		Status:       subscription.StatusActive,
	}

	count, err := s.repo.RenewMember(ctx, id, renewal)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	s.invalidate(id)
	s.log.Info("renewed member subscription", slog.Int("id", id))
	return count, nil
}

// Remove удаляет клиента по ID.
func (s *Service) Remove(ctx context.Context, id int) (int, error) {
	count, err := s.repo.RemoveMember(ctx, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	s.invalidate(id)
	return count, nil
}

// List возвращает всех клиентов, предварительно пересчитав статусы.
// Неудачный пересчёт не прерывает запрос: список отдаётся с возможно
// устаревшими статусами, ошибка пишется в лог.
func (s *Service) List(ctx context.Context) ([]*models.Member, error) {
	if err := s.RefreshStatuses(ctx); err != nil {
		s.log.Warn("status refresh failed, listing possibly stale data", sl.Err(err))
	}
	return s.repo.ListMembers(ctx)
}

// RefreshStatuses пересчитывает статус каждого клиента из его даты
// окончания и текущей даты и записывает результат. Пишется каждая
// строка, даже если статус не изменился.
func (s *Service) RefreshStatuses(ctx context.Context) error {
	today := s.now()
	rows, err := s.repo.ListMemberStatusRows(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		status := subscription.Status(row.EndDate.Time, today)
		if err := s.repo.UpdateMemberStatus(ctx, row.ID, status); err != nil {
			return err
		}
	}
	return nil
}

// Payments возвращает историю оплат клиента. Отдельной таблицы оплат
// нет, история синтезируется из текущего цикла абонемента.
func (s *Service) Payments(ctx context.Context, id int) ([]*models.Payment, error) {
	entry, err := s.readCached(ctx, id)
	if err != nil {
		return nil, err
	}

	return []*models.Payment{{
		ID:        1,
		MemberID:  entry.ID,
		StartDate: entry.StartDate,
		EndDate:   entry.EndDate,
		Duration:  entry.Duration,
		Price:     entry.MonthlyPrice,
		PaidAt:    models.NewDate(entry.CreatedAt),
		Kind:      "subscription",
	}}, nil
}

func (s *Service) readCached(ctx context.Context, id int) (*models.Member, error) {
	var result *models.Member
	cacheKey := fmt.Sprintf("member:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read member from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found && result != nil {
		return result, nil
	}

	result, err = s.repo.ReadMember(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache member", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

func (s *Service) invalidate(id int) {
	cacheKey := fmt.Sprintf("member:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate member cache", slog.String("key", cacheKey), sl.Err(err))
	}
}
