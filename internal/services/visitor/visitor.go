// Package visitor реализует бизнес-логику учёта групп разовых
// посетителей. Итог группы всегда пересчитывается из количества
// и цены за человека, снаружи он не принимается.
package visitor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/CrisDa7/activeGym/internal/models"
	"github.com/CrisDa7/activeGym/internal/services"
	"github.com/CrisDa7/activeGym/internal/storage/repository"
)

// Repository определяет методы для работы с группами посетителей в хранилище.
type Repository interface {
	CreateVisitorBatch(ctx context.Context, batch models.VisitorBatch) (int, error)
	UpdateVisitorBatch(ctx context.Context, batch models.VisitorBatch, id int) (int, error)
	RemoveVisitorBatch(ctx context.Context, id int) (int, error)
	ListVisitorBatches(ctx context.Context) ([]*models.VisitorBatch, error)
}

// Service реализует бизнес-логику работы с группами посетителей.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create создает новую группу посетителей и возвращает её ID.
func (s *Service) Create(ctx context.Context, req models.DummyVisitorBatch) (int, error) {
	batch, err := buildBatch(req)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.CreateVisitorBatch(ctx, batch)
	if err != nil {
		return 0, err
	}
	s.log.Info("created visitor batch", slog.Int("id", id), slog.Int("count", req.VisitorCount))
	return id, nil
}

// Update обновляет группу посетителей, пересчитывая итог.
func (s *Service) Update(ctx context.Context, req models.DummyVisitorBatch, id int) (int, error) {
	batch, err := buildBatch(req)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.UpdateVisitorBatch(ctx, batch, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}

// Remove удаляет группу посетителей по ID.
func (s *Service) Remove(ctx context.Context, id int) (int, error) {
	count, err := s.repo.RemoveVisitorBatch(ctx, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}

// List возвращает все группы посетителей.
func (s *Service) List(ctx context.Context) ([]*models.VisitorBatch, error) {
	return s.repo.ListVisitorBatches(ctx)
}

func buildBatch(req models.DummyVisitorBatch) (models.VisitorBatch, error) {
	if !req.PricePerVisitor.IsPositive() {
		return models.VisitorBatch{}, fmt.Errorf("%w: price per visitor must be positive", services.ErrInvalidInput)
	}
	return models.VisitorBatch{
		VisitorCount:    req.VisitorCount,
		PricePerVisitor: req.PricePerVisitor,
		Total:           req.PricePerVisitor.Mul(decimal.NewFromInt(int64(req.VisitorCount))),
	}, nil
}
