// Package sale реализует бизнес-логику продаж. Итог продажи всегда
// пересчитывается из количества и цены за единицу.
package sale

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/CrisDa7/activeGym/internal/models"
	"github.com/CrisDa7/activeGym/internal/services"
	"github.com/CrisDa7/activeGym/internal/storage/repository"
)

// Repository определяет методы для работы с продажами в хранилище.
type Repository interface {
	CreateSale(ctx context.Context, sale models.Sale) (int, error)
	UpdateSale(ctx context.Context, sale models.Sale, id int) (int, error)
	RemoveSale(ctx context.Context, id int) (int, error)
	ListSales(ctx context.Context) ([]*models.Sale, error)
}

// Service реализует бизнес-логику работы с продажами.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create регистрирует новую продажу и возвращает её ID.
func (s *Service) Create(ctx context.Context, req models.DummySale) (int, error) {
	sale, err := buildSale(req)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.CreateSale(ctx, sale)
	if err != nil {
		return 0, err
	}
	s.log.Info("created sale", slog.Int("id", id), slog.String("product", req.Product))
	return id, nil
}

// Update обновляет продажу, пересчитывая итог.
func (s *Service) Update(ctx context.Context, req models.DummySale, id int) (int, error) {
	sale, err := buildSale(req)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.UpdateSale(ctx, sale, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}

// Remove удаляет продажу по ID.
func (s *Service) Remove(ctx context.Context, id int) (int, error) {
	count, err := s.repo.RemoveSale(ctx, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}

// List возвращает все продажи.
func (s *Service) List(ctx context.Context) ([]*models.Sale, error) {
	return s.repo.ListSales(ctx)
}

func buildSale(req models.DummySale) (models.Sale, error) {
	if !req.UnitPrice.IsPositive() {
		return models.Sale{}, fmt.Errorf("%w: unit price must be positive", services.ErrInvalidInput)
	}
	return models.Sale{
		Product:   req.Product,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Total:     req.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}, nil
}
