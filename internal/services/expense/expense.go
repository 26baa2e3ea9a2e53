// Package expense реализует бизнес-логику учёта расходов.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/CrisDa7/activeGym/internal/models"
	"github.com/CrisDa7/activeGym/internal/services"
)

// Repository определяет методы для работы с расходами в хранилище.
type Repository interface {
	CreateExpense(ctx context.Context, expense models.Expense) (int, error)
	ListExpenses(ctx context.Context) ([]*models.Expense, error)
}

// Service реализует бизнес-логику работы с расходами.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// Create регистрирует новый расход. Если дата не передана,
// расход относится к сегодняшнему дню; явная дата позволяет
// занести расход задним числом.
func (s *Service) Create(ctx context.Context, req models.DummyExpense) (int, error) {
	if !req.Amount.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be positive", services.ErrInvalidInput)
	}

	expenseDate := models.NewDate(s.now())
	if req.ExpenseDate != "" {
		parsed, err := models.ParseDate(req.ExpenseDate)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid expense date", services.ErrInvalidInput)
		}
		expenseDate = parsed
	}

	id, err := s.repo.CreateExpense(ctx, models.Expense{
		ExpenseDate: expenseDate,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		return 0, err
	}
	s.log.Info("created expense", slog.Int("id", id))
	return id, nil
}

// List возвращает все расходы.
func (s *Service) List(ctx context.Context) ([]*models.Expense, error) {
	return s.repo.ListExpenses(ctx)
}
