package expense

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CrisDa7/activeGym/internal/models"
	"github.com/CrisDa7/activeGym/internal/services"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateExpense(ctx context.Context, expense models.Expense) (int, error) {
	args := m.Called(ctx, expense)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Expense), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Create_DefaultsToToday(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC) }

	var saved models.Expense
	repo.On("CreateExpense", mock.Anything, mock.AnythingOfType("models.Expense")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.Expense)
		}).Return(1, nil)

	_, err := svc.Create(context.Background(), models.DummyExpense{
		Description: "water delivery",
		Amount:      decimal.RequireFromString("20.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", saved.ExpenseDate.Format(models.DateLayout))
}

func TestService_Create_Backdated(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC) }

	var saved models.Expense
	repo.On("CreateExpense", mock.Anything, mock.AnythingOfType("models.Expense")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.Expense)
		}).Return(2, nil)

	_, err := svc.Create(context.Background(), models.DummyExpense{
		Description: "equipment repair",
		Amount:      decimal.RequireFromString("120.00"),
		ExpenseDate: "2024-03-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", saved.ExpenseDate.Format(models.DateLayout))
}

func TestService_Create_InvalidDate(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())

	_, err := svc.Create(context.Background(), models.DummyExpense{
		Description: "equipment repair",
		Amount:      decimal.RequireFromString("120.00"),
		ExpenseDate: "01/03/2024",
	})

	assert.ErrorIs(t, err, services.ErrInvalidInput)
	repo.AssertNotCalled(t, "CreateExpense")
}

func TestService_Create_NonPositiveAmount(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())

	_, err := svc.Create(context.Background(), models.DummyExpense{
		Description: "water delivery",
		Amount:      decimal.Zero,
	})

	assert.ErrorIs(t, err, services.ErrInvalidInput)
	repo.AssertNotCalled(t, "CreateExpense")
}
