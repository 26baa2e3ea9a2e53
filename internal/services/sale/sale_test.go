package sale

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CrisDa7/activeGym/internal/models"
	"github.com/CrisDa7/activeGym/internal/services"
	"github.com/CrisDa7/activeGym/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateSale(ctx context.Context, sale models.Sale) (int, error) {
	args := m.Called(ctx, sale)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) UpdateSale(ctx context.Context, sale models.Sale, id int) (int, error) {
	args := m.Called(ctx, sale, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveSale(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListSales(ctx context.Context) ([]*models.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Sale), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Create_ComputesTotal(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())

	var saved models.Sale
	repo.On("CreateSale", mock.Anything, mock.AnythingOfType("models.Sale")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.Sale)
		}).Return(3, nil)

	id, err := svc.Create(context.Background(), models.DummySale{
		Product:   "protein bar",
		Quantity:  4,
		UnitPrice: decimal.RequireFromString("2.50"),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, id)
	assert.True(t, saved.Total.Equal(decimal.RequireFromString("10.00")))
}

func TestService_Create_NonPositivePrice(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())

	_, err := svc.Create(context.Background(), models.DummySale{
		Product:   "protein bar",
		Quantity:  1,
		UnitPrice: decimal.Zero,
	})

	assert.ErrorIs(t, err, services.ErrInvalidInput)
	repo.AssertNotCalled(t, "CreateSale")
}

func TestService_Update_RecomputesTotal(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())

	var saved models.Sale
	repo.On("UpdateSale", mock.Anything, mock.AnythingOfType("models.Sale"), 9).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.Sale)
		}).Return(1, nil)

	count, err := svc.Update(context.Background(), models.DummySale{
		Product:   "shaker",
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("7.00"),
	}, 9)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, saved.Total.Equal(decimal.RequireFromString("21.00")))
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())

	repo.On("UpdateSale", mock.Anything, mock.AnythingOfType("models.Sale"), 404).Return(0, nil)

	_, err := svc.Update(context.Background(), models.DummySale{
		Product:   "shaker",
		Quantity:  1,
		UnitPrice: decimal.RequireFromString("7.00"),
	}, 404)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestService_Remove_NotFound(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())

	repo.On("RemoveSale", mock.Anything, 404).Return(0, nil)

	_, err := svc.Remove(context.Background(), 404)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
