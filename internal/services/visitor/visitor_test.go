package visitor

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

func (m *RepoMock) CreateVisitorBatch(ctx context.Context, batch models.VisitorBatch) (int, error) {
	args := m.Called(ctx, batch)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) UpdateVisitorBatch(ctx context.Context, batch models.VisitorBatch, id int) (int, error) {
	args := m.Called(ctx, batch, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveVisitorBatch(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListVisitorBatches(ctx context.Context) ([]*models.VisitorBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.VisitorBatch), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Create_ComputesTotal(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())

	var saved models.VisitorBatch
	repo.On("CreateVisitorBatch", mock.Anything, mock.AnythingOfType("models.VisitorBatch")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.VisitorBatch)
		}).Return(5, nil)

	id, err := svc.Create(context.Background(), models.DummyVisitorBatch{
		VisitorCount:    3,
		PricePerVisitor: decimal.RequireFromString("2.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, 5, id)
	assert.True(t, saved.Total.Equal(decimal.RequireFromString("6.00")))
}

func TestService_Create_NonPositivePrice(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())

	_, err := svc.Create(context.Background(), models.DummyVisitorBatch{
		VisitorCount:    3,
		PricePerVisitor: decimal.Zero,
	})

	assert.ErrorIs(t, err, services.ErrInvalidInput)
	repo.AssertNotCalled(t, "CreateVisitorBatch")
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())

	repo.On("UpdateVisitorBatch", mock.Anything, mock.AnythingOfType("models.VisitorBatch"), 77).Return(0, nil)

	_, err := svc.Update(context.Background(), models.DummyVisitorBatch{
		VisitorCount:    1,
		PricePerVisitor: decimal.RequireFromString("2.00"),
	}, 77)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestService_Remove_NotFound(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, newNoopLogger())

	repo.On("RemoveVisitorBatch", mock.Anything, 77).Return(0, nil)

	_, err := svc.Remove(context.Background(), 77)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
