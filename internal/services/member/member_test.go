package member

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CrisDa7/activeGym/internal/lib/subscription"
	"github.com/CrisDa7/activeGym/internal/models"
	"github.com/CrisDa7/activeGym/internal/services"
	"github.com/CrisDa7/activeGym/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateMember(ctx context.Context, member models.Member) (int, error) {
	args := m.Called(ctx, member)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) UpdateMember(ctx context.Context, member models.Member, id int) (int, error) {
	args := m.Called(ctx, member, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RenewMember(ctx context.Context, id int, renewal models.Member) (int, error) {
	args := m.Called(ctx, id, renewal)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveMember(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ReadMember(ctx context.Context, id int) (*models.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}
func (m *RepoMock) ListMembers(ctx context.Context) ([]*models.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Member), args.Error(1)
}
func (m *RepoMock) ListMemberStatusRows(ctx context.Context) ([]models.MemberStatusRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MemberStatusRow), args.Error(1)
}
func (m *RepoMock) UpdateMemberStatus(ctx context.Context, id int, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newService(repo *RepoMock, cache *CacheMock, today time.Time) *Service {
	svc := New(repo, cache, newNoopLogger())
	svc.now = func() time.Time { return today }
	return svc
}

func TestService_Create_MonthDurationClampsEndDate(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := newService(repo, cache, time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC))

	var saved models.Member
	repo.On("CreateMember", mock.Anything, mock.AnythingOfType("models.Member")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.Member)
		}).Return(7, nil)

	id, err := svc.Create(context.Background(), models.DummyMember{
		Name:         "Carlos",
		Surname:      "Diaz",
		Phone:        "555-0101",
		MonthlyPrice: decimal.RequireFromString("50.00"),
		StartDate:    "2024-01-31",
		Duration:     30,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, id)
	// 2024 високосный: 31 января + месяц прижимается к 29 февраля
	assert.Equal(t, "2024-02-29", saved.EndDate.Format(models.DateLayout))
	assert.Equal(t, subscription.StatusActive, saved.Status)
}

func TestService_Create_WeekDuration(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := newService(repo, cache, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	var saved models.Member
	repo.On("CreateMember", mock.Anything, mock.AnythingOfType("models.Member")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.Member)
		}).Return(1, nil)

	_, err := svc.Create(context.Background(), models.DummyMember{
		Name:         "Ana",
		Surname:      "Lopez",
		Phone:        "555-0102",
		MonthlyPrice: decimal.RequireFromString("20.00"),
		StartDate:    "2024-01-15",
		Duration:     7,
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-01-21", saved.EndDate.Format(models.DateLayout))
}

func TestService_Create_InvalidStartDate(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := newService(repo, cache, time.Now())

	_, err := svc.Create(context.Background(), models.DummyMember{
		Name:         "Ana",
		Surname:      "Lopez",
		Phone:        "555-0102",
		MonthlyPrice: decimal.RequireFromString("20.00"),
		StartDate:    "31-01-2024",
		Duration:     30,
	})

	assert.ErrorIs(t, err, services.ErrInvalidInput)
	repo.AssertNotCalled(t, "CreateMember")
}

func TestService_Create_NonPositivePrice(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := newService(repo, cache, time.Now())

	_, err := svc.Create(context.Background(), models.DummyMember{
		Name:         "Ana",
		Surname:      "Lopez",
		Phone:        "555-0102",
		MonthlyPrice: decimal.RequireFromString("-5"),
		StartDate:    "2024-01-15",
		Duration:     30,
	})

	assert.ErrorIs(t, err, services.ErrInvalidInput)
	repo.AssertNotCalled(t, "CreateMember")
}

func TestService_Renew_ForcesActiveStatus(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	// Сегодня позже новой даты окончания: вычисленный статус был бы
	// EXPIRED, но продление всё равно пишет ACTIVE.
	svc := newService(repo, cache, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	var saved models.Member
	repo.On("RenewMember", mock.Anything, 3, mock.AnythingOfType("models.Member")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).(models.Member)
		}).Return(1, nil)
	cache.On("Invalidate", "member:3").Return(nil)

	count, err := svc.Renew(context.Background(), models.DummyRenewal{
		StartDate:    "2024-03-01",
		Duration:     7,
		MonthlyPrice: decimal.RequireFromString("55.00"),
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, subscription.StatusActive, saved.Status)
	assert.Equal(t, "2024-03-07", saved.EndDate.Format(models.DateLayout))
	cache.AssertCalled(t, "Invalidate", "member:3")
}

func TestService_Renew_NotFound(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := newService(repo, cache, time.Now())

	repo.On("RenewMember", mock.Anything, 99, mock.AnythingOfType("models.Member")).Return(0, nil)

	_, err := svc.Renew(context.Background(), models.DummyRenewal{
		StartDate:    "2024-03-01",
		Duration:     30,
		MonthlyPrice: decimal.RequireFromString("55.00"),
	}, 99)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestService_RefreshStatuses_WritesEveryMember(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	svc := newService(repo, cache, today)

	rows := []models.MemberStatusRow{
		{ID: 1, EndDate: models.NewDate(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))},
		{ID: 2, EndDate: models.NewDate(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))},
		{ID: 3, EndDate: models.NewDate(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))},
	}
	repo.On("ListMemberStatusRows", mock.Anything).Return(rows, nil)
	repo.On("UpdateMemberStatus", mock.Anything, 1, subscription.StatusExpired).Return(nil)
	repo.On("UpdateMemberStatus", mock.Anything, 2, subscription.StatusDueToday).Return(nil)
	repo.On("UpdateMemberStatus", mock.Anything, 3, subscription.StatusActive).Return(nil)

	err := svc.RefreshStatuses(context.Background())

	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "UpdateMemberStatus", 3)
}

func TestService_List_ProceedsWhenRefreshFails(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := newService(repo, cache, time.Now())

	repo.On("ListMemberStatusRows", mock.Anything).Return(nil, errors.New("db down"))
	repo.On("ListMembers", mock.Anything).Return([]*models.Member{{ID: 1}}, nil)

	res, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestService_Payments_SynthesizedFromMember(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := newService(repo, cache, time.Now())

	entry := &models.Member{
		ID:           5,
		MonthlyPrice: decimal.RequireFromString("45.50"),
		StartDate:    models.NewDate(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:      models.NewDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		Duration:     30,
		CreatedAt:    time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC),
	}
	cache.On("Get", "member:5", mock.Anything).Return(false, nil)
	repo.On("ReadMember", mock.Anything, 5).Return(entry, nil)
	cache.On("Set", "member:5", entry, time.Hour).Return(nil)

	payments, err := svc.Payments(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 5, payments[0].MemberID)
	assert.True(t, payments[0].Price.Equal(entry.MonthlyPrice))
	assert.Equal(t, "2024-02-01", payments[0].PaidAt.Format(models.DateLayout))
}

func TestService_Remove_NotFound(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := newService(repo, cache, time.Now())

	repo.On("RemoveMember", mock.Anything, 42).Return(0, nil)

	_, err := svc.Remove(context.Background(), 42)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
