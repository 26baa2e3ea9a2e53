package statstoday

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CrisDa7/activeGym/internal/models"
)

type ServiceMock struct{ mock.Mock }

func (m *ServiceMock) Today(ctx context.Context) (*models.StatsSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StatsSnapshot), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHandler_Today_Success(t *testing.T) {
	svc := new(ServiceMock)
	snap := &models.StatsSnapshot{
		StatDate:      models.NewDate(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
		TotalMembers:  4,
		DailyUsers:    1,
		Sales:         1,
		IncomeToday:   decimal.RequireFromString("80.00"),
		ExpensesToday: decimal.RequireFromString("20.00"),
		ProfitToday:   decimal.RequireFromString("60.00"),
	}
	svc.On("Today", mock.Anything).Return(snap, nil)
	h := New(newNoopLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"stat_date":"2024-03-10"`)
	assert.Contains(t, body, `"profit_today":"60"`)
	assert.Contains(t, body, `"total_members":4`)
}

func TestHandler_Today_ServiceError(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("Today", mock.Anything).Return(nil, errors.New("db down"))
	h := New(newNoopLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to get statistics")
}
