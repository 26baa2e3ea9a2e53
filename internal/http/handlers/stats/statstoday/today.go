// Package statstoday реализует HTTP-обработчик дневной статистики.
// Каждый запрос инициализирует строку за текущую дату (если её ещё нет)
// и пересчитывает агрегаты; пересчёт идемпотентен.
package statstoday

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/CrisDa7/activeGym/internal/http/response"
	"github.com/CrisDa7/activeGym/internal/lib/sl"
	"github.com/CrisDa7/activeGym/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики дневной статистики.
type Service interface {
	Today(ctx context.Context) (*models.StatsSnapshot, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статистика за сегодня
// @Description Инициализирует строку за текущую дату и пересчитывает агрегаты.
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]any "Снимок статистики"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats.today"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.Today(r.Context())
	if err != nil {
		log.Error("failed to recompute statistics", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get statistics"))
		return
	}

	log.Info("statistics recomputed", slog.String("date", res.StatDate.Format(models.DateLayout)))
	render.JSON(w, r, response.OKWithData(res))
}
