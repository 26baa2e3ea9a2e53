// Package app предоставляет маршруты приложения.
package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/CrisDa7/activeGym/internal/http/handlers/expense/expensecreate"
	"github.com/CrisDa7/activeGym/internal/http/handlers/expense/expenselist"
	"github.com/CrisDa7/activeGym/internal/http/handlers/health"
	membercreate "github.com/CrisDa7/activeGym/internal/http/handlers/member/create"
	memberlist "github.com/CrisDa7/activeGym/internal/http/handlers/member/list"
	memberpayments "github.com/CrisDa7/activeGym/internal/http/handlers/member/payments"
	memberremove "github.com/CrisDa7/activeGym/internal/http/handlers/member/remove"
	memberrenew "github.com/CrisDa7/activeGym/internal/http/handlers/member/renew"
	memberupdate "github.com/CrisDa7/activeGym/internal/http/handlers/member/update"
	"github.com/CrisDa7/activeGym/internal/http/handlers/sale/salecreate"
	"github.com/CrisDa7/activeGym/internal/http/handlers/sale/salelist"
	"github.com/CrisDa7/activeGym/internal/http/handlers/sale/saleremove"
	"github.com/CrisDa7/activeGym/internal/http/handlers/sale/saleupdate"
	"github.com/CrisDa7/activeGym/internal/http/handlers/stats/statshistory"
	"github.com/CrisDa7/activeGym/internal/http/handlers/stats/statstoday"
	"github.com/CrisDa7/activeGym/internal/http/handlers/visitor/visitorcreate"
	"github.com/CrisDa7/activeGym/internal/http/handlers/visitor/visitorlist"
	"github.com/CrisDa7/activeGym/internal/http/handlers/visitor/visitorremove"
	"github.com/CrisDa7/activeGym/internal/http/handlers/visitor/visitorupdate"
	"github.com/CrisDa7/activeGym/internal/http/middlewarectx"
	expenseservice "github.com/CrisDa7/activeGym/internal/services/expense"
	memberservice "github.com/CrisDa7/activeGym/internal/services/member"
	saleservice "github.com/CrisDa7/activeGym/internal/services/sale"
	statsservice "github.com/CrisDa7/activeGym/internal/services/stats"
	visitorservice "github.com/CrisDa7/activeGym/internal/services/visitor"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	memberService *memberservice.Service,
	visitorService *visitorservice.Service,
	saleService *saleservice.Service,
	expenseService *expenseservice.Service,
	statsService *statsservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.RateLimitMiddleware(logger),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.New(logger).ServeHTTP)

		r.Post("/members", membercreate.New(logger, memberService).ServeHTTP)
		r.Get("/members", memberlist.New(logger, memberService).ServeHTTP)
		r.Put("/members/{id}", memberupdate.New(logger, memberService).ServeHTTP)
		r.Delete("/members/{id}", memberremove.New(logger, memberService).ServeHTTP)
		r.Post("/members/{id}/renew", memberrenew.New(logger, memberService).ServeHTTP)
		r.Get("/members/{id}/payments", memberpayments.New(logger, memberService).ServeHTTP)

		r.Post("/visitors", visitorcreate.New(logger, visitorService).ServeHTTP)
		r.Get("/visitors", visitorlist.New(logger, visitorService).ServeHTTP)
		r.Put("/visitors/{id}", visitorupdate.New(logger, visitorService).ServeHTTP)
		r.Delete("/visitors/{id}", visitorremove.New(logger, visitorService).ServeHTTP)

		r.Post("/sales", salecreate.New(logger, saleService).ServeHTTP)
		r.Get("/sales", salelist.New(logger, saleService).ServeHTTP)
		r.Put("/sales/{id}", saleupdate.New(logger, saleService).ServeHTTP)
		r.Delete("/sales/{id}", saleremove.New(logger, saleService).ServeHTTP)

		r.Post("/expenses", expensecreate.New(logger, expenseService).ServeHTTP)
		r.Get("/expenses", expenselist.New(logger, expenseService).ServeHTTP)

		r.Get("/stats", statstoday.New(logger, statsService).ServeHTTP)
		r.Get("/stats/history", statshistory.New(logger, statsService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
