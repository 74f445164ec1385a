// Package api assembles the HTTP surface: chi router, huma operations and
// the services behind them.
//
//	GET    /api/v1/health
//	POST   /api/register, /api/login, /api/logout
//	GET    /api/lost-found-items
//	POST   /api/add-lost-found-item, /api/update-lost-found-item, /api/delete-lost-found-item
//	GET    /api/loved_ones/{user_id}
//	POST   /api/loved_ones/{user_id}, /api/add_loved_one/{user_id}
//	DELETE /api/loved_ones/{user_id}/{loved_one_id}
//	POST   /api/send-sos-alert/{user_id}
//	POST   /api/generate-trip, /api/transport-routes, /api/travel-suggestions, /api/translate
//	GET    /api/alerts/location?location=
//	GET    /api/expenses, /api/expenses/summary (bearer)
//	POST   /api/expenses (bearer)
//	DELETE /api/expenses/{id} (bearer)
//	GET    /metrics
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"safetrip/internal/config"
	"safetrip/internal/domain/alert"
	"safetrip/internal/domain/expense"
	"safetrip/internal/domain/lostfound"
	"safetrip/internal/domain/lovedone"
	"safetrip/internal/domain/planner"
	"safetrip/internal/domain/session"
	"safetrip/internal/domain/sos"
	"safetrip/internal/domain/user"
	"safetrip/internal/infrastructure/events"
	"safetrip/internal/infrastructure/geocoding"
	"safetrip/internal/infrastructure/llm"
	"safetrip/internal/infrastructure/mail"
	"safetrip/internal/infrastructure/news"
	"safetrip/internal/infrastructure/storage/postgres"

	alertAPI "safetrip/internal/app/server/api/http/alert"
	expenseAPI "safetrip/internal/app/server/api/http/expense"
	healthAPI "safetrip/internal/app/server/api/http/health"
	lostfoundAPI "safetrip/internal/app/server/api/http/lostfound"
	lovedoneAPI "safetrip/internal/app/server/api/http/lovedone"
	httpmw "safetrip/internal/app/server/api/http/middleware"
	"safetrip/internal/app/server/api/http/middleware/auth"
	"safetrip/internal/app/server/api/http/middleware/logger"
	"safetrip/internal/app/server/api/http/middleware/metrics"
	"safetrip/internal/app/server/api/http/openapi"
	plannerAPI "safetrip/internal/app/server/api/http/planner"
	"safetrip/internal/app/server/api/http/response"
	sosAPI "safetrip/internal/app/server/api/http/sos"
	userAPI "safetrip/internal/app/server/api/http/user"
)

// Upstreams are the outbound clients the services call.
type Upstreams struct {
	LLM       llm.Completer
	News      news.Fetcher
	Geocoder  geocoding.ReverseGeocoder
	Mailer    mail.Sender
	Publisher events.Publisher
}

// Services is everything the handlers depend on.
type Services struct {
	DB        healthAPI.Pinger
	Users     user.Servicer
	Sessions  session.Servicer
	LostFound lostfound.Servicer
	LovedOnes lovedone.Servicer
	Planner   planner.Servicer
	Alerts    alert.Servicer
	SOS       sos.Servicer
	Expenses  expense.Servicer
}

type Handlers struct {
	Health    *healthAPI.Handler
	User      *userAPI.Handler
	LostFound *lostfoundAPI.Handler
	LovedOne  *lovedoneAPI.Handler
	Planner   *plannerAPI.Handler
	Alert     *alertAPI.Handler
	SOS       *sosAPI.Handler
	Expense   *expenseAPI.Handler
}

// New builds the router backed by Postgres and the given upstream clients.
func New(conf *config.Config, storage *postgres.Storage, up Upstreams, log *slog.Logger) *chi.Mux {
	return NewRouter(conf, NewServices(conf, storage, up, log), log)
}

// NewServices wires repositories and domain services.
func NewServices(conf *config.Config, storage *postgres.Storage, up Upstreams, log *slog.Logger) Services {
	if up.Publisher == nil {
		up.Publisher = events.Noop{}
	}

	userRepo := postgres.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, user.NewRequestValidator(), log)

	sessionRepo := postgres.NewSessionRepository(storage, log)
	lovedOneRepo := postgres.NewLovedOneRepository(storage, log)

	return Services{
		DB:        storage,
		Users:     userService,
		Sessions:  session.NewService(sessionRepo, conf.Session.TTL, log),
		LostFound: lostfound.NewService(postgres.NewLostFoundRepository(storage, log), userService, up.Publisher, log),
		LovedOnes: lovedone.NewService(lovedOneRepo, userService, log),
		Planner:   planner.NewService(up.LLM, log),
		Alerts:    alert.NewService(up.News, up.LLM, log),
		SOS:       sos.NewService(userService, lovedOneRepo, up.Geocoder, up.Mailer, up.Publisher, log),
		Expenses:  expense.NewService(postgres.NewExpenseRepository(storage, log), log),
	}
}

// NewRouter mounts every operation on a chi mux. Errors from chi and huma
// share the {"status":"error","message":...} envelope.
func NewRouter(conf *config.Config, svc Services, log *slog.Logger) *chi.Mux {
	response.Install()

	mux := chi.NewMux()
	mux.Use(middleware.StripSlashes)
	mux.Use(middleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: conf.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	if conf.RateLimit.Requests > 0 {
		mux.Use(httprate.LimitByIP(conf.RateLimit.Requests, conf.RateLimit.Window))
	}
	mux.MethodNotAllowed(response.MethodNotAllowed)
	mux.NotFound(response.NotFoundHandler)
	mux.Handle("/metrics", promhttp.Handler())

	API := humachi.New(mux, openapi.Config("SafeTrip API", "1.0.0"))

	h := handlers(svc, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.LostFound.SetupRoutes(API)
	h.LovedOne.SetupRoutes(API)
	h.Planner.SetupRoutes(API)
	h.Alert.SetupRoutes(API)
	h.SOS.SetupRoutes(API)
	h.Expense.SetupRoutes(API)

	return mux
}

func handlers(svc Services, log *slog.Logger) *Handlers {
	authMW := auth.New(svc.Sessions, log)
	loggerMW := logger.New(log)
	middlewares := httpmw.NewContainer()

	public := func() huma.Middlewares {
		return middlewares.Add(loggerMW.Middleware(), metrics.Middleware()).GetAllAndClear()
	}
	authed := func() huma.Middlewares {
		return middlewares.Add(loggerMW.Middleware(), metrics.Middleware(), authMW.Middleware()).GetAllAndClear()
	}

	return &Handlers{
		Health:    healthAPI.NewHandler(svc.DB, log, public()),
		User:      userAPI.NewHandler(svc.Users, svc.Sessions, log, public(), authed()),
		LostFound: lostfoundAPI.NewHandler(svc.LostFound, log, public()),
		LovedOne:  lovedoneAPI.NewHandler(svc.LovedOnes, log, public()),
		Planner:   plannerAPI.NewHandler(svc.Planner, log, public()),
		Alert:     alertAPI.NewHandler(svc.Alerts, log, public()),
		SOS:       sosAPI.NewHandler(svc.SOS, log, public()),
		Expense:   expenseAPI.NewHandler(svc.Expenses, log, authed()),
	}
}
