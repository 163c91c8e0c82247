package server

import (
	"log/slog"

	"github.com/gorilla/mux"

	"rental-server/obs"
	"rental-server/server/handlers"
	"rental-server/server/middleware"
)

type Router struct {
	listingHandler   *handlers.ListingHandler
	inboxHandler     *handlers.InboxHandler
	dashboardHandler *handlers.DashboardHandler
	sessionHandler   *handlers.SessionHandler
	pingHandler      *handlers.PingHandler
	metrics          *obs.Metrics
	logger           *slog.Logger
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	listingHandler *handlers.ListingHandler,
	inboxHandler *handlers.InboxHandler,
	dashboardHandler *handlers.DashboardHandler,
	sessionHandler *handlers.SessionHandler,
	pingHandler *handlers.PingHandler,
	metrics *obs.Metrics,
	logger *slog.Logger,
	router *mux.Router) *Router {
	return &Router{
		listingHandler:   listingHandler,
		inboxHandler:     inboxHandler,
		dashboardHandler: dashboardHandler,
		sessionHandler:   sessionHandler,
		pingHandler:      pingHandler,
		metrics:          metrics,
		logger:           logger,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(
		middleware.RequestID,
		middleware.LoggingMiddleware(r.logger),
		middleware.MetricsMiddleware(r.metrics),
		middleware.Session,
	)

	r.router.HandleFunc("/ping", r.pingHandler.Ping).Methods("GET")
	r.router.Handle("/metrics", r.metrics.Handler()).Methods("GET")

	// Static segments are registered before /v1/listings/{id} so they win the match.
	// expects the filter query args, see filter.FromQuery, plus ?sort=
	r.router.HandleFunc("/v1/listings/search", r.listingHandler.Search).Methods("GET")
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)}
	r.router.HandleFunc("/v1/listings/nearby", r.listingHandler.Nearby).Methods("GET")
	r.router.HandleFunc("/v1/listings/map", r.listingHandler.Map).Methods("GET")
	r.router.HandleFunc("/v1/listings", r.listingHandler.Submit).Methods("POST")
	r.router.HandleFunc("/v1/listings/{id}", r.listingHandler.GetListing).Methods("GET")
	r.router.HandleFunc("/v1/listings/{id}/availability", r.listingHandler.Availability).Methods("GET")
	r.router.HandleFunc("/v1/listings/{id}/quote", r.listingHandler.Quote).Methods("POST")
	r.router.HandleFunc("/v1/listings/{id}/reservations", r.listingHandler.Reserve).Methods("POST")
	r.router.HandleFunc("/v1/cities", r.listingHandler.Cities).Methods("GET")

	r.router.HandleFunc("/v1/conversations", r.inboxHandler.ListConversations).Methods("GET")
	r.router.HandleFunc("/v1/conversations/{id}/messages", r.inboxHandler.GetMessages).Methods("GET")
	r.router.HandleFunc("/v1/conversations/{id}/messages", r.inboxHandler.SendMessage).Methods("POST")

	r.router.HandleFunc("/v1/dashboard", r.dashboardHandler.GetDashboard).Methods("GET")

	r.router.HandleFunc("/v1/session", r.sessionHandler.GetSession).Methods("GET")
	r.router.HandleFunc("/v1/session/login", r.sessionHandler.Login).Methods("POST")
}
