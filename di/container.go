package di

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"rental-server/config"
	"rental-server/dao/redis"
	"rental-server/db"
	"rental-server/obs"
	"rental-server/server"
	"rental-server/server/handlers"
	services "rental-server/service"
	"rental-server/util"
)

// Container holds all application dependencies.
type Container struct {
	Config                  *config.Config
	Logger                  *slog.Logger
	Metrics                 *obs.Metrics
	RedisClient             db.RedisClient
	RedisListingDao         *redis.RedisListingDAO
	RedisInboxDao           *redis.RedisInboxDAO
	ListingService          *services.ListingService
	InboxService            *services.InboxService
	DashboardService        *services.DashboardService
	SubmissionService       *services.SubmissionService
	CatalogRefresherService *services.CatalogRefresherService
	ListingHandler          *handlers.ListingHandler
	InboxHandler            *handlers.InboxHandler
	DashboardHandler        *handlers.DashboardHandler
	SessionHandler          *handlers.SessionHandler
	PingHandler             *handlers.PingHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	RentalHttpServer        *server.RentalHttpServer
}

// NewContainer initializes and wires up all dependencies. Outside prod the
// in-memory Redis client is used so the server runs without a Redis instance.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Printf("[Container] Initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	var redisClient db.RedisClient
	if cfg.IsProd() {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		geoClient, err := db.NewGeoRedisClient(ctx, redisInternalClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddress, err)
		}
		redisClient = geoClient
		log.Printf("[Container] Using Redis at %s", cfg.RedisAddress)
	} else {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("[Container] Using in-memory Redis client")
	}

	logger := NewLogger(cfg.LogLevel)
	metrics := obs.NewMetrics(prometheus.NewRegistry())

	listingDao := redis.NewRedisListingDAO(redisClient)
	inboxDao := redis.NewRedisInboxDAO(redisClient)

	listingService := services.NewListingService(listingDao, cfg.Region, metrics)
	inboxService := services.NewInboxService(inboxDao, metrics)
	submissionService := services.NewSubmissionService(cfg.Region)

	inbox, err := util.ReadInboxFromJSON(config.GetResourcePath(config.INBOX_RESOURCE))
	if err != nil {
		log.Printf("[Container] No inbox seed loaded: %v", err)
	} else if err := inboxService.Seed(inbox); err != nil {
		return nil, fmt.Errorf("seed inbox: %w", err)
	}

	seed, err := util.ReadDashboardSeedFromJSON(config.GetResourcePath(config.DASHBOARD_RESOURCE))
	if err != nil {
		log.Printf("[Container] No dashboard seed loaded: %v", err)
		seed = nil
	}
	dashboardService := services.NewDashboardService(seed, listingService, inboxService)

	refresher := services.NewCatalogRefresherService(listingDao, CatalogSource(cfg), metrics)

	listingHandler := handlers.NewListingHandler(listingService, submissionService)
	inboxHandler := handlers.NewInboxHandler(inboxService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	sessionHandler := handlers.NewSessionHandler()
	pingHandler := handlers.NewPingHandler()

	muxRouter := mux.NewRouter()
	router := server.NewRouter(listingHandler, inboxHandler, dashboardHandler, sessionHandler, pingHandler, metrics, logger, muxRouter)
	httpServer := server.NewRentalHttpServer(router, muxRouter, cfg.HTTPAddress)

	return &Container{
		Config:                  cfg,
		Logger:                  logger,
		Metrics:                 metrics,
		RedisClient:             redisClient,
		RedisListingDao:         listingDao,
		RedisInboxDao:           inboxDao,
		ListingService:          listingService,
		InboxService:            inboxService,
		DashboardService:        dashboardService,
		SubmissionService:       submissionService,
		CatalogRefresherService: refresher,
		ListingHandler:          listingHandler,
		InboxHandler:            inboxHandler,
		DashboardHandler:        dashboardHandler,
		SessionHandler:          sessionHandler,
		PingHandler:             pingHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		RentalHttpServer:        httpServer,
	}, nil
}

// CatalogSource prefers the remote catalog URL over the local file.
func CatalogSource(cfg *config.Config) services.CatalogSource {
	if cfg.CatalogURL != "" {
		return services.NewHTTPCatalogSource(cfg.CatalogURL)
	}
	return services.FileCatalogSource{Path: cfg.CatalogPath}
}

// NewLogger builds the JSON request logger. Unknown levels fall back to info.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// StartRefresher loads the catalog once and schedules further refreshes when
// a cron spec is configured.
func (c *Container) StartRefresher(ctx context.Context) error {
	if err := c.CatalogRefresherService.RefreshCatalog(ctx); err != nil {
		return err
	}
	if c.Config.CatalogRefreshSchedule == "" {
		log.Printf("[Container] No catalog refresh schedule, catalog loaded once")
		return nil
	}
	return c.CatalogRefresherService.StartPeriodicJob(c.Config.CatalogRefreshSchedule)
}
