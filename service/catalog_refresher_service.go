package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"rental-server/api"
	"rental-server/dao/redis"
	"rental-server/models"
	"rental-server/obs"
	"rental-server/util"
)

const CATALOG_FETCH_TIMEOUT = 30 * time.Second

// CatalogSource yields a full catalog.
type CatalogSource interface {
	Load(ctx context.Context) ([]models.Listing, error)
	String() string
}

// FileCatalogSource reads the catalog from a JSON file.
type FileCatalogSource struct {
	Path string
}

func (s FileCatalogSource) Load(ctx context.Context) ([]models.Listing, error) {
	return util.ReadCatalogFromJSON(s.Path)
}

func (s FileCatalogSource) String() string { return "file:" + s.Path }

// HTTPCatalogSource fetches the catalog as a JSON array from a URL.
type HTTPCatalogSource struct {
	Client *api.HTTPClient
	URL    string
}

func NewHTTPCatalogSource(url string) HTTPCatalogSource {
	return HTTPCatalogSource{Client: api.NewHTTPClient(""), URL: url}
}

func (s HTTPCatalogSource) Load(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	if err := s.Client.Request(ctx, "GET", s.URL, nil, nil, &listings); err != nil {
		return nil, fmt.Errorf("fetch catalog from %s: %w", s.URL, err)
	}
	return listings, nil
}

func (s HTTPCatalogSource) String() string { return s.URL }

// CatalogRefresherService loads the catalog into Redis at startup and,
// optionally, on a cron schedule.
type CatalogRefresherService struct {
	listingDao *redis.RedisListingDAO
	source     CatalogSource
	metrics    *obs.Metrics
	cron       *cron.Cron
}

// NewCatalogRefresherService constructs a new refresher with dependencies.
func NewCatalogRefresherService(
	listingDao *redis.RedisListingDAO,
	source CatalogSource,
	metrics *obs.Metrics,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		listingDao: listingDao,
		source:     source,
		metrics:    metrics,
	}
}

// RefreshCatalog replaces the stored catalog with the source's. An invalid
// catalog leaves the stored one untouched.
func (cr *CatalogRefresherService) RefreshCatalog(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, CATALOG_FETCH_TIMEOUT)
	defer cancel()

	listings, err := cr.source.Load(ctx)
	if err != nil {
		cr.metrics.ObserveCatalogRefresh("error", 0)
		return fmt.Errorf("load catalog from %s: %w", cr.source, err)
	}
	if err := ValidateCatalog(listings); err != nil {
		cr.metrics.ObserveCatalogRefresh("invalid", 0)
		return err
	}
	if err := cr.listingDao.ReplaceCatalog(listings); err != nil {
		cr.metrics.ObserveCatalogRefresh("error", 0)
		return err
	}
	cr.metrics.ObserveCatalogRefresh("ok", len(listings))
	log.Printf("[CatalogRefresherService] Loaded %d listings from %s", len(listings), cr.source)
	return nil
}

// StartPeriodicJob schedules RefreshCatalog with a standard 5-field cron spec.
func (cr *CatalogRefresherService) StartPeriodicJob(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		log.Println("[CatalogRefresherService] Running periodic catalog refresher job.")
		if err := cr.RefreshCatalog(context.Background()); err != nil {
			log.Printf("[CatalogRefresherService] RefreshCatalog returned error: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	cr.cron = c
	c.Start()
	log.Printf("[CatalogRefresherService] Refresh scheduled with %q", schedule)
	return nil
}

// Stop waits for a running refresh to finish.
func (cr *CatalogRefresherService) Stop() {
	if cr.cron != nil {
		<-cr.cron.Stop().Done()
	}
}

// ValidateCatalog rejects listings without an id or title and duplicate ids.
func ValidateCatalog(listings []models.Listing) error {
	seen := make(map[string]bool, len(listings))
	for i, l := range listings {
		if strings.TrimSpace(l.ID) == "" {
			return fmt.Errorf("%w: listing at index %d has no id", ErrInvalidCatalog, i)
		}
		if seen[l.ID] {
			return fmt.Errorf("%w: duplicate listing id %s", ErrInvalidCatalog, l.ID)
		}
		seen[l.ID] = true
		if strings.TrimSpace(l.Title) == "" {
			return fmt.Errorf("%w: listing %s has no title", ErrInvalidCatalog, l.ID)
		}
		if l.Price < 0 {
			return fmt.Errorf("%w: listing %s has a negative price", ErrInvalidCatalog, l.ID)
		}
	}
	return nil
}
