package services

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"rental-server/config"
	"rental-server/dao/redis"
	"rental-server/filter"
	"rental-server/models"
	"rental-server/obs"
)

// MAX_AVAILABILITY_DAYS bounds the window Availability will expand.
const MAX_AVAILABILITY_DAYS = 366

const DEFAULT_AVAILABILITY_DAYS = 90

// SearchResult is the filtered catalog plus what the result header shows.
type SearchResult struct {
	Listings      []models.Listing `json:"listings"`
	Total         int              `json:"total"`
	ActiveFilters int              `json:"active_filters"`
	Empty         bool             `json:"empty"`
	Criteria      filter.Criteria  `json:"criteria"`
	Sort          filter.SortOrder `json:"sort,omitempty"`
}

// Availability lists the days of a window that cannot be booked.
type Availability struct {
	ListingID     string        `json:"listing_id"`
	From          models.Date   `json:"from"`
	To            models.Date   `json:"to"`
	DisabledDates []models.Date `json:"disabled_dates"`
}

type ListingService struct {
	listingDao *redis.RedisListingDAO
	pipeline   filter.Pipeline
	region     config.RegionConfig
	metrics    *obs.Metrics
	now        func() time.Time
	newID      func() string
}

// NewListingService constructs a ListingService for the configured region.
func NewListingService(
	listingDao *redis.RedisListingDAO,
	region config.RegionConfig,
	metrics *obs.Metrics) *ListingService {

	return &ListingService{
		listingDao: listingDao,
		pipeline:   filter.Pipeline{AmenityMode: filter.ParseAmenityMode(region.AmenityMode)},
		region:     region,
		metrics:    metrics,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// PriceSpan is the default price range of the region.
func (ls *ListingService) PriceSpan() filter.PriceRange {
	return filter.PriceRange{Min: ls.region.PriceMin, Max: ls.region.PriceMax}
}

func (ls *ListingService) Region() config.RegionConfig {
	return ls.region
}

// Search runs the filter pipeline over the current catalog.
func (ls *ListingService) Search(c filter.Criteria, order filter.SortOrder) (*SearchResult, error) {
	catalog, err := ls.listingDao.GetCatalog()
	if err != nil {
		return nil, err
	}

	listings, active := ls.pipeline.Apply(catalog, c)
	listings = filter.Sort(listings, order)

	ls.metrics.IncSearches()
	if len(listings) == 0 {
		ls.metrics.IncEmptyResults()
	}
	return &SearchResult{
		Listings:      listings,
		Total:         len(listings),
		ActiveFilters: active,
		Empty:         len(listings) == 0,
		Criteria:      c,
		Sort:          order,
	}, nil
}

// Catalog returns every listing in catalog order.
func (ls *ListingService) Catalog() ([]models.Listing, error) {
	return ls.listingDao.GetCatalog()
}

func (ls *ListingService) Get(id string) (*models.Listing, error) {
	l, err := ls.listingDao.GetListing(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: %s", ErrListingNotFound, id)
	}
	return l, nil
}

// Nearby returns listings within radiusKm of a point, nearest first.
func (ls *ListingService) Nearby(lat, lon, radiusKm float64) ([]models.Listing, error) {
	if radiusKm <= 0 || math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) {
		return nil, ErrInvalidRadius
	}
	return ls.listingDao.GetNearbyListings(lat, lon, radiusKm)
}

// Availability reports the days of [from, to] that are in the past or blocked.
// A zero from means today; a zero to means DEFAULT_AVAILABILITY_DAYS after from.
func (ls *ListingService) Availability(id string, from, to models.Date) (*Availability, error) {
	l, err := ls.Get(id)
	if err != nil {
		return nil, err
	}

	today := models.DateOf(ls.now())
	if from.IsZero() {
		from = today
	}
	if to.IsZero() {
		to = from.AddDays(DEFAULT_AVAILABILITY_DAYS)
	}
	if to.Before(from) || from.DaysUntil(to) > MAX_AVAILABILITY_DAYS {
		return nil, fmt.Errorf("%w: window %s..%s", ErrInvalidDates, from, to)
	}

	disabled := []models.Date{}
	for d := from; !d.After(to); d = d.AddDays(1) {
		if d.Before(today) || l.IsBlocked(d) {
			disabled = append(disabled, d)
		}
	}
	return &Availability{ListingID: l.ID, From: from, To: to, DisabledDates: disabled}, nil
}

// Quote prices a stay. Every night of [checkIn, checkOut) must be bookable.
func (ls *ListingService) Quote(id string, checkIn, checkOut models.Date, guests int) (*models.Quote, error) {
	l, err := ls.Get(id)
	if err != nil {
		return nil, err
	}
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, fmt.Errorf("%w: check-in and check-out are required", ErrInvalidDates)
	}
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDates)
	}
	if checkIn.Before(models.DateOf(ls.now())) {
		return nil, fmt.Errorf("%w: check-in %s is in the past", ErrInvalidDates, checkIn)
	}
	if guests < 1 || guests > l.GuestCapacity() {
		return nil, fmt.Errorf("%w: %d guests, listing hosts 1 to %d", ErrGuestsOutOfRange, guests, l.GuestCapacity())
	}
	for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
		if l.IsBlocked(d) {
			return nil, fmt.Errorf("%w: %s is not available", ErrDatesUnavailable, d)
		}
	}

	nights := checkIn.DaysUntil(checkOut)
	subtotal := l.Price * float64(nights)
	fee := math.Round(subtotal * ls.region.ServiceFeeRate)
	return &models.Quote{
		ListingID:  l.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     guests,
		Nights:     nights,
		NightPrice: l.Price,
		Subtotal:   subtotal,
		ServiceFee: fee,
		Total:      subtotal + fee,
		Currency:   ls.region.Currency,
	}, nil
}

// Reserve acknowledges a reservation request for a valid quote. Nothing is stored.
func (ls *ListingService) Reserve(id string, checkIn, checkOut models.Date, guests int, message string) (*models.Reservation, error) {
	q, err := ls.Quote(id, checkIn, checkOut, guests)
	if err != nil {
		return nil, err
	}
	ls.metrics.IncReservations()

	r := &models.Reservation{
		RequestID:    ls.newID(),
		Quote:        *q,
		Message:      "Votre demande de réservation a été envoyée !",
		GuestMessage: strings.TrimSpace(message),
		RequestedAt:  ls.now().UTC(),
	}
	log.Printf("[ListingService] Reservation request %s for listing %s (%d nights)", r.RequestID, id, q.Nights)
	return r, nil
}

// Cities groups the catalog by city in order of first appearance.
func (ls *ListingService) Cities() ([]models.City, error) {
	catalog, err := ls.listingDao.GetCatalog()
	if err != nil {
		return nil, err
	}

	type acc struct {
		city            models.City
		total, lon, lat float64
	}
	index := map[string]int{}
	var groups []*acc
	for _, l := range catalog {
		name := l.City()
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, &acc{city: models.City{Name: name, MinPrice: l.Price}})
		}
		g := groups[i]
		g.city.Listings++
		g.total += l.Price
		g.lon += l.Coordinates.Lon()
		g.lat += l.Coordinates.Lat()
		g.city.MinPrice = math.Min(g.city.MinPrice, l.Price)
	}

	cities := make([]models.City, 0, len(groups))
	for _, g := range groups {
		n := float64(g.city.Listings)
		g.city.AveragePrice = math.Round(g.total / n)
		g.city.Coordinates = models.Coordinates{g.lon / n, g.lat / n}
		cities = append(cities, g.city)
	}
	return cities, nil
}

// HostStats summarizes the catalog for the dashboard.
func (ls *ListingService) HostStats() (models.HostStats, error) {
	catalog, err := ls.listingDao.GetCatalog()
	if err != nil {
		return models.HostStats{}, err
	}
	return hostStats(catalog), nil
}

func hostStats(catalog []models.Listing) models.HostStats {
	stats := models.HostStats{Listings: len(catalog)}
	if len(catalog) == 0 {
		return stats
	}
	stats.MinPrice, stats.MaxPrice = catalog[0].Price, catalog[0].Price
	var ratings float64
	for _, l := range catalog {
		ratings += l.Rating
		stats.MinPrice = math.Min(stats.MinPrice, l.Price)
		stats.MaxPrice = math.Max(stats.MaxPrice, l.Price)
	}
	stats.AverageRating = math.Round(ratings/float64(len(catalog))*100) / 100
	return stats
}
