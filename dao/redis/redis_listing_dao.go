package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"rental-server/db"
	"rental-server/models"
)

// LISTINGS_CATALOG_KEY_V1 holds the whole catalog as one JSON array so that
// catalog order survives the round trip.
const LISTINGS_CATALOG_KEY_V1 = "listings_catalog_v1"
const LISTINGS_GEO_KEY_V1 = "listings_geo_v1"
const LISTINGS_GEO_PLACE_MEMBER_FORMAT_V1 = "listings_geo_place_v1:%s"

// RedisListingDAO handles listing operations using Redis.
type RedisListingDAO struct {
	client db.RedisClient
}

// NewRedisListingDAO initializes a RedisListingDAO with the Redis client.
func NewRedisListingDAO(client db.RedisClient) *RedisListingDAO {
	return &RedisListingDAO{client: client}
}

func listingKey(id string) string {
	return fmt.Sprintf(LISTINGS_GEO_PLACE_MEMBER_FORMAT_V1, id)
}

// UpsertListing stores the listing as a geolocation with the listing's JSON data.
func (dao *RedisListingDAO) UpsertListing(l models.Listing) error {
	ctx := dao.client.GetContext()
	return dao.client.AddLocationWithJSON(ctx, LISTINGS_GEO_KEY_V1, listingKey(l.ID), l.Coordinates.Lat(), l.Coordinates.Lon(), l)
}

// ReplaceCatalog stores listings as the current catalog and drops geo members
// of listings that are no longer part of it.
func (dao *RedisListingDAO) ReplaceCatalog(listings []models.Listing) error {
	previous, err := dao.ListAllListingIDs()
	if err != nil {
		return err
	}

	keep := make(map[string]bool, len(listings))
	for _, l := range listings {
		if err := dao.UpsertListing(l); err != nil {
			return fmt.Errorf("[RedisListingDAO] failed to upsert listing %s: %w", l.ID, err)
		}
		keep[l.ID] = true
	}

	var stale []string
	for _, id := range previous {
		if !keep[id] {
			stale = append(stale, listingKey(id))
		}
	}
	if err := dao.client.RemoveLocations(LISTINGS_GEO_KEY_V1, stale...); err != nil {
		return fmt.Errorf("[RedisListingDAO] failed to remove stale listings: %w", err)
	}

	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := dao.client.Set(LISTINGS_CATALOG_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set catalog in redis: %w", err)
	}
	log.Printf("[RedisListingDAO] Stored catalog with %d listings (%d stale removed)", len(listings), len(stale))
	return nil
}

// GetCatalog returns the catalog in its stored order, or an empty catalog
// when none has been stored yet.
func (dao *RedisListingDAO) GetCatalog() ([]models.Listing, error) {
	str, err := dao.client.Get(LISTINGS_CATALOG_KEY_V1)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return []models.Listing{}, nil
		}
		return nil, fmt.Errorf("failed to get catalog from redis: %w", err)
	}
	var listings []models.Listing
	if err := json.Unmarshal([]byte(str), &listings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}
	return listings, nil
}

// GetListing returns nil, nil when the listing does not exist.
func (dao *RedisListingDAO) GetListing(id string) (*models.Listing, error) {
	str, err := dao.client.Get(listingKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing %s from redis: %w", id, err)
	}
	var l models.Listing
	if err := json.Unmarshal([]byte(str), &l); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listing JSON: %w", err)
	}
	return &l, nil
}

// GetNearbyListings retrieves listings within radius km, nearest first.
func (dao *RedisListingDAO) GetNearbyListings(lat, lon, radius float64) ([]models.Listing, error) {
	listingsJSON, err := dao.client.GetLocationsWithinRadius(LISTINGS_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisListingDAO] failed to get listings: %w", err)
	}

	listings := make([]models.Listing, len(listingsJSON))
	for i, listingJSON := range listingsJSON {
		if err := json.Unmarshal([]byte(listingJSON), &listings[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal listing JSON: %w", err)
		}
	}
	return listings, nil
}

// ListAllListingIDs returns all listing IDs present in the geo index.
func (dao *RedisListingDAO) ListAllListingIDs() ([]string, error) {
	keys, err := dao.client.Keys(listingKey("*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list listing geo keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := listingKey("")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
