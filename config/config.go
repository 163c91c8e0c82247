package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environments
const ENV_PROD = "prod"
const ENV_DEV = "dev"

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP
const HTTP_ADDRESS = ":8080"

// Catalog refresher config, empty schedule disables the cron job.
const CATALOG_REFRESH_SCHEDULE = ""

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CATALOG_RESOURCE = "catalog.json"
const INBOX_RESOURCE = "inbox.json"
const DASHBOARD_RESOURCE = "dashboard.json"
const REGION_CONFIG_FILE = "config/region.yaml"

type Config struct {
	Env                    string
	HTTPAddress            string
	RedisAddress           string
	RedisPassword          string
	RedisDB                int
	CatalogPath            string
	CatalogURL             string
	CatalogRefreshSchedule string
	LogLevel               string
	Region                 RegionConfig
}

// RegionConfig describes the market the catalog belongs to.
type RegionConfig struct {
	Name           string     `yaml:"name"`
	Country        string     `yaml:"country"`
	Currency       string     `yaml:"currency"`
	MapCenter      [2]float64 `yaml:"map_center"`
	MapZoom        int        `yaml:"map_zoom"`
	PriceMin       float64    `yaml:"price_min"`
	PriceMax       float64    `yaml:"price_max"`
	AmenityMode    string     `yaml:"amenity_mode"`
	Amenities      []string   `yaml:"amenities"`
	PropertyTypes  []string   `yaml:"property_types"`
	ServiceFeeRate float64    `yaml:"service_fee_rate"`
}

// DefaultRegion is used when no region file is present.
func DefaultRegion() RegionConfig {
	return RegionConfig{
		Name:        "Cameroun",
		Country:     "CM",
		Currency:    "FCFA",
		MapCenter:   [2]float64{12.3547, 5.4755},
		MapZoom:     6,
		PriceMin:    0,
		PriceMax:    300000,
		AmenityMode: "match",
		Amenities: []string{
			"Wi-Fi", "Piscine", "Climatisation", "Parking",
			"Cuisine équipée", "Télévision", "Lave-linge", "Sécurité 24/7",
			"Générateur électrique", "Jardin", "Terrasse", "Vue sur mer",
		},
		PropertyTypes:  []string{"Villa", "Appartement", "Maison", "Studio"},
		ServiceFeeRate: 0.12,
	}
}

// Load reads .env (when present), the environment and the region file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                    getEnv("APP_ENV", ENV_DEV),
		HTTPAddress:            getEnv("HTTP_ADDR", HTTP_ADDRESS),
		RedisAddress:           getEnv("REDIS_ADDRESS", REDIS_DB_ADDRESS),
		RedisPassword:          getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:                getEnvInt("REDIS_DB", REDIS_DB),
		CatalogPath:            getEnv("CATALOG_PATH", GetResourcePath(CATALOG_RESOURCE)),
		CatalogURL:             os.Getenv("CATALOG_URL"),
		CatalogRefreshSchedule: getEnv("CATALOG_REFRESH_CRON", CATALOG_REFRESH_SCHEDULE),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}

	region, err := LoadRegion(getEnv("REGION_CONFIG_PATH", filepath.Join(BaseDir(), REGION_CONFIG_FILE)))
	if err != nil {
		return nil, err
	}
	cfg.Region = region
	return cfg, nil
}

// LoadRegion reads a region file. Fields missing from the file keep their
// default values; a missing file yields DefaultRegion.
func LoadRegion(path string) (RegionConfig, error) {
	region := DefaultRegion()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[Config] Region file %s not found, using defaults", path)
			return region, nil
		}
		return region, fmt.Errorf("read region config: %w", err)
	}
	if err := yaml.Unmarshal(data, &region); err != nil {
		return region, fmt.Errorf("parse region config %s: %w", path, err)
	}
	if region.PriceMin > region.PriceMax {
		return region, fmt.Errorf("region config %s: price_min %v above price_max %v", path, region.PriceMin, region.PriceMax)
	}
	return region, nil
}

func (c *Config) IsProd() bool {
	return c.Env == ENV_PROD
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
