package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	Timezone         string
	DBPath           string
	WeatherEndpoint  string
	WeatherAPIKey    string
	CropsCSV         string
	ActivitiesCSV    string
	CatalogXLSX      string
	JobIntervalHours int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	interval, err := strconv.Atoi(get("JOB_INTERVAL_HOURS", "6"))
	if err != nil || interval <= 0 {
		interval = 6
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		Timezone:         get("TZ", "Asia/Kolkata"),
		DBPath:           get("DB_PATH", "cropcal.db"),
		WeatherEndpoint:  get("WEATHER_ENDPOINT", "http://api.weatherapi.com/v1"),
		WeatherAPIKey:    get("WEATHER_API_KEY", ""),
		CropsCSV:         get("CROPS_CSV", ""),
		ActivitiesCSV:    get("ACTIVITIES_CSV", ""),
		CatalogXLSX:      get("CATALOG_XLSX", ""),
		JobIntervalHours: interval,
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
