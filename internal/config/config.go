package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

type Config struct {
	Port            string
	GinMode         string
	StorageDriver   string
	MongoURI        string
	MongoDB         string
	CacheTTL        time.Duration
	CORSOrigins     []string
	LogLevel        string
	ShutdownTimeout time.Duration
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.WithError(err).Warn("⚠️ Error loading .env file")
		}
	}

	driver := strings.ToLower(getEnv("STORAGE_DRIVER", DriverMemory))
	if driver != DriverMemory && driver != DriverMongo {
		log.Warnf("⚠️ Unknown STORAGE_DRIVER %q, using %s", driver, DriverMemory)
		driver = DriverMemory
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "release"),
		StorageDriver:   driver,
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "supermarket"),
		CacheTTL:        getDuration("CACHE_TTL", 2*time.Minute),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate revisa las combinaciones que no tienen valor por defecto.
func (c *Config) Validate() error {
	if c.StorageDriver == DriverMongo && c.MongoURI == "" {
		return errors.New("MONGO_URI is required when STORAGE_DRIVER=mongo")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Warnf("⚠️ Invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
