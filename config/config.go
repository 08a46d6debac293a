package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	StoreDriver   string // memory, redis, mysql or sqlite
	RedisURI      string
	RedisPassword string
	RedisDB       int
	MySQLDSN      string
	SQLitePath    string
	JWTSecret     string
	JWTTTL        time.Duration
	CORSOrigins   []string
	GinMode       string
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("no .env file found, using environment variables")
	}
}

func GetEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

// Load reads the process environment. Call LoadEnv first to pick up a .env file.
func Load() Config {
	redisDB, err := strconv.Atoi(GetEnv("REDIS_DB", "0"))
	if err != nil {
		slog.Warn("invalid REDIS_DB, using 0", "value", os.Getenv("REDIS_DB"))
		redisDB = 0
	}
	ttl, err := time.ParseDuration(GetEnv("JWT_TTL", "24h"))
	if err != nil {
		slog.Warn("invalid JWT_TTL, using 24h", "value", os.Getenv("JWT_TTL"))
		ttl = 24 * time.Hour
	}

	var origins []string
	for _, o := range strings.Split(GetEnv("CORS_ORIGINS", "http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:          GetEnv("PORT", "8080"),
		StoreDriver:   strings.ToLower(GetEnv("STORE_DRIVER", "redis")),
		RedisURI:      GetEnv("REDIS_URI", "localhost:6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		MySQLDSN:      GetEnv("MYSQL_DSN", ""),
		SQLitePath:    GetEnv("SQLITE_PATH", "proposals.db"),
		JWTSecret:     GetEnv("JWT_SECRET", ""),
		JWTTTL:        ttl,
		CORSOrigins:   origins,
		GinMode:       GetEnv("GIN_MODE", "debug"),
	}
}
