package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

type Config struct {
	Env      string
	Port     string
	DBDriver string
	// SQLitePath is used when DBDriver is "sqlite".
	SQLitePath string
	Redis      RedisConfig

	AccessTokenSecret  string
	AccessTokenMinutes int

	CloudinaryURL  string
	KeepAliveURL   string
	AllowedOrigins []string

	LogLevel  string
	LogFormat string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using process environment: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

// Load reads the configuration from the environment. Call LoadEnv first to
// pick up a .env file.
func Load() *Config {
	cfg := &Config{
		Env:                getEnvDefault("ENV", "dev"),
		Port:               getEnvDefault("PORT", "8083"),
		DBDriver:           getEnvDefault("DB_DRIVER", "postgres"),
		SQLitePath:         getEnvDefault("SQLITE_PATH", "rentdesk.db"),
		AccessTokenSecret:  GetEnv("SECRET_KEY_ACCESS_TOKEN"),
		AccessTokenMinutes: getEnvInt("ACCESS_TOKEN_MINUTES", 60*24*3),
		CloudinaryURL:      GetEnv("CLOUDINARY_URL"),
		KeepAliveURL:       GetEnv("KEEPALIVE_URL"),
		LogLevel:           getEnvDefault("LOG_LEVEL", "info"),
		LogFormat:          getEnvDefault("LOG_FORMAT", "json"),
	}
	cfg.Redis = RedisConfig{
		Addr:     GetEnv("REDIS_ADDR"),
		Username: GetEnv("REDIS_USER"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
	}
	if origins := GetEnv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return cfg
}

// ConnectCloudinary returns nil when no CLOUDINARY_URL is configured; image
// uploads are then rejected.
func ConnectCloudinary(url string) (*cloudinary.Cloudinary, error) {
	if url == "" {
		return nil, nil
	}
	return cloudinary.NewFromURL(url)
}
