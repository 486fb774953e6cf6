package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource    string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	UploadDir   string
	CORSOrigins []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	ttlHours, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}

	return &Config{
		DBSource:    getEnv("DB_SOURCE", "catalogue.db"),
		Port:        getEnv("PORT", "5000"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		JWTTTL:      time.Duration(ttlHours) * time.Hour,
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// MustGetEnv is for values without a sane fallback (e.g. seed credentials).
func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
