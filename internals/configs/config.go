package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret       string
	AccessTokenTTL  time.Duration
	AppTimezone     string
	QRImageSize     int
	QRThumbSize     int
	GateLogCapacity int
)

const (
	defaultAccessTTL   = 24 * time.Hour
	defaultTimezone    = "Asia/Jakarta"
	defaultQRImageSize = 320
	defaultQRThumbSize = 96
	defaultGateLogCap  = 1000
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AppTimezone = GetEnv("APP_TIMEZONE", defaultTimezone)
	AccessTokenTTL = getEnvDuration("ACCESS_TOKEN_TTL", defaultAccessTTL)
	QRImageSize = getEnvInt("QR_IMAGE_SIZE", defaultQRImageSize)
	QRThumbSize = getEnvInt("QR_THUMB_SIZE", defaultQRThumbSize)
	GateLogCapacity = getEnvInt("GATE_LOG_CAPACITY", defaultGateLogCap)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	raw := GetEnv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("⚠️ %s tidak valid (%q), pakai default %d", key, raw, def)
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := GetEnv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("⚠️ %s tidak valid (%q), pakai default %s", key, raw, def)
		return def
	}
	return d
}
