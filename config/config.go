package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"bakehouse/models"

	"github.com/joho/godotenv"
)

// Config carries every tunable of the storefront. Pricing knobs are
// configuration points on purpose: tax rate, delivery fees, and the
// minimum add-to-cart quantity differ between deployments.
type Config struct {
	Port         string
	DataDir      string
	StashBackend string // "file", "memory", or "redis"
	RedisAddr    string

	WhatsAppNumber string
	CurrencyLabel  string

	TaxRateBasisPoints int // 500 = 5%
	DeliveryFees       map[models.DeliveryOption]int
	DeliveryETA        map[models.DeliveryOption]time.Duration
	MinQuantity        int

	UploadDir      string
	MaxUploadBytes int64
}

// Load reads .env if present and builds the config from the
// environment, falling back to defaults that match the storefront's
// canonical pricing policy.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	return &Config{
		Port:           port,
		DataDir:        envStr("DATA_DIR", "./data"),
		StashBackend:   envStr("STASH_BACKEND", "file"),
		RedisAddr:      envStr("REDIS_ADDR", "localhost:6379"),
		WhatsAppNumber: envStr("WHATSAPP_NUMBER", "232033680260"),
		CurrencyLabel:  envStr("CURRENCY_LABEL", "Le"),

		TaxRateBasisPoints: envInt("TAX_RATE_BP", 500),
		DeliveryFees: map[models.DeliveryOption]int{
			models.DeliveryStandard: envInt("DELIVERY_FEE_STANDARD", 10000),
			models.DeliveryExpress:  envInt("DELIVERY_FEE_EXPRESS", 25000),
			models.DeliveryPickup:   envInt("DELIVERY_FEE_PICKUP", 0),
		},
		DeliveryETA: map[models.DeliveryOption]time.Duration{
			models.DeliveryStandard: 2 * time.Hour,
			models.DeliveryExpress:  60 * time.Minute,
			models.DeliveryPickup:   30 * time.Minute,
		},
		MinQuantity: envInt("MIN_QUANTITY", 1),

		UploadDir:      envStr("UPLOAD_DIR", "./static/uploads"),
		MaxUploadBytes: int64(envInt("MAX_UPLOAD_MB", 10)) << 20,
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
