package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if present; real environment
// variables win over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString(&cfg.Addr, "SERVER_ADDRESS")
	setString(&cfg.DatabaseDSN, "DATABASE_DSN")
	setString(&cfg.RedisAddr, "REDIS_ADDR")
	setString(&cfg.SecretKey, "SECRET_KEY")
	setString(&cfg.PhotoStore, "PHOTO_STORE")
	setString(&cfg.UploadDir, "UPLOAD_DIR")
	setString(&cfg.S3Region, "S3_REGION")
	setString(&cfg.S3Bucket, "S3_BUCKET")
	setString(&cfg.S3AccessKey, "S3_ACCESS_KEY")
	setString(&cfg.S3SecretKey, "S3_SECRET_KEY")
	setString(&cfg.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	setString(&cfg.S3PublicURL, "S3_PUBLIC_URL")

	if v, ok := os.LookupEnv("ACCESS_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.AccessTokenValidityDuration = d
		}
	}
}
