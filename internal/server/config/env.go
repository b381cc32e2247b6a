package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address
//	SECRET_KEY            general app signing secret
//	JWT_SECRET_KEY        token signing secret
//	JWT_HEADER_NAME       header carrying the raw token
//	ACCESS_TOKEN_TTL      access token lifetime, time.ParseDuration format
//	REFRESH_TOKEN_TTL     refresh token lifetime, time.ParseDuration format
//	GIN_MODE              gin run mode
//	CORS_ALLOWED_ORIGINS  comma-separated allow list
//
// Before reading the environment, an optional .env file is loaded: the path
// from the -c/-config flag if given, otherwise ./.env if present. Variables
// already set in the process environment win over the file, which is
// godotenv's default behavior.
func parseEnv(config *Config) {
	loadEnvFile()

	setString(&config.Address, "ADDRESS")
	setString(&config.SecretKey, "SECRET_KEY")
	setString(&config.JWTSecretKey, "JWT_SECRET_KEY")
	setString(&config.JWTHeaderName, "JWT_HEADER_NAME")
	setDuration(&config.AccessTokenTTL, "ACCESS_TOKEN_TTL")
	setDuration(&config.RefreshTokenTTL, "REFRESH_TOKEN_TTL")
	setString(&config.GinMode, "GIN_MODE")
	setString(&config.CORSAllowedOrigins, "CORS_ALLOWED_ORIGINS")
}

func loadEnvFile() {
	path := flagx.EnvFileFlags()
	if path == "" {
		_ = godotenv.Load()
		return
	}
	if err := godotenv.Load(path); err != nil {
		panic(err)
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
