// Package config handles configuration for the server component,
// including defaults, environment overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the AuthKeeper server.
//
// Fields:
//   - Address: bind address for the HTTP endpoint.
//   - SecretKey: general application signing secret.
//   - JWTSecretKey: HMAC secret for signing access tokens (HS256).
//     Do not use test defaults in prod.
//   - JWTHeaderName: request header carrying the raw token, no scheme prefix.
//   - AccessTokenTTL: access token lifetime.
//   - RefreshTokenTTL: refresh token lifetime; declared for parity with the
//     configuration surface, no endpoint uses it yet.
//   - GinMode: gin run mode (debug, release, test).
//   - CORSAllowedOrigins: comma-separated CORS allow list.
type Config struct {
	Address            string
	SecretKey          string
	JWTSecretKey       string
	JWTHeaderName      string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
	GinMode            string
	CORSAllowedOrigins string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Address = ":8080"
	c.SecretKey = "secretKey"
	c.JWTSecretKey = "jwtSecretKey"
	c.JWTHeaderName = "x-token"
	c.AccessTokenTTL = 15 * time.Minute
	c.RefreshTokenTTL = 2 * time.Hour
	c.GinMode = "release"
	c.CORSAllowedOrigins = "*"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (and an optional .env file) and finally from
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
