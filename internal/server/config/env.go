package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Variables that
// are unset or empty leave the current value untouched, so env settings sit
// between the JSON file and command-line flags in precedence.
//
// Recognized variables:
//
//	ADDRESS                  HTTP bind address
//	DATABASE_DSN             PostgreSQL DSN
//	SECRET_KEY               JWT HMAC secret key
//	TOKEN_VALIDITY_MINUTES   bearer token validity, minutes
//	BCRYPT_COST              bcrypt cost factor
//	S3_ROOT_USER             S3 root user
//	S3_ROOT_PASSWORD         S3 root password
//	S3_BUCKET                S3 bucket name
//	S3_REGION                S3 region
//	S3_BASE_ENDPOINT         S3 base endpoint
func parseEnv(config *Config) {

	setString := func(name string, dst *string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	setInt := func(name string, dst *int) {
		if v := os.Getenv(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				panic(err)
			}
			*dst = n
		}
	}

	setString("ADDRESS", &config.EndpointAddr)
	setString("DATABASE_DSN", &config.DatabaseDSN)
	setString("SECRET_KEY", &config.SecretKey)

	if v := os.Getenv("TOKEN_VALIDITY_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = time.Duration(n) * time.Minute
	}

	setInt("BCRYPT_COST", &config.BcryptCost)

	setString("S3_ROOT_USER", &config.S3RootUser)
	setString("S3_ROOT_PASSWORD", &config.S3RootPassword)
	setString("S3_BUCKET", &config.S3Bucket)
	setString("S3_REGION", &config.S3Region)
	setString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
}
