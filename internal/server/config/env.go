package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/gophnotes/internal/flagx"
)

const envPrefix = "GOPHNOTES_"

// parseEnv loads a dotenv file (the -env flag, else ./.env when present) into
// the process environment and then overlays GOPHNOTES_* variables. Variables
// already set in the environment win over the file.
func parseEnv(config *Config) {
	path := flagx.EnvFileFlags()
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	lookupString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	lookupString(&config.DatabaseDSN, "DATABASE_DSN")
	lookupString(&config.IdentitySecret, "IDENTITY_SECRET")
	lookupDuration(&config.DevTokenValidity, "DEV_TOKEN_VALIDITY")
	lookupString(&config.S3RootUser, "S3_ROOT_USER")
	lookupString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	lookupString(&config.S3Bucket, "S3_BUCKET")
	lookupString(&config.S3Region, "S3_REGION")
	lookupString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	lookupDuration(&config.ExportURLValidity, "EXPORT_URL_VALIDITY")
	lookupString(&config.LogLevel, "LOG_LEVEL")
	lookupString(&config.LogBackend, "LOG_BACKEND")
}

func lookupString(dst *string, key string) {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		*dst = v
	}
}

func lookupDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
