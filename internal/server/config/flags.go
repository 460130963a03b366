package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/flagx"
)

// parseFlags applies command-line flags, the highest-precedence source.
//
//	-a string            gRPC bind address (":50051")
//	-d string            PostgreSQL DSN
//	-s string            identity provider HMAC secret
//	-t int               dev token validity, minutes
//	-u string            S3 root user
//	-p string            S3 root password
//	-b string            S3 bucket
//	-g string            S3 region
//	-e string            S3 base endpoint
//	-x int               export URL validity, minutes
//	-log-level string    debug|info|warn|error
//	-log-backend string  slog|zerolog
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-t", "-u", "-p", "-b", "-g", "-e", "-x", "-log-level", "-log-backend",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.IdentitySecret, "s", config.IdentitySecret, "identity provider secret")
	devTokenValidity := fs.Int("t", int(config.DevTokenValidity.Minutes()), "dev token validity (in minutes)")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	exportURLValidity := fs.Int("x", int(config.ExportURLValidity.Minutes()), "export URL validity (in minutes)")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	fs.StringVar(&config.LogBackend, "log-backend", config.LogBackend, "log backend (slog|zerolog)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.DevTokenValidity = time.Duration(*devTokenValidity) * time.Minute
	config.ExportURLValidity = time.Duration(*exportURLValidity) * time.Minute
}
