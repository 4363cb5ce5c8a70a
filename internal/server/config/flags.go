package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tokenlocker/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (e.g., ":9090"); empty disables
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-k int      authentication clock skew, seconds
//	-p string   vault program id (64 hex chars)
//	-f bool     enable the development faucet (use -f=true)
//
// Invalid values panic, same as the JSON layer.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-s", "-t", "-k", "-p", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to serve metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	authMaxClockSkew := fs.Int("k", int(config.AuthMaxClockSkew.Seconds()), "auth_max_clock_skew (in seconds)")

	fs.TextVar(&config.ProgramID, "p", config.ProgramID, "vault program id")
	fs.BoolVar(&config.FaucetEnabled, "f", config.FaucetEnabled, "enable faucet")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.AuthMaxClockSkew = time.Duration(*authMaxClockSkew) * time.Second
}

