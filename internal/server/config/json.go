package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tokenlocker/internal/flagx"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1s" and integer nanoseconds.
//
// Only keys present in the file override the current Config, so a file can
// carry just the settings that differ from the defaults.
type JsonConfig struct {
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	MetricsAddr                 *string         `json:"metrics_addr"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	AuthMaxClockSkew            *timex.Duration `json:"auth_max_clock_skew"`
	ProgramID                   *pubkey.Address `json:"program_id"`
	FaucetEnabled               *bool           `json:"faucet_enabled"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The path comes from -c/-config or $TOKENLOCKER_CONFIG;
// without one nothing is loaded. Unreadable or invalid files panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *c.EndpointAddrGRPC
	}
	if c.MetricsAddr != nil {
		config.MetricsAddr = *c.MetricsAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.AuthMaxClockSkew != nil {
		config.AuthMaxClockSkew = c.AuthMaxClockSkew.Duration
	}
	if c.ProgramID != nil {
		config.ProgramID = *c.ProgramID
	}
	if c.FaucetEnabled != nil {
		config.FaucetEnabled = *c.FaucetEnabled
	}
}
