// Package config holds the settings of the tokenlocker CLI.
//
// Sources, later ones win:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by --config/-c or $TOKENLOCKER_CONFIG
//     (see (*Config).LoadJSON).
//  3. Command-line flags, bound by the cli package.
//
// # JSON schema
//
// Durations accept strings such as "5s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "key_file": "/home/me/.tokenlocker/key.json",
//	  "journal_file": "/home/me/.tokenlocker/journal.db",
//	  "request_timeout": "10s"
//	}
package config
