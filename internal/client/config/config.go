package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the tokenlocker CLI.
type Config struct {
	ServerEndpointAddr string
	KeyFile            string
	// JournalFile is the local SQLite record of signed operations; empty
	// disables it.
	JournalFile        string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults. The key file lives
// under the user's home directory when one is known.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.KeyFile = DefaultKeyFile()
	c.JournalFile = filepath.Join(filepath.Dir(c.KeyFile), "journal.db")
	c.RequestTimeout = 10 * time.Second
}

// DefaultKeyFile is ~/.tokenlocker/key.json, or key.json in the working
// directory without a home.
func DefaultKeyFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "key.json"
	}
	return filepath.Join(home, ".tokenlocker", "key.json")
}
