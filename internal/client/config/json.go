package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tokenlocker/internal/flagx"
	"github.com/dmitrijs2005/tokenlocker/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only keys
// present in the file override the current Config.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	KeyFile            *string         `json:"key_file"`
	JournalFile        *string         `json:"journal_file"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
}

// LoadJSON overlays c with the JSON file at path. An empty path falls back
// to $TOKENLOCKER_CONFIG; if that is empty too nothing is loaded.
func (c *Config) LoadJSON(path string) error {
	if path == "" {
		path = os.Getenv(flagx.ConfigEnvVar)
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != nil {
		c.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.KeyFile != nil {
		c.KeyFile = *jc.KeyFile
	}
	if jc.JournalFile != nil {
		c.JournalFile = *jc.JournalFile
	}
	if jc.RequestTimeout != nil {
		c.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}
