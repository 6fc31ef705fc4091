package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/onronder/durunotes-keys/internal/flagx"
	"github.com/onronder/durunotes-keys/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	KeystoreDBPath      string         `json:"keystore_db_path"`
	LegacyKeyPath       string         `json:"legacy_key_path"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	CrossDeviceEnabled  bool           `json:"cross_device_enabled"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.KeystoreDBPath = jc.KeystoreDBPath
	cfg.LegacyKeyPath = jc.LegacyKeyPath
	cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	cfg.CrossDeviceEnabled = jc.CrossDeviceEnabled
}
