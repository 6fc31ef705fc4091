package config

import "time"

// Config holds runtime settings for the key client CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the key server gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - KeystoreDBPath: sqlite database backing the cross-device key tier.
//   - LegacyKeyPath: file backing the legacy single-device key tier.
//   - CrossDeviceEnabled: whether the cross-device tier and remote existence
//     checks are active on this device.
type Config struct {
	ServerEndpointAddr  string
	KeystoreDBPath      string
	LegacyKeyPath       string
	OnlineCheckInterval time.Duration
	CrossDeviceEnabled  bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.KeystoreDBPath = "keystore.db"
	c.LegacyKeyPath = "amk.key"
	c.CrossDeviceEnabled = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
