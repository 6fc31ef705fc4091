// Package config loads runtime configuration for the key client CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the key server gRPC endpoint
//	-i int      online status check interval (seconds)
//	-k string   path of the cross-device keystore sqlite database
//	-l string   path of the legacy key file
//	-x bool     enable the cross-device key tier
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "keystore_db_path": "keystore.db",
//	  "legacy_key_path": "amk.key",
//	  "cross_device_enabled": true
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
