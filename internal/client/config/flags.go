package config

import (
	"flag"
	"os"
	"time"

	"github.com/onronder/durunotes-keys/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-k", "-l", "-x"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.KeystoreDBPath, "k", cfg.KeystoreDBPath, "path of the cross-device keystore database")
	fs.StringVar(&cfg.LegacyKeyPath, "l", cfg.LegacyKeyPath, "path of the legacy key file")
	fs.BoolVar(&cfg.CrossDeviceEnabled, "x", cfg.CrossDeviceEnabled, "enable the cross-device key tier")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
