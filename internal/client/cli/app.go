package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/onronder/durunotes-keys/internal/client/client"
	"github.com/onronder/durunotes-keys/internal/client/config"
	"github.com/onronder/durunotes-keys/internal/client/gate"
	"github.com/onronder/durunotes-keys/internal/client/keystore"
	"github.com/onronder/durunotes-keys/internal/client/services"
	"github.com/onronder/durunotes-keys/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config            *config.Config
	authService       services.AuthService
	enrollmentService services.EnrollmentService
	unlockService     services.UnlockService
	gate              *gate.Controller
	userName          string
	userID            string
	Mode              Mode
	reader            *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := keystore.InitDatabase(ctx, c.KeystoreDBPath)
	if err != nil {
		log.Printf("error initializing keystore database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewKeyServerClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	// local tiers in priority order: cross-device first, then legacy
	stores := []keystore.Store{
		keystore.NewSQLiteStore(db),
		keystore.NewFileStore(c.LegacyKeyPath),
	}

	logger := logging.NewSlogLogger(slog.Default())

	gateCfg := gate.DefaultConfig()
	gateCfg.CrossDeviceEnabled = c.CrossDeviceEnabled
	ctrl := gate.NewController(gateCfg, stores, apiClient, apiClient, gate.NewLogObserver(logger))

	return &App{
		config:            c,
		authService:       services.NewAuthService(apiClient, stores),
		enrollmentService: services.NewEnrollmentService(apiClient, stores[0]),
		unlockService:     services.NewUnlockService(apiClient, stores[0]),
		gate:              ctrl,
		reader:            bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.gate.Close()
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(ctx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
