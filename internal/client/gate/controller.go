package gate

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/onronder/durunotes-keys/internal/client/keystore"
)

// RemoteLookup answers whether an AMK existence record is registered for a
// user. It must never return the key material itself.
type RemoteLookup interface {
	KeyExists(ctx context.Context, userID string) (bool, error)
	LegacyKeyExists(ctx context.Context, userID string) (bool, error)
}

// IdentityProvider yields the authenticated user's ID, or "" when signed out.
type IdentityProvider interface {
	CurrentUserID() string
}

// Config holds the gate policy knobs.
type Config struct {
	// Attempts is the full retry budget of one Resolve call.
	Attempts int
	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration
	// CrossDeviceEnabled gates all remote lookups; when false the gate never
	// touches the network.
	CrossDeviceEnabled bool
	// LegacyAssumeProvisioned controls the fallback when cross-device mode is
	// off and all retries found nothing: true routes to unlock (a remote
	// record is assumed to exist), false routes to setup. The historical
	// behavior is true; it is a knob here because that assumption was never
	// verified. See DESIGN.md.
	LegacyAssumeProvisioned bool
}

// DefaultConfig returns the production policy: 3 attempts, 200ms apart,
// cross-device mode on.
func DefaultConfig() Config {
	return Config{
		Attempts:                3,
		RetryDelay:              200 * time.Millisecond,
		CrossDeviceEnabled:      true,
		LegacyAssumeProvisioned: true,
	}
}

// Controller computes the gate State for the current user. One controller is
// constructed per authenticated session and torn down on logout; the
// existence cache is owned by the instance, never process-global.
//
// Resolve calls are not serialized against each other. Callers triggering
// resolves from rapid foreground events should debounce.
type Controller struct {
	cfg      Config
	stores   []keystore.Store
	remote   RemoteLookup
	identity IdentityProvider
	obs      Observer

	cache existenceCache
}

// NewController wires a controller. Stores are consulted in the given order;
// pass the cross-device tier first. A nil observer discards diagnostics.
func NewController(cfg Config, stores []keystore.Store, remote RemoteLookup, identity IdentityProvider, obs Observer) *Controller {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Millisecond
	}
	if obs == nil {
		obs = NopObserver{}
	}
	return &Controller{cfg: cfg, stores: stores, remote: remote, identity: identity, obs: obs}
}

// Resolve computes the gate state for the current user.
//
// Each attempt checks the local tiers first (cheap, no network) and only
// then the remote tier. The bounded retry absorbs the window right after
// signup where the remote existence record is not yet visible; without it a
// freshly provisioned user could be routed into setup a second time.
//
// ErrCheckFailed is returned only when not a single collaborator call
// succeeded during the whole resolution, so nothing could be determined
// with confidence.
func (c *Controller) Resolve(ctx context.Context) (State, error) {
	var state State
	var anyAnswered bool

	backoff := retry.WithMaxRetries(uint64(c.cfg.Attempts-1), retry.NewConstant(c.cfg.RetryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		found, answered := c.hasLocalAmk(ctx)
		anyAnswered = anyAnswered || answered
		if found {
			state = StateReady
			return nil
		}

		exists, answered := c.remoteExists(ctx)
		anyAnswered = anyAnswered || answered
		if exists {
			state = StateNeedsUnlock
			return nil
		}

		return retry.RetryableError(errKeyNotFound)
	})
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, errKeyNotFound) {
		// context cancelled or deadline exceeded mid-loop
		return StateUnknown, err
	}

	c.obs.RetriesExhausted(ctx, c.cfg.Attempts)

	if !c.cfg.CrossDeviceEnabled {
		if c.cfg.LegacyAssumeProvisioned {
			return StateNeedsUnlock, nil
		}
		return StateNeedsSetup, nil
	}

	// One last remote look before concluding the account was never
	// provisioned.
	exists, answered := c.remoteExists(ctx)
	anyAnswered = anyAnswered || answered
	if exists {
		return StateNeedsUnlock, nil
	}
	if !anyAnswered {
		return StateUnknown, ErrCheckFailed
	}
	return StateNeedsSetup, nil
}

// HasLocalAMK reports whether any local tier holds a non-empty key.
func (c *Controller) HasLocalAMK(ctx context.Context) bool {
	found, _ := c.hasLocalAmk(ctx)
	return found
}

func (c *Controller) hasLocalAmk(ctx context.Context) (found, answered bool) {
	for _, st := range c.stores {
		key, err := st.Get(ctx)
		if err != nil {
			// a broken tier must not mask the next one
			c.obs.LocalCheckFailed(ctx, st.Tier(), err)
			continue
		}
		answered = true
		if len(key) > 0 {
			return true, true
		}
	}
	return false, answered
}

// RemoteAMKExists reports whether an existence record is registered for the
// current user, serving cached positives without a network round-trip.
func (c *Controller) RemoteAMKExists(ctx context.Context) bool {
	exists, _ := c.remoteExists(ctx)
	return exists
}

func (c *Controller) remoteExists(ctx context.Context) (exists, answered bool) {
	userID := c.identity.CurrentUserID()
	c.cache.ResetIfUserChanged(userID)

	if c.cache.Positive(userID) {
		return true, true
	}
	if !c.cfg.CrossDeviceEnabled {
		return false, true
	}
	if userID == "" {
		return false, true
	}

	// Both record types are queried concurrently; sequential lookups would
	// double the round-trip time on every cold check.
	var curExists, legExists bool
	var curErr, legErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		curExists, curErr = c.remote.KeyExists(gctx, userID)
		if curErr != nil {
			c.obs.RemoteLookupFailed(gctx, SchemeCurrent, curErr)
		}
		return nil
	})
	g.Go(func() error {
		legExists, legErr = c.remote.LegacyKeyExists(gctx, userID)
		if legErr != nil {
			c.obs.RemoteLookupFailed(gctx, SchemeLegacy, legErr)
		}
		return nil
	})
	_ = g.Wait()

	if curErr != nil && legErr != nil {
		return false, false
	}
	if curExists || legExists {
		c.cache.StorePositive(userID)
		return true, true
	}
	return false, true
}

// InvalidateCache empties the existence cache. Call it on logout, after
// successful provisioning, and after a successful unlock; all three change
// what the next resolution should see.
func (c *Controller) InvalidateCache() {
	c.cache.Clear()
}

// Close tears the controller down. Currently that only means dropping the
// cache, but callers should treat a closed controller as dead.
func (c *Controller) Close() {
	c.InvalidateCache()
}
