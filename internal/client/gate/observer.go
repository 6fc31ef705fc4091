package gate

import (
	"context"

	"github.com/onronder/durunotes-keys/internal/client/keystore"
	"github.com/onronder/durunotes-keys/internal/logging"
)

// Scheme identifies which remote key-registration record a lookup targets.
type Scheme string

const (
	SchemeCurrent Scheme = "current"
	SchemeLegacy  Scheme = "legacy"
)

// Observer receives diagnostics from the controller. The resolve loop calls
// it instead of logging directly, so the control flow stays testable in
// isolation.
type Observer interface {
	// LocalCheckFailed is called when reading one local tier errored; the
	// tier is then treated as "not found".
	LocalCheckFailed(ctx context.Context, tier keystore.Tier, err error)

	// RemoteLookupFailed is called when one remote existence lookup errored;
	// the lookup is then treated as "not found".
	RemoteLookupFailed(ctx context.Context, scheme Scheme, err error)

	// RetriesExhausted is called once per Resolve that falls through to the
	// final capability branch.
	RetriesExhausted(ctx context.Context, attempts int)
}

// NopObserver discards all diagnostics.
type NopObserver struct{}

func (NopObserver) LocalCheckFailed(context.Context, keystore.Tier, error) {}
func (NopObserver) RemoteLookupFailed(context.Context, Scheme, error)      {}
func (NopObserver) RetriesExhausted(context.Context, int)                  {}

// LogObserver forwards diagnostics to a logger.
type LogObserver struct {
	l logging.Logger
}

func NewLogObserver(l logging.Logger) *LogObserver {
	return &LogObserver{l: l.With("module", "gate")}
}

func (o *LogObserver) LocalCheckFailed(ctx context.Context, tier keystore.Tier, err error) {
	o.l.Warn(ctx, "local key check failed", "tier", tier.String(), "error", err.Error())
}

func (o *LogObserver) RemoteLookupFailed(ctx context.Context, scheme Scheme, err error) {
	o.l.Warn(ctx, "remote existence lookup failed", "scheme", string(scheme), "error", err.Error())
}

func (o *LogObserver) RetriesExhausted(ctx context.Context, attempts int) {
	o.l.Debug(ctx, "gate retries exhausted", "attempts", attempts)
}
