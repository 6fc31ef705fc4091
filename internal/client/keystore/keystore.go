// Package keystore defines local storage tiers for the account master key
// (AMK) on a device. Tiers form a closed set and are always consulted in
// priority order: the cross-device tier first, then the legacy
// device-specific tier.
package keystore

import "context"

// Tier identifies a local key storage strategy.
type Tier int

const (
	// TierCrossDevice is the sqlite-backed store shared with the sync layer.
	TierCrossDevice Tier = iota
	// TierLegacy is the original single-device file store.
	TierLegacy
)

func (t Tier) String() string {
	switch t {
	case TierCrossDevice:
		return "cross-device"
	case TierLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Store is one local AMK tier.
//
// Contract:
//   - Get returns the stored key material, or nil if none is stored.
//   - Set persists the key material, replacing any previous value.
//   - Clear removes the key material; clearing an empty store is a no-op.
type Store interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, key []byte) error
	Clear(ctx context.Context) error
	Tier() Tier
}
