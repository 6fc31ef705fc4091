package gate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onronder/durunotes-keys/internal/client/keystore"
)

// ---- fakes ----

type fakeStore struct {
	tier  keystore.Tier
	data  []byte
	err   error
	calls int
}

func (f *fakeStore) Get(ctx context.Context) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func (f *fakeStore) Set(ctx context.Context, key []byte) error { f.data = key; return nil }
func (f *fakeStore) Clear(ctx context.Context) error           { f.data = nil; return nil }
func (f *fakeStore) Tier() keystore.Tier                       { return f.tier }

// fakeLookup must be safe for concurrent use: the controller issues both
// lookups in parallel.
type fakeLookup struct {
	curExists atomic.Bool
	curErr    error
	legExists atomic.Bool
	legErr    error

	curCalls atomic.Int32
	legCalls atomic.Int32
}

func (f *fakeLookup) KeyExists(ctx context.Context, userID string) (bool, error) {
	f.curCalls.Add(1)
	return f.curExists.Load(), f.curErr
}

func (f *fakeLookup) LegacyKeyExists(ctx context.Context, userID string) (bool, error) {
	f.legCalls.Add(1)
	return f.legExists.Load(), f.legErr
}

type fakeIdentity struct {
	id string
}

func (f *fakeIdentity) CurrentUserID() string { return f.id }

type recordingObserver struct {
	localFailures  int
	remoteFailures int
	exhausted      int
}

func (o *recordingObserver) LocalCheckFailed(context.Context, keystore.Tier, error) {
	o.localFailures++
}
func (o *recordingObserver) RemoteLookupFailed(context.Context, Scheme, error) { o.remoteFailures++ }
func (o *recordingObserver) RetriesExhausted(context.Context, int)             { o.exhausted++ }

func testConfig() Config {
	return Config{
		Attempts:                3,
		RetryDelay:              time.Millisecond,
		CrossDeviceEnabled:      true,
		LegacyAssumeProvisioned: true,
	}
}

func newTestController(cfg Config, stores []keystore.Store, lookup *fakeLookup, userID string) *Controller {
	return NewController(cfg, stores, lookup, &fakeIdentity{id: userID}, nil)
}

// ---- Resolve ----

func TestResolve_LocalKeyWinsWithoutRemoteCalls(t *testing.T) {
	cross := &fakeStore{tier: keystore.TierCrossDevice, data: make([]byte, 32)}
	legacy := &fakeStore{tier: keystore.TierLegacy}
	lookup := &fakeLookup{}
	lookup.curExists.Store(true) // must be ignored

	c := newTestController(testConfig(), []keystore.Store{cross, legacy}, lookup, "u1")

	state, err := c.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateReady, state)
	require.Equal(t, int32(0), lookup.curCalls.Load())
	require.Equal(t, int32(0), lookup.legCalls.Load())
}

func TestResolve_LegacyTierAloneYieldsReady(t *testing.T) {
	cross := &fakeStore{tier: keystore.TierCrossDevice}
	legacy := &fakeStore{tier: keystore.TierLegacy, data: []byte("old-key")}
	lookup := &fakeLookup{}

	c := newTestController(testConfig(), []keystore.Store{cross, legacy}, lookup, "u1")

	state, err := c.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateReady, state)
}

func TestResolve_BrokenTierFallsThroughToNext(t *testing.T) {
	cross := &fakeStore{tier: keystore.TierCrossDevice, err: errors.New("store unavailable")}
	legacy := &fakeStore{tier: keystore.TierLegacy, data: []byte("old-key")}
	obs := &recordingObserver{}

	c := NewController(testConfig(), []keystore.Store{cross, legacy}, &fakeLookup{}, &fakeIdentity{id: "u1"}, obs)

	state, err := c.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateReady, state)
	require.Equal(t, 1, obs.localFailures)
}

func TestResolve_RemoteRecordYieldsNeedsUnlock(t *testing.T) {
	cross := &fakeStore{tier: keystore.TierCrossDevice}
	lookup := &fakeLookup{}
	lookup.curExists.Store(true)

	c := newTestController(testConfig(), []keystore.Store{cross}, lookup, "u1")

	state, err := c.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateNeedsUnlock, state)
	require.Equal(t, int32(1), lookup.curCalls.Load())
}

func TestResolve_RetryBoundThenNeedsSetup(t *testing.T) {
	cross := &fakeStore{tier: keystore.TierCrossDevice}
	lookup := &fakeLookup{}
	obs := &recordingObserver{}

	c := NewController(testConfig(), []keystore.Store{cross}, lookup, &fakeIdentity{id: "u1"}, obs)

	state, err := c.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateNeedsSetup, state)

	// 3 attempts, plus the final capability-branch check
	require.Equal(t, 3, cross.calls)
	require.Equal(t, int32(4), lookup.curCalls.Load())
	require.Equal(t, int32(4), lookup.legCalls.Load())
	require.Equal(t, 1, obs.exhausted)
}

func TestResolve_CapabilityDisabledNeverCallsRemote(t *testing.T) {
	cfg := testConfig()
	cfg.CrossDeviceEnabled = false

	cross := &fakeStore{tier: keystore.TierCrossDevice}
	lookup := &fakeLookup{}
	lookup.curExists.Store(true) // must never be consulted

	c := newTestController(cfg, []keystore.Store{cross}, lookup, "u1")

	state, err := c.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateNeedsUnlock, state)
	require.Equal(t, int32(0), lookup.curCalls.Load())
	require.Equal(t, int32(0), lookup.legCalls.Load())
}

func TestResolve_CapabilityDisabledWithoutLegacyAssumption(t *testing.T) {
	cfg := testConfig()
	cfg.CrossDeviceEnabled = false
	cfg.LegacyAssumeProvisioned = false

	c := newTestController(cfg, []keystore.Store{&fakeStore{tier: keystore.TierCrossDevice}}, &fakeLookup{}, "u1")

	state, err := c.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateNeedsSetup, state)
}

func TestResolve_FailingLookupsStillReachNeedsSetup(t *testing.T) {
	// Local tier answers authoritatively ("no key"), remote lookups all
	// error: the state is still determined, not surfaced as a failure.
	cross := &fakeStore{tier: keystore.TierCrossDevice}
	lookup := &fakeLookup{curErr: errors.New("network down"), legErr: errors.New("network down")}

	c := newTestController(testConfig(), []keystore.Store{cross}, lookup, "u1")

	state, err := c.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateNeedsSetup, state)
}

func TestResolve_NothingAnsweredSurfacesCheckFailed(t *testing.T) {
	cross := &fakeStore{tier: keystore.TierCrossDevice, err: errors.New("store unavailable")}
	lookup := &fakeLookup{curErr: errors.New("network down"), legErr: errors.New("network down")}

	c := newTestController(testConfig(), []keystore.Store{cross}, lookup, "u1")

	state, err := c.Resolve(context.Background())
	require.ErrorIs(t, err, ErrCheckFailed)
	require.Equal(t, StateUnknown, state)
}

func TestResolve_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestController(testConfig(), []keystore.Store{&fakeStore{tier: keystore.TierCrossDevice}}, &fakeLookup{}, "u1")

	_, err := c.Resolve(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// ---- RemoteAMKExists / cache ----

func TestRemoteAMKExists_PositiveResultIsCached(t *testing.T) {
	lookup := &fakeLookup{}
	lookup.curExists.Store(true)

	c := newTestController(testConfig(), nil, lookup, "u1")

	require.True(t, c.RemoteAMKExists(context.Background()))
	require.Equal(t, int32(1), lookup.curCalls.Load())

	// Even with the backend now failing, the cached positive is served.
	lookup.curExists.Store(false)
	lookup.curErr = errors.New("network down")
	lookup.legErr = errors.New("network down")

	require.True(t, c.RemoteAMKExists(context.Background()))
	require.Equal(t, int32(1), lookup.curCalls.Load())
	require.Equal(t, int32(1), lookup.legCalls.Load())
}

func TestRemoteAMKExists_NegativeResultIsNeverCached(t *testing.T) {
	lookup := &fakeLookup{}
	c := newTestController(testConfig(), nil, lookup, "u1")

	require.False(t, c.RemoteAMKExists(context.Background()))
	require.False(t, c.RemoteAMKExists(context.Background()))
	require.Equal(t, int32(2), lookup.curCalls.Load())
	require.Equal(t, int32(2), lookup.legCalls.Load())

	// "not yet provisioned" can flip at any moment
	lookup.curExists.Store(true)
	require.True(t, c.RemoteAMKExists(context.Background()))
}

func TestRemoteAMKExists_LegacySchemeAloneSuffices(t *testing.T) {
	lookup := &fakeLookup{}
	lookup.legExists.Store(true)

	c := newTestController(testConfig(), nil, lookup, "u1")
	require.True(t, c.RemoteAMKExists(context.Background()))
}

func TestRemoteAMKExists_OneFailingLookupDoesNotMaskTheOther(t *testing.T) {
	lookup := &fakeLookup{curErr: errors.New("network down")}
	lookup.legExists.Store(true)

	c := newTestController(testConfig(), nil, lookup, "u1")
	require.True(t, c.RemoteAMKExists(context.Background()))
}

func TestRemoteAMKExists_UserChangeInvalidatesCache(t *testing.T) {
	lookup := &fakeLookup{}
	lookup.curExists.Store(true)
	identity := &fakeIdentity{id: "u1"}

	c := NewController(testConfig(), nil, lookup, identity, nil)

	require.True(t, c.RemoteAMKExists(context.Background()))

	// another identity logs in; u1's cached positive must not leak
	identity.id = "u2"
	lookup.curExists.Store(false)

	require.False(t, c.RemoteAMKExists(context.Background()))
	require.Equal(t, int32(2), lookup.curCalls.Load())

	// and no negative was written for u2
	lookup.curExists.Store(true)
	require.True(t, c.RemoteAMKExists(context.Background()))
}

func TestRemoteAMKExists_NoUserID(t *testing.T) {
	lookup := &fakeLookup{}
	lookup.curExists.Store(true)

	c := newTestController(testConfig(), nil, lookup, "")

	require.False(t, c.RemoteAMKExists(context.Background()))
	require.Equal(t, int32(0), lookup.curCalls.Load())
}

func TestResolve_ServedFromCacheWithoutRemoteCalls(t *testing.T) {
	cross := &fakeStore{tier: keystore.TierCrossDevice}
	lookup := &fakeLookup{}
	lookup.curExists.Store(true)

	c := newTestController(testConfig(), []keystore.Store{cross}, lookup, "u1")

	state, err := c.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateNeedsUnlock, state)
	require.Equal(t, int32(1), lookup.curCalls.Load())

	// second resolution is answered from the cache
	state, err = c.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateNeedsUnlock, state)
	require.Equal(t, int32(1), lookup.curCalls.Load())
}

func TestInvalidateCache_Idempotent(t *testing.T) {
	lookup := &fakeLookup{}
	lookup.curExists.Store(true)

	c := newTestController(testConfig(), nil, lookup, "u1")
	require.True(t, c.RemoteAMKExists(context.Background()))

	c.InvalidateCache()
	c.InvalidateCache() // no-op on an empty cache

	require.True(t, c.RemoteAMKExists(context.Background()))
	require.Equal(t, int32(2), lookup.curCalls.Load())
}

func TestHasLocalAMK_EmptyBlobDoesNotCount(t *testing.T) {
	cross := &fakeStore{tier: keystore.TierCrossDevice, data: []byte{}}
	c := newTestController(testConfig(), []keystore.Store{cross}, &fakeLookup{}, "u1")

	require.False(t, c.HasLocalAMK(context.Background()))
}
