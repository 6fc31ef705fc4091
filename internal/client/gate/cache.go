package gate

import "sync"

// existenceCache remembers a positive remote-existence answer for one user.
// Negative answers are never stored: "not yet provisioned" can become
// "provisioned on another device" at any moment, and a stale negative would
// force re-provisioning. The mutex matters because Resolve may be invoked
// from overlapping resume events; the check-then-set below is not otherwise
// atomic.
type existenceCache struct {
	mu     sync.Mutex
	userID string
	exists bool
}

// ResetIfUserChanged drops the cached entry when the current user differs
// from the one the cache was written for, and rebinds the cache to the
// current user.
func (c *existenceCache) ResetIfUserChanged(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.userID != userID {
		c.userID = userID
		c.exists = false
	}
}

// Positive reports whether a positive result is cached for userID.
func (c *existenceCache) Positive(userID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return userID != "" && c.userID == userID && c.exists
}

// StorePositive records a positive result for userID.
func (c *existenceCache) StorePositive(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = userID
	c.exists = true
}

// Clear unconditionally empties the cache. Safe to call repeatedly.
func (c *existenceCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = ""
	c.exists = false
}
