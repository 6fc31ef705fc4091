package gate

import "errors"

// State is the gate decision for the current user.
type State int

const (
	// StateUnknown is returned together with a non-nil error.
	StateUnknown State = iota
	// StateReady means a local AMK is present; safe to enter the app.
	StateReady
	// StateNeedsUnlock means no local AMK, but a remote record exists (or is
	// assumed in legacy mode); the caller must collect a passphrase.
	StateNeedsUnlock
	// StateNeedsSetup means no local AMK and no remote record; the caller
	// must run first-time provisioning.
	StateNeedsSetup
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateNeedsUnlock:
		return "needs_unlock"
	case StateNeedsSetup:
		return "needs_setup"
	default:
		return "unknown"
	}
}

// ErrCheckFailed is returned when retries are exhausted and no collaborator
// ever produced an answer, so no state can be reported with confidence.
// Callers should surface a manual retry action; the controller itself never
// retries past its bounded budget.
var ErrCheckFailed = errors.New("encryption check failed")

// errKeyNotFound drives the retry loop; it never escapes Resolve.
var errKeyNotFound = errors.New("no key found")
