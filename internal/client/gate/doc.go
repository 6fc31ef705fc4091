// Package gate decides whether a device may enter the app, must recover the
// account master key (AMK) with a passphrase, or must provision a new one.
//
// The decision is recomputed on every session change and app resume; it is
// never persisted. A local key wins immediately. Otherwise the remote tier
// is asked whether an AMK existence record is registered for the current
// user, with a short bounded retry to absorb replication lag right after
// signup. Only positive remote answers are cached: a stale negative would
// wrongly route a user who provisioned on another device into setup again.
package gate
