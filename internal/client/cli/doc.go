// Package cli provides the interactive key-client command line.
//
// It wires configuration, the local key tiers, the key-server API client, and
// an interactive REPL. Typical flow: prompt for credentials, resolve the
// encryption gate, and route the user to setup or unlock as needed.
//
// Key features:
//   - Register / Login / Logout
//   - Gate resolution after login and on demand ("status", "resume")
//   - First-time key setup and passphrase unlock
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
