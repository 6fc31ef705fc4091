package models

import "time"

// KeyScheme identifies which key-registration generation a record belongs
// to. Legacy records were imported from the pre-cross-device key store and
// may carry no wrapped material.
type KeyScheme string

const (
	KeySchemeCurrent KeyScheme = "current"
	KeySchemeLegacy  KeyScheme = "legacy"
)

// AmkKey is a server-side record of a user's account master key: the
// passphrase-wrapped blob plus the KDF salt needed to re-derive the
// unwrapping key. The plaintext AMK never reaches the server.
type AmkKey struct {
	ID         string
	UserID     string
	Scheme     KeyScheme
	WrappedKey []byte
	KdfSalt    []byte
	CreatedAt  time.Time
}
