// Package common contains shared constants and sentinel errors used across
// the key service client and server.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// AmkSize is the size of a freshly generated account master key, in bytes.
const AmkSize = 32

// KdfSaltSize is the size of the random salt used for passphrase key
// derivation, in bytes.
const KdfSaltSize = 32
