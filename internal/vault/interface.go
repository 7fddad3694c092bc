package vault

import "github.com/cockroachdb/errors"

// ErrNotFound is returned by Get and Delete when no secret is stored under the key.
var ErrNotFound = errors.New("secret not found")

// Vault is opaque keyed secret storage scoped to one service namespace.
type Vault interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
