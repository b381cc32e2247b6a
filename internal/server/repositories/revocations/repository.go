// Package revocations holds the revocation registry: the set of token
// identifiers (jti) that are no longer honored regardless of remaining
// signature validity.
package revocations

import "context"

type Repository interface {
	// Revoke inserts the jti into the registry. Revoking an already-revoked
	// jti is a no-op success.
	Revoke(ctx context.Context, jti string) error

	// IsRevoked reports whether the jti has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
