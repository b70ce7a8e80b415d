package ports

import "context"

// Named string values in a durable store. A missing key is reported
// with found == false, never as an error.
type KeyValueStore interface {
	GetKey(ctx context.Context, name string) (value string, found bool, err error)
	SetKey(ctx context.Context, name, value string) error
	DeleteKey(ctx context.Context, name string) error
}

// The single routing API credential.
type CredentialStore interface {
	// Return the trimmed credential; found is false when absent or blank.
	Get(ctx context.Context) (value string, found bool, err error)
	// Trim and persist, overwriting any previous value.
	Set(ctx context.Context, value string) error
	// Delete the credential; no-op when absent.
	Remove(ctx context.Context) error
}
