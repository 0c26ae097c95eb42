package session

import "context"

// Repo defines the interface for durable session record storage.
type Repo interface {
	// Upsert creates or updates a session record
	Upsert(ctx context.Context, rec Record) error

	// Delete removes a session record by ID. Deleting a record that does
	// not exist is not an error.
	Delete(ctx context.Context, sessionID string) error

	// List returns every persisted record, including structurally broken
	// ones (returned with a zero Identity) so the caller can clean them up.
	List(ctx context.Context) ([]Record, error)
}
