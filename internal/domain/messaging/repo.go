package messaging

import "context"

// Repository is the storage contract for messages. Lookups that miss return
// (nil, nil).
type Repository interface {
	Get(ctx context.Context, id string) (*Message, error)
	// ListByUser returns every message where the user is sender or
	// receiver, newest first.
	ListByUser(ctx context.Context, userID string) ([]*Message, error)
	// ListUnread returns messages where the user is the receiver and the
	// read flag is still false, newest first.
	ListUnread(ctx context.Context, userID string) ([]*Message, error)
	Create(ctx context.Context, in CreateMessage) (*Message, error)
	// MarkRead flips the read flag to true. Idempotent; does not touch
	// createdAt. Returns (nil, nil) when the id is unknown.
	MarkRead(ctx context.Context, id string) (*Message, error)
}
