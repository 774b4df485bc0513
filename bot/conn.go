package bot

import (
	"context"
	"heckel.io/mentionbot/mention"
)

// conn is the connection to a chat platform. It delivers message events and provides the entity
// cache that is kept up to date by the same connection.
type conn interface {
	Connect(ctx context.Context) (<-chan event, error)
	Lookup() mention.Lookup
	Close() error
}
