package bot

import (
	"context"
	"heckel.io/mentionbot/cache"
	"heckel.io/mentionbot/config"
	"heckel.io/mentionbot/mention"
	"sync"
)

type memConn struct {
	config    *config.Config
	cache     *cache.Memory
	eventChan chan event
	closed    bool
	mu        sync.Mutex
}

func newMemConn(conf *config.Config) *memConn {
	return &memConn{
		config:    conf,
		cache:     cache.NewMemory(),
		eventChan: make(chan event, 10),
	}
}

func (c *memConn) Connect(ctx context.Context) (<-chan event, error) {
	return c.eventChan, nil
}

func (c *memConn) Lookup() mention.Lookup {
	return c.cache
}

func (c *memConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *memConn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *memConn) Event(e event) {
	c.eventChan <- e
}
