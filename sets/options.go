package sets

import (
	log "github.com/sirupsen/logrus"
)

type config struct {
	limit  int
	logger *log.Entry
}

type Option func(c *config)

// WithLimit caps the number of elements a set may hold. Inserting past the
// cap fails with ErrAllocation. Zero or negative means no cap.
func WithLimit(n int) Option {
	return func(c *config) {
		c.limit = n
	}
}

func WithLogger(logger *log.Entry) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = log.WithFields(log.Fields{"component": "sets"})
	}
	return c
}
