package memorycache

import (
	"time"
)

// Option configures the Cache
type Option interface {
	apply(*config)
}

// config collects the settings shared by every Cache instantiation. Options
// apply to it rather than to Cache directly so they stay independent of the
// cache's type parameters.
type config struct {
	scanEvery time.Duration
	now       func() time.Time
}

// helper Option implementation to quickly define new options
type optionFunc func(*config)

func (f optionFunc) apply(c *config) {
	f(c)
}

// WithFullScanInterval enables the periodic full sweep. At most once per
// interval d, the next cache operation removes every expired entry before it
// runs. If d is 0 or negative the sweep stays disabled and expiration is
// enforced lazily, per key, at access time only.
func WithFullScanInterval(d time.Duration) Option {
	return optionFunc(func(c *config) {
		if d < 0 {
			d = 0
		}
		c.scanEvery = d
	})
}

// WithNowFunc replaces the clock used for expiration checks. The default is
// time.Now. Replacement clocks must be monotonic; the cache tolerates a
// backward step by treating it as zero elapsed time.
func WithNowFunc(now func() time.Time) Option {
	return optionFunc(func(c *config) {
		if now != nil {
			c.now = now
		}
	})
}
