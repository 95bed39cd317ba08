package memorycache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		ttl     time.Duration
		at      time.Time
		expired bool
	}{
		{name: "zero lifetime is expired immediately", ttl: 0, at: now, expired: true},
		{name: "lifetime not yet reached", ttl: time.Second, at: now, expired: false},
		{name: "exactly at expiration", ttl: time.Second, at: now.Add(time.Second), expired: true},
		{name: "past expiration", ttl: time.Second, at: now.Add(2 * time.Second), expired: true},
		{name: "no expiration never expires", ttl: NoExpiration, at: now.Add(1000 * time.Hour), expired: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEntry(1, tt.ttl, now)
			assert.Equal(t, tt.expired, e.expired(tt.at))
		})
	}
}

func TestEntryNoExpirationHasZeroInstant(t *testing.T) {
	e := newEntry("v", NoExpiration, time.Now())
	assert.True(t, e.expiration.IsZero())
}
