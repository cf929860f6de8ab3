package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source for limiter tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(max int, opts ...Option) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	opts = append(opts, WithClock(clock.Now))
	return NewLimiter(15*time.Minute, max, opts...), clock
}

func TestAdmit_UnderCap(t *testing.T) {
	l, _ := newTestLimiter(100)

	for i := 0; i < 100; i++ {
		d := l.Admit("10.0.0.1", "/api/participants")
		require.True(t, d.Allowed, "request %d should be admitted", i+1)
		assert.Equal(t, 100, d.Limit)
		assert.Equal(t, 100-(i+1), d.Remaining)
	}
}

func TestAdmit_RejectsPastCap(t *testing.T) {
	l, _ := newTestLimiter(100)

	for i := 0; i < 100; i++ {
		l.Admit("10.0.0.1", "/api/participants")
	}

	d := l.Admit("10.0.0.1", "/api/participants")
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
}

func TestAdmit_RejectionKeepsWindow(t *testing.T) {
	l, clock := newTestLimiter(2)

	l.Admit("c", "/x")
	l.Admit("c", "/x")
	first := l.Admit("c", "/x")
	require.False(t, first.Allowed)

	clock.Advance(time.Minute)
	second := l.Admit("c", "/x")
	assert.False(t, second.Allowed)
	// rejected attempts must not push the reset instant forward
	assert.Equal(t, first.ResetAt, second.ResetAt)
}

func TestAdmit_WindowExpiryResets(t *testing.T) {
	l, clock := newTestLimiter(1)

	require.True(t, l.Admit("c", "/x").Allowed)
	require.False(t, l.Admit("c", "/x").Allowed)

	clock.Advance(15 * time.Minute)

	d := l.Admit("c", "/x")
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
}

func TestAdmit_HealthPathExempt(t *testing.T) {
	l, _ := newTestLimiter(100, WithExemptPath("/health"))

	for i := 0; i < 100; i++ {
		l.Admit("10.0.0.1", "/api/staff")
	}
	require.False(t, l.Admit("10.0.0.1", "/api/staff").Allowed)

	// the 101st request to the exempted health path is still admitted
	d := l.Admit("10.0.0.1", "/health")
	assert.True(t, d.Allowed)
	assert.Equal(t, 100, d.Remaining)
}

func TestAdmit_IdentitiesIsolated(t *testing.T) {
	l, _ := newTestLimiter(1)

	require.True(t, l.Admit("a", "/x").Allowed)
	require.False(t, l.Admit("a", "/x").Allowed)
	assert.True(t, l.Admit("b", "/x").Allowed)
}

func TestAdmit_ConcurrentBurstHonorsCap(t *testing.T) {
	l, _ := newTestLimiter(100)

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < 300; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Admit("burst", "/api/programs").Allowed {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, admitted)
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		name         string
		remoteAddr   string
		forwardedFor string
		want         string
	}{
		{
			name:       "no proxy header uses remote addr host",
			remoteAddr: "192.0.2.10:52341",
			want:       "192.0.2.10",
		},
		{
			name:         "single forwarded entry trusted",
			remoteAddr:   "10.0.0.1:443",
			forwardedFor: "203.0.113.7",
			want:         "203.0.113.7",
		},
		{
			name:         "only nearest hop trusted",
			remoteAddr:   "10.0.0.1:443",
			forwardedFor: "6.6.6.6, 203.0.113.7",
			want:         "203.0.113.7",
		},
		{
			name:         "spoofed earlier hops ignored",
			remoteAddr:   "10.0.0.1:443",
			forwardedFor: "1.1.1.1, 2.2.2.2, 198.51.100.4",
			want:         "198.51.100.4",
		},
		{
			name:       "unparseable remote addr returned whole",
			remoteAddr: "not-an-addr",
			want:       "not-an-addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientKey(tt.remoteAddr, tt.forwardedFor))
		})
	}
}

func TestAdmit_ResetAtAdvancesWithNewWindow(t *testing.T) {
	l, clock := newTestLimiter(5)

	first := l.Admit(fmt.Sprintf("client-%d", 1), "/x")
	clock.Advance(20 * time.Minute)
	second := l.Admit(fmt.Sprintf("client-%d", 1), "/x")

	assert.True(t, second.ResetAt.After(first.ResetAt))
}
