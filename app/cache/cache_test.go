package cache

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestCache(ttl time.Duration) (*Cache, *fakeClock) {
	clk := &fakeClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
	return NewWithClock(ttl, clk.Now), clk
}

func TestCache_HitWithinTTL(t *testing.T) {
	c, clk := newTestCache(60 * time.Second)

	c.Set(Key("values", "123"), "payload")
	clk.Advance(59 * time.Second)

	v, ok := c.Get(Key("values", "123"))
	if !ok {
		t.Fatal("Expected a hit within the TTL")
	}
	if v.(string) != "payload" {
		t.Errorf("Expected cached payload, got %v", v)
	}
}

func TestCache_MissAfterTTL(t *testing.T) {
	c, clk := newTestCache(60 * time.Second)

	c.Set("k", "v")
	clk.Advance(61 * time.Second)

	if _, ok := c.Get("k"); ok {
		t.Error("Expected a miss after the TTL elapsed")
	}
	if c.Len() != 0 {
		t.Errorf("Expected lazy expiry to remove the entry, Len() = %d", c.Len())
	}
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c, _ := newTestCache(60 * time.Second)
	if _, ok := c.Get("absent"); ok {
		t.Error("Expected a miss for a key never set")
	}
}

func TestCache_SetRefreshesExpiry(t *testing.T) {
	c, clk := newTestCache(60 * time.Second)

	c.Set("k", "v1")
	clk.Advance(50 * time.Second)
	c.Set("k", "v2")
	clk.Advance(50 * time.Second)

	v, ok := c.Get("k")
	if !ok {
		t.Fatal("Expected a hit: the second Set restarted the TTL")
	}
	if v.(string) != "v2" {
		t.Errorf("Expected v2, got %v", v)
	}
}

func TestCache_Flush(t *testing.T) {
	c, _ := newTestCache(60 * time.Second)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Flush()
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after Flush, Len() = %d", c.Len())
	}
}

func TestKey(t *testing.T) {
	if got := Key("titleByGid", "123"); got != "titleByGid::123" {
		t.Errorf("Expected titleByGid::123, got %s", got)
	}
}
