package cache

import (
	"testing"
	"time"
)

func TestCache_SetAndGet(t *testing.T) {
	c := New(1 * time.Second)

	c.Set("working-set", "value1")

	val, found := c.Get("working-set")
	if !found {
		t.Error("Expected to find working-set")
	}
	if val != "value1" {
		t.Errorf("Expected value1, got %v", val)
	}
}

func TestCache_Expiration(t *testing.T) {
	c := New(50 * time.Millisecond)

	c.Set("working-set", "value1")

	// Should exist immediately
	_, found := c.Get("working-set")
	if !found {
		t.Error("Expected to find working-set immediately")
	}

	// Wait for expiration
	time.Sleep(80 * time.Millisecond)

	_, found = c.Get("working-set")
	if found {
		t.Error("Expected working-set to be expired")
	}
}

func TestCache_SetWithTTL(t *testing.T) {
	c := New(1 * time.Hour)

	c.SetWithTTL("short", "v", 50*time.Millisecond)
	time.Sleep(80 * time.Millisecond)

	if _, found := c.Get("short"); found {
		t.Error("Expected short entry to expire before the default TTL")
	}
}

func TestCache_Clear(t *testing.T) {
	c := New(1 * time.Second)

	c.Set("working-set", "value1")
	c.Clear("working-set")

	_, found := c.Get("working-set")
	if found {
		t.Error("Expected working-set to be cleared")
	}
}
