package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestSetGetAndExpire(t *testing.T) {
	c := New(0)
	key := "expire-" + time.Now().String()

	// ensure no value
	if _, ok := c.Get(key); ok {
		t.Fatalf("expected no value initially")
	}

	// set with ttl
	c.Set(key, "hello", 50*time.Millisecond)
	if v, ok := c.Get(key); !ok || v.(string) != "hello" {
		t.Fatalf("expected value 'hello', got %v ok=%v", v, ok)
	}

	// wait for expiry; expiration has unix-second granularity
	time.Sleep(2100 * time.Millisecond)
	if _, ok := c.Get(key); ok {
		t.Fatalf("expected expired value to be gone")
	}
}

func TestDelete(t *testing.T) {
	c := New(0)
	c.Set("k", 42, time.Minute)
	if v, ok := c.Get("k"); !ok || v.(int) != 42 {
		t.Fatalf("expected 42 present before delete, got %v ok=%v", v, ok)
	}
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected deleted value to be absent")
	}
}

func TestLRUEviction(t *testing.T) {
	c := New(2)
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)
	// touch "a" so "b" becomes LRU
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a present")
	}
	c.Set("c", 3, 0)
	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected LRU entry b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected recently used entry a to survive")
	}
	if c.Len() != 2 {
		t.Fatalf("expected capacity 2, got %d", c.Len())
	}
}

func TestOverwriteKeepsSingleEntry(t *testing.T) {
	c := New(0)
	for i := 0; i < 5; i++ {
		c.Set("k", fmt.Sprintf("v%d", i), time.Minute)
	}
	if c.Len() != 1 {
		t.Fatalf("expected one entry after overwrites, got %d", c.Len())
	}
	if v, _ := c.Get("k"); v.(string) != "v4" {
		t.Fatalf("expected latest value, got %v", v)
	}
}
