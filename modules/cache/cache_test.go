package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

const testRedisAddr = "localhost:6379"

func setupCache(t *testing.T) *Cache {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: testRedisAddr,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	prefix := "test:" + t.Name() + ":"
	c := New(client, prefix, time.Minute)

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return c
}

type payload struct {
	Expression string  `json:"expression"`
	Value      float64 `json:"value"`
}

func TestCache_SetGet(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	in := payload{Expression: "2+2", Value: 4}
	if err := c.Set(ctx, "expr", in); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var out payload
	found, err := c.Get(ctx, "expr", &out)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() should hit after Set()")
	}
	if out != in {
		t.Errorf("Get() = %+v, want %+v", out, in)
	}
}

func TestCache_GetMiss(t *testing.T) {
	c := setupCache(t)

	var out payload
	found, err := c.Get(context.Background(), "absent", &out)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() for an absent key should miss")
	}

	stats := c.Snapshot()
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
}

func TestCache_GetOrCompute(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return payload{Expression: "sin(30)", Value: 0.5}, nil
	}

	var out payload
	if err := c.GetOrCompute(ctx, "sci", &out, compute); err != nil {
		t.Fatalf("GetOrCompute() first call error = %v", err)
	}
	if out.Value != 0.5 {
		t.Errorf("Value = %v, want 0.5", out.Value)
	}

	// Second call must be served from the cache.
	var out2 payload
	if err := c.GetOrCompute(ctx, "sci", &out2, compute); err != nil {
		t.Fatalf("GetOrCompute() second call error = %v", err)
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
	if out2 != out {
		t.Errorf("cached result = %+v, want %+v", out2, out)
	}
}

func TestCache_GetOrCompute_SingleFlight(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	var mu sync.Mutex
	calls := 0
	release := make(chan struct{})
	compute := func() (interface{}, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		return payload{Expression: "slow", Value: 1}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var out payload
			if err := c.GetOrCompute(ctx, "slow", &out, compute); err != nil {
				t.Errorf("GetOrCompute() error = %v", err)
			}
		}()
	}

	// Give the goroutines time to pile up on the same key.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("compute called %d times for concurrent identical requests, want 1", calls)
	}
}

func TestCache_Snapshot(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	c.Set(ctx, "k", payload{Value: 1})

	var out payload
	c.Get(ctx, "k", &out)
	c.Get(ctx, "missing", &out)

	stats := c.Snapshot()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.Sets != 1 {
		t.Errorf("Sets = %d, want 1", stats.Sets)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", stats.HitRate)
	}
}
