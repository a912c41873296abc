package store

import (
	"context"
	"strconv"
	"sync"
	"testing"
)

func TestInMemoryStore_SetGetRemove(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "cart"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "cart", "[]"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	v, ok, err := s.Get(ctx, "cart")
	if err != nil || !ok || v != "[]" {
		t.Fatalf("unexpected get result: %q %v %v", v, ok, err)
	}
	if err := s.Remove(ctx, "cart"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "cart"); ok {
		t.Fatal("expected key to be removed")
	}
	// removing a missing key is not an error
	if err := s.Remove(ctx, "cart"); err != nil {
		t.Fatalf("remove of missing key failed: %v", err)
	}
}

func TestInMemoryStore_Cancellation(t *testing.T) {
	s := NewInMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Set(ctx, "k", "v"); err == nil {
		t.Fatal("expected context error on set")
	}
	if _, _, err := s.Get(ctx, "k"); err == nil {
		t.Fatal("expected context error on get")
	}
	if err := s.Remove(ctx, "k"); err == nil {
		t.Fatal("expected context error on remove")
	}
}

func TestInMemoryStore_ConcurrentAccess(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()
	var wg sync.WaitGroup

	n := 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		key := "k-" + strconv.Itoa(i)
		go func(key string) {
			defer wg.Done()
			_ = s.Set(ctx, key, key)
			_, _, _ = s.Get(ctx, key)
		}(key)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		key := "k-" + strconv.Itoa(i)
		if v, ok, _ := s.Get(ctx, key); !ok || v != key {
			t.Fatalf("expected %s to be stored, got %q", key, v)
		}
	}
}

func BenchmarkInMemoryStore_Set(b *testing.B) {
	s := NewInMemoryStore()
	for i := 0; i < b.N; i++ {
		_ = s.Set(context.Background(), "cart", "[]")
	}
}
