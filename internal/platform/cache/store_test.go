package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "استقلال", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "fa:Esteghlal", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "استقلال" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Second)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", 1)
	if v, ok := store.Get(context.Background(), "k"); !ok || v != 1 {
		t.Fatalf("expected cached value, got %d ok=%t", v, ok)
	}

	now = now.Add(2 * time.Second)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted")
	}
}

func TestStore_LoaderErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	boom := errors.New("boom")
	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("error result must not be cached")
	}

	store.Set(context.Background(), "team:1", "a")
	store.Set(context.Background(), "team:2", "b")
	store.DeletePrefix(context.Background(), "team:")
	if store.Len() != 0 {
		t.Fatalf("expected prefix delete to clear entries")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
