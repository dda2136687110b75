package resilience

import "sync"

// Group collapses concurrent calls that share a key into one execution.
// The zero value is ready to use.
type Group[T any] struct {
	mu    sync.Mutex
	calls map[string]*flight[T]
}

type flight[T any] struct {
	done chan struct{}
	val  T
	err  error
	dups int
}

// Do runs fn once per key among overlapping callers. shared reports whether
// the result was handed to more than one caller.
func (g *Group[T]) Do(key string, fn func() (T, error)) (v T, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flight[T])
	}
	if f, ok := g.calls[key]; ok {
		f.dups++
		g.mu.Unlock()
		<-f.done
		return f.val, f.err, true
	}

	f := &flight[T]{done: make(chan struct{})}
	g.calls[key] = f
	g.mu.Unlock()

	func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()

	g.mu.Lock()
	delete(g.calls, key)
	shared = f.dups > 0
	g.mu.Unlock()

	return f.val, f.err, shared
}
