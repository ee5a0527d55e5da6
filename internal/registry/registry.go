// Package registry maps short stable keys ("bubble", "merge", ...) to sort
// algorithm instances.
//
// A registry is normally built once at startup with Default and only read
// afterwards. Reads and writes are guarded by a RWMutex so a server may share
// one registry across request goroutines.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/algorithm"
)

var (
	// ErrEmptyKey is returned when registering under "".
	ErrEmptyKey = errors.New("registry: empty key")

	// ErrNilAlgorithm is returned when registering a nil algorithm.
	ErrNilAlgorithm = errors.New("registry: nil algorithm")
)

// Entry is one registered algorithm with its key.
type Entry struct {
	Key       string
	Algorithm algorithm.Algorithm
}

// Registry is an insertion-ordered key to algorithm map.
type Registry struct {
	mu    sync.RWMutex
	order []string
	algs  map[string]algorithm.Algorithm
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{algs: make(map[string]algorithm.Algorithm)}
}

// Default returns a registry holding the built-in algorithms in their
// listing order.
func Default() *Registry {
	r := New()
	for _, e := range []Entry{
		{"bubble", algorithm.Bubble{}},
		{"selection", algorithm.Selection{}},
		{"insertion", algorithm.Insertion{}},
		{"merge", algorithm.Merge{}},
	} {
		if err := r.Register(e.Key, e.Algorithm); err != nil {
			panic(fmt.Sprintf("registry: default entry %q: %v", e.Key, err))
		}
	}
	return r
}

// Register binds key to alg. Registering an existing key replaces its
// algorithm and keeps the key's original listing position.
func (r *Registry) Register(key string, alg algorithm.Algorithm) error {
	if key == "" {
		return ErrEmptyKey
	}
	if alg == nil {
		return fmt.Errorf("%w: key %q", ErrNilAlgorithm, key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.algs[key]; !exists {
		r.order = append(r.order, key)
	}
	r.algs[key] = alg
	return nil
}

// Get returns the algorithm registered under key. It never falls back to a
// default; an unknown key reports false.
func (r *Registry) Get(key string) (algorithm.Algorithm, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alg, ok := r.algs[key]
	return alg, ok
}

// All returns every entry in registration order.
func (r *Registry) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.order))
	for _, key := range r.order {
		entries = append(entries, Entry{Key: key, Algorithm: r.algs[key]})
	}
	return entries
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
