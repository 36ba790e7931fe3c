package store

import (
	"sync"

	"github.com/electrohub/storefront-api/kvstore"
)

// Registry hands out one Store per session id, lazily. Each store
// persists under the fixed session key inside its own kv namespace.
type Registry struct {
	mu     sync.Mutex
	kv     kvstore.Store
	stores map[string]*Store
}

func NewRegistry(kv kvstore.Store) *Registry {
	return &Registry{
		kv:     kv,
		stores: make(map[string]*Store),
	}
}

// Session returns the store for id, creating it on first use.
func (r *Registry) Session(id string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[id]; ok {
		return s
	}
	s := New(kvstore.WithPrefix(r.kv, "session:"+id+":"))
	r.stores[id] = s
	return s
}

// All returns every live session store; the admin dashboard aggregates
// across them.
func (r *Registry) All() []*Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Store, 0, len(r.stores))
	for _, s := range r.stores {
		out = append(out, s)
	}
	return out
}
