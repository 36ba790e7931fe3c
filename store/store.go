// Package store is the application state container: one Store per
// shopping session owns the cart, identity, order history and wishlist,
// and every mutation flows through a single Apply entry point.
package store

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/electrohub/storefront-api/kvstore"
	"github.com/electrohub/storefront-api/models"
)

// sessionKey is the fixed persistence key for the signed-in identity.
const sessionKey = "electrohub_user"

// Store serializes state transitions for one session. Handlers run
// concurrently, so Apply takes a lock; within it the transition is the
// pure reducer plus the SetUser/Logout persistence side effect.
type Store struct {
	mu    sync.Mutex
	state models.State
	kv    kvstore.Store
}

// New builds a store backed by kv and restores any persisted identity.
// A record that fails to decode is logged and dropped; startup never
// fails on bad session data.
func New(kv kvstore.Store) *Store {
	s := &Store{kv: kv}

	if raw, ok := kv.Get(sessionKey); ok {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			log.Warn().Err(err).Msg("discarding unreadable saved session")
		} else {
			s.state.User = &user
		}
	}
	return s
}

// Apply runs one transition and returns the resulting state snapshot.
func (s *Store) Apply(action Action) models.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, action)

	switch a := action.(type) {
	case SetUser:
		if a.User == nil {
			s.removeSaved()
		} else {
			s.saveUser(a.User)
		}
	case Logout:
		s.removeSaved()
	}

	return s.state.Clone()
}

// State returns a snapshot of the current state.
func (s *Store) State() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) saveUser(u *models.User) {
	raw, err := json.Marshal(u)
	if err != nil {
		log.Error().Err(err).Msg("encode session user")
		return
	}
	if err := s.kv.Set(sessionKey, string(raw)); err != nil {
		log.Error().Err(err).Msg("persist session user")
	}
}

func (s *Store) removeSaved() {
	if err := s.kv.Remove(sessionKey); err != nil {
		log.Error().Err(err).Msg("clear persisted session")
	}
}
