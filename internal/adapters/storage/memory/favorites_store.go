package memory

import (
	"context"
	"sync"
	"time"

	"lar-amigo/internal/domain/favorites"
)

const (
	DefaultFavoritesTTL = 2 * time.Hour
	favoritesJanitor    = time.Minute
)

type session struct {
	set      *favorites.Set
	lastSeen time.Time
}

// FavoritesStore es el proveedor de favoritos por sesión.
// Vive lo que vive el proceso; nada sobrevive a un reinicio. Las sesiones
// sin uso durante ttl se descartan mientras Run esté corriendo.
type FavoritesStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

var _ favorites.Store = (*FavoritesStore)(nil)

// NewFavoritesStore: ttl <= 0 usa DefaultFavoritesTTL.
func NewFavoritesStore(ttl time.Duration) *FavoritesStore {
	if ttl <= 0 {
		ttl = DefaultFavoritesTTL
	}
	return &FavoritesStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *FavoritesStore) Get(ctx context.Context, sessionID string) (*favorites.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{set: favorites.NewSet()}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = s.now()
	return sess.set, nil
}

func (s *FavoritesStore) Lookup(ctx context.Context, sessionID string) (*favorites.Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	sess.lastSeen = s.now()
	return sess.set, nil
}

func (s *FavoritesStore) End(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Len es la cantidad de sesiones con set.
func (s *FavoritesStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run descarta sesiones inactivas hasta que ctx se cancele.
func (s *FavoritesStore) Run(ctx context.Context) {
	t := time.NewTicker(favoritesJanitor)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweep()
		}
	}
}

func (s *FavoritesStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
