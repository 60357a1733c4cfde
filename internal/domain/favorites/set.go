package favorites

import "sync"

// Set es el conjunto de favoritos de una sesión.
// Sin duplicados; se itera en orden de inserción.
type Set struct {
	mu    sync.RWMutex
	ids   []string
	index map[string]struct{}
}

func NewSet() *Set {
	return &Set{index: map[string]struct{}{}}
}

// Toggle agrega id si no está, lo quita si está. Devuelve la pertenencia final.
func (s *Set) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; ok {
		s.removeLocked(id)
		return false
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// Remove garantiza que id no quede en el set. Sin error si no estaba.
func (s *Set) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	s.index = map[string]struct{}{}
}

func (s *Set) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

// IDs devuelve una copia en orden de inserción.
func (s *Set) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *Set) removeLocked(id string) {
	if _, ok := s.index[id]; !ok {
		return
	}
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}
