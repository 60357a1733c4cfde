package favorites

import (
	"context"
	"errors"
	"strings"

	"lar-amigo/internal/domain/pets"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownPet   = errors.New("pet not in catalog")
)

type Service struct {
	store   Store
	petsSvc *pets.Service
}

func NewService(store Store, petsSvc *pets.Service) *Service {
	return &Service{store: store, petsSvc: petsSvc}
}

// Toggle solo acepta ids del catálogo.
func (s *Service) Toggle(ctx context.Context, sessionID, petID string) (bool, error) {
	set, petID, err := s.setFor(ctx, sessionID, petID)
	if err != nil {
		return false, err
	}
	ok, err := s.petsSvc.Exists(ctx, petID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrUnknownPet
	}
	return set.Toggle(petID), nil
}

// Remove, IsFavorite, Clear y List no crean sets: una sesión sin set
// se comporta como un set vacío.
func (s *Service) Remove(ctx context.Context, sessionID, petID string) error {
	set, petID, err := s.lookupFor(ctx, sessionID, petID)
	if err != nil || set == nil {
		return err
	}
	set.Remove(petID)
	return nil
}

func (s *Service) IsFavorite(ctx context.Context, sessionID, petID string) (bool, error) {
	set, petID, err := s.lookupFor(ctx, sessionID, petID)
	if err != nil || set == nil {
		return false, err
	}
	return set.IsFavorite(petID), nil
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	set, err := s.lookup(ctx, sessionID)
	if err != nil || set == nil {
		return err
	}
	set.Clear()
	return nil
}

// List devuelve los registros favoritos en orden de inserción.
func (s *Service) List(ctx context.Context, sessionID string) ([]pets.Pet, error) {
	set, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return []pets.Pet{}, nil
	}

	ids := set.IDs()
	out := make([]pets.Pet, 0, len(ids))
	for _, id := range ids {
		p, err := s.petsSvc.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pets.ErrNotFound) {
				// el catálogo es fijo; solo pasaría con un catálogo recargado
				continue
			}
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// EndSession descarta los favoritos de la sesión.
func (s *Service) EndSession(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidInput
	}
	return s.store.End(ctx, sessionID)
}

func (s *Service) session(ctx context.Context, sessionID string) (*Set, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	return s.store.Get(ctx, sessionID)
}

func (s *Service) lookup(ctx context.Context, sessionID string) (*Set, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidInput
	}
	return s.store.Lookup(ctx, sessionID)
}

func (s *Service) setFor(ctx context.Context, sessionID, petID string) (*Set, string, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, "", ErrInvalidInput
	}
	set, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	return set, petID, nil
}

func (s *Service) lookupFor(ctx context.Context, sessionID, petID string) (*Set, string, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, "", ErrInvalidInput
	}
	set, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	return set, petID, nil
}
