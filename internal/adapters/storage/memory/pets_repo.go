package memory

import (
	"context"
	"fmt"
	"strings"

	"lar-amigo/internal/domain/pets"
)

// petRepo guarda el catálogo fijo en memoria, en su orden original.
type petRepo struct {
	ordered []pets.Pet
	byID    map[string]int
}

// NewPetRepo copia el catálogo; falla si hay ids vacíos o repetidos.
func NewPetRepo(catalog []pets.Pet) (pets.Repository, error) {
	r := &petRepo{
		ordered: make([]pets.Pet, 0, len(catalog)),
		byID:    make(map[string]int, len(catalog)),
	}
	for _, p := range catalog {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("memory: pet id required")
		}
		if _, exists := r.byID[p.ID]; exists {
			return nil, fmt.Errorf("memory: duplicate pet id %q", p.ID)
		}
		r.byID[p.ID] = len(r.ordered)
		r.ordered = append(r.ordered, p)
	}
	return r, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	out := make([]pets.Pet, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	i, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return r.ordered[i], nil
}
