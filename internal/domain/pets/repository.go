package pets

import "context"

// Repository es de solo lectura: el catálogo es fijo.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
}
