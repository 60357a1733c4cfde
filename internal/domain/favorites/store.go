package favorites

import "context"

// Store es el proveedor de sets por sesión. Vive lo que vive el proceso;
// no hay persistencia entre reinicios.
type Store interface {
	// Get devuelve el set de la sesión, creándolo vacío en el primer uso.
	Get(ctx context.Context, sessionID string) (*Set, error)
	// Lookup devuelve el set si existe, sin crearlo. (nil, nil) si no hay.
	Lookup(ctx context.Context, sessionID string) (*Set, error)
	// End descarta el set de la sesión.
	End(ctx context.Context, sessionID string) error
}
