package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lar-amigo/internal/domain/pets"
)

// -------------------------
// Test doubles (in-memory)
// -------------------------

type testPetRepo struct {
	items []pets.Pet
}

func (r *testPetRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return append([]pets.Pet(nil), r.items...), nil
}

func (r *testPetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

type testStore struct {
	sets map[string]*Set
}

func (s *testStore) Get(ctx context.Context, sessionID string) (*Set, error) {
	set, ok := s.sets[sessionID]
	if !ok {
		set = NewSet()
		s.sets[sessionID] = set
	}
	return set, nil
}

func (s *testStore) Lookup(ctx context.Context, sessionID string) (*Set, error) {
	return s.sets[sessionID], nil
}

func (s *testStore) End(ctx context.Context, sessionID string) error {
	delete(s.sets, sessionID)
	return nil
}

func newTestService() *Service {
	svc, _ := newTestServiceWithStore()
	return svc
}

func newTestServiceWithStore() (*Service, *testStore) {
	repo := &testPetRepo{items: []pets.Pet{
		{ID: "1", Name: "Thor"},
		{ID: "2", Name: "Luna"},
		{ID: "3", Name: "Tobby"},
	}}
	store := &testStore{sets: map[string]*Set{}}
	return NewService(store, pets.NewService(repo)), store
}

func TestService_Toggle_RejectsUnknownPet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "s1", "99")
	assert.ErrorIs(t, err, ErrUnknownPet)

	_, err = svc.Toggle(ctx, "s1", " ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Toggle(ctx, "", "1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListInInsertionOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, id := range []string{"3", "1"} {
		on, err := svc.Toggle(ctx, "s1", id)
		require.NoError(t, err)
		require.True(t, on)
	}

	items, err := svc.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Tobby", items[0].Name)
	assert.Equal(t, "Thor", items[1].Name)
}

func TestService_SessionsAreIsolated(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "s1", "2")
	require.NoError(t, err)

	fav, err := svc.IsFavorite(ctx, "s2", "2")
	require.NoError(t, err)
	assert.False(t, fav)

	fav, err = svc.IsFavorite(ctx, "s1", "2")
	require.NoError(t, err)
	assert.True(t, fav)
}

func TestService_RemoveClearAndEndSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		_, err := svc.Toggle(ctx, "s1", id)
		require.NoError(t, err)
	}

	require.NoError(t, svc.Remove(ctx, "s1", "2"))
	require.NoError(t, svc.Remove(ctx, "s1", "2"))
	items, err := svc.List(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, svc.Clear(ctx, "s1"))
	items, err = svc.List(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = svc.Toggle(ctx, "s1", "1")
	require.NoError(t, err)
	require.NoError(t, svc.EndSession(ctx, "s1"))

	fav, err := svc.IsFavorite(ctx, "s1", "1")
	require.NoError(t, err)
	assert.False(t, fav)

	assert.ErrorIs(t, svc.EndSession(ctx, ""), ErrInvalidInput)
}

func TestService_ReadsDoNotCreateSessions(t *testing.T) {
	svc, store := newTestServiceWithStore()
	ctx := context.Background()

	items, err := svc.List(ctx, "visitante")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	fav, err := svc.IsFavorite(ctx, "visitante", "1")
	require.NoError(t, err)
	assert.False(t, fav)

	require.NoError(t, svc.Remove(ctx, "visitante", "1"))
	require.NoError(t, svc.Clear(ctx, "visitante"))
	assert.Empty(t, store.sets)

	_, err = svc.IsFavorite(ctx, "visitante", " ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	// solo Toggle crea el set
	_, err = svc.Toggle(ctx, "visitante", "1")
	require.NoError(t, err)
	assert.Len(t, store.sets, 1)
}
