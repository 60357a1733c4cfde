package favorites

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_ToggleAndOrder(t *testing.T) {
	s := NewSet()

	assert.True(t, s.Toggle("3"))
	assert.True(t, s.Toggle("1"))
	assert.True(t, s.Toggle("7"))
	assert.Equal(t, []string{"3", "1", "7"}, s.IDs())

	assert.False(t, s.Toggle("1"))
	assert.False(t, s.IsFavorite("1"))
	assert.Equal(t, []string{"3", "7"}, s.IDs())

	// volver a agregar lo pone al final
	assert.True(t, s.Toggle("1"))
	assert.Equal(t, []string{"3", "7", "1"}, s.IDs())
}

func TestSet_RemoveIsNoopWhenAbsent(t *testing.T) {
	s := NewSet()
	s.Toggle("1")

	s.Remove("2")
	s.Remove("1")
	s.Remove("1")

	assert.Zero(t, s.Len())
	assert.Empty(t, s.IDs())
}

func TestSet_Clear(t *testing.T) {
	s := NewSet()
	s.Toggle("1")
	s.Toggle("2")

	s.Clear()

	assert.Zero(t, s.Len())
	assert.False(t, s.IsFavorite("1"))
	assert.True(t, s.Toggle("2"))
}

func TestSet_IDsIsACopy(t *testing.T) {
	s := NewSet()
	s.Toggle("1")

	ids := s.IDs()
	ids[0] = "x"

	assert.Equal(t, []string{"1"}, s.IDs())
}

func TestSet_ConcurrentTogglesNeverDuplicate(t *testing.T) {
	s := NewSet()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("%d", i%5)
			s.Toggle(id)
			_ = s.IsFavorite(id)
			_ = s.IDs()
		}(i)
	}
	wg.Wait()

	// cada id se togglea 10 veces: termina fuera del set
	assert.Zero(t, s.Len())
}
