package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateFindRemove(t *testing.T) {
	st := NewStore()

	s, err := st.Create(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.ID())
	assert.Equal(t, 1, st.Len())

	found, err := st.Find(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, found)

	removed, err := st.Remove(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, removed)
	assert.Equal(t, 0, st.Len())

	_, err = st.Find(s.ID())
	assert.Error(t, err)
}

func TestStoreRemoveUnknown(t *testing.T) {
	st := NewStore()
	_, err := st.Remove(42)
	assert.Error(t, err)
}

func TestSessionResourceTracking(t *testing.T) {
	st := NewStore()
	s, err := st.Create(0)
	require.NoError(t, err)

	s.AddResource(10)
	s.AddResource(11)
	assert.ElementsMatch(t, []int64{10, 11}, s.ResourceIDs())

	s.RemoveResource(10)
	assert.ElementsMatch(t, []int64{11}, s.ResourceIDs())
}

func TestSessionFlags(t *testing.T) {
	st := NewStore()
	s, err := st.Create(5)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), s.Flags())

	s.SetFlags(7)
	assert.Equal(t, uint32(7), s.Flags())
}

func TestStoreConcurrentCreate(t *testing.T) {
	st := NewStore()
	const n = 50
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		go func() {
			s, err := st.Create(0)
			require.NoError(t, err)
			ids <- s.ID()
		}()
	}
	seen := make(map[int64]bool)
	for i := 0; i < n; i++ {
		id := <-ids
		assert.False(t, seen[id], "duplicate session id %d", id)
		seen[id] = true
	}
}
