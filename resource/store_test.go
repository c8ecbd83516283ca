package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
)

func TestStoreRegisterFindRemove(t *testing.T) {
	st := NewStore()

	p, err := st.Register(1, &SharedObject{Path: "/lib/foo.so"}, []byte("so-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID())
	assert.Equal(t, int64(1), p.SessionID())
	assert.Equal(t, []byte("so-bytes"), p.Bytes())

	found, err := st.Find(p.ID())
	require.NoError(t, err)
	assert.Same(t, p, found)

	removed, err := st.Remove(p.ID())
	require.NoError(t, err)
	assert.Same(t, p, removed)

	_, err = st.Find(p.ID())
	assert.Error(t, err)
}

func TestPinnedArenaIsCopy(t *testing.T) {
	st := NewStore()
	payload := []byte("mutable")
	p, err := st.Register(1, &SingleModel{}, payload)
	require.NoError(t, err)

	payload[0] = 'X'
	assert.Equal(t, byte('m'), p.Bytes()[0], "pinned arena must not alias caller's slice")
}

func TestFromRequestFilesTakePrecedenceOverPaths(t *testing.T) {
	req := &vaccelpb.RegisterResourceRequest{
		ResourceType: vaccelpb.ResourceType_SHARED_OBJECT,
		Paths:        []string{"/ignored/path.so"},
		Files: []*vaccelpb.File{
			{Name: "lib.so", Data: []byte("real-bytes")},
		},
	}
	kind, data, err := FromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, []byte("real-bytes"), data)
	so, ok := kind.(*SharedObject)
	require.True(t, ok)
	assert.Equal(t, []byte("real-bytes"), so.Bytes)
}

func TestFromRequestRequiresFilesOrPaths(t *testing.T) {
	req := &vaccelpb.RegisterResourceRequest{
		ResourceType: vaccelpb.ResourceType_SHARED_OBJECT,
	}
	_, _, err := FromRequest(req)
	assert.Error(t, err)
}

func TestFromRequestSavedModelMergesFiles(t *testing.T) {
	req := &vaccelpb.RegisterResourceRequest{
		ResourceType: vaccelpb.ResourceType_TF_SAVED_MODEL,
		Files: []*vaccelpb.File{
			{Name: "saved_model.pb", Data: []byte("pb")},
			{Name: "variables/variables.index", Data: []byte("idx")},
		},
	}
	kind, _, err := FromRequest(req)
	require.NoError(t, err)
	sm, ok := kind.(*TFSavedModel)
	require.True(t, ok)
	assert.Equal(t, []byte("pb"), sm.Files["saved_model.pb"])
	assert.Equal(t, []byte("idx"), sm.Files["variables/variables.index"])
}
