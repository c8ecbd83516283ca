package genop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
)

func TestReassemblerSingleUnfragmentedArg(t *testing.T) {
	r := NewReassembler()
	err := r.Feed(&vaccelpb.GenopRequest{
		SessionId: 7,
		ReadArgs:  []*vaccelpb.Arg{{Buf: []byte("hello"), Size: 5}},
	})
	require.NoError(t, err)

	req, err := r.Finish()
	require.NoError(t, err)
	assert.Equal(t, int64(7), req.GetSessionId())
	require.Len(t, req.GetReadArgs(), 1)
	assert.Equal(t, []byte("hello"), req.GetReadArgs()[0].GetBuf())
}

func TestReassemblerFragmentedArgAppendsToEnd(t *testing.T) {
	r := NewReassembler()

	// A complete, small arg arrives first.
	require.NoError(t, r.Feed(&vaccelpb.GenopRequest{
		SessionId: 1,
		ReadArgs:  []*vaccelpb.Arg{{Buf: []byte("small")}},
	}))
	// Then a fragmented arg begins, spanning two more Feed calls.
	require.NoError(t, r.Feed(&vaccelpb.GenopRequest{
		SessionId: 1,
		ReadArgs:  []*vaccelpb.Arg{{Buf: []byte("AAAA"), Parts: 2, PartNo: 1}},
	}))
	require.NoError(t, r.Feed(&vaccelpb.GenopRequest{
		SessionId: 1,
		ReadArgs:  []*vaccelpb.Arg{{Buf: []byte("BBBB"), Parts: 2, PartNo: 2}},
	}))

	req, err := r.Finish()
	require.NoError(t, err)
	require.Len(t, req.GetReadArgs(), 2)
	assert.Equal(t, []byte("small"), req.GetReadArgs()[0].GetBuf())
	assert.Equal(t, []byte("AAAABBBB"), req.GetReadArgs()[1].GetBuf())
	assert.Equal(t, uint32(8), req.GetReadArgs()[1].GetSize())
}

func TestReassemblerRejectsSessionChange(t *testing.T) {
	r := NewReassembler()
	require.NoError(t, r.Feed(&vaccelpb.GenopRequest{SessionId: 1}))
	err := r.Feed(&vaccelpb.GenopRequest{SessionId: 2})
	assert.Error(t, err)
}

func TestReassemblerRejectsOutOfOrderFragment(t *testing.T) {
	r := NewReassembler()
	err := r.Feed(&vaccelpb.GenopRequest{
		SessionId: 1,
		ReadArgs:  []*vaccelpb.Arg{{Buf: []byte("x"), Parts: 2, PartNo: 2}},
	})
	assert.Error(t, err)
}

func TestReassemblerFinishWithIncompleteFragmentErrors(t *testing.T) {
	r := NewReassembler()
	require.NoError(t, r.Feed(&vaccelpb.GenopRequest{
		SessionId: 1,
		WriteArgs: []*vaccelpb.Arg{{Buf: []byte("x"), Parts: 2, PartNo: 1}},
	}))
	_, err := r.Finish()
	assert.Error(t, err)
}
