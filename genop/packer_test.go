package genop

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
)

func TestPackerSmallArgsStayWhole(t *testing.T) {
	p := NewPacker(3)
	reqs := p.Pack(
		[]*vaccelpb.Arg{{Buf: []byte("abc")}},
		[]*vaccelpb.Arg{{Buf: []byte("xyz")}},
	)
	require.Len(t, reqs, 1)
	assert.Equal(t, []byte("abc"), reqs[0].GetReadArgs()[0].GetBuf())
	assert.Equal(t, uint32(0), reqs[0].GetReadArgs()[0].GetParts())
}

func TestPackerLargeArgSplitsAndRoundTrips(t *testing.T) {
	big := bytes.Repeat([]byte("z"), vaccelpb.MaxReqLen+10)
	p := NewPacker(9)
	reqs := p.Pack([]*vaccelpb.Arg{{Buf: big}}, nil)
	require.Len(t, reqs, 2)

	for _, req := range reqs {
		assert.LessOrEqual(t, len(req.GetReadArgs()[0].GetBuf()), maxFragmentPayload)
	}

	r := NewReassembler()
	for _, req := range reqs {
		require.NoError(t, r.Feed(req))
	}
	out, err := r.Finish()
	require.NoError(t, err)
	require.Len(t, out.GetReadArgs(), 1)
	assert.Equal(t, big, out.GetReadArgs()[0].GetBuf())
}

func TestPackerFragmentSizeLeavesRoomForArgHeader(t *testing.T) {
	const tenMiB = 10 * 1024 * 1024
	big := bytes.Repeat([]byte("z"), tenMiB)
	p := NewPacker(1)
	reqs := p.Pack([]*vaccelpb.Arg{{Buf: big}}, nil)
	require.Len(t, reqs, 3)

	sizes := make([]int, len(reqs))
	for i, req := range reqs {
		sizes[i] = len(req.GetReadArgs()[0].GetBuf())
		assert.LessOrEqual(t, sizes[i], vaccelpb.MaxReqLen-argHeaderSize)
	}
	assert.Equal(t, []int{4_194_272, 4_194_272, tenMiB - 2*4_194_272}, sizes)
}

func TestPackerEmptyArgsYieldsOneEmptyRequest(t *testing.T) {
	p := NewPacker(1)
	reqs := p.Pack(nil, nil)
	require.Len(t, reqs, 1)
	assert.Empty(t, reqs[0].GetReadArgs())
	assert.Empty(t, reqs[0].GetWriteArgs())
}
