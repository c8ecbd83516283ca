package genop

import (
	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
)

// argHeaderSize is the wire overhead of an Arg's non-Buf fields
// (argtype, size, parts, part_no), subtracted from MaxReqLen so a
// fragment's serialized Arg message, not just its payload, stays within
// MaxReqLen.
const argHeaderSize = 32

// maxFragmentPayload is the largest Buf a single wire fragment may carry.
const maxFragmentPayload = vaccelpb.MaxReqLen - argHeaderSize

// Packer splits a GenopRequest's arguments into a sequence of
// GenopRequest fragments no single one of which exceeds MaxReqLen on the
// wire, suitable for sending one by one over GenopStream. Arguments
// smaller than maxFragmentPayload are sent whole, with Parts left at
// zero.
type Packer struct {
	sessionID int64
}

// NewPacker returns a Packer for the given session.
func NewPacker(sessionID int64) *Packer {
	return &Packer{sessionID: sessionID}
}

// Pack splits readArgs and writeArgs into one GenopRequest fragment per
// call to the returned iterator-like slice. Each side is chunked
// independently; fragments interleave read before write per batch.
func (p *Packer) Pack(readArgs, writeArgs []*vaccelpb.Arg) []*vaccelpb.GenopRequest {
	var out []*vaccelpb.GenopRequest

	readChunks := chunkArgs(readArgs)
	writeChunks := chunkArgs(writeArgs)

	n := len(readChunks)
	if len(writeChunks) > n {
		n = len(writeChunks)
	}
	for i := 0; i < n; i++ {
		req := &vaccelpb.GenopRequest{SessionId: p.sessionID}
		if i < len(readChunks) {
			req.ReadArgs = []*vaccelpb.Arg{readChunks[i]}
		}
		if i < len(writeChunks) {
			req.WriteArgs = []*vaccelpb.Arg{writeChunks[i]}
		}
		out = append(out, req)
	}
	if len(out) == 0 {
		out = append(out, &vaccelpb.GenopRequest{SessionId: p.sessionID})
	}
	return out
}

// chunkArgs flattens args into a single ordered list of wire fragments:
// an Arg whose Buf fits within maxFragmentPayload passes through
// unfragmented, a larger one is split into ceil(len/maxFragmentPayload)
// fragments numbered from 1, each carrying the whole argument's size.
func chunkArgs(args []*vaccelpb.Arg) []*vaccelpb.Arg {
	var out []*vaccelpb.Arg
	for _, a := range args {
		buf := a.GetBuf()
		if len(buf) <= maxFragmentPayload {
			out = append(out, a)
			continue
		}
		parts := uint32((len(buf) + maxFragmentPayload - 1) / maxFragmentPayload)
		for i := uint32(0); i < parts; i++ {
			start := int(i) * maxFragmentPayload
			end := start + maxFragmentPayload
			if end > len(buf) {
				end = len(buf)
			}
			out = append(out, &vaccelpb.Arg{
				Buf:     buf[start:end],
				Size:    uint32(len(buf)),
				Argtype: a.GetArgtype(),
				Parts:   parts,
				PartNo:  i + 1,
			})
		}
	}
	return out
}
