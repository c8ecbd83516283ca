// Package genop implements the client-streaming Genop wire protocol: a
// GenopRequest can carry Args split into Parts fragments when an
// argument's buffer would exceed MaxReqLen, and the receiving side
// reassembles fragments back into whole arguments before dispatching the
// operation to the native runtime.
package genop

import (
	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
	"github.com/nubificus/vaccel-rpc-go/vaccelerr"
)

// Reassembler accumulates GenopRequest fragments sent over GenopStream
// into a single logical GenopRequest. It holds at most one in-progress
// fragmented argument per side (read/write) at a time, matching the
// client stub's own one-at-a-time chunking.
type Reassembler struct {
	sessionID int64
	hasSession bool

	readArgs  []*vaccelpb.Arg
	writeArgs []*vaccelpb.Arg

	readAccum  *vaccelpb.Arg
	writeAccum *vaccelpb.Arg
}

// NewReassembler returns an empty Reassembler.
func NewReassembler() *Reassembler {
	return &Reassembler{}
}

// Feed folds one GenopRequest fragment into the reassembler's state.
// Every fragment in a stream must carry the same session id.
func (r *Reassembler) Feed(req *vaccelpb.GenopRequest) error {
	if !r.hasSession {
		r.sessionID = req.GetSessionId()
		r.hasSession = true
	} else if req.GetSessionId() != r.sessionID {
		return vaccelerr.NewProtocolError("genop stream changed session id mid-stream: %d -> %d", r.sessionID, req.GetSessionId())
	}

	for _, a := range req.GetReadArgs() {
		done, accum, err := feedArg(r.readAccum, a)
		if err != nil {
			return err
		}
		r.readAccum = accum
		if done != nil {
			r.readArgs = append(r.readArgs, done)
		}
	}
	for _, a := range req.GetWriteArgs() {
		done, accum, err := feedArg(r.writeAccum, a)
		if err != nil {
			return err
		}
		r.writeAccum = accum
		if done != nil {
			r.writeArgs = append(r.writeArgs, done)
		}
	}
	return nil
}

// feedArg folds one wire Arg into accum, the in-progress fragmented
// argument for its side (nil if none is in progress). It returns the
// completed argument once the final fragment (part_no == parts) has
// arrived, or nil while reassembly is still in progress. A non-fragmented
// Arg (Parts == 0) is returned completed immediately.
func feedArg(accum *vaccelpb.Arg, a *vaccelpb.Arg) (done *vaccelpb.Arg, next *vaccelpb.Arg, err error) {
	if a.GetParts() == 0 {
		return a, accum, nil
	}

	if accum == nil {
		if a.GetPartNo() != 1 {
			return nil, nil, vaccelerr.NewProtocolError("genop fragment stream must start at part_no 1, got %d", a.GetPartNo())
		}
		accum = &vaccelpb.Arg{
			Argtype: a.GetArgtype(),
			Parts:   a.GetParts(),
			PartNo:  a.GetPartNo(),
			Buf:     append([]byte(nil), a.GetBuf()...),
		}
	} else {
		if a.GetPartNo() != accum.GetPartNo()+1 {
			return nil, nil, vaccelerr.NewProtocolError("genop fragment out of order: expected part_no %d, got %d", accum.GetPartNo()+1, a.GetPartNo())
		}
		accum.PartNo = a.GetPartNo()
		accum.Buf = append(accum.Buf, a.GetBuf()...)
	}

	if accum.PartNo < accum.Parts {
		return nil, accum, nil
	}
	accum.Size = uint32(len(accum.Buf))
	return accum, nil, nil
}

// Finish returns the reassembled GenopRequest. It is an error to call
// Finish while a fragmented argument is still incomplete.
func (r *Reassembler) Finish() (*vaccelpb.GenopRequest, error) {
	if r.readAccum != nil || r.writeAccum != nil {
		return nil, vaccelerr.NewProtocolError("genop stream closed with an incomplete fragmented argument")
	}
	return &vaccelpb.GenopRequest{
		SessionId: r.sessionID,
		ReadArgs:  r.readArgs,
		WriteArgs: r.writeArgs,
	}, nil
}
