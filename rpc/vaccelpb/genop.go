package vaccelpb

import "github.com/golang/protobuf/proto"

// MaxReqLen bounds the size of a single genop wire fragment. Larger
// argument buffers are split across multiple Arg fragments sharing the
// same logical position, reassembled by the receiving side.
const MaxReqLen = 4_194_304

type GenopRequest struct {
	SessionId        int64  `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ReadArgs         []*Arg `protobuf:"bytes,2,rep,name=read_args,json=readArgs,proto3" json:"read_args,omitempty"`
	WriteArgs        []*Arg `protobuf:"bytes,3,rep,name=write_args,json=writeArgs,proto3" json:"write_args,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *GenopRequest) Reset()         { *m = GenopRequest{} }
func (m *GenopRequest) String() string { return proto.CompactTextString(m) }
func (*GenopRequest) ProtoMessage()    {}

func (m *GenopRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func (m *GenopRequest) GetReadArgs() []*Arg {
	if m != nil {
		return m.ReadArgs
	}
	return nil
}

func (m *GenopRequest) GetWriteArgs() []*Arg {
	if m != nil {
		return m.WriteArgs
	}
	return nil
}

type GenopResult struct {
	WriteArgs        []*Arg `protobuf:"bytes,1,rep,name=write_args,json=writeArgs,proto3" json:"write_args,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *GenopResult) Reset()         { *m = GenopResult{} }
func (m *GenopResult) String() string { return proto.CompactTextString(m) }
func (*GenopResult) ProtoMessage()    {}

func (m *GenopResult) GetWriteArgs() []*Arg {
	if m != nil {
		return m.WriteArgs
	}
	return nil
}

type GenopResponse struct {
	// Types that are valid to be assigned to Result:
	//	*GenopResponse_Result
	//	*GenopResponse_Error
	Result           isGenopResponse_Result `protobuf_oneof:"result"`
	XXX_unrecognized []byte                 `json:"-"`
}

func (m *GenopResponse) Reset()         { *m = GenopResponse{} }
func (m *GenopResponse) String() string { return proto.CompactTextString(m) }
func (*GenopResponse) ProtoMessage()    {}

type isGenopResponse_Result interface {
	isGenopResponse_Result()
}

type GenopResponse_Result struct {
	Result *GenopResult `protobuf:"bytes,1,opt,name=result,proto3,oneof"`
}

type GenopResponse_Error struct {
	Error *VaccelError `protobuf:"bytes,2,opt,name=error,proto3,oneof"`
}

func (*GenopResponse_Result) isGenopResponse_Result() {}
func (*GenopResponse_Error) isGenopResponse_Result()  {}

func (m *GenopResponse) GetResult() isGenopResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *GenopResponse) GetGenopResult() *GenopResult {
	if x, ok := m.GetResult().(*GenopResponse_Result); ok {
		return x.Result
	}
	return nil
}

func (m *GenopResponse) GetError() *VaccelError {
	if x, ok := m.GetResult().(*GenopResponse_Error); ok {
		return x.Error
	}
	return nil
}

func (m *GenopResponse) SetGenopResult(r *GenopResult) {
	m.Result = &GenopResponse_Result{Result: r}
}

func (m *GenopResponse) SetError(e *VaccelError) {
	m.Result = &GenopResponse_Error{Error: e}
}

func (m *GenopResponse) HasError() bool {
	_, ok := m.GetResult().(*GenopResponse_Error)
	return ok
}

func init() {
	proto.RegisterType((*GenopRequest)(nil), "vaccel.GenopRequest")
	proto.RegisterType((*GenopResult)(nil), "vaccel.GenopResult")
	proto.RegisterType((*GenopResponse)(nil), "vaccel.GenopResponse")
}
