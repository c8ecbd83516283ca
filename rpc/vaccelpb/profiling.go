package vaccelpb

import "github.com/golang/protobuf/proto"

type ProfilingRequest struct {
	SessionId        int64  `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *ProfilingRequest) Reset()         { *m = ProfilingRequest{} }
func (m *ProfilingRequest) String() string { return proto.CompactTextString(m) }
func (*ProfilingRequest) ProtoMessage()    {}

func (m *ProfilingRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

type ProfilingResponse struct {
	Regions          []*ProfRegion `protobuf:"bytes,1,rep,name=regions,proto3" json:"regions,omitempty"`
	XXX_unrecognized []byte        `json:"-"`
}

func (m *ProfilingResponse) Reset()         { *m = ProfilingResponse{} }
func (m *ProfilingResponse) String() string { return proto.CompactTextString(m) }
func (*ProfilingResponse) ProtoMessage()    {}

func (m *ProfilingResponse) GetRegions() []*ProfRegion {
	if m != nil {
		return m.Regions
	}
	return nil
}

func init() {
	proto.RegisterType((*ProfilingRequest)(nil), "vaccel.ProfilingRequest")
	proto.RegisterType((*ProfilingResponse)(nil), "vaccel.ProfilingResponse")
}
