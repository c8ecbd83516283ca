package vaccelpb

import "github.com/golang/protobuf/proto"

type CreateSessionRequest struct {
	Flags            uint32 `protobuf:"varint,1,opt,name=flags,proto3" json:"flags,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *CreateSessionRequest) Reset()         { *m = CreateSessionRequest{} }
func (m *CreateSessionRequest) String() string { return proto.CompactTextString(m) }
func (*CreateSessionRequest) ProtoMessage()    {}

func (m *CreateSessionRequest) GetFlags() uint32 {
	if m != nil {
		return m.Flags
	}
	return 0
}

type CreateSessionResponse struct {
	SessionId        int64  `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *CreateSessionResponse) Reset()         { *m = CreateSessionResponse{} }
func (m *CreateSessionResponse) String() string { return proto.CompactTextString(m) }
func (*CreateSessionResponse) ProtoMessage()    {}

func (m *CreateSessionResponse) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

type UpdateSessionRequest struct {
	SessionId        int64  `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Flags            uint32 `protobuf:"varint,2,opt,name=flags,proto3" json:"flags,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *UpdateSessionRequest) Reset()         { *m = UpdateSessionRequest{} }
func (m *UpdateSessionRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateSessionRequest) ProtoMessage()    {}

func (m *UpdateSessionRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func (m *UpdateSessionRequest) GetFlags() uint32 {
	if m != nil {
		return m.Flags
	}
	return 0
}

type DestroySessionRequest struct {
	SessionId        int64  `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *DestroySessionRequest) Reset()         { *m = DestroySessionRequest{} }
func (m *DestroySessionRequest) String() string { return proto.CompactTextString(m) }
func (*DestroySessionRequest) ProtoMessage()    {}

func (m *DestroySessionRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func init() {
	proto.RegisterType((*CreateSessionRequest)(nil), "vaccel.CreateSessionRequest")
	proto.RegisterType((*CreateSessionResponse)(nil), "vaccel.CreateSessionResponse")
	proto.RegisterType((*UpdateSessionRequest)(nil), "vaccel.UpdateSessionRequest")
	proto.RegisterType((*DestroySessionRequest)(nil), "vaccel.DestroySessionRequest")
}
