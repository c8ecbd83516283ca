package vaccelpb

import "github.com/golang/protobuf/proto"

type RegisterResourceRequest struct {
	SessionId            int64        `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ResourceType         ResourceType `protobuf:"varint,2,opt,name=resource_type,json=resourceType,proto3,enum=vaccel.ResourceType" json:"resource_type,omitempty"`
	Paths                []string     `protobuf:"bytes,3,rep,name=paths,proto3" json:"paths,omitempty"`
	Files                []*File      `protobuf:"bytes,4,rep,name=files,proto3" json:"files,omitempty"`
	XXX_unrecognized     []byte       `json:"-"`
}

func (m *RegisterResourceRequest) Reset()         { *m = RegisterResourceRequest{} }
func (m *RegisterResourceRequest) String() string { return proto.CompactTextString(m) }
func (*RegisterResourceRequest) ProtoMessage()    {}

func (m *RegisterResourceRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func (m *RegisterResourceRequest) GetResourceType() ResourceType {
	if m != nil {
		return m.ResourceType
	}
	return ResourceType_RESOURCE_TYPE_UNSPECIFIED
}

func (m *RegisterResourceRequest) GetPaths() []string {
	if m != nil {
		return m.Paths
	}
	return nil
}

func (m *RegisterResourceRequest) GetFiles() []*File {
	if m != nil {
		return m.Files
	}
	return nil
}

type RegisterResourceResponse struct {
	// Types that are valid to be assigned to Result:
	//	*RegisterResourceResponse_ResourceId
	//	*RegisterResourceResponse_Error
	Result               isRegisterResourceResponse_Result `protobuf_oneof:"result"`
	XXX_unrecognized     []byte                             `json:"-"`
}

func (m *RegisterResourceResponse) Reset()         { *m = RegisterResourceResponse{} }
func (m *RegisterResourceResponse) String() string { return proto.CompactTextString(m) }
func (*RegisterResourceResponse) ProtoMessage()    {}

type isRegisterResourceResponse_Result interface {
	isRegisterResourceResponse_Result()
}

type RegisterResourceResponse_ResourceId struct {
	ResourceId int64 `protobuf:"varint,1,opt,name=resource_id,json=resourceId,proto3,oneof"`
}

type RegisterResourceResponse_Error struct {
	Error *VaccelError `protobuf:"bytes,2,opt,name=error,proto3,oneof"`
}

func (*RegisterResourceResponse_ResourceId) isRegisterResourceResponse_Result() {}
func (*RegisterResourceResponse_Error) isRegisterResourceResponse_Result()      {}

func (m *RegisterResourceResponse) GetResult() isRegisterResourceResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *RegisterResourceResponse) GetResourceId() int64 {
	if x, ok := m.GetResult().(*RegisterResourceResponse_ResourceId); ok {
		return x.ResourceId
	}
	return 0
}

func (m *RegisterResourceResponse) GetError() *VaccelError {
	if x, ok := m.GetResult().(*RegisterResourceResponse_Error); ok {
		return x.Error
	}
	return nil
}

func (m *RegisterResourceResponse) SetResourceId(id int64) {
	m.Result = &RegisterResourceResponse_ResourceId{ResourceId: id}
}

func (m *RegisterResourceResponse) SetError(e *VaccelError) {
	m.Result = &RegisterResourceResponse_Error{Error: e}
}

func (m *RegisterResourceResponse) HasError() bool {
	_, ok := m.GetResult().(*RegisterResourceResponse_Error)
	return ok
}

type UnregisterResourceRequest struct {
	ResourceId           int64  `protobuf:"varint,1,opt,name=resource_id,json=resourceId,proto3" json:"resource_id,omitempty"`
	SessionId            int64  `protobuf:"varint,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	XXX_unrecognized     []byte `json:"-"`
}

func (m *UnregisterResourceRequest) Reset()         { *m = UnregisterResourceRequest{} }
func (m *UnregisterResourceRequest) String() string { return proto.CompactTextString(m) }
func (*UnregisterResourceRequest) ProtoMessage()    {}

func (m *UnregisterResourceRequest) GetResourceId() int64 {
	if m != nil {
		return m.ResourceId
	}
	return 0
}

func (m *UnregisterResourceRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func init() {
	proto.RegisterType((*RegisterResourceRequest)(nil), "vaccel.RegisterResourceRequest")
	proto.RegisterType((*RegisterResourceResponse)(nil), "vaccel.RegisterResourceResponse")
	proto.RegisterType((*UnregisterResourceRequest)(nil), "vaccel.UnregisterResourceRequest")
}
