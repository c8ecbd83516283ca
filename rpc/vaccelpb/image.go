package vaccelpb

import "github.com/golang/protobuf/proto"

type ImageClassificationRequest struct {
	SessionId            int64  `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Image                []byte `protobuf:"bytes,2,opt,name=image,proto3" json:"image,omitempty"`
	XXX_unrecognized     []byte `json:"-"`
}

func (m *ImageClassificationRequest) Reset()         { *m = ImageClassificationRequest{} }
func (m *ImageClassificationRequest) String() string { return proto.CompactTextString(m) }
func (*ImageClassificationRequest) ProtoMessage()    {}

func (m *ImageClassificationRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func (m *ImageClassificationRequest) GetImage() []byte {
	if m != nil {
		return m.Image
	}
	return nil
}

type ImageClassificationResponse struct {
	// Types that are valid to be assigned to Result:
	//	*ImageClassificationResponse_Tags
	//	*ImageClassificationResponse_Error
	Result           isImageClassificationResponse_Result `protobuf_oneof:"result"`
	XXX_unrecognized []byte                                `json:"-"`
}

func (m *ImageClassificationResponse) Reset()         { *m = ImageClassificationResponse{} }
func (m *ImageClassificationResponse) String() string { return proto.CompactTextString(m) }
func (*ImageClassificationResponse) ProtoMessage()    {}

type isImageClassificationResponse_Result interface {
	isImageClassificationResponse_Result()
}

type ImageClassificationResponse_Tags struct {
	Tags []byte `protobuf:"bytes,1,opt,name=tags,proto3,oneof"`
}

type ImageClassificationResponse_Error struct {
	Error *VaccelError `protobuf:"bytes,2,opt,name=error,proto3,oneof"`
}

func (*ImageClassificationResponse_Tags) isImageClassificationResponse_Result()  {}
func (*ImageClassificationResponse_Error) isImageClassificationResponse_Result() {}

func (m *ImageClassificationResponse) GetResult() isImageClassificationResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *ImageClassificationResponse) GetTags() []byte {
	if x, ok := m.GetResult().(*ImageClassificationResponse_Tags); ok {
		return x.Tags
	}
	return nil
}

func (m *ImageClassificationResponse) GetError() *VaccelError {
	if x, ok := m.GetResult().(*ImageClassificationResponse_Error); ok {
		return x.Error
	}
	return nil
}

func (m *ImageClassificationResponse) SetTags(tags []byte) {
	m.Result = &ImageClassificationResponse_Tags{Tags: tags}
}

func (m *ImageClassificationResponse) SetError(e *VaccelError) {
	m.Result = &ImageClassificationResponse_Error{Error: e}
}

func (m *ImageClassificationResponse) HasError() bool {
	_, ok := m.GetResult().(*ImageClassificationResponse_Error)
	return ok
}

func init() {
	proto.RegisterType((*ImageClassificationRequest)(nil), "vaccel.ImageClassificationRequest")
	proto.RegisterType((*ImageClassificationResponse)(nil), "vaccel.ImageClassificationResponse")
}
