package vaccelpb

import "github.com/golang/protobuf/proto"

type TensorflowLiteModelLoadRequest struct {
	SessionId        int64  `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ResourceId       int64  `protobuf:"varint,2,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *TensorflowLiteModelLoadRequest) Reset()         { *m = TensorflowLiteModelLoadRequest{} }
func (m *TensorflowLiteModelLoadRequest) String() string { return proto.CompactTextString(m) }
func (*TensorflowLiteModelLoadRequest) ProtoMessage()    {}

func (m *TensorflowLiteModelLoadRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func (m *TensorflowLiteModelLoadRequest) GetResourceId() int64 {
	if m != nil {
		return m.ResourceId
	}
	return 0
}

type TensorflowLiteModelLoadResponse struct {
	// Types that are valid to be assigned to Result:
	//	*TensorflowLiteModelLoadResponse_Success
	//	*TensorflowLiteModelLoadResponse_Error
	Result           isTensorflowLiteModelLoadResponse_Result `protobuf_oneof:"result"`
	XXX_unrecognized []byte                                    `json:"-"`
}

func (m *TensorflowLiteModelLoadResponse) Reset()         { *m = TensorflowLiteModelLoadResponse{} }
func (m *TensorflowLiteModelLoadResponse) String() string { return proto.CompactTextString(m) }
func (*TensorflowLiteModelLoadResponse) ProtoMessage()    {}

type isTensorflowLiteModelLoadResponse_Result interface {
	isTensorflowLiteModelLoadResponse_Result()
}

type TensorflowLiteModelLoadResponse_Success struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3,oneof"`
}

type TensorflowLiteModelLoadResponse_Error struct {
	Error *VaccelError `protobuf:"bytes,2,opt,name=error,proto3,oneof"`
}

func (*TensorflowLiteModelLoadResponse_Success) isTensorflowLiteModelLoadResponse_Result() {}
func (*TensorflowLiteModelLoadResponse_Error) isTensorflowLiteModelLoadResponse_Result()   {}

func (m *TensorflowLiteModelLoadResponse) GetResult() isTensorflowLiteModelLoadResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *TensorflowLiteModelLoadResponse) GetSuccess() bool {
	if x, ok := m.GetResult().(*TensorflowLiteModelLoadResponse_Success); ok {
		return x.Success
	}
	return false
}

func (m *TensorflowLiteModelLoadResponse) GetError() *VaccelError {
	if x, ok := m.GetResult().(*TensorflowLiteModelLoadResponse_Error); ok {
		return x.Error
	}
	return nil
}

func (m *TensorflowLiteModelLoadResponse) SetSuccess(ok bool) {
	m.Result = &TensorflowLiteModelLoadResponse_Success{Success: ok}
}

func (m *TensorflowLiteModelLoadResponse) SetError(e *VaccelError) {
	m.Result = &TensorflowLiteModelLoadResponse_Error{Error: e}
}

func (m *TensorflowLiteModelLoadResponse) HasError() bool {
	_, ok := m.GetResult().(*TensorflowLiteModelLoadResponse_Error)
	return ok
}

type TensorflowLiteModelUnloadRequest struct {
	SessionId        int64  `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ResourceId       int64  `protobuf:"varint,2,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *TensorflowLiteModelUnloadRequest) Reset()         { *m = TensorflowLiteModelUnloadRequest{} }
func (m *TensorflowLiteModelUnloadRequest) String() string { return proto.CompactTextString(m) }
func (*TensorflowLiteModelUnloadRequest) ProtoMessage()    {}

func (m *TensorflowLiteModelUnloadRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func (m *TensorflowLiteModelUnloadRequest) GetResourceId() int64 {
	if m != nil {
		return m.ResourceId
	}
	return 0
}

type TensorflowLiteModelUnloadResponse struct {
	// Types that are valid to be assigned to Result:
	//	*TensorflowLiteModelUnloadResponse_Success
	//	*TensorflowLiteModelUnloadResponse_Error
	Result           isTensorflowLiteModelUnloadResponse_Result `protobuf_oneof:"result"`
	XXX_unrecognized []byte                                      `json:"-"`
}

func (m *TensorflowLiteModelUnloadResponse) Reset()         { *m = TensorflowLiteModelUnloadResponse{} }
func (m *TensorflowLiteModelUnloadResponse) String() string { return proto.CompactTextString(m) }
func (*TensorflowLiteModelUnloadResponse) ProtoMessage()    {}

type isTensorflowLiteModelUnloadResponse_Result interface {
	isTensorflowLiteModelUnloadResponse_Result()
}

type TensorflowLiteModelUnloadResponse_Success struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3,oneof"`
}

type TensorflowLiteModelUnloadResponse_Error struct {
	Error *VaccelError `protobuf:"bytes,2,opt,name=error,proto3,oneof"`
}

func (*TensorflowLiteModelUnloadResponse_Success) isTensorflowLiteModelUnloadResponse_Result() {}
func (*TensorflowLiteModelUnloadResponse_Error) isTensorflowLiteModelUnloadResponse_Result()   {}

func (m *TensorflowLiteModelUnloadResponse) GetResult() isTensorflowLiteModelUnloadResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *TensorflowLiteModelUnloadResponse) GetSuccess() bool {
	if x, ok := m.GetResult().(*TensorflowLiteModelUnloadResponse_Success); ok {
		return x.Success
	}
	return false
}

func (m *TensorflowLiteModelUnloadResponse) GetError() *VaccelError {
	if x, ok := m.GetResult().(*TensorflowLiteModelUnloadResponse_Error); ok {
		return x.Error
	}
	return nil
}

func (m *TensorflowLiteModelUnloadResponse) SetSuccess(ok bool) {
	m.Result = &TensorflowLiteModelUnloadResponse_Success{Success: ok}
}

func (m *TensorflowLiteModelUnloadResponse) SetError(e *VaccelError) {
	m.Result = &TensorflowLiteModelUnloadResponse_Error{Error: e}
}

func (m *TensorflowLiteModelUnloadResponse) HasError() bool {
	_, ok := m.GetResult().(*TensorflowLiteModelUnloadResponse_Error)
	return ok
}

type TensorflowLiteModelRunRequest struct {
	SessionId        int64           `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ResourceId       int64           `protobuf:"varint,2,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	InTensors        []*TFLiteTensor `protobuf:"bytes,3,rep,name=in_tensors,json=inTensors,proto3" json:"in_tensors,omitempty"`
	NrOutTensors     int32           `protobuf:"varint,4,opt,name=nr_outputs,json=nrOutputs,proto3" json:"nr_outputs,omitempty"`
	XXX_unrecognized []byte          `json:"-"`
}

func (m *TensorflowLiteModelRunRequest) Reset()         { *m = TensorflowLiteModelRunRequest{} }
func (m *TensorflowLiteModelRunRequest) String() string { return proto.CompactTextString(m) }
func (*TensorflowLiteModelRunRequest) ProtoMessage()    {}

func (m *TensorflowLiteModelRunRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func (m *TensorflowLiteModelRunRequest) GetResourceId() int64 {
	if m != nil {
		return m.ResourceId
	}
	return 0
}

func (m *TensorflowLiteModelRunRequest) GetInTensors() []*TFLiteTensor {
	if m != nil {
		return m.InTensors
	}
	return nil
}

func (m *TensorflowLiteModelRunRequest) GetNrOutTensors() int32 {
	if m != nil {
		return m.NrOutTensors
	}
	return 0
}

type TFLiteModelRunResult struct {
	OutTensors       []*TFLiteTensor `protobuf:"bytes,1,rep,name=out_tensors,json=outTensors,proto3" json:"out_tensors,omitempty"`
	XXX_unrecognized []byte          `json:"-"`
}

func (m *TFLiteModelRunResult) Reset()         { *m = TFLiteModelRunResult{} }
func (m *TFLiteModelRunResult) String() string { return proto.CompactTextString(m) }
func (*TFLiteModelRunResult) ProtoMessage()    {}

func (m *TFLiteModelRunResult) GetOutTensors() []*TFLiteTensor {
	if m != nil {
		return m.OutTensors
	}
	return nil
}

type TensorflowLiteModelRunResponse struct {
	// Types that are valid to be assigned to Result:
	//	*TensorflowLiteModelRunResponse_Result
	//	*TensorflowLiteModelRunResponse_Error
	Result           isTensorflowLiteModelRunResponse_Result `protobuf_oneof:"result"`
	XXX_unrecognized []byte                                   `json:"-"`
}

func (m *TensorflowLiteModelRunResponse) Reset()         { *m = TensorflowLiteModelRunResponse{} }
func (m *TensorflowLiteModelRunResponse) String() string { return proto.CompactTextString(m) }
func (*TensorflowLiteModelRunResponse) ProtoMessage()    {}

type isTensorflowLiteModelRunResponse_Result interface {
	isTensorflowLiteModelRunResponse_Result()
}

type TensorflowLiteModelRunResponse_Result struct {
	Result *TFLiteModelRunResult `protobuf:"bytes,1,opt,name=result,proto3,oneof"`
}

type TensorflowLiteModelRunResponse_Error struct {
	Error *VaccelError `protobuf:"bytes,2,opt,name=error,proto3,oneof"`
}

func (*TensorflowLiteModelRunResponse_Result) isTensorflowLiteModelRunResponse_Result() {}
func (*TensorflowLiteModelRunResponse_Error) isTensorflowLiteModelRunResponse_Result()  {}

func (m *TensorflowLiteModelRunResponse) GetResult() isTensorflowLiteModelRunResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *TensorflowLiteModelRunResponse) GetRunResult() *TFLiteModelRunResult {
	if x, ok := m.GetResult().(*TensorflowLiteModelRunResponse_Result); ok {
		return x.Result
	}
	return nil
}

func (m *TensorflowLiteModelRunResponse) GetError() *VaccelError {
	if x, ok := m.GetResult().(*TensorflowLiteModelRunResponse_Error); ok {
		return x.Error
	}
	return nil
}

func (m *TensorflowLiteModelRunResponse) SetRunResult(r *TFLiteModelRunResult) {
	m.Result = &TensorflowLiteModelRunResponse_Result{Result: r}
}

func (m *TensorflowLiteModelRunResponse) SetError(e *VaccelError) {
	m.Result = &TensorflowLiteModelRunResponse_Error{Error: e}
}

func (m *TensorflowLiteModelRunResponse) HasError() bool {
	_, ok := m.GetResult().(*TensorflowLiteModelRunResponse_Error)
	return ok
}

func init() {
	proto.RegisterType((*TensorflowLiteModelLoadRequest)(nil), "vaccel.TensorflowLiteModelLoadRequest")
	proto.RegisterType((*TensorflowLiteModelLoadResponse)(nil), "vaccel.TensorflowLiteModelLoadResponse")
	proto.RegisterType((*TensorflowLiteModelUnloadRequest)(nil), "vaccel.TensorflowLiteModelUnloadRequest")
	proto.RegisterType((*TensorflowLiteModelUnloadResponse)(nil), "vaccel.TensorflowLiteModelUnloadResponse")
	proto.RegisterType((*TensorflowLiteModelRunRequest)(nil), "vaccel.TensorflowLiteModelRunRequest")
	proto.RegisterType((*TFLiteModelRunResult)(nil), "vaccel.TFLiteModelRunResult")
	proto.RegisterType((*TensorflowLiteModelRunResponse)(nil), "vaccel.TensorflowLiteModelRunResponse")
}
