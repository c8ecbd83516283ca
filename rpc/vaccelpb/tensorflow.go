package vaccelpb

import "github.com/golang/protobuf/proto"

type TensorflowModelLoadRequest struct {
	SessionId            int64  `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ResourceId           int64  `protobuf:"varint,2,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	XXX_unrecognized     []byte `json:"-"`
}

func (m *TensorflowModelLoadRequest) Reset()         { *m = TensorflowModelLoadRequest{} }
func (m *TensorflowModelLoadRequest) String() string { return proto.CompactTextString(m) }
func (*TensorflowModelLoadRequest) ProtoMessage()    {}

func (m *TensorflowModelLoadRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func (m *TensorflowModelLoadRequest) GetResourceId() int64 {
	if m != nil {
		return m.ResourceId
	}
	return 0
}

type TensorflowModelLoadResponse struct {
	// Types that are valid to be assigned to Result:
	//	*TensorflowModelLoadResponse_Success
	//	*TensorflowModelLoadResponse_Error
	Result           isTensorflowModelLoadResponse_Result `protobuf_oneof:"result"`
	XXX_unrecognized []byte                                `json:"-"`
}

func (m *TensorflowModelLoadResponse) Reset()         { *m = TensorflowModelLoadResponse{} }
func (m *TensorflowModelLoadResponse) String() string { return proto.CompactTextString(m) }
func (*TensorflowModelLoadResponse) ProtoMessage()    {}

type isTensorflowModelLoadResponse_Result interface {
	isTensorflowModelLoadResponse_Result()
}

type TensorflowModelLoadResponse_Success struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3,oneof"`
}

type TensorflowModelLoadResponse_Error struct {
	Error *VaccelError `protobuf:"bytes,2,opt,name=error,proto3,oneof"`
}

func (*TensorflowModelLoadResponse_Success) isTensorflowModelLoadResponse_Result() {}
func (*TensorflowModelLoadResponse_Error) isTensorflowModelLoadResponse_Result()   {}

func (m *TensorflowModelLoadResponse) GetResult() isTensorflowModelLoadResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *TensorflowModelLoadResponse) GetSuccess() bool {
	if x, ok := m.GetResult().(*TensorflowModelLoadResponse_Success); ok {
		return x.Success
	}
	return false
}

func (m *TensorflowModelLoadResponse) GetError() *VaccelError {
	if x, ok := m.GetResult().(*TensorflowModelLoadResponse_Error); ok {
		return x.Error
	}
	return nil
}

func (m *TensorflowModelLoadResponse) SetSuccess(ok bool) {
	m.Result = &TensorflowModelLoadResponse_Success{Success: ok}
}

func (m *TensorflowModelLoadResponse) SetError(e *VaccelError) {
	m.Result = &TensorflowModelLoadResponse_Error{Error: e}
}

func (m *TensorflowModelLoadResponse) HasError() bool {
	_, ok := m.GetResult().(*TensorflowModelLoadResponse_Error)
	return ok
}

type TensorflowModelUnloadRequest struct {
	SessionId        int64  `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ResourceId       int64  `protobuf:"varint,2,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	XXX_unrecognized []byte `json:"-"`
}

func (m *TensorflowModelUnloadRequest) Reset()         { *m = TensorflowModelUnloadRequest{} }
func (m *TensorflowModelUnloadRequest) String() string { return proto.CompactTextString(m) }
func (*TensorflowModelUnloadRequest) ProtoMessage()    {}

func (m *TensorflowModelUnloadRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func (m *TensorflowModelUnloadRequest) GetResourceId() int64 {
	if m != nil {
		return m.ResourceId
	}
	return 0
}

type TensorflowModelUnloadResponse struct {
	// Types that are valid to be assigned to Result:
	//	*TensorflowModelUnloadResponse_Success
	//	*TensorflowModelUnloadResponse_Error
	Result           isTensorflowModelUnloadResponse_Result `protobuf_oneof:"result"`
	XXX_unrecognized []byte                                  `json:"-"`
}

func (m *TensorflowModelUnloadResponse) Reset()         { *m = TensorflowModelUnloadResponse{} }
func (m *TensorflowModelUnloadResponse) String() string { return proto.CompactTextString(m) }
func (*TensorflowModelUnloadResponse) ProtoMessage()    {}

type isTensorflowModelUnloadResponse_Result interface {
	isTensorflowModelUnloadResponse_Result()
}

type TensorflowModelUnloadResponse_Success struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3,oneof"`
}

type TensorflowModelUnloadResponse_Error struct {
	Error *VaccelError `protobuf:"bytes,2,opt,name=error,proto3,oneof"`
}

func (*TensorflowModelUnloadResponse_Success) isTensorflowModelUnloadResponse_Result() {}
func (*TensorflowModelUnloadResponse_Error) isTensorflowModelUnloadResponse_Result()   {}

func (m *TensorflowModelUnloadResponse) GetResult() isTensorflowModelUnloadResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *TensorflowModelUnloadResponse) GetSuccess() bool {
	if x, ok := m.GetResult().(*TensorflowModelUnloadResponse_Success); ok {
		return x.Success
	}
	return false
}

func (m *TensorflowModelUnloadResponse) GetError() *VaccelError {
	if x, ok := m.GetResult().(*TensorflowModelUnloadResponse_Error); ok {
		return x.Error
	}
	return nil
}

func (m *TensorflowModelUnloadResponse) SetSuccess(ok bool) {
	m.Result = &TensorflowModelUnloadResponse_Success{Success: ok}
}

func (m *TensorflowModelUnloadResponse) SetError(e *VaccelError) {
	m.Result = &TensorflowModelUnloadResponse_Error{Error: e}
}

func (m *TensorflowModelUnloadResponse) HasError() bool {
	_, ok := m.GetResult().(*TensorflowModelUnloadResponse_Error)
	return ok
}

type TensorflowModelRunRequest struct {
	SessionId        int64      `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ResourceId       int64      `protobuf:"varint,2,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	RunOptions       []byte     `protobuf:"bytes,3,opt,name=run_options,json=runOptions,proto3" json:"run_options,omitempty"`
	InNodes          []*TFNode  `protobuf:"bytes,4,rep,name=in_nodes,json=inNodes,proto3" json:"in_nodes,omitempty"`
	InTensors        []*TFTensor `protobuf:"bytes,5,rep,name=in_tensors,json=inTensors,proto3" json:"in_tensors,omitempty"`
	OutNodes         []*TFNode  `protobuf:"bytes,6,rep,name=out_nodes,json=outNodes,proto3" json:"out_nodes,omitempty"`
	XXX_unrecognized []byte     `json:"-"`
}

func (m *TensorflowModelRunRequest) Reset()         { *m = TensorflowModelRunRequest{} }
func (m *TensorflowModelRunRequest) String() string { return proto.CompactTextString(m) }
func (*TensorflowModelRunRequest) ProtoMessage()    {}

func (m *TensorflowModelRunRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func (m *TensorflowModelRunRequest) GetResourceId() int64 {
	if m != nil {
		return m.ResourceId
	}
	return 0
}

func (m *TensorflowModelRunRequest) GetRunOptions() []byte {
	if m != nil {
		return m.RunOptions
	}
	return nil
}

func (m *TensorflowModelRunRequest) GetInNodes() []*TFNode {
	if m != nil {
		return m.InNodes
	}
	return nil
}

func (m *TensorflowModelRunRequest) GetInTensors() []*TFTensor {
	if m != nil {
		return m.InTensors
	}
	return nil
}

func (m *TensorflowModelRunRequest) GetOutNodes() []*TFNode {
	if m != nil {
		return m.OutNodes
	}
	return nil
}

type TFModelRunResult struct {
	OutTensors       []*TFTensor `protobuf:"bytes,1,rep,name=out_tensors,json=outTensors,proto3" json:"out_tensors,omitempty"`
	XXX_unrecognized []byte      `json:"-"`
}

func (m *TFModelRunResult) Reset()         { *m = TFModelRunResult{} }
func (m *TFModelRunResult) String() string { return proto.CompactTextString(m) }
func (*TFModelRunResult) ProtoMessage()    {}

func (m *TFModelRunResult) GetOutTensors() []*TFTensor {
	if m != nil {
		return m.OutTensors
	}
	return nil
}

type TensorflowModelRunResponse struct {
	// Types that are valid to be assigned to Result:
	//	*TensorflowModelRunResponse_Result
	//	*TensorflowModelRunResponse_Error
	Result           isTensorflowModelRunResponse_Result `protobuf_oneof:"result"`
	XXX_unrecognized []byte                               `json:"-"`
}

func (m *TensorflowModelRunResponse) Reset()         { *m = TensorflowModelRunResponse{} }
func (m *TensorflowModelRunResponse) String() string { return proto.CompactTextString(m) }
func (*TensorflowModelRunResponse) ProtoMessage()    {}

type isTensorflowModelRunResponse_Result interface {
	isTensorflowModelRunResponse_Result()
}

type TensorflowModelRunResponse_Result struct {
	Result *TFModelRunResult `protobuf:"bytes,1,opt,name=result,proto3,oneof"`
}

type TensorflowModelRunResponse_Error struct {
	Error *VaccelError `protobuf:"bytes,2,opt,name=error,proto3,oneof"`
}

func (*TensorflowModelRunResponse_Result) isTensorflowModelRunResponse_Result() {}
func (*TensorflowModelRunResponse_Error) isTensorflowModelRunResponse_Result()  {}

func (m *TensorflowModelRunResponse) GetResult() isTensorflowModelRunResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *TensorflowModelRunResponse) GetRunResult() *TFModelRunResult {
	if x, ok := m.GetResult().(*TensorflowModelRunResponse_Result); ok {
		return x.Result
	}
	return nil
}

func (m *TensorflowModelRunResponse) GetError() *VaccelError {
	if x, ok := m.GetResult().(*TensorflowModelRunResponse_Error); ok {
		return x.Error
	}
	return nil
}

func (m *TensorflowModelRunResponse) SetRunResult(r *TFModelRunResult) {
	m.Result = &TensorflowModelRunResponse_Result{Result: r}
}

func (m *TensorflowModelRunResponse) SetError(e *VaccelError) {
	m.Result = &TensorflowModelRunResponse_Error{Error: e}
}

func (m *TensorflowModelRunResponse) HasError() bool {
	_, ok := m.GetResult().(*TensorflowModelRunResponse_Error)
	return ok
}

func init() {
	proto.RegisterType((*TensorflowModelLoadRequest)(nil), "vaccel.TensorflowModelLoadRequest")
	proto.RegisterType((*TensorflowModelLoadResponse)(nil), "vaccel.TensorflowModelLoadResponse")
	proto.RegisterType((*TensorflowModelUnloadRequest)(nil), "vaccel.TensorflowModelUnloadRequest")
	proto.RegisterType((*TensorflowModelUnloadResponse)(nil), "vaccel.TensorflowModelUnloadResponse")
	proto.RegisterType((*TensorflowModelRunRequest)(nil), "vaccel.TensorflowModelRunRequest")
	proto.RegisterType((*TFModelRunResult)(nil), "vaccel.TFModelRunResult")
	proto.RegisterType((*TensorflowModelRunResponse)(nil), "vaccel.TensorflowModelRunResponse")
}
