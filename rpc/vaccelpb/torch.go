package vaccelpb

import "github.com/golang/protobuf/proto"

type TorchJitloadForwardRequest struct {
	SessionId        int64          `protobuf:"varint,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ResourceId       int64          `protobuf:"varint,2,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	RunOptions       []byte         `protobuf:"bytes,3,opt,name=run_options,json=runOptions,proto3" json:"run_options,omitempty"`
	InTensors        []*TorchTensor `protobuf:"bytes,4,rep,name=in_tensors,json=inTensors,proto3" json:"in_tensors,omitempty"`
	NrOutTensors     int32          `protobuf:"varint,5,opt,name=nr_outputs,json=nrOutputs,proto3" json:"nr_outputs,omitempty"`
	XXX_unrecognized []byte         `json:"-"`
}

func (m *TorchJitloadForwardRequest) Reset()         { *m = TorchJitloadForwardRequest{} }
func (m *TorchJitloadForwardRequest) String() string { return proto.CompactTextString(m) }
func (*TorchJitloadForwardRequest) ProtoMessage()    {}

func (m *TorchJitloadForwardRequest) GetSessionId() int64 {
	if m != nil {
		return m.SessionId
	}
	return 0
}

func (m *TorchJitloadForwardRequest) GetResourceId() int64 {
	if m != nil {
		return m.ResourceId
	}
	return 0
}

func (m *TorchJitloadForwardRequest) GetRunOptions() []byte {
	if m != nil {
		return m.RunOptions
	}
	return nil
}

func (m *TorchJitloadForwardRequest) GetInTensors() []*TorchTensor {
	if m != nil {
		return m.InTensors
	}
	return nil
}

func (m *TorchJitloadForwardRequest) GetNrOutTensors() int32 {
	if m != nil {
		return m.NrOutTensors
	}
	return 0
}

type TorchJitloadForwardResult struct {
	OutTensors       []*TorchTensor `protobuf:"bytes,1,rep,name=out_tensors,json=outTensors,proto3" json:"out_tensors,omitempty"`
	XXX_unrecognized []byte         `json:"-"`
}

func (m *TorchJitloadForwardResult) Reset()         { *m = TorchJitloadForwardResult{} }
func (m *TorchJitloadForwardResult) String() string { return proto.CompactTextString(m) }
func (*TorchJitloadForwardResult) ProtoMessage()    {}

func (m *TorchJitloadForwardResult) GetOutTensors() []*TorchTensor {
	if m != nil {
		return m.OutTensors
	}
	return nil
}

type TorchJitloadForwardResponse struct {
	// Types that are valid to be assigned to Result:
	//	*TorchJitloadForwardResponse_Result
	//	*TorchJitloadForwardResponse_Error
	Result           isTorchJitloadForwardResponse_Result `protobuf_oneof:"result"`
	XXX_unrecognized []byte                                `json:"-"`
}

func (m *TorchJitloadForwardResponse) Reset()         { *m = TorchJitloadForwardResponse{} }
func (m *TorchJitloadForwardResponse) String() string { return proto.CompactTextString(m) }
func (*TorchJitloadForwardResponse) ProtoMessage()    {}

type isTorchJitloadForwardResponse_Result interface {
	isTorchJitloadForwardResponse_Result()
}

type TorchJitloadForwardResponse_Result struct {
	Result *TorchJitloadForwardResult `protobuf:"bytes,1,opt,name=result,proto3,oneof"`
}

type TorchJitloadForwardResponse_Error struct {
	Error *VaccelError `protobuf:"bytes,2,opt,name=error,proto3,oneof"`
}

func (*TorchJitloadForwardResponse_Result) isTorchJitloadForwardResponse_Result() {}
func (*TorchJitloadForwardResponse_Error) isTorchJitloadForwardResponse_Result()  {}

func (m *TorchJitloadForwardResponse) GetResult() isTorchJitloadForwardResponse_Result {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *TorchJitloadForwardResponse) GetRunResult() *TorchJitloadForwardResult {
	if x, ok := m.GetResult().(*TorchJitloadForwardResponse_Result); ok {
		return x.Result
	}
	return nil
}

func (m *TorchJitloadForwardResponse) GetError() *VaccelError {
	if x, ok := m.GetResult().(*TorchJitloadForwardResponse_Error); ok {
		return x.Error
	}
	return nil
}

func (m *TorchJitloadForwardResponse) SetRunResult(r *TorchJitloadForwardResult) {
	m.Result = &TorchJitloadForwardResponse_Result{Result: r}
}

func (m *TorchJitloadForwardResponse) SetError(e *VaccelError) {
	m.Result = &TorchJitloadForwardResponse_Error{Error: e}
}

func (m *TorchJitloadForwardResponse) HasError() bool {
	_, ok := m.GetResult().(*TorchJitloadForwardResponse_Error)
	return ok
}

func init() {
	proto.RegisterType((*TorchJitloadForwardRequest)(nil), "vaccel.TorchJitloadForwardRequest")
	proto.RegisterType((*TorchJitloadForwardResult)(nil), "vaccel.TorchJitloadForwardResult")
	proto.RegisterType((*TorchJitloadForwardResponse)(nil), "vaccel.TorchJitloadForwardResponse")
}
