package vaccelpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RpcAgentClient is the client API for the RpcAgent service.
type RpcAgentClient interface {
	CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error)
	UpdateSession(ctx context.Context, in *UpdateSessionRequest, opts ...grpc.CallOption) (*Empty, error)
	DestroySession(ctx context.Context, in *DestroySessionRequest, opts ...grpc.CallOption) (*Empty, error)
	RegisterResource(ctx context.Context, in *RegisterResourceRequest, opts ...grpc.CallOption) (*RegisterResourceResponse, error)
	UnregisterResource(ctx context.Context, in *UnregisterResourceRequest, opts ...grpc.CallOption) (*Empty, error)
	ImageClassification(ctx context.Context, in *ImageClassificationRequest, opts ...grpc.CallOption) (*ImageClassificationResponse, error)
	TensorflowModelLoad(ctx context.Context, in *TensorflowModelLoadRequest, opts ...grpc.CallOption) (*TensorflowModelLoadResponse, error)
	TensorflowModelUnload(ctx context.Context, in *TensorflowModelUnloadRequest, opts ...grpc.CallOption) (*TensorflowModelUnloadResponse, error)
	TensorflowModelRun(ctx context.Context, in *TensorflowModelRunRequest, opts ...grpc.CallOption) (*TensorflowModelRunResponse, error)
	TensorflowLiteModelLoad(ctx context.Context, in *TensorflowLiteModelLoadRequest, opts ...grpc.CallOption) (*TensorflowLiteModelLoadResponse, error)
	TensorflowLiteModelUnload(ctx context.Context, in *TensorflowLiteModelUnloadRequest, opts ...grpc.CallOption) (*TensorflowLiteModelUnloadResponse, error)
	TensorflowLiteModelRun(ctx context.Context, in *TensorflowLiteModelRunRequest, opts ...grpc.CallOption) (*TensorflowLiteModelRunResponse, error)
	TorchJitloadForward(ctx context.Context, in *TorchJitloadForwardRequest, opts ...grpc.CallOption) (*TorchJitloadForwardResponse, error)
	Genop(ctx context.Context, in *GenopRequest, opts ...grpc.CallOption) (*GenopResponse, error)
	GenopStream(ctx context.Context, opts ...grpc.CallOption) (RpcAgent_GenopStreamClient, error)
	GetTimers(ctx context.Context, in *ProfilingRequest, opts ...grpc.CallOption) (*ProfilingResponse, error)
}

type rpcAgentClient struct {
	cc grpc.ClientConnInterface
}

// NewRpcAgentClient wraps a grpc.ClientConnInterface as an RpcAgentClient.
func NewRpcAgentClient(cc grpc.ClientConnInterface) RpcAgentClient {
	return &rpcAgentClient{cc}
}

func (c *rpcAgentClient) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error) {
	out := new(CreateSessionResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/CreateSession", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) UpdateSession(ctx context.Context, in *UpdateSessionRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/UpdateSession", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) DestroySession(ctx context.Context, in *DestroySessionRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/DestroySession", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) RegisterResource(ctx context.Context, in *RegisterResourceRequest, opts ...grpc.CallOption) (*RegisterResourceResponse, error) {
	out := new(RegisterResourceResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/RegisterResource", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) UnregisterResource(ctx context.Context, in *UnregisterResourceRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/UnregisterResource", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) ImageClassification(ctx context.Context, in *ImageClassificationRequest, opts ...grpc.CallOption) (*ImageClassificationResponse, error) {
	out := new(ImageClassificationResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/ImageClassification", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) TensorflowModelLoad(ctx context.Context, in *TensorflowModelLoadRequest, opts ...grpc.CallOption) (*TensorflowModelLoadResponse, error) {
	out := new(TensorflowModelLoadResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/TensorflowModelLoad", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) TensorflowModelUnload(ctx context.Context, in *TensorflowModelUnloadRequest, opts ...grpc.CallOption) (*TensorflowModelUnloadResponse, error) {
	out := new(TensorflowModelUnloadResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/TensorflowModelUnload", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) TensorflowModelRun(ctx context.Context, in *TensorflowModelRunRequest, opts ...grpc.CallOption) (*TensorflowModelRunResponse, error) {
	out := new(TensorflowModelRunResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/TensorflowModelRun", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) TensorflowLiteModelLoad(ctx context.Context, in *TensorflowLiteModelLoadRequest, opts ...grpc.CallOption) (*TensorflowLiteModelLoadResponse, error) {
	out := new(TensorflowLiteModelLoadResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/TensorflowLiteModelLoad", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) TensorflowLiteModelUnload(ctx context.Context, in *TensorflowLiteModelUnloadRequest, opts ...grpc.CallOption) (*TensorflowLiteModelUnloadResponse, error) {
	out := new(TensorflowLiteModelUnloadResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/TensorflowLiteModelUnload", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) TensorflowLiteModelRun(ctx context.Context, in *TensorflowLiteModelRunRequest, opts ...grpc.CallOption) (*TensorflowLiteModelRunResponse, error) {
	out := new(TensorflowLiteModelRunResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/TensorflowLiteModelRun", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) TorchJitloadForward(ctx context.Context, in *TorchJitloadForwardRequest, opts ...grpc.CallOption) (*TorchJitloadForwardResponse, error) {
	out := new(TorchJitloadForwardResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/TorchJitloadForward", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) Genop(ctx context.Context, in *GenopRequest, opts ...grpc.CallOption) (*GenopResponse, error) {
	out := new(GenopResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/Genop", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) GetTimers(ctx context.Context, in *ProfilingRequest, opts ...grpc.CallOption) (*ProfilingResponse, error) {
	out := new(ProfilingResponse)
	if err := c.cc.Invoke(ctx, "/vaccel.RpcAgent/GetTimers", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rpcAgentClient) GenopStream(ctx context.Context, opts ...grpc.CallOption) (RpcAgent_GenopStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &_RpcAgent_serviceDesc.Streams[0], "/vaccel.RpcAgent/GenopStream", opts...)
	if err != nil {
		return nil, err
	}
	return &rpcAgentGenopStreamClient{stream}, nil
}

// RpcAgent_GenopStreamClient is the client-streaming handle used by the
// client stub to send GenopRequest fragments and receive the single
// aggregated GenopResponse once the agent has reassembled all of them.
type RpcAgent_GenopStreamClient interface {
	Send(*GenopRequest) error
	CloseAndRecv() (*GenopResponse, error)
	grpc.ClientStream
}

type rpcAgentGenopStreamClient struct {
	grpc.ClientStream
}

func (x *rpcAgentGenopStreamClient) Send(m *GenopRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *rpcAgentGenopStreamClient) CloseAndRecv() (*GenopResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(GenopResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RpcAgentServer is the server API for the RpcAgent service.
type RpcAgentServer interface {
	CreateSession(context.Context, *CreateSessionRequest) (*CreateSessionResponse, error)
	UpdateSession(context.Context, *UpdateSessionRequest) (*Empty, error)
	DestroySession(context.Context, *DestroySessionRequest) (*Empty, error)
	RegisterResource(context.Context, *RegisterResourceRequest) (*RegisterResourceResponse, error)
	UnregisterResource(context.Context, *UnregisterResourceRequest) (*Empty, error)
	ImageClassification(context.Context, *ImageClassificationRequest) (*ImageClassificationResponse, error)
	TensorflowModelLoad(context.Context, *TensorflowModelLoadRequest) (*TensorflowModelLoadResponse, error)
	TensorflowModelUnload(context.Context, *TensorflowModelUnloadRequest) (*TensorflowModelUnloadResponse, error)
	TensorflowModelRun(context.Context, *TensorflowModelRunRequest) (*TensorflowModelRunResponse, error)
	TensorflowLiteModelLoad(context.Context, *TensorflowLiteModelLoadRequest) (*TensorflowLiteModelLoadResponse, error)
	TensorflowLiteModelUnload(context.Context, *TensorflowLiteModelUnloadRequest) (*TensorflowLiteModelUnloadResponse, error)
	TensorflowLiteModelRun(context.Context, *TensorflowLiteModelRunRequest) (*TensorflowLiteModelRunResponse, error)
	TorchJitloadForward(context.Context, *TorchJitloadForwardRequest) (*TorchJitloadForwardResponse, error)
	Genop(context.Context, *GenopRequest) (*GenopResponse, error)
	GenopStream(RpcAgent_GenopStreamServer) error
	GetTimers(context.Context, *ProfilingRequest) (*ProfilingResponse, error)
}

// UnimplementedRpcAgentServer can be embedded to satisfy RpcAgentServer
// for handlers that only implement a subset of the RPCs, matching the
// forward-compatibility convention grpc-go generated stubs use.
type UnimplementedRpcAgentServer struct{}

func (UnimplementedRpcAgentServer) CreateSession(context.Context, *CreateSessionRequest) (*CreateSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateSession not implemented")
}
func (UnimplementedRpcAgentServer) UpdateSession(context.Context, *UpdateSessionRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateSession not implemented")
}
func (UnimplementedRpcAgentServer) DestroySession(context.Context, *DestroySessionRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DestroySession not implemented")
}
func (UnimplementedRpcAgentServer) RegisterResource(context.Context, *RegisterResourceRequest) (*RegisterResourceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterResource not implemented")
}
func (UnimplementedRpcAgentServer) UnregisterResource(context.Context, *UnregisterResourceRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UnregisterResource not implemented")
}
func (UnimplementedRpcAgentServer) ImageClassification(context.Context, *ImageClassificationRequest) (*ImageClassificationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImageClassification not implemented")
}
func (UnimplementedRpcAgentServer) TensorflowModelLoad(context.Context, *TensorflowModelLoadRequest) (*TensorflowModelLoadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TensorflowModelLoad not implemented")
}
func (UnimplementedRpcAgentServer) TensorflowModelUnload(context.Context, *TensorflowModelUnloadRequest) (*TensorflowModelUnloadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TensorflowModelUnload not implemented")
}
func (UnimplementedRpcAgentServer) TensorflowModelRun(context.Context, *TensorflowModelRunRequest) (*TensorflowModelRunResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TensorflowModelRun not implemented")
}
func (UnimplementedRpcAgentServer) TensorflowLiteModelLoad(context.Context, *TensorflowLiteModelLoadRequest) (*TensorflowLiteModelLoadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TensorflowLiteModelLoad not implemented")
}
func (UnimplementedRpcAgentServer) TensorflowLiteModelUnload(context.Context, *TensorflowLiteModelUnloadRequest) (*TensorflowLiteModelUnloadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TensorflowLiteModelUnload not implemented")
}
func (UnimplementedRpcAgentServer) TensorflowLiteModelRun(context.Context, *TensorflowLiteModelRunRequest) (*TensorflowLiteModelRunResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TensorflowLiteModelRun not implemented")
}
func (UnimplementedRpcAgentServer) TorchJitloadForward(context.Context, *TorchJitloadForwardRequest) (*TorchJitloadForwardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TorchJitloadForward not implemented")
}
func (UnimplementedRpcAgentServer) Genop(context.Context, *GenopRequest) (*GenopResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Genop not implemented")
}
func (UnimplementedRpcAgentServer) GenopStream(RpcAgent_GenopStreamServer) error {
	return status.Errorf(codes.Unimplemented, "method GenopStream not implemented")
}
func (UnimplementedRpcAgentServer) GetTimers(context.Context, *ProfilingRequest) (*ProfilingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTimers not implemented")
}

// RegisterRpcAgentServer registers srv on s under the RpcAgent service name.
func RegisterRpcAgentServer(s grpc.ServiceRegistrar, srv RpcAgentServer) {
	s.RegisterService(&_RpcAgent_serviceDesc, srv)
}

func _RpcAgent_CreateSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).CreateSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/CreateSession"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).CreateSession(ctx, req.(*CreateSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_UpdateSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).UpdateSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/UpdateSession"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).UpdateSession(ctx, req.(*UpdateSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_DestroySession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DestroySessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).DestroySession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/DestroySession"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).DestroySession(ctx, req.(*DestroySessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_RegisterResource_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterResourceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).RegisterResource(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/RegisterResource"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).RegisterResource(ctx, req.(*RegisterResourceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_UnregisterResource_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnregisterResourceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).UnregisterResource(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/UnregisterResource"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).UnregisterResource(ctx, req.(*UnregisterResourceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_ImageClassification_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImageClassificationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).ImageClassification(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/ImageClassification"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).ImageClassification(ctx, req.(*ImageClassificationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_TensorflowModelLoad_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TensorflowModelLoadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).TensorflowModelLoad(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/TensorflowModelLoad"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).TensorflowModelLoad(ctx, req.(*TensorflowModelLoadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_TensorflowModelUnload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TensorflowModelUnloadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).TensorflowModelUnload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/TensorflowModelUnload"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).TensorflowModelUnload(ctx, req.(*TensorflowModelUnloadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_TensorflowModelRun_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TensorflowModelRunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).TensorflowModelRun(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/TensorflowModelRun"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).TensorflowModelRun(ctx, req.(*TensorflowModelRunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_TensorflowLiteModelLoad_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TensorflowLiteModelLoadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).TensorflowLiteModelLoad(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/TensorflowLiteModelLoad"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).TensorflowLiteModelLoad(ctx, req.(*TensorflowLiteModelLoadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_TensorflowLiteModelUnload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TensorflowLiteModelUnloadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).TensorflowLiteModelUnload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/TensorflowLiteModelUnload"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).TensorflowLiteModelUnload(ctx, req.(*TensorflowLiteModelUnloadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_TensorflowLiteModelRun_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TensorflowLiteModelRunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).TensorflowLiteModelRun(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/TensorflowLiteModelRun"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).TensorflowLiteModelRun(ctx, req.(*TensorflowLiteModelRunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_TorchJitloadForward_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TorchJitloadForwardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).TorchJitloadForward(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/TorchJitloadForward"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).TorchJitloadForward(ctx, req.(*TorchJitloadForwardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_Genop_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenopRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).Genop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/Genop"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).Genop(ctx, req.(*GenopRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_GetTimers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProfilingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RpcAgentServer).GetTimers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/vaccel.RpcAgent/GetTimers"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RpcAgentServer).GetTimers(ctx, req.(*ProfilingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RpcAgent_GenopStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(RpcAgentServer).GenopStream(&rpcAgentGenopStreamServer{stream})
}

// RpcAgent_GenopStreamServer is the server-side handle for the
// client-streaming GenopStream RPC: Recv is called once per fragment sent
// by the client stub, and SendAndClose delivers the single aggregated
// response once the agent-side reassembler has consumed every fragment.
type RpcAgent_GenopStreamServer interface {
	SendAndClose(*GenopResponse) error
	Recv() (*GenopRequest, error)
	grpc.ServerStream
}

type rpcAgentGenopStreamServer struct {
	grpc.ServerStream
}

func (x *rpcAgentGenopStreamServer) SendAndClose(m *GenopResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *rpcAgentGenopStreamServer) Recv() (*GenopRequest, error) {
	m := new(GenopRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var _RpcAgent_serviceDesc = grpc.ServiceDesc{
	ServiceName: "vaccel.RpcAgent",
	HandlerType: (*RpcAgentServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateSession", Handler: _RpcAgent_CreateSession_Handler},
		{MethodName: "UpdateSession", Handler: _RpcAgent_UpdateSession_Handler},
		{MethodName: "DestroySession", Handler: _RpcAgent_DestroySession_Handler},
		{MethodName: "RegisterResource", Handler: _RpcAgent_RegisterResource_Handler},
		{MethodName: "UnregisterResource", Handler: _RpcAgent_UnregisterResource_Handler},
		{MethodName: "ImageClassification", Handler: _RpcAgent_ImageClassification_Handler},
		{MethodName: "TensorflowModelLoad", Handler: _RpcAgent_TensorflowModelLoad_Handler},
		{MethodName: "TensorflowModelUnload", Handler: _RpcAgent_TensorflowModelUnload_Handler},
		{MethodName: "TensorflowModelRun", Handler: _RpcAgent_TensorflowModelRun_Handler},
		{MethodName: "TensorflowLiteModelLoad", Handler: _RpcAgent_TensorflowLiteModelLoad_Handler},
		{MethodName: "TensorflowLiteModelUnload", Handler: _RpcAgent_TensorflowLiteModelUnload_Handler},
		{MethodName: "TensorflowLiteModelRun", Handler: _RpcAgent_TensorflowLiteModelRun_Handler},
		{MethodName: "TorchJitloadForward", Handler: _RpcAgent_TorchJitloadForward_Handler},
		{MethodName: "Genop", Handler: _RpcAgent_Genop_Handler},
		{MethodName: "GetTimers", Handler: _RpcAgent_GetTimers_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GenopStream",
			Handler:       _RpcAgent_GenopStream_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "vaccel.proto",
}
