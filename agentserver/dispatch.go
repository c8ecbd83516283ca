package agentserver

import (
	"context"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nubificus/vaccel-rpc-go/genop"
	"github.com/nubificus/vaccel-rpc-go/nativeruntime"
	"github.com/nubificus/vaccel-rpc-go/resource"
	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
	"github.com/nubificus/vaccel-rpc-go/vaccelerr"
)

// toVaccelError classifies err into the VaccelError oneof: a NativeError
// reports the native runtime's own status code, anything else (a lookup
// failure the caller raced past, a bridge-side InternalError) is
// reported as an agent-side code so the client can tell the two apart.
func toVaccelError(err error) *vaccelpb.VaccelError {
	ve := &vaccelpb.VaccelError{}
	var native *vaccelerr.NativeError
	if errorsAs(err, &native) {
		ve.Error = &vaccelpb.VaccelError_VaccelCode{VaccelCode: native.Code}
		ve.Status = &vaccelpb.Status{Message: native.Message}
		return ve
	}
	ve.Error = &vaccelpb.VaccelError_AgentCode{AgentCode: 1}
	ve.Status = &vaccelpb.Status{Message: err.Error()}
	return ve
}

// errorsAs is a package-local errors.As to avoid importing "errors" in
// every call site above.
func errorsAs(err error, target **vaccelerr.NativeError) bool {
	for err != nil {
		if n, ok := err.(*vaccelerr.NativeError); ok {
			*target = n
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// requireResourceKind looks up resourceID and verifies it was registered
// as one of the kinds the calling op accepts, per spec.md §4.3 step 2: a
// resource miss or a wrong-kind resource are both dispatcher-level
// INVALID_ARGUMENT failures, not native-runtime errors, so neither ever
// reaches the runtime.
func (s *Server) requireResourceKind(resourceID int64, wantKind string, accept ...resource.Kind) (*resource.Pinned, error) {
	p, err := s.resources.Find(resourceID)
	if err != nil {
		return nil, vaccelerr.NewProtocolError("unknown resource id %d", resourceID)
	}
	for _, want := range accept {
		if sameResourceKind(p.Kind(), want) {
			return p, nil
		}
	}
	return nil, vaccelerr.NewProtocolError("resource %d is not a %s", resourceID, wantKind)
}

func sameResourceKind(got, want resource.Kind) bool {
	switch want.(type) {
	case *resource.SharedObject:
		_, ok := got.(*resource.SharedObject)
		return ok
	case *resource.SingleModel:
		_, ok := got.(*resource.SingleModel)
		return ok
	case *resource.TFSavedModel:
		_, ok := got.(*resource.TFSavedModel)
		return ok
	case *resource.TorchModel:
		_, ok := got.(*resource.TorchModel)
		return ok
	case *resource.TFLiteModel:
		_, ok := got.(*resource.TFLiteModel)
		return ok
	default:
		return false
	}
}

// grpcErr maps a vaccelerr value to a gRPC status: LookupError and
// ProtocolError become InvalidArgument, TransportError becomes
// Unavailable, and anything else (including a NativeError returned by a
// session call or by UnregisterResource) becomes Internal.
func grpcErr(err error) error {
	switch err.(type) {
	case *vaccelerr.LookupError, *vaccelerr.ProtocolError:
		return status.Error(codes.InvalidArgument, err.Error())
	case *vaccelerr.TransportError:
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (s *Server) CreateSession(ctx context.Context, req *vaccelpb.CreateSessionRequest) (*vaccelpb.CreateSessionResponse, error) {
	stop := s.profiles.Start(0, "create_session")
	defer stop()

	id, err := s.opts.Runtime.CreateSession(ctx, req.GetFlags())
	if err != nil {
		return nil, grpcErr(err)
	}
	if _, err := s.sessions.Insert(id, req.GetFlags()); err != nil {
		return nil, grpcErr(err)
	}
	return &vaccelpb.CreateSessionResponse{SessionId: id}, nil
}

func (s *Server) UpdateSession(ctx context.Context, req *vaccelpb.UpdateSessionRequest) (*vaccelpb.Empty, error) {
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	if err := s.opts.Runtime.UpdateSession(ctx, req.GetSessionId(), req.GetFlags()); err != nil {
		return nil, grpcErr(err)
	}
	sess.SetFlags(req.GetFlags())
	return &vaccelpb.Empty{}, nil
}

func (s *Server) DestroySession(ctx context.Context, req *vaccelpb.DestroySessionRequest) (*vaccelpb.Empty, error) {
	sess, err := s.sessions.Remove(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	s.profiles.Evict(req.GetSessionId())
	for _, rid := range sess.ResourceIDs() {
		_ = s.opts.Runtime.UnregisterResource(ctx, req.GetSessionId(), rid)
		_, _ = s.resources.Remove(rid)
	}
	if err := s.opts.Runtime.DestroySession(ctx, req.GetSessionId()); err != nil {
		return nil, grpcErr(err)
	}
	return &vaccelpb.Empty{}, nil
}

func (s *Server) RegisterResource(ctx context.Context, req *vaccelpb.RegisterResourceRequest) (*vaccelpb.RegisterResourceResponse, error) {
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	kind, payload, err := resource.FromRequest(req)
	if err != nil {
		return nil, grpcErr(err)
	}

	resp := &vaccelpb.RegisterResourceResponse{}
	id, err := s.opts.Runtime.RegisterResource(ctx, req.GetSessionId(), kind, payload)
	if err != nil {
		resp.SetError(toVaccelError(err))
		return resp, nil
	}
	if _, err := s.resources.Insert(id, req.GetSessionId(), kind, payload); err != nil {
		resp.SetError(toVaccelError(err))
		return resp, nil
	}
	sess.AddResource(id)
	resp.SetResourceId(id)
	return resp, nil
}

func (s *Server) UnregisterResource(ctx context.Context, req *vaccelpb.UnregisterResourceRequest) (*vaccelpb.Empty, error) {
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	if _, err := s.resources.Find(req.GetResourceId()); err != nil {
		return nil, grpcErr(err)
	}
	if err := s.opts.Runtime.UnregisterResource(ctx, req.GetSessionId(), req.GetResourceId()); err != nil {
		return nil, grpcErr(err)
	}
	if _, err := s.resources.Remove(req.GetResourceId()); err != nil {
		return nil, grpcErr(err)
	}
	sess.RemoveResource(req.GetResourceId())
	return &vaccelpb.Empty{}, nil
}

func (s *Server) ImageClassification(ctx context.Context, req *vaccelpb.ImageClassificationRequest) (*vaccelpb.ImageClassificationResponse, error) {
	resp := &vaccelpb.ImageClassificationResponse{}
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	sess.Touch()
	tags, err := s.opts.Runtime.ImageClassification(ctx, req.GetSessionId(), req.GetImage())
	if err != nil {
		resp.SetError(toVaccelError(err))
		return resp, nil
	}
	resp.SetTags(tags)
	return resp, nil
}

func (s *Server) TensorflowModelLoad(ctx context.Context, req *vaccelpb.TensorflowModelLoadRequest) (*vaccelpb.TensorflowModelLoadResponse, error) {
	resp := &vaccelpb.TensorflowModelLoadResponse{}
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	sess.Touch()
	if _, err := s.requireResourceKind(req.GetResourceId(), "TF_SAVED_MODEL", &resource.TFSavedModel{}); err != nil {
		return nil, grpcErr(err)
	}
	if err := s.opts.Runtime.TensorflowModelLoad(ctx, req.GetSessionId(), req.GetResourceId()); err != nil {
		resp.SetError(toVaccelError(err))
		return resp, nil
	}
	resp.SetSuccess(true)
	return resp, nil
}

func (s *Server) TensorflowModelUnload(ctx context.Context, req *vaccelpb.TensorflowModelUnloadRequest) (*vaccelpb.TensorflowModelUnloadResponse, error) {
	resp := &vaccelpb.TensorflowModelUnloadResponse{}
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	sess.Touch()
	if _, err := s.requireResourceKind(req.GetResourceId(), "TF_SAVED_MODEL", &resource.TFSavedModel{}); err != nil {
		return nil, grpcErr(err)
	}
	if err := s.opts.Runtime.TensorflowModelUnload(ctx, req.GetSessionId(), req.GetResourceId()); err != nil {
		resp.SetError(toVaccelError(err))
		return resp, nil
	}
	resp.SetSuccess(true)
	return resp, nil
}

func (s *Server) TensorflowModelRun(ctx context.Context, req *vaccelpb.TensorflowModelRunRequest) (*vaccelpb.TensorflowModelRunResponse, error) {
	resp := &vaccelpb.TensorflowModelRunResponse{}
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	sess.Touch()
	if _, err := s.requireResourceKind(req.GetResourceId(), "TF_SAVED_MODEL", &resource.TFSavedModel{}); err != nil {
		return nil, grpcErr(err)
	}

	inNodes := make([]nativeruntime.TFNode, 0, len(req.GetInNodes()))
	for _, n := range req.GetInNodes() {
		inNodes = append(inNodes, nativeruntime.TFNode{Name: n.GetName(), ID: n.GetId()})
	}
	outNodes := make([]nativeruntime.TFNode, 0, len(req.GetOutNodes()))
	for _, n := range req.GetOutNodes() {
		outNodes = append(outNodes, nativeruntime.TFNode{Name: n.GetName(), ID: n.GetId()})
	}
	inTensors := make([]nativeruntime.TFTensor, 0, len(req.GetInTensors()))
	for _, t := range req.GetInTensors() {
		inTensors = append(inTensors, nativeruntime.TFTensor{Dims: t.GetDims(), Type: int32(t.GetType()), Data: t.GetData()})
	}

	out, err := s.opts.Runtime.TensorflowModelRun(ctx, req.GetSessionId(), req.GetResourceId(), req.GetRunOptions(), inNodes, inTensors, outNodes)
	if err != nil {
		resp.SetError(toVaccelError(err))
		return resp, nil
	}
	wireOut := make([]*vaccelpb.TFTensor, 0, len(out))
	for _, t := range out {
		wireOut = append(wireOut, &vaccelpb.TFTensor{Dims: t.Dims, Type: vaccelpb.TFDataType(t.Type), Data: t.Data})
	}
	resp.SetRunResult(&vaccelpb.TFModelRunResult{OutTensors: wireOut})
	return resp, nil
}

func (s *Server) TensorflowLiteModelLoad(ctx context.Context, req *vaccelpb.TensorflowLiteModelLoadRequest) (*vaccelpb.TensorflowLiteModelLoadResponse, error) {
	resp := &vaccelpb.TensorflowLiteModelLoadResponse{}
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	sess.Touch()
	if _, err := s.requireResourceKind(req.GetResourceId(), "TFLITE_MODEL", &resource.TFLiteModel{}); err != nil {
		return nil, grpcErr(err)
	}
	if err := s.opts.Runtime.TensorflowLiteModelLoad(ctx, req.GetSessionId(), req.GetResourceId()); err != nil {
		resp.SetError(toVaccelError(err))
		return resp, nil
	}
	resp.SetSuccess(true)
	return resp, nil
}

func (s *Server) TensorflowLiteModelUnload(ctx context.Context, req *vaccelpb.TensorflowLiteModelUnloadRequest) (*vaccelpb.TensorflowLiteModelUnloadResponse, error) {
	resp := &vaccelpb.TensorflowLiteModelUnloadResponse{}
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	sess.Touch()
	if _, err := s.requireResourceKind(req.GetResourceId(), "TFLITE_MODEL", &resource.TFLiteModel{}); err != nil {
		return nil, grpcErr(err)
	}
	if err := s.opts.Runtime.TensorflowLiteModelUnload(ctx, req.GetSessionId(), req.GetResourceId()); err != nil {
		resp.SetError(toVaccelError(err))
		return resp, nil
	}
	resp.SetSuccess(true)
	return resp, nil
}

func (s *Server) TensorflowLiteModelRun(ctx context.Context, req *vaccelpb.TensorflowLiteModelRunRequest) (*vaccelpb.TensorflowLiteModelRunResponse, error) {
	resp := &vaccelpb.TensorflowLiteModelRunResponse{}
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	sess.Touch()
	if _, err := s.requireResourceKind(req.GetResourceId(), "TFLITE_MODEL", &resource.TFLiteModel{}); err != nil {
		return nil, grpcErr(err)
	}
	inTensors := make([]nativeruntime.TFLiteTensor, 0, len(req.GetInTensors()))
	for _, t := range req.GetInTensors() {
		inTensors = append(inTensors, nativeruntime.TFLiteTensor{Dims: t.GetDims(), Type: int32(t.GetType()), Data: t.GetData()})
	}
	out, err := s.opts.Runtime.TensorflowLiteModelRun(ctx, req.GetSessionId(), req.GetResourceId(), inTensors, req.GetNrOutTensors())
	if err != nil {
		resp.SetError(toVaccelError(err))
		return resp, nil
	}
	wireOut := make([]*vaccelpb.TFLiteTensor, 0, len(out))
	for _, t := range out {
		wireOut = append(wireOut, &vaccelpb.TFLiteTensor{Dims: t.Dims, Type: vaccelpb.TFLiteDataType(t.Type), Data: t.Data})
	}
	resp.SetRunResult(&vaccelpb.TFLiteModelRunResult{OutTensors: wireOut})
	return resp, nil
}

func (s *Server) TorchJitloadForward(ctx context.Context, req *vaccelpb.TorchJitloadForwardRequest) (*vaccelpb.TorchJitloadForwardResponse, error) {
	resp := &vaccelpb.TorchJitloadForwardResponse{}
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	sess.Touch()
	if _, err := s.requireResourceKind(req.GetResourceId(), "TORCH_MODEL", &resource.TorchModel{}); err != nil {
		return nil, grpcErr(err)
	}
	inTensors := make([]nativeruntime.TorchTensor, 0, len(req.GetInTensors()))
	for _, t := range req.GetInTensors() {
		inTensors = append(inTensors, nativeruntime.TorchTensor{Dims: t.GetDims(), Type: int32(t.GetType()), Data: t.GetData()})
	}
	out, err := s.opts.Runtime.TorchJitloadForward(ctx, req.GetSessionId(), req.GetResourceId(), req.GetRunOptions(), inTensors, req.GetNrOutTensors())
	if err != nil {
		resp.SetError(toVaccelError(err))
		return resp, nil
	}
	wireOut := make([]*vaccelpb.TorchTensor, 0, len(out))
	for _, t := range out {
		wireOut = append(wireOut, &vaccelpb.TorchTensor{Dims: t.Dims, Type: vaccelpb.TorchDataType(t.Type), Data: t.Data})
	}
	resp.SetRunResult(&vaccelpb.TorchJitloadForwardResult{OutTensors: wireOut})
	return resp, nil
}

func (s *Server) Genop(ctx context.Context, req *vaccelpb.GenopRequest) (*vaccelpb.GenopResponse, error) {
	resp := &vaccelpb.GenopResponse{}
	sess, err := s.sessions.Find(req.GetSessionId())
	if err != nil {
		return nil, grpcErr(err)
	}
	sess.Touch()

	readArgs := toNativeArgs(req.GetReadArgs())
	writeArgs := toNativeArgs(req.GetWriteArgs())

	out, err := s.opts.Runtime.Genop(ctx, req.GetSessionId(), readArgs, writeArgs)
	if err != nil {
		resp.SetError(toVaccelError(err))
		return resp, nil
	}
	wireOut := make([]*vaccelpb.Arg, 0, len(out))
	for _, a := range out {
		wireOut = append(wireOut, &vaccelpb.Arg{Buf: a.Buf, Size: uint32(len(a.Buf)), Argtype: a.Argtype})
	}
	resp.SetGenopResult(&vaccelpb.GenopResult{WriteArgs: wireOut})
	return resp, nil
}

// GenopStream consumes one fragment per Recv call, reassembling the
// logical GenopRequest with a genop.Reassembler before dispatching it
// exactly as the unary Genop handler would.
func (s *Server) GenopStream(stream vaccelpb.RpcAgent_GenopStreamServer) error {
	reassembler := genop.NewReassembler()
	for {
		frag, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := reassembler.Feed(frag); err != nil {
			return grpcErr(err)
		}
	}
	req, err := reassembler.Finish()
	if err != nil {
		return grpcErr(err)
	}
	resp, err := s.Genop(stream.Context(), req)
	if err != nil {
		return err
	}
	return stream.SendAndClose(resp)
}

func (s *Server) GetTimers(ctx context.Context, req *vaccelpb.ProfilingRequest) (*vaccelpb.ProfilingResponse, error) {
	return &vaccelpb.ProfilingResponse{Regions: s.profiles.GetTimers(req.GetSessionId())}, nil
}

func toNativeArgs(args []*vaccelpb.Arg) []nativeruntime.Arg {
	out := make([]nativeruntime.Arg, 0, len(args))
	for _, a := range args {
		out = append(out, nativeruntime.Arg{Buf: a.GetBuf(), Argtype: a.GetArgtype()})
	}
	return out
}
