package nativeruntime

import (
	"context"

	"github.com/nubificus/vaccel-rpc-go/resource"
	"github.com/nubificus/vaccel-rpc-go/vaccelerr"
)

// Unimplemented is the Runtime the agent binary falls back to when no
// cgo binding onto the native library has been linked in. Every method
// fails with an InternalError rather than panicking, so an agent built
// without the real runtime still starts and reports a clear cause per
// call instead of crashing on the first request.
type Unimplemented struct{}

func (Unimplemented) fail(op string) error {
	return vaccelerr.NewInternalError(op+": no native runtime linked into this agent build", nil)
}

func (u Unimplemented) CreateSession(ctx context.Context, flags uint32) (int64, error) {
	return 0, u.fail("CreateSession")
}

func (u Unimplemented) UpdateSession(ctx context.Context, id int64, flags uint32) error {
	return u.fail("UpdateSession")
}

func (u Unimplemented) DestroySession(ctx context.Context, id int64) error {
	return u.fail("DestroySession")
}

func (u Unimplemented) RegisterResource(ctx context.Context, sessID int64, kind resource.Kind, payload []byte) (int64, error) {
	return 0, u.fail("RegisterResource")
}

func (u Unimplemented) UnregisterResource(ctx context.Context, sessID, resourceID int64) error {
	return u.fail("UnregisterResource")
}

func (u Unimplemented) ImageClassification(ctx context.Context, sessID int64, image []byte) ([]byte, error) {
	return nil, u.fail("ImageClassification")
}

func (u Unimplemented) TensorflowModelLoad(ctx context.Context, sessID, resourceID int64) error {
	return u.fail("TensorflowModelLoad")
}

func (u Unimplemented) TensorflowModelUnload(ctx context.Context, sessID, resourceID int64) error {
	return u.fail("TensorflowModelUnload")
}

func (u Unimplemented) TensorflowModelRun(ctx context.Context, sessID, resourceID int64, runOptions []byte, inNodes []TFNode, inTensors []TFTensor, outNodes []TFNode) ([]TFTensor, error) {
	return nil, u.fail("TensorflowModelRun")
}

func (u Unimplemented) TensorflowLiteModelLoad(ctx context.Context, sessID, resourceID int64) error {
	return u.fail("TensorflowLiteModelLoad")
}

func (u Unimplemented) TensorflowLiteModelUnload(ctx context.Context, sessID, resourceID int64) error {
	return u.fail("TensorflowLiteModelUnload")
}

func (u Unimplemented) TensorflowLiteModelRun(ctx context.Context, sessID, resourceID int64, inTensors []TFLiteTensor, nrOutTensors int32) ([]TFLiteTensor, error) {
	return nil, u.fail("TensorflowLiteModelRun")
}

func (u Unimplemented) TorchJitloadForward(ctx context.Context, sessID, resourceID int64, runOptions []byte, inTensors []TorchTensor, nrOutTensors int32) ([]TorchTensor, error) {
	return nil, u.fail("TorchJitloadForward")
}

func (u Unimplemented) Genop(ctx context.Context, sessID int64, readArgs, writeArgs []Arg) ([]Arg, error) {
	return nil, u.fail("Genop")
}
