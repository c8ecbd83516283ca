// Package nativeruntime declares the boundary between the agent and the
// hardware-acceleration runtime it delegates calls to. The runtime itself
// is an out-of-scope FFI collaborator (a cgo binding onto a C library in
// the real deployment); this package only fixes the Go-native shape of
// that boundary so the rest of the agent can be built and tested against
// it independently of any particular runtime build.
package nativeruntime

import (
	"context"

	"github.com/nubificus/vaccel-rpc-go/resource"
)

// TFNode names a TensorFlow graph input or output.
type TFNode struct {
	Name string
	ID   int32
}

// TFTensor is a TensorFlow saved-model tensor.
type TFTensor struct {
	Dims []int64
	Type int32
	Data []byte
}

// TFLiteTensor is a TensorFlow Lite tensor.
type TFLiteTensor struct {
	Dims []int32
	Type int32
	Data []byte
}

// TorchTensor is a Torch tensor.
type TorchTensor struct {
	Dims []int64
	Type int32
	Data []byte
}

// Arg is a generic opaque Genop argument.
type Arg struct {
	Buf     []byte
	Argtype uint32
}

// Runtime is the native-runtime surface the agent dispatches onto. Every
// method returns an error classified per vaccelerr: lookup and protocol
// errors are caught before the runtime is ever called, so an error
// returned here is either a NativeError carrying a native status or an
// InternalError.
type Runtime interface {
	CreateSession(ctx context.Context, flags uint32) (id int64, err error)
	UpdateSession(ctx context.Context, id int64, flags uint32) error
	DestroySession(ctx context.Context, id int64) error

	RegisterResource(ctx context.Context, sessID int64, kind resource.Kind, payload []byte) (id int64, err error)
	UnregisterResource(ctx context.Context, sessID, resourceID int64) error

	ImageClassification(ctx context.Context, sessID int64, image []byte) (tags []byte, err error)

	TensorflowModelLoad(ctx context.Context, sessID, resourceID int64) error
	TensorflowModelUnload(ctx context.Context, sessID, resourceID int64) error
	TensorflowModelRun(ctx context.Context, sessID, resourceID int64, runOptions []byte, inNodes []TFNode, inTensors []TFTensor, outNodes []TFNode) (outTensors []TFTensor, err error)

	TensorflowLiteModelLoad(ctx context.Context, sessID, resourceID int64) error
	TensorflowLiteModelUnload(ctx context.Context, sessID, resourceID int64) error
	TensorflowLiteModelRun(ctx context.Context, sessID, resourceID int64, inTensors []TFLiteTensor, nrOutTensors int32) (outTensors []TFLiteTensor, err error)

	TorchJitloadForward(ctx context.Context, sessID, resourceID int64, runOptions []byte, inTensors []TorchTensor, nrOutTensors int32) (outTensors []TorchTensor, err error)

	Genop(ctx context.Context, sessID int64, readArgs, writeArgs []Arg) (writeResults []Arg, err error)
}
