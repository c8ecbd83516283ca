package nativeruntime

import (
	"context"
	"sync"

	"github.com/nubificus/vaccel-rpc-go/resource"
)

// Mock is an in-memory Runtime used by agentserver's tests. It mirrors
// the session/resource id bookkeeping the real runtime would do on its
// own side of the boundary, and lets tests install canned results or
// errors for any operation by name.
type Mock struct {
	mu sync.Mutex

	nextSessionID  int64
	nextResourceID int64

	Errors  map[string]error
	Tags    []byte
	TFOut   []TFTensor
	TFLOut  []TFLiteTensor
	TorchOut []TorchTensor
	GenopOut []Arg

	Calls []string
}

// NewMock returns an empty Mock runtime.
func NewMock() *Mock {
	return &Mock{Errors: make(map[string]error)}
}

func (m *Mock) record(name string) {
	m.Calls = append(m.Calls, name)
}

func (m *Mock) errFor(name string) error {
	return m.Errors[name]
}

func (m *Mock) CreateSession(ctx context.Context, flags uint32) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CreateSession")
	if err := m.errFor("CreateSession"); err != nil {
		return 0, err
	}
	m.nextSessionID++
	return m.nextSessionID, nil
}

func (m *Mock) UpdateSession(ctx context.Context, id int64, flags uint32) error {
	m.record("UpdateSession")
	return m.errFor("UpdateSession")
}

func (m *Mock) DestroySession(ctx context.Context, id int64) error {
	m.record("DestroySession")
	return m.errFor("DestroySession")
}

func (m *Mock) RegisterResource(ctx context.Context, sessID int64, kind resource.Kind, payload []byte) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("RegisterResource")
	if err := m.errFor("RegisterResource"); err != nil {
		return 0, err
	}
	m.nextResourceID++
	return m.nextResourceID, nil
}

func (m *Mock) UnregisterResource(ctx context.Context, sessID, resourceID int64) error {
	m.record("UnregisterResource")
	return m.errFor("UnregisterResource")
}

func (m *Mock) ImageClassification(ctx context.Context, sessID int64, image []byte) ([]byte, error) {
	m.record("ImageClassification")
	return m.Tags, m.errFor("ImageClassification")
}

func (m *Mock) TensorflowModelLoad(ctx context.Context, sessID, resourceID int64) error {
	m.record("TensorflowModelLoad")
	return m.errFor("TensorflowModelLoad")
}

func (m *Mock) TensorflowModelUnload(ctx context.Context, sessID, resourceID int64) error {
	m.record("TensorflowModelUnload")
	return m.errFor("TensorflowModelUnload")
}

func (m *Mock) TensorflowModelRun(ctx context.Context, sessID, resourceID int64, runOptions []byte, inNodes []TFNode, inTensors []TFTensor, outNodes []TFNode) ([]TFTensor, error) {
	m.record("TensorflowModelRun")
	return m.TFOut, m.errFor("TensorflowModelRun")
}

func (m *Mock) TensorflowLiteModelLoad(ctx context.Context, sessID, resourceID int64) error {
	m.record("TensorflowLiteModelLoad")
	return m.errFor("TensorflowLiteModelLoad")
}

func (m *Mock) TensorflowLiteModelUnload(ctx context.Context, sessID, resourceID int64) error {
	m.record("TensorflowLiteModelUnload")
	return m.errFor("TensorflowLiteModelUnload")
}

func (m *Mock) TensorflowLiteModelRun(ctx context.Context, sessID, resourceID int64, inTensors []TFLiteTensor, nrOutTensors int32) ([]TFLiteTensor, error) {
	m.record("TensorflowLiteModelRun")
	return m.TFLOut, m.errFor("TensorflowLiteModelRun")
}

func (m *Mock) TorchJitloadForward(ctx context.Context, sessID, resourceID int64, runOptions []byte, inTensors []TorchTensor, nrOutTensors int32) ([]TorchTensor, error) {
	m.record("TorchJitloadForward")
	return m.TorchOut, m.errFor("TorchJitloadForward")
}

func (m *Mock) Genop(ctx context.Context, sessID int64, readArgs, writeArgs []Arg) ([]Arg, error) {
	m.record("Genop")
	return m.GenopOut, m.errFor("Genop")
}
