// Copyright (c) nano Authors. All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package client is the stub an application links against in place of the
// native runtime: every method mirrors one agent RPC, translating between
// the runtime's in-process call shape and the wire request/response.
package client

import (
	"context"
	"net"
	"os"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/nubificus/vaccel-rpc-go/genop"
	"github.com/nubificus/vaccel-rpc-go/profiling"
	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
	"github.com/nubificus/vaccel-rpc-go/transport"
	"github.com/nubificus/vaccel-rpc-go/vaccelerr"
)

// addressEnv and addressEnvFallback name the environment variables the
// client reads the agent's address from, in order of precedence.
const (
	addressEnv         = "VACCEL_RPC_ADDRESS"
	addressEnvFallback = "VACCEL_RPC_ADDR"
	defaultAddress     = "tcp://127.0.0.1:65500"
)

// AddressFromEnv resolves the agent address the same way the client does
// when none is given explicitly to Dial.
func AddressFromEnv() string {
	if v := os.Getenv(addressEnv); v != "" {
		return v
	}
	if v := os.Getenv(addressEnvFallback); v != "" {
		return v
	}
	return defaultAddress
}

// Client is a connected handle onto one agent. It is safe for concurrent
// use by multiple goroutines, mirroring multiple application threads
// sharing one native-runtime handle.
type Client struct {
	conn  *grpc.ClientConn
	agent vaccelpb.RpcAgentClient

	mu      sync.Mutex
	profByS map[int64]*profiling.Regions
}

// Dial connects to the agent at addr (scheme://target, e.g.
// "tcp://127.0.0.1:65500", "unix:///run/vaccel.sock", "vsock://3:1024").
// An empty addr falls back to AddressFromEnv.
func Dial(ctx context.Context, addr string) (*Client, error) {
	if addr == "" {
		addr = AddressFromEnv()
	}
	a, err := transport.Parse(addr)
	if err != nil {
		return nil, err
	}

	conn, err := grpc.DialContext(ctx, a.String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return transport.Dial(ctx, a)
		}),
	)
	if err != nil {
		return nil, vaccelerr.NewTransportError("dial", err)
	}

	return &Client{
		conn:    conn,
		agent:   vaccelpb.NewRpcAgentClient(conn),
		profByS: make(map[int64]*profiling.Regions),
	}, nil
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) profiler(sessID int64) *profiling.Regions {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.profByS[sessID]
	if !ok {
		p = profiling.New("[vaccel-client] ")
		c.profByS[sessID] = p
	}
	return p
}

// CreateSession opens a new session on the agent.
func (c *Client) CreateSession(ctx context.Context, flags uint32) (int64, error) {
	resp, err := c.agent.CreateSession(ctx, &vaccelpb.CreateSessionRequest{Flags: flags})
	if err != nil {
		return 0, vaccelerr.NewTransportError("CreateSession", err)
	}
	return resp.GetSessionId(), nil
}

// UpdateSession replaces a session's flag bitmask.
func (c *Client) UpdateSession(ctx context.Context, sessID int64, flags uint32) error {
	_, err := c.agent.UpdateSession(ctx, &vaccelpb.UpdateSessionRequest{SessionId: sessID, Flags: flags})
	if err != nil {
		return vaccelerr.NewTransportError("UpdateSession", err)
	}
	return nil
}

// DestroySession releases a session and its profiling state.
func (c *Client) DestroySession(ctx context.Context, sessID int64) error {
	_, err := c.agent.DestroySession(ctx, &vaccelpb.DestroySessionRequest{SessionId: sessID})
	if err != nil {
		return vaccelerr.NewTransportError("DestroySession", err)
	}
	c.mu.Lock()
	delete(c.profByS, sessID)
	c.mu.Unlock()
	return nil
}

// RegisterResource registers a resource from either paths or in-memory
// file payloads (files take precedence when both are supplied).
func (c *Client) RegisterResource(ctx context.Context, sessID int64, resourceType vaccelpb.ResourceType, paths []string, files []*vaccelpb.File) (int64, error) {
	resp, err := c.agent.RegisterResource(ctx, &vaccelpb.RegisterResourceRequest{
		SessionId:    sessID,
		ResourceType: resourceType,
		Paths:        paths,
		Files:        files,
	})
	if err != nil {
		return 0, vaccelerr.NewTransportError("RegisterResource", err)
	}
	if resp.HasError() {
		return 0, nativeErrorFrom(resp.GetError())
	}
	return resp.GetResourceId(), nil
}

// UnregisterResource releases a previously registered resource.
func (c *Client) UnregisterResource(ctx context.Context, sessID, resourceID int64) error {
	_, err := c.agent.UnregisterResource(ctx, &vaccelpb.UnregisterResourceRequest{SessionId: sessID, ResourceId: resourceID})
	if err != nil {
		return vaccelerr.NewTransportError("UnregisterResource", err)
	}
	return nil
}

// ImageClassification runs the image classification operation.
func (c *Client) ImageClassification(ctx context.Context, sessID int64, image []byte) ([]byte, error) {
	stop := c.profiler(sessID).Start(sessID, "image_classification")
	defer stop()

	resp, err := c.agent.ImageClassification(ctx, &vaccelpb.ImageClassificationRequest{SessionId: sessID, Image: image})
	if err != nil {
		return nil, vaccelerr.NewTransportError("ImageClassification", err)
	}
	if resp.HasError() {
		return nil, nativeErrorFrom(resp.GetError())
	}
	return resp.GetTags(), nil
}

// TensorflowModelLoad loads a registered TensorFlow saved-model resource
// into the runtime.
func (c *Client) TensorflowModelLoad(ctx context.Context, sessID, resourceID int64) error {
	resp, err := c.agent.TensorflowModelLoad(ctx, &vaccelpb.TensorflowModelLoadRequest{SessionId: sessID, ResourceId: resourceID})
	if err != nil {
		return vaccelerr.NewTransportError("TensorflowModelLoad", err)
	}
	if resp.HasError() {
		return nativeErrorFrom(resp.GetError())
	}
	return nil
}

// TensorflowModelUnload unloads a previously loaded TensorFlow model.
func (c *Client) TensorflowModelUnload(ctx context.Context, sessID, resourceID int64) error {
	resp, err := c.agent.TensorflowModelUnload(ctx, &vaccelpb.TensorflowModelUnloadRequest{SessionId: sessID, ResourceId: resourceID})
	if err != nil {
		return vaccelerr.NewTransportError("TensorflowModelUnload", err)
	}
	if resp.HasError() {
		return nativeErrorFrom(resp.GetError())
	}
	return nil
}

// TensorflowModelRun runs inference against a loaded TensorFlow model.
func (c *Client) TensorflowModelRun(ctx context.Context, sessID, resourceID int64, runOptions []byte, inNodes []*vaccelpb.TFNode, inTensors []*vaccelpb.TFTensor, outNodes []*vaccelpb.TFNode) ([]*vaccelpb.TFTensor, error) {
	stop := c.profiler(sessID).Start(sessID, "tensorflow_model_run")
	defer stop()

	resp, err := c.agent.TensorflowModelRun(ctx, &vaccelpb.TensorflowModelRunRequest{
		SessionId:  sessID,
		ResourceId: resourceID,
		RunOptions: runOptions,
		InNodes:    inNodes,
		InTensors:  inTensors,
		OutNodes:   outNodes,
	})
	if err != nil {
		return nil, vaccelerr.NewTransportError("TensorflowModelRun", err)
	}
	if resp.HasError() {
		return nil, nativeErrorFrom(resp.GetError())
	}
	return resp.GetRunResult().GetOutTensors(), nil
}

// TensorflowLiteModelLoad loads a registered TensorFlow Lite model resource
// into the runtime.
func (c *Client) TensorflowLiteModelLoad(ctx context.Context, sessID, resourceID int64) error {
	resp, err := c.agent.TensorflowLiteModelLoad(ctx, &vaccelpb.TensorflowLiteModelLoadRequest{SessionId: sessID, ResourceId: resourceID})
	if err != nil {
		return vaccelerr.NewTransportError("TensorflowLiteModelLoad", err)
	}
	if resp.HasError() {
		return nativeErrorFrom(resp.GetError())
	}
	return nil
}

// TensorflowLiteModelUnload unloads a previously loaded TensorFlow Lite model.
func (c *Client) TensorflowLiteModelUnload(ctx context.Context, sessID, resourceID int64) error {
	resp, err := c.agent.TensorflowLiteModelUnload(ctx, &vaccelpb.TensorflowLiteModelUnloadRequest{SessionId: sessID, ResourceId: resourceID})
	if err != nil {
		return vaccelerr.NewTransportError("TensorflowLiteModelUnload", err)
	}
	if resp.HasError() {
		return nativeErrorFrom(resp.GetError())
	}
	return nil
}

// TensorflowLiteModelRun runs inference against a loaded TensorFlow Lite model.
func (c *Client) TensorflowLiteModelRun(ctx context.Context, sessID, resourceID int64, inTensors []*vaccelpb.TFLiteTensor, nrOutTensors int32) ([]*vaccelpb.TFLiteTensor, error) {
	stop := c.profiler(sessID).Start(sessID, "tensorflow_lite_model_run")
	defer stop()

	resp, err := c.agent.TensorflowLiteModelRun(ctx, &vaccelpb.TensorflowLiteModelRunRequest{
		SessionId:    sessID,
		ResourceId:   resourceID,
		InTensors:    inTensors,
		NrOutTensors: nrOutTensors,
	})
	if err != nil {
		return nil, vaccelerr.NewTransportError("TensorflowLiteModelRun", err)
	}
	if resp.HasError() {
		return nil, nativeErrorFrom(resp.GetError())
	}
	return resp.GetRunResult().GetOutTensors(), nil
}

// TorchJitloadForward runs forward inference against a loaded Torch model.
func (c *Client) TorchJitloadForward(ctx context.Context, sessID, resourceID int64, runOptions []byte, inTensors []*vaccelpb.TorchTensor, nrOutTensors int32) ([]*vaccelpb.TorchTensor, error) {
	stop := c.profiler(sessID).Start(sessID, "torch_jitload_forward")
	defer stop()

	resp, err := c.agent.TorchJitloadForward(ctx, &vaccelpb.TorchJitloadForwardRequest{
		SessionId:    sessID,
		ResourceId:   resourceID,
		RunOptions:   runOptions,
		InTensors:    inTensors,
		NrOutTensors: nrOutTensors,
	})
	if err != nil {
		return nil, vaccelerr.NewTransportError("TorchJitloadForward", err)
	}
	if resp.HasError() {
		return nil, nativeErrorFrom(resp.GetError())
	}
	return resp.GetRunResult().GetOutTensors(), nil
}

// Genop dispatches a generic operation, transparently streaming the
// request through GenopStream when any argument exceeds MaxReqLen.
func (c *Client) Genop(ctx context.Context, sessID int64, readArgs, writeArgs []*vaccelpb.Arg) ([]*vaccelpb.Arg, error) {
	stop := c.profiler(sessID).Start(sessID, "genop")
	defer stop()

	if !needsStreaming(readArgs) && !needsStreaming(writeArgs) {
		resp, err := c.agent.Genop(ctx, &vaccelpb.GenopRequest{SessionId: sessID, ReadArgs: readArgs, WriteArgs: writeArgs})
		if err != nil {
			return nil, vaccelerr.NewTransportError("Genop", err)
		}
		if resp.HasError() {
			return nil, nativeErrorFrom(resp.GetError())
		}
		return resp.GetGenopResult().GetWriteArgs(), nil
	}
	return c.genopStream(ctx, sessID, readArgs, writeArgs)
}

func needsStreaming(args []*vaccelpb.Arg) bool {
	for _, a := range args {
		if len(a.GetBuf()) > vaccelpb.MaxReqLen {
			return true
		}
	}
	return false
}

func (c *Client) genopStream(ctx context.Context, sessID int64, readArgs, writeArgs []*vaccelpb.Arg) ([]*vaccelpb.Arg, error) {
	stream, err := c.agent.GenopStream(ctx)
	if err != nil {
		return nil, vaccelerr.NewTransportError("GenopStream", err)
	}

	packer := genop.NewPacker(sessID)
	for _, frag := range packer.Pack(readArgs, writeArgs) {
		if err := stream.Send(frag); err != nil {
			return nil, vaccelerr.NewTransportError("GenopStream.Send", err)
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return nil, vaccelerr.NewTransportError("GenopStream.CloseAndRecv", err)
	}
	if resp.HasError() {
		return nil, nativeErrorFrom(resp.GetError())
	}
	return resp.GetGenopResult().GetWriteArgs(), nil
}

// GetTimers fetches the agent's profiling samples for sessID and merges
// them into the client's own local timers for that session.
func (c *Client) GetTimers(ctx context.Context, sessID int64) ([]*vaccelpb.ProfRegion, error) {
	resp, err := c.agent.GetTimers(ctx, &vaccelpb.ProfilingRequest{SessionId: sessID})
	if err != nil {
		return nil, vaccelerr.NewTransportError("GetTimers", err)
	}
	c.profiler(sessID).Merge(sessID, resp.GetRegions())
	return c.profiler(sessID).GetTimers(sessID), nil
}

func nativeErrorFrom(ve *vaccelpb.VaccelError) error {
	if ve == nil {
		return vaccelerr.NewInternalError("agent returned an empty error", nil)
	}
	if ve.GetStatus() != nil {
		return vaccelerr.NewNativeError(ve.GetVaccelCode(), ve.GetStatus().GetMessage())
	}
	return vaccelerr.NewNativeError(ve.GetVaccelCode(), "")
}
