package client

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/nubificus/vaccel-rpc-go/agentserver"
	"github.com/nubificus/vaccel-rpc-go/nativeruntime"
	"github.com/nubificus/vaccel-rpc-go/profiling"
	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
	"github.com/nubificus/vaccel-rpc-go/vaccelerr"
)

// newTestClient wires a Client straight to an in-process agent over
// bufconn, skipping the transport package entirely: these tests exercise
// the client's request shaping and response handling, not dialing.
func newTestClient(t *testing.T) (*Client, *nativeruntime.Mock) {
	t.Helper()

	mock := nativeruntime.NewMock()
	srv, err := agentserver.New(agentserver.Options{Address: "tcp://127.0.0.1:0", Runtime: mock})
	require.NoError(t, err)
	require.NoError(t, srv.Init())

	lis := bufconn.Listen(1024 * 1024)
	grpcSrv := grpc.NewServer()
	vaccelpb.RegisterRpcAgentServer(grpcSrv, srv)
	go grpcSrv.Serve(lis)
	t.Cleanup(grpcSrv.Stop)

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	conn, err := grpc.DialContext(context.Background(), "bufconn",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	c := &Client{
		conn:    conn,
		agent:   vaccelpb.NewRpcAgentClient(conn),
		profByS: make(map[int64]*profiling.Regions),
	}
	return c, mock
}

func TestClientCreateAndDestroySession(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	sessID, err := c.CreateSession(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sessID)

	require.NoError(t, c.DestroySession(ctx, sessID))
}

func TestClientRegisterAndUnregisterResource(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	sessID, err := c.CreateSession(ctx, 0)
	require.NoError(t, err)

	resID, err := c.RegisterResource(ctx, sessID, vaccelpb.ResourceType_SHARED_OBJECT, nil,
		[]*vaccelpb.File{{Name: "a.so", Data: []byte("bytes")}})
	require.NoError(t, err)
	assert.NotZero(t, resID)

	require.NoError(t, c.UnregisterResource(ctx, sessID, resID))
}

func TestClientRegisterResourceNativeErrorSurfaces(t *testing.T) {
	c, mock := newTestClient(t)
	ctx := context.Background()

	sessID, err := c.CreateSession(ctx, 0)
	require.NoError(t, err)

	mock.Errors["RegisterResource"] = vaccelerr.NewNativeError(42, "out of memory")

	_, err = c.RegisterResource(ctx, sessID, vaccelpb.ResourceType_SHARED_OBJECT, []string{"/lib/a.so"}, nil)
	require.Error(t, err)
	var nativeErr *vaccelerr.NativeError
	require.ErrorAs(t, err, &nativeErr)
	assert.Equal(t, int64(42), nativeErr.Code)
}

func TestClientGenopUnaryRoundTrip(t *testing.T) {
	c, mock := newTestClient(t)
	ctx := context.Background()

	sessID, err := c.CreateSession(ctx, 0)
	require.NoError(t, err)

	mock.GenopOut = []nativeruntime.Arg{{Buf: []byte("result")}}

	out, err := c.Genop(ctx, sessID, []*vaccelpb.Arg{{Buf: []byte("input")}}, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []byte("result"), out[0].GetBuf())
}

func TestClientGenopStreamsLargeArgs(t *testing.T) {
	c, mock := newTestClient(t)
	ctx := context.Background()

	sessID, err := c.CreateSession(ctx, 0)
	require.NoError(t, err)

	mock.GenopOut = []nativeruntime.Arg{{Buf: []byte("ok")}}

	big := make([]byte, vaccelpb.MaxReqLen+1)
	out, err := c.Genop(ctx, sessID, []*vaccelpb.Arg{{Buf: big}}, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []byte("ok"), out[0].GetBuf())
}

func TestClientTensorflowModelLoadAndUnload(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	sessID, err := c.CreateSession(ctx, 0)
	require.NoError(t, err)

	resID, err := c.RegisterResource(ctx, sessID, vaccelpb.ResourceType_TF_SAVED_MODEL, nil,
		[]*vaccelpb.File{{Name: "saved_model.pb", Data: []byte("bytes")}})
	require.NoError(t, err)

	require.NoError(t, c.TensorflowModelLoad(ctx, sessID, resID))
	require.NoError(t, c.TensorflowModelUnload(ctx, sessID, resID))
}

func TestClientTensorflowModelRunReturnsOutTensors(t *testing.T) {
	c, mock := newTestClient(t)
	ctx := context.Background()

	sessID, err := c.CreateSession(ctx, 0)
	require.NoError(t, err)

	resID, err := c.RegisterResource(ctx, sessID, vaccelpb.ResourceType_TF_SAVED_MODEL, nil,
		[]*vaccelpb.File{{Name: "saved_model.pb", Data: []byte("bytes")}})
	require.NoError(t, err)

	mock.TFOut = []nativeruntime.TFTensor{{Data: []byte("out")}}

	out, err := c.TensorflowModelRun(ctx, sessID, resID, nil,
		[]*vaccelpb.TFNode{{Name: "input"}},
		[]*vaccelpb.TFTensor{{Data: []byte("in")}},
		[]*vaccelpb.TFNode{{Name: "output"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []byte("out"), out[0].GetData())
}

func TestClientTensorflowLiteModelLoadRejectsWrongResourceKind(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	sessID, err := c.CreateSession(ctx, 0)
	require.NoError(t, err)

	resID, err := c.RegisterResource(ctx, sessID, vaccelpb.ResourceType_SHARED_OBJECT, nil,
		[]*vaccelpb.File{{Name: "a.so", Data: []byte("bytes")}})
	require.NoError(t, err)

	err = c.TensorflowLiteModelLoad(ctx, sessID, resID)
	require.Error(t, err)
}

func TestClientTorchJitloadForwardReturnsOutTensors(t *testing.T) {
	c, mock := newTestClient(t)
	ctx := context.Background()

	sessID, err := c.CreateSession(ctx, 0)
	require.NoError(t, err)

	resID, err := c.RegisterResource(ctx, sessID, vaccelpb.ResourceType_TORCH_MODEL, nil,
		[]*vaccelpb.File{{Name: "model.pt", Data: []byte("bytes")}})
	require.NoError(t, err)

	mock.TorchOut = []nativeruntime.TorchTensor{{Data: []byte("out")}}

	out, err := c.TorchJitloadForward(ctx, sessID, resID, nil, []*vaccelpb.TorchTensor{{Data: []byte("in")}}, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []byte("out"), out[0].GetData())
}

func TestClientGetTimersMergesIntoLocalState(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	sessID, err := c.CreateSession(ctx, 0)
	require.NoError(t, err)

	timers, err := c.GetTimers(ctx, sessID)
	require.NoError(t, err)
	assert.Empty(t, timers)
}
