package agentserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nubificus/vaccel-rpc-go/nativeruntime"
	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
	"github.com/nubificus/vaccel-rpc-go/vaccelerr"
)

func newTestServer(t *testing.T) (*Server, *nativeruntime.Mock) {
	t.Helper()
	mock := nativeruntime.NewMock()
	s, err := New(Options{Address: "tcp://127.0.0.1:0", Runtime: mock})
	require.NoError(t, err)
	return s, mock
}

func TestCreateAndDestroySession(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	resp, err := s.CreateSession(ctx, &vaccelpb.CreateSessionRequest{Flags: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.GetSessionId())
	assert.Equal(t, 1, s.SessionCount())

	_, err = s.DestroySession(ctx, &vaccelpb.DestroySessionRequest{SessionId: resp.GetSessionId()})
	require.NoError(t, err)
	assert.Equal(t, 0, s.SessionCount())
}

func TestDestroyUnknownSessionIsInvalidArgument(t *testing.T) {
	s, _ := newTestServer(t)
	_, err := s.DestroySession(context.Background(), &vaccelpb.DestroySessionRequest{SessionId: 999})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestRegisterResourceFilesPrecedenceAndUnregister(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, &vaccelpb.CreateSessionRequest{})
	require.NoError(t, err)

	reg, err := s.RegisterResource(ctx, &vaccelpb.RegisterResourceRequest{
		SessionId:    sess.GetSessionId(),
		ResourceType: vaccelpb.ResourceType_SHARED_OBJECT,
		Paths:        []string{"/ignored/a.so"},
		Files:        []*vaccelpb.File{{Name: "a.so", Data: []byte("bytes")}},
	})
	require.NoError(t, err)
	require.False(t, reg.HasError())
	assert.Equal(t, 1, s.ResourceCount())
	pinned, err := s.resources.Find(reg.GetResourceId())
	require.NoError(t, err)
	assert.Equal(t, []byte("bytes"), pinned.Bytes())

	_, err = s.UnregisterResource(ctx, &vaccelpb.UnregisterResourceRequest{
		SessionId:  sess.GetSessionId(),
		ResourceId: reg.GetResourceId(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, s.ResourceCount())
}

func TestRegisterResourceRuntimeErrorSurfacesAsVaccelError(t *testing.T) {
	s, mock := newTestServer(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, &vaccelpb.CreateSessionRequest{})
	require.NoError(t, err)

	mock.Errors["RegisterResource"] = vaccelerr.NewNativeError(42, "out of memory")

	reg, err := s.RegisterResource(ctx, &vaccelpb.RegisterResourceRequest{
		SessionId:    sess.GetSessionId(),
		ResourceType: vaccelpb.ResourceType_SHARED_OBJECT,
		Paths:        []string{"/lib/a.so"},
	})
	require.NoError(t, err) // native errors travel as data, not as a gRPC error
	require.True(t, reg.HasError())
	assert.Equal(t, int64(42), reg.GetError().GetVaccelCode())
}

func TestGenopUnaryRoundTrip(t *testing.T) {
	s, mock := newTestServer(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, &vaccelpb.CreateSessionRequest{})
	require.NoError(t, err)

	mock.GenopOut = []nativeruntime.Arg{{Buf: []byte("result")}}

	resp, err := s.Genop(ctx, &vaccelpb.GenopRequest{
		SessionId: sess.GetSessionId(),
		ReadArgs:  []*vaccelpb.Arg{{Buf: []byte("input")}},
	})
	require.NoError(t, err)
	require.False(t, resp.HasError())
	require.Len(t, resp.GetGenopResult().GetWriteArgs(), 1)
	assert.Equal(t, []byte("result"), resp.GetGenopResult().GetWriteArgs()[0].GetBuf())
}

func TestTensorflowModelLoadRejectsWrongResourceKind(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, &vaccelpb.CreateSessionRequest{})
	require.NoError(t, err)

	reg, err := s.RegisterResource(ctx, &vaccelpb.RegisterResourceRequest{
		SessionId:    sess.GetSessionId(),
		ResourceType: vaccelpb.ResourceType_SHARED_OBJECT,
		Files:        []*vaccelpb.File{{Name: "a.so", Data: []byte("bytes")}},
	})
	require.NoError(t, err)
	require.False(t, reg.HasError())

	_, err = s.TensorflowModelLoad(ctx, &vaccelpb.TensorflowModelLoadRequest{
		SessionId:  sess.GetSessionId(),
		ResourceId: reg.GetResourceId(),
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestGetTimersEmptyForUnknownSession(t *testing.T) {
	s, _ := newTestServer(t)
	resp, err := s.GetTimers(context.Background(), &vaccelpb.ProfilingRequest{SessionId: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.GetRegions())
}
