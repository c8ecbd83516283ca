package agentserver

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/nubificus/vaccel-rpc-go/internal/vlog"
)

// correlationUnaryInterceptor stamps every unary RPC with a request id,
// logged alongside the method name so agent-side log lines for a single
// call can be grepped together.
func correlationUnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id := uuid.NewString()
	log := vlog.Default().With("request_id", id, "method", info.FullMethod)
	log.Debug("request received")
	resp, err := handler(ctx, req)
	if err != nil {
		log.Errorw("request failed", "error", err)
	} else {
		log.Debug("request completed")
	}
	return resp, err
}

// correlationStreamInterceptor is the GenopStream counterpart: one id
// covers every fragment of the stream.
func correlationStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	id := uuid.NewString()
	log := vlog.Default().With("request_id", id, "method", info.FullMethod)
	log.Debug("stream opened")
	err := handler(srv, ss)
	if err != nil {
		log.Errorw("stream failed", "error", err)
	} else {
		log.Debug("stream closed")
	}
	return err
}
