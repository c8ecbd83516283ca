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

// Package agentserver implements the vaccel agent: the out-of-process
// peer a client stub talks to over gRPC, dispatching each RPC onto the
// session and resource stores and finally the native runtime.
package agentserver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/nubificus/vaccel-rpc-go/internal/vlog"
	"github.com/nubificus/vaccel-rpc-go/nativeruntime"
	"github.com/nubificus/vaccel-rpc-go/profiling"
	"github.com/nubificus/vaccel-rpc-go/resource"
	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
	"github.com/nubificus/vaccel-rpc-go/scheduler"
	"github.com/nubificus/vaccel-rpc-go/session"
	"github.com/nubificus/vaccel-rpc-go/transport"
)

// idleSweepInterval governs how often Run checks for sessions a client
// has stopped touching, logged as a housekeeping signal rather than
// auto-destroyed: only the owning application knows whether a quiet
// session is abandoned or simply between bursts of native calls.
const idleSweepInterval = 5 * time.Minute

// idleSweepThreshold is how long a session can go untouched before the
// sweep reports it.
const idleSweepThreshold = 30 * time.Minute

// state is the agent lifecycle's state machine: an agent moves strictly
// forward through these states and never back.
type state int

const (
	stateCreated state = iota
	stateInitialized
	stateRunning
	stateStopped
	stateShutdown
)

// Options configures a Server.
type Options struct {
	Address string // e.g. "tcp://127.0.0.1:65500", "unix:///run/vaccel.sock"
	Runtime nativeruntime.Runtime
	GrpcOptions []grpc.ServerOption
}

// Server is the vaccel agent.
type Server struct {
	opts Options

	mu    sync.Mutex
	state state

	sessions  *session.Store
	resources *resource.Store
	profiles  *profiling.Regions

	addr     transport.Address
	listener interface{ Close() error }
	grpcSrv  *grpc.Server

	vaccelpb.UnimplementedRpcAgentServer
}

// New constructs a Server in the Created state.
func New(opts Options) (*Server, error) {
	if opts.Runtime == nil {
		return nil, errors.New("agentserver: Runtime is required")
	}
	addr, err := transport.Parse(opts.Address)
	if err != nil {
		return nil, err
	}
	return &Server{
		opts:      opts,
		state:     stateCreated,
		sessions:  session.NewStore(),
		resources: resource.NewStore(),
		profiles:  profiling.New("[vaccel-agent] "),
		addr:      addr,
	}, nil
}

// Init transitions Created -> Initialized, building the gRPC server and
// registering the RpcAgent service.
func (s *Server) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateCreated {
		return fmt.Errorf("agentserver: Init called in state %d, want Created", s.state)
	}
	grpcOpts := append([]grpc.ServerOption{
		grpc.UnaryInterceptor(correlationUnaryInterceptor),
		grpc.StreamInterceptor(correlationStreamInterceptor),
	}, s.opts.GrpcOptions...)
	s.grpcSrv = grpc.NewServer(grpcOpts...)
	vaccelpb.RegisterRpcAgentServer(s.grpcSrv, s)
	s.state = stateInitialized
	return nil
}

// Run transitions Initialized -> Running and blocks serving RPCs until
// ctx is canceled or Stop is called.
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.state != stateInitialized {
		s.mu.Unlock()
		return fmt.Errorf("agentserver: Run called in state %d, want Initialized", s.state)
	}
	lis, err := transport.Listen(ctx, s.addr)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.listener = lis
	s.state = stateRunning
	s.mu.Unlock()

	vlog.Default().Infow("agent listening", "address", s.addr.String())

	scheduler.Repeat(s.sweepIdleSessions, idleSweepInterval)

	go func() {
		<-ctx.Done()
		s.grpcSrv.GracefulStop()
	}()

	if err := s.grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Stop transitions Running -> Stopped, halting the gRPC server without
// releasing session/resource state.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateRunning {
		return
	}
	s.grpcSrv.GracefulStop()
	s.state = stateStopped
}

// Shutdown transitions Stopped (or Running) -> Shutdown, the terminal
// state; from any other state it does nothing. Sessions
// and resources still held at this point are abandoned, not released:
// callers are expected to have driven DestroySession/UnregisterResource
// to completion for every live entry before calling Shutdown.
func (s *Server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateStopped && s.state != stateRunning {
		return
	}
	if s.grpcSrv != nil {
		s.grpcSrv.Stop()
	}
	s.state = stateShutdown
	vlog.Default().Info("agent shut down")
}

// sweepIdleSessions is the cooperative-scheduler housekeeping task: it
// never destroys a session itself, it only surfaces candidates so an
// operator (or a future policy) can decide.
func (s *Server) sweepIdleSessions() {
	idle := s.sessions.IdleSince(time.Now(), idleSweepThreshold)
	if len(idle) > 0 {
		vlog.Default().Infow("idle sessions", "count", len(idle), "ids", idle)
	}
}

// SessionCount reports the number of live sessions, used by tests and
// diagnostics.
func (s *Server) SessionCount() int {
	return s.sessions.Len()
}

// ResourceCount reports the number of live resources.
func (s *Server) ResourceCount() int {
	return s.resources.Len()
}
