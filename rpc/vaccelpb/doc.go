// Package vaccelpb holds the wire message and gRPC service definitions for
// the vaccel RPC bridge, written by hand to match proto/vaccel.proto (no
// protoc run produced them).
//
// The generated message types use the legacy protoc-gen-go v1 shape
// (Reset/String/ProtoMessage plus protobuf struct tags) rather than the
// modern reflection-table codegen. google.golang.org/protobuf's runtime
// still accepts this shape through its legacy message wrapper, which is
// how most protobuf-go v1.3-era generated code keeps working unmodified
// against the current runtime.
package vaccelpb
