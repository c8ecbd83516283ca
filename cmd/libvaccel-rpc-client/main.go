// Command libvaccel-rpc-client builds, via `go build -buildmode=c-shared`,
// the C ABI an application written in C links against in place of the
// native vaccel runtime. It is a thin cgo skin over package client: every
// exported function takes the opaque handle returned by
// vaccel_rpc_client_create and forwards to one client method.
//
// The real vaccel C API marshals a vaccel_arg array by struct layout;
// without a header available to confirm field offsets and padding across
// architectures, vaccel_rpc_client_genop here is intentionally scoped to
// a single read buffer and a single write buffer rather than the full
// arg array, see DESIGN.md. The same gap applies to the TensorFlow/
// TensorFlow Lite/Torch inference calls, whose requests and results
// carry arrays of tensors and named nodes: this file exports the
// load/unload half of those ops, which only need a resource id, and
// leaves the tensor-array run calls to client.Client's Go API.
package main

/*
#include <stddef.h>
#include <stdint.h>

typedef long long vaccel_id_t;
*/
import "C"

import (
	"context"
	"runtime/cgo"
	"time"
	"unsafe"

	"github.com/nubificus/vaccel-rpc-go/client"
	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
)

const dialTimeout = 5 * time.Second

//export vaccel_rpc_client_create
func vaccel_rpc_client_create() C.uintptr_t {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	c, err := client.Dial(ctx, "")
	if err != nil {
		return 0
	}
	return C.uintptr_t(cgo.NewHandle(c))
}

//export vaccel_rpc_client_destroy
func vaccel_rpc_client_destroy(handle C.uintptr_t) {
	h := cgo.Handle(handle)
	c := h.Value().(*client.Client)
	c.Close()
	h.Delete()
}

func clientFrom(handle C.uintptr_t) (*client.Client, bool) {
	if handle == 0 {
		return nil, false
	}
	c, ok := cgo.Handle(handle).Value().(*client.Client)
	return c, ok
}

//export vaccel_rpc_client_session_init
func vaccel_rpc_client_session_init(handle C.uintptr_t, flags C.uint32_t) C.vaccel_id_t {
	c, ok := clientFrom(handle)
	if !ok {
		return -1
	}
	id, err := c.CreateSession(context.Background(), uint32(flags))
	if err != nil {
		return -1
	}
	return C.vaccel_id_t(id)
}

//export vaccel_rpc_client_session_update
func vaccel_rpc_client_session_update(handle C.uintptr_t, sessID C.vaccel_id_t, flags C.uint32_t) C.int {
	c, ok := clientFrom(handle)
	if !ok {
		return -1
	}
	if err := c.UpdateSession(context.Background(), int64(sessID), uint32(flags)); err != nil {
		return -1
	}
	return 0
}

//export vaccel_rpc_client_session_release
func vaccel_rpc_client_session_release(handle C.uintptr_t, sessID C.vaccel_id_t) C.int {
	c, ok := clientFrom(handle)
	if !ok {
		return -1
	}
	if err := c.DestroySession(context.Background(), int64(sessID)); err != nil {
		return -1
	}
	return 0
}

//export vaccel_rpc_client_get_timers
func vaccel_rpc_client_get_timers(handle C.uintptr_t, sessID C.vaccel_id_t) C.size_t {
	c, ok := clientFrom(handle)
	if !ok {
		return 0
	}
	timers, err := c.GetTimers(context.Background(), int64(sessID))
	if err != nil {
		return 0
	}
	return C.size_t(len(timers))
}

//export vaccel_rpc_client_tensorflow_model_load
func vaccel_rpc_client_tensorflow_model_load(handle C.uintptr_t, sessID C.vaccel_id_t, resourceID C.vaccel_id_t) C.int {
	c, ok := clientFrom(handle)
	if !ok {
		return -1
	}
	if err := c.TensorflowModelLoad(context.Background(), int64(sessID), int64(resourceID)); err != nil {
		return -1
	}
	return 0
}

//export vaccel_rpc_client_tensorflow_model_unload
func vaccel_rpc_client_tensorflow_model_unload(handle C.uintptr_t, sessID C.vaccel_id_t, resourceID C.vaccel_id_t) C.int {
	c, ok := clientFrom(handle)
	if !ok {
		return -1
	}
	if err := c.TensorflowModelUnload(context.Background(), int64(sessID), int64(resourceID)); err != nil {
		return -1
	}
	return 0
}

//export vaccel_rpc_client_tensorflow_lite_model_load
func vaccel_rpc_client_tensorflow_lite_model_load(handle C.uintptr_t, sessID C.vaccel_id_t, resourceID C.vaccel_id_t) C.int {
	c, ok := clientFrom(handle)
	if !ok {
		return -1
	}
	if err := c.TensorflowLiteModelLoad(context.Background(), int64(sessID), int64(resourceID)); err != nil {
		return -1
	}
	return 0
}

//export vaccel_rpc_client_tensorflow_lite_model_unload
func vaccel_rpc_client_tensorflow_lite_model_unload(handle C.uintptr_t, sessID C.vaccel_id_t, resourceID C.vaccel_id_t) C.int {
	c, ok := clientFrom(handle)
	if !ok {
		return -1
	}
	if err := c.TensorflowLiteModelUnload(context.Background(), int64(sessID), int64(resourceID)); err != nil {
		return -1
	}
	return 0
}

// vaccel_rpc_client_genop runs a generic operation over a single read
// buffer and a single write buffer, writing the agent's result into
// writeBuf (truncated to writeLen) and returning the number of bytes
// written, or -1 on failure.
//
//export vaccel_rpc_client_genop
func vaccel_rpc_client_genop(handle C.uintptr_t, sessID C.vaccel_id_t, readBuf unsafe.Pointer, readLen C.size_t, writeBuf unsafe.Pointer, writeLen C.size_t) C.long {
	c, ok := clientFrom(handle)
	if !ok {
		return -1
	}

	read := C.GoBytes(readBuf, C.int(readLen))
	out, err := c.Genop(context.Background(), int64(sessID),
		[]*vaccelpb.Arg{{Buf: read}},
		[]*vaccelpb.Arg{{Buf: make([]byte, writeLen)}},
	)
	if err != nil || len(out) == 0 {
		return -1
	}

	n := len(out[0].GetBuf())
	if C.size_t(n) > writeLen {
		n = int(writeLen)
	}
	if n > 0 {
		dst := unsafe.Slice((*byte)(writeBuf), n)
		copy(dst, out[0].GetBuf()[:n])
	}
	return C.long(n)
}

func main() {}
