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

// Package resource tracks the native-runtime resources (shared objects,
// loaded models) an agent has registered on behalf of its sessions.
package resource

import (
	"sync"

	"github.com/nubificus/vaccel-rpc-go/vaccelerr"
)

// Kind is the closed set of resource payload shapes the agent can
// register. It is a tagged union expressed as an interface with a fixed
// set of implementers rather than open polymorphism: callers type-switch
// on Kind rather than registering new implementations.
type Kind interface {
	kind()
}

// SharedObject is a loadable .so payload, backed by file path or bytes.
type SharedObject struct {
	Path  string
	Bytes []byte
}

// SingleModel is a single opaque model file.
type SingleModel struct {
	Path  string
	Bytes []byte
}

// TFSavedModel is a TensorFlow SavedModel directory, carried as a set of
// named file payloads (saved_model.pb, variables/*, assets/*).
type TFSavedModel struct {
	Files map[string][]byte
}

// TorchModel is a TorchScript module file.
type TorchModel struct {
	Path  string
	Bytes []byte
}

// TFLiteModel is a TensorFlow Lite flatbuffer model file.
type TFLiteModel struct {
	Path  string
	Bytes []byte
}

func (*SharedObject) kind() {}
func (*SingleModel) kind()  {}
func (*TFSavedModel) kind() {}
func (*TorchModel) kind()   {}
func (*TFLiteModel) kind()  {}

// Pinned wraps a resource's backing bytes in a pre-sized arena that is
// never resized or moved after Register returns, so a pointer handed to
// the native runtime remains valid for the resource's lifetime.
type Pinned struct {
	id       int64
	sessID   int64
	kind     Kind
	arena    []byte
}

// ID returns the resource's assigned id.
func (p *Pinned) ID() int64 { return p.id }

// SessionID returns the id of the session that registered this resource.
func (p *Pinned) SessionID() int64 { return p.sessID }

// Kind returns the resource's payload variant.
func (p *Pinned) Kind() Kind { return p.kind }

// Bytes returns the resource's pinned backing storage.
func (p *Pinned) Bytes() []byte { return p.arena }

func newPinned(id, sessID int64, kind Kind, payload []byte) *Pinned {
	arena := make([]byte, len(payload))
	copy(arena, payload)
	return &Pinned{id: id, sessID: sessID, kind: kind, arena: arena}
}

// Store is the concurrent id -> Pinned map an agent keeps for the
// resources it has registered.
type Store struct {
	mu        sync.RWMutex
	resources map[int64]*Pinned
	nextID    int64
}

// NewStore returns an empty resource store.
func NewStore() *Store {
	return &Store{resources: make(map[int64]*Pinned)}
}

// Register pins payload under a newly assigned resource id, owned by
// sessID.
func (st *Store) Register(sessID int64, kind Kind, payload []byte) (*Pinned, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.nextID++
	id := st.nextID
	if _, exists := st.resources[id]; exists {
		return nil, vaccelerr.NewInternalError("resource id collision", nil)
	}
	p := newPinned(id, sessID, kind, payload)
	st.resources[id] = p
	return p, nil
}

// Insert pins payload under an id already assigned by the native
// runtime, which is the authority on resource numbering.
func (st *Store) Insert(id, sessID int64, kind Kind, payload []byte) (*Pinned, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.resources[id]; exists {
		return nil, vaccelerr.NewInternalError("resource id collision", nil)
	}
	p := newPinned(id, sessID, kind, payload)
	st.resources[id] = p
	return p, nil
}

// Find looks up a resource by id.
func (st *Store) Find(id int64) (*Pinned, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	p, ok := st.resources[id]
	if !ok {
		return nil, vaccelerr.NewLookupError("resource", id)
	}
	return p, nil
}

// Remove deletes a resource from the store, the last step of
// unregistration once any native-runtime release has already run.
func (st *Store) Remove(id int64) (*Pinned, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	p, ok := st.resources[id]
	if !ok {
		return nil, vaccelerr.NewLookupError("resource", id)
	}
	delete(st.resources, id)
	return p, nil
}

// Len returns the number of live resources.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.resources)
}
