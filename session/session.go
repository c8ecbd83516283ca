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

// Package session tracks the live vaccel sessions an agent is servicing.
// A session groups the resources an application has registered and bounds
// the lifetime of native-runtime state on the agent side.
package session

import (
	"sync"
	"time"

	"github.com/nubificus/vaccel-rpc-go/vaccelerr"
)

// Session is a single client's handle onto the agent, identified by the
// id the agent assigned it in CreateSession.
type Session struct {
	mu    sync.Mutex
	id    int64
	flags uint32

	resourceIDs map[int64]struct{}
	lastActive  time.Time
}

func newSession(id int64, flags uint32) *Session {
	return &Session{id: id, flags: flags, resourceIDs: make(map[int64]struct{}), lastActive: time.Now()}
}

// Touch records that the session was just used by an RPC, resetting its
// idle clock for the sweep in Store.IdleSince.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
}

// IdleFor reports how long the session has gone without a Touch.
func (s *Session) IdleFor(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}

// ID returns the session's assigned id.
func (s *Session) ID() int64 { return s.id }

// Flags returns the session's current flag bitmask.
func (s *Session) Flags() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// SetFlags replaces the session's flag bitmask, applied by UpdateSession.
func (s *Session) SetFlags(flags uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags = flags
}

// AddResource records that resourceID was registered under this session.
func (s *Session) AddResource(resourceID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resourceIDs[resourceID] = struct{}{}
}

// RemoveResource forgets resourceID, called once the resource has been
// unregistered.
func (s *Session) RemoveResource(resourceID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.resourceIDs, resourceID)
}

// ResourceIDs returns a snapshot of the resource ids currently owned by
// this session.
func (s *Session) ResourceIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.resourceIDs))
	for id := range s.resourceIDs {
		ids = append(ids, id)
	}
	return ids
}

// Store is the concurrent id -> Session map an agent keeps for the
// sessions it is currently servicing.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	nextID   int64
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Create allocates a new session id and stores a Session under it.
// Session ids are assigned sequentially starting at 1; a collision would
// indicate a bridge-side counter bug, not user error, so it is reported
// as an InternalError rather than silently overwritten.
func (st *Store) Create(flags uint32) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.nextID++
	id := st.nextID
	if _, exists := st.sessions[id]; exists {
		return nil, vaccelerr.NewInternalError("session id collision", nil)
	}
	s := newSession(id, flags)
	st.sessions[id] = s
	return s, nil
}

// Insert registers a Session under an id already assigned elsewhere (the
// native runtime is the authority on session numbering; the bridge
// mirrors it rather than keeping a second counter). A collision here
// means the runtime handed back an id the bridge already believes is
// live, which is an internal error rather than user-triggerable.
func (st *Store) Insert(id int64, flags uint32) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.sessions[id]; exists {
		return nil, vaccelerr.NewInternalError("session id collision", nil)
	}
	s := newSession(id, flags)
	st.sessions[id] = s
	return s, nil
}

// Find looks up a session by id.
func (st *Store) Find(id int64) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, vaccelerr.NewLookupError("session", id)
	}
	return s, nil
}

// Remove deletes a session from the store and returns it, so the caller
// can release whatever native-runtime and resource state it still owns.
// Remove is the first step of destruction: once it returns, every other
// request on the id fails its lookup, even if the native release that
// follows fails.
func (st *Store) Remove(id int64) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, vaccelerr.NewLookupError("session", id)
	}
	delete(st.sessions, id)
	Lifetime.Close(s)
	return s, nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// IdleSince returns the ids of sessions that have not been Touch()ed for
// at least maxIdle, for the agent's periodic idle-session sweep.
func (st *Store) IdleSince(now time.Time, maxIdle time.Duration) []int64 {
	st.mu.RLock()
	defer st.mu.RUnlock()
	var ids []int64
	for id, s := range st.sessions {
		if s.IdleFor(now) >= maxIdle {
			ids = append(ids, id)
		}
	}
	return ids
}
