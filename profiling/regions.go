//go:build profiling

// Package profiling aggregates per-session named-region timings on both
// the agent and the client stub. Region names are prefixed with the side
// that recorded them ("[vaccel-agent] " or "[vaccel-client] ") so that
// GetTimers can merge both sides' samples into one report without name
// collisions.
//
// The full implementation in this file only builds with the profiling
// build tag; the default build links regions_noop.go instead, so
// profiling instrumentation costs nothing unless explicitly enabled.
package profiling

import (
	"sort"
	"sync"
	"time"

	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
)

// Regions is a per-process, per-session timing aggregator.
type Regions struct {
	prefix string

	mu   sync.Mutex
	data map[int64]map[string][]*vaccelpb.ProfSample
}

// New returns a Regions aggregator that prefixes every region name it
// records with prefix.
func New(prefix string) *Regions {
	return &Regions{prefix: prefix, data: make(map[int64]map[string][]*vaccelpb.ProfSample)}
}

// Stop records one timing sample when called; returned by Start.
type Stop func()

// Start begins timing a named region for sessID and returns a function
// that records the elapsed duration when called.
func (r *Regions) Start(sessID int64, name string) Stop {
	begin := time.Now()
	return func() {
		r.record(sessID, r.prefix+name, begin, time.Since(begin))
	}
}

func (r *Regions) record(sessID int64, name string, start time.Time, dur time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.data[sessID]
	if !ok {
		sess = make(map[string][]*vaccelpb.ProfSample)
		r.data[sessID] = sess
	}
	sess[name] = append(sess[name], &vaccelpb.ProfSample{
		Start:    uint64(start.UnixNano()),
		Duration: uint64(dur.Nanoseconds()),
	})
}

// GetTimers returns the recorded regions for sessID as wire messages,
// ordered by region name.
func (r *Regions) GetTimers(sessID int64) []*vaccelpb.ProfRegion {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.data[sessID]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(sess))
	for name := range sess {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*vaccelpb.ProfRegion, 0, len(sess))
	for _, name := range names {
		out = append(out, &vaccelpb.ProfRegion{Name: name, Samples: sess[name]})
	}
	return out
}

// Merge folds externally-collected regions (for example the agent's
// regions returned to the client alongside an RPC response) into this
// aggregator under sessID.
func (r *Regions) Merge(sessID int64, regions []*vaccelpb.ProfRegion) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.data[sessID]
	if !ok {
		sess = make(map[string][]*vaccelpb.ProfSample)
		r.data[sessID] = sess
	}
	for _, region := range regions {
		sess[region.GetName()] = append(sess[region.GetName()], region.GetSamples()...)
	}
}

// Evict forgets every region recorded for sessID, called once the
// session has been destroyed.
func (r *Regions) Evict(sessID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, sessID)
}
