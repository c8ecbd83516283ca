//go:build !profiling

package profiling

import "github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"

// Regions is the zero-cost stand-in linked when the profiling build tag
// is absent; every method is a no-op so call sites don't need their own
// build tags.
type Regions struct{}

// New returns a no-op Regions.
func New(prefix string) *Regions { return &Regions{} }

// Stop records one timing sample when called; returned by Start.
type Stop func()

// Start returns a no-op Stop.
func (r *Regions) Start(sessID int64, name string) Stop { return func() {} }

// GetTimers always returns nil.
func (r *Regions) GetTimers(sessID int64) []*vaccelpb.ProfRegion { return nil }

// Merge is a no-op.
func (r *Regions) Merge(sessID int64, regions []*vaccelpb.ProfRegion) {}

// Evict is a no-op.
func (r *Regions) Evict(sessID int64) {}
