//go:build profiling

package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
)

func TestStartRecordsOneSample(t *testing.T) {
	r := New("[vaccel-agent] ")
	stop := r.Start(1, "genop")
	time.Sleep(time.Millisecond)
	stop()

	regions := r.GetTimers(1)
	require.Len(t, regions, 1)
	assert.Equal(t, "[vaccel-agent] genop", regions[0].GetName())
	require.Len(t, regions[0].GetSamples(), 1)
	assert.Greater(t, regions[0].GetSamples()[0].GetDuration(), uint64(0))
}

func TestGetTimersUnknownSessionReturnsNil(t *testing.T) {
	r := New("[vaccel-agent] ")
	assert.Nil(t, r.GetTimers(99))
}

func TestMergeAppendsSamples(t *testing.T) {
	r := New("[vaccel-client] ")
	stop := r.Start(1, "create_session")
	stop()

	r.Merge(1, []*vaccelpb.ProfRegion{
		{Name: "[vaccel-agent] genop", Samples: []*vaccelpb.ProfSample{{Start: 1, Duration: 2}}},
	})

	regions := r.GetTimers(1)
	require.Len(t, regions, 2)
}

func TestEvictForgetsSession(t *testing.T) {
	r := New("[vaccel-agent] ")
	stop := r.Start(1, "op")
	stop()
	require.Len(t, r.GetTimers(1), 1)

	r.Evict(1)
	assert.Nil(t, r.GetTimers(1))
}
