package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveDuration(t *testing.T) {
	tests := []struct {
		name    string
		planned int
		needed  int
		actual  int
		want    int
	}{
		{name: "full headcount keeps planned", planned: 100, needed: 2, actual: 2, want: 100},
		{name: "half headcount doubles duration", planned: 100, needed: 2, actual: 1, want: 200},
		{name: "extra headcount shrinks duration", planned: 90, needed: 2, actual: 3, want: 60},
		{name: "zero planned stays zero", planned: 0, needed: 2, actual: 1, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, effectiveDuration(tt.planned, tt.needed, tt.actual))
		})
	}
}

func TestFindSlotPartialCompletionThreshold(t *testing.T) {
	cfg := DefaultConfig()

	// Worker already booked for the first 30 minutes; the 80-minute task can
	// only start at minute 30.
	makeMember := func() []*workerState {
		ws := &workerState{worker: Worker{Name: "anna"}}
		ws.commit(Interval{Start: 0, End: 30, Label: "earlier"})
		return []*workerState{ws}
	}

	t.Run("70 of 80 minutes remain, accepted incomplete", func(t *testing.T) {
		pl, ok := findSlot(makeMember(), 80, 100, cfg)
		require.True(t, ok)
		assert.Equal(t, 30, pl.start)
		assert.Equal(t, 70, pl.duration)
		assert.True(t, pl.incomplete)
	})

	t.Run("exactly 75 percent remains, accepted", func(t *testing.T) {
		pl, ok := findSlot(makeMember(), 80, 90, cfg)
		require.True(t, ok)
		assert.Equal(t, 30, pl.start)
		assert.Equal(t, 60, pl.duration)
		assert.True(t, pl.incomplete)
	})

	t.Run("below 75 percent, rejected", func(t *testing.T) {
		_, ok := findSlot(makeMember(), 80, 85, cfg)
		assert.False(t, ok)
	})
}

func TestFindSlotZeroDuration(t *testing.T) {
	members := []*workerState{{worker: Worker{Name: "anna"}}}
	pl, ok := findSlot(members, 0, 434, DefaultConfig())
	require.True(t, ok)
	assert.Equal(t, 0, pl.start)
	assert.Equal(t, 0, pl.duration)
	assert.False(t, pl.incomplete)
}

func TestFindSlotSkipsBusyMembers(t *testing.T) {
	free := &workerState{worker: Worker{Name: "anna"}}
	busy := &workerState{worker: Worker{Name: "bert"}}
	busy.commit(Interval{Start: 0, End: 60, Label: "earlier"})

	pl, ok := findSlot([]*workerState{free, busy}, 30, 434, DefaultConfig())
	require.True(t, ok)
	assert.Equal(t, 60, pl.start, "one busy member pushes the whole group past the conflict")
}

func TestWorkerStateCommitKeepsIntervalsSorted(t *testing.T) {
	ws := &workerState{worker: Worker{Name: "anna"}}
	ws.commit(Interval{Start: 100, End: 130})
	ws.commit(Interval{Start: 0, End: 30})
	ws.commit(Interval{Start: 45, End: 60})

	require.Len(t, ws.intervals, 3)
	assert.Equal(t, 0, ws.intervals[0].Start)
	assert.Equal(t, 45, ws.intervals[1].Start)
	assert.Equal(t, 100, ws.intervals[2].Start)
	assert.Equal(t, 75, ws.busy)

	assert.False(t, ws.freeBetween(20, 40))
	assert.True(t, ws.freeBetween(30, 45))
	assert.True(t, ws.freeBetween(60, 100))
}
