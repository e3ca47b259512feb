package scheduling

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repTask(id string, quantity, planned, needed int, priority string) TaskDefinition {
	return TaskDefinition{
		ID:                id,
		Name:              "Repair " + id,
		Type:              TaskTypeREP,
		Quantity:          quantity,
		PlannedMinutes:    planned,
		TechniciansNeeded: needed,
		Priority:          priority,
	}
}

func TestRepAssignmentIgnoresSkills(t *testing.T) {
	res := newTestEngine().Schedule(Input{
		Tasks:        []TaskDefinition{repTask("r1", 1, 60, 1, "B")},
		Workers:      []Worker{testWorker("anna", nil)}, // no skills at all
		TotalMinutes: testShiftMinutes,
		RepSelections: map[string]RepSelection{
			"r1": {TaskID: "r1", Technicians: []RepPick{{Name: "anna"}}},
		},
	})

	recs := recordsFor(res, "r1_1")
	require.Len(t, recs, 1)
	assert.Equal(t, "anna", recs[0].Worker)
	assert.Equal(t, 60, recs[0].DurationMinutes)
}

func TestRepSkipReasonPropagatesVerbatim(t *testing.T) {
	res := newTestEngine().Schedule(Input{
		Tasks:        []TaskDefinition{repTask("r1", 1, 60, 1, "B")},
		Workers:      []Worker{testWorker("anna", nil)},
		TotalMinutes: testShiftMinutes,
		RepSelections: map[string]RepSelection{
			"r1": {TaskID: "r1", Skipped: true, SkipReason: "spare part not on site"},
		},
	})

	require.Contains(t, res.UnassignedReasons, "r1_1")
	assert.Equal(t, ReasonUserSkipped, res.UnassignedReasons["r1_1"].Code)
	assert.Equal(t, "spare part not on site", res.UnassignedReasons["r1_1"].Message)
}

func TestRepWithoutSelectionIsUnassigned(t *testing.T) {
	res := newTestEngine().Schedule(Input{
		Tasks:        []TaskDefinition{repTask("r1", 1, 60, 1, "B")},
		Workers:      []Worker{testWorker("anna", nil)},
		TotalMinutes: testShiftMinutes,
	})

	require.Contains(t, res.UnassignedReasons, "r1_1")
	assert.Equal(t, ReasonNoEligibleWorkers, res.UnassignedReasons["r1_1"].Code)
}

func TestRepForceAssignedTechnicianIsAlwaysIncluded(t *testing.T) {
	res := newTestEngine().Schedule(Input{
		Tasks: []TaskDefinition{repTask("r1", 1, 90, 2, "B")},
		Workers: []Worker{
			testWorker("anna", nil),
			testWorker("bert", nil),
			testWorker("carl", nil),
		},
		TotalMinutes: testShiftMinutes,
		RepSelections: map[string]RepSelection{
			"r1": {TaskID: "r1", Technicians: []RepPick{
				{Name: "carl", ForceAssign: true},
				{Name: "anna"},
				{Name: "bert"},
			}},
		},
	})

	recs := recordsFor(res, "r1_1")
	require.Len(t, recs, 2)
	workers := []string{recs[0].Worker, recs[1].Worker}
	sort.Strings(workers)
	assert.Contains(t, workers, "carl")
}

func TestRepSelectionFilteredByPresenceAndLine(t *testing.T) {
	task := repTask("r1", 1, 60, 1, "B")
	task.Lines = []int{1}

	res := newTestEngine().Schedule(Input{
		Tasks:        []TaskDefinition{task},
		Workers:      []Worker{testWorker("bert", nil, 2)}, // wrong line
		TotalMinutes: testShiftMinutes,
		RepSelections: map[string]RepSelection{
			"r1": {TaskID: "r1", Technicians: []RepPick{
				{Name: "anna"}, // not present today
				{Name: "bert"},
			}},
		},
	})

	require.Contains(t, res.UnassignedReasons, "r1_1")
	assert.Equal(t, ReasonNoEligibleWorkers, res.UnassignedReasons["r1_1"].Code)
}
