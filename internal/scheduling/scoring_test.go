package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedNames(task TaskDefinition, groups [][]*workerState) []string {
	ranked := rankGroups(task, groups)
	names := make([]string, len(ranked))
	for i, g := range ranked {
		names[i] = g.nameKey
	}
	return names
}

func TestRankGroupsPrefersSizeCloseness(t *testing.T) {
	task := TaskDefinition{ID: "t1", TechniciansNeeded: 2, RequiredSkills: []int64{1}}
	a := &workerState{worker: Worker{Name: "anna", Skills: map[int64]int{1: 2}}}
	b := &workerState{worker: Worker{Name: "bert", Skills: map[int64]int{1: 2}}}

	names := rankedNames(task, [][]*workerState{{a}, {a, b}})
	assert.Equal(t, []string{"anna,bert", "anna"}, names)
}

func TestRankGroupsExplicitOverrideWinsOverSkill(t *testing.T) {
	task := TaskDefinition{ID: "t1", TechniciansNeeded: 1, RequiredSkills: []int64{1}}
	strong := &workerState{worker: Worker{Name: "anna", Skills: map[int64]int{1: 4}}}
	preferred := &workerState{worker: Worker{
		Name:          "bert",
		Skills:        map[int64]int{1: 1},
		GroupPriority: map[string]int{"t1": 1},
	}}

	names := rankedNames(task, [][]*workerState{{strong}, {preferred}})
	assert.Equal(t, "bert", names[0])
}

func TestRankGroupsHigherSkillFirst(t *testing.T) {
	task := TaskDefinition{ID: "t1", TechniciansNeeded: 1, RequiredSkills: []int64{1}}
	strong := &workerState{worker: Worker{Name: "bert", Skills: map[int64]int{1: 4}}}
	weak := &workerState{worker: Worker{Name: "anna", Skills: map[int64]int{1: 1}}}

	names := rankedNames(task, [][]*workerState{{weak}, {strong}})
	assert.Equal(t, "bert", names[0])
}

func TestRankGroupsLighterWorkloadBreaksSkillTies(t *testing.T) {
	task := TaskDefinition{ID: "t1", TechniciansNeeded: 1, RequiredSkills: []int64{1}}
	busy := &workerState{worker: Worker{Name: "anna", Skills: map[int64]int{1: 2}}, busy: 120}
	idle := &workerState{worker: Worker{Name: "bert", Skills: map[int64]int{1: 2}}}

	names := rankedNames(task, [][]*workerState{{busy}, {idle}})
	assert.Equal(t, "bert", names[0])
}

func TestRankGroupsNameTieBreakIsDeterministic(t *testing.T) {
	task := TaskDefinition{ID: "t1", TechniciansNeeded: 1, RequiredSkills: []int64{1}}
	a := &workerState{worker: Worker{Name: "anna", Skills: map[int64]int{1: 2}}}
	b := &workerState{worker: Worker{Name: "bert", Skills: map[int64]int{1: 2}}}

	first := rankedNames(task, [][]*workerState{{b}, {a}})
	second := rankedNames(task, [][]*workerState{{a}, {b}})
	require.Equal(t, first, second)
	assert.Equal(t, "anna", first[0])
}

func TestScoreGroupSkillAverages(t *testing.T) {
	task := TaskDefinition{ID: "t1", TechniciansNeeded: 2, RequiredSkills: []int64{2, 1}}
	a := &workerState{worker: Worker{Name: "anna", Skills: map[int64]int{1: 4, 2: 0}}}
	b := &workerState{worker: Worker{Name: "bert", Skills: map[int64]int{1: 2, 2: 2}}}

	g := scoreGroup(task, []int64{1, 2}, []*workerState{a, b})
	require.Len(t, g.skillAvgs, 2)
	assert.InDelta(t, 3.0, g.skillAvgs[0], 1e-9) // technology 1: (4+2)/2
	assert.InDelta(t, 1.0, g.skillAvgs[1], 1e-9) // technology 2: (0+2)/2
	assert.InDelta(t, 2.0, g.combinedAvg, 1e-9)
	assert.Equal(t, "anna,bert", g.nameKey)
}
