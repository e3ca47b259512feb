package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirilMT/WeekendPlanningProject-sub000/internal/scheduling"
)

func validRequest() ScheduleRequest {
	return ScheduleRequest{
		Tasks: []scheduling.TaskDefinition{
			{ID: "pm-1", Type: scheduling.TaskTypePM, Quantity: 1},
			{ID: "rep-1", Type: scheduling.TaskTypeREP, Quantity: 1},
		},
		PresentTechnicians: []string{"anna"},
		RepAssignments:     []scheduling.RepSelection{{TaskID: "rep-1"}},
	}
}

func TestScheduleRequestValidate(t *testing.T) {
	assert.NoError(t, validRequest().Validate())

	r := validRequest()
	r.Tasks = nil
	assert.ErrorContains(t, r.Validate(), "no tasks")

	r = validRequest()
	r.PresentTechnicians = nil
	assert.ErrorContains(t, r.Validate(), "no present technicians")

	r = validRequest()
	r.Tasks[0].ID = ""
	assert.ErrorContains(t, r.Validate(), "no id")

	r = validRequest()
	r.Tasks[1].ID = "pm-1"
	assert.ErrorContains(t, r.Validate(), "duplicate task id")

	r = validRequest()
	r.Tasks[0].Type = "INSPECTION"
	assert.ErrorContains(t, r.Validate(), "unknown type")

	r = validRequest()
	r.RepAssignments[0].TaskID = ""
	assert.ErrorContains(t, r.Validate(), "without task id")
}

func TestScheduleRequestValidateLetsDegenerateNumbersThrough(t *testing.T) {
	// Zero quantity and zero headcount are engine outcomes, not request errors.
	r := validRequest()
	r.Tasks[0].Quantity = 0
	r.Tasks[0].TechniciansNeeded = 0
	assert.NoError(t, r.Validate())
}
