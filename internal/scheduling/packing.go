package scheduling

import "fmt"

// placement is a slot the packer found for one instance.
type placement struct {
	start      int
	duration   int
	incomplete bool
}

// effectiveDuration redistributes the planned total effort across the
// headcount actually secured: planned * needed / actual. A zero planned
// duration stays zero.
func effectiveDuration(planned, needed, actual int) int {
	if planned <= 0 || actual <= 0 {
		return planned
	}
	return planned * needed / actual
}

// findSlot walks trial start times across the shift looking for a window in
// which every group member is free. When the full effective duration no
// longer fits before shift end, the remainder is accepted as an incomplete
// placement only if it still covers the configured fraction of the effective
// duration.
func findSlot(members []*workerState, effective, totalMinutes int, cfg Config) (placement, bool) {
	for start := 0; start <= totalMinutes; start += cfg.SlotStepMinutes {
		duration := effective
		incomplete := false
		if start+effective > totalMinutes {
			remaining := totalMinutes - start
			if remaining <= 0 {
				break
			}
			if remaining*cfg.PartialDen < effective*cfg.PartialNum {
				continue
			}
			duration = remaining
			incomplete = true
		}
		if !allFree(members, start, start+duration) {
			continue
		}
		return placement{start: start, duration: duration, incomplete: incomplete}, true
	}
	return placement{}, false
}

// allFree reports whether every member's timeline is clear on [start, end).
func allFree(members []*workerState, start, end int) bool {
	for _, m := range members {
		if !m.freeBetween(start, end) {
			return false
		}
	}
	return true
}

// commitPlacement writes the chosen slot onto every member's timeline and
// builds the assignment records for the instance.
func commitPlacement(task TaskDefinition, instanceID string, members []*workerState, pl placement, effective int) []Assignment {
	note := ""
	if len(members) != task.TechniciansNeeded {
		note = fmt.Sprintf("planned for %d technicians, scheduled with %d", task.TechniciansNeeded, len(members))
	}

	records := make([]Assignment, 0, len(members))
	for _, m := range members {
		m.commit(Interval{Start: pl.start, End: pl.start + pl.duration, Label: instanceID})
		records = append(records, Assignment{
			Worker:           m.worker.Name,
			InstanceID:       instanceID,
			StartMinute:      pl.start,
			DurationMinutes:  pl.duration,
			Incomplete:       pl.incomplete,
			OriginalDuration: effective,
			MismatchNote:     note,
		})
	}
	return records
}
