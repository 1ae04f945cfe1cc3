package task

import "math"

// NextID returns the id for a new task: one more than the highest id present,
// or 1 for an empty list. Ids of deleted tasks may be handed out again.
// It reports false when the highest id is already math.MaxInt.
func NextID(tasks []Task) (int, bool) {
	maxID := 0
	for _, t := range tasks {
		maxID = max(maxID, t.ID)
	}
	if maxID == math.MaxInt {
		return 0, false
	}
	return maxID + 1, true
}
