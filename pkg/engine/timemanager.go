package engine

import "time"

// The iterative deepening loop does not start a new depth when less
// than this remains; a completed shallower result beats an abandoned
// deeper one.
const iterationSafetyMargin = 30 * time.Millisecond

// timeManager tracks wall-clock time for one decision. A zero limit
// means the search is bounded by depth only. Expiration is a fact the
// search polls, not a signal that interrupts it.
type timeManager struct {
	start time.Time
	limit time.Duration
}

func newTimeManager(start time.Time, limit time.Duration) timeManager {
	return timeManager{start: start, limit: limit}
}

func (tm *timeManager) IsExpired() bool {
	return tm.limit > 0 && time.Since(tm.start) >= tm.limit
}

func (tm *timeManager) Remaining() time.Duration {
	if tm.limit <= 0 {
		return time.Duration(1<<63 - 1)
	}
	return tm.limit - time.Since(tm.start)
}

func (tm *timeManager) CanStartIteration() bool {
	return tm.limit <= 0 || tm.Remaining() > iterationSafetyMargin
}
