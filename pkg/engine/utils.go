package engine

const (
	// A game lasts at most 60 moves; passes keep the search depth
	// comfortably under this.
	maxHeight = 64

	valueWin      = 32767
	valueLoss     = -valueWin
	valueInfinity = valueWin + 1

	// Initial half-width of the aspiration window around the previous
	// iteration's score.
	aspirationWindow = 64
)

// terminalValue scores a position where neither side can move: a large
// win or loss sentinel by final disc differential, zero for a tie.
func terminalValue(diff int) int {
	if diff > 0 {
		return valueWin
	}
	if diff < 0 {
		return valueLoss
	}
	return 0
}
