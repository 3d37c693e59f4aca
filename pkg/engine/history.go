package engine

// historyTable biases move ordering toward squares that produced beta
// cutoffs earlier in the same search. One counter per board square,
// owned by a single engine instance; a new engine starts from zero.
type historyTable [100]int

// Update rewards a cutoff move by depth squared, so cutoffs found
// deeper in the tree weigh more.
func (ht *historyTable) Update(sq, depth int) {
	ht[sq] += depth * depth
}

func (ht *historyTable) Score(sq int) int {
	return ht[sq]
}

func (ht *historyTable) Clear() {
	*ht = historyTable{}
}
