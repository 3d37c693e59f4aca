package engine

import (
	"othello/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

// The table key is an exact snapshot of the position plus the side to
// move. Positions that differ in any square never share an entry, so
// there are no index collisions to verify against.
type ttKey struct {
	squares [100]common.Cell
	side    common.Cell
}

type ttEntry struct {
	score int16
	depth int8
	move  int8
	bound uint8
}

type transTable struct {
	entries map[ttKey]ttEntry
}

func newTransTable() *transTable {
	return &transTable{entries: make(map[ttKey]ttEntry)}
}

func (tt *transTable) Len() int {
	return len(tt.entries)
}

// Clear drops every entry. The engine calls this at the start of each
// top-level decision: stale entries belong to another root position
// and the map would otherwise grow for the whole game.
func (tt *transTable) Clear() {
	tt.entries = make(map[ttKey]ttEntry)
}

func (tt *transTable) Read(p *common.Position, side common.Cell) (depth, score, bound, move int, found bool) {
	var entry, ok = tt.entries[ttKey{squares: p.Snapshot(), side: side}]
	if !ok {
		return
	}
	return int(entry.depth), int(entry.score), int(entry.bound), int(entry.move), true
}

// Update stores depth-preferred: a shallower result never evicts a
// deeper one for the same key.
func (tt *transTable) Update(p *common.Position, side common.Cell, depth, score, move int, bound uint8) {
	var key = ttKey{squares: p.Snapshot(), side: side}
	if old, ok := tt.entries[key]; ok && depth < int(old.depth) {
		return
	}
	tt.entries[key] = ttEntry{
		score: int16(score),
		depth: int8(depth),
		move:  int8(move),
		bound: bound,
	}
}
