// Package game is the rules engine of two-player Kalah: it sows one move at a
// time around a ring of houses and stores, applying captures, extra turns and
// the end-of-game sweep.
//
// Positions are labelled A1..AH and B1..BH for the houses of each player and
// SA, SB for the stores.
package game

import "kalah/utils"

// View is a read-only snapshot of seed counts in board layout order.
type View struct {
	labels []string
	seeds  []int
}

func (v View) Len() int {
	return len(v.labels)
}

// Get returns the seeds at position, or false for an unknown label.
func (v View) Get(position string) (int, bool) {
	i := utils.FindIndex(v.labels, position)
	if i < 0 {
		return 0, false
	}
	return v.seeds[i], true
}

// At is Get for positions known to exist.
func (v View) At(position string) int {
	n, ok := v.Get(position)
	if !ok {
		panic("no such position " + position)
	}
	return n
}

func (v View) Labels() []string {
	return append([]string(nil), v.labels...)
}

func (v View) Seeds() []int {
	return append([]int(nil), v.seeds...)
}

// Map copies the view into a map keyed by label.
func (v View) Map() map[string]int {
	m := make(map[string]int, len(v.labels))
	for i, label := range v.labels {
		m[label] = v.seeds[i]
	}
	return m
}

// Total is the number of seeds on the board.
func (v View) Total() int {
	return utils.Sum(v.seeds)
}
