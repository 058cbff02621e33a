package game

// layout builds the pit arena for a board of the given seed counts, ordered
// A1..AH, SA, B1..BH, SB. It returns the pits and their labels in the same
// order; pits[i] is linked to pits[i+1] and the last store back to A1.
func layout(board []int, houses int) ([]Pit, []string, error) {
	pits := make([]Pit, 0, len(board))
	labels := make([]string, 0, len(board))

	n := 0
	for _, player := range Players {
		for h := 1; h <= houses; h++ {
			house, err := NewHouse(board[n], player)
			if err != nil {
				return nil, nil, err
			}
			pits = append(pits, *house)
			labels = append(labels, player.House(h))
			n++
		}
		store, err := NewStore(board[n], player)
		if err != nil {
			return nil, nil, err
		}
		pits = append(pits, *store)
		labels = append(labels, player.Store())
		n++
	}

	for i := range pits {
		pits[i].next = (i + 1) % len(pits)
	}

	// A's n-th house faces B's (H-n+1)-th house.
	for h := 0; h < houses; h++ {
		a := h
		b := houses + 1 + (houses - 1 - h)
		addOpposite(pits, a, b)
	}
	return pits, labels, nil
}

// addOpposite links two houses facing each other across the board.
func addOpposite(pits []Pit, i, j int) {
	if pits[i].owner == pits[j].owner {
		panic("opposite houses must belong to different players")
	}
	pits[i].opposite = j
	pits[j].opposite = i
}

// prototype returns a fresh board with seeds in every house and empty stores.
func prototype(houses, seeds int) []int {
	board := make([]int, houses*2+2)
	for i := 0; i < houses; i++ {
		board[i] = seeds
		board[houses+1+i] = seeds
	}
	return board
}

// index maps a parsed position to its arena slot in the A1..SA, B1..SB layout.
func (g *Game) index(player Player, n int, store bool) int {
	row := int(player) * (g.houses + 1)
	if store {
		return row + g.houses
	}
	return row + n - 1
}
