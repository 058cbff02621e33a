package game

import (
	"fmt"
	"strconv"
)

// Player identifies one of the two sides of the board.
type Player uint8

const (
	PlayerA Player = iota
	PlayerB
)

// Players lists both sides in board layout order.
var Players = [...]Player{PlayerA, PlayerB}

func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	panic("unknown player " + strconv.Itoa(int(p)))
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	}
	return "Player(" + strconv.Itoa(int(p)) + ")"
}

// House returns the label of the player's n-th house, counting from 1.
func (p Player) House(n int) string {
	if n <= 0 {
		panic("house index must be positive")
	}
	return p.String() + strconv.Itoa(n)
}

// Store returns the label of the player's store.
func (p Player) Store() string {
	return "S" + p.String()
}

func (p Player) valid() bool {
	return p == PlayerA || p == PlayerB
}

// ParsePosition splits a label into its owner and 1-based house index, or
// reports a store. Labels are A1..AH, B1..BH, SA and SB; anything else,
// including leading zeros and out-of-range indexes, is ErrNoSuchPosition.
func ParsePosition(position string, houses int) (player Player, n int, store bool, err error) {
	noSuchPosition := fmt.Errorf("%w: %q", ErrNoSuchPosition, position)
	if len(position) < 2 {
		return 0, 0, false, noSuchPosition
	}

	prefix, rest := position[:1], position[1:]
	if prefix == "S" {
		switch rest {
		case "A":
			return PlayerA, 0, true, nil
		case "B":
			return PlayerB, 0, true, nil
		}
		return 0, 0, false, noSuchPosition
	}

	switch prefix {
	case "A":
		player = PlayerA
	case "B":
		player = PlayerB
	default:
		return 0, 0, false, noSuchPosition
	}
	if rest[0] < '1' || rest[0] > '9' {
		return 0, 0, false, noSuchPosition
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return 0, 0, false, noSuchPosition
		}
	}
	n, err = strconv.Atoi(rest)
	if err != nil || n > houses {
		return 0, 0, false, noSuchPosition
	}
	return player, n, false, nil
}
