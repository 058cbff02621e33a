package game

import (
	"fmt"
	"strconv"
)

// PitKind tells houses and stores apart. The set is closed: every operation
// switches over both kinds and panics on anything else.
type PitKind uint8

const (
	House PitKind = iota
	Store
)

func (k PitKind) String() string {
	switch k {
	case House:
		return "House"
	case Store:
		return "Store"
	}
	return "PitKind(" + strconv.Itoa(int(k)) + ")"
}

// Pit is a single hole on the board. Pits live in an arena owned by Game;
// next and opposite are indexes into that arena (-1 when unset).
type Pit struct {
	kind     PitKind
	owner    Player
	seeds    int
	next     int
	opposite int // houses only
}

// NewHouse creates an unlinked house.
func NewHouse(seeds int, owner Player) (*Pit, error) {
	return newPit(House, seeds, owner)
}

// NewStore creates an unlinked store.
func NewStore(seeds int, owner Player) (*Pit, error) {
	return newPit(Store, seeds, owner)
}

func newPit(kind PitKind, seeds int, owner Player) (*Pit, error) {
	if seeds < 0 {
		return nil, ErrNegativeSeeds
	}
	if !owner.valid() {
		return nil, invalidArgument("owner")
	}
	return &Pit{kind: kind, owner: owner, seeds: seeds, next: -1, opposite: -1}, nil
}

func (p *Pit) Kind() PitKind { return p.kind }
func (p *Pit) Owner() Player { return p.owner }
func (p *Pit) Seeds() int { return p.seeds }
func (p *Pit) IsEmpty() bool { return p.seeds == 0 }
func (p *Pit) IsNotEmpty() bool { return !p.IsEmpty() }

// Next returns the arena index of the successor in sowing order.
func (p *Pit) Next() int { return p.next }

// Opposite returns the arena index of the mirrored house, or -1 for a store.
func (p *Pit) Opposite() int { return p.opposite }

func (p *Pit) isStoreOf(player Player) bool {
	return p.kind == Store && p.owner == player
}

// Select empties a house at the start of a move and returns its seeds.
// Stores can never be selected.
func (p *Pit) Select(player Player) (int, error) {
	switch p.kind {
	case House:
		if p.seeds == 0 {
			return 0, ErrHouseEmpty
		}
		return p.Yield(player)
	case Store:
		return 0, ErrCannotPlayOnStore
	}
	panic("unknown pit kind " + p.kind.String())
}

// Take deposits n seeds and returns the count held before the deposit.
// Houses accept exactly one seed from either player. Stores only bank seeds
// for their owner; for anyone else the call is a no-op.
func (p *Pit) Take(player Player, n int) (int, error) {
	switch p.kind {
	case House:
		if n != 1 {
			panic(fmt.Sprintf("house deposit of %d seeds", n))
		}
		before := p.seeds
		p.seeds++
		return before, nil
	case Store:
		if n < 0 {
			return 0, invalidArgument("seeds")
		}
		if player != p.owner {
			return p.seeds, nil
		}
		before := p.seeds
		p.seeds += n
		return before, nil
	}
	panic("unknown pit kind " + p.kind.String())
}

// Capture empties this house and its opposite, returning their combined seeds.
func (p *Pit) Capture(player Player, opposite *Pit) (int, error) {
	switch p.kind {
	case House:
		if player != p.owner {
			return 0, ErrHouseCapture
		}
		captured := p.seeds + opposite.seeds
		p.seeds = 0
		opposite.seeds = 0
		return captured, nil
	case Store:
		return 0, invalidArgument("capture on store")
	}
	panic("unknown pit kind " + p.kind.String())
}

// Yield empties an owned house during the end-of-game sweep.
func (p *Pit) Yield(player Player) (int, error) {
	switch p.kind {
	case House:
		if player != p.owner {
			return 0, ErrOpponentHouse
		}
		seeds := p.seeds
		p.seeds = 0
		return seeds, nil
	case Store:
		return 0, invalidArgument("yield from store")
	}
	panic("unknown pit kind " + p.kind.String())
}
