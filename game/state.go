package game

import "strconv"

// State is the active phase of the turn state machine. Exactly one is
// active at any time.
type State int

const (
	Waiting State = iota
	SowingOwnRow
	SowingOpponentRow
	Finished
)

// States lists every turn state.
var States = [...]State{Waiting, SowingOwnRow, SowingOpponentRow, Finished}

func (s State) String() string {
	switch s {
	case Waiting:
		return "Waiting"
	case SowingOwnRow:
		return "SowingOwnRow"
	case SowingOpponentRow:
		return "SowingOpponentRow"
	case Finished:
		return "Finished"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

func (s State) valid() bool {
	return s >= Waiting && s <= Finished
}

// visit interprets one pit reached during a sow and returns the state to
// continue in and the seeds still in hand.
//
// The two sowing states together skip the opponent's store: after dropping
// a seed into the sower's store with more seeds in hand the next pit is in
// the opponent's row, and the first store met there is passed over.
func (s State) visit(pit *Pit, player Player, seedsLeft int) (State, int, error) {
	switch s {
	case SowingOwnRow:
		if seedsLeft <= 0 {
			return s, seedsLeft, invalidArgument("seedsLeft")
		}
		if _, err := pit.Take(player, 1); err != nil {
			return s, seedsLeft, err
		}
		if pit.kind == Store && seedsLeft > 1 {
			return SowingOpponentRow, seedsLeft - 1, nil
		}
		return s, seedsLeft - 1, nil
	case SowingOpponentRow:
		if seedsLeft <= 0 {
			return s, seedsLeft, invalidArgument("seedsLeft")
		}
		if pit.kind == Store {
			return SowingOwnRow, seedsLeft, nil
		}
		if _, err := pit.Take(player, 1); err != nil {
			return s, seedsLeft, err
		}
		return s, seedsLeft - 1, nil
	case Waiting, Finished:
		return s, seedsLeft, unsupported("visit", s)
	}
	panic("unknown state " + s.String())
}

// beginTurn starts a move from the pit at index i.
func (g *Game) beginTurn(i int) error {
	switch g.state {
	case Waiting:
		seeds, err := g.pits[i].Select(g.player)
		if err != nil {
			return err
		}
		g.state = SowingOwnRow
		return g.sow(i, seeds)
	case Finished:
		return ErrGameOver
	case SowingOwnRow, SowingOpponentRow:
		return unsupported("beginTurn", g.state)
	}
	panic("unknown state " + g.state.String())
}

// endTurn settles a move whose last seed landed in the pit at index last.
func (g *Game) endTurn(last int) error {
	switch g.state {
	case SowingOwnRow:
		pit := &g.pits[last]
		if pit.isStoreOf(g.player) {
			g.log.Debug().Stringer("player", g.player).Msg("extra turn")
			return g.resume(true, false)
		}
		if pit.kind == House && pit.seeds == 1 {
			if err := g.captureIntoStore(last); err != nil {
				return err
			}
			return g.resume(false, true)
		}
		return g.resume(false, false)
	case SowingOpponentRow:
		return g.resume(false, false)
	case Waiting, Finished:
		return unsupported("endTurn", g.state)
	}
	panic("unknown state " + g.state.String())
}

// resume either ends the game or hands the board to the next mover.
// Only a capture checks both rows for emptiness.
func (g *Game) resume(samePlayer, checkBothPlayers bool) error {
	if g.checkGameOver(checkBothPlayers) {
		return g.finish()
	}
	if !samePlayer {
		g.player = g.player.Opponent()
	}
	g.state = Waiting
	return nil
}

func winner(g *Game) (Player, bool) {
	switch g.state {
	case Finished:
		return g.leadingPlayer()
	case Waiting, SowingOwnRow, SowingOpponentRow:
		return 0, false
	}
	panic("unknown state " + g.state.String())
}
