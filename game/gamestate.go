package game

import (
	"kalah/utils"

	"github.com/rs/zerolog"
)

// Game is a single Kalah board together with the active player and turn
// state. It is not safe for concurrent use; callers serialize access.
type Game struct {
	houses int
	seeds  int
	pits   []Pit
	labels []string
	stores [2]int // arena index of each player's store
	player Player
	state  State
	over   bool
	log    zerolog.Logger
}

type Option func(g *Game)

// WithLogger sets the logger receiving move events. The default discards them.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.log = logger
	}
}

// New creates a fresh board with seeds in each of the houses per player.
// Player A moves first.
func New(houses, seeds int, options ...Option) (*Game, error) {
	if houses <= 0 {
		return nil, invalidArgument("houses")
	}
	if seeds <= 0 {
		return nil, invalidArgument("seeds")
	}
	if houses == 1 && seeds == 1 {
		return nil, invalidArgument("seeds")
	}

	g := newGame(houses, seeds, PlayerA, Waiting, options)
	if err := g.init(prototype(houses, seeds)); err != nil {
		return nil, err
	}
	return g, nil
}

// FromSnapshot rebuilds a game from seed counts laid out as A's houses, A's
// store, B's houses, B's store, resuming in the given state with the given
// player to move. The board is kept as given; if either row is already empty
// the game is marked over and the next accepted move ends it.
func FromSnapshot(board []int, state State, player Player, options ...Option) (*Game, error) {
	if !state.valid() {
		return nil, invalidArgument("state")
	}
	if !player.valid() {
		return nil, invalidArgument("player")
	}
	if len(board) < 4 || len(board)%2 != 0 {
		return nil, invalidArgument("board")
	}
	for _, n := range board {
		if n < 0 {
			return nil, ErrNegativeSeeds
		}
	}

	total := utils.Sum(board)
	houses := len(board)/2 - 1
	if total <= 0 || total%(houses*2) != 0 {
		return nil, invalidArgument("board")
	}

	g := newGame(houses, total/(houses*2), player, state, options)
	if err := g.init(board); err != nil {
		return nil, err
	}

	if state == Finished {
		g.over = true
		return g, nil
	}
	g.checkGameOver(true)
	return g, nil
}

func newGame(houses, seeds int, player Player, state State, options []Option) *Game {
	g := &Game{
		houses: houses,
		seeds:  seeds,
		player: player,
		state:  state,
		log:    zerolog.Nop(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Game) init(board []int) error {
	pits, labels, err := layout(board, g.houses)
	if err != nil {
		return err
	}
	g.pits = pits
	g.labels = labels
	g.stores[PlayerA] = g.houses
	g.stores[PlayerB] = len(pits) - 1
	return nil
}

// Play enacts one move starting from the house at position.
func (g *Game) Play(position string) error {
	player, n, store, err := ParsePosition(position, g.houses)
	if err != nil {
		return err
	}
	i := g.index(player, n, store)
	g.log.Debug().
		Str("position", position).
		Stringer("player", g.player).
		Stringer("state", g.state).
		Msg("begin turn")
	return g.beginTurn(i)
}

// sow walks the ring from the selected pit until seeds run out, letting the
// active state decide what each visited pit receives.
func (g *Game) sow(from, seedsLeft int) error {
	next := from
	for seedsLeft > 0 {
		next = g.pits[next].next
		state, left, err := g.state.visit(&g.pits[next], g.player, seedsLeft)
		if err != nil {
			return err
		}
		if state == SowingOwnRow && g.state == SowingOpponentRow {
			g.log.Debug().Str("store", g.labels[next]).Msg("store skipped")
		}
		g.state = state
		seedsLeft = left
	}
	return g.endTurn(next)
}

func (g *Game) captureIntoStore(i int) error {
	house := &g.pits[i]
	seeds, err := house.Capture(g.player, &g.pits[house.opposite])
	if err != nil {
		return err
	}
	g.log.Debug().
		Str("house", g.labels[i]).
		Str("opposite", g.labels[house.opposite]).
		Int("seeds", seeds).
		Msg("capture")
	_, err = g.store(g.player).Take(g.player, seeds)
	return err
}

func (g *Game) store(player Player) *Pit {
	return &g.pits[g.stores[player]]
}

// checkGameOver reports whether the mover's row is empty, or with
// checkBothPlayers either row. The result latches.
func (g *Game) checkGameOver(checkBothPlayers bool) bool {
	if g.over {
		return true
	}
	if g.rowEmpty(g.player) || (checkBothPlayers && g.rowEmpty(g.player.Opponent())) {
		g.over = true
	}
	return g.over
}

func (g *Game) rowEmpty(player Player) bool {
	for i := range g.pits {
		pit := &g.pits[i]
		if pit.kind == House && pit.owner == player && pit.IsNotEmpty() {
			return false
		}
	}
	return true
}

// terminate sweeps every house into its owner's store, walking each row
// from the first house to the store.
func (g *Game) terminate() error {
	for _, player := range Players {
		i := g.index(player, 1, false)
		seeds := 0
		for g.pits[i].kind == House {
			n, err := g.pits[i].Yield(player)
			if err != nil {
				return err
			}
			seeds += n
			i = g.pits[i].next
		}
		if _, err := g.pits[i].Take(player, seeds); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) finish() error {
	if err := g.terminate(); err != nil {
		return err
	}
	g.state = Finished
	g.log.Debug().
		Int("storeA", g.store(PlayerA).seeds).
		Int("storeB", g.store(PlayerB).seeds).
		Msg("game over")
	return nil
}

func (g *Game) leadingPlayer() (Player, bool) {
	a, b := g.store(PlayerA).seeds, g.store(PlayerB).seeds
	switch {
	case a > b:
		return PlayerA, true
	case b > a:
		return PlayerB, true
	}
	return 0, false
}

// Pits returns the current seed count of every position in board order.
func (g *Game) Pits() View {
	seeds := make([]int, len(g.pits))
	for i := range g.pits {
		seeds[i] = g.pits[i].seeds
	}
	return View{labels: g.labels, seeds: seeds}
}

func (g *Game) Houses() int { return g.houses }
func (g *Game) Seeds() int { return g.seeds }
func (g *Game) Player() Player { return g.player }
func (g *Game) State() State { return g.state }
func (g *Game) IsOver() bool { return g.over }

// Positions returns every label in board layout order.
func (g *Game) Positions() []string {
	return append([]string(nil), g.labels...)
}

// Winner returns the player with more seeds in store once the game is
// finished. It reports false while the game is running and on a tie.
func (g *Game) Winner() (Player, bool) {
	return winner(g)
}

// Copy returns an independent copy of the game sharing only the logger.
func (g *Game) Copy() *Game {
	c := *g
	c.pits = append([]Pit(nil), g.pits...)
	return &c
}
