package gamemaster

import (
	"errors"
	"fmt"
	"kalah/game"
	"kalah/meta"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrNotInitialized = errors.New("engine not initialized")

// Update describes one accepted move.
type Update struct {
	Position string
	Mover    game.Player
	Next     game.Player
	Pits     game.View
	Over     bool
}

// UpdateGetter returns the oldest pending update without blocking. It
// reports false when nothing is pending or the game is over and drained.
type UpdateGetter func() (Update, bool)

type Engine interface {
	Init() (game.View, UpdateGetter, error)
	Play(position string) error
}

// localEngine owns one game and serializes every call against it.
type localEngine struct {
	mu       sync.Mutex
	cfg      meta.Config
	state    *game.Game
	updateCh chan Update
	closed   bool
	logger   zerolog.Logger
}

var _ Engine = (*localEngine)(nil)

func NewLocalEngine(cfg meta.Config) *localEngine {
	return &localEngine{
		cfg:    cfg,
		logger: log.Logger.Level(cfg.Level()),
	}
}

// NewLocalEngineFrom wraps an existing game, typically one rebuilt from a
// snapshot. Init keeps the game instead of creating a fresh board.
func NewLocalEngineFrom(g *game.Game, cfg meta.Config) *localEngine {
	e := NewLocalEngine(cfg)
	e.state = g
	return e
}

func (e *localEngine) Init() (game.View, UpdateGetter, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		g, err := game.New(e.cfg.Houses, e.cfg.Seeds, game.WithLogger(e.logger))
		if err != nil {
			return game.View{}, nil, fmt.Errorf("create game: %w", err)
		}
		e.state = g
	}

	buffer := e.cfg.UpdateBuffer
	if buffer <= 0 {
		buffer = meta.DEFAULT_UPDATE_BUFFER
	}
	e.updateCh = make(chan Update, buffer)
	e.closed = false
	// A snapshot with an empty row is over but still Waiting; its next
	// accepted move finishes it and publishes the final update.
	if e.state.State() == game.Finished {
		e.closeUpdates()
	}

	e.logger.Info().
		Int("houses", e.state.Houses()).
		Int("seeds", e.state.Seeds()).
		Stringer("player", e.state.Player()).
		Msg("game initialized")

	ch := e.updateCh
	return e.state.Pits(), func() (Update, bool) {
		select {
		case u, ok := <-ch:
			return u, ok
		default:
			return Update{}, false
		}
	}, nil
}

func (e *localEngine) Play(position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil || e.updateCh == nil {
		return ErrNotInitialized
	}

	mover := e.state.Player()
	if err := e.state.Play(position); err != nil {
		e.logger.Warn().Err(err).Str("position", position).Stringer("player", mover).Msg("move rejected")
		return err
	}

	u := Update{
		Position: position,
		Mover:    mover,
		Next:     e.state.Player(),
		Pits:     e.state.Pits(),
		Over:     e.state.IsOver(),
	}
	e.logger.Info().Str("position", position).Stringer("player", mover).Msg("move played")

	e.publish(u)
	if u.Over {
		e.closeUpdates()
		e.logGameOver()
	}
	return nil
}

func (e *localEngine) closeUpdates() {
	if !e.closed {
		close(e.updateCh)
		e.closed = true
	}
}

// publish queues u, discarding the oldest pending update when the buffer is
// full so that Play never blocks on a slow reader.
func (e *localEngine) publish(u Update) {
	for {
		select {
		case e.updateCh <- u:
			return
		default:
			select {
			case <-e.updateCh:
			default:
			}
		}
	}
}

func (e *localEngine) logGameOver() {
	if winner, ok := e.state.Winner(); ok {
		e.logger.Info().Stringer("winner", winner).Msg("game over")
		return
	}
	e.logger.Info().Msg("game over: draw")
}

// Snapshot returns a copy of the current game.
func (e *localEngine) Snapshot() *game.Game {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return nil
	}
	return e.state.Copy()
}
