package gamemaster

import (
	"fmt"
	"kalah/game"

	"github.com/rs/zerolog/log"
)

// GameMaster replays a recorded sequence of moves against an engine.
type GameMaster struct {
	Engine Engine
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(engine Engine) *GameMaster {
	return &GameMaster{
		Engine: engine,
	}
}

// Result summarizes a replay.
type Result struct {
	Played  int
	Updates []Update
	Final   game.View
}

// RunGame initializes the engine and plays positions in order. It stops at
// the first rejected move and returns the moves played so far together with
// the error.
func (gm *GameMaster) RunGame(positions []string) (Result, error) {
	view, getUpdate, err := gm.Engine.Init()
	if err != nil {
		return Result{}, err
	}

	result := Result{Final: view}
	for i, position := range positions {
		if err := gm.Engine.Play(position); err != nil {
			return result, fmt.Errorf("move %d (%s): %w", i+1, position, err)
		}
		result.Played++

		for {
			u, ok := getUpdate()
			if !ok {
				break
			}
			result.Updates = append(result.Updates, u)
			result.Final = u.Pits
		}
	}

	log.Debug().Int("played", result.Played).Msg("replay finished")
	return result, nil
}
