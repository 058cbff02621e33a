package game

import (
	"errors"
	"fmt"
)

// Rule violations reported by Play and by the pit operations. All of them
// leave the board exactly as it was before the call.
var (
	ErrCannotPlayOnStore = errors.New("cannot play on a store")
	ErrNoSuchPosition    = errors.New("no such position")
	ErrHouseEmpty        = errors.New("house is empty")
	ErrOpponentHouse     = errors.New("house belongs to the opponent")
	ErrHouseCapture      = errors.New("cannot capture from the opponent's house")
	ErrNegativeSeeds     = errors.New("negative seed count")
	ErrGameOver          = errors.New("game is over")
)

var (
	// ErrInvalidArgument is returned for malformed construction input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState signals an operation the active turn state does not
	// support. It points at a bug in the caller, not at a game rule.
	ErrInvalidState = errors.New("operation not valid in this state")
)

func invalidArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, name)
}

func unsupported(operation string, state State) error {
	return fmt.Errorf("%w: operation '%s' on state '%s'", ErrInvalidState, operation, state)
}
