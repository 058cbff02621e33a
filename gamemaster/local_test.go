package gamemaster

import (
	"kalah/game"
	"kalah/meta"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func smallConfig() meta.Config {
	cfg := meta.DefaultConfig()
	cfg.Houses = 2
	cfg.Seeds = 2
	cfg.LogLevel = "disabled"
	return cfg
}

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine(smallConfig())
	view, getUpdate, err := engine.Init()
	require.NoError(t, err)

	require.Equal(t, []int{2, 2, 0, 2, 2, 0}, view.Seeds())

	_, ok := getUpdate()
	require.False(t, ok, "No update should be pending before a move")
}

func TestLocalEngineInit_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Houses = 0
	engine := NewLocalEngine(cfg)

	_, _, err := engine.Init()

	require.ErrorIs(t, err, game.ErrInvalidArgument)
	require.ErrorIs(t, engine.Play("A1"), ErrNotInitialized)
}

func TestLocalEnginePlay_ValidMove(t *testing.T) {
	engine := NewLocalEngine(smallConfig())
	_, getUpdate, err := engine.Init()
	require.NoError(t, err)

	require.NoError(t, engine.Play("A1"))

	u, ok := getUpdate()
	require.True(t, ok)
	require.Equal(t, "A1", u.Position)
	require.Equal(t, game.PlayerA, u.Mover)
	require.Equal(t, game.PlayerA, u.Next, "Landing in SA keeps the turn")
	require.Equal(t, []int{0, 3, 1, 2, 2, 0}, u.Pits.Seeds())
	require.False(t, u.Over)
}

func TestLocalEnginePlay_IllegalMove(t *testing.T) {
	engine := NewLocalEngine(smallConfig())
	_, getUpdate, err := engine.Init()
	require.NoError(t, err)

	require.ErrorIs(t, engine.Play("B1"), game.ErrOpponentHouse)
	require.ErrorIs(t, engine.Play("A9"), game.ErrNoSuchPosition)

	_, ok := getUpdate()
	require.False(t, ok, "Rejected moves should not publish updates")
	require.Equal(t, []int{2, 2, 0, 2, 2, 0}, engine.Snapshot().Pits().Seeds())
}

func TestLocalEnginePlay_GameOver(t *testing.T) {
	engine := NewLocalEngine(smallConfig())
	_, getUpdate, err := engine.Init()
	require.NoError(t, err)

	require.NoError(t, engine.Play("A1"))
	require.NoError(t, engine.Play("A2"))

	// Only the latest update survives a buffer of one.
	u, ok := getUpdate()
	require.True(t, ok)
	require.Equal(t, "A2", u.Position)
	require.True(t, u.Over)
	require.Equal(t, []int{0, 0, 2, 0, 0, 6}, u.Pits.Seeds())

	_, ok = getUpdate()
	require.False(t, ok, "Channel should be closed after the game ends")

	require.ErrorIs(t, engine.Play("B1"), game.ErrGameOver)
	require.ErrorIs(t, engine.Play("C7"), game.ErrNoSuchPosition)
}

func TestLocalEngineFrom_FinishedSnapshot(t *testing.T) {
	g, err := game.FromSnapshot([]int{2, 2, 0, 2, 2, 0}, game.Finished, game.PlayerA)
	require.NoError(t, err)
	engine := NewLocalEngineFrom(g, smallConfig())

	view, getUpdate, err := engine.Init()
	require.NoError(t, err)

	require.Equal(t, []int{2, 2, 0, 2, 2, 0}, view.Seeds())
	_, ok := getUpdate()
	require.False(t, ok)
	require.ErrorIs(t, engine.Play("A1"), game.ErrGameOver)
	require.ErrorIs(t, engine.Play("Z9"), game.ErrNoSuchPosition, "Unknown positions are reported before the game state")
}

func TestLocalEngineFrom_EmptyRowSnapshot(t *testing.T) {
	t.Run("keeps the board and rejects an empty house", func(t *testing.T) {
		g, err := game.FromSnapshot([]int{0, 2, 2, 0}, game.Waiting, game.PlayerA)
		require.NoError(t, err)
		engine := NewLocalEngineFrom(g, smallConfig())

		view, getUpdate, err := engine.Init()
		require.NoError(t, err)

		require.Equal(t, []int{0, 2, 2, 0}, view.Seeds())
		require.ErrorIs(t, engine.Play("A1"), game.ErrHouseEmpty)
		_, ok := getUpdate()
		require.False(t, ok)
		require.Equal(t, []int{0, 2, 2, 0}, engine.Snapshot().Pits().Seeds())
	})

	t.Run("next accepted move publishes the final update", func(t *testing.T) {
		g, err := game.FromSnapshot([]int{1, 1, 2, 0, 0, 0}, game.Waiting, game.PlayerA)
		require.NoError(t, err)
		engine := NewLocalEngineFrom(g, smallConfig())
		_, getUpdate, err := engine.Init()
		require.NoError(t, err)

		require.NoError(t, engine.Play("A2"))

		u, ok := getUpdate()
		require.True(t, ok)
		require.True(t, u.Over)
		require.Equal(t, []int{0, 0, 4, 0, 0, 0}, u.Pits.Seeds())
		_, ok = getUpdate()
		require.False(t, ok, "Channel should be closed after the final update")
		require.ErrorIs(t, engine.Play("A1"), game.ErrGameOver)
	})
}

func TestLocalEngineFrom_PlayBeforeInit(t *testing.T) {
	g, err := game.New(2, 2)
	require.NoError(t, err)
	engine := NewLocalEngineFrom(g, smallConfig())

	require.ErrorIs(t, engine.Play("A1"), ErrNotInitialized)
	require.Equal(t, []int{2, 2, 0, 2, 2, 0}, engine.Snapshot().Pits().Seeds())

	_, getUpdate, err := engine.Init()
	require.NoError(t, err)
	require.NoError(t, engine.Play("A1"))
	_, ok := getUpdate()
	require.True(t, ok)
}

func TestLocalEngine_ConcurrentPlays(t *testing.T) {
	cfg := smallConfig()
	cfg.Houses = 6
	cfg.Seeds = 4
	cfg.UpdateBuffer = 64
	engine := NewLocalEngine(cfg)
	_, _, err := engine.Init()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, position := range engine.Snapshot().Positions() {
		wg.Add(1)
		go func(position string) {
			defer wg.Done()
			_ = engine.Play(position)
		}(position)
	}
	wg.Wait()

	require.Equal(t, 48, engine.Snapshot().Pits().Total())
}

func TestGameMasterRunGame(t *testing.T) {
	t.Run("replays every move", func(t *testing.T) {
		cfg := smallConfig()
		cfg.UpdateBuffer = 4
		gm := NewGameMaster(NewLocalEngine(cfg))

		result, err := gm.RunGame([]string{"A1", "A2"})

		require.NoError(t, err)
		require.Equal(t, 2, result.Played)
		require.Len(t, result.Updates, 2)
		require.Equal(t, []int{0, 0, 2, 0, 0, 6}, result.Final.Seeds())
		require.True(t, result.Updates[1].Over)
	})

	t.Run("stops at the first rejected move", func(t *testing.T) {
		gm := NewGameMaster(NewLocalEngine(smallConfig()))

		result, err := gm.RunGame([]string{"A1", "B1", "A2"})

		require.ErrorIs(t, err, game.ErrOpponentHouse)
		require.ErrorContains(t, err, "move 2 (B1)")
		require.Equal(t, 1, result.Played)
		require.Equal(t, []int{0, 3, 1, 2, 2, 0}, result.Final.Seeds())
	})
}
