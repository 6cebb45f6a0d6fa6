package games

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/isaacjstriker/tetrisbot/games/tetris"
	"github.com/isaacjstriker/tetrisbot/internal/config"
	"github.com/isaacjstriker/tetrisbot/internal/types"
)

// GameRegistry manages all available games
type GameRegistry struct {
	games map[string]types.Game
	order []string
	rng   *frand.RNG
}

// NewGameRegistry creates a new, empty game registry
func NewGameRegistry() *GameRegistry {
	return &GameRegistry{
		games: make(map[string]types.Game),
		rng:   frand.New(),
	}
}

// RegisterGame adds a game under a command key
func (gr *GameRegistry) RegisterGame(key string, game types.Game) {
	if _, ok := gr.games[key]; !ok {
		gr.order = append(gr.order, key)
	}
	gr.games[key] = game
}

// GetGame looks up a game by key
func (gr *GameRegistry) GetGame(key string) (types.Game, bool) {
	g, ok := gr.games[key]
	return g, ok
}

// Keys returns the registered keys in registration order
func (gr *GameRegistry) Keys() []string {
	return append([]string(nil), gr.order...)
}

// GetAllGames returns all registered games that can currently be played
func (gr *GameRegistry) GetAllGames() []types.Game {
	available := make([]types.Game, 0, len(gr.order))
	for _, key := range gr.order {
		if game := gr.games[key]; game.IsAvailable() {
			available = append(available, game)
		}
	}
	return available
}

// GetRandomOrder returns games in random order
func (gr *GameRegistry) GetRandomOrder() []types.Game {
	games := gr.GetAllGames()
	gr.rng.Shuffle(len(games), func(i, j int) {
		games[i], games[j] = games[j], games[i]
	})
	return games
}

// GetGameCount returns number of available games
func (gr *GameRegistry) GetGameCount() int {
	return len(gr.GetAllGames())
}

// Registry of available games, keyed by CLI command
var Games = map[string]func(s tetris.Settings, seed uint64) types.Game{
	"play": func(s tetris.Settings, seed uint64) types.Game {
		s.StartAgent = false
		return tetris.NewTetris("Tetris", s, seed)
	},
	"auto": func(s tetris.Settings, seed uint64) types.Game {
		s.StartAgent = true
		return tetris.NewTetris("Tetris Autoplay", s, seed)
	},
}

// GetGameList returns the sorted list of game keys
func GetGameList() []string {
	var games []string
	for name := range Games {
		games = append(games, name)
	}
	sort.Strings(games)
	return games
}

// BuildSettings turns the environment config into game settings, applies
// the tuning script on top and jitters the agent weights if requested.
func BuildSettings(cfg *config.Config) (tetris.Settings, error) {
	s := tetris.DefaultSettings()
	s.Width = cfg.GridWidth
	s.Height = cfg.GridHeight
	s.TickInterval = cfg.TickInterval
	s.FrameInterval = cfg.FrameInterval
	s.Debounce = cfg.InputDebounce
	s.StartAgent = cfg.AgentStart

	s, err := tetris.LoadScript(cfg.ScriptPath, s)
	if err != nil {
		return s, fmt.Errorf("failed to load tuning script: %w", err)
	}

	if cfg.WeightJitter > 0 {
		s.Weights = s.Weights.Mutate(tetris.NewRandom(cfg.Seed), cfg.WeightJitter)
		log.Info().Floats64("weights", s.Weights[:]).Float64("jitter", cfg.WeightJitter).Msg("perturbed agent weights")
	}
	return s, nil
}

// NewRegistry registers every known game using cfg.
func NewRegistry(cfg *config.Config) (*GameRegistry, error) {
	s, err := BuildSettings(cfg)
	if err != nil {
		return nil, err
	}
	gr := NewGameRegistry()
	for _, key := range GetGameList() {
		gr.RegisterGame(key, Games[key](s, cfg.Seed))
	}
	return gr, nil
}
