package tetris

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"lukechampine.com/frand"

	"github.com/isaacjstriker/tetrisbot/internal/types"
)

// Tetris is a playable session, either steered by the player or watched
// while the agent plays.
type Tetris struct {
	name     string
	settings Settings
	rng      *frand.RNG
}

// NewTetris creates a game with the given settings. A zero seed draws pieces
// from a randomly seeded generator.
func NewTetris(name string, s Settings, seed uint64) *Tetris {
	return &Tetris{name: name, settings: s, rng: NewRandom(seed)}
}

// NewRandom returns a piece generator. Equal non-zero seeds give equal
// piece sequences.
func NewRandom(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return frand.NewCustom(key, 1024, 12)
}

// Interface methods
func (t *Tetris) GetName() string {
	return t.name
}

func (t *Tetris) GetDescription() string {
	if t.settings.StartAgent {
		return "Watch the heuristic agent stack pieces. Press P to take over."
	}
	return "Classic falling blocks. Press P to let the agent play."
}

func (t *Tetris) GetDifficulty() int {
	if t.settings.StartAgent {
		return 1
	}
	return 5
}

func (t *Tetris) IsAvailable() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Settings returns the session configuration.
func (t *Tetris) Settings() Settings {
	return t.settings
}

// LevelInterval shortens the base tick by 10% per level, down to a tenth.
func LevelInterval(base time.Duration, level int) time.Duration {
	factor := 1 - 0.1*float64(level-1)
	if factor < 0.1 {
		factor = 0.1
	}
	return time.Duration(float64(base) * factor)
}

// Play runs the frame loop until the player quits.
func (t *Tetris) Play() (*types.GameResult, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("tetris needs an interactive terminal")
	}
	if w, h, err := term.GetSize(fd); err == nil && (w < t.settings.Width*2+2 || h < t.settings.Height+10) {
		return nil, fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, t.settings.Width*2+2, t.settings.Height+10)
	}

	kb, err := OpenKeyboard()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	defer kb.Close()

	startTime := time.Now()
	app := NewApp(t.settings, t.rng, startTime)
	gate := NewTickGate(t.settings.TickInterval, startTime)
	renderer := NewTerminalRenderer()

	weights := app.Agent().Weights()
	log.Info().
		Str("game", t.name).
		Int("width", t.settings.Width).
		Int("height", t.settings.Height).
		Floats64("weights", weights[:]).
		Msg("starting game")

	ticker := time.NewTicker(t.settings.FrameInterval)
	defer ticker.Stop()

	level := 1
	for now := range ticker.C {
		in := kb.Poll()
		if in.Quit {
			break
		}

		app.Update(gate.Due(now), now, in)

		if stats := app.Board().Stats(); stats.Level != level {
			level = stats.Level
			gate.SetInterval(LevelInterval(t.settings.TickInterval, level))
		}

		if err := renderer.Render(os.Stdout, app.Mode().Name(), app.Board()); err != nil {
			return nil, fmt.Errorf("failed to render: %w", err)
		}
	}

	stats := app.Board().Stats()
	result := &types.GameResult{
		GameName: t.name,
		Score:    max(stats.Score, stats.BestScore),
		Duration: time.Since(startTime).Seconds(),
		Metadata: map[string]interface{}{
			"lines":  stats.Lines,
			"pieces": stats.Pieces,
			"resets": stats.Resets,
			"mode":   app.Mode().Name(),
		},
	}
	log.Info().Str("game", t.name).Int("score", result.Score).Float64("duration", result.Duration).Msg("game finished")
	return result, nil
}
