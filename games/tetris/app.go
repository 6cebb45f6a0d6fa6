package tetris

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Settings configures one game session.
type Settings struct {
	Width         int
	Height        int
	TickInterval  time.Duration
	FrameInterval time.Duration
	Debounce      time.Duration
	Weights       Weights
	StartAgent    bool
}

// DefaultSettings matches the classic 10x20 board with one tick per second.
func DefaultSettings() Settings {
	return Settings{
		Width:         BoardWidth,
		Height:        BoardHeight,
		TickInterval:  time.Second,
		FrameInterval: time.Second / 30,
		Debounce:      100 * time.Millisecond,
		Weights:       DefaultWeights,
	}
}

// App owns the board and both play modes. Update and Sprites are the only
// entry points a frame loop needs.
type App struct {
	board  *Board
	human  *HumanMode
	agent  *AgentMode
	active Mode
}

// NewApp creates a fresh game. now seeds the input debounce timer.
func NewApp(s Settings, rng Randomizer, now time.Time) *App {
	b := NewBoard(s.Width, s.Height, rng)
	a := &App{
		board: b,
		human: NewHumanMode(b, NewDebouncer(s.Debounce, now)),
		agent: NewAgentMode(b, NewAgent(s.Weights)),
	}
	a.active = a.human
	if s.StartAgent {
		a.active = a.agent
	}
	return a
}

func (a *App) Board() *Board { return a.board }
func (a *App) Mode() Mode    { return a.active }
func (a *App) Agent() *Agent { return a.agent.Agent() }

// Toggle hands control to the other mode.
func (a *App) Toggle() {
	if a.active == a.agent {
		a.active = a.human
	} else {
		a.active = a.agent
	}
	log.Info().Str("mode", a.active.Name()).Msg("switched control")
}

// Update advances one frame.
func (a *App) Update(isTick bool, now time.Time, in Input) MoveResult {
	if in.Toggle {
		a.Toggle()
	}
	return a.active.Update(isTick, now, in)
}

// Sprites exposes the current visual state.
func (a *App) Sprites(l Layout) []Sprite {
	return a.board.Sprites(l)
}
