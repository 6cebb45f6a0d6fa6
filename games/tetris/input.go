package tetris

import (
	"time"

	"github.com/eiannone/keyboard"
)

// Input is the set of commands seen during one frame.
type Input struct {
	Left   bool
	Right  bool
	Down   bool
	Rotate bool
	Toggle bool // hand control between the player and the agent
	Quit   bool
}

// Debouncer limits how often held directional keys repeat.
type Debouncer struct {
	window time.Duration
	last   time.Time
}

func NewDebouncer(window time.Duration, now time.Time) *Debouncer {
	return &Debouncer{window: window, last: now}
}

// Ready reports whether enough time has passed since the last accepted input.
func (d *Debouncer) Ready(now time.Time) bool {
	return now.Sub(d.last) > d.window
}

// Accept restarts the window.
func (d *Debouncer) Accept(now time.Time) {
	d.last = now
}

// TickGate decides which frames advance the simulation by one step.
type TickGate struct {
	interval time.Duration
	next     time.Time
}

func NewTickGate(interval time.Duration, now time.Time) *TickGate {
	return &TickGate{interval: interval, next: now.Add(interval)}
}

// Due reports whether this frame is a tick. At most one tick is reported per
// call even if several intervals have elapsed.
func (g *TickGate) Due(now time.Time) bool {
	if !now.After(g.next) {
		return false
	}
	g.next = g.next.Add(g.interval)
	return true
}

// SetInterval changes the tick spacing from the next tick onwards.
func (g *TickGate) SetInterval(interval time.Duration) {
	g.interval = interval
}

// KeyboardSource collects key events delivered by the keyboard package and
// folds them into one Input per frame.
type KeyboardSource struct {
	events <-chan keyboard.KeyEvent
}

// OpenKeyboard puts the terminal in raw mode and starts listening.
func OpenKeyboard() (*KeyboardSource, error) {
	events, err := keyboard.GetKeys(16)
	if err != nil {
		return nil, err
	}
	return &KeyboardSource{events: events}, nil
}

func (k *KeyboardSource) Close() error {
	return keyboard.Close()
}

// Poll drains pending events without blocking.
func (k *KeyboardSource) Poll() Input {
	var in Input
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				in.Quit = true
				return in
			}
			if ev.Err == nil {
				in = in.With(ev.Rune, ev.Key)
			}
		default:
			return in
		}
	}
}

// With merges one key press into the frame input.
func (in Input) With(char rune, key keyboard.Key) Input {
	switch {
	case key == keyboard.KeyArrowLeft || char == 'a' || char == 'A':
		in.Left = true
	case key == keyboard.KeyArrowRight || char == 'd' || char == 'D':
		in.Right = true
	case key == keyboard.KeyArrowDown || char == 's' || char == 'S':
		in.Down = true
	case key == keyboard.KeyArrowUp || char == 'w' || char == 'W':
		in.Rotate = true
	case key == keyboard.KeySpace || char == 'p' || char == 'P':
		in.Toggle = true
	case key == keyboard.KeyEsc || key == keyboard.KeyCtrlC || char == 'q' || char == 'Q':
		in.Quit = true
	}
	return in
}
