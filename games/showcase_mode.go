package games

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/isaacjstriker/tetrisbot/internal/types"
)

// ShowcaseMode plays every available game back to back
type ShowcaseMode struct {
	registry *GameRegistry
	out      io.Writer
	wait     func()
}

// NewShowcaseMode creates a showcase that prints to out and calls wait
// before each game
func NewShowcaseMode(registry *GameRegistry, out io.Writer, wait func()) *ShowcaseMode {
	return &ShowcaseMode{
		registry: registry,
		out:      out,
		wait:     wait,
	}
}

// Run plays all available games in a random order.
func (sm *ShowcaseMode) Run() types.ShowcaseStats {
	return sm.RunGames(sm.registry.GetRandomOrder())
}

// RunGames plays the given games in order and returns the combined stats.
func (sm *ShowcaseMode) RunGames(games []types.Game) types.ShowcaseStats {
	var stats types.ShowcaseStats

	if len(games) == 0 {
		fmt.Fprintln(sm.out, "No games available for the showcase!")
		return stats
	}

	fmt.Fprintln(sm.out, "\n--- SHOWCASE ---")
	fmt.Fprintln(sm.out, strings.Repeat("=", 50))
	fmt.Fprintf(sm.out, "You will play %d games in random order.\n", len(games))
	fmt.Fprintln(sm.out, strings.Repeat("=", 50))

	for i, game := range games {
		fmt.Fprintf(sm.out, "\n--- Game %d/%d: %s ---\n", i+1, len(games), game.GetName())
		fmt.Fprintf(sm.out, "Description: %s\n", game.GetDescription())
		fmt.Fprintf(sm.out, "Difficulty: %d/10\n", game.GetDifficulty())

		fmt.Fprintln(sm.out, "\nPress Enter to start...")
		sm.wait()

		result, err := game.Play()
		if err != nil {
			log.Error().Err(err).Str("game", game.GetName()).Msg("game failed")
			continue
		}
		stats.Add(*result)

		fmt.Fprintln(sm.out, "\n"+strings.Repeat("-", 40))
		fmt.Fprintf(sm.out, "Game Complete: %s\n", result.GameName)
		fmt.Fprintf(sm.out, "Score: %d\n", result.Score)
		fmt.Fprintln(sm.out, strings.Repeat("-", 40))
	}

	fmt.Fprintln(sm.out, "\n"+strings.Repeat("*", 25))
	fmt.Fprintln(sm.out, "SHOWCASE COMPLETE!")
	fmt.Fprintf(sm.out, "Combined score for this session: %d\n", stats.TotalScore)
	fmt.Fprintln(sm.out, strings.Repeat("*", 25))
	return stats
}
