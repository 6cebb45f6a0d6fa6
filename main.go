package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/isaacjstriker/tetrisbot/games"
	"github.com/isaacjstriker/tetrisbot/internal/config"
	"github.com/isaacjstriker/tetrisbot/ui"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tetrisbot <command>")
	fmt.Fprintln(w, "  play      - play tetris yourself (P hands control to the agent)")
	fmt.Fprintln(w, "  auto      - watch the agent play (P takes over)")
	fmt.Fprintln(w, "  showcase  - play every mode in random order")
	fmt.Fprintln(w, "  menu      - pick from a menu")
}

// setupLogging sends logs to LOG_FILE when set. Otherwise only warnings and
// above reach stderr, so the game screen stays readable.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.LogFile == "" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.WarnLevel).With().Timestamp().Logger()
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Str("app", cfg.AppName).Logger()
	return f, nil
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	closer, err := setupLogging(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	defer closer.Close()

	registry, err := games.NewRegistry(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up games")
	}

	command := os.Args[1]
	if command == "menu" {
		items := make([]ui.MenuItem, 0, len(registry.Keys())+2)
		for _, key := range registry.Keys() {
			g, _ := registry.GetGame(key)
			items = append(items, ui.MenuItem{Label: g.GetName(), Value: key})
		}
		items = append(items, ui.MenuItem{Label: "Showcase", Value: "showcase"}, ui.MenuItem{Label: "Quit", Value: "exit"})

		command, err = ui.NewMenu(cfg.AppName, items).Show()
		if err != nil {
			log.Fatal().Err(err).Msg("menu failed")
		}
	}

	switch command {
	case "exit":
		return
	case "showcase":
		stdin := bufio.NewReader(os.Stdin)
		games.NewShowcaseMode(registry, os.Stdout, func() { stdin.ReadString('\n') }).Run()
	default:
		game, ok := registry.GetGame(command)
		if !ok {
			fmt.Println("Unknown game:", command)
			usage(os.Stdout)
			return
		}
		result, err := game.Play()
		if err != nil {
			log.Error().Err(err).Str("game", game.GetName()).Msg("game failed")
			return
		}
		fmt.Print("\033[2J\033[H")
		fmt.Printf("%s finished. Score: %d (%.0fs)\n", result.GameName, result.Score, result.Duration)
	}
}
