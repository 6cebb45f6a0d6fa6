package tetris

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
)

// DefaultScriptPath is where the bundled tuning script lives.
const DefaultScriptPath = "games/tetris/tetris.lua"

// LoadScript applies a Lua tuning script on top of s. The script must return
// a table with optional "weights" and "settings" sub-tables. A missing file
// leaves s unchanged.
func LoadScript(path string, s Settings) (Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("tuning script not found, using defaults")
		return s, nil
	}

	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return s, fmt.Errorf("failed to run %s: %w", path, err)
	}
	return applyScript(L, s)
}

// LoadScriptString is LoadScript for inline sources.
func LoadScriptString(src string, s Settings) (Settings, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return s, fmt.Errorf("failed to run tuning script: %w", err)
	}
	return applyScript(L, s)
}

func applyScript(L *lua.LState, s Settings) (Settings, error) {
	root, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return s, fmt.Errorf("tuning script must return a table, got %s", L.Get(-1).Type())
	}

	if tbl, ok := root.RawGetString("weights").(*lua.LTable); ok {
		for f := Feature(0); f < NumFeatures; f++ {
			s.Weights[f] = getLuaFloat(tbl, f.String(), s.Weights[f])
		}
	}

	if tbl, ok := root.RawGetString("settings").(*lua.LTable); ok {
		s.Width = getLuaInt(tbl, "width", s.Width)
		s.Height = getLuaInt(tbl, "height", s.Height)
		s.TickInterval = getLuaSeconds(tbl, "tick", s.TickInterval)
		s.Debounce = getLuaSeconds(tbl, "debounce", s.Debounce)
		if v, ok := tbl.RawGetString("agent").(lua.LBool); ok {
			s.StartAgent = bool(v)
		}
	}

	if s.Width < 4 || s.Height < 4 {
		return s, fmt.Errorf("board %dx%d is too small", s.Width, s.Height)
	}
	return s, nil
}

func getLuaInt(tbl *lua.LTable, key string, fallback int) int {
	if num, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(num)
	}
	return fallback
}

func getLuaFloat(tbl *lua.LTable, key string, fallback float64) float64 {
	if num, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(num)
	}
	return fallback
}

func getLuaSeconds(tbl *lua.LTable, key string, fallback time.Duration) time.Duration {
	if num, ok := tbl.RawGetString(key).(lua.LNumber); ok && num > 0 {
		return time.Duration(float64(num) * float64(time.Second))
	}
	return fallback
}
