package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
)

func testMenu() *Menu {
	return NewMenu("tetrisbot", []MenuItem{
		{Label: "Tetris", Value: "play"},
		{Label: "Tetris Autoplay", Value: "auto"},
		{Label: "Quit", Value: "exit"},
	})
}

func TestMenuNavigationWraps(t *testing.T) {
	m := testMenu()

	_, done := m.HandleKey(0, keyboard.KeyArrowUp)
	assert.False(t, done)
	assert.Equal(t, 2, m.Selected)

	m.HandleKey(0, keyboard.KeyArrowDown)
	assert.Equal(t, 0, m.Selected)

	m.HandleKey(0, keyboard.KeyArrowDown)
	value, done := m.HandleKey(0, keyboard.KeyEnter)
	assert.True(t, done)
	assert.Equal(t, "auto", value)
}

func TestMenuQuitKeys(t *testing.T) {
	for _, tc := range []struct {
		char rune
		key  keyboard.Key
	}{{'q', 0}, {'Q', 0}, {0, keyboard.KeyEsc}} {
		value, done := testMenu().HandleKey(tc.char, tc.key)
		assert.True(t, done)
		assert.Equal(t, "exit", value)
	}
}

func TestMenuRender(t *testing.T) {
	m := testMenu()
	m.Selected = 1

	var sb strings.Builder
	m.Render(&sb)
	out := sb.String()

	assert.Contains(t, out, "tetrisbot")
	assert.Contains(t, out, "► Tetris Autoplay")
	assert.Contains(t, out, "\033[7m")
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "║ ") && !strings.Contains(line, "\033") {
			assert.Equal(t, m.Width, len([]rune(line)), "line %q", line)
		}
	}
}

func TestCenterTextCountsRunes(t *testing.T) {
	m := testMenu()

	text := m.centerText("► Tetris Autoplay", m.Width)
	assert.Equal(t, m.Width-4, utf8.RuneCountInString(text))

	long := m.centerText(strings.Repeat("►", 80), m.Width)
	assert.True(t, utf8.ValidString(long))
	assert.Equal(t, strings.Repeat("►", m.Width-4), long)
}
