package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/eiannone/keyboard"
)

type MenuItem struct {
	Label string
	Value string
}

type Menu struct {
	Title    string
	Items    []MenuItem
	Selected int
	Width    int
}

func NewMenu(title string, items []MenuItem) *Menu {
	return &Menu{
		Title:    title,
		Items:    items,
		Selected: 0,
		Width:    60,
	}
}

func (m *Menu) centerText(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width-4 {
		return string([]rune(text)[:width-4])
	}
	padding := (width - n - 4) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-n-padding-4)
}

// Render draws the menu to w.
func (m *Menu) Render(w io.Writer) {
	inner := strings.Repeat("═", m.Width-2)

	fmt.Fprint(w, "\033[2J\033[H")
	fmt.Fprintln(w, "╔"+inner+"╗")
	fmt.Fprintf(w, "║ %s ║\n", m.centerText(m.Title, m.Width))
	fmt.Fprintln(w, "╠"+inner+"╣")

	for i, item := range m.Items {
		prefix := "  "
		if i == m.Selected {
			prefix = "► "
		}
		text := m.centerText(prefix+item.Label, m.Width)
		if i == m.Selected {
			fmt.Fprintf(w, "║ \033[7m%s\033[0m ║\n", text) // Highlighted
		} else {
			fmt.Fprintf(w, "║ %s ║\n", text)
		}
	}

	fmt.Fprintln(w, "╚"+inner+"╝")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use ↑/↓ arrows to navigate, Enter to select, 'q' to quit")
}

func (m *Menu) moveUp() {
	if m.Selected > 0 {
		m.Selected--
	} else {
		m.Selected = len(m.Items) - 1 // Wrap to bottom
	}
}

func (m *Menu) moveDown() {
	if m.Selected < len(m.Items)-1 {
		m.Selected++
	} else {
		m.Selected = 0 // Wrap to top
	}
}

// HandleKey applies one key press. It returns the chosen value and true once
// the user selects an item or quits.
func (m *Menu) HandleKey(char rune, key keyboard.Key) (string, bool) {
	switch key {
	case keyboard.KeyArrowUp:
		m.moveUp()
	case keyboard.KeyArrowDown:
		m.moveDown()
	case keyboard.KeyEnter:
		return m.Items[m.Selected].Value, true
	case keyboard.KeyEsc:
		return "exit", true
	}

	if char == 'q' || char == 'Q' {
		return "exit", true
	}
	return "", false
}

// Show blocks until the user picks an item. The keyboard is released before
// it returns so a game can open it again.
func (m *Menu) Show() (string, error) {
	if err := keyboard.Open(); err != nil {
		return "", fmt.Errorf("failed to open keyboard: %w", err)
	}
	defer keyboard.Close()

	for {
		m.Render(os.Stdout)

		char, key, err := keyboard.GetKey()
		if err != nil {
			return "", fmt.Errorf("error reading key: %w", err)
		}
		if value, done := m.HandleKey(char, key); done {
			return value, nil
		}
	}
}
