package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
	"github.com/iamasit07/connect4-hotseat/internal/tui"
	"github.com/iamasit07/connect4-hotseat/pkg/uid"
)

func main() {
	id, err := uid.GenerateSessionID()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := tui.New(game.NewSession(id))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
