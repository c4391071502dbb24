package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/crema/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	beans, shots, err := ctx.Open()
	if err != nil {
		return err
	}

	// Backup on startup, while the collections are freshly loaded
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(beans, shots), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
