package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the interactive terminal UI.

Fill in the form, then see yourself next to eight dinosaurs.

Controls:
  Tab     Next field
  ←/→     Change numbers and diet
  Enter   Compare
  r       New facts
  y       Copy facts
  n       Start over
  Esc     Menu (twice to quit)`,
	RunE: runUnifiedTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
