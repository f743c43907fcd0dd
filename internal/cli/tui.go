package cli

import (
	"github.com/andy/contactbook/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI",
	Long:  `Run the contactbook command interpreter inside a full-screen terminal UI.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(appInstance.Assistant)
	},
}
