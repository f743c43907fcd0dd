package cli

import (
	"fmt"
	"os"

	"github.com/andy/contactbook/internal/app"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	appInstance *app.App

	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "contactbook",
	Short: "An in-memory contact book with birthday reminders",
	Long: `Contactbook keeps names, phone numbers and birthdays for the length of a session
and tells you whose birthday is coming up in the next week.

Running contactbook without arguments starts the command interpreter on stdin.
Type "help" at the prompt to list commands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if appInstance != nil {
			return nil
		}
		a, err := app.New(app.Options{ConfigPath: configPath, Verbose: verbose})
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		SetApp(a)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appInstance != nil {
			_ = appInstance.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		return appInstance.Assistant.Run(cmd.Context(), in, cmd.OutOrStdout(), isTerminal(in))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

// isTerminal reports whether r is an interactive terminal
func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/contactbook/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
}
