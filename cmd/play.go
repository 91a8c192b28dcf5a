package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [era]",
	Short: "Start a quiz session",
	Long:  "Start a quiz session. With an era id (jomon, yayoi, kofun, asuka, nara, heian) the session begins immediately; without one the era selection screen is shown.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		era := ""
		if len(args) > 0 {
			era = args[0]
		}
		return runApp(cmd, era, false)
	},
}
