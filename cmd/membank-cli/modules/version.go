package cmd

import (
	"fmt"

	"github.com/membank/membank/misc"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Run:   versionRun,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func versionRun(cmd *cobra.Command, args []string) {
	fmt.Printf("Version: %s \nBuild: %s \nDebug: %s\n", misc.Version, misc.Build, misc.Debug)
}
