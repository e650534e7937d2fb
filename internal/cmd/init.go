package cmd

import (
	"github.com/spf13/cobra"

	"github.com/certwatch-app/certprobe/internal/cmd/initcmd"
)

var initOutputPath string

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new certprobe configuration",
	Long: `Interactively create a new certprobe configuration file.

The wizard will guide you through setting up:
  • Endpoints to check (hostnames with optional port or service)
  • The renewal alert threshold
  • Probe and output behavior

Example:
  certprobe init -o /etc/certprobe/certprobe.yaml`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", "./certprobe.yaml",
		"Output path for the configuration file")
}

func runInit(_ *cobra.Command, _ []string) error {
	wizard := initcmd.NewWizard(initOutputPath)
	return wizard.Run()
}
