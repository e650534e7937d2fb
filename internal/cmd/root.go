// Package cmd provides the certprobe CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "certprobe",
	Short: "certprobe - TLS certificate inventory and expiry checker",
	Long: `certprobe inventories TLS endpoints, retrieves each endpoint's
certificate (directly or via STARTTLS), and reports identity, validity and
risk flags: expiring soon, name mismatch, or no certificate at all.

Check a single domain:
  certprobe check example.com

Check a domain list and print the endpoints due for renewal:
  certprobe check -f /etc/certprobe/domains.txt --renewals`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./certprobe.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/certprobe")
		viper.SetConfigType("yaml")
		viper.SetConfigName("certprobe")
	}

	// Read environment variables with CERTPROBE_ prefix
	viper.SetEnvPrefix("CERTPROBE")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
