package cmd

import (
	"fmt"
	"os"

	"derkit/cli"
	"derkit/cmd/derkit/cmd/key"
	"derkit/config"
	"derkit/log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var configuredHomeDir string

var rootCmd = &cobra.Command{
	Use:   "derkit",
	Short: "DER key material toolkit.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.CalledAs() {
		case "init", "version", "inspect":
			return nil
		}
		configuredHomeDir = cli.GetHomeDir(cmd)
		if err := config.EnsureHomeDir(configuredHomeDir); err != nil {
			return errors.Wrap(err, "error ensuring home directory")
		}
		cfg, err := config.ReadConfigFile(configuredHomeDir)
		if err != nil {
			return errors.Wrap(err, "error reading config file")
		}
		logLevel, err := log.NewLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(logLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.derkit", "Home directory for the toolkit's config and keystore.")
	key.AddCmd(rootCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
