package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-wordfind/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration",
	Long: `Without a subcommand, prints the effective configuration: the embedded
defaults merged with the config file, WORDFIND_* environment variables and
flags.

Examples:
  wordfind config
  WORDFIND_ENGINE_WIDTH=20 wordfind config
  wordfind config init`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration to a file",
	Long: `Writes the default configuration to ~/.wordfind/configs/wordfind.yaml,
or to the given path, so it can be edited.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	out, err := yaml.Marshal(appCfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func runConfigInit(_ *cobra.Command, args []string) error {
	path := config.UserConfigPath()
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return errors.New("cannot locate home directory; pass a path")
	}

	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Write(config.Default(), path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
