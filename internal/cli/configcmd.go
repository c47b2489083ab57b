package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/backdrop/pkg/config"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configPathCommand())

	return cmd
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if asTOML {
				return cfg.Write(cmd.OutOrStdout())
			}

			seed := "fresh per render"
			if cfg.Seed != 0 {
				seed = strconv.FormatUint(cfg.Seed, 10)
			}
			printKeyValue("style", cfg.Style)
			printKeyValue("size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
			printKeyValue("seed", seed)
			printKeyValue("output", cfg.Output)
			printKeyValue("dir", cfg.Dir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTOML, "toml", false, "print as TOML, ready to save as a config file")

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return fmt.Errorf("get config path: %w", err)
				}
			}
			printFile(path)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				printDetail("not present; built-in defaults apply")
			}
			return nil
		},
	}
}
