package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the klondike CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with its subcommands (play, deal),
// configures logging based on the --verbose flag, and executes the command
// tree.
//
// Logging:
//   - Default: warn level - pile diagnostics surface, chatter does not
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Klondike solitaire in the terminal",
		Long:         `Klondike deals and plays solitaire in the terminal, with keyboard and mouse support, seeded deals for replaying the same game, and one- or three-card draws.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.WarnLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newDealCmd())

	return root.ExecuteContext(context.Background())
}

// playOpts holds the command-line flags for the play command.
type playOpts struct {
	config string // explicit config file path
	seed   uint64 // shuffle seed override
	draw   int    // draw count override
}

// newPlayCmd creates the play command that starts the interactive TUI.
func newPlayCmd() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long:  `Play starts an interactive solitaire game in the terminal. The deal is random unless a seed is pinned via --seed or the config file; replaying a seed reproduces the exact same game.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runPlay(cfg, loggerFromContext(cmd.Context()))
		},
	}

	addGameFlags(cmd, &opts)
	return cmd
}

// newDealCmd creates the deal command, which prints the opening table for
// a seed without starting a game. Useful for sharing interesting deals.
func newDealCmd() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Print the opening table for a seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			table, err := newTable(cfg, loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable(table, nil, nil))
			return nil
		},
	}

	addGameFlags(cmd, &opts)
	return cmd
}

func addGameFlags(cmd *cobra.Command, opts *playOpts) {
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "config file (default ~/.config/klondike/config.toml)")
	cmd.Flags().Uint64VarP(&opts.seed, "seed", "s", 0, "shuffle seed (0 = random)")
	cmd.Flags().IntVarP(&opts.draw, "draw", "d", 0, "cards per draw: 1 or 3 (default from config)")
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(cmd *cobra.Command, opts playOpts) (Config, error) {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return cfg, err
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if cmd.Flags().Changed("draw") {
		cfg.DrawCount = opts.draw
	}
	return cfg, cfg.validate()
}
