package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/katalvlaran/gridwalk/internal/config"
	"github.com/katalvlaran/gridwalk/internal/logging"
)

// flagKeys maps command-line flags onto configuration keys. Only flags the
// running command defines are bound.
var flagKeys = map[string]string{
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
	"algo":       config.KeyAlgorithm,
	"map":        config.KeyMap,
	"rows":       config.KeyRows,
	"cols":       config.KeyCols,
	"start":      config.KeyStart,
	"end":        config.KeyEnd,
	"delay":      config.KeyStepDelay,
	"cache-size": config.KeyCacheSize,
}

// app carries state shared by every subcommand once setup has run.
type app struct {
	v       *viper.Viper
	cfgPath string
	cfg     *config.Config
	logger  *slog.Logger
}

// isTTY reports whether both stdin and stdout are terminals.
func isTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "gridwalk",
		Short: "Watch breadth-first and depth-first search walk a grid",
		Long: `gridwalk edits a rectangular maze and replays how BFS or DFS explores it,
cell by cell, before highlighting the route from Start to End.

Run without a subcommand in a terminal to open the interactive board.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTTY() {
				return cmd.Help()
			}
			return a.play(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default gridwalk.yaml in . or $HOME)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")

	root.AddCommand(
		newPlayCommand(a),
		newSolveCommand(a),
		newConfigCommand(a),
	)
	return root
}

// addBoardFlags registers the flags that describe the initial board.
func addBoardFlags(fs *pflag.FlagSet) {
	fs.String("algo", "", "search algorithm: bfs or dfs")
	fs.String("map", "", "ASCII map file (S start, E end, # wall, . empty)")
	fs.Int("rows", 0, "board rows")
	fs.Int("cols", 0, "board columns")
	fs.String("start", "", "start cell as row,col")
	fs.String("end", "", "end cell as row,col")
	fs.StringArray("wall", nil, "wall cell as row,col (repeatable)")
}

// setup binds the running command's flags, loads configuration and builds
// the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	if flags.Changed("wall") {
		walls, err := flags.GetStringArray("wall")
		if err != nil {
			return err
		}
		cfg.Walls = walls
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	logger.Debug("configuration loaded",
		slog.String("file", a.v.ConfigFileUsed()),
		slog.String("algorithm", cfg.Algorithm))
	return nil
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cfg.Write(cmd.OutOrStdout())
		},
	}
}
