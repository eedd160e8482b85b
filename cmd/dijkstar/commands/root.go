package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dijkstar/internal/config"
)

// Version is stamped at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// app is the state shared by every subcommand of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	output  string
	cfg     config.Config
	logger  *slog.Logger
}

// Execute runs the root command against os.Args.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "dijkstar",
		Short: "Least-cost paths on weighted directed graphs",
		Long: `dijkstar finds least-cost paths in graphs stored as nested mappings:

  a:
    b: 1
    c: 2.5

Queries may add temporary annex edges and a turn penalty.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.StringVarP(&a.output, "output", "o", "text", "Output format: text or yaml")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")
	pf.Float64("turn-penalty", 0, "Extra cost when an edge's weight differs from the previous edge's")
	a.bind(pf, "log.level", "log-level")
	a.bind(pf, "log.format", "log-format")
	a.bind(pf, "graph.turn_penalty", "turn-penalty")

	root.AddCommand(
		newPathCmd(a),
		newPathsCmd(a),
		newInfoCmd(a),
		newGenerateCmd(a),
		newServeCmd(a),
	)

	return root
}

// bind ties a flag to a config key. Flags only override when set.
func (a *app) bind(fs *pflag.FlagSet, key, flag string) {
	if err := a.v.BindPFlag(key, fs.Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind %s: %v", flag, err))
	}
}

// init resolves configuration and builds the logger before any subcommand runs.
func (a *app) init(cmd *cobra.Command) error {
	switch a.output {
	case "text", "yaml":
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", a.output)
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())
	a.logger.Debug("Configuration loaded", "file", a.v.ConfigFileUsed())

	return nil
}
