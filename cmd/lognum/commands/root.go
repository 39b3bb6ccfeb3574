package commands

import (
	"io"

	"github.com/db47h/lognum/cmd/lognum/config"
	"github.com/db47h/lognum/context"
	"github.com/hashicorp/go-hclog"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var jsonx = jsoniter.Config{
	IndentionStep: 2,
	EscapeHTML:    true,
	SortMapKeys:   true,
}.Froze()

// env holds the state shared by all commands of a command tree. It is
// populated by the root command before any subcommand runs.
type env struct {
	v       *viper.Viper
	cfgFile string
	json    bool

	config *config.Config
	logger hclog.Logger
}

// newContext returns a fresh evaluation context. Contexts are not safe for
// concurrent use; each goroutine needs its own.
func (e *env) newContext() *context.Context {
	return e.config.Context()
}

// writeJSON writes v as indented JSON to w.
func (e *env) writeJSON(w io.Writer, v interface{}) error {
	b, err := jsonx.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// NewRootCmd returns the lognum command with all its subcommands.
func NewRootCmd() *cobra.Command {
	e := &env{v: config.NewViper()}
	def := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "lognum",
		Short:         "Arithmetic on astronomically large and small numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindFlags(e.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(e.v, e.cfgFile)
			if err != nil {
				return err
			}
			e.config = cfg
			e.logger = cfg.Logger(cmd.ErrOrStderr())
			e.logger.Debug("configuration loaded",
				"precision", cfg.Precision,
				"notation", cfg.Notation,
				"workers", cfg.Workers)
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&e.cfgFile, "config", "", "configuration file")
	pf.BoolVar(&e.json, "json", false, "print results as JSON")
	pf.IntP("precision", "p", def.Precision, "digits after the decimal point, negative for the notation's default")
	pf.StringP("notation", "n", def.Notation, "output notation: auto, fixed, scientific or logarithmic")
	pf.String("log-level", def.LogLevel, "log level: trace, debug, info, warn, error or off")
	pf.Int("workers", def.Workers, "number of concurrent workers")

	cmd.AddCommand(
		newDemoCmd(e),
		newEvalCmd(e),
		newFormatCmd(e),
		newTableCmd(e),
		newVersionCmd(),
	)
	return cmd
}
