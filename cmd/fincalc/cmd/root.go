package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/fincalc/internal/prompt"
	"github.com/msto63/fincalc/internal/report"
	"github.com/msto63/fincalc/pkg/core/config"
	"github.com/msto63/fincalc/pkg/core/logging"
)

// rootOptions is shared by all subcommands. cfg and logger are set in
// PersistentPreRunE.
type rootOptions struct {
	cfgFile string
	verbose bool
	tui     bool

	cfg     *config.Config
	logger  *zap.Logger
	logFile *os.File
	runID   string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "fincalc",
		Short: "fincalc - Finanzmathematik auf der Kommandozeile",
		Long: `fincalc bündelt eine Formelbibliothek der Finanzmathematik und
einige Rechner, die darauf aufbauen.

Rechner:
  mortgage    - Tilgungsplan eines Hypothekendarlehens
  savings     - Sparplan mit monatlichem Zinseszins und ISK-Pauschalsteuer
  isk         - ISK-Prognose mit jährlicher Verzinsung
  avg-return  - Durchschnittliche Jahresrendite aus einer Gesamtrendite
  geo-return  - Geometrisches Mittel jährlicher Renditen
  formula     - Einzelne Formeln der Bibliothek auswerten

Prozentwerte werden in Prozent angegeben (8 = 8 %).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
			if o.logFile != nil {
				_ = o.logFile.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "Config-Datei, TOML oder YAML (default: $FINCALC_CONFIG, ./configs/fincalc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().BoolVar(&o.tui, "tui", false, "Eingabe als Terminal-Formular statt zeilenweise")

	rootCmd.AddCommand(
		newMortgageCmd(o),
		newSavingsCmd(o),
		newISKCmd(o),
		newAvgReturnCmd(o),
		newGeoReturnCmd(o),
		newFormulaCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	o.cfg = cfg

	level := cfg.Logging.Level
	if o.verbose {
		level = "debug"
	}
	logCfg := logging.DefaultLoggerConfig("fincalc")
	logCfg.Level = level
	logCfg.Format = cfg.Logging.Format
	logCfg.Output = cmd.ErrOrStderr()
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		o.logFile = f
		logCfg.AdditionalOutputs = append(logCfg.AdditionalOutputs, f)
	}
	logger := logging.NewLogger(logCfg)
	o.logger, o.runID = logging.WithRunID(logger)

	if !cmd.Flags().Changed("tui") {
		o.tui = cfg.Output.TUI
	}

	o.logger.Debug("command started",
		zap.String("command", cmd.CommandPath()),
		zap.String("config", o.cfgFile),
		zap.Bool("tui", o.tui))
	return nil
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.cfgFile != "" {
		return config.Load(o.cfgFile)
	}
	cfg, err := config.LoadFromEnv()
	if errors.Is(err, config.ErrNoConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

func (o *rootOptions) prompter(cmd *cobra.Command) prompt.Prompter {
	return prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(), o.tui)
}

// writeChart renders chart into the file name, resolved against the
// configured chart directory.
func (o *rootOptions) writeChart(name string, chart report.Chart) error {
	path := o.cfg.ChartPath(name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := report.RenderChart(chart, f); err != nil {
		f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart: %w", err)
	}
	o.logger.Info("chart written", zap.String("path", path))
	return nil
}

// plain renders a default value the way a user would type it.
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Fehler: %v\n", err)
}
