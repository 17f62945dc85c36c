package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/fincalc/internal/calculator"
	"github.com/msto63/fincalc/internal/prompt"
	"github.com/msto63/fincalc/internal/report"
	"github.com/msto63/fincalc/pkg/core/config"
)

// projection describes one of the two savings calculators. Both share
// flags and prompts and differ in defaults, loop and table layout.
type projection struct {
	use        string
	short      string
	long       string
	defaults   func(*config.Config) config.SavingsConfig
	labels     [5]string
	run        func(calculator.SavingsConfig, *zap.Logger) (*calculator.SavingsResult, error)
	render     func(io.Writer, *calculator.SavingsResult) error
	chartTitle string
}

type savingsOptions struct {
	start         string
	monthly       string
	yearlyReturn  string
	years         string
	tax           string
	borrowingRate string
	interactive   bool
	chart         string
}

func newSavingsCmd(root *rootOptions) *cobra.Command {
	return newProjectionCmd(root, projection{
		use:   "savings",
		short: "Sparplan mit monatlichem Zinseszins und ISK-Pauschalsteuer",
		long: `Projiziert einen Sparplan Monat für Monat. Die Jahresrendite wird in
einen gleichwertigen Monatszins umgerechnet, die ISK-Pauschalsteuer wird
am Jahresende aus vier Quartalswerten und den Einzahlungen berechnet.

Beispiele:
  fincalc savings
  fincalc savings --start 100000 --monthly 3000 --return 6 --years 30
  fincalc savings --tax n
  fincalc savings -i --tui`,
		defaults: func(c *config.Config) config.SavingsConfig { return c.Savings },
		labels: [5]string{
			"Enter Start Capital",
			"Enter Monthly Save",
			"Enter Yearly Return",
			"Enter Years to Save",
			"Should Flat-Rate Tax be included? (y/n)",
		},
		run:        calculator.Savings,
		render:     report.Savings,
		chartTitle: "Savings",
	})
}

func newISKCmd(root *rootOptions) *cobra.Command {
	return newProjectionCmd(root, projection{
		use:   "isk",
		short: "ISK-Prognose mit jährlicher Verzinsung",
		long: `Projiziert ein ISK-Konto Jahr für Jahr. Einzahlungen sammeln sich
unverzinst, am Jahresende wird eine Jahresrendite gutgeschrieben. Die
Quartalswerte für die Pauschalsteuer werden über die Jahresrendite
interpoliert.

Beispiele:
  fincalc isk
  fincalc isk --years 25 --return 7
  fincalc isk --chart isk.html`,
		defaults: func(c *config.Config) config.SavingsConfig { return c.ISK },
		labels: [5]string{
			"Enter Start Capital",
			"Enter Monthly Save",
			"Enter Yearly Return",
			"Enter Years",
			"Should Flat-Rate tax be included? (y/n)",
		},
		run:        calculator.ISKProjection,
		render:     report.ISK,
		chartTitle: "ISK",
	})
}

func newProjectionCmd(root *rootOptions, p projection) *cobra.Command {
	o := &savingsOptions{}

	cmd := &cobra.Command{
		Use:   p.use,
		Short: p.short,
		Long:  p.long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjection(cmd, root, p, o)
		},
	}

	cmd.Flags().StringVar(&o.start, "start", "", "Startkapital")
	cmd.Flags().StringVar(&o.monthly, "monthly", "", "Monatliche Einzahlung")
	cmd.Flags().StringVar(&o.yearlyReturn, "return", "", "Jahresrendite in Prozent")
	cmd.Flags().StringVar(&o.years, "years", "", "Anzahl Jahre")
	cmd.Flags().StringVar(&o.tax, "tax", "", "Pauschalsteuer abziehen (y/n)")
	cmd.Flags().StringVar(&o.borrowingRate, "borrowing-rate", "", "Statslåneräntan in Prozent")
	cmd.Flags().BoolVarP(&o.interactive, "interactive", "i", false, "Werte interaktiv abfragen")
	cmd.Flags().StringVar(&o.chart, "chart", "", "HTML-Diagramm in Datei schreiben")

	return cmd
}

func runProjection(cmd *cobra.Command, root *rootOptions, p projection, o *savingsOptions) error {
	d := p.defaults(root.cfg)

	if o.interactive {
		taxDefault := "n"
		if d.FlatRateTax {
			taxDefault = "y"
		}
		answers, err := root.prompter(cmd).Ask([]prompt.Question{
			{Label: p.labels[0], Default: plain(d.StartCapital)},
			{Label: p.labels[1], Default: plain(d.MonthlyDeposit)},
			{Label: p.labels[2], Default: plain(d.YearlyReturn)},
			{Label: p.labels[3], Default: plain(float64(d.Years))},
			{Label: p.labels[4], Default: taxDefault},
		})
		if err != nil {
			return err
		}
		o.start, o.monthly, o.yearlyReturn, o.years, o.tax = answers[0], answers[1], answers[2], answers[3], answers[4]
	}

	var (
		cfg calculator.SavingsConfig
		err error
	)
	if cfg.StartCapital, err = calculator.ParseFloat("start capital", o.start, d.StartCapital); err != nil {
		return err
	}
	if cfg.MonthlyDeposit, err = calculator.ParseFloat("monthly save", o.monthly, d.MonthlyDeposit); err != nil {
		return err
	}
	if cfg.YearlyReturn, err = calculator.ParsePercent("yearly return", o.yearlyReturn, d.YearlyReturn/100); err != nil {
		return err
	}
	if cfg.Years, err = calculator.ParseInt("years", o.years, d.Years); err != nil {
		return err
	}
	if cfg.GovernmentBorrowingRate, err = calculator.ParsePercent("borrowing rate", o.borrowingRate, root.cfg.Tax.GovernmentBorrowingRate/100); err != nil {
		return err
	}
	cfg.FlatRateTax = calculator.ParseYesNo(o.tax, d.FlatRateTax)

	res, err := p.run(cfg, root.logger)
	if err != nil {
		return err
	}
	final := res.Final()
	root.logger.Debug("projection computed",
		zap.String("calculator", p.use),
		zap.Int("years", len(res.Rows)),
		zap.Float64("capital", final.TotalCapital))

	if err := p.render(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if o.chart != "" {
		return root.writeChart(o.chart, report.SavingsChart(p.chartTitle, res))
	}
	return nil
}
