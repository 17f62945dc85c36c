package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/fincalc/internal/calculator"
	"github.com/msto63/fincalc/internal/prompt"
	"github.com/msto63/fincalc/internal/report"
)

type mortgageOptions struct {
	cost        string
	downPayment string
	years       string
	rate        string
	interactive bool
	chart       string
}

func newMortgageCmd(root *rootOptions) *cobra.Command {
	o := &mortgageOptions{}

	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Tilgungsplan eines Hypothekendarlehens",
		Long: `Berechnet einen Tilgungsplan mit gleichbleibender Tilgung.
Die Zinsen werden monatlich auf die Restschuld berechnet.

Nicht angegebene Werte kommen aus der Config-Datei bzw. den Defaults
(2 000 000, 15 % Anzahlung, 15 Jahre, 4 % Zins).

Beispiele:
  fincalc mortgage
  fincalc mortgage --cost 3500000 --down-payment 20 --rate 3,5
  fincalc mortgage -i
  fincalc mortgage --chart tilgung.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMortgage(cmd, root, o)
		},
	}

	cmd.Flags().StringVar(&o.cost, "cost", "", "Kaufpreis der Immobilie")
	cmd.Flags().StringVar(&o.downPayment, "down-payment", "", "Anzahlung in Prozent")
	cmd.Flags().StringVar(&o.years, "years", "", "Laufzeit in Jahren")
	cmd.Flags().StringVar(&o.rate, "rate", "", "Zinssatz in Prozent")
	cmd.Flags().BoolVarP(&o.interactive, "interactive", "i", false, "Werte interaktiv abfragen")
	cmd.Flags().StringVar(&o.chart, "chart", "", "HTML-Diagramm in Datei schreiben")

	return cmd
}

func runMortgage(cmd *cobra.Command, root *rootOptions, o *mortgageOptions) error {
	d := root.cfg.Mortgage

	if o.interactive {
		answers, err := root.prompter(cmd).Ask([]prompt.Question{
			{Label: "Enter the Property Cost", Default: plain(d.PropertyCost)},
			{Label: "Enter the Down Payment Percentage", Default: plain(d.DownPayment) + "%"},
			{Label: "Enter the Mortgage type in years", Default: plain(d.Years) + " years"},
			{Label: "Enter the interest rate percentage", Default: plain(d.InterestRate) + "%"},
		})
		if err != nil {
			return err
		}
		o.cost, o.downPayment, o.years, o.rate = answers[0], answers[1], answers[2], answers[3]
	}

	var (
		cfg calculator.MortgageConfig
		err error
	)
	if cfg.PropertyCost, err = calculator.ParseFloat("property cost", o.cost, d.PropertyCost); err != nil {
		return err
	}
	if cfg.DownPayment, err = calculator.ParsePercent("down payment", o.downPayment, d.DownPayment/100); err != nil {
		return err
	}
	if cfg.Years, err = calculator.ParseFloat("mortgage type", o.years, d.Years); err != nil {
		return err
	}
	if cfg.InterestRate, err = calculator.ParsePercent("interest rate", o.rate, d.InterestRate/100); err != nil {
		return err
	}

	res, err := calculator.Mortgage(cfg, root.logger)
	if err != nil {
		return err
	}
	root.logger.Debug("mortgage computed",
		zap.Float64("loan", res.LoanAmount),
		zap.Float64("payment", res.MonthlyPayment),
		zap.Int("months", len(res.Rows)))

	if err := report.Mortgage(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if o.chart != "" {
		return root.writeChart(o.chart, report.MortgageChart(res))
	}
	return nil
}
