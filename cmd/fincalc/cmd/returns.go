package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/fincalc/internal/calculator"
	"github.com/msto63/fincalc/internal/prompt"
	"github.com/msto63/fincalc/internal/report"
)

func newAvgReturnCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "avg-return [gesamtrendite jahre]",
		Short: "Durchschnittliche Jahresrendite aus einer Gesamtrendite",
		Long: `Verteilt die Gesamtrendite eines Zeitraums auf die Jahre.
Die Gesamtrendite wird als Faktor angegeben (1,5 für +50 %).
Ohne Argumente werden die Werte abgefragt.

Beispiele:
  fincalc avg-return 1,5 5
  fincalc avg-return`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("erwartet keine oder zwei Argumente, erhalten: %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				answers, err := root.prompter(cmd).Ask([]prompt.Question{
					{Label: "Enter the total rate of return of the period"},
					{Label: "Enter the length of the period in years?"},
				})
				if err != nil {
					return err
				}
				args = answers
			}

			total, err := calculator.RequireFloat("total rate of return", args[0])
			if err != nil {
				return err
			}
			years, err := calculator.RequireInt("years", args[1])
			if err != nil {
				return err
			}

			rate, err := calculator.AverageReturn(total, years)
			if err != nil {
				return err
			}
			root.logger.Debug("average return computed", zap.Float64("rate", rate))
			return report.Return(cmd.OutOrStdout(), rate)
		},
	}
}

func newGeoReturnCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geo-return [rendite...]",
		Short: "Geometrisches Mittel jährlicher Renditen",
		Long: `Berechnet das geometrische Mittel jährlicher Renditen in Prozent.
Die Werte werden durch Leerzeichen getrennt, ein Dezimalkomma ist erlaubt.
Ohne Argumente werden die Werte abgefragt.

Beispiele:
  fincalc geo-return 4 5 6,5 7
  fincalc geo-return "4 -2 5"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				answers, err := root.prompter(cmd).Ask([]prompt.Question{
					{Label: "Enter the rate of return (percentage) for every year (separate with space)"},
				})
				if err != nil {
					return err
				}
				text = answers[0]
			}

			returns, err := calculator.ParseReturns("returns", text)
			if err != nil {
				return err
			}
			rate, err := calculator.GeometricReturn(returns)
			if err != nil {
				return err
			}
			root.logger.Debug("geometric return computed", zap.Int("years", len(returns)), zap.Float64("rate", rate))
			return report.Return(cmd.OutOrStdout(), rate)
		},
	}
	// Negative returns must not be read as flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
