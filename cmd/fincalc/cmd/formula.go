package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/fincalc/internal/calculator"
	"github.com/msto63/fincalc/internal/formulas"
	"github.com/msto63/fincalc/internal/report"
)

func newFormulaCmd(root *rootOptions) *cobra.Command {
	var lists []string

	cmd := &cobra.Command{
		Use:   "formula <name> [argumente...]",
		Short: "Einzelne Formeln der Bibliothek auswerten",
		Long: `Wertet eine Formel der Bibliothek mit den angegebenen Argumenten aus.
Raten werden als Dezimalbruch angegeben (0,05 für 5 %). Listenparameter
werden mit --list übergeben, einmal pro Liste und vor dem Formelnamen.

Beispiele:
  fincalc formula list
  fincalc formula future-value 1000 0.05 10
  fincalc formula --list "50 60 70 100 500" net-present-value 400 0.12
  fincalc formula --list "0.3 0.7" --list "0.1 0.05" weighted-average`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormula(cmd, root, args, lists)
		},
	}
	cmd.Flags().StringArrayVar(&lists, "list", nil, "Listenparameter, Werte durch Leerzeichen getrennt")
	// Negative arguments must not be read as flags.
	cmd.Flags().SetInterspersed(false)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Alle Formeln auflisten",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := report.NewTable(80, report.Column{Title: "Group:", Width: 14}, report.Column{Title: "Formula:"})
			for _, f := range formulas.All() {
				t.AddRow(f.Group, f.Signature())
			}
			return t.Render(cmd.OutOrStdout())
		},
	})

	return cmd
}

func runFormula(cmd *cobra.Command, root *rootOptions, args, lists []string) error {
	name := args[0]
	f, ok := formulas.Lookup(name)
	if !ok {
		return fmt.Errorf("%q: %w, see 'fincalc formula list'", name, formulas.ErrUnknownFormula)
	}

	values := make([]float64, 0, len(args)-1)
	for i, text := range args[1:] {
		field := fmt.Sprintf("argument %d", i+1)
		if i < len(f.Params) {
			field = f.Params[i]
		}
		v, err := calculator.RequireFloat(field, text)
		if err != nil {
			return err
		}
		values = append(values, v)
	}

	parsedLists := make([][]float64, 0, len(lists))
	for i, text := range lists {
		field := fmt.Sprintf("list %d", i+1)
		if i < len(f.Lists) {
			field = f.Lists[i]
		}
		list := make([]float64, 0)
		for _, part := range strings.Fields(text) {
			v, err := calculator.RequireFloat(field, part)
			if err != nil {
				return err
			}
			list = append(list, v)
		}
		parsedLists = append(parsedLists, list)
	}

	result, err := f.Eval(values, parsedLists)
	if err != nil {
		return fmt.Errorf("%w, usage: %s", err, f.Signature())
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return calculator.UndefinedResult(f.Name, result)
	}

	root.logger.Debug("formula evaluated",
		zap.String("formula", f.Name),
		zap.Float64s("args", values),
		zap.Float64("result", result))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'g', -1, 64))
	return err
}
