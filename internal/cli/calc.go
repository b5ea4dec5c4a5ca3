package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/decker502/easing/pkg/easing"
)

// CalcResult holds the values of one easing at the requested progress values.
type CalcResult struct {
	Easing string         `json:"easing" yaml:"easing"`
	Values []easing.Point `json:"values" yaml:"values"`
}

// RenderText writes one "t<TAB>value" line per sample.
func (r CalcResult) RenderText(w io.Writer) error {
	for _, p := range r.Values {
		if _, err := fmt.Fprintf(w, "%g\t%.6f\n", p.T, p.V); err != nil {
			return err
		}
	}
	return nil
}

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <easing> <t>...",
		Short: "Evaluate an easing at one or more progress values",
		Long: `Evaluate an easing at one or more progress values.

Progress values are not clamped: values outside [0, 1] are evaluated
with the same formulas, and NaN propagates.`,
		Example: `  ease calc "out elastic" 0 0.25 0.5 1
  ease calc easeInSine 0.5 --format json`,
		Args:          checkArgs(cobra.MinimumNArgs(2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runCalc(opts *RootOptions, name string, raw []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	e, err := easing.Parse(name)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeInvalidArgs, "invalid easing", err)
	}

	result := CalcResult{Easing: e.String(), Values: make([]easing.Point, 0, len(raw))}
	for _, s := range raw {
		t, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeInvalidArgs, fmt.Sprintf("invalid progress value %q", s), err)
		}
		result.Values = append(result.Values, easing.Point{T: t, V: e.Calc(t)})
	}
	formatter.VerboseLog("Evaluated %s at %d point(s)", e, len(result.Values))

	return formatter.Success(result)
}
