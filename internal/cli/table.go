package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/decker502/easing/pkg/config"
	"github.com/decker502/easing/pkg/easing"
)

// TableOptions holds flags for the table command.
type TableOptions struct {
	ConfigPath string
	Steps      int
	Precision  int
}

// CurveTable holds the samples of one named curve.
type CurveTable struct {
	Name   string         `json:"name" yaml:"name"`
	Points []easing.Point `json:"points" yaml:"points"`
}

// TableResult holds a sampled table of one or more curves.
type TableResult struct {
	Steps     int          `json:"steps" yaml:"steps"`
	Curves    []CurveTable `json:"curves" yaml:"curves"`
	precision int
}

// RenderText writes an aligned table with one column per curve.
func (r TableResult) RenderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "t")
	for _, c := range r.Curves {
		fmt.Fprintf(tw, "\t%s", c.Name)
	}
	fmt.Fprintln(tw)

	for i := 0; i <= r.Steps; i++ {
		t := float64(i) / float64(r.Steps)
		fmt.Fprint(tw, strconv.FormatFloat(t, 'f', r.precision, 64))
		for _, c := range r.Curves {
			fmt.Fprintf(tw, "\t%s", strconv.FormatFloat(c.Points[i].V, 'f', r.precision, 64))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableOptions{}

	cmd := &cobra.Command{
		Use:   "table [easing]",
		Short: "Print a sampled table of easing curves",
		Long: `Print a sampled table of easing curves over [0, 1].

Without arguments all eight easings are sampled. With --config the
curves of a showcase YAML file are sampled instead.`,
		Example: `  ease table "in outback" --steps 4
  ease table --config data/curves.yaml --format yaml`,
		Args:          checkArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "showcase YAML file with curves to sample")
	cmd.Flags().IntVarP(&opts.Steps, "steps", "n", 10, "number of intervals between 0 and 1")
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", 4, "decimal places in text output")

	return cmd
}

func runTable(rootOpts *RootOptions, opts *TableOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	if opts.Steps < 1 {
		return formatter.fail(ExitCommandError, ErrCodeInvalidArgs, fmt.Sprintf("steps must be at least 1, got %d", opts.Steps), nil)
	}
	if opts.Precision < 0 {
		return formatter.fail(ExitCommandError, ErrCodeInvalidArgs, fmt.Sprintf("precision must not be negative, got %d", opts.Precision), nil)
	}
	if len(args) == 1 && opts.ConfigPath != "" {
		return formatter.fail(ExitCommandError, ErrCodeInvalidArgs, "easing argument and --config are mutually exclusive", nil)
	}

	curves, err := tableCurves(args, opts.ConfigPath)
	if err != nil {
		code := ErrCodeInvalidArgs
		if opts.ConfigPath != "" {
			code = ErrCodeInvalidConfig
		}
		return formatter.fail(ExitCommandError, code, "cannot select curves", err)
	}
	formatter.VerboseLog("Sampling %d curve(s) with %d step(s)", len(curves), opts.Steps)

	result := TableResult{Steps: opts.Steps, precision: opts.Precision}
	for _, nc := range curves {
		result.Curves = append(result.Curves, CurveTable{
			Name:   nc.Name,
			Points: easing.Sample(nc.Curve, opts.Steps),
		})
	}
	return formatter.Success(result)
}

// tableCurves selects the curves to sample: a single easing, the curves
// of a config file, or all built-in easings.
func tableCurves(args []string, configPath string) ([]config.NamedCurve, error) {
	if len(args) == 1 {
		e, err := easing.Parse(args[0])
		if err != nil {
			return nil, err
		}
		return []config.NamedCurve{{Name: e.String(), Curve: e}}, nil
	}

	if configPath != "" {
		cfg, err := config.LoadShowcaseConfig(configPath)
		if err != nil {
			return nil, err
		}
		return cfg.BuildCurves()
	}

	cfg := config.ShowcaseConfig{Curves: config.DefaultCurves()}
	return cfg.BuildCurves()
}
