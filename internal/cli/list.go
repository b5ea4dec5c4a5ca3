package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decker502/easing/pkg/easing"
)

// ListResult enumerates the supported directions, shapes and easings.
type ListResult struct {
	Directions []string `json:"directions" yaml:"directions"`
	Shapes     []string `json:"shapes" yaml:"shapes"`
	Easings    []string `json:"easings" yaml:"easings"`
}

// RenderText writes the direction and shape summary followed by one easing per line.
func (r ListResult) RenderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "directions: %s\nshapes: %s\n\n",
		strings.Join(r.Directions, ", "), strings.Join(r.Shapes, ", ")); err != nil {
		return err
	}
	for _, name := range r.Easings {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List supported easing directions and shapes",
		Args:          checkArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newFormatter(rootOpts, cmd).Success(listEasings())
		},
	}

	return cmd
}

func listEasings() ListResult {
	var r ListResult
	for _, d := range easing.Directions() {
		r.Directions = append(r.Directions, d.String())
	}
	for _, s := range easing.Shapes() {
		r.Shapes = append(r.Shapes, s.String())
	}
	for _, e := range easing.All() {
		r.Easings = append(r.Easings, e.String())
	}
	return r
}
