package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/katas/braces"
)

func expandCmd(s *session) *cobra.Command {
	var count bool

	cmd := &cobra.Command{
		Use:   "expand <expr>",
		Short: "Expand {a,b} alternation groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := braces.Parse(args[0])
			if err != nil {
				return err
			}
			s.log.Debug("parsed expression", "expr", expr.String(), "count", expr.Count())

			if count {
				return s.emit(cmd.OutOrStdout(), expr.Count(), func(w io.Writer) error {
					_, err := fmt.Fprintln(w, expr.Count())
					return err
				})
			}

			if s.wantJSON() {
				all := make([]string, 0, min(expr.Count(), 1024))
				for v := range expr.All() {
					all = append(all, v)
				}
				return s.emit(cmd.OutOrStdout(), all, nil)
			}

			w := cmd.OutOrStdout()
			for v := range expr.All() {
				if _, err := fmt.Fprintln(w, v); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&count, "count", false, "print only the number of expansions")
	return cmd
}
