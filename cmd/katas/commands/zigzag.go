package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/katas/zigzag"
)

func zigzagCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "zigzag <n>",
		Short: "Print the n×n zigzag (JPEG) scan matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("zigzag: %q is not an integer", args[0])
			}
			m, err := zigzag.Matrix(n)
			if err != nil {
				return err
			}

			return s.emit(cmd.OutOrStdout(), m, func(w io.Writer) error {
				width := len(strconv.Itoa(n*n - 1))
				for _, row := range m {
					cells := make([]string, len(row))
					for i, v := range row {
						cells[i] = fmt.Sprintf("%*d", width, v)
					}
					if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
