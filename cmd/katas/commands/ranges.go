package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/katas/ranges"
)

func rangesCmd(s *session) *cobra.Command {
	var parse string

	cmd := &cobra.Command{
		Use:   "ranges <n>... | --parse <expr>",
		Short: "Compress integers to range notation, or expand it back",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("parse") {
				if len(args) > 0 {
					return fmt.Errorf("ranges: --parse takes no positional arguments")
				}
				nums, err := ranges.Parse(parse)
				if err != nil {
					return err
				}
				return s.emit(cmd.OutOrStdout(), nums, func(w io.Writer) error {
					parts := make([]string, len(nums))
					for i, n := range nums {
						parts[i] = strconv.Itoa(n)
					}
					_, err := fmt.Fprintln(w, strings.Join(parts, " "))
					return err
				})
			}

			nums := make([]int, len(args))
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("ranges: %q is not an integer", a)
				}
				nums[i] = n
			}
			out := ranges.Extract(nums)
			return s.emit(cmd.OutOrStdout(), out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, out)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&parse, "parse", "", "expand a range expression such as 0-2,5,7-9")
	return cmd
}
