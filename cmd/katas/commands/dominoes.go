package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/katas/domino"
)

// rowResult is the JSON shape of the dominoes command.
type rowResult struct {
	OK  bool     `json:"ok"`
	Row [][2]int `json:"row"`
}

func dominoesCmd(s *session) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "dominoes <a:b>...",
		Short: "Check whether tiles can be laid in one row",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strat, err := domino.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			tiles := make([]domino.Tile, len(args))
			for i, a := range args {
				if tiles[i], err = domino.ParseTile(a); err != nil {
					return err
				}
			}

			row, ok := domino.Arrange(tiles, domino.WithStrategy(strat))
			s.log.Debug("arranged", "tiles", len(tiles), "strategy", strat.String(), "ok", ok)

			res := rowResult{OK: ok, Row: make([][2]int, len(row))}
			for i, t := range row {
				res.Row[i] = [2]int{t.A, t.B}
			}
			return s.emit(cmd.OutOrStdout(), res, func(w io.Writer) error {
				if !ok {
					_, err := fmt.Fprintln(w, "false")
					return err
				}
				parts := make([]string, len(row))
				for i, t := range row {
					parts[i] = t.String()
				}
				_, err := fmt.Fprintln(w, strings.TrimSpace("true "+strings.Join(parts, "")))
				return err
			})
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", domino.Eulerian.String(), "search strategy: eulerian|backtracking")
	return cmd
}
