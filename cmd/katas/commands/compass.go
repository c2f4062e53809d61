package commands

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/katas/compass"
)

func compassCmd(s *session) *cobra.Command {
	var nearest string

	cmd := &cobra.Command{
		Use:   "compass",
		Short: "Print the 32 compass points, or the one nearest an azimuth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points := compass.Points()
			if nearest != "" {
				az, err := strconv.ParseFloat(nearest, 64)
				if err != nil {
					return err
				}
				p, err := compass.Nearest(az)
				if err != nil {
					return err
				}
				points = []compass.Point{p}
			}

			return s.emit(cmd.OutOrStdout(), points, func(w io.Writer) error {
				for _, p := range points {
					// The printer localises the decimal separator.
					if _, err := s.printer.Fprintf(w, "%-5s %6.2f\n", p.Abbreviation, p.Azimuth); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&nearest, "nearest", "", "print only the point nearest this azimuth in degrees")
	return cmd
}
