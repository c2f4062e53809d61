// Package compass lists the 32 points of the mariner's compass.
//
// Points are 11.25° apart, clockwise from North at 0°, labelled with the
// traditional abbreviations: cardinal (N), intercardinal (NE), the
// three-letter secondary-intercardinal points (NNE) and the "by" points
// (NbE = North by East).
package compass

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrBadAzimuth indicates a NaN or infinite azimuth.
var ErrBadAzimuth = errors.New("compass: azimuth must be finite")

// Step is the angle between adjacent points, in degrees.
const Step = 360.0 / 32

// abbreviations is the canonical 32-point table, clockwise from North.
var abbreviations = [32]string{
	"N", "NbE", "NNE", "NEbN", "NE", "NEbE", "ENE", "EbN",
	"E", "EbS", "ESE", "SEbE", "SE", "SEbS", "SSE", "SbE",
	"S", "SbW", "SSW", "SWbS", "SW", "SWbW", "WSW", "WbS",
	"W", "WbN", "WNW", "NWbW", "NW", "NWbN", "NNW", "NbW",
}

// Point is a named compass heading.
type Point struct {
	Abbreviation string  `json:"abbreviation"`
	Azimuth      float64 `json:"azimuth"`
}

// String renders the point as "NbE 11.25".
func (p Point) String() string {
	return p.Abbreviation + " " + strconv.FormatFloat(p.Azimuth, 'f', 2, 64)
}

// Points returns the 32 compass points in clockwise order, starting with
// N at 0° and ending with NbW at 348.75°. Each call returns a fresh slice.
func Points() []Point {
	out := make([]Point, len(abbreviations))
	for i, abbr := range abbreviations {
		out[i] = Point{Abbreviation: abbr, Azimuth: float64(i) * Step}
	}

	return out
}

// Nearest returns the point whose sector contains azimuth. Sectors are
// centred on each point and half-open, so 5.625° belongs to NbE. Any
// finite azimuth is accepted and normalised into [0, 360).
func Nearest(azimuth float64) (Point, error) {
	if math.IsNaN(azimuth) || math.IsInf(azimuth, 0) {
		return Point{}, fmt.Errorf("%w: %v", ErrBadAzimuth, azimuth)
	}
	a := math.Mod(azimuth, 360)
	if a < 0 {
		a += 360
	}
	i := int(math.Floor(a/Step+0.5)) % len(abbreviations)

	return Point{Abbreviation: abbreviations[i], Azimuth: float64(i) * Step}, nil
}
