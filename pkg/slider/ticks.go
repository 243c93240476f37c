package slider

import (
	"strconv"
)

// TickPlacement is the resolved geometry of one tick label along the track.
//
// Percent is the tick's point on the track, Width the width of its label box
// (both percentages of the track width) and Offset the pixel shift applied
// to keep the label centered under the point despite the knob width.
type TickPlacement struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
	Width   float64 `json:"width"`
	Offset  float64 `json:"offset"`
}

// TickAt computes the placement of tick j out of total ticks. total must be
// at least 2; callers reject single-tick lists at configuration time.
func TickAt(j, total int, halfThumbWidth float64) TickPlacement {
	if total < 2 {
		return TickPlacement{}
	}
	width := 100 / float64(total-1)
	percent := float64(j) * width
	return TickPlacement{
		Percent: percent,
		Width:   width,
		Offset:  TickOffset(percent, halfThumbWidth),
	}
}

// TickOffset maps a track position (percent) to the pixel shift of its label.
// The shift is proportional to the signed distance from the track midpoint
// and reaches halfThumbWidth at either end.
func TickOffset(percent, halfThumbWidth float64) float64 {
	fromCenter := (percent - 50) / 50 * 100
	return fromCenter * halfThumbWidth / 100
}

// PlaceTicks resolves placements for every tick label. Lists with fewer than
// two entries produce no placements.
func PlaceTicks(ticks []string, halfThumbWidth float64) []TickPlacement {
	if len(ticks) < 2 {
		return nil
	}
	out := make([]TickPlacement, 0, len(ticks))
	for j, label := range ticks {
		placement := TickAt(j, len(ticks), halfThumbWidth)
		placement.Label = label
		out = append(out, placement)
	}
	return out
}

// LeftCSS renders the CSS left expression positioning the label box.
func (t TickPlacement) LeftCSS() string {
	return "calc(" + FormatFloat(t.Percent) + "% - (" + FormatFloat(t.Width) + "% / 2) - " + FormatFloat(t.Offset) + "px)"
}

// WidthCSS renders the CSS width of the label box.
func (t TickPlacement) WidthCSS() string {
	return FormatFloat(t.Width) + "%"
}

// FormatFloat prints the shortest decimal representation of v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
