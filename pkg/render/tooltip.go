package render

import (
	"fmt"
	"math"
	"strconv"
)

// FormatTooltipTitle renders a point's time label. Labels that are not
// numbers are shown as-is.
func FormatTooltipTitle(label string) string {
	t, err := strconv.ParseFloat(label, 64)
	if err != nil || math.IsNaN(t) {
		return "Time: " + label + " ms"
	}
	return fmt.Sprintf("Time: %.2f ms", t)
}

// FormatTooltipLabel renders an amplitude, prefixed with the dataset label when there is one.
func FormatTooltipLabel(datasetLabel string, value float64) string {
	if datasetLabel == "" {
		return fmt.Sprintf("%.2f", value)
	}
	return fmt.Sprintf("%s: %.2f", datasetLabel, value)
}
