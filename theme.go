package binplot

// Style maps style keys like "color", "size" or "linetype" to values.
type Style map[string]string

// MergeStyles merges the styles, earlier styles taking precedence.
// Empty values are treated as unset.
func MergeStyles(styles ...Style) Style {
	merged := make(Style)
	for _, s := range styles {
		for k, v := range s {
			if v == "" {
				continue
			}
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	}
	return merged
}

// Theme holds the fixed look of the geoms drawn by a PlotSurface.
// Sizes are in points.
type Theme struct {
	PointStyle, LineStyle, ErrorBarStyle Style
}

// DefaultTheme is used for unset keys of a PlotSurface theme.
var DefaultTheme = Theme{
	PointStyle: Style{
		"size":  "2.5",
		"shape": "solid-circle",
		"color": "#1f77b4",
	},
	LineStyle: Style{
		"size":     "1",
		"linetype": "solid",
		"color":    "red",
	},
	ErrorBarStyle: Style{
		"size":  "1",
		"cap":   "6",
		"color": "#1f77b4",
	},
}
