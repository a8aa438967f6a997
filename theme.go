package plot

import "image/color"

// Theme holds the fixed styles used by the geoms.
type Theme struct {
	Background color.Color

	BoxStyle, WhiskerStyle, MedianStyle Style
	BarStyle                            Style
	LineStyle, PointStyle               Style
	AxisStyle                           Style
	LegendStyle                         Style

	// Palette colors the categories of a grouped bar chart.
	Palette []string

	TextColor color.Color
	FontSize  float64
	TitleSize float64
}

var DefaultTheme = Theme{
	Background: nil,

	BoxStyle: Style{
		Stroke:   color.Black,
		Fill:     String2Color("#69b3a2"),
		Width:    1,
		LineType: SolidLine,
	},
	WhiskerStyle: Style{
		Stroke:   color.Black,
		Width:    1,
		LineType: SolidLine,
	},
	MedianStyle: Style{
		Stroke:   color.Black,
		Width:    2,
		LineType: SolidLine,
	},
	BarStyle: Style{
		LineType: BlankLine,
		Fill:     BuiltinColors["gray20"],
	},
	LineStyle: Style{
		Stroke:   String2Color("#DC143C"),
		Width:    2,
		LineType: SolidLine,
	},
	PointStyle: Style{
		Stroke:   String2Color("#DC143C"),
		Fill:     color.White,
		Width:    1.5,
		LineType: SolidLine,
	},
	AxisStyle: Style{
		Stroke:   color.Black,
		Width:    1,
		LineType: SolidLine,
	},
	LegendStyle: Style{
		Stroke:   color.Black,
		Width:    1,
		LineType: SolidLine,
	},

	Palette: []string{"#1f77b4", "#ff7f0e", "#2ca02c"},

	TextColor: color.Black,
	FontSize:  10,
	TitleSize: 16,
}
