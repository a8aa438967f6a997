// Package plot turns small CSV datasets into static statistical charts.
//
//
// Pipeline
//
// Each chart is produced by the same chain of steps:
//
//     Load        CSV (file, stdin or http) -> *DataFrame
//     Normalize   text columns -> float64 columns
//     Aggregate   groups -> summaries (package stat)
//     Scale       data domain -> pixel range (LinearScale, BandScale)
//     Geoms       summaries + scales -> Grobs (package geom)
//     Render      Grobs -> Target (package render)
//
// Nothing is shared between two pipelines; all values are recomputed
// from the data frame so running a pipeline twice yields identical
// grobs.
//
//
// Data Frames
//
// A DataFrame is an ordered, immutable list of records with named
// columns. All columns start out as text. Normalize returns a new
// frame in which the requested columns are available as float64:
//
//     df, err := plot.Load(ctx, "socialMedia.csv")
//     df, err = plot.Normalize(df, plot.FailOnInvalid, "Likes")
//     likes := df.Floats("Likes")
//
//
// Scales
//
// Scales are configured with plain structs and constructed once:
//
//     y := plot.NewLinearScale(plot.ScaleConfig{
//         Domain: [2]float64{min, max},
//         Range:  [2]float64{350, 50},
//         Nice:   true,
//     })
//     x := plot.NewBandScale(plot.BandConfig{
//         Domain:  platforms,
//         Range:   [2]float64{50, 700},
//         Padding: 0.5,
//     })
//
// Pixel coordinates have their origin in the top left corner, so the
// y range is usually given high to low.
//
package plot
