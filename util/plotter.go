package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"rental-server/models"
)

// MapOptions controls the rendered listings map.
type MapOptions struct {
	Title    string
	Center   models.Coordinates
	Currency string
}

// RenderListingsMap renders listings as a geo scatter with one marker per
// listing and a marker for the region center.
func RenderListingsMap(w io.Writer, listings []models.Listing, o MapOptions) error {
	points := make([]opts.GeoData, 0, len(listings))
	for _, l := range listings {
		points = append(points, opts.GeoData{
			Name:  fmt.Sprintf("%s · %.0f %s", l.Title, l.Price, o.Currency),
			Value: []float64{l.Coordinates.Lon(), l.Coordinates.Lat(), l.Price},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     "900px",
			Height:    "640px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    o.Title,
			Subtitle: fmt.Sprintf("%d listings", len(listings)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Formatter: "{b}"}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Listings", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(false),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("Center", types.ChartEffectScatter, []opts.GeoData{
		{Name: "center", Value: []float64{o.Center.Lon(), o.Center.Lat()}},
	})

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("failed to render map: %w", err)
	}
	return nil
}
