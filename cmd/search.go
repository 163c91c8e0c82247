package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rental-server/di"
	"rental-server/filter"
	"rental-server/models"
	services "rental-server/service"
	"rental-server/util"
)

type searchFlags struct {
	location  string
	kind      string
	checkIn   string
	checkOut  string
	priceMin  float64
	priceMax  float64
	amenities string
	sort      string
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.location, "location", "", "Location substring, e.g. Douala")
	cmd.Flags().StringVar(&f.kind, "type", "", "Property type, or \"all\"")
	cmd.Flags().StringVar(&f.checkIn, "checkin", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.checkOut, "checkout", "", "Check-out date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&f.priceMin, "price-min", -1, "Minimum nightly price")
	cmd.Flags().Float64Var(&f.priceMax, "price-max", -1, "Maximum nightly price")
	cmd.Flags().StringVar(&f.amenities, "amenities", "", "Comma separated amenities")
	cmd.Flags().StringVar(&f.sort, "sort", "", "price_asc, price_desc or rating_desc")
}

// query maps the flags onto the URL parameters the HTTP API accepts, so both
// surfaces share filter.FromQuery.
func (f *searchFlags) query() url.Values {
	vals := url.Values{}
	set := func(k, v string) {
		if v != "" {
			vals.Set(k, v)
		}
	}
	set(filter.LOCATION_QUERY_ARG, f.location)
	set(filter.TYPE_QUERY_ARG, f.kind)
	set(filter.CHECKIN_QUERY_ARG, f.checkIn)
	set(filter.CHECKOUT_QUERY_ARG, f.checkOut)
	set(filter.AMENITIES_QUERY_ARG, f.amenities)
	if f.priceMin >= 0 {
		vals.Set(filter.PRICE_MIN_QUERY_ARG, strconv.FormatFloat(f.priceMin, 'f', -1, 64))
	}
	if f.priceMax >= 0 {
		vals.Set(filter.PRICE_MAX_QUERY_ARG, strconv.FormatFloat(f.priceMax, 'f', -1, 64))
	}
	return vals
}

// run filters the configured catalog without a server or Redis.
func (f *searchFlags) run(ctx context.Context) ([]models.Listing, filter.Criteria, error) {
	order, ok := filter.ParseSortOrder(f.sort)
	if !ok {
		return nil, filter.Criteria{}, fmt.Errorf("unknown --sort %q", f.sort)
	}
	catalog, err := di.CatalogSource(cfg).Load(ctx)
	if err != nil {
		return nil, filter.Criteria{}, err
	}
	if err := services.ValidateCatalog(catalog); err != nil {
		return nil, filter.Criteria{}, err
	}

	span := filter.PriceRange{Min: cfg.Region.PriceMin, Max: cfg.Region.PriceMax}
	c := filter.FromQuery(f.query(), span)
	pipeline := filter.Pipeline{AmenityMode: filter.ParseAmenityMode(cfg.Region.AmenityMode)}
	listings, _ := pipeline.Apply(catalog, c)
	return filter.Sort(listings, order), c, nil
}

func searchCmd() *cobra.Command {
	var flags searchFlags
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter the catalog from the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, c, err := flags.run(cmd.Context())
			if err != nil {
				return err
			}

			if outputJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(listings)
			}

			if len(listings) == 0 {
				fmt.Println("No listings match your criteria.")
				return nil
			}
			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			util.PrintListingsTable(writer, listings, cfg.Region.Currency)
			if err := writer.Flush(); err != nil {
				return err
			}
			fmt.Printf("\n%d listings, %d active filters\n", len(listings), c.ActiveCount())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output JSON")
	return cmd
}
