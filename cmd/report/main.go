package main

import (
	"context"
	"delivery-analytics-service/internal/adapters/csvfile"
	"delivery-analytics-service/internal/config"
	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/services"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
)

// report is a terminal front end over the same dashboard queries the HTTP
// server exposes.
func main() {
	_ = godotenv.Load()

	path := flag.String("data", defaultDataPath(), "path to the delivery CSV (default from DATASET_PATH)")
	weather := flag.String("weather", "", "weather filter")
	traffic := flag.String("traffic", "", "traffic level filter")
	vehicle := flag.String("vehicle", "", "vehicle type filter")
	timeOfDay := flag.String("time", "", "time of day filter")
	limit := flag.Int("limit", 20, "maximum table rows to print (0 prints all)")
	options := flag.Bool("options", false, "list the selectable filter values and exit")
	flag.Parse()

	log.SetOutput(io.Discard)

	dashboard := services.NewDashboard(services.NewDatasetLoader(csvfile.NewSource(*path)))
	ctx := context.Background()

	var err error
	if *options {
		err = printOptions(ctx, os.Stdout, dashboard)
	} else {
		criteria := domain.Criteria{}
		for f, v := range map[domain.Field]string{
			domain.FieldWeather:      *weather,
			domain.FieldTrafficLevel: *traffic,
			domain.FieldVehicleType:  *vehicle,
			domain.FieldTimeOfDay:    *timeOfDay,
		} {
			if v = strings.TrimSpace(v); v != "" {
				criteria[f] = v
			}
		}
		err = printSummary(ctx, os.Stdout, dashboard, criteria, *limit)
	}

	if errors.Is(err, domain.ErrDatasetNotFound) {
		fmt.Fprintf(os.Stderr, "Dataset not found! Please ensure %q exists.\n", *path)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defaultDataPath honours DATASET_PATH like the server does.
func defaultDataPath() string {
	return config.Get("DATASET_PATH", csvfile.DefaultPath)
}

func printOptions(ctx context.Context, w io.Writer, d *services.Dashboard) error {
	opts, err := d.Options(ctx)
	if err != nil {
		return err
	}

	for _, f := range services.FilterFields {
		fmt.Fprintf(w, "%s: %s\n", f, strings.Join(opts[f], ", "))
	}
	return nil
}

func printSummary(ctx context.Context, w io.Writer, d *services.Dashboard, criteria domain.Criteria, limit int) error {
	s, err := d.Summarize(ctx, criteria)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Total Trips in Category: %d\n", s.Count)
	fmt.Fprintf(w, "Avg Delivery Time: %.1f mins (all deliveries %.1f)\n", s.AvgDeliveryTimeMin, s.GlobalAvgDeliveryTimeMin)
	fmt.Fprintf(w, "Avg Distance: %.1f km (all deliveries %.1f)\n", s.AvgDistanceKm, s.GlobalAvgDistanceKm)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Historical Logs: %s Weather / %s Traffic\n",
		orAny(criteria[domain.FieldWeather]), orAny(criteria[domain.FieldTrafficLevel]))
	if s.Empty() {
		fmt.Fprintln(w, "No records match these exact criteria in the source data.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Order_ID\tDistance_km\tTime_of_Day\tDelivery_Time_min")
	for i, r := range s.Records {
		if limit > 0 && i == limit {
			fmt.Fprintf(tw, "... %d more\t\t\t\n", len(s.Records)-limit)
			break
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%.0f\n", r.OrderID, r.DistanceKm, r.TimeOfDay, r.DeliveryTimeMin)
	}
	return tw.Flush()
}

func orAny(v string) string {
	if v == "" {
		return "Any"
	}
	return v
}
