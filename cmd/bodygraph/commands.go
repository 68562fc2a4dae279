package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bodygraph/application/queries"
	"bodygraph/domain/catalog"
	vo "bodygraph/domain/core/valueobjects"
	"bodygraph/infrastructure/config"
	"bodygraph/infrastructure/di"
	pkgerrors "bodygraph/pkg/errors"
)

type chartOptions struct {
	name      string
	date      string
	clock     string
	latitude  float64
	longitude float64
	timezone  string
	timeout   time.Duration
	compact   bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bodygraph",
		Short:         "Compute Human Design bodygraph charts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newChartCmd(), newCheckCmd())
	return root
}

func newChartCmd() *cobra.Command {
	opts := &chartOptions{}
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Calculate a chart and print it as JSON",
		Long: `Calculates the bodygraph for a birth. Without --time the chart is
probabilistic: every hour of the day is sampled and the type distribution
is reported alongside the noon chart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChart(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.name, "name", "", "name stored on the chart")
	flags.StringVar(&opts.date, "date", "", "birth date, YYYY-MM-DD")
	flags.StringVar(&opts.clock, "time", "", "birth time, HH:MM (omit when unknown)")
	flags.Float64Var(&opts.latitude, "lat", 0, "birth latitude in degrees")
	flags.Float64Var(&opts.longitude, "lon", 0, "birth longitude in degrees")
	flags.StringVar(&opts.timezone, "tz", "", "IANA timezone, e.g. America/Los_Angeles")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "calculation deadline")
	flags.BoolVar(&opts.compact, "compact", false, "print compact JSON")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("tz")

	return cmd
}

func (o *chartOptions) query() queries.CalculateChartQuery {
	q := queries.CalculateChartQuery{
		Name:      o.name,
		BirthDate: o.date,
		Latitude:  o.latitude,
		Longitude: o.longitude,
		Timezone:  o.timezone,
	}
	if o.clock != "" {
		clock := o.clock
		q.BirthTime = &clock
	}
	return q
}

func runChart(ctx context.Context, stdout, stderr io.Writer, opts *chartOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer func() { _ = container.Close(context.Background()) }()

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	chart, err := container.CalculateChart(ctx, opts.query())
	if err != nil {
		pkgerrors.Log(container.Logger, "Chart calculation failed", err, zap.String("birth_date", opts.date))
		return writeError(stderr, err)
	}

	enc := json.NewEncoder(stdout)
	if !opts.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(chart)
}

// writeError prints domain and validation errors in their wire shape
func writeError(w io.Writer, err error) error {
	var body interface{}
	var verrs *pkgerrors.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		body = map[string]interface{}{
			"error":  true,
			"type":   pkgerrors.DomainValidationError,
			"fields": verrs.ToMap(),
		}
	case pkgerrors.GetDomainError(err) != nil:
		body = pkgerrors.NewDomainErrorResponse(pkgerrors.GetDomainError(err), "")
	default:
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(body); encErr != nil {
		return encErr
	}
	return err
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the static gate, channel and center tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := catalog.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d gates, %d channels, %d centers\n",
				catalog.GateCount, len(catalog.Channels()), vo.CenterCount)
			return nil
		},
	}
}
