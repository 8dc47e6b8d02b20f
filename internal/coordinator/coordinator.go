package coordinator

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"cryptorates/internal/config"
	"cryptorates/internal/fetcher"
	"cryptorates/internal/rates"
	"cryptorates/internal/report"
	"cryptorates/internal/sink"
)

const tracerName = "cryptorates/internal/coordinator"

// Coordinator runs one scrape: fetch, locate, extract, then every sink.
type Coordinator struct {
	cfg      *config.Config
	fetcher  fetcher.Fetcher
	reporter report.Reporter
	sinks    []sink.Sink
	tracer   trace.Tracer
}

// New creates a Coordinator. Sinks run in the order given.
func New(cfg *config.Config, f fetcher.Fetcher, reporter report.Reporter, sinks ...sink.Sink) *Coordinator {
	if reporter == nil {
		reporter = report.Discard{}
	}
	return &Coordinator{
		cfg:      cfg,
		fetcher:  f,
		reporter: reporter,
		sinks:    sinks,
		tracer:   otel.Tracer(tracerName),
	}
}

// WithTracerProvider makes the coordinator record spans on tp instead of
// the global provider.
func (c *Coordinator) WithTracerProvider(tp trace.TracerProvider) *Coordinator {
	c.tracer = tp.Tracer(tracerName)
	return c
}

// Run executes the pipeline and hands the result to each sink.
// Failures are reported, never returned: a failed fetch or a missing table
// yields an empty RecordSet and the sinks report that there is no data.
func (c *Coordinator) Run(ctx context.Context) rates.RecordSet {
	ctx, span := c.tracer.Start(ctx, "Run")
	defer span.End()

	records, err := c.Scrape(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "scrape failed")

		var fetchErr *fetcher.FetchError
		switch {
		case errors.As(err, &fetchErr):
			c.reporter.Error(ctx, "error fetching data",
				"url", fetchErr.URL,
				"type", string(fetchErr.Type),
				"err", err)
		case errors.Is(err, rates.ErrTableNotFound):
			c.reporter.Error(ctx, "could not find the rate table",
				"url", c.cfg.URL,
				"table_id", c.cfg.TableID)
		default:
			c.reporter.Error(ctx, "scrape failed", "err", err)
		}
	}
	span.SetAttributes(attribute.Int("records", len(records)))

	for _, s := range c.sinks {
		if err := s.Write(ctx, records); err != nil {
			span.RecordError(err)
			c.reporter.Error(ctx, "sink failed", "sink", s.Name(), "err", err)
		}
	}

	return records
}

// Scrape fetches the configured page and extracts its rate table.
// The returned RecordSet is never nil.
func (c *Coordinator) Scrape(ctx context.Context) (rates.RecordSet, error) {
	ctx, span := c.tracer.Start(ctx, "Scrape")
	defer span.End()
	span.SetAttributes(
		attribute.String("url", c.cfg.URL),
		attribute.String("table_id", c.cfg.TableID),
	)

	doc, err := c.fetcher.Fetch(ctx, c.cfg.URL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return rates.RecordSet{}, err
	}

	table, ok := rates.Locate(doc, c.cfg.TableID)
	if !ok {
		span.SetStatus(codes.Error, "table not found")
		return rates.RecordSet{}, rates.ErrTableNotFound
	}

	records := rates.Extract(table, c.cfg.ValidationLevel())
	span.AddEvent("extracted", trace.WithAttributes(attribute.Int("records", len(records))))
	return records, nil
}
