// Package engine orchestrates listing evaluation, bulk import and inventory
// reporting on top of the store.
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/phone-resale/internal/importer"
	"github.com/donaldgifford/phone-resale/internal/metrics"
	"github.com/donaldgifford/phone-resale/internal/store"
	"github.com/donaldgifford/phone-resale/pkg/listing"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

const (
	defaultMaxImportBytes = 1 << 20
	instrumentationName   = "github.com/donaldgifford/phone-resale/internal/engine"
)

var (
	// ErrUnknownPlatform is returned for platforms outside X, Y, Z.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrImportTooLarge is returned when an upload exceeds the size limit.
	ErrImportTooLarge = errors.New("import exceeds size limit")
)

// Engine runs listing decisions and imports against a Store.
type Engine struct {
	store  store.Store
	log    *slog.Logger
	tracer trace.Tracer
	meter  metric.Meter

	evaluations    metric.Int64Counter
	maxImportBytes int64
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:          s,
		log:            slog.Default(),
		tracer:         otel.Tracer(instrumentationName),
		meter:          otel.Meter(instrumentationName),
		maxImportBytes: defaultMaxImportBytes,
	}
	for _, opt := range opts {
		opt(eng)
	}

	counter, err := eng.meter.Int64Counter("phone_resale.listing.evaluations",
		metric.WithDescription("Listing evaluations by platform and outcome."),
	)
	if err != nil {
		eng.log.Warn("creating listing evaluation counter", "error", err)
		counter = metricnoop.Int64Counter{}
	}
	eng.evaluations = counter

	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithTracerProvider sets where engine spans are recorded.
func WithTracerProvider(tp trace.TracerProvider) EngineOption {
	return func(e *Engine) {
		e.tracer = tp.Tracer(instrumentationName)
	}
}

// WithMeterProvider sets where OpenTelemetry engine metrics are recorded.
func WithMeterProvider(mp metric.MeterProvider) EngineOption {
	return func(e *Engine) {
		e.meter = mp.Meter(instrumentationName)
	}
}

// WithMaxImportBytes caps the size of a single CSV upload.
func WithMaxImportBytes(n int64) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxImportBytes = n
		}
	}
}

// ListPhone evaluates the phone with the given id against a platform.
// Business rejections come back as an Outcome with Listed=false, not as an
// error.
func (eng *Engine) ListPhone(
	ctx context.Context,
	id int64,
	platform domain.Platform,
) (_ listing.Outcome, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.ListPhone", trace.WithAttributes(
		attribute.Int64("phone.id", id),
		attribute.String("listing.platform", string(platform)),
	))
	defer func() { endSpan(span, err) }()

	if !platform.Valid() {
		return listing.Outcome{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}

	p, err := eng.store.GetPhone(ctx, id)
	if err != nil {
		return listing.Outcome{}, fmt.Errorf("loading phone: %w", err)
	}

	out := listing.Evaluate(p, platform)
	outcome := outcomeLabel(out)
	metrics.ListingAttemptsTotal.WithLabelValues(string(platform), outcome).Inc()
	eng.evaluations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("platform", string(platform)),
		attribute.String("outcome", outcome),
	))
	span.SetAttributes(attribute.String("listing.outcome", outcome))

	if out.Listed {
		eng.log.Info("phone listed",
			"phone_id", p.ID,
			"platform", platform,
			"price", out.Price.StringFixed(2),
			"label", out.Label,
		)
	} else {
		eng.log.Info("listing rejected",
			"phone_id", p.ID,
			"platform", platform,
			"reason", out.Reason,
		)
	}

	return out, nil
}

// Quote evaluates the phone with the given id against every platform.
func (eng *Engine) Quote(ctx context.Context, id int64) (_ *domain.Phone, _ []listing.Outcome, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.Quote", trace.WithAttributes(attribute.Int64("phone.id", id)))
	defer func() { endSpan(span, err) }()

	p, err := eng.store.GetPhone(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("loading phone: %w", err)
	}
	return p, listing.EvaluateAll(p), nil
}

// Import parses a CSV upload and stores every phone in it. Nothing is stored
// when any row is invalid.
func (eng *Engine) Import(ctx context.Context, r io.Reader) (_ int, err error) {
	ctx, span := eng.tracer.Start(ctx, "engine.Import")
	defer func() { endSpan(span, err) }()

	data, err := io.ReadAll(io.LimitReader(r, eng.maxImportBytes+1))
	if err != nil {
		metrics.ImportFailuresTotal.Inc()
		return 0, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > eng.maxImportBytes {
		metrics.ImportFailuresTotal.Inc()
		return 0, fmt.Errorf("%w (%d bytes)", ErrImportTooLarge, eng.maxImportBytes)
	}

	phones, err := importer.ParseCSV(bytes.NewReader(data))
	if err != nil {
		metrics.ImportFailuresTotal.Inc()
		eng.log.Warn("import rejected", "error", err)
		return 0, fmt.Errorf("parsing upload: %w", err)
	}

	if len(phones) > 0 {
		if err := eng.store.CreatePhones(ctx, phones); err != nil {
			metrics.ImportFailuresTotal.Inc()
			return 0, fmt.Errorf("storing phones: %w", err)
		}
	}

	span.SetAttributes(attribute.Int("import.phones", len(phones)))
	metrics.PhonesImportedTotal.Add(float64(len(phones)))
	eng.log.Info("import complete", "phones", len(phones))

	return len(phones), nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func outcomeLabel(o listing.Outcome) string {
	if o.Listed {
		return "listed"
	}
	return string(o.Reason)
}
