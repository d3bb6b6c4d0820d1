package gct

import (
	"context"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// DiagCode classifies a non-fatal condition raised by an operation.
type DiagCode string

const (
	// DiagUnmatchedKeys reports requested ids absent from the reference
	// axis; the operation proceeded without them.
	DiagUnmatchedKeys DiagCode = "unmatched_keys"

	// DiagEmptyResult reports a resulting axis with zero elements.
	DiagEmptyResult DiagCode = "empty_result"

	// DiagCardinality reports an annotation/join key that fanned out to
	// multiple rows; the first match was taken.
	DiagCardinality DiagCode = "cardinality"
)

// Diagnostic is a structured non-fatal condition. Operations return their
// diagnostics alongside the result — never through the error value — so batch
// pipelines can inspect them without aborting.
type Diagnostic struct {
	Op     string   // operation that raised the condition ("subset", ...)
	Axis   string   // axis concerned ("row"/"col"), when applicable
	Code   DiagCode // condition class
	Keys   []string // offending keys/ids, when applicable
	Detail string   // human-readable summary
}

// Metric keys for operation observability.
const (
	MetricSubsetTotal      = metricz.Key("gct.subset.total")
	MetricMergeTotal       = metricz.Key("gct.merge.total")
	MetricMeltTotal        = metricz.Key("gct.melt.total")
	MetricAnnotateTotal    = metricz.Key("gct.annotate.total")
	MetricRankTotal        = metricz.Key("gct.rank.total")
	MetricDiagnosticsTotal = metricz.Key("gct.diagnostics.total")
)

// Span names for operation tracing.
const (
	SpanSubset   = tracez.Key("gct.subset")
	SpanMerge    = tracez.Key("gct.merge")
	SpanMelt     = tracez.Key("gct.melt")
	SpanAnnotate = tracez.Key("gct.annotate")
	SpanRank     = tracez.Key("gct.rank")
)

// TagDiagnostics carries the per-call diagnostic count on operation spans.
const TagDiagnostics = tracez.Tag("gct.diagnostics")

// DiagnosticEvent is the hook key under which diagnostics are emitted.
const DiagnosticEvent = hookz.Key("gct.diagnostic")

// Observer fans operation telemetry out to a structured logger, a metrics
// registry, a tracer, and typed event hooks. Every operation accepts an
// optional Observer through its options; a nil Observer is silent and free.
//
// The Observer is safe for concurrent use across independent calls — it holds
// no per-call state.
type Observer struct {
	logger  *log.Logger
	hooks   *hookz.Hooks[Diagnostic]
	metrics *metricz.Registry
	tracer  *tracez.Tracer
}

// ObserverOption customizes NewObserver.
type ObserverOption func(*Observer)

// WithLogger sets the structured logger. The default is log.Default().
func WithLogger(l *log.Logger) ObserverOption {
	return func(o *Observer) { o.logger = l }
}

// NewObserver creates an Observer with all channels active: charm logger,
// hookz event hooks, metricz counters, and a tracez tracer.
func NewObserver(opts ...ObserverOption) *Observer {
	o := &Observer{
		logger:  log.Default(),
		hooks:   hookz.New[Diagnostic](),
		metrics: metricz.New(),
		tracer:  tracez.New(),
	}
	for _, opt := range opts {
		opt(o)
	}
	for _, k := range []metricz.Key{
		MetricSubsetTotal, MetricMergeTotal, MetricMeltTotal,
		MetricAnnotateTotal, MetricRankTotal, MetricDiagnosticsTotal,
	} {
		o.metrics.Counter(k)
	}

	return o
}

// OnDiagnostic registers a handler invoked for every diagnostic any observed
// operation raises.
func (o *Observer) OnDiagnostic(handler func(context.Context, Diagnostic) error) error {
	_, err := o.hooks.Hook(DiagnosticEvent, handler)

	return err
}

// Metrics returns the metrics registry.
func (o *Observer) Metrics() *metricz.Registry { return o.metrics }

// Tracer returns the tracer.
func (o *Observer) Tracer() *tracez.Tracer { return o.tracer }

// Close shuts down the tracer and event hooks.
func (o *Observer) Close() error {
	if o.tracer != nil {
		o.tracer.Close()
	}
	o.hooks.Close()

	return nil
}

// begin opens a span and bumps the operation counter. Nil-safe; the returned
// finish func records the final diagnostic count on the span.
func (o *Observer) begin(span tracez.Key, counter metricz.Key, diags *[]Diagnostic) func() {
	if o == nil {
		return func() {}
	}
	o.metrics.Counter(counter).Inc()
	_, sp := o.tracer.StartSpan(context.Background(), span)

	return func() {
		sp.SetTag(TagDiagnostics, strconv.Itoa(len(*diags)))
		sp.Finish()
	}
}

// report logs, counts, and emits every diagnostic of one call. Nil-safe.
func (o *Observer) report(diags []Diagnostic) {
	if o == nil || len(diags) == 0 {
		return
	}
	ctx := context.Background()
	for _, d := range diags {
		o.metrics.Counter(MetricDiagnosticsTotal).Inc()
		o.logger.Warn("diagnostic",
			"op", d.Op,
			"axis", d.Axis,
			"code", string(d.Code),
			"keys", d.Keys,
			"detail", d.Detail)
		_ = o.hooks.Emit(ctx, DiagnosticEvent, d) //nolint:errcheck
	}
}

// debug emits progress logging, outside the functional contract. Nil-safe.
func (o *Observer) debug(msg string, kv ...any) {
	if o == nil {
		return
	}
	o.logger.Debug(msg, kv...)
}
