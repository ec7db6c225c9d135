package notify

import (
	"context"
	"net/url"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/erp/orderflow/internal/infrastructure/config"
	"github.com/erp/orderflow/internal/infrastructure/telemetry"
)

const snippetLen = 256

// Values of the outcome label on notification_total
const (
	OutcomeSent             = "sent"
	OutcomeTransport        = "transport"
	OutcomeUnexpectedStatus = "unexpected_status"
	OutcomeInvalidURL       = "invalid_url"
)

// meterName scopes the notifier instruments
const meterName = "orderflow/notify"

// Option customizes a Notifier
type Option func(*Notifier)

// WithMeter records notification metrics on meter instead of the global provider
func WithMeter(meter metric.Meter) Option {
	return func(n *Notifier) {
		n.meter = meter
	}
}

type notifierMetrics struct {
	total    *telemetry.Counter
	duration *telemetry.Histogram
}

func newNotifierMetrics(meter metric.Meter) (*notifierMetrics, error) {
	total, err := telemetry.NewCounter(meter,
		"notification_total",
		"Outbound peer notifications by outcome",
		"{notification}",
	)
	if err != nil {
		return nil, err
	}
	duration, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
		Name:        "notification_duration_seconds",
		Description: "Outbound peer notification latency in seconds",
		Unit:        "s",
		Boundaries:  telemetry.HTTPDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	return &notifierMetrics{total: total, duration: duration}, nil
}

func (m *notifierMetrics) record(ctx context.Context, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.total.Inc(ctx, telemetry.AttrOutcome.String(outcome))
	if elapsed > 0 {
		m.duration.RecordDuration(ctx, elapsed, telemetry.AttrOutcome.String(outcome))
	}
}

// Notifier sends fire-and-forget GET requests. It never returns an error:
// every failure is logged at warn level and dropped.
type Notifier struct {
	client  *Client
	enabled bool
	async   bool
	logger  *zap.Logger
	meter   metric.Meter
	metrics *notifierMetrics
	wg      sync.WaitGroup
}

// NewNotifier creates a Notifier from configuration
func NewNotifier(cfg config.NotifierConfig, logger *zap.Logger, opts ...Option) *Notifier {
	n := &Notifier{
		client:  NewClient(cfg.ConnectTimeout, cfg.ReadTimeout),
		enabled: cfg.Enabled,
		async:   cfg.Async,
		logger:  logger.Named("notifier"),
		meter:   otel.GetMeterProvider().Meter(meterName),
	}
	for _, opt := range opts {
		opt(n)
	}

	metrics, err := newNotifierMetrics(n.meter)
	if err != nil {
		n.logger.Warn("notification metrics disabled", zap.Error(err))
	}
	n.metrics = metrics
	return n
}

// Notify calls endpoint once. In async mode the call runs in the background
// and is detached from ctx cancellation.
func (n *Notifier) Notify(ctx context.Context, endpoint string) {
	if !n.enabled {
		n.logger.Debug("notifier disabled, skipping", zap.String("url", endpoint))
		return
	}
	if !n.async {
		n.send(ctx, endpoint)
		return
	}

	detached := context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.send(detached, endpoint)
	}()
}

// Close waits for in-flight async notifications or for ctx to end, whichever is first
func (n *Notifier) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Notifier) send(ctx context.Context, endpoint string) {
	log := n.logger.With(zap.String("url", endpoint))

	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		log.Warn("notification_failed", zap.String("reason", "invalid url"), zap.Error(err))
		n.metrics.record(ctx, OutcomeInvalidURL, 0)
		return
	}

	start := time.Now()
	status, body, err := n.client.Get(ctx, endpoint)
	elapsed := time.Since(start)
	if err != nil {
		log.Warn("notification_failed",
			zap.String("reason", "transport"),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		n.metrics.record(ctx, OutcomeTransport, elapsed)
		return
	}
	if status < 200 || status > 299 {
		log.Warn("notification_failed",
			zap.String("reason", "unexpected status"),
			zap.Int("status", status),
			zap.String("body", snippet(body)),
			zap.Duration("elapsed", elapsed),
		)
		n.metrics.record(ctx, OutcomeUnexpectedStatus, elapsed)
		return
	}

	n.metrics.record(ctx, OutcomeSent, elapsed)
	log.Info("notification sent", zap.Int("status", status), zap.Duration("elapsed", elapsed))
}

func snippet(body []byte) string {
	if len(body) > snippetLen {
		return string(body[:snippetLen]) + "..."
	}
	return string(body)
}
