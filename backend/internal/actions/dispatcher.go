package actions

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"aitools/backend/internal/catalog"
	"aitools/backend/internal/constants"
	"aitools/backend/internal/metrics"
	"aitools/backend/internal/normalize"
	apperrors "aitools/backend/pkg/errors"
	"aitools/backend/pkg/logger"
)

// UniversalAction is the catalog-driven action every tool can fall back to
const UniversalAction = "universal"

// Dispatcher routes action names to their generation pipelines
type Dispatcher struct {
	chat    TextGenerator
	free    TextGenerator
	images  ImageURLBuilder
	catalog *catalog.Catalog
	logger  *zap.Logger
	metrics *metrics.Recorder

	actions map[string]action
	names   []string
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithLogger overrides the global logger
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics records generations on r
func WithMetrics(r *metrics.Recorder) Option {
	return func(d *Dispatcher) {
		d.metrics = r
	}
}

// NewDispatcher creates a dispatcher over the full action registry.
// chat serves ModeChat actions, free serves ModeFreeText actions.
func NewDispatcher(chat, free TextGenerator, images ImageURLBuilder, cat *catalog.Catalog, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		chat:    chat,
		free:    free,
		images:  images,
		catalog: cat,
		logger:  logger.Get(),
		actions: make(map[string]action),
	}
	for _, opt := range opts {
		opt(d)
	}

	for _, a := range registry() {
		name := a.info().Name
		if _, dup := d.actions[name]; dup {
			panic(fmt.Sprintf("actions: duplicate action %q", name))
		}
		d.actions[name] = a
		d.names = append(d.names, name)
	}
	sort.Strings(d.names)

	return d
}

// Dispatch runs the named action. The error return is reserved for caller
// mistakes (unknown action, invalid params, unknown tool) and is raised before
// any outbound call. Provider failures come back as a failed envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, params map[string]any) (Envelope[any], error) {
	a, ok := d.actions[strings.TrimSpace(name)]
	if !ok {
		d.metrics.Rejected("unknown", "unknown_action")
		return Envelope[any]{}, apperrors.NewUnknownAction(name)
	}

	env, err := a.run(ctx, d, params)
	if err != nil {
		d.metrics.Rejected(name, rejectReason(err))
		d.logger.Debug("Action rejected",
			zap.String("action", name),
			zap.Error(err),
		)
		return Envelope[any]{}, err
	}
	return env, nil
}

// Generate runs the universal action for a catalog tool
func (d *Dispatcher) Generate(ctx context.Context, toolID, input string) (Envelope[any], error) {
	return d.Dispatch(ctx, UniversalAction, map[string]any{
		"tool_id": toolID,
		"input":   input,
	})
}

// Actions lists every registered action, sorted by name
func (d *Dispatcher) Actions() []Info {
	infos := make([]Info, 0, len(d.names))
	for _, name := range d.names {
		infos = append(infos, d.actions[name].info())
	}
	return infos
}

// Lookup describes one action
func (d *Dispatcher) Lookup(name string) (Info, bool) {
	a, ok := d.actions[name]
	if !ok {
		return Info{}, false
	}
	return a.info(), true
}

// generate calls the backend for mode. A blank response counts as a failure.
func (d *Dispatcher) generate(ctx context.Context, mode Mode, prompt string) (string, error) {
	var (
		gen      TextGenerator
		provider string
	)
	switch mode {
	case ModeChat:
		gen, provider = d.chat, constants.ProviderChat
	case ModeFreeText:
		gen, provider = d.free, constants.ProviderPollinations
	default:
		return "", fmt.Errorf("mode %q does not generate text", mode)
	}
	if gen == nil {
		return "", apperrors.NewProviderFailed(provider, stderrors.New("generator not configured"))
	}

	raw, err := gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(raw) == "" {
		return "", apperrors.NewEmptyResponse(provider)
	}
	return raw, nil
}

func (d *Dispatcher) fail(name string, mode Mode, err error, start time.Time) {
	fields := []zap.Field{
		zap.String("action", name),
		zap.String("mode", string(mode)),
		zap.Error(err),
	}
	if code, ok := apperrors.StatusCode(err); ok {
		fields = append(fields, zap.Int("status_code", code))
	}
	d.logger.Error("Generation failed", fields...)
	d.metrics.ObserveGeneration(name, string(mode), metrics.OutcomeFailure, time.Since(start))
}

func (d *Dispatcher) succeed(name string, mode Mode, confidence normalize.Confidence, start time.Time) {
	elapsed := time.Since(start)
	d.logger.Debug("Generation succeeded",
		zap.String("action", name),
		zap.String("mode", string(mode)),
		zap.Duration("duration", elapsed),
	)
	d.metrics.ObserveGeneration(name, string(mode), metrics.OutcomeSuccess, elapsed)
	if confidence != "" {
		d.metrics.StructuredResult(name, string(confidence))
	}
}

func rejectReason(err error) string {
	var notFound *apperrors.ErrToolNotFound
	if stderrors.As(err, &notFound) {
		return "tool_not_found"
	}
	return "invalid_input"
}
