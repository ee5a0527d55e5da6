package engine

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/observe"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/registry"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/store"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// DefaultMaxArraySize bounds the work of a single run. Bubble, selection and
// insertion emit O(n^2) events, so the cap is the latency bound.
const DefaultMaxArraySize = 2000

// TapFunc returns an extra observer for a run of the given algorithm key, or
// nil for none. The tap sees exactly the operations the collector records.
type TapFunc func(key string) observe.Observer

// Engine executes sort runs against a registry.
//
// Thread-safety: Run is safe for concurrent use. Each call owns its array
// copy and its collector; the shared registry, clock and store are
// synchronized.
type Engine struct {
	registry     *registry.Registry
	store        *store.Store
	clock        *Clock
	ids          IDGenerator
	tap          TapFunc
	logger       *slog.Logger
	maxArraySize int
	verify       bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxArraySize sets the maximum accepted input length. Zero or a
// negative value disables the cap.
func WithMaxArraySize(n int) Option {
	return func(e *Engine) {
		e.maxArraySize = n
	}
}

// WithIDGenerator replaces the default UUIDv7 run id generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) {
		e.ids = g
	}
}

// WithTap attaches an extra observer to every run.
func WithTap(tap TapFunc) Option {
	return func(e *Engine) {
		e.tap = tap
	}
}

// WithLogger sets the logger for run lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithVerify enables replay verification of every trace before it is
// returned.
func WithVerify(verify bool) Option {
	return func(e *Engine) {
		e.verify = verify
	}
}

// WithStore appends every successful run to the run log.
func WithStore(s *store.Store) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithClock sets the seq clock. Use NewClockAt to resume a log.
func WithClock(c *Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// New creates an Engine over reg.
//
// Defaults: DefaultMaxArraySize, UUIDv7 ids, a fresh clock, slog.Default,
// no tap, no store, verification off.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry:     reg,
		clock:        NewClock(),
		ids:          UUIDv7Generator{},
		logger:       slog.Default(),
		maxArraySize: DefaultMaxArraySize,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Resume sets the clock to continue after the highest seq in the attached
// run log. It is a no-op without a store. Engines sharing one log stay
// ordered after Resume: the store moves a stale seq past the log's highest.
func (e *Engine) Resume(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	seq, err := e.store.MaxSeq(ctx)
	if err != nil {
		return fmt.Errorf("resume clock: %w", err)
	}
	e.clock = NewClockAt(seq)
	return nil
}

// Registry returns the registry the engine resolves keys against.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Store returns the attached run log, or nil.
func (e *Engine) Store() *store.Store {
	return e.store
}

// Run sorts a copy of input with the algorithm registered under key and
// returns the outcome with its finalized trace. input is never modified.
func (e *Engine) Run(ctx context.Context, key string, input []int) (*Result, error) {
	res, err := e.execute(ctx, key, input)
	if err != nil {
		return nil, err
	}

	res.ID = e.ids.Generate()
	res.Seq = e.clock.Next()

	if e.store != nil {
		seq, inserted, err := e.store.WriteRun(ctx, res.Record())
		if err != nil {
			return nil, &RunError{Algorithm: key, Err: fmt.Errorf("record run %s: %w", res.ID, err)}
		}
		if inserted && seq != res.Seq {
			res.Seq = seq
			e.clock.Observe(seq)
		}
	}

	e.logger.Debug("run complete",
		"run_id", res.ID,
		"algorithm", key,
		"size", len(res.Initial),
		"steps", len(res.Steps),
	)

	return res, nil
}

// execute performs one sort without stamping or recording it.
func (e *Engine) execute(ctx context.Context, key string, input []int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RunError{Algorithm: key, Err: err}
	}
	if e.maxArraySize > 0 && len(input) > e.maxArraySize {
		return nil, &RunError{
			Algorithm: key,
			Err:       fmt.Errorf("%w: %d elements, limit %d", ErrInputTooLarge, len(input), e.maxArraySize),
		}
	}
	alg, ok := e.registry.Get(key)
	if !ok {
		return nil, &RunError{Algorithm: key, Err: fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)}
	}

	e.logger.Debug("run start", "algorithm", key, "size", len(input))

	initial := slices.Clone(input)
	if initial == nil {
		initial = []int{}
	}
	work := slices.Clone(initial)

	collector := observe.NewCollector()
	var obs observe.Observer = collector
	if e.tap != nil {
		obs = observe.NewMulti(collector, e.tap(key))
	}

	alg.Sort(work, obs)

	if err := collector.Finalize(); err != nil {
		return nil, &RunError{Algorithm: key, Err: err}
	}
	steps := collector.Events().Events()

	if e.verify {
		if err := verify(initial, work, steps); err != nil {
			return nil, &RunError{Algorithm: key, Err: err}
		}
	}

	inputDigest, err := trace.InputDigest(key, initial)
	if err != nil {
		return nil, &RunError{Algorithm: key, Err: err}
	}
	traceDigest, err := trace.TraceDigest(steps)
	if err != nil {
		return nil, &RunError{Algorithm: key, Err: err}
	}

	return &Result{
		AlgorithmKey:  key,
		AlgorithmName: alg.Name(),
		Initial:       initial,
		Sorted:        work,
		Steps:         steps,
		Stats:         trace.Count(steps),
		InputDigest:   inputDigest,
		TraceDigest:   traceDigest,
	}, nil
}

// verify checks the terminal marker rule and that replaying steps over
// initial reproduces sorted.
func verify(initial, sorted []int, steps []trace.Event) error {
	if err := trace.Validate(steps); err != nil {
		return fmt.Errorf("%w: %w", ErrReplayMismatch, err)
	}
	replayed, err := trace.Replay(initial, steps)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReplayMismatch, err)
	}
	if !slices.Equal(replayed, sorted) {
		return fmt.Errorf("%w: replay gives %v, sort gives %v", ErrReplayMismatch, replayed, sorted)
	}
	return nil
}
