package render

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/backdrop/pkg/errors"
	"github.com/matzehuels/backdrop/pkg/observability"
	"github.com/matzehuels/backdrop/pkg/patterns"
	"github.com/matzehuels/backdrop/pkg/scene"
	"github.com/matzehuels/backdrop/pkg/styles"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSeed fixes the seed used for every render. Zero, the default, draws
// a fresh seed per call.
func WithSeed(seed uint64) Option {
	return func(d *Dispatcher) { d.seed = seed }
}

// WithLogger sets the logger for debug output (default: discard).
func WithLogger(l *log.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// Dispatcher routes a style key to its pattern and paints the result.
// It holds no per-render state and is safe to share between goroutines.
type Dispatcher struct {
	registry *styles.Registry
	seed     uint64
	logger   *log.Logger
}

// NewDispatcher returns a dispatcher over reg. A nil reg uses
// [styles.Default].
func NewDispatcher(reg *styles.Registry, opts ...Option) *Dispatcher {
	if reg == nil {
		reg = styles.Default()
	}
	d := &Dispatcher{registry: reg, logger: log.NewWithOptions(io.Discard, log.Options{})}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the style registry the dispatcher resolves keys in.
func (d *Dispatcher) Registry() *styles.Registry { return d.registry }

// Result describes a finished render.
type Result struct {
	Style    string
	Title    string
	Width    int
	Height   int
	Seed     uint64
	Commands int
	Duration time.Duration
}

// Compose resolves key and records its pattern for a width x height canvas
// using seed. It touches no pixels.
func (d *Dispatcher) Compose(key string, width, height int, seed uint64) (scene.Scene, error) {
	desc, err := d.registry.Resolve(key)
	if err != nil {
		return scene.Scene{}, err
	}
	if err := errs.ValidateDimensions(width, height); err != nil {
		return scene.Scene{}, err
	}
	return compose(desc, width, height, seed), nil
}

func compose(desc styles.Descriptor, width, height int, seed uint64) scene.Scene {
	rec := scene.NewRecorder(width, height)
	desc.Pattern.Draw(rec, patterns.NewRand(seed))
	return rec.Scene(desc.Background)
}

// Generate renders style key onto s at width x height. The key and size are
// checked before s is modified; on error s keeps its previous contents.
func (d *Dispatcher) Generate(ctx context.Context, s *Surface, key string, width, height int) (Result, error) {
	return d.GenerateSeed(ctx, s, key, width, height, d.nextSeed())
}

// GenerateSeed is Generate with an explicit seed, ignoring the dispatcher's
// seed policy.
func (d *Dispatcher) GenerateSeed(ctx context.Context, s *Surface, key string, width, height int, seed uint64) (res Result, err error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	hooks := observability.Render()
	hooks.OnGenerateStart(ctx, key, width, height)
	defer func() {
		hooks.OnGenerateComplete(ctx, key, res.Commands, time.Since(start), err)
	}()

	desc, err := d.registry.Resolve(key)
	if err != nil {
		return Result{}, err
	}
	if err := errs.ValidateDimensions(width, height); err != nil {
		return Result{}, err
	}

	sc := compose(desc, width, height, seed)
	if err := s.Paint(sc); err != nil {
		return Result{}, err
	}

	res = Result{
		Style:    desc.Key,
		Title:    desc.Title,
		Width:    width,
		Height:   height,
		Seed:     seed,
		Commands: len(sc.Commands),
		Duration: time.Since(start),
	}
	d.logger.Debug("generated", "style", res.Style, "size", s, "seed", seed,
		"commands", res.Commands, "took", res.Duration)
	return res, nil
}

func (d *Dispatcher) nextSeed() uint64 {
	if d.seed != 0 {
		return d.seed
	}
	for {
		if seed := rand.Uint64(); seed != 0 {
			return seed
		}
	}
}
