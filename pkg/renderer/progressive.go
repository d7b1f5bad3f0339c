// Package renderer schedules camera samples across row bands, accumulates
// them into a film and publishes the running mean into an image.
package renderer

import (
	"context"
	"runtime"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
	"go.uber.org/atomic"

	"github.com/df07/go-glimpse/pkg/camera"
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/film"
	"github.com/df07/go-glimpse/pkg/geometry"
	"github.com/df07/go-glimpse/pkg/integrator"
	"github.com/df07/go-glimpse/pkg/logging"
	"github.com/df07/go-glimpse/pkg/scene"
)

// State is the lifecycle of one RenderScene call
type State int32

const (
	// Idle means no render has started yet
	Idle State = iota
	// Rendering means a render is in progress
	Rendering
	// Stopping means Stop was called and bands finish their current pass
	Stopping
	// Done means the last render returned
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rendering:
		return "rendering"
	case Stopping:
		return "stopping"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// ErrRenderInProgress is returned when RenderScene is called while another render runs
var ErrRenderInProgress = errors.New("a render is already in progress")

// Config contains configuration for a render
type Config struct {
	NumWorkers       int           // Number of row bands (0 = use CPU count)
	Seed             int64         // Band i draws from a generator seeded with Seed+i
	Uncapped         bool          // Keep refining until Stop or cancellation
	PassDelay        time.Duration // Pause between uncapped passes
	ProgressInterval time.Duration // How often the progress callback fires
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers:       0, // Auto-detect CPU count
		Seed:             42,
		Uncapped:         false,
		PassDelay:        time.Millisecond,
		ProgressInterval: 250 * time.Millisecond,
	}
}

// Progress is a snapshot handed to the progress callback
type Progress struct {
	Samples    int64 // Samples finished so far
	Total      int64 // Samples a fixed render will take, 0 when uncapped
	AverageSPP int   // Whole samples per pixel finished so far
}

// Option configures a Renderer
type Option func(*Renderer)

// WithClock replaces the wall clock used for pass delays and progress ticks
func WithClock(clk clock.Clock) Option {
	return func(r *Renderer) { r.clock = clk }
}

// WithProgress registers fn to be called periodically and once more when a render ends
func WithProgress(fn func(Progress)) Option {
	return func(r *Renderer) { r.onProgress = fn }
}

// Renderer owns the film, the progress counter and the lifecycle state.
// It renders one scene at a time.
type Renderer struct {
	config     Config
	logger     logging.Logger
	clock      clock.Clock
	onProgress func(Progress)

	film     *film.Film
	progress atomic.Int64
	state    atomic.Int32
}

// New creates a renderer
func New(config Config, logger logging.Logger, opts ...Option) *Renderer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.ProgressInterval <= 0 {
		config.ProgressInterval = DefaultConfig().ProgressInterval
	}

	r := &Renderer{
		config: config,
		logger: logger,
		clock:  clock.New(),
		film:   film.New(0, 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the renderer configuration with defaults applied
func (r *Renderer) Config() Config {
	return r.config
}

// Film returns the accumulator of the current or last render.
// It is only safe to read once RenderScene has returned.
func (r *Renderer) Film() *film.Film {
	return r.film
}

// State returns where the renderer is in its lifecycle
func (r *Renderer) State() State {
	return State(r.state.Load())
}

// Progress returns the number of samples finished by the current or last render
func (r *Renderer) Progress() int64 {
	return r.progress.Load()
}

// Stop asks a running uncapped render to finish its current pass and return.
// It reports false, and does nothing, when no render is in progress.
// The request lives in the state word, so it ends with the render it was made for.
func (r *Renderer) Stop() bool {
	if r.state.CompareAndSwap(int32(Rendering), int32(Stopping)) {
		return true
	}
	return r.State() == Stopping
}

// StopRequested reports whether Stop was called during the current render
func (r *Renderer) StopRequested() bool {
	return r.State() == Stopping
}

// NewImage creates an image sized for cam
func NewImage(cam camera.Config) *film.Image {
	frame := camera.NewFrame(cam)
	return film.NewImage(frame.ImageWidth, frame.ImageHeight)
}

// RenderScene renders s into img, which must match the camera's image size.
// It blocks until every band finishes. A fixed render interrupted by ctx
// returns ctx's error; an uncapped render ended by Stop or ctx returns nil.
// Either way img holds the running mean of every sample taken.
func (r *Renderer) RenderScene(ctx context.Context, s *scene.Scene, img *film.Image) (RenderStats, error) {
	if s == nil || img == nil {
		return RenderStats{}, errors.New("scene and image are required")
	}
	if !r.state.CompareAndSwap(int32(Idle), int32(Rendering)) &&
		!r.state.CompareAndSwap(int32(Done), int32(Rendering)) {
		return RenderStats{}, ErrRenderInProgress
	}
	defer r.state.Store(int32(Done))

	frame := camera.NewFrame(s.Camera)
	if img.Width() != frame.ImageWidth || img.Height() != frame.ImageHeight {
		return RenderStats{}, errors.Errorf("image is %dx%d but the camera renders %dx%d",
			img.Width(), img.Height(), frame.ImageWidth, frame.ImageHeight)
	}

	id := uuid.New()
	ctx, span := trace.StartSpan(ctx, "renderer::RenderScene")
	defer span.End()
	span.AddAttributes(
		trace.StringAttribute("render_id", id.String()),
		trace.Int64Attribute("width", int64(frame.ImageWidth)),
		trace.Int64Attribute("height", int64(frame.ImageHeight)),
		trace.BoolAttribute("uncapped", r.config.Uncapped),
	)

	start := r.clock.Now()
	r.film.Initialize(frame.ImageWidth, frame.ImageHeight)
	r.progress.Store(0)

	world := geometry.NewBVH(s.World)
	env := integrator.Environment{World: world, Lights: s.Lights, Background: s.Background}
	bands := NewBands(frame.ImageHeight, r.config.NumWorkers)

	var total int64
	if !r.config.Uncapped {
		total = int64(frame.ImageWidth) * int64(frame.ImageHeight) * int64(frame.SamplesPerPass())
	}

	log := r.logger.With("render_id", id.String())
	log.Infow("render started",
		"width", frame.ImageWidth,
		"height", frame.ImageHeight,
		"samples_per_pixel", frame.SamplesPerPass(),
		"max_depth", frame.MaxDepth,
		"bands", len(bands),
		"uncapped", r.config.Uncapped,
		"objects", s.World.Len(),
		"lights", s.Lights.Len(),
	)

	stopProgress := r.startProgress(total, frame.ImageWidth*frame.ImageHeight)

	job := &bandJob{
		frame:      frame,
		env:        env,
		integrator: integrator.NewPathTracingIntegrator(frame.MaxDepth),
		film:       r.film,
		image:      img,
		progress:   &r.progress,
	}
	bandSamples := make([]int64, len(bands))
	bandPasses := make([]int, len(bands))

	pool := NewWorkerPool(ctx)
	for _, band := range bands {
		pool.Go(bandName(band), func(ctx context.Context) error {
			sampler := newBandSampler(r.config.Seed, band.Index)
			var err error
			if r.config.Uncapped {
				bandPasses[band.Index], bandSamples[band.Index] = r.renderUncapped(ctx, job, band, sampler)
			} else {
				bandPasses[band.Index], bandSamples[band.Index], err = r.renderFixed(ctx, job, band, sampler)
			}
			log.Debugw("band finished", "band", band.Index, "passes", bandPasses[band.Index], "samples", bandSamples[band.Index])
			return err
		})
	}
	err := pool.Wait()
	stopProgress()

	stats := computeStats(r.film, bandSamples, bandPasses)
	stats.ID = id
	stats.Duration = r.clock.Since(start)
	stats.BVH = world.Stats()

	if err != nil {
		span.SetStatus(trace.Status{Code: trace.StatusCodeCancelled, Message: err.Error()})
		log.Warnw("render interrupted", "error", err, "samples", stats.TotalSamples, "duration", stats.Duration)
		return stats, err
	}

	log.Infow("render finished",
		"samples", stats.TotalSamples,
		"average_spp", stats.AverageSamples,
		"passes", stats.Passes,
		"duration", stats.Duration,
		"stopped", r.StopRequested(),
	)
	return stats, nil
}

// renderFixed takes exactly one stratified pass over the band, polling ctx between grid cells
func (r *Renderer) renderFixed(ctx context.Context, job *bandJob, band Band, sampler core.Sampler) (int, int64, error) {
	var samples int64
	for sj := 0; sj < job.frame.SqrtSPP; sj++ {
		for si := 0; si < job.frame.SqrtSPP; si++ {
			if err := ctx.Err(); err != nil {
				return 0, samples, err
			}
			samples += job.renderCell(band, si, sj, sampler)
		}
	}
	return 1, samples, nil
}

// renderUncapped repeats full passes until Stop or ctx, checking both once per pass
func (r *Renderer) renderUncapped(ctx context.Context, job *bandJob, band Band, sampler core.Sampler) (int, int64) {
	var samples int64
	passes := 0
	for {
		if r.StopRequested() || ctx.Err() != nil {
			return passes, samples
		}

		for sj := 0; sj < job.frame.SqrtSPP; sj++ {
			for si := 0; si < job.frame.SqrtSPP; si++ {
				samples += job.renderCell(band, si, sj, sampler)
			}
		}
		passes++

		if r.StopRequested() {
			return passes, samples
		}
		select {
		case <-ctx.Done():
			return passes, samples
		case <-r.clock.After(r.config.PassDelay):
		}
	}
}

// startProgress ticks the progress callback until the returned func is called,
// which also delivers one final update
func (r *Renderer) startProgress(total int64, pixels int) func() {
	if r.onProgress == nil {
		return func() {}
	}

	snapshot := func() Progress {
		samples := r.progress.Load()
		return Progress{Samples: samples, Total: total, AverageSPP: int(samples / int64(max(1, pixels)))}
	}

	ticker := r.clock.Ticker(r.config.ProgressInterval)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				r.onProgress(snapshot())
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
		<-finished
		r.onProgress(snapshot())
	}
}
