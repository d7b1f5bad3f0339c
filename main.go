// Package main is the glimpse command line renderer.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/df07/go-glimpse/pkg/config"
	"github.com/df07/go-glimpse/pkg/imageio"
	"github.com/df07/go-glimpse/pkg/logging"
	"github.com/df07/go-glimpse/pkg/renderer"
	"github.com/df07/go-glimpse/pkg/scene"
	"github.com/df07/go-glimpse/web/server"
)

const (
	// Flags.
	flagScene    = "scene"
	flagConfig   = "config"
	flagWidth    = "width"
	flagSPP      = "spp"
	flagDepth    = "depth"
	flagWorkers  = "workers"
	flagSeed     = "seed"
	flagUncapped = "uncapped"
	flagDuration = "duration"
	flagOut      = "out"
	flagLogFile  = "log-file"
	flagDebug    = "debug"
	flagNoBar    = "no-progress"
	flagPort     = "port"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "glimpse",
		Usage: "progressive path tracer",
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "render a scene preset to an image file",
				Flags:  renderFlags(),
				Action: renderAction,
			},
			{
				Name:   "scenes",
				Usage:  "list the available scene presets",
				Action: scenesAction,
			},
			{
				Name:  "serve",
				Usage: "serve renders over HTTP with Server-Sent Events progress",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: flagPort, Value: 8080, Usage: "port to serve on"},
					&cli.BoolFlag{Name: flagDebug, Aliases: []string{"vvv"}, Usage: "enable debug logging"},
				},
				Action: serveAction,
			},
		},
	}
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagScene,
			Aliases: []string{"s"},
			Usage:   "scene preset `ID` (see the scenes command)",
		},
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "load render settings from JSON `FILE`",
		},
		&cli.IntFlag{Name: flagWidth, Usage: "image width in pixels, 0 keeps the preset width"},
		&cli.IntFlag{Name: flagSPP, Usage: "samples per pixel, 0 keeps the preset value"},
		&cli.IntFlag{Name: flagDepth, Usage: "maximum bounces, 0 keeps the preset value"},
		&cli.IntFlag{Name: flagWorkers, Usage: "row bands rendered in parallel, 0 uses every CPU"},
		&cli.Int64Flag{Name: flagSeed, Usage: "base random seed"},
		&cli.BoolFlag{Name: flagUncapped, Usage: "keep refining until interrupted or --duration elapses"},
		&cli.DurationFlag{Name: flagDuration, Usage: "stop an uncapped render after this long"},
		&cli.StringFlag{
			Name:    flagOut,
			Aliases: []string{"o"},
			Usage:   "output `FILE`; the extension picks png, jpg, bmp, ppm or qoi",
		},
		&cli.StringFlag{Name: flagLogFile, Usage: "also write debug logs to a rotating `FILE`"},
		&cli.BoolFlag{Name: flagDebug, Aliases: []string{"vvv"}, Usage: "enable debug logging"},
		&cli.BoolFlag{Name: flagNoBar, Usage: "hide the progress bar"},
	}
}

// loadConfig reads --config when given and lets explicitly set flags override it
func loadConfig(c *cli.Context) (config.Render, error) {
	conf := config.Default()
	if path := c.String(flagConfig); path != "" {
		var err error
		if conf, err = config.Read(path); err != nil {
			return config.Render{}, err
		}
	}

	if c.IsSet(flagScene) {
		conf.Scene = c.String(flagScene)
	}
	if c.IsSet(flagWidth) {
		conf.Width = c.Int(flagWidth)
	}
	if c.IsSet(flagSPP) {
		conf.SamplesPerPixel = c.Int(flagSPP)
	}
	if c.IsSet(flagDepth) {
		conf.MaxDepth = c.Int(flagDepth)
	}
	if c.IsSet(flagWorkers) {
		conf.Workers = c.Int(flagWorkers)
	}
	if c.IsSet(flagSeed) {
		conf.Seed = c.Int64(flagSeed)
	}
	if c.IsSet(flagUncapped) {
		conf.Uncapped = c.Bool(flagUncapped)
	}
	if c.IsSet(flagDuration) {
		conf.Duration = c.Duration(flagDuration)
	}
	if c.IsSet(flagOut) {
		conf.Output = c.String(flagOut)
	}
	if c.IsSet(flagLogFile) {
		conf.LogFile = c.String(flagLogFile)
	}
	if c.IsSet(flagDebug) {
		conf.Debug = c.Bool(flagDebug)
	}

	if err := conf.Validate(); err != nil {
		return config.Render{}, err
	}
	return conf, nil
}

func newLogger(conf config.Render) logging.Logger {
	if conf.LogFile == "" {
		return logging.NewLogger("glimpse", conf.Debug)
	}
	return logging.NewFileLogger("glimpse", conf.Debug, logging.FileConfig{
		Path:       conf.LogFile,
		MaxBackups: 3,
		Compress:   true,
	})
}

func renderAction(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(conf)
	defer func() {
		//nolint:errcheck
		logger.Sync()
	}()

	s, err := scene.Load(conf.Scene)
	if err != nil {
		return err
	}
	if err := conf.Apply(s); err != nil {
		return err
	}

	var opts []renderer.Option
	var bar *progressBar
	if !c.Bool(flagNoBar) {
		bar = newProgressBar(c.App.ErrWriter, conf.Scene)
		opts = append(opts, renderer.WithProgress(bar.update))
	}
	r := renderer.New(conf.RendererConfig(), logger, opts...)
	img := renderer.NewImage(s.Camera)

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt)
	defer cancel()
	if conf.Uncapped && conf.Duration > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, conf.Duration)
		defer stop()
	}

	stats, err := r.RenderScene(ctx, s, img)
	if bar != nil {
		bar.finish()
	}
	if err != nil {
		return errors.Wrapf(err, "rendering %q", conf.Scene)
	}

	if err := imageio.Write(conf.Output, img); err != nil {
		logger.Errorw("failed to save image", "output", conf.Output, "error", err)
		return err
	}
	logger.Infow("saved image", "output", conf.Output)

	fmt.Fprintln(c.App.Writer, statsTable(conf, stats))
	return nil
}

func scenesAction(c *cli.Context) error {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Description"})
	for _, info := range scene.ListScenes() {
		t.AppendRow(table.Row{info.ID, info.DisplayName, info.Group, info.Description})
	}
	fmt.Fprintln(c.App.Writer, t.Render())
	return nil
}

func serveAction(c *cli.Context) error {
	logger := logging.NewLogger("glimpse", c.Bool(flagDebug))
	defer func() {
		//nolint:errcheck
		logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt)
	defer cancel()
	return server.NewServer(c.Int(flagPort), logger).Start(ctx)
}

func statsTable(conf config.Render, stats renderer.RenderStats) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Render", stats.ID.String()})
	t.AppendRows([]table.Row{
		{"Scene", conf.Scene},
		{"Output", conf.Output},
		{"Duration", stats.Duration.Round(time.Millisecond)},
		{"Pixels", stats.TotalPixels},
		{"Samples", stats.TotalSamples},
		{"Samples per pixel", fmt.Sprintf("%.1f (range %d - %d)", stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed)},
		{"Passes", stats.Passes},
		{"Band samples", fmt.Sprintf("%.0f ± %.0f", stats.BandSampleMean, stats.BandSampleStd)},
		{"BVH", fmt.Sprintf("%d nodes, depth %d", stats.BVH.Nodes, stats.BVH.MaxDepth)},
	})
	return t.Render()
}

// progressBar shows renderer progress on a terminal
type progressBar struct {
	writer   progress.Writer
	tracker  *progress.Tracker
	totalSet bool
	done     chan struct{}
}

func newProgressBar(out io.Writer, name string) *progressBar {
	pw := progress.NewWriter()
	pw.SetOutputWriter(out)
	pw.SetAutoStop(true)
	pw.SetTrackerLength(40)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.Style().Visibility.ETA = true

	tracker := &progress.Tracker{Message: name, Units: progress.UnitsDefault}
	pw.AppendTracker(tracker)

	bar := &progressBar{writer: pw, tracker: tracker, done: make(chan struct{})}
	go func() {
		defer close(bar.done)
		pw.Render()
	}()
	return bar
}

func (b *progressBar) update(p renderer.Progress) {
	if p.Total > 0 && !b.totalSet {
		b.tracker.UpdateTotal(p.Total)
		b.totalSet = true
	}
	b.tracker.SetValue(p.Samples)
}

func (b *progressBar) finish() {
	b.tracker.MarkAsDone()
	select {
	case <-b.done:
	case <-time.After(time.Second):
		b.writer.Stop()
	}
}
