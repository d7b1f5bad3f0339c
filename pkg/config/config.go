// Package config loads render settings from JSON files.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"
	"time"

	"github.com/a8m/envsubst"
	"github.com/go-viper/mapstructure/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/imageio"
	"github.com/df07/go-glimpse/pkg/renderer"
	"github.com/df07/go-glimpse/pkg/scene"
)

// Render describes a single render. Zero numeric values keep the preset's own setting.
type Render struct {
	Scene           string        `json:"scene"`
	Width           int           `json:"width"`
	SamplesPerPixel int           `json:"samples_per_pixel"`
	MaxDepth        int           `json:"max_depth"`
	Workers         int           `json:"workers"` // 0 = one per CPU
	Seed            int64         `json:"seed"`
	Uncapped        bool          `json:"uncapped"`
	Duration        time.Duration `json:"duration"` // Uncapped renders stop after this long, 0 = until interrupted
	PassDelay       time.Duration `json:"pass_delay"`
	Output          string        `json:"output"`
	Background      string        `json:"background"` // Hex color such as "#87ceeb"
	LogFile         string        `json:"log_file"`
	Debug           bool          `json:"debug"`
}

// Default returns the settings used when no file or flag overrides them
func Default() Render {
	rendererDefaults := renderer.DefaultConfig()
	return Render{
		Scene:     scene.DefaultSceneID,
		Seed:      rendererDefaults.Seed,
		PassDelay: rendererDefaults.PassDelay,
		Output:    "output/render.png",
	}
}

// Read reads a render config from the given file, expanding ${VAR} references first.
func Read(filePath string) (Render, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return Render{}, errors.Wrapf(err, "reading config %q", filePath)
	}
	conf, err := FromReader(bytes.NewReader(buf))
	if err != nil {
		return Render{}, errors.Wrapf(err, "parsing config %q", filePath)
	}
	return conf, nil
}

// FromReader decodes a JSON render config on top of Default and validates it.
func FromReader(r io.Reader) (Render, error) {
	var attrs map[string]interface{}
	dec := json.NewDecoder(r)
	// Numbers stay exact until mapstructure converts them, so large seeds survive
	dec.UseNumber()
	if err := dec.Decode(&attrs); err != nil {
		return Render{}, errors.Wrap(err, "decoding json")
	}

	conf := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &conf,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			numberToDurationHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
		ErrorUnused: true,
	})
	if err != nil {
		return Render{}, err
	}
	if err := decoder.Decode(attrs); err != nil {
		return Render{}, err
	}

	if err := conf.Validate(); err != nil {
		return Render{}, err
	}
	return conf, nil
}

// numberToDurationHookFunc reads bare JSON numbers as nanoseconds
func numberToDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		number, ok := data.(json.Number)
		if !ok || t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		n, err := number.Int64()
		if err != nil {
			return nil, errors.Wrapf(err, "duration %s", number)
		}
		return time.Duration(n), nil
	}
}

// Validate reports every problem with the config at once.
func (c Render) Validate() error {
	var allErrs error
	nonNegative := []struct {
		name  string
		value int64
	}{
		{"width", int64(c.Width)},
		{"samples_per_pixel", int64(c.SamplesPerPixel)},
		{"max_depth", int64(c.MaxDepth)},
		{"workers", int64(c.Workers)},
		{"duration", int64(c.Duration)},
		{"pass_delay", int64(c.PassDelay)},
	}
	for _, field := range nonNegative {
		if field.value < 0 {
			allErrs = multierr.Append(allErrs, errors.Errorf("%s must not be negative", field.name))
		}
	}

	if !lo.Contains(scene.SceneIDs(), c.Scene) {
		allErrs = multierr.Append(allErrs, errors.Errorf("unknown scene %q", c.Scene))
	}
	if _, err := imageio.FormatFromPath(c.Output); err != nil {
		allErrs = multierr.Append(allErrs, err)
	}
	if _, _, err := c.BackgroundColor(); err != nil {
		allErrs = multierr.Append(allErrs, err)
	}
	return allErrs
}

// BackgroundColor parses Background into a linear color.
// ok is false when no background is configured.
func (c Render) BackgroundColor() (color core.Vec3, ok bool, err error) {
	if c.Background == "" {
		return core.Vec3{}, false, nil
	}
	parsed, err := colorful.Hex(c.Background)
	if err != nil {
		return core.Vec3{}, false, errors.Wrapf(err, "invalid background %q", c.Background)
	}
	r, g, b := parsed.LinearRgb()
	return core.NewVec3(r, g, b), true, nil
}

// Apply overrides the scene's camera and background with any values set in c
func (c Render) Apply(s *scene.Scene) error {
	if c.Width > 0 {
		s.Camera.ImageWidth = c.Width
	}
	if c.SamplesPerPixel > 0 {
		s.Camera.SamplesPerPixel = c.SamplesPerPixel
	}
	if c.MaxDepth > 0 {
		s.Camera.MaxDepth = c.MaxDepth
	}

	background, ok, err := c.BackgroundColor()
	if err != nil {
		return err
	}
	if ok {
		s.Background = background
	}
	return nil
}

// RendererConfig returns the renderer settings c describes
func (c Render) RendererConfig() renderer.Config {
	cfg := renderer.DefaultConfig()
	cfg.NumWorkers = c.Workers
	cfg.Seed = c.Seed
	cfg.Uncapped = c.Uncapped
	if c.PassDelay > 0 {
		cfg.PassDelay = c.PassDelay
	}
	return cfg
}
