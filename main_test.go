package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"glimpse"}, args...))
	return out.String(), err
}

func TestScenesCommand(t *testing.T) {
	out, err := runApp(t, "scenes")
	if err != nil {
		t.Fatalf("scenes command failed: %v", err)
	}
	for _, id := range []string{"simple_sphere", "cornell_box", "cornell_smoke", "random_spheres"} {
		if !strings.Contains(out, id) {
			t.Errorf("Expected scene list to contain %q, got:\n%s", id, out)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name string
		file string
		args []string
	}{
		{"fixed png", "out.png", []string{"--scene", "simple_sphere", "--spp", "1"}},
		{"fixed qoi", "out.qoi", []string{"--scene", "cornell_box", "--spp", "1", "--depth", "3"}},
		{"uncapped with duration", "out.ppm", []string{"--scene", "simple_sphere", "--uncapped", "--duration", "50ms"}},
		{"final scene", "final.png", []string{"--scene", "final_scene", "--spp", "1", "--depth", "3"}},
		{"uncapped with elapsed duration", "out.bmp", []string{"--scene", "simple_sphere", "--uncapped", "--duration", "1ns"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "renders", tt.file)
			args := append([]string{"render", "--width", "16", "--workers", "2", "--no-progress", "--out", path}, tt.args...)

			out, err := runApp(t, args...)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			if !strings.Contains(out, "Samples per pixel") {
				t.Errorf("Expected stats table in output, got:\n%s", out)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Expected output file %s: %v", path, err)
			}
			if info.Size() == 0 {
				t.Errorf("Expected non-empty output file %s", path)
			}
		})
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown scene", []string{"--scene", "teapot"}, `unknown scene "teapot"`},
		{"bad extension", []string{"--out", filepath.Join(dir, "out.tga")}, "unsupported image extension"},
		{"negative width", []string{"--width", "-5"}, "width must not be negative"},
		{"missing config", []string{"--config", filepath.Join(dir, "missing.json")}, "reading config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, append([]string{"render", "--no-progress"}, tt.args...)...)
			if err == nil {
				t.Fatalf("Expected error for %v", tt.args)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "render.json")
	outPath := filepath.Join(dir, "from-flag.bmp")
	err := os.WriteFile(configPath, []byte(`{
		"scene": "cornell_box",
		"width": 12,
		"samples_per_pixel": 1,
		"max_depth": 2,
		"output": "`+filepath.ToSlash(filepath.Join(dir, "from-file.png"))+`"
	}`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := runApp(t, "render", "--no-progress", "--config", configPath, "--out", outPath); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("Expected flag output %s to be written: %v", outPath, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "from-file.png")); err == nil {
		t.Errorf("Expected config output to be overridden by --out")
	}
}
