package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/df07/go-glimpse/pkg/camera"
	"github.com/df07/go-glimpse/pkg/film"
	"github.com/df07/go-glimpse/pkg/imageio"
	"github.com/df07/go-glimpse/pkg/renderer"
	"github.com/df07/go-glimpse/pkg/scene"
)

// Request limits
const (
	minWidth           = 16
	maxWidth           = 2000
	maxSamplesPerPixel = 10000
	maxDepth           = 1000
	maxDuration        = 10 * time.Minute
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string        `json:"scene"`
	Width           int           `json:"width"`           // 0 keeps the preset width
	SamplesPerPixel int           `json:"samplesPerPixel"` // 0 keeps the preset value
	MaxDepth        int           `json:"maxDepth"`        // 0 keeps the preset value
	Seed            int64         `json:"seed"`
	Uncapped        bool          `json:"uncapped"`
	Duration        time.Duration `json:"duration"` // How long an uncapped render refines
	OrbitTheta      float64       `json:"orbitTheta"`
	OrbitPhi        float64       `json:"orbitPhi"`
}

// ProgressUpdate is sent as a "progress" event while a render runs
type ProgressUpdate struct {
	Samples    int64 `json:"samples"`
	Total      int64 `json:"total"` // 0 when uncapped
	AverageSPP int   `json:"averageSpp"`
	ElapsedMs  int64 `json:"elapsedMs"`
}

// CompleteUpdate is sent as the "complete" event when a render finishes
type CompleteUpdate struct {
	RenderID  string `json:"renderId"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int64   `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	MinSamples     int     `json:"minSamples"`
	MaxSamplesUsed int     `json:"maxSamplesUsed"`
	Passes         int     `json:"passes"`
	DurationMs     int64   `json:"durationMs"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders a scene and streams progress, console output and the image via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	// All writes to w happen on one goroutine; the handler waits for it before returning
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := s.setupScene(req)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}

	renderID := uuid.New().String()
	consoleChan := make(chan ConsoleMessage, 50)
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()
	logger := NewConsoleLogger(s.logger, renderID, consoleChan)

	startTime := time.Now()
	onProgress := func(p renderer.Progress) {
		s.sendJSON(ctx, sseEventChan, "progress", ProgressUpdate{
			Samples:    p.Samples,
			Total:      p.Total,
			AverageSPP: p.AverageSPP,
			ElapsedMs:  time.Since(startTime).Milliseconds(),
		})
	}

	config := renderer.DefaultConfig()
	config.Seed = req.Seed
	config.Uncapped = req.Uncapped
	rend := renderer.New(config, logger, renderer.WithProgress(onProgress))
	img := renderer.NewImage(sceneObj.Camera)

	renderCtx := ctx
	if req.Uncapped {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, req.Duration)
		defer cancel()
	}

	stats, renderErr := rend.RenderScene(renderCtx, sceneObj, img)
	close(consoleChan)
	<-consoleDone

	if renderErr != nil {
		s.sendEvent(ctx, sseEventChan, "error", "Rendering failed: "+renderErr.Error())
		return
	}

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}
	s.sendJSON(ctx, sseEventChan, "complete", CompleteUpdate{
		RenderID:  stats.ID.String(),
		ImageData: imageData,
		Stats: Stats{
			TotalPixels:    stats.TotalPixels,
			TotalSamples:   stats.TotalSamples,
			AverageSamples: stats.AverageSamples,
			MinSamples:     stats.MinSamples,
			MaxSamplesUsed: stats.MaxSamplesUsed,
			Passes:         stats.Passes,
			DurationMs:     stats.Duration.Milliseconds(),
		},
	})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupScene loads the preset and applies the request's overrides
func (s *Server) setupScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Load(req.Scene)
	if err != nil {
		return nil, err
	}

	if req.Width > 0 {
		sceneObj.Camera.ImageWidth = req.Width
	}
	if req.SamplesPerPixel > 0 {
		sceneObj.Camera.SamplesPerPixel = req.SamplesPerPixel
	}
	if req.MaxDepth > 0 {
		sceneObj.Camera.MaxDepth = req.MaxDepth
	}
	if req.OrbitTheta != 0 || req.OrbitPhi != 0 {
		cam := camera.New(sceneObj.Camera)
		cam.Orbit(req.OrbitTheta, req.OrbitPhi)
		sceneObj.Camera = cam.Config()
	}
	return sceneObj, nil
}

// writeSSEEvents writes events until the channel closes or the client goes away
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	flusher, _ := w.(http.Flusher)
	for event := range sseEventChan {
		if ctx.Err() != nil {
			continue
		}
		if _, err := w.Write([]byte("event: " + event.Type + "\ndata: " + event.Data + "\n\n")); err != nil {
			s.logger.Debugw("client went away", "error", err)
			continue
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards log lines until consoleChan closes
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for msg := range consoleChan {
		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		// Drop console lines instead of stalling the render
		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		default:
		}
	}
}

func (s *Server) sendJSON(ctx context.Context, sseEventChan chan<- SSEEvent, eventType string, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}
	s.sendEvent(ctx, sseEventChan, eventType, string(data))
}

func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType, data string) {
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: data}:
	case <-ctx.Done():
	}
}

// parseRenderRequest parses and validates the query parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = scene.DefaultSceneID
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minWidth, maxWidth); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(query, "samplesPerPixel", 0, 1, maxSamplesPerPixel); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", 0, 1, maxDepth); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", int(renderer.DefaultConfig().Seed), 0, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)
	if req.OrbitTheta, err = parseFloatParam(query, "orbitTheta", 0, -2*math.Pi, 2*math.Pi); err != nil {
		return nil, err
	}
	if req.OrbitPhi, err = parseFloatParam(query, "orbitPhi", 0, -math.Pi, math.Pi); err != nil {
		return nil, err
	}

	if value := query.Get("duration"); value != "" {
		if req.Duration, err = time.ParseDuration(value); err != nil {
			return nil, errors.Errorf("invalid duration: %s", value)
		}
		if req.Duration <= 0 || req.Duration > maxDuration {
			return nil, errors.Errorf("duration must be between 0 and %s, got: %s", maxDuration, req.Duration)
		}
		req.Uncapped = true
	}

	if req.Width > 800 && req.SamplesPerPixel > 100 {
		s.logger.Warnw("large render requested", "width", req.Width, "samplesPerPixel", req.SamplesPerPixel)
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, errors.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, errors.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, errors.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, errors.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG encodes img as a base64 PNG
func imageToBase64PNG(img *film.Image) (string, error) {
	var buf bytes.Buffer
	if err := imageio.Encode(&buf, img, imageio.PNG); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
