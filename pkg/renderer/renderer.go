package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rkoval/go-weekend-raytracer/pkg/core"
	"github.com/rkoval/go-weekend-raytracer/pkg/geometry"
)

// ScanDirection selects the order rows are delivered to the pixel sink
type ScanDirection int

const (
	// ScanTopDown delivers the top image row first
	ScanTopDown ScanDirection = iota
	// ScanBottomUp delivers the bottom image row first
	ScanBottomUp
)

// Config contains the sampling configuration for a render
type Config struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	SamplesPerPixel int           // Independent samples per pixel
	MaxDepth        int           // Maximum ray bounce depth
	Workers         int           // Parallel workers; 0 = NumCPU
	Seed            int64         // Base seed; fixes the output bit-for-bit
	ScanDirection   ScanDirection // Row order at the sink
}

// DefaultConfig returns sensible default sampling values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        64,
	}
}

// PixelSink receives finished rows of linear RGB pixels, each channel
// already clamped to [0, 1], one full width row at a time in the
// configured scan order.
type PixelSink interface {
	WriteRow(row []core.Vec3) error
}

// ProgressFunc is called after each finished row. It may be called from
// multiple goroutines and must be safe for concurrent use.
type ProgressFunc func(completedRows, totalRows int)

// Renderer drives the per-pixel Monte Carlo sampling over an immutable
// world and camera. The scene is never mutated during rendering, which is
// what makes the parallel phase safe without synchronization.
type Renderer struct {
	world    *geometry.World
	camera   *Camera
	config   Config
	progress ProgressFunc
}

// NewRenderer creates a renderer for the given world and camera
func NewRenderer(world *geometry.World, camera *Camera, config Config) (*Renderer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("renderer: invalid image dimensions %dx%d", config.Width, config.Height)
	}
	if config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("renderer: samples per pixel must be positive, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth <= 0 {
		return nil, fmt.Errorf("renderer: max depth must be positive, got %d", config.MaxDepth)
	}

	return &Renderer{world: world, camera: camera, config: config}, nil
}

// OnProgress registers a per-row progress callback
func (r *Renderer) OnProgress(fn ProgressFunc) {
	r.progress = fn
}

// Render samples every pixel and streams finished rows to the sink.
// Rows are rendered in parallel, one row per task; every row derives its
// own random generator from the base seed and the row index, so the
// output is bit-identical for a given seed regardless of worker count.
// The sink only sees rows after all workers have joined.
func (r *Renderer) Render(sink PixelSink) error {
	height := r.config.Height

	rows := make([][]core.Vec3, height)

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	taskQueue := make(chan int, height)
	for y := 0; y < height; y++ {
		taskQueue <- y
	}
	close(taskQueue)

	var completed atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range taskQueue {
				rows[y] = r.renderRow(y)
				if r.progress != nil {
					r.progress(int(completed.Add(1)), height)
				}
			}
		}()
	}
	wg.Wait()

	for i := 0; i < height; i++ {
		y := i
		if r.config.ScanDirection == ScanBottomUp {
			y = height - 1 - i
		}
		if err := sink.WriteRow(rows[y]); err != nil {
			return fmt.Errorf("renderer: writing row %d: %w", y, err)
		}
	}

	return nil
}

// renderRow samples one full image row. Row y is measured from the top of
// the image; the viewport t coordinate grows upward.
func (r *Renderer) renderRow(y int) []core.Vec3 {
	random := rand.New(rand.NewSource(rowSeed(r.config.Seed, y)))
	width, height := r.config.Width, r.config.Height
	j := height - 1 - y

	row := make([]core.Vec3, width)
	for i := 0; i < width; i++ {
		var acc Accumulator
		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			// Jitter the sample uniformly within the pixel.
			s := (float64(i) + random.Float64()) / float64(width)
			t := (float64(j) + random.Float64()) / float64(height)

			ray := r.camera.GetRay(random, s, t)
			acc.Feed(rayColor(random, ray, r.world, r.config.MaxDepth))
		}
		row[i] = acc.Color()
	}

	return row
}

// rowSeed derives an independent per-row seed from the base seed using a
// splitmix64 round, so neighboring rows do not share generator state.
func rowSeed(seed int64, row int) int64 {
	z := uint64(seed) + uint64(row+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
