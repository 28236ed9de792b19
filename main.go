package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/rkoval/go-weekend-raytracer/pkg/output"
	"github.com/rkoval/go-weekend-raytracer/pkg/renderer"
	"github.com/rkoval/go-weekend-raytracer/pkg/scene"
)

type options struct {
	sceneName   string
	width       int
	aspect      float64
	samples     int
	depth       int
	seed        int64
	workers     int
	supersample int
	clamp       bool
	bottomUp    bool
	outPath     string
}

func main() {
	defaults := renderer.DefaultConfig()

	var opts options
	flag.StringVar(&opts.sceneName, "scene", "random", "Scene to render: 'random' or 'demo'")
	flag.IntVar(&opts.width, "width", defaults.Width, "Output image width in pixels")
	flag.Float64Var(&opts.aspect, "aspect", 0, "Aspect ratio override; 0 uses the scene's camera")
	flag.IntVar(&opts.samples, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	flag.IntVar(&opts.depth, "depth", defaults.MaxDepth, "Maximum ray bounce depth")
	flag.Int64Var(&opts.seed, "seed", 42, "Base random seed; fixes the output bit-for-bit")
	flag.IntVar(&opts.workers, "workers", defaults.Workers, "Parallel workers; 0 uses all CPUs")
	flag.IntVar(&opts.supersample, "supersample", 1, "Render at N times the size, then downscale")
	flag.BoolVar(&opts.clamp, "clamp", false, "Clamp out-of-range colors instead of failing")
	flag.BoolVar(&opts.bottomUp, "bottom-up", false, "Deliver rows bottom first (flips the image)")
	flag.StringVar(&opts.outPath, "o", "render.png", "Output file: .png, .ppm, .webp or .tga")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.supersample < 1 {
		return fmt.Errorf("supersample factor must be at least 1, got %d", opts.supersample)
	}

	random := rand.New(rand.NewSource(opts.seed))

	selectedScene, err := createScene(opts.sceneName, random)
	if err != nil {
		return err
	}
	if opts.aspect > 0 {
		selectedScene.CameraConfig.AspectRatio = opts.aspect
	}

	world, err := selectedScene.BuildWorld(random)
	if err != nil {
		return err
	}
	camera := renderer.NewCamera(selectedScene.CameraConfig)

	height := int(float64(opts.width) / selectedScene.CameraConfig.AspectRatio)
	if height < 1 {
		height = 1
	}

	config := renderer.Config{
		Width:           opts.width * opts.supersample,
		Height:          height * opts.supersample,
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.depth,
		Workers:         opts.workers,
		Seed:            opts.seed,
	}
	if opts.bottomUp {
		config.ScanDirection = renderer.ScanBottomUp
	}

	r, err := renderer.NewRenderer(world, camera, config)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(config.Height,
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
	)
	r.OnProgress(func(completedRows, totalRows int) {
		_ = bar.Set(completedRows)
	})

	frame := output.NewFramebuffer(config.Width, config.Height)
	frame.Clamp = opts.clamp

	fmt.Printf("Rendering '%s' (%d objects) at %dx%d, %d samples per pixel...\n",
		opts.sceneName, world.ObjectCount(), config.Width, config.Height, opts.samples)

	start := time.Now()
	if err := r.Render(frame); err != nil {
		return err
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)
	fmt.Printf("Render completed in %v\n", time.Since(start))

	img, err := frame.Image()
	if err != nil {
		return err
	}
	img = output.Downsample(img, opts.supersample)

	if err := output.WriteFile(opts.outPath, img); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", opts.outPath)

	return nil
}

func createScene(name string, random *rand.Rand) (*scene.Scene, error) {
	switch name {
	case "random":
		return scene.NewRandomScene(random), nil
	case "demo":
		return scene.NewDemoScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (available: 'random', 'demo')", name)
	}
}
