package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rkoval/go-weekend-raytracer/pkg/core"
)

func TestNewRandomScene(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	s := NewRandomScene(random)

	world, err := s.BuildWorld(random)
	if err != nil {
		t.Fatalf("Unexpected build error: %v", err)
	}

	// Ground + three unit spheres + the grid (22x22 minus the spheres
	// skipped near the large glass sphere's spot).
	count := world.ObjectCount()
	if count < 400 || count > 488 {
		t.Errorf("Expected between 400 and 488 objects, got %d", count)
	}

	box, ok := world.BoundingBox()
	if !ok {
		t.Fatal("Expected a bounded world")
	}
	if box.Min.Y > -2000 {
		t.Errorf("Expected root box to reach the ground sphere's bottom, got min %v", box.Min)
	}

	if s.CameraConfig.VFov != 20 {
		t.Errorf("Expected vertical FOV 20, got %v", s.CameraConfig.VFov)
	}
	if s.CameraConfig.FocusDistance != 10 {
		t.Errorf("Expected focus distance 10, got %v", s.CameraConfig.FocusDistance)
	}
}

func TestNewRandomScene_Deterministic(t *testing.T) {
	first := NewRandomScene(rand.New(rand.NewSource(7)))
	second := NewRandomScene(rand.New(rand.NewSource(7)))

	firstWorld, err := first.BuildWorld(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Unexpected build error: %v", err)
	}
	secondWorld, err := second.BuildWorld(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Unexpected build error: %v", err)
	}

	if firstWorld.ObjectCount() != secondWorld.ObjectCount() {
		t.Errorf("Expected identical object counts, got %d and %d",
			firstWorld.ObjectCount(), secondWorld.ObjectCount())
	}
}

func TestNewDemoScene(t *testing.T) {
	s := NewDemoScene()

	random := rand.New(rand.NewSource(1))
	world, err := s.BuildWorld(random)
	if err != nil {
		t.Fatalf("Unexpected build error: %v", err)
	}

	if world.ObjectCount() != 5 {
		t.Errorf("Expected 5 objects, got %d", world.ObjectCount())
	}

	// A ray down the -z axis from in front of the center sphere hits its
	// near surface.
	ray := core.Ray{Origin: core.NewVec3(0, 0, 1), Direction: core.NewVec3(0, 0, -1)}
	event, ok := world.Hit(random, ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected a hit on the center sphere")
	}
	if math.Abs(event.Record.T-1.5) > 1e-9 {
		t.Errorf("Expected hit at t=1.5, got %v", event.Record.T)
	}
	if event.Scatter == nil {
		t.Error("Expected the diffuse sphere to scatter")
	}
}
