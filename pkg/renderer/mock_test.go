package renderer

import (
	"fmt"
	"testing"

	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/geometry"
	"github.com/WillDeJs/ray-tracing/pkg/material"
)

// MockScene for renderer testing
type MockScene struct {
	camera *geometry.Camera
	world  *geometry.HitList
	config core.SamplingConfig
}

func (m *MockScene) GetCamera() *geometry.Camera            { return m.camera }
func (m *MockScene) GetWorld() geometry.Shape               { return m.world }
func (m *MockScene) GetSamplingConfig() core.SamplingConfig { return m.config }

// MockIntegrator returns a fixed color, or panics with panicWith when set
type MockIntegrator struct {
	returnColor core.Color
	panicWith   interface{}
}

func (m *MockIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Color {
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	return m.returnColor
}

// recordingLogger keeps every formatted message
type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

// createMockScene creates a unit lambertian sphere at the origin seen by a
// pinhole camera at (0,0,4)
func createMockScene(t *testing.T, width, height, samples int) *MockScene {
	t.Helper()

	camera, err := geometry.NewCamera(geometry.CameraConfig{
		Center:        core.NewPoint3(0, 0, 4),
		LookAt:        core.NewPoint3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   float64(width) / float64(height),
		VFov:          90,
		FocusDistance: 4,
	})
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	sphere, err := geometry.NewSphere(core.NewPoint3(0, 0, 0), 1, material.NewLambertian(core.NewColor(200, 100, 50)))
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}

	return &MockScene{
		camera: camera,
		world:  geometry.NewHitList(sphere),
		config: core.SamplingConfig{Width: width, Height: height, SamplesPerPixel: samples, MaxDepth: 50},
	}
}
