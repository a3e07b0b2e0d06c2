package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/joegreene/go-raytracer/pkg/core"
)

func testCameraConfig(perspective bool) CameraConfig {
	return CameraConfig{
		Location:    core.NewPoint(0, 0, 0),
		Gaze:        core.NewDirection(0, 0, -1),
		Up:          core.NewDirection(0, 1, 0),
		Left:        -1,
		Right:       1,
		Bottom:      -1,
		Top:         1,
		Distance:    1,
		Perspective: perspective,
	}
}

func TestCamera_CenterPixelLooksDownGaze(t *testing.T) {
	camera, err := NewCamera(testCameraConfig(true))
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	// A 1x1 image has its single pixel center at the viewport center.
	ray := camera.GenerateRay(0, 0, 1, 1)

	expected := core.NewDirection(0, 0, -1)
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
	if ray.Origin.Subtract(core.NewPoint(0, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected origin at camera location, got %v", ray.Origin)
	}
}

func TestCamera_PerspectiveRaysShareOrigin(t *testing.T) {
	camera, err := NewCamera(testCameraConfig(true))
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	corner := camera.GenerateRay(0, 0, 10, 10)
	center := camera.GenerateRay(5, 5, 10, 10)

	if corner.Origin != center.Origin {
		t.Errorf("Perspective rays must share the camera location, got %v and %v", corner.Origin, center.Origin)
	}
	if corner.Direction.Subtract(center.Direction).Length() < 1e-9 {
		t.Error("Perspective rays through different pixels should diverge")
	}
	if math.Abs(corner.Direction.Length()-1) > 1e-9 {
		t.Errorf("Perspective directions should be normalized, got length %g", corner.Direction.Length())
	}
}

func TestCamera_OrthographicDirectionConstant(t *testing.T) {
	camera, err := NewCamera(testCameraConfig(false))
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	expected := core.NewDirection(0, 0, -1)
	var origins []core.Vec4
	for _, px := range [][2]int{{0, 0}, {9, 0}, {0, 9}, {5, 5}} {
		ray := camera.GenerateRay(px[0], px[1], 10, 10)
		if ray.Direction.Subtract(expected).Length() > 1e-9 {
			t.Errorf("Orthographic direction should be constant %v, got %v at pixel %v", expected, ray.Direction, px)
		}
		origins = append(origins, ray.Origin)
	}

	if origins[0] == origins[3] {
		t.Error("Orthographic origins should slide across the viewport")
	}
}

func TestCamera_PixelCenterMapping(t *testing.T) {
	// With l=-1, r=1 and width 2, pixel 0 centers at su=-0.5 and pixel 1
	// at su=+0.5. Orthographic origins expose the mapping directly.
	camera, err := NewCamera(testCameraConfig(false))
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	left := camera.GenerateRay(0, 0, 2, 2)
	right := camera.GenerateRay(1, 0, 2, 2)

	if math.Abs(left.Origin.X+0.5) > 1e-9 {
		t.Errorf("Expected pixel 0 at su=-0.5, got origin x=%g", left.Origin.X)
	}
	if math.Abs(right.Origin.X-0.5) > 1e-9 {
		t.Errorf("Expected pixel 1 at su=+0.5, got origin x=%g", right.Origin.X)
	}
	if math.Abs(left.Origin.Y+0.5) > 1e-9 {
		t.Errorf("Expected row 0 at sv=-0.5, got origin y=%g", left.Origin.Y)
	}
}

func TestNewCamera_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CameraConfig)
		wantErr error
	}{
		{
			name:    "direction as location",
			mutate:  func(c *CameraConfig) { c.Location = core.NewDirection(0, 0, 0) },
			wantErr: core.ErrCoordinateTag,
		},
		{
			name:    "point as gaze",
			mutate:  func(c *CameraConfig) { c.Gaze = core.NewPoint(0, 0, -1) },
			wantErr: core.ErrCoordinateTag,
		},
		{
			name:    "left bound not negative",
			mutate:  func(c *CameraConfig) { c.Left = 0 },
			wantErr: core.ErrInvalidGeometry,
		},
		{
			name:    "bounds out of order",
			mutate:  func(c *CameraConfig) { c.Bottom = 2 },
			wantErr: core.ErrInvalidGeometry,
		},
		{
			name:    "non-positive distance",
			mutate:  func(c *CameraConfig) { c.Distance = 0 },
			wantErr: core.ErrInvalidGeometry,
		},
		{
			name:    "zero gaze",
			mutate:  func(c *CameraConfig) { c.Gaze = core.NewDirection(0, 0, 0) },
			wantErr: core.ErrInvalidGeometry,
		},
		{
			name:    "up parallel to gaze",
			mutate:  func(c *CameraConfig) { c.Up = core.NewDirection(0, 0, 1) },
			wantErr: core.ErrInvalidGeometry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCameraConfig(true)
			tt.mutate(&config)
			_, err := NewCamera(config)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
