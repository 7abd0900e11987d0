package sim

import (
	"fmt"

	"github.com/ametelin/tui-simlab/internal/core"
)

// cellAspect compensates for terminal cells being roughly twice as tall as
// they are wide, so a unit circle in world space looks round on screen.
const cellAspect = 0.5

// CameraConfig holds the tunable camera parameters.
type CameraConfig struct {
	ZoomMin        float64   // Lower zoom bound, applied per axis
	ZoomMax        float64   // Upper zoom bound, applied per axis
	ZoomStep       float64   // Zoom change per wheel tick
	PanSensitivity float64   // Divisor for pan deltas, higher is slower
	Home           core.Vec2 // World point the focus control returns to
	Offset         core.Vec2 // Fixed screen-space offset from center
}

// DefaultCameraConfig returns camera parameters that work for the stock
// entity layouts.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		ZoomMin:        0.1,
		ZoomMax:        8.0,
		ZoomStep:       0.25,
		PanSensitivity: 1.0,
	}
}

// Camera is a 2D pan/zoom transform applied when rendering world-space
// entities to screen cells. Zoom is a per-axis scale factor clamped to the
// configured box; Target is the world point mapped to screen center plus
// Offset.
type Camera struct {
	Zoom   core.Vec2
	Target core.Vec2
	Offset core.Vec2

	cfg     CameraConfig
	screenW int
	screenH int
}

// NewCamera creates a camera over a screen of the given cell dimensions,
// starting at zoom 1 and targeting the home point.
func NewCamera(cfg CameraConfig, screenW, screenH int) *Camera {
	if cfg.ZoomMax <= cfg.ZoomMin {
		cfg = DefaultCameraConfig()
	}
	if cfg.PanSensitivity <= 0 {
		cfg.PanSensitivity = 1.0
	}
	return &Camera{
		Zoom:    core.V(1, 1).ClampPerAxis(cfg.ZoomMin, cfg.ZoomMax),
		Target:  cfg.Home,
		Offset:  cfg.Offset,
		cfg:     cfg,
		screenW: screenW,
		screenH: screenH,
	}
}

// Resize updates the screen dimensions the transform maps onto.
func (c *Camera) Resize(screenW, screenH int) {
	c.screenW = screenW
	c.screenH = screenH
}

// WorldToScreen maps a world-space point to a screen cell.
func (c *Camera) WorldToScreen(w core.Vec2) (int, int) {
	sx := (w.X-c.Target.X)*c.Zoom.X + float64(c.screenW)/2 + c.Offset.X
	sy := (w.Y-c.Target.Y)*c.Zoom.Y*cellAspect + float64(c.screenH)/2 + c.Offset.Y
	return int(sx), int(sy)
}

// ScreenToWorld maps a screen cell back to world space.
func (c *Camera) ScreenToWorld(x, y int) core.Vec2 {
	wx := (float64(x)-float64(c.screenW)/2-c.Offset.X)/c.Zoom.X + c.Target.X
	wy := (float64(y)-float64(c.screenH)/2-c.Offset.Y)/(c.Zoom.Y*cellAspect) + c.Target.Y
	return core.V(wx, wy)
}

// Pan moves the camera target opposite to a pointer delta given in screen
// cells. The delta is scaled inversely by the current zoom and by the pan
// sensitivity, so panning speed is visually uniform at every zoom level.
func (c *Camera) Pan(dx, dy float64) {
	c.Target.X -= dx / (c.Zoom.X * c.cfg.PanSensitivity)
	c.Target.Y -= dy / (c.Zoom.Y * cellAspect * c.cfg.PanSensitivity)
}

// ZoomAt applies wheel ticks at the given screen cell: the target re-centers
// on the world point under the pointer at that instant, then zoom steps in
// the wheel's direction, clamped per axis to the configured box.
func (c *Camera) ZoomAt(x, y, ticks int) {
	if ticks == 0 {
		return
	}
	c.Target = c.ScreenToWorld(x, y)
	delta := c.cfg.ZoomStep * float64(ticks)
	c.Zoom = c.Zoom.Add(core.V(delta, delta)).ClampPerAxis(c.cfg.ZoomMin, c.cfg.ZoomMax)
}

// Focus resets the target to the configured home point without touching the
// zoom.
func (c *Camera) Focus() {
	c.Target = c.cfg.Home
}

// CellRadii converts a world-space radius to per-axis cell radii under the
// current zoom, with the vertical axis compensated for cell aspect.
func (c *Camera) CellRadii(r float64) (rx, ry float64) {
	return r * c.Zoom.X, r * c.Zoom.Y * cellAspect
}

// VisibleRect returns the world-space corners currently on screen, used to
// draw only the grid lines that can be seen.
func (c *Camera) VisibleRect() (min, max core.Vec2) {
	return c.ScreenToWorld(0, 0), c.ScreenToWorld(c.screenW-1, c.screenH-1)
}

// HUD formats the zoom, target and offset for the debug panel.
func (c *Camera) HUD() string {
	return fmt.Sprintf("zoom %s  target %s  offset %s", c.Zoom, c.Target, c.Offset)
}
