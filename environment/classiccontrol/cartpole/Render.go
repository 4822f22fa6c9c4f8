package cartpole

import (
	"fmt"
	"log"
	"math"

	"gorgonia.org/tensor"

	env "github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/environment/render"
)

const (
	poleWidth  float64 = 10.0
	cartWidth  float64 = 50.0
	cartHeight float64 = 30.0
)

// Render renders the current state of the environment. In RGBArray
// render mode, the frame is returned as a 400 × 600 × 3 tensor. In
// Human render mode, the frame is presented on the environment's
// surface, which is created on the first call to Render. Rendering
// before the first reset gives a blank frame.
func (c *CartPole) Render() (*tensor.Dense, error) {
	mode := c.RenderMode()
	if mode == env.NoRender {
		log.Printf("render: you are calling render() without specifying " +
			"any render mode")
		return nil, nil
	}

	if c.canvas == nil {
		c.canvas = render.NewCanvas(ScreenWidth, ScreenHeight)
	}
	if c.state == nil {
		// Nothing to draw until the first reset
		c.canvas.SetRGB(1, 1, 1)
		c.canvas.Clear()
	} else {
		c.draw()
	}

	if mode == env.RGBArray {
		return c.canvas.Frame(), nil
	}

	if c.surface == nil {
		surface, err := c.newSurface()
		if err != nil {
			return nil, fmt.Errorf("render: could not create surface: %v", err)
		}
		c.surface = surface
	}
	if err := c.surface.Present(c.canvas.Image()); err != nil {
		return nil, fmt.Errorf("render: %v", err)
	}
	return nil, nil
}

// Close releases the render surface, if one was created
func (c *CartPole) Close() error {
	c.canvas = nil
	if c.surface == nil {
		return nil
	}

	err := c.surface.Close()
	c.surface = nil
	if err != nil {
		return fmt.Errorf("close: %v", err)
	}
	return nil
}

// draw draws the current state on the canvas
func (c *CartPole) draw() {
	dc := c.canvas
	width, height := float64(ScreenWidth), float64(ScreenHeight)

	worldWidth := XThreshold * 2
	scale := width / worldWidth
	poleLen := scale * (2 * HalfPoleLength)

	x, th := c.state.AtVec(0), c.state.AtVec(2)
	axleOffset := cartHeight / 4.0
	cartX := x*scale + width/2.0
	cartY := height - 100

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Track
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	dc.DrawLine(0, cartY, width, cartY)
	dc.Stroke()

	// Cart
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(cartX-cartWidth/2, cartY-cartHeight/2, cartWidth,
		cartHeight)
	dc.Fill()

	// Pole, rotated about the axle. The canvas y-axis points down, so an
	// upright pole extends towards negative y.
	l, r := -poleWidth/2, poleWidth/2
	t, b := -(poleLen - poleWidth/2), poleWidth/2
	corners := [][2]float64{{l, b}, {l, t}, {r, t}, {r, b}}

	cos, sin := math.Cos(th), math.Sin(th)
	dc.ClearPath()
	for _, corner := range corners {
		px := corner[0]*cos - corner[1]*sin + cartX
		py := corner[0]*sin + corner[1]*cos + cartY - axleOffset
		dc.LineTo(px, py)
	}
	dc.ClosePath()
	dc.SetHexColor("#ca9865")
	dc.Fill()

	// Axle
	dc.DrawCircle(cartX, cartY-axleOffset, poleWidth/2)
	dc.SetHexColor("#8184cb")
	dc.Fill()
}
