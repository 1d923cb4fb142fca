package swgpu

import (
	"image"
	"image/color"
)

// Framebuffer holds the one color attachment and one depth attachment the
// pipeline is specified to draw into. The color plane is row-major,
// 4 bytes (R,G,B,A) per pixel; pixel index = y*Width+x. The depth plane is
// row-major float32, one value per pixel.
//
// Framebuffer is owned by the host for the duration of Execute: the pipeline
// only reads and writes through the view it's given, never retaining it.
type Framebuffer struct {
	Width, Height int
	Color         []uint8
	Depth         []float32
}

// NewFramebuffer allocates a zeroed framebuffer of the given dimensions.
// A zero-dimensional framebuffer (Width or Height == 0) is legal: every loop
// over its pixels simply iterates zero times.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		Color:  make([]uint8, width*height*4),
		Depth:  make([]float32, width*height),
	}
}

// PixelIndex returns the color/depth plane index for pixel (x, y), following
// the framebuffer's row-major layout (pixel index = y*Width+x).
func (f *Framebuffer) PixelIndex(x, y int) int {
	return y*f.Width + x
}

// ColorAt returns the raw 8-bit RGBA channels stored at pixel (x, y).
func (f *Framebuffer) ColorAt(x, y int) (r, g, b, a uint8) {
	i := f.PixelIndex(x, y) * 4
	return f.Color[i], f.Color[i+1], f.Color[i+2], f.Color[i+3]
}

// DepthAt returns the depth value stored at pixel (x, y).
func (f *Framebuffer) DepthAt(x, y int) float32 {
	return f.Depth[f.PixelIndex(x, y)]
}

// ToImage converts the color plane to a standard image.RGBA, e.g. for
// saving to disk with image/png from a host application. This is not used
// by the pipeline itself — it's a convenience for external collaborators.
// (cmd/swgpudemo does not call it: it passes the Framebuffer itself to
// png.Encode through the image.Image methods below.)
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	copy(img.Pix, f.Color)
	return img
}

// At implements image.Image so a Framebuffer can be passed directly to
// image/png or other stdlib image consumers.
func (f *Framebuffer) At(x, y int) color.Color {
	r, g, b, a := f.ColorAt(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
