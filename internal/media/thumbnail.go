// Package media derives public preview images from uploaded originals. Raster
// images get a size-capped, visibly watermarked JPEG; videos get a static
// play-button placeholder instead of a real frame grab.
package media

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Thumbnailer renders watermarked previews.
type Thumbnailer struct {
	MaxWidth      int
	MaxHeight     int
	JPEGQuality   int
	WatermarkText string
}

// NewThumbnailer returns a thumbnailer with the default preview policy.
func NewThumbnailer() *Thumbnailer {
	return &Thumbnailer{
		MaxWidth:      800,
		MaxHeight:     600,
		JPEGQuality:   80,
		WatermarkText: "© Portfolio Preview",
	}
}

// ImageThumbnail reads the original raster image, scales it down to fit the
// size cap without enlargement, tiles the watermark text over it and writes a
// JPEG preview to outputPath.
func (t *Thumbnailer) ImageThumbnail(inputPath, outputPath string) error {
	src, err := imaging.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}

	resized := imaging.Fit(src, t.MaxWidth, t.MaxHeight, imaging.Lanczos)
	preview := imaging.Clone(resized)
	t.tileWatermark(preview)

	if err := imaging.Save(preview, outputPath, imaging.JPEGQuality(t.JPEGQuality)); err != nil {
		return fmt.Errorf("save thumbnail: %w", err)
	}
	return nil
}

// VideoThumbnail writes a static placeholder preview for video uploads.
func (t *Thumbnailer) VideoThumbnail(outputPath string) error {
	w, h := t.MaxWidth, t.MaxHeight
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.NRGBA{R: 0xF3, G: 0xF4, B: 0xF6, A: 0xFF}), image.Point{}, draw.Src)

	cx, cy := w/2, h/2
	fillCircle(canvas, cx, cy, 60, color.NRGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF})
	fillPlayTriangle(canvas, cx, cy, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	drawText(canvas, cx, cy+90, "Video Preview", color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xFF})
	drawText(canvas, cx, cy+120, t.WatermarkText, color.NRGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF})

	if err := imaging.Save(canvas, outputPath, imaging.JPEGQuality(t.JPEGQuality)); err != nil {
		return fmt.Errorf("save placeholder: %w", err)
	}
	return nil
}

// tileWatermark repeats the watermark text over the whole image in a staggered
// grid so cropping cannot remove it.
func (t *Thumbnailer) tileWatermark(img *image.NRGBA) {
	bounds := img.Bounds()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x50}),
		Face: basicfont.Face7x13,
	}

	row := 0
	for y := bounds.Min.Y + 30; y < bounds.Max.Y; y += 80 {
		offset := 0
		if row%2 == 1 {
			offset = 100
		}
		for x := bounds.Min.X + offset; x < bounds.Max.X; x += 200 {
			drawer.Dot = fixed.P(x, y)
			drawer.DrawString(t.WatermarkText)
		}
		row++
	}
}

func drawText(img *image.NRGBA, cx, y int, text string, c color.NRGBA) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	width := drawer.MeasureString(text)
	drawer.Dot = fixed.Point26_6{X: fixed.I(cx) - width/2, Y: fixed.I(y)}
	drawer.DrawString(text)
}

func fillCircle(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func fillPlayTriangle(img *image.NRGBA, cx, cy int, c color.NRGBA) {
	// Right-pointing triangle centered on the circle.
	for y := -30; y <= 30; y++ {
		half := 40 - (40*abs(y))/30
		for x := -20; x <= -20+half; x++ {
			img.SetNRGBA(cx+x, cy+y, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
