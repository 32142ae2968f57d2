package charts

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}), image.Point{}, draw.Src)
	return img
}

// drawCaption writes text near the top-left corner on a light box.
func drawCaption(img *image.RGBA, text string) *image.RGBA {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	pad := 6
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: img, Src: image.NewUniform(color.RGBA{R: 51, G: 51, B: 51, A: 255}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 16
	y := b.Min.Y + 16 + face.Metrics().Ascent.Ceil()
	bg := image.NewUniform(color.RGBA{R: 230, G: 230, B: 230, A: 255})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2+face.Metrics().Descent.Ceil())
	draw.Draw(img, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return img
}

// placeholder is written instead of a chart when there is nothing finite to plot.
func placeholder(w, h int, title string) image.Image {
	return drawCaption(blank(w, h), title+": no data")
}
