package imagegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/lox/cosmicweather/internal/horoscope"
)

var (
	fontTitle   font.Face
	fontHeading font.Face
	fontBody    font.Face
	fontOnce    sync.Once
	fontErr     error
)

func loadFonts() {
	fontOnce.Do(func() {
		regular, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse Go Regular: %w", err)
			return
		}
		bold, err := opentype.Parse(gobold.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse Go Bold: %w", err)
			return
		}

		if fontTitle, err = newFace(bold, 48); err != nil {
			fontErr = fmt.Errorf("create title face: %w", err)
			return
		}
		if fontHeading, err = newFace(bold, 24); err != nil {
			fontErr = fmt.Errorf("create heading face: %w", err)
			return
		}
		if fontBody, err = newFace(regular, 24); err != nil {
			fontErr = fmt.Errorf("create body face: %w", err)
			return
		}
	})
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Card dimensions match the Open Graph image size.
const (
	CardWidth  = 1200
	CardHeight = 630

	margin     = 60
	lineHeight = 32
)

// moodPalettes tints the card background; the first colour is the top of
// the gradient.
var moodPalettes = map[string][2]color.RGBA{
	"energetic":     {{250, 170, 60, 255}, {200, 80, 40, 255}},
	"cozy":          {{70, 80, 110, 255}, {30, 30, 50, 255}},
	"contemplative": {{110, 120, 140, 255}, {50, 55, 70, 255}},
	"serene":        {{170, 200, 230, 255}, {80, 110, 150, 255}},
	"mysterious":    {{90, 90, 110, 255}, {25, 25, 40, 255}},
	"balanced":      {{120, 170, 200, 255}, {50, 90, 120, 255}},
	"intense":       {{80, 50, 100, 255}, {20, 10, 35, 255}},
	"romantic":      {{40, 40, 90, 255}, {10, 10, 30, 255}},
	"restless":      {{140, 170, 170, 255}, {60, 80, 90, 255}},
	"passionate":    {{220, 90, 60, 255}, {110, 20, 30, 255}},
	"refreshing":    {{200, 140, 80, 255}, {90, 60, 40, 255}},
	"sluggish":      {{120, 150, 130, 255}, {50, 70, 60, 255}},
}

var defaultPalette = [2]color.RGBA{{40, 40, 70, 255}, {15, 15, 30, 255}}

// RenderCard draws a horoscope as a PNG card.
func RenderCard(h horoscope.Horoscope) ([]byte, error) {
	loadFonts()
	if fontErr != nil {
		return nil, fmt.Errorf("load fonts: %w", fontErr)
	}

	img := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
	palette, ok := moodPalettes[h.Weather.Mood]
	if !ok {
		palette = defaultPalette
	}
	drawGradient(img, palette[0], palette[1])
	drawGradientOverlay(img)

	white := color.RGBA{255, 255, 255, 255}
	lightGray := color.RGBA{210, 210, 210, 255}

	y := margin + 40
	title := fmt.Sprintf("%s + %s", h.Sign1.Name(), h.Sign2.Name())
	drawText(img, title, margin, y, white, fontTitle)
	y += 44
	weather := fmt.Sprintf("%s, %d°C", h.Weather.Condition, h.Weather.Temperature)
	drawText(img, weather, margin, y, lightGray, fontBody)
	y += 56

	maxWidth := CardWidth - 2*margin
	for _, s := range []struct{ label, text string }{
		{"Climate", h.RelationshipClimate},
		{"Communication", h.Communication},
		{"Activity", h.SuggestedActivity},
	} {
		drawText(img, s.label, margin, y, white, fontHeading)
		y += lineHeight
		for _, line := range wrapText(s.text, fontBody, maxWidth) {
			if y > CardHeight-margin/2 {
				break
			}
			drawText(img, line, margin, y, lightGray, fontBody)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode card: %w", err)
	}
	return buf.Bytes(), nil
}

func drawGradient(img *image.RGBA, top, bottom color.RGBA) {
	bounds := img.Bounds()
	height := float64(bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		p := float64(y-bounds.Min.Y) / height
		c := color.RGBA{
			R: lerp(top.R, bottom.R, p),
			G: lerp(top.G, bottom.G, p),
			B: lerp(top.B, bottom.B, p),
			A: 255,
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func lerp(a, b uint8, p float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*p)
}

// drawGradientOverlay darkens the lower part of the card so body text stays
// readable on bright palettes.
func drawGradientOverlay(img *image.RGBA) {
	bounds := img.Bounds()
	gradientHeight := bounds.Dy() * 3 / 4

	for y := bounds.Max.Y - gradientHeight; y < bounds.Max.Y; y++ {
		progress := float64(y-(bounds.Max.Y-gradientHeight)) / float64(gradientHeight)
		progress = progress * progress
		alpha := progress * 0.6

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			orig := img.RGBAAt(x, y)
			orig.R = uint8(float64(orig.R) * (1 - alpha))
			orig.G = uint8(float64(orig.G) * (1 - alpha))
			orig.B = uint8(float64(orig.B) * (1 - alpha))
			img.SetRGBA(x, y, orig)
		}
	}
}

func drawText(img *image.RGBA, text string, x, y int, col color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// wrapText splits text into lines no wider than maxWidth pixels. A single
// word wider than maxWidth gets a line of its own.
func wrapText(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	limit := fixed.I(maxWidth)
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if font.MeasureString(face, candidate) > limit {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
