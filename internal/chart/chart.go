// Package chart renders a day's per-app totals as a horizontal bar chart
// PNG for `sith report --chart`.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ParkerVR/sith/internal/format"
	"github.com/ParkerVR/sith/internal/store"
)

// Entry is one bar in the chart.
type Entry struct {
	App     string
	Seconds float64
}

const (
	chartWidth  = 640
	rowHeight   = 26
	marginX     = 12
	marginTop   = 34
	labelWidth  = 180
	timeWidth   = 76
	barHeight   = 14
)

var (
	bgColor    = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	barColor   = color.RGBA{R: 0, G: 212, B: 255, A: 255}
	trackColor = color.RGBA{R: 58, G: 58, B: 66, A: 255}
	textColor  = color.RGBA{R: 245, G: 245, B: 247, A: 255}
)

// Entries converts a day summary into bars sorted by time, longest first.
func Entries(day *store.DaySummary) []Entry {
	if day == nil {
		return nil
	}
	entries := make([]Entry, 0, len(day.ByApp))
	for app, sec := range day.ByApp {
		entries = append(entries, Entry{App: app, Seconds: sec})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Seconds != entries[j].Seconds {
			return entries[i].Seconds > entries[j].Seconds
		}
		return entries[i].App < entries[j].App
	})
	return entries
}

// Render draws the chart. The image height scales with the entry count;
// an empty entry list still yields a titled image.
func Render(title string, entries []Entry) *image.RGBA {
	height := marginTop + len(entries)*rowHeight + marginX
	img := image.NewRGBA(image.Rect(0, 0, chartWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bgColor), image.Point{}, draw.Src)

	drawString(img, title, marginX, 20)

	var max float64
	for _, e := range entries {
		if e.Seconds > max {
			max = e.Seconds
		}
	}

	barX := marginX + labelWidth
	barSpan := chartWidth - barX - timeWidth - marginX
	for i, e := range entries {
		y := marginTop + i*rowHeight

		drawString(img, truncate(e.App, 24), marginX, y+barHeight-2)

		track := image.Rect(barX, y, barX+barSpan, y+barHeight)
		draw.Draw(img, track, image.NewUniform(trackColor), image.Point{}, draw.Src)

		if max > 0 {
			w := int(e.Seconds / max * float64(barSpan))
			bar := image.Rect(barX, y, barX+w, y+barHeight)
			draw.Draw(img, bar, image.NewUniform(barColor), image.Point{}, draw.Src)
		}

		drawString(img, format.Seconds(int(e.Seconds), format.StyleClock), barX+barSpan+8, y+barHeight-2)
	}
	return img
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode chart: %w", err)
	}
	return f.Close()
}

// drawString renders text at (x, y) using the fixed 7x13 face; y is the
// text baseline.
func drawString(img *image.RGBA, text string, x, y int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
