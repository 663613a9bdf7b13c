package render

import (
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/fogleman/gg"
)

// Surface is the minimal drawing capability the painters need: solid and
// gradient fills, rounded rectangles, sector arcs, text, PNG encoding.
// Keeping painters on this interface keeps all layout logic independent of
// the concrete canvas.
type Surface interface {
	Size() (w, h int)
	SetHexColor(hex string)
	SetRGBA(r, g, b, a float64)
	LinearGradient(x0, y0, x1, y1 float64, from, to string)
	FillRect(x, y, w, h float64)
	FillRoundedRect(x, y, w, h, radius float64)
	StrokeRect(x, y, w, h, lineWidth float64)
	FillSector(cx, cy, radius, start, end float64)
	FillCircle(cx, cy, radius float64)
	SetFontSize(points float64)
	Text(s string, x, y float64)
	TextCentered(s string, x, y float64)
	EncodePNG(w io.Writer) error
}

// fontPath resolves once: an explicit CHART_FONT wins, then common system
// faces. When nothing resolves the surface falls back to the built-in
// bitmap font, which keeps rendering usable in minimal containers.
var fontPath = resolveFontPath()

func resolveFontPath() string {
	candidates := []string{
		os.Getenv("CHART_FONT"),
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

type ggSurface struct {
	dc *gg.Context
	w  int
	h  int
}

// NewSurface creates an offscreen drawing surface of the given pixel size.
func NewSurface(w, h int) Surface {
	return &ggSurface{dc: gg.NewContext(w, h), w: w, h: h}
}

func (s *ggSurface) Size() (int, int) { return s.w, s.h }

func (s *ggSurface) SetHexColor(hex string) { s.dc.SetHexColor(hex) }

func (s *ggSurface) SetRGBA(r, g, b, a float64) { s.dc.SetRGBA(r, g, b, a) }

func (s *ggSurface) LinearGradient(x0, y0, x1, y1 float64, from, to string) {
	grad := gg.NewLinearGradient(x0, y0, x1, y1)
	grad.AddColorStop(0, parseHex(from))
	grad.AddColorStop(1, parseHex(to))
	s.dc.SetFillStyle(grad)
}

func (s *ggSurface) FillRect(x, y, w, h float64) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *ggSurface) FillRoundedRect(x, y, w, h, radius float64) {
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}
	s.dc.DrawRoundedRectangle(x, y, w, h, radius)
	s.dc.Fill()
}

func (s *ggSurface) StrokeRect(x, y, w, h, lineWidth float64) {
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Stroke()
}

func (s *ggSurface) FillSector(cx, cy, radius, start, end float64) {
	s.dc.MoveTo(cx, cy)
	s.dc.DrawArc(cx, cy, radius, start, end)
	s.dc.ClosePath()
	s.dc.Fill()
}

func (s *ggSurface) FillCircle(cx, cy, radius float64) {
	s.dc.DrawCircle(cx, cy, radius)
	s.dc.Fill()
}

func (s *ggSurface) SetFontSize(points float64) {
	if fontPath == "" {
		return
	}
	// LoadFontFace failing leaves the previous face in place, which is fine.
	_ = s.dc.LoadFontFace(fontPath, points)
}

func (s *ggSurface) Text(text string, x, y float64) {
	s.dc.DrawString(text, x, y)
}

func (s *ggSurface) TextCentered(text string, x, y float64) {
	s.dc.DrawStringAnchored(text, x, y, 0.5, 0)
}

func (s *ggSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func parseHex(hex string) color.Color {
	if len(hex) == 7 && hex[0] == '#' {
		r, errR := strconv.ParseUint(hex[1:3], 16, 8)
		g, errG := strconv.ParseUint(hex[3:5], 16, 8)
		b, errB := strconv.ParseUint(hex[5:7], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
		}
	}
	return color.White
}
