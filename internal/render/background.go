package render

// paintBackground lays down the shared export backdrop: dark gradient,
// hairline border, title header, and the branding caption.
func paintBackground(s Surface, title string) {
	w, h := s.Size()
	fw, fh := float64(w), float64(h)

	s.LinearGradient(0, 0, fw, fh, "#111911", "#0a0f0a")
	s.FillRect(0, 0, fw, fh)

	s.SetRGBA(114/255.0, 214/255.0, 255/255.0, 0.2)
	s.StrokeRect(10.5, 10.5, fw-21, fh-21, 1)

	s.SetHexColor("#72d6ff")
	s.SetFontSize(34)
	s.Text(title, 46, 56)

	s.SetHexColor("#9cb79a")
	s.SetFontSize(16)
	s.Text("InboxZero Heatmap", 48, 84)
}
