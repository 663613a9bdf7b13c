package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"inboxzero-be/internal/models"
)

// The print path produces no persisted file: a minimal standalone page
// embeds the chart image and invokes the platform print dialog on load.
var printTmpl = template.Must(template.New("print").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <style>
      body {
        margin: 0;
        background: #060806;
        color: #efffec;
        font-family: "Space Grotesk", sans-serif;
        display: grid;
        place-items: center;
        min-height: 100vh;
      }
      main {
        width: min(1000px, calc(100% - 2rem));
      }
      img {
        width: 100%;
        border: 1px solid rgba(114, 214, 255, 0.3);
        border-radius: 12px;
      }
      @media print {
        body {
          background: white;
        }
      }
    </style>
  </head>
  <body>
    <main>
      <img src="{{.DataURL}}" alt="{{.Title}}" />
    </main>
    <script>
      window.onload = () => window.print();
    </script>
  </body>
</html>
`))

type printData struct {
	Title   string
	DataURL template.URL
}

// PrintDocument renders the named chart and wraps it in the auto-printing
// HTML document.
func PrintDocument(chart string, snap *models.AnalyticsSnapshot) ([]byte, error) {
	png, err := PNG(chart, snap)
	if err != nil {
		return nil, err
	}

	data := printData{
		Title:   Title(chart),
		DataURL: template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
	}

	var buf bytes.Buffer
	if err := printTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render print document: %w", err)
	}
	return buf.Bytes(), nil
}
