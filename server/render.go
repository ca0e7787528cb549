package server

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/kardolus/busplug/classifier"
)

//go:embed templates/index.html
var templates embed.FS

type page struct {
	StopID     string
	StopName   string
	Prediction string
}

func parseTemplate() (*template.Template, error) {
	return template.ParseFS(templates, "templates/index.html")
}

// SplitResult separates a lookup result into stop name and prediction. Results
// without the delimiter are messages and are returned whole as the stop name.
func SplitResult(result string) (string, string) {
	stopName, prediction, found := strings.Cut(result, classifier.Delimiter)
	if !found {
		return result, ""
	}
	return stopName, prediction
}

func render(t *template.Template, stopID, result string) ([]byte, error) {
	stopName, prediction := SplitResult(result)

	var buf bytes.Buffer
	if err := t.Execute(&buf, page{StopID: stopID, StopName: stopName, Prediction: prediction}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
