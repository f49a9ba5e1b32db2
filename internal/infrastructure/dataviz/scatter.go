// Package dataviz renders the income-vs-credit scatter plot as a standalone
// HTML document. The page pulls plotly.js from its CDN and embeds the data
// and layout as JSON, mirroring a plotly "to_html" export.
package dataviz

import (
	"bytes"
	"fmt"
	"html/template"

	json "github.com/goccy/go-json"

	"github.com/JulienRip/riskbanking/internal/domain/models"
)

const (
	plotTitle        = "Montant de crédit vs revenu"
	xAxisTitle       = "Revenu"
	yAxisTitle       = "Crédit"
	placeholderTitle = "Dataset vide ou colonnes manquantes"
)

var pageTemplate = template.Must(template.New("scatter").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
</head>
<body>
<div id="plot"></div>
<script>
Plotly.newPlot("plot", {{.Data}}, {{.Layout}}, {responsive: true});
</script>
</body>
</html>
`))

type trace struct {
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
	Mode string    `json:"mode"`
	Type string    `json:"type"`
}

type axis struct {
	Title string `json:"title"`
}

type layout struct {
	Title string `json:"title"`
	XAxis axis   `json:"xaxis"`
	YAxis axis   `json:"yaxis"`
}

// BuildScatterHTML renders the scatter document for a set of records. When
// usable is false (empty table or missing columns) it renders the single-dot
// placeholder figure instead.
func BuildScatterHTML(records []models.ClientRecord, usable bool) (string, error) {
	var t trace
	var l layout

	if !usable || len(records) == 0 {
		t = trace{X: []float64{0}, Y: []float64{0}, Mode: "markers", Type: "scatter"}
		l = layout{Title: placeholderTitle}
	} else {
		t = trace{
			X:    make([]float64, 0, len(records)),
			Y:    make([]float64, 0, len(records)),
			Mode: "markers",
			Type: "scatter",
		}
		for _, r := range records {
			t.X = append(t.X, r.IncomeAmount)
			t.Y = append(t.Y, r.CreditAmount)
		}
		l = layout{
			Title: plotTitle,
			XAxis: axis{Title: xAxisTitle},
			YAxis: axis{Title: yAxisTitle},
		}
	}

	dataJSON, err := json.Marshal([]trace{t})
	if err != nil {
		return "", fmt.Errorf("marshal plot data: %w", err)
	}
	layoutJSON, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("marshal plot layout: %w", err)
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, struct {
		Title  string
		Data   template.JS
		Layout template.JS
	}{
		Title:  l.Title,
		Data:   template.JS(dataJSON),
		Layout: template.JS(layoutJSON),
	})
	if err != nil {
		return "", fmt.Errorf("render plot page: %w", err)
	}
	return buf.String(), nil
}
