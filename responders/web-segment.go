package responders

import (
	"html/template"
	"net/http"

	"github.com/busted-ai/busted-predictor-frontend/controllers"
)

var segmentTemplate = template.Must(template.New("segment").Funcs(template.FuncMap{
	"BestSegment": func(scores []float64) int {
		best := 0
		for i, s := range scores {
			if s > scores[best] {
				best = i
			}
		}
		return best + 1
	},
}).Parse(
	`<html>
<head>
	<link href="https://fonts.googleapis.com/css?family=Roboto|Roboto+Slab" rel="stylesheet">
	<link rel="stylesheet" type="text/css" href="/static/busted.css" />
</head>
<body class="segment-page">
<h1>BUSTED Customer Segments</h1>
<form id="segment-form" action="/segment" method="post">
	<div>Paste a CSV table of customer account attributes with a header row, or enter a single account as comma-separated values.</div>
	<textarea name="table" placeholder="CSV rows go here..." class="table-text-input">{{.TableStr}}</textarea>
	<input type="text" placeholder="Or one row of values..." name="row" value="{{.RowStr}}" class="row-text-input"></input>
	<input type="submit" value="Segment"></input>
</form>
{{if .DroppedColumns}}<div class="dropped-columns-msg">Ignored non-numeric columns:{{range .DroppedColumns}} <span class="dropped-column">{{.}}</span>{{end}}</div>{{end}}
{{if .Prediction}}<div class="segment-result-msg">
	<table class="segment-result-table">
		<tr><th>Row</th><th>Best segment</th><th>Affinities</th></tr>
		{{range $i, $scores := .Prediction.Scores}}<tr class="segment-result-row"><td>{{$i}}</td><td class="segment-best">segment_{{BestSegment $scores}}</td><td class="segment-scores">{{range $scores}}<span class="segment-score">{{printf "%.3f" .}}</span> {{end}}</td></tr>
		{{end}}
	</table>
	<form action="/report" method="post" class="report-form">
		<input type="hidden" name="model" value="segment"></input>
		<input type="hidden" name="format" value="csv"></input>
		<input type="hidden" name="table" value="{{.TableStr}}"></input>
		<input type="hidden" name="row" value="{{.RowStr}}"></input>
		<input type="submit" value="Download CSV report"></input>
	</form>
	<form action="/report" method="post" class="report-form">
		<input type="hidden" name="model" value="segment"></input>
		<input type="hidden" name="format" value="pdf"></input>
		<input type="hidden" name="table" value="{{.TableStr}}"></input>
		<input type="hidden" name="row" value="{{.RowStr}}"></input>
		<input type="submit" value="Download PDF summary"></input>
	</form>
</div>{{end}}
{{if .PredictionErr}}<div class="prediction-fault-msg">Fault segmenting submitted rows!<div id="prediction-fault">{{.PredictionErr}}</div></div>{{end}}
</body>
</html>`))

type WebSegmentResponder struct{}

func (_ *WebSegmentResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebSegmentResponder) OnResult(w http.ResponseWriter, r *controllers.SegmentResult) {
	segmentTemplate.Execute(w, r)
}
