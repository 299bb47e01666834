package responders

import (
	"html/template"
	"net/http"

	"github.com/busted-ai/busted-predictor-frontend/controllers"
)

var analyzeTemplate = template.Must(template.New("analyze").Parse(
	`<html>
<head>
	<link href="https://fonts.googleapis.com/css?family=Roboto|Roboto+Slab" rel="stylesheet">
	<link rel="stylesheet" type="text/css" href="/static/busted.css" />
</head>
<body class="analyze-page">
<h1>BUSTED Fraud Analyzer</h1>
<form id="analyze-form" action="/" method="post">
	<div>Paste a CSV table with a header row, or enter a single transaction as comma-separated values. Non-numeric columns are ignored and the layout is adjusted to the model automatically.</div>
	<textarea name="table" placeholder="CSV rows go here..." class="table-text-input">{{.TableStr}}</textarea>
	<input type="text" placeholder="Or one row of values..." name="row" value="{{.RowStr}}" class="row-text-input"></input>
	<input type="submit" value="Analyze"></input>
</form>
{{if .DroppedColumns}}<div class="dropped-columns-msg">Ignored non-numeric columns:{{range .DroppedColumns}} <span class="dropped-column">{{.}}</span>{{end}}</div>{{end}}
{{if .Prediction}}<div class="fraud-result-msg">
	{{if index .Prediction.Labels 0}}<div class="fraud-verdict fraud-alert">FRAUD DETECTED</div>{{else}}<div class="fraud-verdict fraud-clear">LEGITIMATE TRANSACTION</div>{{end}}
	<table class="fraud-result-table">
		<tr><th>Row</th><th>Probability</th><th>Label</th></tr>
		{{range $i, $p := .Prediction.Probabilities}}<tr class="fraud-result-row"><td>{{$i}}</td><td class="fraud-probability">{{printf "%.3f" $p}}</td><td class="fraud-label">{{if index $.Prediction.Labels $i}}fraud{{else}}ok{{end}}</td></tr>
		{{end}}
	</table>
	<form action="/report" method="post" class="report-form">
		<input type="hidden" name="model" value="fraud"></input>
		<input type="hidden" name="format" value="csv"></input>
		<input type="hidden" name="table" value="{{.TableStr}}"></input>
		<input type="hidden" name="row" value="{{.RowStr}}"></input>
		<input type="submit" value="Download CSV report"></input>
	</form>
	<form action="/report" method="post" class="report-form">
		<input type="hidden" name="model" value="fraud"></input>
		<input type="hidden" name="format" value="pdf"></input>
		<input type="hidden" name="table" value="{{.TableStr}}"></input>
		<input type="hidden" name="row" value="{{.RowStr}}"></input>
		<input type="submit" value="Download PDF summary"></input>
	</form>
</div>{{end}}
{{if .PredictionErr}}<div class="prediction-fault-msg">Fault analyzing submitted rows!<div id="prediction-fault">{{.PredictionErr}}</div></div>{{end}}
{{if .ExampleList}}<div class="example-list">
	<div class="example-headers">
		<div class="example-header">Example transaction</div>
		<div class="example-header">Fraud probability</div>
	</div>
	{{range .ExampleList}}
		<div class="example">
			<span class="example-title">{{.Title}}</span>
			{{if .ResultErr}}<span class="example-result-error">{{.ResultErr}}</span>{{else}}<span class="example-result">{{printf "%.3f" .Probability}}{{if .Label}} (fraud){{end}}</span>{{end}}
		</div>
	{{end}}
</div>{{end}}
{{if .ExampleListErr}}<div class="example-list-fault-msg">{{.ExampleListErr}}</div>{{end}}
</body>
</html>`))

type WebAnalyzeResponder struct{}

func (_ *WebAnalyzeResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebAnalyzeResponder) OnResult(w http.ResponseWriter, r *controllers.AnalyzeResult) {
	analyzeTemplate.Execute(w, r)
}
