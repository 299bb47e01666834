package controllers

import (
	"context"
	"net/http"

	"github.com/busted-ai/busted-predictor-frontend/data"
	"github.com/busted-ai/busted-predictor-frontend/report"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Report serves the downloadable artifacts: the CSV export of a
// prediction run, and the single-row PDF document.
type Report struct {
	Fraud   FraudPredictor
	Segment SegmentPredictor
}

type ReportInput struct {
	Model    string
	Format   string
	TableStr string
	RowStr   string
}

type ReportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type WebReportResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnError(w http.ResponseWriter, err error)
	OnReport(w http.ResponseWriter, f *ReportFile)
}

func (c *Report) HandleFunc(cm ContextMaker, resp WebReportResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		input := &ReportInput{
			Model:    r.FormValue("model"),
			Format:   r.FormValue("format"),
			TableStr: r.FormValue("table"),
			RowStr:   r.FormValue("row"),
		}
		f, err := c.handle(ctx, input)
		if err != nil {
			resp.OnError(w, err)
			return
		}
		resp.OnReport(w, f)
	}
}

func (c *Report) handle(ctx context.Context, input *ReportInput) (*ReportFile, error) {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Report",
		"model":      input.Model,
		"format":     input.Format,
	})
	l := ctxlogrus.Get(ctx)

	var schema []string
	switch input.Model {
	case "fraud":
		schema = data.FraudFeatures
	case "segment":
		schema = data.SegmentFeatures
	default:
		return nil, errors.Errorf("unknown report model %q", input.Model)
	}

	t, dropped, err := readInputTable(input.TableStr, input.RowStr, schema)
	if err != nil {
		return nil, err
	}
	if t == nil || t.RowCount() == 0 {
		return nil, errors.New("no table submitted for report")
	}
	if len(dropped) > 0 {
		l.Warnf("Dropped non-numeric columns: %v", dropped)
	}

	switch input.Format {
	case "csv":
		return c.tabularReport(ctx, input.Model, t)
	case "pdf":
		return documentReport(input.Model, t)
	default:
		return nil, errors.Errorf("unknown report format %q", input.Format)
	}
}

func (c *Report) tabularReport(ctx context.Context, model string, t *data.Table) (*ReportFile, error) {
	if model == "fraud" {
		p, err := c.Fraud.PredictFraud(ctx, t)
		if err != nil {
			return nil, err
		}
		body, err := report.FraudCSV(p)
		if err != nil {
			return nil, err
		}
		return &ReportFile{Filename: "fraud-report.csv", ContentType: "text/csv", Body: body}, nil
	}

	p, err := c.Segment.PredictSegments(ctx, t)
	if err != nil {
		return nil, err
	}
	body, err := report.SegmentCSV(p)
	if err != nil {
		return nil, err
	}
	return &ReportFile{Filename: "segment-report.csv", ContentType: "text/csv", Body: body}, nil
}

// documentReport renders the submitted columns themselves; it does not run
// inference. Only the first row ever appears in the document.
func documentReport(model string, t *data.Table) (*ReportFile, error) {
	title := "Transaction summary"
	filename := "transaction-summary.pdf"
	if model == "segment" {
		title = "Customer summary"
		filename = "customer-summary.pdf"
	}

	body, err := report.DocumentPDF(title, t)
	if err != nil {
		return nil, err
	}
	return &ReportFile{Filename: filename, ContentType: "application/pdf", Body: body}, nil
}
