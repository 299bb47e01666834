package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/busted-ai/busted-predictor-frontend/data"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

// DocumentPDF renders the first row of a table as a single fixed-font
// page, one "name: value" line per column. Multi-row tables render only
// their first row; that is the documented contract of this artifact.
func DocumentPDF(title string, t *data.Table) ([]byte, error) {
	lines, err := documentLines(t)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Courier", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Courier", "", 11)
	for _, line := range lines {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "report couldn't render pdf document")
	}
	return buf.Bytes(), nil
}

// documentLines builds the "name: value" lines for the first row.
func documentLines(t *data.Table) ([]string, error) {
	if t.RowCount() == 0 {
		return nil, errors.New("report needs at least one row to render a document")
	}

	lines := make([]string, 0, t.Width())
	for j, name := range t.Columns {
		lines = append(lines, fmt.Sprintf("%s: %s", name, strconv.FormatFloat(t.Rows[0][j], 'f', -1, 64)))
	}
	return lines, nil
}
