package responders

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/busted-ai/busted-predictor-frontend/controllers"
)

type WebReportResponder struct {
	ExposeErrors bool
}

func (r *WebReportResponder) OnContextError(w http.ResponseWriter, err error) {
	if r.ExposeErrors {
		http.Error(w, fmt.Sprintf("Internal Server Error: %s", err), 500)
	} else {
		http.Error(w, "Internal Server Error", 500)
	}
}

func (r *WebReportResponder) OnError(w http.ResponseWriter, err error) {
	if r.ExposeErrors {
		http.Error(w, fmt.Sprintf("Internal Server Error: %s", err), 500)
	} else {
		http.Error(w, "Internal Server Error", 500)
	}
}

func (r *WebReportResponder) OnReport(w http.ResponseWriter, f *controllers.ReportFile) {
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", strconv.Quote(f.Filename)))
	w.Write(f.Body)
}
