package main

import (
	"fmt"
	"net/http"

	"github.com/busted-ai/busted-predictor-frontend/controllers"
	"github.com/busted-ai/busted-predictor-frontend/inference"
	"github.com/busted-ai/busted-predictor-frontend/responders"
	"github.com/busted-ai/busted-predictor-frontend/samples"
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type config struct {
	Port             string  `env:"PORT" envDefault:"8080"`
	FraudModelPath   string  `env:"FRAUD_MODEL_PATH" envDefault:"models/fraud.json"`
	SegmentModelPath string  `env:"SEGMENT_MODEL_PATH" envDefault:"models/segment.json"`
	ExposeErrors     bool    `env:"EXPOSE_ERRORS"`
	RequestRate      float64 `env:"REQUEST_RATE" envDefault:"20"`
	RequestBurst     int     `env:"REQUEST_BURST" envDefault:"40"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("Unable to parse configuration: %s", err)
	}

	// The models are loaded once here and shared read-only by every
	// request for the life of the process.
	fraud, err := inference.LoadModel(cfg.FraudModelPath)
	if err != nil {
		logrus.Fatalf("Unable to load fraud model: %s", err)
	}
	segment, err := inference.LoadModel(cfg.SegmentModelPath)
	if err != nil {
		logrus.Fatalf("Unable to load segmentation model: %s", err)
	}
	engine := &inference.Engine{Fraud: fraud, Segment: segment}

	cm := &WebContextMaker{}
	analyze := &controllers.Analyze{
		PredictionMaker: engine,
		ExampleLister:   &samples.Lister{},
	}
	segments := &controllers.Segment{PredictionMaker: engine}
	reports := &controllers.Report{Fraud: engine, Segment: engine}

	limiter := rate.NewLimiter(rate.Limit(cfg.RequestRate), cfg.RequestBurst)

	http.HandleFunc("/", limit(limiter, analyze.HandleFunc(cm, &responders.WebAnalyzeResponder{})))
	http.HandleFunc("/segment", limit(limiter, segments.HandleFunc(cm, &responders.WebSegmentResponder{})))
	http.HandleFunc("/report", limit(limiter, reports.HandleFunc(cm, &responders.WebReportResponder{ExposeErrors: cfg.ExposeErrors})))

	logrus.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), nil))
}

func limit(l *rate.Limiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow() {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}
