package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/dpotapov/go-htmlscan"
)

func LoggerMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("HTTP request", "method", r.Method, "url", r.URL)
		next.ServeHTTP(w, r)
	})
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Library usage: scan a document and pick a parser.
	doc := []byte(`<p>hello <input disabled></p>`)
	v := htmlscan.Scan(doc)
	if v.Fallback {
		fmt.Println("needs the conformant parser:", v.Reason)
	} else {
		fmt.Println("fast path ok, boolean attributes:", v.BooleanAttrs())
	}

	// Live playground on http://localhost:8080/
	h := &htmlscan.PlaygroundHandler{Logger: logger}
	logger.Info("Starting server on :8080")
	if err := http.ListenAndServe(":8080", LoggerMiddleware(h, logger)); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
