package render

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/rustyeddy/stockcharts/chart"
)

// Handler serves the full page at / and single figures at /chart/{n}.
func Handler(title string, figs []chart.Figure) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		servePage(w, title, figs...)
	})

	mux.HandleFunc("GET /chart/{n}", func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(r.PathValue("n"))
		if err != nil || n < 0 || n >= len(figs) {
			http.NotFound(w, r)
			return
		}
		servePage(w, figs[n].Title, figs[n])
	})

	return mux
}

func servePage(w http.ResponseWriter, title string, figs ...chart.Figure) {
	var buf bytes.Buffer
	if err := WritePage(&buf, title, figs...); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// Serve listens on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, h http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	errc := make(chan error, 1)
	go func() {
		logger.Printf("[INFO] serving charts on http://%s/", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
