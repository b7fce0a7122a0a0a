package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/roids/internal/config"
	"github.com/tomz197/roids/internal/storage"
)

const (
	defaultHost     = "0.0.0.0"
	defaultPort     = "8080"
	maxScores       = 20
	shutdownTimeout = 5 * time.Second
)

//go:embed index.html
var htmlPage string

var pageTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(htmlPage))

type pageData struct {
	SSHHost string
	SSHPort string
	Scores  []storage.Record
}

func main() {
	logger := config.NewLogger(os.Stderr, "web")
	if err := run(logger); err != nil {
		logger.Fatal("Server failed", "err", err)
	}
}

func run(logger *log.Logger) error {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_DISPLAY_PORT", "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           newHandler(sshHost, sshPort, config.ScoreDir(), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting web server", "addr", "http://"+srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newHandler serves the landing page. The score table is read from disk on
// every request so it reflects games that just ended.
func newHandler(sshHost, sshPort, scoreDir string, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		records, err := storage.List(scoreDir)
		if err != nil {
			logger.Warn("Listing scores failed", "dir", scoreDir, "err", err)
		}
		if len(records) > maxScores {
			records = records[:maxScores]
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := pageData{SSHHost: sshHost, SSHPort: sshPort, Scores: records}
		if err := pageTemplate.Execute(w, data); err != nil {
			logger.Error("Rendering page failed", "err", err)
		}
	})
	return mux
}
