package serve

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/soilwise-he/soilvoc/graph"
	"github.com/soilwise-he/soilvoc/mindmap"
)

// reloadScript subscribes the served page to the event stream so a rebuild
// refreshes open browsers.
const reloadScript = `<script>
    new EventSource('/events').addEventListener('reload', () => location.reload());
</script>`

// Server serves the rendered mind map for one Turtle file and live-reloads
// it on change.
type Server struct {
	path     string
	addr     string
	debounce time.Duration
	logger   *slog.Logger
	broker   *Broker

	mu   sync.RWMutex
	page []byte
}

// NewServer creates a preview server for the given Turtle file.
func NewServer(path, addr string, debounce time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		path:     path,
		addr:     addr,
		debounce: debounce,
		logger:   logger,
		broker:   NewBroker(),
	}
}

// Router returns the HTTP routes: the page at / and the event stream at
// /events.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handlePage)
	r.Get("/events", s.broker.ServeHTTP)
	return r
}

// Run renders the initial page, starts the file watcher and serves HTTP
// until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.render(); err != nil {
		return err
	}

	watcher, err := NewWatcher(s.path, s.debounce, s.logger)
	if err != nil {
		return fmt.Errorf("watch %s: %w", s.path, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.broker.Close()

	go func() {
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn("watcher stopped", "error", err)
		}
	}()
	go s.rerenderLoop(ctx, watcher.Changes())

	srv := &http.Server{Addr: s.addr, Handler: s.Router()}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("serving vocabulary preview", "addr", s.addr, "file", s.path)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// rerenderLoop rebuilds the page after each settled change and notifies
// connected browsers. A broken intermediate save keeps the last good page.
func (s *Server) rerenderLoop(ctx context.Context, changes <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			if err := s.render(); err != nil {
				s.logger.Warn("re-render failed, keeping previous page", "error", err)
				continue
			}
			s.logger.Info("vocabulary re-rendered", "file", s.path, "clients", s.broker.ClientCount())
			s.broker.Publish(Event{Type: "reload", Data: map[string]string{"file": s.path}})
		}
	}
}

// render loads the Turtle file and rebuilds the cached page.
func (s *Server) render() error {
	g, err := graph.LoadTurtleFile(s.path)
	if err != nil {
		return err
	}
	voc, err := mindmap.Parse(g)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := mindmap.Render(&buf, voc); err != nil {
		return err
	}

	page := injectReloadScript(buf.String())

	s.mu.Lock()
	s.page = []byte(page)
	s.mu.Unlock()
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	page := s.page
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// injectReloadScript places the live-reload script before </body>.
func injectReloadScript(page string) string {
	if i := strings.LastIndex(page, "</body>"); i >= 0 {
		return page[:i] + reloadScript + "\n" + page[i:]
	}
	return page + reloadScript
}
