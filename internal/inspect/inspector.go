package inspect

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/hashui/pkg/app"
	"github.com/vango-dev/hashui/pkg/dom/memdom"
	"github.com/vango-dev/hashui/pkg/render"
	"github.com/vango-dev/hashui/pkg/vdom"
)

// Snapshot is the application as seen after one render.
type Snapshot struct {
	App        string         `json:"app"`
	ID         string         `json:"id"`
	Generation uint64         `json:"generation"`
	Nodes      int            `json:"nodes"`
	Route      string         `json:"route"`
	Hash       string         `json:"hash"`
	Routes     []string       `json:"routes"`
	State      map[string]any `json:"state"`
	RenderedAt time.Time      `json:"renderedAt"`

	document string
	vdom     string
}

// Inspector serves snapshots of one application.
type Inspector struct {
	app         *app.App
	doc         *memdom.Document
	name        string
	logger      *slog.Logger
	broadcaster *Broadcaster
	handler     http.Handler

	mu   sync.RWMutex
	snap Snapshot
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithName sets the application name reported in snapshots.
func WithName(name string) Option {
	return func(i *Inspector) {
		i.name = name
	}
}

// New attaches an inspector to a. It must be called on the goroutine that
// runs the document's event loop, before a is initialized, so the first
// render is captured.
func New(a *app.App, doc *memdom.Document, opts ...Option) *Inspector {
	logger := a.Context().Component("inspect")
	i := &Inspector{
		app:         a,
		doc:         doc,
		name:        "hashui",
		logger:      logger,
		broadcaster: NewBroadcaster(logger),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.handler = i.routes()

	a.OnRender(i.rendered)
	a.OnError(i.failed)
	doc.OnHashChange(func(fragment string) {
		i.broadcaster.Send(Event{Type: EventNavigate, Route: fragment})
	})
	return i
}

func (i *Inspector) rendered(info app.RenderInfo) {
	i.Capture()
	i.broadcaster.Send(Event{
		Type:       EventRender,
		Generation: info.Generation,
		Nodes:      info.Nodes,
		Roots:      info.Roots,
		DurationUS: info.Duration.Microseconds(),
		Route:      i.app.Router().Current(),
	})
}

func (i *Inspector) failed(err error) {
	i.logger.Error("render failed", "error", err)
	i.broadcaster.Send(Event{Type: EventError, Error: err.Error()})
}

// Capture takes a snapshot now. Like New it must run on the loop goroutine.
func (i *Inspector) Capture() {
	r := i.app.Renderer()
	snap := Snapshot{
		App:        i.name,
		ID:         i.app.Context().ID,
		Generation: r.Generation(),
		Nodes:      r.Len(),
		Route:      i.app.Router().Current(),
		Hash:       i.doc.Hash(),
		Routes:     i.app.Router().Routes(),
		State:      sanitizeState(i.app.GetState()),
		RenderedAt: time.Now(),
	}
	if root, ok := i.app.Root().(*memdom.Element); ok {
		snap.document = root.InnerHTML()
	}
	if elements, ok := i.app.GetState()[render.StateKeyVDOM].([]*vdom.VNode); ok {
		snap.vdom = render.Markup(elements...)
	}

	i.mu.Lock()
	i.snap = snap
	i.mu.Unlock()
}

// Snapshot returns the latest snapshot.
func (i *Inspector) Snapshot() Snapshot {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.snap
}

// Broadcaster returns the websocket event broadcaster.
func (i *Inspector) Broadcaster() *Broadcaster {
	return i.broadcaster
}

// Handler returns the inspector's HTTP handler.
func (i *Inspector) Handler() http.Handler {
	return i.handler
}

func (i *Inspector) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", i.handleSnapshot)
	r.Get("/state", i.handleState)
	r.Get("/document", i.handleDocument)
	r.Get("/vdom", i.handleVDOM)
	r.Get("/routes", i.handleRoutes)
	r.Post("/navigate", i.handleNavigate)
	r.Get("/ws", i.broadcaster.HandleWebSocket)

	registry := i.app.Context().Metrics().Registry()
	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	return r
}

func (i *Inspector) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	i.writeJSON(w, http.StatusOK, i.Snapshot())
}

func (i *Inspector) handleState(w http.ResponseWriter, r *http.Request) {
	i.writeJSON(w, http.StatusOK, i.Snapshot().State)
}

func (i *Inspector) handleDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(i.Snapshot().document))
}

func (i *Inspector) handleVDOM(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(i.Snapshot().vdom))
}

func (i *Inspector) handleRoutes(w http.ResponseWriter, r *http.Request) {
	snap := i.Snapshot()
	i.writeJSON(w, http.StatusOK, map[string]any{
		"routes":  snap.Routes,
		"current": snap.Route,
		"hash":    snap.Hash,
	})
}

func (i *Inspector) handleNavigate(w http.ResponseWriter, r *http.Request) {
	hash := r.URL.Query().Get("hash")
	if hash == "" {
		i.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "hash query parameter is required"})
		return
	}
	i.doc.Post(func() { i.doc.Navigate(hash) })
	i.writeJSON(w, http.StatusAccepted, map[string]string{"hash": hash})
}

func (i *Inspector) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		i.logger.Error("encode response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (i *Inspector) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           i.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		i.logger.Info("inspector listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	i.broadcaster.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
