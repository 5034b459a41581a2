// Package server exposes a chart over HTTP. Clients fetch the SVG drawing
// and forward resize and pointer events to move the cursor.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/midbel/graph"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Readout is the state of the cursor returned to clients.
type Readout struct {
	Visible bool    `json:"visible"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	XValue  string  `json:"x_value,omitempty"`
	YValue  string  `json:"y_value,omitempty"`
}

type AxisLayout struct {
	Divisions    int      `json:"divisions"`
	Subdivisions int      `json:"subdivisions"`
	Spacing      float64  `json:"spacing"`
	Labels       []string `json:"labels"`
	Minors       int      `json:"minors"`
}

type Layout struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	X      AxisLayout `json:"x"`
	Y      AxisLayout `json:"y"`
}

type Server struct {
	Palette  graph.Palette
	FontSize float64

	mu      sync.Mutex
	chart   *graph.Chart
	metrics *Metrics
	router  *mux.Router
}

func New(chart *graph.Chart) *Server {
	s := Server{
		Palette:  graph.Category10,
		FontSize: graph.FontSize,
		chart:    chart,
		metrics:  NewMetrics(),
	}
	s.router = s.newRouter()
	s.observe()
	return &s
}

func (s *Server) Metrics() *Metrics {
	return s.metrics
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves requests on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		logrus.WithField("addr", addr).Info("chart server listening")
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	grp.Go(func() error {
		<-ctx.Done()
		sub, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logrus.Info("chart server shutting down")
		return srv.Shutdown(sub)
	})
	return grp.Wait()
}

func (s *Server) newRouter() *mux.Router {
	routes := []Route{
		{"chart", http.MethodGet, "/chart.svg", s.getChart},
		{"layout", http.MethodGet, "/layout", s.getLayout},
		{"cursor", http.MethodGet, "/cursor", s.getCursor},
		{"resize", http.MethodPost, "/resize", s.postResize},
		{"pointer", http.MethodPost, "/pointer", s.postPointer},
		{"leave", http.MethodPost, "/leave", s.postLeave},
	}
	router := mux.NewRouter().StrictSlash(true)
	for _, route := range routes {
		router.
			Methods(route.Method).
			Path(route.Pattern).
			Name(route.Name).
			Handler(s.logRequest(route.HandlerFunc, route.Name))
	}
	router.Methods(http.MethodGet).Path("/metrics").Name("metrics").Handler(s.metrics.Handler())
	return router
}

func (s *Server) logRequest(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		inner.ServeHTTP(w, r)
		s.metrics.Requests.WithLabelValues(name).Inc()
		logrus.WithFields(logrus.Fields{
			"method":  r.Method,
			"uri":     r.RequestURI,
			"route":   name,
			"elapsed": time.Since(start),
		}).Debug("request handled")
	})
}

func (s *Server) getChart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	sink := graph.NewSVGSink(s.chart.Width, s.chart.Height)
	sink.Palette = s.Palette
	if s.FontSize > 0 {
		sink.FontSize = s.FontSize
	}
	graph.Draw(s.chart, sink)

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := sink.Render(w); err != nil {
		logrus.WithError(err).Error("fail to render chart")
		return
	}
	s.metrics.RenderDur.Observe(time.Since(start).Seconds())
}

func (s *Server) getLayout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	xl, yl := s.chart.Layouts()
	writeJSON(w, http.StatusOK, Layout{
		Width:  s.chart.Width,
		Height: s.chart.Height,
		X:      axisLayout(xl),
		Y:      axisLayout(yl),
	})
}

func (s *Server) getCursor(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.readout())
}

func (s *Server) postResize(w http.ResponseWriter, r *http.Request) {
	width, err := queryFloat(r, "width")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := queryFloat(r, "height")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if width < 0 || height < 0 {
		http.Error(w, fmt.Sprintf("invalid size %gx%g", width, height), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chart.Resize(width, height)
	s.metrics.Resizes.Inc()
	s.observe()
	logrus.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
	}).Debug("chart resized")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postPointer(w http.ResponseWriter, r *http.Request) {
	x, err := queryFloat(r, "x")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	y, err := queryFloat(r, "y")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	state := "hidden"
	if s.chart.PointerMoved(x, y) {
		state = "visible"
	}
	s.metrics.CursorMoves.WithLabelValues(state).Inc()
	writeJSON(w, http.StatusOK, s.readout())
}

func (s *Server) postLeave(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chart.PointerLeft()
	s.metrics.CursorMoves.WithLabelValues("left").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) readout() Readout {
	cur, ok := s.chart.Cursor()
	if !ok {
		return Readout{}
	}
	xs, ys, _ := s.chart.Readout()
	return Readout{
		Visible: true,
		X:       cur.X,
		Y:       cur.Y,
		XValue:  xs,
		YValue:  ys,
	}
}

func (s *Server) observe() {
	xl, yl := s.chart.Layouts()
	s.metrics.observeLayout("x", xl.Divisions, xl.Subdivisions)
	s.metrics.observeLayout("y", yl.Divisions, yl.Subdivisions)
}

func axisLayout(res graph.LayoutResult) AxisLayout {
	a := AxisLayout{
		Divisions:    res.Divisions,
		Subdivisions: res.Subdivisions,
		Spacing:      res.Spacing,
		Minors:       len(res.Minor),
	}
	for _, t := range res.Labels() {
		a.Labels = append(a.Labels, t.Label)
	}
	return a
}

func queryFloat(r *http.Request, name string) (float64, error) {
	str := r.URL.Query().Get(name)
	if str == "" {
		return 0, fmt.Errorf("%s: missing parameter", name)
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", name, str)
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("fail to encode response")
	}
}
