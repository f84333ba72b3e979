package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"sdfield/pkg/config"
)

// Server is the HTTP front end over a JobManager: job submission and
// polling, a per-job WebSocket progress stream, health/readiness probes,
// and Prometheus metrics.
type Server struct {
	cfg     *config.Config
	jobs    *JobManager
	mux     *http.ServeMux
	started time.Time
}

// NewServer builds the HTTP handler tree. It does not start listening;
// callers wrap it in an http.Server{Handler: srv} and call Serve
// themselves, so main can own the listener lifecycle and shutdown.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg:     cfg,
		jobs:    NewJobManager(cfg),
		mux:     http.NewServeMux(),
		started: time.Now(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/ready", s.handleReady)
	s.mux.Handle("/metrics", promhttp.HandlerFor(s.jobs.Metrics().Registry(), promhttp.HandlerOpts{}))
	s.mux.HandleFunc("/jobs", s.handleJobs)
	s.mux.HandleFunc("/jobs/", s.handleJobByID)
	s.mux.HandleFunc("/ws/jobs/", s.handleJobProgress)
	s.mux.HandleFunc("/scenes", s.handleScenes)
}

// handleScenes lists the demo scene names a job may reference, in a
// fixed order so clients can diff successive responses.
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]any{"scenes": SceneNames()})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = json.NewEncoder(w).Encode(map[string]any{
		"uptime_seconds": time.Since(s.started).Seconds(),
	})
}

type submitRequest struct {
	Kind  string `json:"kind"`
	Scene string `json:"scene"`
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	kind := JobKind(req.Kind)
	if kind != JobKindRender && kind != JobKindMesh {
		http.Error(w, fmt.Sprintf("unknown job kind %q", req.Kind), http.StatusBadRequest)
		return
	}

	job, err := s.jobs.Submit(r.Context(), kind, req.Scene)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "handleJobs",
			"error":    err,
		}).Warn("job submission rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(job.snapshot())
}

func (s *Server) handleJobByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if rest, ok := strings.CutSuffix(id, "/result"); ok {
		s.handleJobResult(w, r, rest)
		return
	}

	job, err := s.jobs.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(job.snapshot())
}

func (s *Server) handleJobProgress(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/ws/jobs/")
	job, err := s.jobs.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.streamProgress(w, r, job)
}
