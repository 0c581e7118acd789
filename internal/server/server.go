// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

// Package server provides the browser UI: a form that runs the pitch
// pipeline and shows the personalised sections, with saved pitches available
// for download.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/bramblevc/pitch-engine/internal/pipeline"
	"github.com/bramblevc/pitch-engine/internal/render"
	"github.com/bramblevc/pitch-engine/pkg/types"
)

// PitchRunner abstracts the pipeline so tests can supply a stub.
type PitchRunner interface {
	Run(ctx context.Context, opts pipeline.Options) (*types.Pitch, error)
}

// Server handles the web UI routes.
type Server struct {
	runner   PitchRunner
	fundName string
	cfg      types.ServerConfig
	log      *logrus.Logger
}

// New creates a server. A nil logger falls back to the logrus default.
func New(runner PitchRunner, fundName string, cfg types.ServerConfig, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.PitchesDir == "" {
		cfg.PitchesDir = "pitches"
	}
	return &Server{runner: runner, fundName: fundName, cfg: cfg, log: log}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	r.HandleFunc("/pitches/{name}", s.handleDownload).Methods(http.MethodGet)
	return r
}

// ListenAndServe starts the HTTP server on the configured address.
func (s *Server) ListenAndServe() error {
	s.log.WithField("addr", s.cfg.Addr).Info("listening")
	return http.ListenAndServe(s.cfg.Addr, s.Router())
}

// logRequests logs method, path, and duration for every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, pageData{
		FundName: s.fundName,
		Recent:   s.recentPitches(),
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	lpName := strings.TrimSpace(r.PostFormValue("lp_name"))
	if lpName == "" {
		http.Error(w, "LP name is required", http.StatusBadRequest)
		return
	}
	lpContext := r.PostFormValue("context")

	result, err := s.runner.Run(r.Context(), pipeline.Options{
		LPName:  lpName,
		Context: lpContext,
		Notes:   lpContext,
	})
	if err != nil {
		s.log.WithError(err).WithField("lp", lpName).Error("pitch run failed")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	md := render.Markdown(s.fundName, result)
	saved := s.savePitch(result, md)

	s.renderPage(w, pageData{
		FundName: s.fundName,
		Pitch:    result,
		Saved:    saved,
		Recent:   s.recentPitches(),
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	// Base strips any path components from the requested name.
	name := filepath.Base(mux.Vars(r)["name"])
	if !strings.HasSuffix(name, ".md") {
		http.NotFound(w, r)
		return
	}
	data, err := os.ReadFile(filepath.Join(s.cfg.PitchesDir, name))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(data)
}

// savePitch writes the markdown rendering into the pitches directory and
// returns the filename, or "" when saving fails. A failed save is logged but
// does not fail the request: the content is already on the page.
func (s *Server) savePitch(p *types.Pitch, md string) string {
	if err := os.MkdirAll(s.cfg.PitchesDir, 0o755); err != nil {
		s.log.WithError(err).Warn("could not create pitches directory")
		return ""
	}
	name := fmt.Sprintf("%s_%s.md", slugify(p.LPName), p.GeneratedAt.Format("20060102"))
	if err := render.WriteFile(filepath.Join(s.cfg.PitchesDir, name), []byte(md)); err != nil {
		s.log.WithError(err).Warn("could not save pitch")
		return ""
	}
	return name
}

// recentPitches lists the newest saved pitch files, at most five.
func (s *Server) recentPitches() []string {
	entries, err := os.ReadDir(s.cfg.PitchesDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if len(names) > 5 {
		names = names[:5]
	}
	return names
}

// slugify lowercases a name and keeps only alphanumerics and underscores.
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
