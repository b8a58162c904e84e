package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/ChicagoDave/roadworld/pkg/config"
	"github.com/ChicagoDave/roadworld/pkg/scene2d"
	"github.com/ChicagoDave/roadworld/pkg/traffic"
	"github.com/ChicagoDave/roadworld/pkg/validation"
	"github.com/ChicagoDave/roadworld/pkg/world"
)

// Server is the local development server. It owns one generated world,
// advances its traffic lights in real time and streams them to clients.
type Server struct {
	projectPath string
	port        int
	started     time.Time
	hub         *hub

	mu     sync.Mutex
	world  *world.World
	report *validation.Report
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		started:     time.Now(),
		hub:         newHub(),
	}
}

// Start loads the project, then launches the light clock and the HTTP server.
func (s *Server) Start() error {
	if _, _, err := s.Reload(); err != nil {
		return err
	}
	defer s.Close()
	go s.hub.run()
	go s.runClock()

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("RoadWorld server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, s.Handler())
}

// Close stops the light clock and disconnects every websocket client.
func (s *Server) Close() {
	s.hub.stop()
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/world", s.handleWorld)
	mux.HandleFunc("GET /api/world/geojson", s.handleGeoJSON)
	mux.HandleFunc("GET /api/graph/hash", s.handleHash)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /ws/lights", s.handleLights)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

// clock is the timestamp fed to the control centers.
func (s *Server) clock() time.Duration {
	return time.Since(s.started)
}

// Reload reads the project from disk and brings the world up to date. The
// world is regenerated only when the options or the graph changed; otherwise
// just the control centers are rebuilt from the markings.
func (s *Server) Reload() (*validation.Report, bool, error) {
	p, err := config.LoadProject(s.projectPath)
	if err != nil {
		return nil, false, fmt.Errorf("loading project: %w", err)
	}
	report := validation.ValidateSchema(p)
	if err := report.Err(); err != nil {
		return report, false, err
	}
	g, ms, err := p.Build()
	if err != nil {
		return report, false, err
	}
	report.Merge(validation.ValidateTopology(g))

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	regenerated := true
	if s.world == nil || s.world.Options != p.Options {
		s.world = world.New(g, ms, p.Options)
		report.Merge(s.world.Generate(now))
	} else {
		s.world.Graph = g
		s.world.Markings = ms
		if gen, ok := s.world.GenerateIfChanged(now); ok {
			report.Merge(gen)
		} else {
			s.world.SetMarkings(ms, now)
			regenerated = false
		}
	}
	report.Merge(s.world.Validate())
	s.report = report

	log.Printf("world %s: %s (regenerated: %v)", s.world.RunID, report.Summary, regenerated)
	return report, regenerated, nil
}

// runClock advances the lights once per tick and broadcasts their states.
func (s *Server) runClock() {
	ticker := time.NewTicker(traffic.TickDuration)
	defer ticker.Stop()
	for {
		select {
		case <-s.hub.done:
			return
		case <-ticker.C:
		}
		msg, err := s.step()
		if err != nil {
			log.Printf("encoding light states: %v", err)
			continue
		}
		select {
		case s.hub.broadcast <- msg:
		case <-s.hub.done:
			return
		}
	}
}

func (s *Server) step() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world.Update(s.clock())
	return s.lightsMessage()
}

// lightsMessage encodes the current light states. Callers hold mu.
func (s *Server) lightsMessage() ([]byte, error) {
	return json.Marshal(lightsMessage{
		RunID:          s.world.RunID.String(),
		Timestamp:      s.clock().Milliseconds(),
		ControlCenters: scene2d.Lights(s.world),
	})
}

type lightsMessage struct {
	RunID          string                    `json:"run_id"`
	Timestamp      int64                     `json:"timestamp_ms"`
	ControlCenters []scene2d.ControlCenter2D `json:"control_centers"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>RoadWorld</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>RoadWorld</h1>
<p>Scene at <code>/api/world</code>, light states streamed on <code>/ws/lights</code>.</p>
</div>
</body></html>`)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func (s *Server) handleWorld(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	scene := scene2d.Assemble2D(s.world)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, scene)
}

func (s *Server) handleGeoJSON(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	fc := scene2d.GeoJSON(s.world)
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/geo+json")
	if err := json.NewEncoder(w).Encode(fc); err != nil {
		log.Printf("writing geojson: %v", err)
	}
}

func (s *Server) handleHash(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"hash":   s.world.Graph.Hash(),
		"stale":  s.world.Stale(),
		"run_id": s.world.RunID.String(),
	})
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.report)
}

func (s *Server) handleGenerate(w http.ResponseWriter, _ *http.Request) {
	report, regenerated, err := s.Reload()
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      err.Error(),
			"validation": report,
		})
		return
	}

	s.mu.Lock()
	runID := s.world.RunID.String()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"regenerated": regenerated,
		"run_id":      runID,
		"validation":  report,
	})
}
