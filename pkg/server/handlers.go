package server

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/matzehuels/notifstack/pkg/buildinfo"
	"github.com/matzehuels/notifstack/pkg/errors"
	"github.com/matzehuels/notifstack/pkg/lockstate"
	"github.com/matzehuels/notifstack/pkg/pipeline"
	"github.com/matzehuels/notifstack/pkg/scenario"
)

var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatText: "text/plain; charset=utf-8",
}

type pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Cache: "ok", Info: buildinfo.Get()}
	if p, ok := s.runner.Cache.(pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			s.logger.Warn("cache unreachable", "error", err)
			resp.Cache = "unreachable"
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))

	result, ok := s.execute(w, r, []string{format}, refresh)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheStatus(result.CacheInfo.ResultHit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

type countResponse struct {
	Count        int  `json:"count"`
	Eligible     int  `json:"eligible"`
	OnLockscreen bool `json:"on_lockscreen"`
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	result, ok := s.execute(w, r, nil, false)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, countResponse{
		Count:        result.Plan.Count,
		Eligible:     result.Plan.Eligible,
		OnLockscreen: result.Plan.OnLockscreen,
	})
}

type heightResponse struct {
	Count  int     `json:"count"`
	Height float64 `json:"height"`
}

func (s *Server) handleHeight(w http.ResponseWriter, r *http.Request) {
	sc, err := scenario.Read(r.Body, scenario.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if sc.Count == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "count is required"))
		return
	}
	result, err := s.runner.Execute(r.Context(), sc, pipeline.Options{Resources: s.resources})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, heightResponse{
		Count:  result.Requested.Count,
		Height: result.Requested.Height,
	})
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	sc, err := scenario.Read(r.Body, scenario.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	opts := pipeline.SweepOptions{To: sc.Budget.Notifications}
	for name, dst := range map[string]*float64{"from": &opts.From, "to": &opts.To, "step": &opts.Step} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, raw))
			return
		}
		*dst = v
	}
	if math.IsInf(opts.To, 0) {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "to is required when the budget is unbounded"))
		return
	}

	result, err := s.runner.Sweep(r.Context(), sc, pipeline.Options{Resources: s.resources}, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("X-Cache", cacheStatus(result.CacheInfo.ResultHit))
	writeJSON(w, http.StatusOK, result)
}

type lockscreenResponse struct {
	lockstate.Signals
	OnLockscreen bool `json:"on_lockscreen"`
}

func (s *Server) handleLockscreen(w http.ResponseWriter, r *http.Request) {
	var sig lockstate.Signals
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sig); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidLockState, err, "decode lock signals"))
		return
	}
	if err := sig.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lockscreenResponse{Signals: sig, OnLockscreen: sig.OnLockscreen()})
}

// execute decodes the scenario body and runs it, writing the error response
// on failure.
func (s *Server) execute(w http.ResponseWriter, r *http.Request, formats []string, refresh bool) (*pipeline.Result, bool) {
	sc, err := scenario.Read(r.Body, scenario.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	result, err := s.runner.Execute(r.Context(), sc, pipeline.Options{
		Resources: s.resources,
		Formats:   formats,
		Refresh:   refresh,
	})
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return result, true
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
