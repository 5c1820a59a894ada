package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/docs"
	"github.com/cloudy-native/lucid/export"
	"github.com/cloudy-native/lucid/math3d"
	"github.com/cloudy-native/lucid/mesh"
	"github.com/cloudy-native/lucid/path"
	"github.com/cloudy-native/lucid/random"
	"github.com/cloudy-native/lucid/share"
)

// The largest request body accepted.
const maxBody = 1 << 20

type pathResponse struct {
	Period   float64          `json:"period"`
	Cycles   int64            `json:"cycles"`
	Step     float64          `json:"step"`
	Samples  int              `json:"samples"`
	Bounds   mesh.Bounds      `json:"bounds"`
	Points   []math3d.Vector3 `json:"points"`
	Fallback bool             `json:"fallback"`
}

type shareResponse struct {
	Code string `json:"code"`
	URL  string `json:"url"`
}

type randomResponse struct {
	State share.State `json:"state"`
	Seed  uint64      `json:"seed"`
	shareResponse
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":            lucid.Name,
		"version":         lucid.Version,
		"default_samples": s.opts.DefaultSamples,
		"max_samples":     s.opts.MaxSamples,
	})
}

// getPath samples the configuration in the config query parameter. A missing
// or unreadable code gets the default configuration, as the app does.
func (s *Server) getPath(w http.ResponseWriter, r *http.Request) {
	n, err := s.samples(r.URL.Query().Get("samples"))
	if err != nil {
		writeError(w, err)
		return
	}

	st, fallback := s.decodeOrDefault(r.URL.Query().Get(share.Param))
	s.writePath(w, r, st.Segments, n, fallback)
}

func (s *Server) postPath(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %s", lucid.ErrInvalidArgument, err))
		return
	}

	var body struct {
		Samples int `json:"samples"`
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		writeError(w, fmt.Errorf("%w: invalid body: %s", lucid.ErrInvalidArgument, err))
		return
	}
	if err := json.Unmarshal(data, &body); err != nil {
		writeError(w, fmt.Errorf("%w: invalid samples: %s", lucid.ErrInvalidArgument, err))
		return
	}

	st, err := share.FromMap(raw)
	if err != nil {
		writeError(w, err)
		return
	}

	n := s.opts.DefaultSamples
	if body.Samples != 0 {
		if body.Samples < 0 {
			writeError(w, fmt.Errorf("%w: samples must be positive, got %d", lucid.ErrInvalidArgument, body.Samples))
			return
		}
		n = path.ClampSamples(body.Samples, s.opts.MaxSamples)
	}

	s.writePath(w, r, st.Segments, n, false)
}

func (s *Server) writePath(w http.ResponseWriter, r *http.Request, c lucid.Configuration, n int, fallback bool) {
	res, err := s.trace(r.Context(), c, n)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pathResponse{
		Period:   res.Period.Time,
		Cycles:   res.Period.Cycles,
		Step:     res.Step,
		Samples:  res.Samples(),
		Bounds:   mesh.ComputeBounds(res.Points),
		Points:   res.Points,
		Fallback: fallback,
	})
}

// getPathOBJ returns a tube around the path, as a Wavefront OBJ file.
func (s *Server) getPathOBJ(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	n, err := s.samples(q.Get("samples"))
	if err != nil {
		writeError(w, err)
		return
	}

	o := mesh.DefaultTubeOptions()
	if v := q.Get("radius"); v != "" {
		if o.Radius, err = strconv.ParseFloat(v, 64); err != nil {
			writeError(w, fmt.Errorf("%w: invalid radius %q", lucid.ErrInvalidArgument, v))
			return
		}
	}
	if v := q.Get("radial"); v != "" {
		if o.RadialSegments, err = strconv.Atoi(v); err != nil {
			writeError(w, fmt.Errorf("%w: invalid radial %q", lucid.ErrInvalidArgument, v))
			return
		}
	}

	st, _ := s.decodeOrDefault(q.Get(share.Param))
	res, err := s.trace(r.Context(), st.Segments, n)
	if err != nil {
		writeError(w, err)
		return
	}

	tube, err := mesh.BuildTube(res.Points, o)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %s", lucid.ErrInvalidArgument, err))
		return
	}

	w.Header().Set("Content-Type", export.FormatTube.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="lucid.obj"`)
	if err := export.WriteTubeOBJ(w, tube); err != nil {
		log.Warnf("write obj: %s", err)
	}
}

func (s *Server) postShare(w http.ResponseWriter, r *http.Request) {
	var raw map[string]interface{}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&raw); err != nil {
		writeError(w, fmt.Errorf("%w: invalid body: %s", lucid.ErrInvalidArgument, err))
		return
	}

	st, err := share.FromMap(raw)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.share(st)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// getShare decodes a share code strictly, so that callers can tell a bad code
// from the default configuration.
func (s *Server) getShare(w http.ResponseWriter, r *http.Request) {
	st, err := share.Decode(chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}

func (s *Server) getRandom(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	o := random.DefaultOptions()

	if v := q.Get("segments"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 20 {
			writeError(w, fmt.Errorf("%w: segments must be between 1 and 20, got %q", lucid.ErrInvalidArgument, v))
			return
		}
		o.MinSegments, o.MaxSegments = n, n
	}

	seed := s.opts.Seed()
	if v := q.Get("seed"); v != "" {
		var err error
		if seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			writeError(w, fmt.Errorf("%w: invalid seed %q", lucid.ErrInvalidArgument, v))
			return
		}
	}

	st := random.State(rand.New(rand.NewPCG(seed, seed)), o)
	resp, err := s.share(st)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, randomResponse{
		State:         st,
		Seed:          seed,
		shareResponse: resp,
	})
}

func (s *Server) presets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"environments":        share.Environments,
		"materials":           share.Materials,
		"default_environment": share.DefaultEnvironment,
		"default_material":    share.DefaultMaterial,
	})
}

func (s *Server) docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	io.WriteString(w, docs.Markdown)
}

func (s *Server) share(st share.State) (shareResponse, error) {
	code, err := share.Encode(st)
	if err != nil {
		return shareResponse{}, err
	}

	u, err := share.URL(s.opts.BaseURL, st)
	if err != nil {
		return shareResponse{}, err
	}

	return shareResponse{Code: code, URL: u}, nil
}

func (s *Server) decodeOrDefault(code string) (share.State, bool) {
	st, fallback := share.DecodeOrDefault(code)
	if fallback && code != "" {
		s.metrics.Fallbacks.Inc()
	}

	return st, fallback
}

// samples parses a sample count. Empty means the default; anything above the
// maximum is clamped.
func (s *Server) samples(v string) (int, error) {
	if v == "" {
		return s.opts.DefaultSamples, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: samples must be a positive integer, got %q", lucid.ErrInvalidArgument, v)
	}

	return path.ClampSamples(n, s.opts.MaxSamples), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("encode response: %s", err)
	}
}

// writeError maps errors from the core to status codes. Anything which the
// caller could fix is a 400.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, lucid.ErrInvalidSegment),
		errors.Is(err, lucid.ErrInvalidArgument),
		errors.Is(err, lucid.ErrCycleOverflow):
		status = http.StatusBadRequest
	}

	if status >= 500 {
		log.Errorf("internal error: %s", err)
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}
