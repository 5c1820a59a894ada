// Package mcp exposes path calculation and share codes as Model Context
// Protocol tools, so that assistants can design and describe configurations.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/math3d"
	"github.com/cloudy-native/lucid/path"
	"github.com/cloudy-native/lucid/random"
	"github.com/cloudy-native/lucid/share"
)

// The most samples which sample_path will return. Tool results end up in a
// model's context, so this is much lower than the HTTP limit.
const MaxSamples = 2000

// Seeds arrive as JSON numbers; this is the first one too large for a uint64.
const maxSeed = 1 << 64

var log = logrus.WithFields(logrus.Fields{
	"pkg": "mcp",
})

type PeriodResponse struct {
	Cycles int64   `json:"cycles" jsonschema_description:"Least common multiple of the reduced speed denominators"`
	Period float64 `json:"period" jsonschema_description:"Time for the chain to return to its start, 2π × cycles"`
}

type PathResponse struct {
	PeriodResponse
	Step    float64          `json:"step" jsonschema_description:"Time between samples"`
	Samples int              `json:"samples" jsonschema_description:"Number of steps; there is one more point than this"`
	Points  []math3d.Vector3 `json:"points" jsonschema_description:"Position of the end of the chain at each step"`
}

type ShareResponse struct {
	Code string `json:"code" jsonschema_description:"The share code, for the config URL parameter"`
	URL  string `json:"url" jsonschema_description:"A link which opens the configuration"`
}

type RandomResponse struct {
	State share.State `json:"state" jsonschema_description:"The generated configuration"`
	ShareResponse
}

type Server struct {
	baseURL   string
	mcpServer *server.MCPServer
}

// NewServer returns a server whose share links point at baseURL.
func NewServer(baseURL string) *Server {
	s := &Server{
		baseURL:   baseURL,
		mcpServer: server.NewMCPServer("lucid-mcp", lucid.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio serves on stdin and stdout until they close.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

const configDescription = "A share code, a JSON state object {segments, environment, material}, " +
	"or a JSON array of segments {length, axis, speed}. Speeds may be \"p/q\" strings or {num, den} objects."

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("compute_period",
		mcp.WithDescription("Compute how long a chain of rotating segments takes to return to its starting configuration."),
		mcp.WithString("config", mcp.Required(), mcp.Description(configDescription)),
		mcp.WithOutputSchema[PeriodResponse](),
	), mcp.NewStructuredToolHandler(s.handleComputePeriod))

	s.mcpServer.AddTool(mcp.NewTool("sample_path",
		mcp.WithDescription("Sample the closed curve traced by the end of a chain of rotating segments over one period."),
		mcp.WithString("config", mcp.Required(), mcp.Description(configDescription)),
		mcp.WithNumber("samples", mcp.Description(fmt.Sprintf("Number of steps, at most %d (default 200)", MaxSamples))),
		mcp.WithOutputSchema[PathResponse](),
	), mcp.NewStructuredToolHandler(s.handleSamplePath))

	s.mcpServer.AddTool(mcp.NewTool("encode_share",
		mcp.WithDescription("Encode a configuration as a share code and link."),
		mcp.WithString("config", mcp.Required(), mcp.Description(configDescription)),
		mcp.WithOutputSchema[ShareResponse](),
	), mcp.NewStructuredToolHandler(s.handleEncodeShare))

	s.mcpServer.AddTool(mcp.NewTool("decode_share",
		mcp.WithDescription("Decode a share code into its segments, environment and material."),
		mcp.WithString("code", mcp.Required(), mcp.Description("The share code, or a whole share link")),
		mcp.WithOutputSchema[share.State](),
	), mcp.NewStructuredToolHandler(s.handleDecodeShare))

	s.mcpServer.AddTool(mcp.NewTool("random_config",
		mcp.WithDescription("Generate a random configuration which closes in a reasonable number of cycles."),
		mcp.WithNumber("segments", mcp.Description("Number of segments, 1 to 20 (default 2 to 5)")),
		mcp.WithNumber("seed", mcp.Description("Seed, for a repeatable configuration")),
		mcp.WithOutputSchema[RandomResponse](),
	), mcp.NewStructuredToolHandler(s.handleRandomConfig))
}

func (s *Server) handleComputePeriod(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PeriodResponse, error) {
	st, err := parseConfig(args)
	if err != nil {
		return PeriodResponse{}, err
	}

	p, err := path.ComputePeriod(st.Segments)
	if err != nil {
		return PeriodResponse{}, err
	}

	return PeriodResponse{Cycles: p.Cycles, Period: p.Time}, nil
}

func (s *Server) handleSamplePath(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PathResponse, error) {
	st, err := parseConfig(args)
	if err != nil {
		return PathResponse{}, err
	}

	n := 200
	if v, ok := args["samples"].(float64); ok {
		if v < 1 {
			return PathResponse{}, fmt.Errorf("%w: samples must be positive, got %v", lucid.ErrInvalidArgument, v)
		}
		n = path.ClampSamples(int(v), MaxSamples)
	}

	r, err := path.Trace(st.Segments, n)
	if err != nil {
		return PathResponse{}, err
	}

	return PathResponse{
		PeriodResponse: PeriodResponse{Cycles: r.Period.Cycles, Period: r.Period.Time},
		Step:           r.Step,
		Samples:        r.Samples(),
		Points:         r.Points,
	}, nil
}

func (s *Server) handleEncodeShare(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ShareResponse, error) {
	st, err := parseConfig(args)
	if err != nil {
		return ShareResponse{}, err
	}

	return s.share(st)
}

func (s *Server) handleDecodeShare(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (share.State, error) {
	code, _ := args["code"].(string)
	code = strings.TrimSpace(code)

	// Accept a whole link, too.
	if strings.Contains(code, "?") {
		st, fallback := share.FromURL(code)
		if fallback {
			return share.State{}, fmt.Errorf("%w: link has no usable %s parameter", lucid.ErrInvalidArgument, share.Param)
		}
		return st, nil
	}

	return share.Decode(code)
}

func (s *Server) handleRandomConfig(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RandomResponse, error) {
	o := random.DefaultOptions()

	if v, ok := args["segments"].(float64); ok {
		if v < 1 || v > 20 || v != math.Trunc(v) {
			return RandomResponse{}, fmt.Errorf("%w: segments must be between 1 and 20, got %v", lucid.ErrInvalidArgument, v)
		}
		o.MinSegments, o.MaxSegments = int(v), int(v)
	}

	seed := rand.Uint64()
	if v, ok := args["seed"].(float64); ok {
		if !(v >= 0 && v < maxSeed) || v != math.Trunc(v) {
			return RandomResponse{}, fmt.Errorf("%w: seed must be a whole number between 0 and 2^64, got %v", lucid.ErrInvalidArgument, v)
		}
		seed = uint64(v)
	}

	st := random.State(rand.New(rand.NewPCG(seed, seed)), o)
	sr, err := s.share(st)
	if err != nil {
		return RandomResponse{}, err
	}

	log.Debugf("random configuration with %d segments, seed %d", len(st.Segments), seed)
	return RandomResponse{State: st, ShareResponse: sr}, nil
}

func (s *Server) share(st share.State) (ShareResponse, error) {
	code, err := share.Encode(st)
	if err != nil {
		return ShareResponse{}, err
	}

	u, err := share.URL(s.baseURL, st)
	if err != nil {
		return ShareResponse{}, err
	}

	return ShareResponse{Code: code, URL: u}, nil
}

// parseConfig reads the config argument, which is a share code or JSON.
func parseConfig(args map[string]interface{}) (share.State, error) {
	raw, _ := args["config"].(string)
	raw = strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(raw, "{"):
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return share.State{}, fmt.Errorf("%w: invalid config json: %s", lucid.ErrInvalidArgument, err)
		}
		return share.FromMap(m)

	case strings.HasPrefix(raw, "["):
		var segs []interface{}
		if err := json.Unmarshal([]byte(raw), &segs); err != nil {
			return share.State{}, fmt.Errorf("%w: invalid config json: %s", lucid.ErrInvalidArgument, err)
		}
		return share.FromMap(map[string]interface{}{"segments": segs})
	}

	return share.Decode(raw)
}
