package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/dijkstar/core"
	"github.com/katalvlaran/dijkstar/dijkstra"
	"github.com/katalvlaran/dijkstar/graphio"
	"github.com/katalvlaran/dijkstar/internal/telemetry"
)

// HandleGraphInfo handles GET /graph-info.
func (s *Server) HandleGraphInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Info())
}

// HandleLoadGraph handles POST /load-graph.
//
// A JSON body with a non-empty file_name, or a form (urlencoded or multipart)
// with a file_name field, loads that file from the server's filesystem. Any
// other body is parsed as a graph document and served with no backing file,
// so a later reload fails until a file is loaded.
//
// Response:
//
//	200 OK: GraphInfo
//	400 Bad Request: empty body, missing form file_name, invalid document,
//	                 or a negative/NaN edge weight
//	404 Not Found: file_name does not exist
//	413 Request Entity Too Large: body over the configured limit
func (s *Server) HandleLoadGraph(c *gin.Context) {
	logger := s.logger.With("request_id", requestIDFrom(c), "handler", "HandleLoadGraph")

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(c, http.StatusRequestEntityTooLarge, "Graph document too large", err)
			return
		}
		s.fail(c, http.StatusBadRequest, "Could not read request body", err)
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		s.fail(c, http.StatusBadRequest, "Empty request", errors.New("expected file_name or a graph document"))
		return
	}

	req, isFile, err := parseLoadRequest(c, body)
	if err != nil {
		s.fail(c, http.StatusBadRequest, "Invalid load request", err)
		return
	}

	var info GraphInfo
	if isFile {
		logger.Info("Loading graph file", "file", req.FileName)
		info, err = s.store.LoadFile(req.FileName)
	} else {
		var g *core.Graph[string]
		if g, err = graphio.Read(bytes.NewReader(body)); err == nil {
			if err = CheckWeights(g); err == nil {
				info = s.store.Replace(g, "")
			}
		}
	}
	if err != nil {
		logger.Warn("Graph load failed", "error", err)
		s.failLoad(c, err)
		return
	}

	s.metrics.setGraph(info)
	logger.Info("Graph loaded", "file", info.File, "nodes", info.NodeCount, "edges", info.EdgeCount)
	c.JSON(http.StatusOK, info)
}

// parseLoadRequest reports whether body references a file to load.
// JSON bodies without file_name fall through to document parsing; forms must
// carry file_name.
func parseLoadRequest(c *gin.Context, body []byte) (LoadGraphRequest, bool, error) {
	var req LoadGraphRequest

	switch c.ContentType() {
	case gin.MIMEJSON:
		if err := json.Unmarshal(body, &req); err != nil || req.FileName == "" {
			return req, false, nil
		}
		return req, true, nil
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		req.FileName = c.PostForm("file_name")
		if req.FileName == "" {
			return req, false, errors.New("form field file_name is required")
		}
		return req, true, nil
	default:
		return req, false, nil
	}
}

// HandleReloadGraph handles POST /reload-graph.
//
// Response:
//
//	200 OK: GraphInfo
//	409 Conflict: the served graph has no backing file
func (s *Server) HandleReloadGraph(c *gin.Context) {
	logger := s.logger.With("request_id", requestIDFrom(c), "handler", "HandleReloadGraph")

	info, err := s.store.Reload()
	if errors.Is(err, ErrNoGraphFile) {
		s.fail(c, http.StatusConflict, "No graph file to reload", err)
		return
	}
	if err != nil {
		logger.Warn("Graph reload failed", "error", err)
		s.failLoad(c, err)
		return
	}

	s.metrics.setGraph(info)
	logger.Info("Graph reloaded", "file", info.File, "nodes", info.NodeCount, "edges", info.EdgeCount)
	c.JSON(http.StatusOK, info)
}

// HandleGetNode handles GET /get-node/:node and returns the node's outgoing
// neighbor→weight mapping.
func (s *Server) HandleGetNode(c *gin.Context) {
	node := c.Param("node")

	var (
		outs map[string]float64
		err  error
	)
	s.store.View(func(g *core.Graph[string]) {
		outs, err = g.Outgoing(node)
	})
	if err != nil {
		s.fail(c, http.StatusNotFound, "Node not found", err)
		return
	}

	c.JSON(http.StatusOK, outs)
}

// HandleGetEdge handles GET /get-edge/:u/:v.
func (s *Server) HandleGetEdge(c *gin.Context) {
	u, v := c.Param("u"), c.Param("v")

	var (
		w   float64
		err error
	)
	s.store.View(func(g *core.Graph[string]) {
		w, err = g.Edge(u, v)
	})
	if err != nil {
		s.fail(c, http.StatusNotFound, "Edge not found", err)
		return
	}

	c.JSON(http.StatusOK, EdgeResponse{From: u, To: v, Weight: w})
}

// HandleFindPath handles POST /find-path.
//
// Response:
//
//	200 OK: PathResponse
//	400 Bad Request: malformed body, negative turn penalty or negative annex weight
//	404 Not Found: destination unknown or unreachable
func (s *Server) HandleFindPath(c *gin.Context) {
	logger := s.logger.With("request_id", requestIDFrom(c), "handler", "HandleFindPath")

	var req FindPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	penalty := s.turnPenalty
	if req.TurnPenalty != nil {
		penalty = *req.TurnPenalty
	}
	if penalty < 0 {
		s.fail(c, http.StatusBadRequest, "Invalid turn penalty", errors.New("turn_penalty must not be negative"))
		return
	}

	var opts []dijkstra.Option[string]
	if len(req.Annex) > 0 {
		annex := graphio.FromMap(req.Annex)
		if err := CheckWeights(annex); err != nil {
			s.fail(c, http.StatusBadRequest, "Invalid annex", err)
			return
		}
		opts = append(opts, dijkstra.WithAnnex(annex))
	}
	if penalty > 0 {
		opts = append(opts, dijkstra.WithCostAdjuster(dijkstra.TurnPenalty[string](penalty)))
	}

	_, span := telemetry.Tracer().Start(c.Request.Context(), "dijkstra.FindPath",
		trace.WithAttributes(
			attribute.String("dijkstar.source", req.Source),
			attribute.String("dijkstar.destination", req.Destination),
			attribute.Int("dijkstar.annex_nodes", len(req.Annex)),
			attribute.Float64("dijkstar.turn_penalty", penalty),
		))
	defer span.End()

	var (
		path dijkstra.Path[string]
		err  error
	)
	start := time.Now()
	s.store.View(func(g *core.Graph[string]) {
		path, err = dijkstra.FindPath(g, req.Source, req.Destination, opts...)
	})
	s.metrics.searchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.searches.WithLabelValues("no_path").Inc()
		span.SetStatus(codes.Error, err.Error())
		logger.Debug("No path", "source", req.Source, "destination", req.Destination)
		s.fail(c, http.StatusNotFound, "No path found", err)
		return
	}

	s.metrics.searches.WithLabelValues("found").Inc()
	span.SetAttributes(
		attribute.Int("dijkstar.path_length", len(path.Nodes)),
		attribute.Float64("dijkstar.total_cost", path.Total),
	)
	c.JSON(http.StatusOK, PathResponse{
		Nodes:   path.Nodes,
		Weights: path.Weights,
		Costs:   path.Costs,
		Total:   path.Total,
	})
}

// HandleHealth handles GET /healthz.
func (s *Server) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// failLoad maps graph load errors onto status codes.
func (s *Server) failLoad(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.fail(c, http.StatusNotFound, "Graph file not found", err)
	case errors.Is(err, graphio.ErrInvalidDocument):
		s.fail(c, http.StatusBadRequest, "Invalid graph document", err)
	case errors.Is(err, ErrInvalidWeight):
		s.fail(c, http.StatusBadRequest, "Invalid edge weight", err)
	default:
		s.fail(c, http.StatusBadRequest, "Could not load graph", err)
	}
}

func (s *Server) fail(c *gin.Context, status int, explanation string, err error) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Explanation: explanation,
		Detail:      err.Error(),
		RequestID:   requestIDFrom(c),
	})
}
