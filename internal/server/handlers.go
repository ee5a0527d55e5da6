package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/engine"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/input"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/store"
)

// maxBodyBytes bounds the /run request body.
const maxBodyBytes = 1 << 20

type algorithmInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type algorithmList struct {
	Algorithms []algorithmInfo `json:"algorithms"`
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	entries := s.engine.Registry().All()
	list := algorithmList{Algorithms: make([]algorithmInfo, 0, len(entries))}
	for _, e := range entries {
		list.Algorithms = append(list.Algorithms, algorithmInfo{Key: e.Key, Name: e.Algorithm.Name()})
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleRun(c *gin.Context) {
	key := c.DefaultQuery("algorithm", s.cfg.DefaultAlgorithm)

	// The key is checked before the body is read.
	if _, ok := s.engine.Registry().Get(key); !ok {
		s.metrics.observeRun(key, engine.Status(engine.ErrUnknownAlgorithm), 0)
		writeError(c, http.StatusBadRequest, "Unknown algorithm")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid array")
		return
	}
	arr, err := input.ParseJSON(body)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid array")
		return
	}

	res, err := s.engine.Run(c.Request.Context(), key, arr)
	s.metrics.observeRun(key, engine.Status(err), stepsOf(res))
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrUnknownAlgorithm):
			writeError(c, http.StatusBadRequest, "Unknown algorithm")
		case errors.Is(err, engine.ErrInputTooLarge):
			writeError(c, http.StatusBadRequest, "Array too large")
		default:
			s.logger.Error("run failed", "algorithm", key, "error", err)
			writeError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	c.Header(runIDHeader, res.ID)
	c.JSON(http.StatusOK, res.Response())
}

func stepsOf(res *engine.Result) int {
	if res == nil {
		return 0
	}
	return len(res.Steps)
}

// generateQuery binds /generate parameters. Binding tags are checked by
// gin's validator.
type generateQuery struct {
	Count int `form:"count" binding:"required,gte=1"`
	Max   int `form:"max" binding:"required,gte=1"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var q generateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "count and max must be > 0")
		return
	}
	if s.cfg.GenerateMax > 0 && q.Max > s.cfg.GenerateMax {
		writeError(c, http.StatusBadRequest, "max exceeds server limit")
		return
	}

	s.rngMu.Lock()
	arr, err := input.Unique(q.Count, q.Max, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		writeError(c, http.StatusBadRequest, strings.TrimPrefix(err.Error(), input.ErrInvalidRange.Error()+": "))
		return
	}
	c.JSON(http.StatusOK, arr)
}

func (s *Server) handleGetRun(c *gin.Context) {
	id := c.Param("id")

	res, err := s.engine.Lookup(c.Request.Context(), id)
	switch {
	case errors.Is(err, engine.ErrNoStore):
		writeError(c, http.StatusNotFound, "Run log disabled")
		return
	case errors.Is(err, store.ErrRunNotFound):
		writeError(c, http.StatusNotFound, "Run not found")
		return
	case err != nil:
		s.logger.Error("lookup failed", "run_id", id, "error", err)
		writeError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Header(runIDHeader, res.ID)
	c.JSON(http.StatusOK, res.Response())
}

func (s *Server) handleHealth(c *gin.Context) {
	status := gin.H{"status": "ok", "algorithms": s.engine.Registry().Len()}

	if st := s.engine.Store(); st != nil {
		if err := st.Ping(c.Request.Context()); err != nil {
			s.logger.Error("run log unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "run log unreachable"})
			return
		}
		status["store"] = "ok"
	}
	c.JSON(http.StatusOK, status)
}
