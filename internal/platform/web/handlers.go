package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/poi5en/termfolio/internal/terminal"
)

const sessionKey = "session"

type createResponse struct {
	ID     string          `json:"id"`
	Prompt string          `json:"prompt"`
	Title  string          `json:"title"`
	Log    []terminal.Line `json:"log"`
}

type submitRequest struct {
	Line       string `json:"line"`
	Fullscreen *bool  `json:"fullscreen"`
}

type submitResponse struct {
	Lines   []terminal.Line   `json:"lines"`
	Effects []terminal.Effect `json:"effects"`
	Log     []terminal.Line   `json:"log"`
	Color   string            `json:"color,omitempty"`
}

type completeResponse struct {
	Completion string `json:"completion"`
	OK         bool   `json:"ok"`
}

type recallResponse struct {
	Input string `json:"input"`
	Index int    `json:"index"`
}

type scoreDTO struct {
	Rank      int       `json:"rank"`
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

func errorJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func (s *Server) handleCommands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commands": terminal.DefaultTable(s.cfg.Profile, nil).Help()})
}

func (s *Server) handleScores(c *gin.Context) {
	if s.scores == nil {
		errorJSON(c, http.StatusServiceUnavailable, "scores are not available")
		return
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errorJSON(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := s.scores.TopScores(terminal.SnakeGameID, limit)
	if err != nil {
		s.logger.Error("load scores", "error", err)
		errorJSON(c, http.StatusInternalServerError, "could not load scores")
		return
	}

	out := make([]scoreDTO, 0, len(entries))
	for i, e := range entries {
		out = append(out, scoreDTO{Rank: i + 1, Player: e.Player, Score: e.Score, CreatedAt: e.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"game": terminal.SnakeGameID, "scores": out})
}

func (s *Server) handleCreateSession(c *gin.Context) {
	id, sess := s.sessions.Create()

	sess.mu.Lock()
	logLines := sess.interp.Log()
	sess.mu.Unlock()

	s.logger.Info("web session started", "id", id, "remote", c.ClientIP())
	c.JSON(http.StatusCreated, createResponse{
		ID:     id,
		Prompt: s.cfg.Terminal.Prompt,
		Title:  s.cfg.Terminal.Title,
		Log:    logLines,
	})
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	id := c.Param("id")
	if !s.sessions.Delete(id) {
		errorJSON(c, http.StatusNotFound, "session not found")
		return
	}
	s.logger.Info("web session ended", "id", id)
	c.Status(http.StatusNoContent)
}

// requireSession resolves :id and stores the session in the context.
func (s *Server) requireSession(c *gin.Context) {
	sess, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		errorJSON(c, http.StatusNotFound, "session not found")
		return
	}
	c.Set(sessionKey, sess)
	c.Next()
}

func sessionFrom(c *gin.Context) *session {
	return c.MustGet(sessionKey).(*session)
}

func (s *Server) handleSubmit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := sessionFrom(c)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	in := sess.interp
	if req.Fullscreen != nil {
		in.SetFullscreen(*req.Fullscreen)
	}

	before := len(in.Log())
	effects := in.Submit(req.Line)
	logLines := in.Log()

	// A clear empties the log, so everything left is new.
	fresh := logLines
	if len(logLines) >= before {
		fresh = logLines[before:]
	}
	if effects == nil {
		effects = []terminal.Effect{}
	}
	if logLines == nil {
		logLines = []terminal.Line{}
	}
	if fresh == nil {
		fresh = []terminal.Line{}
	}
	c.JSON(http.StatusOK, submitResponse{
		Lines:   fresh,
		Effects: effects,
		Log:     logLines,
		Color:   in.Color(),
	})
}

func (s *Server) handleComplete(c *gin.Context) {
	sess := sessionFrom(c)
	sess.mu.Lock()
	name, ok := sess.interp.Complete(c.Query("partial"))
	sess.mu.Unlock()

	c.JSON(http.StatusOK, completeResponse{Completion: name, OK: ok})
}

func (s *Server) handleRecall(previous bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFrom(c)
		sess.mu.Lock()
		defer sess.mu.Unlock()

		if previous {
			sess.interp.RecallPrevious()
		} else {
			sess.interp.RecallNext()
		}
		c.JSON(http.StatusOK, recallResponse{
			Input: sess.interp.Input(),
			Index: sess.interp.HistoryIndex(),
		})
	}
}
