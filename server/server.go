// Package server exposes the slide-position optimizer over HTTP.
//
// Routes:
//
//	GET  /health             liveness probe
//	GET  /methods            available objective functions and the default
//	POST /api/v1/positions   {"pitches": ["Bb3", "B3"], "method": "distance"}
//
// Handlers are stateless: the instrument and the harmonic table are
// read-only, so requests run concurrently without locking.
package server

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/slidepath/cost"
	"github.com/katalvlaran/slidepath/format"
	"github.com/katalvlaran/slidepath/optimize"
	"github.com/katalvlaran/slidepath/pitch"
	"github.com/katalvlaran/slidepath/slide"
)

const sentryFlushTimeout = 2 * time.Second

// Error kinds reported in the "kind" field of 4xx responses.
const (
	KindInvalidPitch     = "invalid_pitch"
	KindInvalidMethod    = "invalid_method"
	KindUnreachablePitch = "unreachable_pitch"
	KindBadRequest       = "bad_request"
)

// Server holds the configuration shared by all requests.
type Server struct {
	instrument slide.Instrument
	method     cost.Method
	logger     *log.Logger
	sentry     bool
}

// New returns a Server for inst using method when a request names none.
// A nil logger discards request logs.
func New(inst slide.Instrument, method cost.Method, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Server{instrument: inst, method: method, logger: logger}
}

// InitSentry configures error reporting and enables the Sentry middleware
// on routers built afterwards. The returned func flushes pending events.
func (s *Server) InitSentry(dsn, environment, release string) (func(), error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     "slidepath@" + release,
	}); err != nil {
		return func() {}, err
	}
	s.sentry = true

	return func() { sentry.Flush(sentryFlushTimeout) }, nil
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if s.sentry {
		router.Use(sentrygin.New(sentrygin.Options{
			Repanic: true,
			Timeout: sentryFlushTimeout,
		}))
	}
	router.Use(RequestTracking(s.logger))

	router.GET("/health", s.health)
	router.GET("/methods", s.methods)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/positions", s.positions)
	}

	return router
}

// PositionsRequest is the body of POST /api/v1/positions.
type PositionsRequest struct {
	Pitches []string `json:"pitches" binding:"required,min=1"`
	Method  string   `json:"method"`
}

// Note is one solved note in a PositionsResponse.
type Note struct {
	Pitch    string  `json:"pitch"`
	Position int     `json:"position"`
	Ordinal  string  `json:"ordinal"`
	Partial  int     `json:"partial"`
	Offset   float64 `json:"offset"`
	Line     string  `json:"line"`
}

// PositionsResponse is the body of a successful POST /api/v1/positions.
type PositionsResponse struct {
	Method string `json:"method"`
	Cost   int    `json:"cost"`
	Travel int    `json:"travel"`
	Notes  []Note `json:"notes"`
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"instrument": s.instrument.Name,
	})
}

func (s *Server) methods(c *gin.Context) {
	names := make([]string, 0, len(cost.Methods()))
	for _, m := range cost.Methods() {
		names = append(names, m.String())
	}
	c.JSON(http.StatusOK, gin.H{
		"methods": names,
		"default": s.method.String(),
	})
}

func (s *Server) positions(c *gin.Context) {
	var req PositionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, KindBadRequest, err)

		return
	}

	// 1) Method first, so a bad method is reported before any pitch.
	method := s.method
	if req.Method != "" {
		m, err := cost.ParseMethod(req.Method)
		if err != nil {
			s.fail(c, KindInvalidMethod, err)

			return
		}
		method = m
	}

	// 2) Pitches.
	ps := make([]pitch.Pitch, len(req.Pitches))
	for i, tok := range req.Pitches {
		p, err := s.instrument.ParsePitch(tok)
		if err != nil {
			s.fail(c, KindInvalidPitch, err)

			return
		}
		ps[i] = p
	}

	// 3) Solve.
	sol, err := optimize.Plan(s.instrument, ps, optimize.WithMethod(method))
	if err != nil {
		s.fail(c, classify(err), err)

		return
	}

	resp := PositionsResponse{
		Method: sol.Method.String(),
		Cost:   sol.Cost,
		Travel: sol.Travel,
		Notes:  make([]Note, len(sol.Choices)),
	}
	for i, ch := range sol.Choices {
		resp.Notes[i] = Note{
			Pitch:    req.Pitches[i],
			Position: int(ch.Position),
			Ordinal:  format.Ordinal(int(ch.Position)),
			Partial:  int(ch.Partial),
			Offset:   ch.Offset,
			Line:     format.Line(req.Pitches[i], ch),
		}
	}
	c.JSON(http.StatusOK, resp)
}

// classify maps engine errors to response kinds; unknown errors yield "".
func classify(err error) string {
	switch {
	case errors.Is(err, pitch.ErrInvalidPitch):
		return KindInvalidPitch
	case errors.Is(err, cost.ErrInvalidMethod):
		return KindInvalidMethod
	case errors.Is(err, slide.ErrUnreachablePitch):
		return KindUnreachablePitch
	default:
		return ""
	}
}

// fail writes an ErrorResponse. An empty kind is an internal error: it is
// answered with 500 and reported to Sentry when enabled.
func (s *Server) fail(c *gin.Context, kind string, err error) {
	status := http.StatusBadRequest
	if kind == "" {
		status = http.StatusInternalServerError
		kind = "internal"
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     err.Error(),
		Kind:      kind,
		RequestID: c.GetString(requestIDKey),
	})
}
