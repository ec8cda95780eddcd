package server

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/jumble/internal/logger"
	"github.com/bastiangx/jumble/pkg/dictionary"
	"github.com/bastiangx/jumble/pkg/format"
	"github.com/bastiangx/jumble/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for jumble queries
type Server struct {
	solver       solver.ISolver
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server speaking over stdin/stdout
func NewServer(s solver.ISolver) *Server {
	return NewServerWithIO(s, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w
func NewServerWithIO(s solver.ISolver, r io.Reader, w io.Writer) *Server {
	return &Server{
		solver: s,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
		logger: logger.New("ipc"),
	}
}

// Start announces readiness and serves requests until the input ends.
// A frame that cannot be decoded is answered with an error and stops the
// server, since the stream position is lost.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed, stopping", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the request action
func (s *Server) handleRequest(req Request) error {
	s.requestCount++
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	switch req.Action {
	case "", "solve":
		return s.handleSolve(req)
	case "info":
		return s.handleInfo(req)
	case "ping":
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleSolve(req Request) error {
	if req.Limit < 0 {
		return s.sendError(req.ID, "limit must not be negative", 400)
	}

	var result solver.Result
	var err error
	if req.Strategy == "" {
		result, err = s.solver.Solve(req.Query)
	} else {
		strategy, perr := solver.ParseStrategy(req.Strategy)
		if perr != nil {
			return s.sendError(req.ID, perr.Error(), 400)
		}
		if limit, ok := s.unprunedLimit(strategy); ok {
			if n := solver.NewQuery(req.Query).Len(); n > limit {
				return s.sendError(req.ID, fmt.Sprintf(
					"query of %d letters is too long for unpruned permutation (max %d)", n, limit), 400)
			}
		}
		result, err = s.solver.SolveWith(req.Query, strategy)
	}
	if err != nil {
		s.logger.Errorf("Solving '%s': %v", req.Query, err)
		code := 400
		if errors.Is(err, dictionary.ErrSourceUnavailable) {
			code = 500
		}
		return s.sendError(req.ID, err.Error(), code)
	}

	return s.send(SolveResponse{
		ID:        req.ID,
		Words:     format.Limit(result.Words, req.Limit),
		Count:     len(result.Words),
		Strategy:  result.Strategy.String(),
		TimeTaken: result.Elapsed.Microseconds(),
	})
}

// unprunedLimit returns the longest query a client may force through
// permutation when the solver has pruning disabled.
func (s *Server) unprunedLimit(strategy solver.Strategy) (int, bool) {
	if strategy != solver.Permutation {
		return 0, false
	}
	info := s.solver.Info()
	if info.Prune {
		return 0, false
	}
	return max(2*info.Threshold, solver.DefaultThreshold), true
}

func (s *Server) handleInfo(req Request) error {
	info := s.solver.Info()
	resp := InfoResponse{
		ID:        req.ID,
		Status:    "ok",
		Source:    info.Source,
		Threshold: info.Threshold,
		Strategy:  info.Strategy.String(),
		Prune:     info.Prune,
		Requests:  s.requestCount,
	}
	if info.Flat != nil {
		resp.FlatWords = info.Flat.Words
	}
	if info.Grouped != nil {
		resp.GroupedWords = info.Grouped.Words
		resp.Groups = info.Grouped.Groups
	}
	return s.send(resp)
}

// send encodes one response frame
func (s *Server) send(response any) error {
	if err := s.enc.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
