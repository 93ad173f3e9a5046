package server

import (
	"errors"
	"io"
	"time"

	"github.com/bastiangx/wordladder/internal/utils"
	"github.com/bastiangx/wordladder/pkg/config"
	"github.com/bastiangx/wordladder/pkg/dictionary"
	"github.com/bastiangx/wordladder/pkg/ladder"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for word ladders
type Server struct {
	index    *dictionary.Index
	config   *config.Config
	decoder  *msgpack.Decoder
	encoder  *msgpack.Encoder
	logger   *log.Logger
	requests int
}

// NewServer creates a ladder server reading requests from r and writing
// responses to w, normally stdin and stdout.
func NewServer(idx *dictionary.Index, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		index:   idx,
		config:  cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		logger:  log.Default(),
	}
}

// SetLogger replaces the logger used for search debug output.
func (s *Server) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// Requests returns the number of requests served so far.
func (s *Server) Requests() int { return s.requests }

// Start writes the ready status and then serves requests until EOF.
func (s *Server) Start() error {
	stats := s.index.Stats()
	if err := s.send(Status{Status: "ready", Words: stats.Words, Classes: stats.Classes}); err != nil {
		return err
	}
	log.Debug("server ready", "words", stats.Words, "classes", stats.Classes)

	for {
		// One raw frame at a time, so a malformed request cannot desync the
		// stream.
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("client disconnected", "requests", s.requests)
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return err
		}
		s.requests++

		var request LadderRequest
		if err := msgpack.Unmarshal(raw, &request); err != nil {
			log.Debugf("Invalid request: %v", err)
			if err := s.sendError("", "invalid msgpack request", CodeInvalid); err != nil {
				return err
			}
			continue
		}
		if err := s.handleLadder(request); err != nil {
			return err
		}
	}
}

// handleLadder validates and answers one request. Only write failures are
// returned; search failures go back to the client.
func (s *Server) handleLadder(request LadderRequest) error {
	maxLen := s.config.Server.MaxWordLen
	for _, word := range []string{request.From, request.To} {
		if err := utils.ValidateWord(word, maxLen); err != nil {
			return s.sendError(request.ID, err.Error(), CodeInvalid)
		}
	}

	maxSteps := s.config.Search.MaxSteps
	if request.MaxSteps > 0 {
		maxSteps = request.MaxSteps
	}

	began := time.Now()
	result, err := ladder.Solve(request.From, request.To, s.index,
		ladder.WithMaxSteps(maxSteps),
		ladder.WithBidirectional(s.config.Search.Bidirectional),
		ladder.WithTrace(s.config.Search.Trace),
		ladder.WithLogger(s.logger),
	)
	elapsed := time.Since(began)
	if err != nil {
		log.Debug("request failed", "id", request.ID, "err", err)
		return s.sendError(request.ID, err.Error(), CodeFor(err))
	}

	return s.send(LadderResponse{
		ID:        request.ID,
		Words:     result.Words,
		Moves:     result.Moves,
		Steps:     result.Steps,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) send(v any) error {
	if err := s.encoder.Encode(v); err != nil {
		log.Errorf("Writing response: %v", err)
		return err
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(LadderError{ID: id, Error: message, Code: code})
}

// CodeFor maps an error to its protocol code, which is also the command line
// exit code.
func CodeFor(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, utils.ErrEmptyWord), errors.Is(err, utils.ErrNoLetters), errors.Is(err, utils.ErrWordTooLong):
		return CodeInvalid
	case errors.Is(err, dictionary.ErrLoad):
		return CodeLoad
	case errors.Is(err, ladder.ErrWordNotInDictionary):
		return CodeNotInDict
	case errors.Is(err, ladder.ErrNoPathFound):
		return CodeNoPath
	case errors.Is(err, ladder.ErrAborted):
		return CodeAborted
	default:
		return CodeInternal
	}
}
