// Package session runs the interactive conversation: one committed
// line in, one formatted text block out, until the input ends or the
// user says goodbye. It owns no terminal handling; any line-based
// reader works, which keeps the whole pipeline testable headlessly.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/kjstillabower/air-quality-assistant/internal/intent"
	"github.com/kjstillabower/air-quality-assistant/internal/lexicon"
	"github.com/kjstillabower/air-quality-assistant/internal/observability"
	"github.com/kjstillabower/air-quality-assistant/internal/respond"
	"github.com/kjstillabower/air-quality-assistant/internal/validation"
)

const tooLongNotice = "That message is too long for me. Try a shorter question, like 'KL today' or 'cleanest areas'."

// Session wires the router and renderer to a line-based input stream.
type Session struct {
	router   *intent.Router
	renderer *respond.Renderer
	in       io.Reader
	out      io.Writer
	logger   *zap.Logger
	clock    clockwork.Clock
	maxLen   int
	id       string
}

// New builds a session. The clock times responses and is injectable
// for tests.
func New(router *intent.Router, renderer *respond.Renderer, in io.Reader, out io.Writer, logger *zap.Logger, clock clockwork.Clock, maxLen int) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Session{
		router:   router,
		renderer: renderer,
		in:       in,
		out:      out,
		logger:   logger.With(zap.String("session_id", uuid.NewString())),
		clock:    clock,
		maxLen:   maxLen,
	}
}

// Run consumes committed lines until input ends, the context is
// cancelled, or a farewell ("quit"/"exit") is answered. One query is
// fully resolved before the next line is read.
func (s *Session) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	fmt.Fprint(s.out, "You: ")

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		utterance, err := validation.ValidateUtterance(scanner.Text(), s.maxLen)
		if err != nil {
			if !errors.Is(err, validation.ErrUtteranceEmpty) {
				fmt.Fprintf(s.out, "AI: %s\n\n", tooLongNotice)
			}
			fmt.Fprint(s.out, "You: ")
			continue
		}

		if s.answer(utterance) {
			return nil
		}
		fmt.Fprint(s.out, "You: ")
	}
	return scanner.Err()
}

// answer resolves and renders one utterance. Reports whether the reply
// was a farewell, which ends the session.
func (s *Session) answer(utterance string) bool {
	queryID := uuid.NewString()
	start := s.clock.Now()

	resolved := s.router.Resolve(utterance)
	reply := s.renderer.Render(resolved)

	elapsed := s.clock.Since(start)
	observability.ObserveQuery(string(resolved.Kind), elapsed)
	s.logger.Debug("query answered",
		zap.String("query_id", queryID),
		zap.String("intent", string(resolved.Kind)),
		zap.Duration("duration", elapsed))

	fmt.Fprintf(s.out, "AI: %s\n\n", reply)
	return resolved.Kind == intent.KindKnowledge && isFarewell(utterance)
}

func isFarewell(utterance string) bool {
	return lexicon.ContainsKeyword(utterance, "quit") || lexicon.ContainsKeyword(utterance, "exit")
}
