package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjstillabower/air-quality-assistant/internal/intent"
	"github.com/kjstillabower/air-quality-assistant/internal/lexicon"
	"github.com/kjstillabower/air-quality-assistant/internal/models"
	"github.com/kjstillabower/air-quality-assistant/internal/respond"
	"github.com/kjstillabower/air-quality-assistant/internal/store"
)

func newTestSession(t *testing.T, script string) (*Session, *strings.Builder) {
	t.Helper()
	reference := time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC)
	st := store.New([]models.Reading{
		{District: "Kuala Lumpur", State: "Selangor", API: 85, Status: models.StatusModerate, Date: "2025-11-29"},
	})
	router := intent.NewRouter(st, lexicon.NewDateExtractor(reference), intent.Options{
		Knowledge: intent.DefaultKnowledgeBase(),
		Fallbacks: intent.DefaultFallbackReplies(),
		Choose:    func(int) int { return 0 },
	}, nil)
	renderer := respond.NewRenderer(st, reference, false)

	var out strings.Builder
	return New(router, renderer, strings.NewReader(script), &out, nil, clockwork.NewFakeClock(), 280), &out
}

func TestRun_AnswersAndEndsOnFarewell(t *testing.T) {
	s, out := newTestSession(t, "hello\nquit\n")

	require.NoError(t, s.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "AI: Hello! I am Malaysia Air Pollutant AI")
	assert.Contains(t, got, "Thank you for using Malaysia Air Pollutant AI. Breathe easy!")
	// Two prompts: one per answered line; none after the farewell.
	assert.Equal(t, 2, strings.Count(got, "You: "))
}

func TestRun_SkipsEmptyLines(t *testing.T) {
	s, out := newTestSession(t, "\n   \nhello\nquit\n")

	require.NoError(t, s.Run(context.Background()))

	got := out.String()
	// A blank line re-prompts without producing a reply.
	assert.Equal(t, 4, strings.Count(got, "You: "))
	assert.Equal(t, 2, strings.Count(got, "AI: "))
}

func TestRun_RejectsOverlongLine(t *testing.T) {
	s, out := newTestSession(t, strings.Repeat("a", 300)+"\nquit\n")

	require.NoError(t, s.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, tooLongNotice)
	// The notice plus the farewell reply.
	assert.Equal(t, 2, strings.Count(got, "AI: "))
}

func TestRun_EndsWhenInputEnds(t *testing.T) {
	s, out := newTestSession(t, "hello\n")

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "AI: Hello!")
}

func TestRun_StopsOnCancelledContext(t *testing.T) {
	s, _ := newTestSession(t, "hello\nhello\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
}

func TestIsFarewell(t *testing.T) {
	assert.True(t, isFarewell("quit"))
	assert.True(t, isFarewell("I want to EXIT now"))
	assert.False(t, isFarewell("how is KL today"))
}
