package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/kjstillabower/air-quality-assistant/internal/config"
	"github.com/kjstillabower/air-quality-assistant/internal/diag"
	"github.com/kjstillabower/air-quality-assistant/internal/intent"
	"github.com/kjstillabower/air-quality-assistant/internal/lexicon"
	"github.com/kjstillabower/air-quality-assistant/internal/observability"
	"github.com/kjstillabower/air-quality-assistant/internal/respond"
	"github.com/kjstillabower/air-quality-assistant/internal/session"
	"github.com/kjstillabower/air-quality-assistant/internal/store"
)

func main() {
	logger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	clock := clockwork.NewRealClock()

	st, err := store.LoadFile(cfg.DataFile, logger)
	if err != nil {
		// Degrade to an empty store; every answer becomes "no data".
		logger.Warn("readings file unavailable", zap.String("file", cfg.DataFile), zap.Error(err))
	}
	observability.SetRecordsLoaded(st.Len())

	reference := cfg.ReferenceTime(clock)
	dates := lexicon.NewDateExtractor(reference)

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	router := intent.NewRouter(st, dates, intent.Options{
		Knowledge: intent.DefaultKnowledgeBase(),
		Fallbacks: intent.DefaultFallbackReplies(),
		Choose:    rng.Intn,
	}, logger)
	renderer := respond.NewRenderer(st, reference, cfg.Color)

	if cfg.DiagAddr != "" {
		server := diag.New(cfg.DiagAddr, logger)
		server.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Warn("diagnostics shutdown", zap.Error(err))
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Loaded %d air quality records.\n", st.Len())
	printBanner(os.Stdout)

	sess := session.New(router, renderer, os.Stdin, os.Stdout, logger, clock, cfg.UtteranceMaxLen)
	if err := sess.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("session", zap.Error(err))
	}

	printClosing(os.Stdout)
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "\n======================================================")
	fmt.Fprintln(w, "    MALAYSIA AIR POLLUTANT AI - HISTORICAL DATA    ")
	fmt.Fprintln(w, "======================================================")
	fmt.Fprintln(w, "I have 1 month of daily API data (Oct 29 - Nov 29, 2025)!")
	fmt.Fprintln(w, "Try asking about:")
	fmt.Fprintln(w, "- Specific dates: 'today', '29 Nov', 'yesterday'")
	fmt.Fprintln(w, "- Areas with dates: 'KL today', 'Selangor on 29 Nov', 'melaka today'")
	fmt.Fprintln(w, "- Health advice: 'can I go out today?', 'is it safe to exercise in KL?'")
	fmt.Fprintln(w, "- Rankings: 'cleanest areas', 'most polluted ranking', 'top 10'")
	fmt.Fprintln(w, "- Trends and comparisons")
	fmt.Fprintln(w, "Type 'quit' or 'exit' to leave.")
	fmt.Fprintln(w)
}

func printClosing(w io.Writer) {
	fmt.Fprintln(w, "\n======================================================")
	fmt.Fprintln(w, "           Thank you for using our service!           ")
	fmt.Fprintln(w, "======================================================")
}
