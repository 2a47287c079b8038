package intent

import (
	"go.uber.org/zap"

	"github.com/kjstillabower/air-quality-assistant/internal/lexicon"
	"github.com/kjstillabower/air-quality-assistant/internal/store"
)

// Router runs the fixed-priority detector cascade. The first detector
// to claim an utterance wins; the fallback detector at the end always
// matches, so Resolve never fails.
type Router struct {
	detectors []Detector
	logger    *zap.Logger
}

// Options carries the injected configuration of a Router: the canned
// knowledge base, the fallback pool and the chooser that picks from it.
// Injecting the chooser keeps fallback selection deterministic in tests.
type Options struct {
	Knowledge []KnowledgeEntry
	Fallbacks []string
	Choose    func(n int) int
}

// NewRouter assembles the cascade in its fixed priority order over the
// given store and date extractor.
func NewRouter(st *store.Store, dates *lexicon.DateExtractor, opts Options, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		logger: logger,
		detectors: []Detector{
			RankingDetector{},
			AdvisoryDetector{},
			DateDetector{Store: st, Dates: dates},
			TodayDetector{Store: st, Dates: dates},
			TemporalDetector{},
			SuperlativeDetector{},
			ListingDetector{},
			AreaDetector{Store: st},
			KnowledgeDetector{Entries: opts.Knowledge},
			FallbackDetector{Pool: opts.Fallbacks, Choose: opts.Choose},
		},
	}
}

// Resolve classifies an utterance into the first matching intent.
func (r *Router) Resolve(utterance string) Resolved {
	for _, d := range r.detectors {
		if res, ok := d.TryMatch(utterance); ok {
			r.logger.Debug("intent resolved",
				zap.String("detector", d.Name()),
				zap.String("kind", string(res.Kind)))
			return res
		}
	}
	// The fallback detector always matches; this is unreachable with a
	// correctly assembled cascade.
	return Resolved{Kind: KindFallback, Params: map[string]string{ParamReply: ""}}
}
