package intent

import (
	"strings"

	"github.com/kjstillabower/air-quality-assistant/internal/lexicon"
	"github.com/kjstillabower/air-quality-assistant/internal/store"
)

// RankingDetector resolves ranking requests. Descending cues are
// checked before ascending and generic ones, so "rank worst" means the
// most-polluted ranking. Bare "worst"/"best" without a ranking cue are
// left for the superlative detector further down the cascade.
type RankingDetector struct{}

func (RankingDetector) Name() string { return "ranking" }

func (RankingDetector) TryMatch(utterance string) (Resolved, bool) {
	hasCue := lexicon.ContainsAny(utterance, "rank", "top", "list")

	if lexicon.ContainsAny(utterance, "most polluted", "dirtiest") ||
		(hasCue && lexicon.ContainsKeyword(utterance, "worst")) {
		return resolved(KindRanking, ParamOrder, OrderDescending), true
	}
	if lexicon.ContainsAny(utterance, "rank", "cleanest") {
		return resolved(KindRanking, ParamOrder, OrderAscending), true
	}
	if lexicon.ContainsAny(utterance, "ranking", "top", "list") {
		return resolved(KindRanking, ParamOrder, OrderFull), true
	}
	return Resolved{}, false
}

// healthKeywords trigger the advisory flow. Substring semantics apply,
// so "running" triggers via "run".
var healthKeywords = []string{
	"go out", "go outside", "outdoor", "exercise", "workout",
	"jog", "run", "walk", "healthy", "safe", "haze",
}

// AdvisoryDetector resolves activity-safety questions. Without a
// detected location it asks for one rather than guessing an area.
type AdvisoryDetector struct{}

func (AdvisoryDetector) Name() string { return "advisory" }

func (AdvisoryDetector) TryMatch(utterance string) (Resolved, bool) {
	if !lexicon.ContainsAny(utterance, healthKeywords...) {
		return Resolved{}, false
	}
	location := lexicon.DetectLocation(utterance)
	if location == "" {
		return resolved(KindAdvisory, ParamClarify, "true"), true
	}
	return resolved(KindAdvisory, ParamLocation, location), true
}

// DateDetector resolves queries carrying an explicit date. When the
// utterance also names an area, the first matching reading supplies the
// district; otherwise the whole day is reported.
type DateDetector struct {
	Store *store.Store
	Dates *lexicon.DateExtractor
}

func (DateDetector) Name() string { return "date" }

func (d DateDetector) TryMatch(utterance string) (Resolved, bool) {
	date := d.Dates.Extract(utterance)
	if date == "" {
		return Resolved{}, false
	}
	for _, r := range d.Store.All() {
		if lexicon.MatchesArea(utterance, r.District, r.State) {
			return resolved(KindDateQuery, ParamDate, date, ParamDistrict, r.District), true
		}
	}
	return resolved(KindDateQuery, ParamDate, date), true
}

// TodayDetector is the "today" shortcut, active only when an
// air-quality keyword co-occurs with "today".
type TodayDetector struct {
	Store *store.Store
	Dates *lexicon.DateExtractor
}

func (TodayDetector) Name() string { return "today" }

func (d TodayDetector) TryMatch(utterance string) (Resolved, bool) {
	if !lexicon.ContainsKeyword(utterance, "today") {
		return Resolved{}, false
	}
	if !lexicon.ContainsAny(utterance, "api", "air quality") {
		return Resolved{}, false
	}
	date := d.Dates.Reference()
	for _, r := range d.Store.All() {
		if lexicon.MatchesArea(utterance, r.District, r.State) {
			return resolved(KindToday, ParamDate, date, ParamDistrict, r.District), true
		}
	}
	return resolved(KindToday, ParamDate, date), true
}

// TemporalDetector resolves trend, history, per-month and comparison
// queries, in that priority order.
type TemporalDetector struct{}

func (TemporalDetector) Name() string { return "temporal" }

func (TemporalDetector) TryMatch(utterance string) (Resolved, bool) {
	switch {
	case lexicon.ContainsKeyword(utterance, "trend"):
		return resolved(KindTrend), true
	case lexicon.ContainsAny(utterance, "history", "historical"):
		return resolved(KindHistory), true
	case lexicon.ContainsAny(utterance, "november", "october"):
		var months []string
		if lexicon.ContainsKeyword(utterance, "october") {
			months = append(months, "october")
		}
		if lexicon.ContainsKeyword(utterance, "november") {
			months = append(months, "november")
		}
		return resolved(KindMonth, ParamMonths, strings.Join(months, " ")), true
	case lexicon.ContainsKeyword(utterance, "compare"):
		return resolved(KindCompare), true
	}
	return Resolved{}, false
}

// SuperlativeDetector resolves worst/best queries: with "day"/"date"
// over raw readings across the whole dataset, otherwise over the latest
// reading per district.
type SuperlativeDetector struct{}

func (SuperlativeDetector) Name() string { return "superlative" }

func (SuperlativeDetector) TryMatch(utterance string) (Resolved, bool) {
	var order string
	switch {
	case lexicon.ContainsKeyword(utterance, "worst"):
		order = OrderDescending
	case lexicon.ContainsKeyword(utterance, "best"):
		order = OrderAscending
	default:
		return Resolved{}, false
	}
	scope := ScopeAreas
	if lexicon.ContainsAny(utterance, "day", "date") {
		scope = ScopeDays
	}
	return resolved(KindSuperlative, ParamOrder, order, ParamScope, scope), true
}

// ListingDetector resolves the latest-readings listing and the
// dataset-statistics queries.
type ListingDetector struct{}

func (ListingDetector) Name() string { return "listing" }

func (ListingDetector) TryMatch(utterance string) (Resolved, bool) {
	if lexicon.ContainsAny(utterance, "list", "all") {
		return resolved(KindListing), true
	}
	if lexicon.ContainsKeyword(utterance, "stat") {
		return resolved(KindStatistics), true
	}
	return Resolved{}, false
}

// AreaDetector resolves bare area mentions to a per-area history
// report. First-hit: the first reading whose district or state matches
// supplies the representative area.
type AreaDetector struct {
	Store *store.Store
}

func (AreaDetector) Name() string { return "area" }

func (d AreaDetector) TryMatch(utterance string) (Resolved, bool) {
	for _, r := range d.Store.All() {
		if lexicon.MatchesArea(utterance, r.District, r.State) {
			return resolved(KindArea, ParamDistrict, r.District, ParamState, r.State), true
		}
	}
	return Resolved{}, false
}

// KnowledgeDetector answers from a fixed ordered phrase table; the
// first phrase contained in the utterance wins.
type KnowledgeDetector struct {
	Entries []KnowledgeEntry
}

func (KnowledgeDetector) Name() string { return "knowledge" }

func (d KnowledgeDetector) TryMatch(utterance string) (Resolved, bool) {
	for _, e := range d.Entries {
		if lexicon.ContainsKeyword(utterance, e.Phrase) {
			return resolved(KindKnowledge, ParamReply, e.Reply), true
		}
	}
	return Resolved{}, false
}

// FallbackDetector always matches, picking one canned suggestion via
// the injected chooser.
type FallbackDetector struct {
	Pool   []string
	Choose func(n int) int
}

func (FallbackDetector) Name() string { return "fallback" }

func (d FallbackDetector) TryMatch(string) (Resolved, bool) {
	if len(d.Pool) == 0 {
		return resolved(KindFallback, ParamReply, ""), true
	}
	return resolved(KindFallback, ParamReply, d.Pool[d.Choose(len(d.Pool))]), true
}
