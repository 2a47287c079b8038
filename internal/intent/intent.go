// Package intent classifies a free-text utterance into a resolved
// intent via an ordered cascade of detectors. Detectors only classify
// and extract parameters; aggregation and text rendering happen in the
// respond package, keeping the two independently testable.
package intent

// Kind identifies the classified purpose of an utterance.
type Kind string

const (
	KindRanking     Kind = "ranking"
	KindAdvisory    Kind = "advisory"
	KindDateQuery   Kind = "date"
	KindToday       Kind = "today"
	KindTrend       Kind = "trend"
	KindHistory     Kind = "history"
	KindMonth       Kind = "month"
	KindCompare     Kind = "compare"
	KindSuperlative Kind = "superlative"
	KindListing     Kind = "listing"
	KindStatistics  Kind = "statistics"
	KindArea        Kind = "area"
	KindKnowledge   Kind = "knowledge"
	KindFallback    Kind = "fallback"
)

// Parameter keys used in Resolved.Params.
const (
	ParamOrder    = "order"    // "asc", "desc" or "full" (rankings, superlatives)
	ParamScope    = "scope"    // "days" or "areas" (superlatives)
	ParamLocation = "location" // detected place name (advisory)
	ParamClarify  = "clarify"  // "true" when the advisory needs a location first
	ParamDistrict = "district"
	ParamState    = "state"
	ParamDate     = "date"
	ParamMonths   = "months" // space-separated "YYYY-MM month-name" pairs
	ParamReply    = "reply"  // canned text (knowledge base, fallback)
)

// Order and scope parameter values.
const (
	OrderAscending  = "asc"
	OrderDescending = "desc"
	OrderFull       = "full"

	ScopeDays  = "days"
	ScopeAreas = "areas"
)

// Resolved is the transient product of classification: an intent kind
// plus the parameters extracted from the utterance.
type Resolved struct {
	Kind   Kind
	Params map[string]string
}

func resolved(kind Kind, kv ...string) Resolved {
	r := Resolved{Kind: kind, Params: make(map[string]string, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Params[kv[i]] = kv[i+1]
	}
	return r
}

// Detector is one step of the cascade. TryMatch reports whether the
// utterance belongs to this detector; detectors never fail, they either
// claim a query or pass it on.
type Detector interface {
	Name() string
	TryMatch(utterance string) (Resolved, bool)
}
