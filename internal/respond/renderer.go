// Package respond renders resolved intents into human-readable text
// blocks: rankings, advisories, date reports and summaries. It owns all
// aggregation calls and all formatting, so intent detection stays free
// of output concerns.
package respond

import (
	"time"

	"github.com/kjstillabower/air-quality-assistant/internal/intent"
	"github.com/kjstillabower/air-quality-assistant/internal/models"
	"github.com/kjstillabower/air-quality-assistant/internal/store"
)

const noDataReply = "No data available."

// ANSI wraps for status labels. Decoration is optional; headless
// callers construct the renderer with color off.
const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// Renderer turns a resolved intent into a formatted text block using
// the record store. The reference time is the dataset's "today".
type Renderer struct {
	store     *store.Store
	reference time.Time
	color     bool
}

// NewRenderer builds a renderer over the store. color enables ANSI
// status decoration.
func NewRenderer(st *store.Store, reference time.Time, color bool) *Renderer {
	return &Renderer{store: st, reference: reference, color: color}
}

// Render produces the response text for a resolved intent. It never
// fails; unanswerable queries yield informational "not found" text.
func (r *Renderer) Render(res intent.Resolved) string {
	switch res.Kind {
	case intent.KindRanking:
		return r.ranking(res.Params[intent.ParamOrder])
	case intent.KindAdvisory:
		if res.Params[intent.ParamClarify] == "true" {
			return clarifyLocationReply
		}
		return r.healthAdvisory(res.Params[intent.ParamLocation])
	case intent.KindDateQuery, intent.KindToday:
		if district, ok := res.Params[intent.ParamDistrict]; ok {
			return r.areaDateReport(district, res.Params[intent.ParamDate])
		}
		return r.dateReport(res.Params[intent.ParamDate])
	case intent.KindTrend:
		return r.trendAnalysis()
	case intent.KindHistory:
		return r.historicalSummary()
	case intent.KindMonth:
		return r.monthAnalysis(res.Params[intent.ParamMonths])
	case intent.KindCompare:
		return r.areaComparison()
	case intent.KindSuperlative:
		return r.superlative(res.Params[intent.ParamScope], res.Params[intent.ParamOrder])
	case intent.KindListing:
		return r.allAreas()
	case intent.KindStatistics:
		return r.statistics()
	case intent.KindArea:
		return r.areaHistory(res.Params[intent.ParamDistrict], res.Params[intent.ParamState])
	case intent.KindKnowledge, intent.KindFallback:
		return res.Params[intent.ParamReply]
	}
	return noDataReply
}

// decorate wraps a status label in its ANSI color when decoration is on.
func (r *Renderer) decorate(status models.Status) string {
	if !r.color {
		return string(status)
	}
	switch status {
	case models.StatusGood:
		return colorGreen + string(status) + colorReset
	case models.StatusModerate:
		return colorYellow + string(status) + colorReset
	case models.StatusUnhealthy:
		return colorRed + string(status) + colorReset
	}
	return string(status)
}

// adviceForStatus maps a stored status label to its canned advice line.
func adviceForStatus(status models.Status) string {
	switch status {
	case models.StatusGood:
		return "Air quality is satisfactory. Enjoy outdoor activities!"
	case models.StatusModerate:
		return "Air quality is acceptable. Sensitive people should reduce prolonged outdoor exertion."
	case models.StatusUnhealthy:
		return "Everyone may experience health effects. Reduce outdoor activities."
	}
	return "No specific advice available."
}
