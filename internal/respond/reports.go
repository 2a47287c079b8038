package respond

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kjstillabower/air-quality-assistant/internal/aggregate"
	"github.com/kjstillabower/air-quality-assistant/internal/lexicon"
	"github.com/kjstillabower/air-quality-assistant/internal/models"
)

// areaDateReport is the single-area, single-date view: reading, status,
// advice, plus a day-over-day delta when the prior reading exists.
func (r *Renderer) areaDateReport(area, date string) string {
	for _, rd := range r.store.All() {
		if rd.Date != date {
			continue
		}
		if !lexicon.ContainsKeyword(rd.District, area) && !lexicon.ContainsKeyword(rd.State, area) {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Air Quality in %s, %s on %s:\n", rd.District, rd.State, date)
		fmt.Fprintf(&b, "• API Reading: %d\n", rd.API)
		fmt.Fprintf(&b, "• Status: %s\n", rd.Status)
		fmt.Fprintf(&b, "• Advice: %s\n", adviceForStatus(rd.Status))

		if prevDate := aggregate.PreviousDate(date); prevDate != "" {
			for _, prev := range r.store.ForArea(rd.District, rd.State) {
				if prev.Date == prevDate {
					b.WriteString("• Change from previous day: " + deltaPhrase(rd.API-prev.API) + "\n")
					break
				}
			}
		}
		return b.String()
	}
	return "No data found for " + area + " on " + date
}

// deltaPhrase describes a day-over-day change in points.
func deltaPhrase(change int) string {
	verdict := aggregate.TrendStable
	if change > 0 {
		verdict = aggregate.TrendWorsened
	} else if change < 0 {
		verdict = aggregate.TrendImproved
		change = -change
	}
	return fmt.Sprintf("%s by %d points", verdict, change)
}

// dateReport is the multi-state view of one day, grouped by state with
// a computed summary.
func (r *Renderer) dateReport(date string) string {
	dayReadings := r.store.ForDate(date)
	if len(dayReadings) == 0 {
		return "No data available for " + date
	}

	byState := make(map[string][]models.Reading)
	var states []string
	for _, rd := range dayReadings {
		if _, seen := byState[rd.State]; !seen {
			states = append(states, rd.State)
		}
		byState[rd.State] = append(byState[rd.State], rd)
	}
	sort.Strings(states)

	var b strings.Builder
	fmt.Fprintf(&b, "Air Quality Data for %s:\n", date)
	b.WriteString("================================\n")
	for _, state := range states {
		fmt.Fprintf(&b, "\n%s:\n", state)
		for _, rd := range byState[state] {
			fmt.Fprintf(&b, "  • %s - API: %d (%s)\n", rd.District, rd.API, r.decorate(rd.Status))
		}
	}

	summary, ok := aggregate.SummarizeDate(dayReadings)
	if ok {
		fmt.Fprintf(&b, "\nSummary for %s:\n", date)
		fmt.Fprintf(&b, "• Average API: %.1f\n", summary.Average)
		fmt.Fprintf(&b, "• Worst: %s (API: %d)\n", summary.Worst.AreaKey(), summary.Worst.API)
		fmt.Fprintf(&b, "• Best: %s (API: %d)\n", summary.Best.AreaKey(), summary.Best.API)
		fmt.Fprintf(&b, "• Areas monitored: %d\n", summary.Count)
	}
	return b.String()
}

// areaHistory is the per-area report: latest reading, one-step trend,
// last five days and status-keyed advice.
func (r *Renderer) areaHistory(district, state string) string {
	history := aggregate.HistoryForArea(r.store.All(), district, state)
	if len(history) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find data for %s, %s", district, state)
	}

	latest := history[0]
	var b strings.Builder
	fmt.Fprintf(&b, "Air Quality History for %s, %s:\n", district, state)
	fmt.Fprintf(&b, "Latest (%s): API %d (%s)\n\n", latest.Date, latest.API, latest.Status)

	if len(history) >= 2 {
		fmt.Fprintf(&b, "Trend: %s from previous day\n\n", deltaPhrase(latest.API-history[1].API))
	}

	b.WriteString("Last 5 days:\n")
	for i, rd := range history {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&b, "• %s - API: %d (%s)\n", rd.Date, rd.API, rd.Status)
	}

	b.WriteString("\nAdvice: " + adviceForStatus(latest.Status))
	return b.String()
}

func (r *Renderer) trendAnalysis() string {
	trend, ok := aggregate.AnalyzeTrend(r.store.All())
	if !ok {
		return "Not enough data for trend analysis."
	}

	var b strings.Builder
	b.WriteString("Air Quality Trend Analysis (Early vs Late November):\n")
	fmt.Fprintf(&b, "• Early Nov (1st-3rd): Average API %.1f\n", trend.EarlyAverage)
	fmt.Fprintf(&b, "• Late Nov (27th-29th): Average API %.1f\n", trend.LateAverage)
	switch trend.Verdict {
	case aggregate.TrendWorsened:
		b.WriteString("• Overall: Air quality has worsened\n")
	case aggregate.TrendImproved:
		b.WriteString("• Overall: Air quality has improved\n")
	default:
		b.WriteString("• Overall: Air quality remained relatively stable\n")
	}
	return b.String()
}

func (r *Renderer) historicalSummary() string {
	readings := r.store.All()
	if len(readings) == 0 {
		return noDataReply
	}
	districts := aggregate.CountDistricts(readings)

	var b strings.Builder
	b.WriteString("Historical Data Summary (Oct 29 - Nov 29, 2025):\n")
	fmt.Fprintf(&b, "• Total records: %d\n", len(readings))
	fmt.Fprintf(&b, "• Monitoring period: %d days\n", aggregate.CountDays(readings))
	fmt.Fprintf(&b, "• Districts covered: %d\n", districts)
	if districts > 0 {
		fmt.Fprintf(&b, "• Data points per district: %d\n", len(readings)/districts)
	}
	b.WriteString("\nAsk me about specific dates, trends, or comparisons!")
	return b.String()
}

// monthAnalysis renders one block per requested month; both may appear
// in a single response.
func (r *Renderer) monthAnalysis(months string) string {
	var b strings.Builder
	for _, month := range strings.Fields(months) {
		switch month {
		case "october":
			summary, ok := aggregate.SummarizeMonth(r.store.All(), "2025-10")
			if !ok {
				b.WriteString("Limited October data available (only 3 days).\n")
				continue
			}
			b.WriteString("October 2025 Analysis (3 days):\n")
			fmt.Fprintf(&b, "• Average API: %.1f\n", summary.Average)
			fmt.Fprintf(&b, "• Days recorded: %d\n", summary.Count)
			b.WriteString("• Generally showed higher pollution levels\n")
		case "november":
			summary, ok := aggregate.SummarizeMonth(r.store.All(), "2025-11")
			if !ok {
				b.WriteString("No November data available.\n")
				continue
			}
			b.WriteString("November 2025 Analysis (29 days):\n")
			fmt.Fprintf(&b, "• Average API: %.1f\n", summary.Average)
			fmt.Fprintf(&b, "• Days recorded: %d\n", summary.Count)
			b.WriteString("• Showed improving trend throughout the month\n")
		}
	}
	if b.Len() == 0 {
		return noDataReply
	}
	return b.String()
}

func (r *Renderer) allAreas() string {
	if r.store.Empty() {
		return noDataReply
	}
	latest := aggregate.LatestByDistrict(r.store.All())
	districts := make([]string, 0, len(latest))
	for d := range latest {
		districts = append(districts, d)
	}
	sort.Strings(districts)

	var b strings.Builder
	b.WriteString("All monitored areas (latest readings):\n")
	for _, d := range districts {
		rd := latest[d]
		fmt.Fprintf(&b, "• %s, %s - API: %d (%s) on %s\n", rd.District, rd.State, rd.API, rd.Status, rd.Date)
	}
	return b.String()
}

func (r *Renderer) statistics() string {
	stats, ok := aggregate.Summarize(r.store.All())
	if !ok {
		return noDataReply
	}

	var b strings.Builder
	b.WriteString("Malaysia Air Quality Statistics (Oct 29 - Nov 29):\n")
	fmt.Fprintf(&b, "• Total records: %d\n", stats.Records)
	fmt.Fprintf(&b, "• Districts monitored: %d\n", stats.Districts)
	fmt.Fprintf(&b, "• Average API: %.1f\n", stats.Average)
	fmt.Fprintf(&b, "• Highest API: %d\n", stats.Max)
	fmt.Fprintf(&b, "• Lowest API: %d\n", stats.Min)
	fmt.Fprintf(&b, "• Good: %d readings\n", stats.Good)
	fmt.Fprintf(&b, "• Moderate: %d readings\n", stats.Moderate)
	fmt.Fprintf(&b, "• Unhealthy: %d readings", stats.Unhealthy)
	return b.String()
}
