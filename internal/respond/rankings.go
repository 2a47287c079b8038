package respond

import (
	"fmt"
	"strings"

	"github.com/kjstillabower/air-quality-assistant/internal/aggregate"
	"github.com/kjstillabower/air-quality-assistant/internal/intent"
	"github.com/kjstillabower/air-quality-assistant/internal/models"
)

// rankingCap bounds the two filtered rankings; the full ranking is
// uncapped.
const rankingCap = 10

func (r *Renderer) ranking(order string) string {
	averages := aggregate.AverageByArea(r.store.All())
	if len(averages) == 0 {
		return noDataReply
	}

	switch order {
	case intent.OrderAscending:
		aggregate.SortAveragesAscending(averages)
		return renderCappedRanking(averages,
			"🏆 CLEANEST AREAS RANKING (Average API - Lower is Better):",
			"=============================================",
			[3]string{"🥇 ", "🥈 ", "🥉 "})
	case intent.OrderDescending:
		aggregate.SortAveragesDescending(averages)
		return renderCappedRanking(averages,
			"⚠️ MOST POLLUTED AREAS RANKING (Average API - Higher is Worse):",
			"=================================================",
			[3]string{"🔴 ", "🟠 ", "🟡 "})
	default:
		aggregate.SortAveragesAscending(averages)
		return r.renderFullRanking(averages)
	}
}

func renderCappedRanking(averages []aggregate.AreaAverage, header, rule string, medals [3]string) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(rule + "\n")
	for i, a := range averages {
		if i >= rankingCap {
			break
		}
		b.WriteString(positionMarker(i, medals))
		fmt.Fprintf(&b, "%s - API: %.1f\n", a.Area, a.Average)
	}
	return b.String()
}

func (r *Renderer) renderFullRanking(averages []aggregate.AreaAverage) string {
	var b strings.Builder
	b.WriteString("📊 COMPLETE AIR QUALITY RANKING:\n")
	b.WriteString("===============================\n")
	for i, a := range averages {
		b.WriteString(positionMarker(i, [3]string{"🥇 ", "🥈 ", "🥉 "}))
		status := models.StatusFromAPI(a.Average)
		fmt.Fprintf(&b, "%s - API: %.1f (%s)\n", a.Area, a.Average, r.decorate(status))
	}
	return b.String()
}

// positionMarker decorates the podium positions; everything below gets
// a plain number.
func positionMarker(i int, medals [3]string) string {
	if i < len(medals) {
		return medals[i]
	}
	return fmt.Sprintf("%d. ", i+1)
}

func (r *Renderer) superlative(scope, order string) string {
	if r.store.Empty() {
		return noDataReply
	}
	descending := order == intent.OrderDescending

	if scope == intent.ScopeDays {
		sorted := aggregate.SortByAPI(r.store.All(), descending)
		header := "Best air quality days recorded:"
		if descending {
			header = "Worst air quality days recorded:"
		}
		var b strings.Builder
		b.WriteString(header + "\n")
		for i, rd := range sorted {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "• %s - %s, %s - API: %d (%s)\n",
				rd.Date, rd.District, rd.State, rd.API, rd.Status)
		}
		return b.String()
	}

	sorted := aggregate.LatestSortedByAPI(r.store.All(), descending)
	header := "Current best air quality areas:"
	if descending {
		header = "Current worst air quality areas:"
	}
	var b strings.Builder
	b.WriteString(header + "\n")
	for i, rd := range sorted {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&b, "• %s, %s - API: %d (%s) on %s\n",
			rd.District, rd.State, rd.API, rd.Status, rd.Date)
	}
	return b.String()
}

func (r *Renderer) areaComparison() string {
	top := aggregate.TopAreas(r.store.All(), 5)
	if len(top) == 0 {
		return noDataReply
	}
	var b strings.Builder
	b.WriteString("Area Comparison (Average API Nov 2025):\n")
	for _, a := range top {
		fmt.Fprintf(&b, "• %s: %.1f\n", a.Area, a.Average)
	}
	return b.String()
}
