package respond

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjstillabower/air-quality-assistant/internal/intent"
	"github.com/kjstillabower/air-quality-assistant/internal/lexicon"
	"github.com/kjstillabower/air-quality-assistant/internal/models"
	"github.com/kjstillabower/air-quality-assistant/internal/store"
)

var testReference = time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC)

func plainRenderer(st *store.Store) *Renderer {
	return NewRenderer(st, testReference, false)
}

func klStore() *store.Store {
	return store.New([]models.Reading{
		{District: "Kuala Lumpur", State: "Selangor", API: 40, Status: models.StatusGood, Date: "2025-11-27"},
		{District: "Kuala Lumpur", State: "Selangor", API: 60, Status: models.StatusModerate, Date: "2025-11-28"},
		{District: "Kuala Lumpur", State: "Selangor", API: 120, Status: models.StatusUnhealthy, Date: "2025-11-29"},
	})
}

// "KL today" must report the 120 reading, its Unhealthy status and a
// worsening of 60 points against the previous day.
func TestKLTodayScenario(t *testing.T) {
	st := klStore()
	router := intent.NewRouter(st, lexicon.NewDateExtractor(testReference), intent.Options{
		Fallbacks: intent.DefaultFallbackReplies(),
		Choose:    func(int) int { return 0 },
	}, nil)
	renderer := plainRenderer(st)

	reply := renderer.Render(router.Resolve("KL today"))
	assert.Contains(t, reply, "Air Quality in Kuala Lumpur, Selangor on 2025-11-29")
	assert.Contains(t, reply, "API Reading: 120")
	assert.Contains(t, reply, "Status: Unhealthy")
	assert.Contains(t, reply, "worsened by 60 points")
}

func TestAreaDateReport(t *testing.T) {
	r := plainRenderer(klStore())

	t.Run("improvement", func(t *testing.T) {
		reply := r.areaDateReport("Kuala Lumpur", "2025-11-27")
		assert.Contains(t, reply, "API Reading: 40")
		// 2025-11-26 has no reading, so no delta line.
		assert.NotContains(t, reply, "Change from previous day")
	})

	t.Run("no data for date", func(t *testing.T) {
		reply := r.areaDateReport("Kuala Lumpur", "2025-11-10")
		assert.Equal(t, "No data found for Kuala Lumpur on 2025-11-10", reply)
	})
}

func TestDateReport(t *testing.T) {
	st := store.New([]models.Reading{
		{District: "Ipoh", State: "Perak", API: 42, Status: models.StatusGood, Date: "2025-11-29"},
		{District: "Klang", State: "Selangor", API: 95, Status: models.StatusModerate, Date: "2025-11-29"},
	})
	r := plainRenderer(st)

	t.Run("grouped by state with summary", func(t *testing.T) {
		reply := r.dateReport("2025-11-29")
		assert.Contains(t, reply, "Perak:")
		assert.Contains(t, reply, "Selangor:")
		assert.Contains(t, reply, "• Average API: 68.5")
		assert.Contains(t, reply, "• Worst: Klang, Selangor (API: 95)")
		assert.Contains(t, reply, "• Best: Ipoh, Perak (API: 42)")
		assert.Contains(t, reply, "• Areas monitored: 2")
	})

	t.Run("empty date", func(t *testing.T) {
		assert.Equal(t, "No data available for 2025-11-10", r.dateReport("2025-11-10"))
	})
}

func TestRanking(t *testing.T) {
	st := store.New([]models.Reading{
		{District: "Kuching", State: "Sarawak", API: 30, Status: models.StatusGood, Date: "2025-11-29"},
		{District: "Klang", State: "Selangor", API: 110, Status: models.StatusUnhealthy, Date: "2025-11-29"},
		{District: "Ipoh", State: "Perak", API: 55, Status: models.StatusModerate, Date: "2025-11-29"},
	})
	r := plainRenderer(st)

	t.Run("ascending podium order", func(t *testing.T) {
		reply := r.ranking(intent.OrderAscending)
		assert.Contains(t, reply, "CLEANEST AREAS RANKING")
		lines := strings.Split(strings.TrimRight(reply, "\n"), "\n")
		assert.Contains(t, lines[2], "🥇 Kuching, Sarawak")
		assert.Contains(t, lines[3], "🥈 Ipoh, Perak")
		assert.Contains(t, lines[4], "🥉 Klang, Selangor")
	})

	t.Run("descending markers", func(t *testing.T) {
		reply := r.ranking(intent.OrderDescending)
		assert.Contains(t, reply, "MOST POLLUTED AREAS RANKING")
		assert.Contains(t, reply, "🔴 Klang, Selangor - API: 110.0")
	})

	t.Run("full ranking derives status from average", func(t *testing.T) {
		reply := r.ranking(intent.OrderFull)
		assert.Contains(t, reply, "COMPLETE AIR QUALITY RANKING")
		assert.Contains(t, reply, "Kuching, Sarawak - API: 30.0 (Good)")
		assert.Contains(t, reply, "Klang, Selangor - API: 110.0 (Unhealthy)")
	})

	t.Run("capped at ten entries", func(t *testing.T) {
		var readings []models.Reading
		for i := 0; i < 12; i++ {
			readings = append(readings, models.Reading{
				District: string(rune('A' + i)), State: "S", API: 10 + i, Date: "2025-11-29",
			})
		}
		reply := plainRenderer(store.New(readings)).ranking(intent.OrderAscending)
		assert.Equal(t, 2+rankingCap, len(strings.Split(strings.TrimRight(reply, "\n"), "\n")))

		full := plainRenderer(store.New(readings)).ranking(intent.OrderFull)
		assert.Equal(t, 2+12, len(strings.Split(strings.TrimRight(full, "\n"), "\n")))
	})
}

func TestHealthAdvisory(t *testing.T) {
	st := store.New([]models.Reading{
		{District: "Kuala Lumpur", State: "Kuala Lumpur", API: 42, Status: models.StatusGood, Date: "2025-11-29"},
		{District: "Klang", State: "Selangor", API: 120, Status: models.StatusUnhealthy, Date: "2025-11-29"},
		{District: "Ipoh", State: "Perak", API: 75, Status: models.StatusModerate, Date: "2025-11-29"},
		{District: "Kuala Lumpur", State: "Kuala Lumpur", API: 90, Status: models.StatusModerate, Date: "2025-11-28"},
	})
	r := plainRenderer(st)

	t.Run("good tier", func(t *testing.T) {
		reply := r.healthAdvisory("kl")
		assert.Contains(t, reply, "Health Advisory for kl (Today - 29 Nov 2025)")
		assert.Contains(t, reply, "📊 API: 42 (Good)")
		assert.Contains(t, reply, "EXCELLENT CONDITIONS - GO OUTSIDE!")
		assert.Contains(t, reply, "General Tips:")
		// Only today's reading, not yesterday's.
		assert.NotContains(t, reply, "API: 90")
	})

	t.Run("moderate tier", func(t *testing.T) {
		assert.Contains(t, r.healthAdvisory("ipoh"), "MODERATE CONDITIONS - PROCEED WITH CAUTION")
	})

	t.Run("unhealthy tier", func(t *testing.T) {
		assert.Contains(t, r.healthAdvisory("klang"), "UNHEALTHY CONDITIONS - LIMIT OUTDOOR TIME")
	})

	t.Run("unknown location", func(t *testing.T) {
		reply := r.healthAdvisory("penang")
		assert.Contains(t, reply, "I couldn't find specific air quality data for penang today.")
	})
}

func TestSuperlatives(t *testing.T) {
	st := store.New([]models.Reading{
		{District: "Ipoh", State: "Perak", API: 80, Status: models.StatusModerate, Date: "2025-11-27"},
		{District: "Ipoh", State: "Perak", API: 30, Status: models.StatusGood, Date: "2025-11-29"},
		{District: "Klang", State: "Selangor", API: 110, Status: models.StatusUnhealthy, Date: "2025-11-29"},
	})
	r := plainRenderer(st)

	t.Run("worst days use raw readings", func(t *testing.T) {
		reply := r.superlative(intent.ScopeDays, intent.OrderDescending)
		lines := strings.Split(strings.TrimRight(reply, "\n"), "\n")
		assert.Equal(t, "Worst air quality days recorded:", lines[0])
		assert.Contains(t, lines[1], "2025-11-29 - Klang, Selangor - API: 110")
		assert.Contains(t, lines[2], "2025-11-27 - Ipoh, Perak - API: 80")
	})

	t.Run("worst areas use latest per district", func(t *testing.T) {
		reply := r.superlative(intent.ScopeAreas, intent.OrderDescending)
		lines := strings.Split(strings.TrimRight(reply, "\n"), "\n")
		assert.Equal(t, "Current worst air quality areas:", lines[0])
		assert.Contains(t, lines[1], "Klang, Selangor - API: 110")
		// Ipoh's latest is 30, not its older 80.
		assert.Contains(t, lines[2], "Ipoh, Perak - API: 30")
	})
}

func TestAreaHistory(t *testing.T) {
	r := plainRenderer(klStore())

	reply := r.areaHistory("Kuala Lumpur", "Selangor")
	assert.Contains(t, reply, "Air Quality History for Kuala Lumpur, Selangor:")
	assert.Contains(t, reply, "Latest (2025-11-29): API 120 (Unhealthy)")
	assert.Contains(t, reply, "Trend: worsened by 60 points from previous day")
	assert.Contains(t, reply, "• 2025-11-27 - API: 40 (Good)")
	assert.Contains(t, reply, "Advice: Everyone may experience health effects.")

	t.Run("unknown area", func(t *testing.T) {
		assert.Equal(t, "Sorry, I couldn't find data for Seremban, Negeri Sembilan",
			r.areaHistory("Seremban", "Negeri Sembilan"))
	})
}

func TestMonthAndHistoryReports(t *testing.T) {
	st := store.New([]models.Reading{
		{District: "A", State: "S", API: 80, Status: models.StatusModerate, Date: "2025-10-30"},
		{District: "A", State: "S", API: 60, Status: models.StatusModerate, Date: "2025-11-10"},
		{District: "A", State: "S", API: 40, Status: models.StatusGood, Date: "2025-11-11"},
	})
	r := plainRenderer(st)

	t.Run("both months in one response", func(t *testing.T) {
		reply := r.monthAnalysis("october november")
		assert.Contains(t, reply, "October 2025 Analysis")
		assert.Contains(t, reply, "November 2025 Analysis")
		assert.Contains(t, reply, "• Average API: 80.0")
		assert.Contains(t, reply, "• Average API: 50.0")
	})

	t.Run("empty october", func(t *testing.T) {
		novOnly := plainRenderer(store.New([]models.Reading{
			{District: "A", State: "S", API: 60, Date: "2025-11-10"},
		}))
		assert.Contains(t, novOnly.monthAnalysis("october"), "Limited October data available")
	})

	t.Run("historical summary", func(t *testing.T) {
		reply := r.historicalSummary()
		assert.Contains(t, reply, "• Total records: 3")
		assert.Contains(t, reply, "• Monitoring period: 3 days")
		assert.Contains(t, reply, "• Districts covered: 1")
		assert.Contains(t, reply, "• Data points per district: 3")
	})
}

// Every intent must degrade to a graceful "no data" reply over an
// empty store.
func TestEmptyStoreDegradesGracefully(t *testing.T) {
	r := plainRenderer(store.New(nil))

	for name, res := range map[string]intent.Resolved{
		"ranking":     {Kind: intent.KindRanking, Params: map[string]string{intent.ParamOrder: intent.OrderAscending}},
		"statistics":  {Kind: intent.KindStatistics, Params: map[string]string{}},
		"listing":     {Kind: intent.KindListing, Params: map[string]string{}},
		"superlative": {Kind: intent.KindSuperlative, Params: map[string]string{intent.ParamScope: intent.ScopeDays, intent.ParamOrder: intent.OrderDescending}},
		"compare":     {Kind: intent.KindCompare, Params: map[string]string{}},
		"history":     {Kind: intent.KindHistory, Params: map[string]string{}},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, noDataReply, r.Render(res))
		})
	}

	t.Run("trend", func(t *testing.T) {
		reply := r.Render(intent.Resolved{Kind: intent.KindTrend, Params: map[string]string{}})
		assert.Equal(t, "Not enough data for trend analysis.", reply)
	})
}

func TestColorDecoration(t *testing.T) {
	st := klStore()

	t.Run("enabled wraps status in ANSI codes", func(t *testing.T) {
		colored := NewRenderer(st, testReference, true)
		reply := colored.dateReport("2025-11-29")
		assert.Contains(t, reply, "\033[31mUnhealthy\033[0m")
	})

	t.Run("disabled leaves plain labels", func(t *testing.T) {
		reply := plainRenderer(st).dateReport("2025-11-29")
		require.NotContains(t, reply, "\033[")
		assert.Contains(t, reply, "(Unhealthy)")
	})
}

func TestKnowledgeAndFallbackPassThrough(t *testing.T) {
	r := plainRenderer(store.New(nil))
	reply := r.Render(intent.Resolved{Kind: intent.KindKnowledge, Params: map[string]string{intent.ParamReply: "canned"}})
	assert.Equal(t, "canned", reply)
}
