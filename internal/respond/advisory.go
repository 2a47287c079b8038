package respond

import (
	"fmt"
	"strings"

	"github.com/kjstillabower/air-quality-assistant/internal/lexicon"
	"github.com/kjstillabower/air-quality-assistant/internal/models"
)

const clarifyLocationReply = "🤔 I'd be happy to advise you about going out! But first, could you tell me which area you're in? " +
	"For example: 'Kuala Lumpur', 'Selangor', 'Penang', etc. This will help me give you more accurate advice based on local air quality."

const generalTips = "💡 General Tips:\n" +
	"• Check air quality before planning outdoor activities\n" +
	"• Sensitive groups include children, elderly, and people with respiratory conditions\n" +
	"• Use air purifiers indoors if air quality is poor\n" +
	"• Stay hydrated and listen to your body\n"

// healthAdvisory reports today's readings for the detected location,
// each with a severity-tiered advisory block keyed off the numeric
// reading.
func (r *Renderer) healthAdvisory(location string) string {
	today := r.reference.Format(lexicon.DateLayout)

	var matches []models.Reading
	for _, rd := range r.store.ForDate(today) {
		if lexicon.MatchesLocation(location, rd.District, rd.State) {
			matches = append(matches, rd)
		}
	}
	if len(matches) == 0 {
		return "I couldn't find specific air quality data for " + location + " today. " +
			"You can check the overall Malaysia air quality or try asking about a nearby major city."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📍 Health Advisory for %s (Today - %s):\n", location, r.reference.Format("2 Jan 2006"))
	b.WriteString("================================\n\n")

	for _, rd := range matches {
		fmt.Fprintf(&b, "🏙️  %s, %s\n", rd.District, rd.State)
		fmt.Fprintf(&b, "📊 API: %d (%s)\n\n", rd.API, r.decorate(rd.Status))
		b.WriteString(advisoryTier(rd.API))
		b.WriteString("\n")
	}

	b.WriteString(generalTips)
	return b.String()
}

// advisoryTier picks the bullet block for a reading's severity. The
// thresholds mirror StatusFromAPI.
func advisoryTier(api int) string {
	switch {
	case api <= 50:
		return "✅ EXCELLENT CONDITIONS - GO OUTSIDE! 🌞\n" +
			"• Perfect for all outdoor activities\n" +
			"• Great day for exercise, sports, and recreation\n" +
			"• Enjoy the fresh air safely\n"
	case api <= 100:
		return "⚠️ MODERATE CONDITIONS - PROCEED WITH CAUTION\n" +
			"• Generally acceptable for most people\n" +
			"• Unusually sensitive individuals should reduce prolonged outdoor exertion\n" +
			"• Good for light activities like walking\n" +
			"• Consider shorter outdoor sessions\n"
	default:
		return "❌ UNHEALTHY CONDITIONS - LIMIT OUTDOOR TIME\n" +
			"• Everyone may begin to experience health effects\n" +
			"• Sensitive groups should avoid outdoor activities\n" +
			"• If you must go out, keep it brief\n" +
			"• Avoid strenuous exercise outdoors\n" +
			"• Consider indoor alternatives\n"
	}
}
