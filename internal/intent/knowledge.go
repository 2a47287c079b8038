package intent

// KnowledgeEntry is one phrase→reply pair of the canned knowledge base.
type KnowledgeEntry struct {
	Phrase string
	Reply  string
}

// DefaultKnowledgeBase returns the built-in phrase table. Order is
// priority: entries are tried top to bottom and the first phrase found
// in the utterance wins.
func DefaultKnowledgeBase() []KnowledgeEntry {
	return []KnowledgeEntry{
		{"29 nov", "I have data for November 29th. Try: '29 Nov API data' or 'How was KL on 29 Nov?'"},
		{"air quality", "I have 1 month of daily API data. Which area or date are you interested in?"},
		{"api", "API stands for Air Pollutant Index. I can show historical trends since October 2025."},
		{"exit", "Thank you for using Malaysia Air Pollutant AI. Stay safe!"},
		{"hello", "Hello! I am Malaysia Air Pollutant AI with 1-month historical data (Oct-Nov 2025)."},
		{"hi", "Hi! I have daily API data. Ask me about specific dates like 'today', '29 Nov', or 'How was KL yesterday?'"},
		{"history", "I have data from October 29 to November 29, 2025. Ask about specific dates!"},
		{"malaysia", "I have air quality data for Malaysia. You can ask about states like Selangor, Penang, Johor, etc."},
		{"pollution", "I monitor air pollution levels across Malaysia. Try asking about a specific state or district."},
		{"quit", "Thank you for using Malaysia Air Pollutant AI. Breathe easy!"},
		{"today", "I can show you today's air quality data. Try: 'today api' or 'air quality today'"},
		{"trend", "I can show air quality trends. Try: 'trend in Kuala Lumpur' or 'compare months'"},
	}
}

// DefaultFallbackReplies returns the canned suggestion pool used when
// nothing else matched.
func DefaultFallbackReplies() []string {
	return []string{
		"I have daily air quality data. Try: 'today', '29 Nov', or 'How was Kuala Lumpur yesterday?'",
		"Ask me about specific dates like 'today's API' or 'air quality on November 29'",
		"Try: 'Show me data for 29 Nov' or 'How was Selangor today?'",
		"I can show air quality for any date between Oct 29 and Nov 29, 2025",
		"Ask about specific dates and areas like 'Kuala Lumpur on 29 November'",
	}
}
