package briefing

import (
	"fmt"
	"strings"
	"time"

	"morning-brief/pkg/domain"
)

// systemInstruction frames the model as a news analyst for the target language
func systemInstruction(language string) string {
	return fmt.Sprintf("You are a professional news analyst providing a daily briefing in %s.", language)
}

// buildPrompt renders the briefing request for the given settings and moment.
// The wording biases results toward the preceding 24 hours and demands inline
// per-article attribution.
func buildPrompt(settings domain.Settings, now time.Time) string {
	yesterday := now.Add(-24 * time.Hour)

	dateStr := now.Format("Monday, January 2, 2006")
	yesterdayStr := yesterday.Format("January 2, 2006")

	topicString := strings.Join(settings.Topics, ", ")

	var lengthInstruction string
	switch settings.SummaryLength {
	case domain.LengthShort:
		lengthInstruction = "Keep each news item very concise, maximum 2-3 sentences per story."
	case domain.LengthLong:
		lengthInstruction = "Provide detailed analysis for each news item, including background context and potential future implications. Aim for 200 words per story."
	default:
		lengthInstruction = "Provide a balanced summary, about 1 paragraph per story."
	}

	domainInstruction := "Search from diverse, reliable global news sources."
	if len(settings.PreferredDomains) > 0 {
		domainInstruction = fmt.Sprintf("Strictly prioritize information from these specific websites: %s. "+
			"If important news is not found on these sites, you may look elsewhere but mention the source explicitly.",
			strings.Join(settings.PreferredDomains, ", "))
	}

	return fmt.Sprintf(`Current Date: %s
Strict Search Window: News published AFTER %s.

My interested topics are: %s.
Target Language: %s

Instructions:
1. Search for the latest and most important news regarding these topics.
2. **CRITICAL TIME CONSTRAINT**: You must ONLY include news that occurred or was published in the last 24 hours (since %s). Verify the date of every article, discard anything older.
3. %s
4. Filter out trivial updates. Focus on high-impact events.
5. %s
6. Generate the response strictly in %s.
7. **CITATION REQUIREMENT**: For every single news item, you MUST include a direct Markdown link to the source article inline. Format: [Source Name](URL).
8. **MULTIPLE STORIES**: For each topic, include ALL distinct, important news stories found. Do not limit yourself to one story per topic. If a topic has 5 significant different events, list all 5 as separate entries.

Structure the response as follows (in %s):
# ☕ Morning Briefing: %s

## [Topic Name]
### [Headline of Story 1]
* [Content]
* 🔗 Source: [Source Name](URL)

### [Headline of Story 2] (if applicable)
* [Content]
* 🔗 Source: [Source Name](URL)

(Repeat for other stories...)

## 📉 Market / Global Snapshot (if relevant)

## 💡 Daily Insight
A one-sentence takeaway for the day.
`,
		dateStr, yesterdayStr, topicString, settings.Language, yesterdayStr,
		domainInstruction, lengthInstruction, settings.Language, settings.Language, dateStr)
}
