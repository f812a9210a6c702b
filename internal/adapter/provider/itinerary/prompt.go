package itinerary

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/provider"
)

const defaultInterests = "general travel"

// buildPrompt renders the planner prompt for one trip.
func buildPrompt(req provider.ItineraryRequest) string {
	interests := strings.TrimSpace(req.Interests)
	if interests == "" {
		interests = defaultInterests
	}
	days := req.Days
	if days < 1 {
		days = domain.Trip{StartDate: req.Start, EndDate: req.End}.Days()
	}

	return fmt.Sprintf(`You are a skilled travel planner. Create a **detailed, well-structured** %d-day itinerary for **%s, %s** from **%s to %s**.

**Formatting Instructions:**
- Use a **bold header** for each day.
- Each day should include:
  - **Personalized Suggestions** based on the user's interests: **%s**.
  - **Morning Activity**: A must-visit attraction.
  - **Lunch Recommendation**: A popular local restaurant.
  - **Afternoon Activity**: A cultural experience or hidden gem.
  - **Dinner Spot**: A restaurant serving regional specialties.
  - **Evening Experience**: A fun or relaxing activity (e.g., night market, rooftop bar).

**Example Itinerary Format:**
---
**Day 1: Arrival & City Highlights**
- **Morning:** Visit [Landmark]
- **Lunch:** [Restaurant] - Known for [Special Dish]
- **Afternoon:** Explore [Unique Area]
- **Dinner:** [Restaurant] - Offers [Cuisine]
- **Evening:** [Night Activity]

---
**Day 2: Iconic Landmarks & Hidden Gems**
- **Morning:** Visit [Famous Site]
- **Lunch:** [Great Local Eatery] - Known for [Special Dish]
- **Afternoon:** Discover [Cultural Spot]
- **Dinner:** [Highly Rated Restaurant] - Offers [Cuisine]
- **Evening:** [Leisure or Social Experience]

**Write exactly %d days, from Day 1 to Day %d.**
**Ensure clear line breaks before each day's title for readability.**`,
		days, req.City, req.Country,
		req.Start.Format(domain.DateLayout), req.End.Format(domain.DateLayout),
		interests,
		days, days,
	)
}

var (
	dayHeaderRe   = regexp.MustCompile(`\s*\*\*Day`)
	singleEmphRe  = regexp.MustCompile(`(^|[^*])\*([^*\n]+)\*([^*]|$)`)
	sectionItemRe = regexp.MustCompile(`\s*- \*\*(Morning|Lunch|Afternoon|Dinner|Evening)(?::\*\*|\*\*:)`)
)

// format normalizes the generated markdown: every day header is preceded by
// a blank line, single-asterisk emphasis becomes bold, and each section item
// starts on its own line as "- **Section:**".
func format(text string) string {
	text = dayHeaderRe.ReplaceAllString(text, "\n\n**Day")
	text = boldSingleEmphasis(text)
	text = sectionItemRe.ReplaceAllString(text, "\n- **$1:**")
	return strings.TrimSpace(text)
}

// boldSingleEmphasis rewrites *x* as **x**. Matches consume one neighbouring
// character on each side, so adjacent spans need more than one pass.
func boldSingleEmphasis(text string) string {
	for {
		next := singleEmphRe.ReplaceAllString(text, "$1**$2**$3")
		if next == text {
			return text
		}
		text = next
	}
}
