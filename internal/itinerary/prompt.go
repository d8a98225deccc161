package itinerary

import (
	"fmt"
	"strings"

	"github.com/neexbeast/quicktrip/internal/trip"
)

// MaxOutputTokens bounds the length of a generated itinerary.
const MaxOutputTokens = 2000

const tripSchema = `{
  "destination": "City, Country",
  "subtitle": "Short catchy phrase",
  "duration": "Day Trip",
  "costRange": "£X - £Y pp",
  "rating": 4.5,
  "interests": ["interest1", "interest2"],
  "activities": [
    {
      "name": "Activity name",
      "category": "Category",
      "description": "Brief description",
      "duration": "Xh",
      "cost": "£X or Free",
      "rating": 4.5,
      "mustDo": true,
      "startTime": "10:00"
    }
  ],
  "tripTips": ["tip1", "tip2", "tip3"]
}`

// BuildPrompt asks the model for a day trip matching prefs, answered with a
// single JSON object.
func BuildPrompt(p trip.Preferences) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a quick trip itinerary starting from %s with the following preferences:\n", p.Location)
	fmt.Fprintf(&b, "- Max travel time: %d hours\n", p.MaxTravelTime)
	fmt.Fprintf(&b, "- Budget: £%g per person (%s)\n", p.BudgetPerPerson, p.BudgetTier)
	fmt.Fprintf(&b, "- Group size: %s\n", p.GroupSize)
	fmt.Fprintf(&b, "- Interests: %s\n\n", strings.Join(p.Interests, ", "))
	fmt.Fprintf(&b, "Pick a real destination that can be reached from %s within %d hours. ", p.Location, p.MaxTravelTime)
	b.WriteString("Include 3 to 5 activities and exactly 3 trip tips.\n\n")
	b.WriteString("Return ONLY a valid JSON object with this exact structure:\n")
	b.WriteString(tripSchema)
	return b.String()
}
