package planner

import (
	"fmt"
	"strings"
)

// fixed system instruction for every generation call
const systemPrompt = "You are an expert travel planner. Always respond with valid JSON only, no additional text."

// date layout used in prompts and request parameters
const dateLayout = "2006-01-02"

// assembles the generation prompt, embedding the computed day count,
// destination, interests and date range as literal text
func buildPrompt(req PlanRequest, days int) string {
	interests := strings.Join(req.Interests, ", ")
	startDate := req.StartDate.Format(dateLayout)
	endDate := req.EndDate.Format(dateLayout)

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Create a detailed %d-day travel itinerary for %s.\n\n", days, req.Destination))
	builder.WriteString(fmt.Sprintf("Traveler interests: %s\n", interests))
	builder.WriteString(fmt.Sprintf("Trip dates: %s to %s\n\n", startDate, endDate))
	builder.WriteString("Please provide a comprehensive day-by-day itinerary in JSON format with the following structure:\n")
	builder.WriteString(fmt.Sprintf(`{
  "destination": "%s",
  "summary": "Brief overview of the trip",
  "days": [
    {
      "day": 1,
      "date": "%s",
      "theme": "Day theme",
      "description": "Overview of the day",
      "activities": [
        {
          "time": "09:00 AM",
          "name": "Activity name",
          "description": "Detailed description",
          "duration": "2 hours",
          "category": "sightseeing/food/adventure/culture/shopping",
          "tips": "Helpful tips"
        }
      ]
    }
  ],
  "tips": ["General trip tips"],
  "recommendations": {
    "restaurants": ["Restaurant recommendations"],
    "accommodation": ["Hotel/stay recommendations"],
    "transportation": ["Getting around tips"]
  }
}
`, req.Destination, startDate))
	builder.WriteString(fmt.Sprintf("\nFocus on activities that match the traveler's interests: %s. ", interests))
	builder.WriteString("Include specific places, timings, and practical tips. Make it realistic and actionable.")

	return builder.String()
}
