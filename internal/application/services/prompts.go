package services

import "fmt"

// Prompt templates sent to Gemini. The JSON-constrained prompts ask for bare
// objects; the model still fences or pads them often enough that responses go
// through gemini.ExtractJSON before unmarshalling.

func trailNamePrompt(distance, theme string, latitude, longitude float64) string {
	return fmt.Sprintf(`You are a trail recommendation expert.
User's starting location is at latitude: %f, longitude: %f.
Desired conditions are:
- Distance: %s (this is the total walking distance)
- Theme: %s (this should strongly influence the type of trail and points of interest)

Please respond with ONLY the trail name in text format.
The name should reflect both the distance and theme.
Example: "2km Nature Trail at Olympic Park" or "3km Historical Palace Route"`,
		latitude, longitude, distance, theme)
}

func trailDetailPrompt(trailName string) string {
	return fmt.Sprintf(`Please provide information about the trail "%s" in the following JSON format. Do not include any other text or markdown formatting.
{
  "trail_name": "%s",
  "main_features": "Describe the natural or atmospheric characteristics of this trail",
  "estimated_time": "Estimated walking time (e.g., about 45 minutes)",
  "route_guide": "Detailed guide from start to finish"
}`, trailName, trailName)
}

func trailWaypointsPrompt(trailName, startLocation string) string {
	return fmt.Sprintf(`Please provide the representative waypoints for the trail "%s" in the following JSON format. Do not include any other text or markdown formatting.

Requirements:
1. The trail MUST start and end at: %s
2. Include 8-10 intermediate points to create a detailed trail route
3. The total walking distance should match the distance mentioned in the trail name
4. The points of interest should strongly reflect the theme mentioned in the trail name
5. Use English place names that can be found on Google Maps
6. Always include "Seoul, South Korea" after each location name
7. Use specific, well-known landmarks or attractions
8. Make sure the points form a logical walking route
9. The first and last points should be the exact starting location

Respond with ONLY the JSON object, no other text:
{
  "waypoints": [
    "Olympic Park Peace Gate, Seoul, South Korea",
    "Olympic Park Rose Garden, Seoul, South Korea",
    "Olympic Park Wildflower Garden, Seoul, South Korea",
    "Olympic Park Lotus Pond, Seoul, South Korea",
    "Olympic Park Ecological Forest, Seoul, South Korea",
    "Olympic Park Bird Watching Area, Seoul, South Korea",
    "Olympic Park Butterfly Garden, Seoul, South Korea",
    "Olympic Park Wildflower Garden, Seoul, South Korea",
    "Olympic Park Rose Garden, Seoul, South Korea",
    "Olympic Park Peace Gate, Seoul, South Korea"
  ]
}`, trailName, startLocation)
}
