package weather

import "strings"

var outdoorKeywords = []string{
	"outdoor", "outside", "park", "walk", "run", "hike", "bike", "jog", "garden", "trip",
}

// IsOutdoorTask reports whether a task title mentions an outdoor activity and
// therefore qualifies for weather enrichment.
func IsOutdoorTask(title string) bool {
	title = strings.ToLower(title)
	for _, keyword := range outdoorKeywords {
		if strings.Contains(title, keyword) {
			return true
		}
	}
	return false
}
