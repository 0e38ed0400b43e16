package consult

import "time"

// HistoryEntry is one row in the consultation history list.
type HistoryEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	LastMessage string    `json:"lastMessage"`
	Timestamp   time.Time `json:"timestamp"`
	Category    string    `json:"category"`
}

// History returns the mock consultation history. Timestamps are relative to
// now so the list always looks recent.
func History() []HistoryEntry {
	now := time.Now()

	return []HistoryEntry{
		{
			ID:          "1",
			Title:       "Heart Rate Concerns",
			LastMessage: "Thank you for the advice about monitoring my heart rate during exercise.",
			Timestamp:   now.Add(-2 * time.Hour),
			Category:    "Cardiology",
		},
		{
			ID:          "2",
			Title:       "Nutrition Plan",
			LastMessage: "The meal plan you suggested has been working great!",
			Timestamp:   now.Add(-24 * time.Hour),
			Category:    "General",
		},
		{
			ID:          "3",
			Title:       "Sleep Issues",
			LastMessage: "I'll try the sleep hygiene tips you recommended.",
			Timestamp:   now.Add(-3 * 24 * time.Hour),
			Category:    "Neurology",
		},
	}
}
