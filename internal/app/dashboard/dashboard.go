// Package dashboard serves the signed-in user's health overview: current
// metrics and achievement progress. All values are mock data.
package dashboard

// HealthMetric is one tracked measurement.
type HealthMetric struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Value       string `json:"value"`
	Unit        string `json:"unit"`
	Status      string `json:"status"`
	LastUpdated string `json:"lastUpdated"`
}

// Metric status levels.
const (
	StatusGood     = "good"
	StatusWarning  = "warning"
	StatusCritical = "critical"
)

// Achievement is one gamified milestone. Progress is a percentage and only
// meaningful while the achievement is unearned.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
	Progress    int    `json:"progress,omitempty"`
}

// Overview bundles the dashboard payload.
type Overview struct {
	Metrics      []HealthMetric `json:"metrics"`
	Achievements []Achievement  `json:"achievements"`
}

// Get returns the mock dashboard for any user.
func Get() Overview {
	return Overview{
		Metrics: []HealthMetric{
			{ID: "1", Name: "Blood Pressure", Value: "120/80", Unit: "mmHg", Status: StatusGood, LastUpdated: "2 hours ago"},
			{ID: "2", Name: "Heart Rate", Value: "72", Unit: "bpm", Status: StatusGood, LastUpdated: "1 hour ago"},
			{ID: "3", Name: "Weight", Value: "68.5", Unit: "kg", Status: StatusGood, LastUpdated: "This morning"},
			{ID: "4", Name: "Sleep", Value: "6.5", Unit: "hours", Status: StatusWarning, LastUpdated: "Last night"},
		},
		Achievements: []Achievement{
			{ID: "1", Title: "Health Tracker", Description: "Log health metrics for 7 days", Earned: true},
			{ID: "2", Title: "Community Helper", Description: "Help 10 community members", Earned: true},
			{ID: "3", Title: "Knowledge Seeker", Description: "Read 20 health articles", Earned: false, Progress: 75},
			{ID: "4", Title: "Consultation Expert", Description: "Complete 5 AI consultations", Earned: false, Progress: 40},
		},
	}
}
