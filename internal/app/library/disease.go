/*
Package library contains the disease encyclopedia: static, read-only reference
records fixed at build time, their category taxonomy, and the search filter
shared with the program browser.
*/
package library

// Severity grades the typical risk level of a condition.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Disease is one static encyclopedia record. Records are never mutated.
type Disease struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Severity    Severity `json:"severity"`
	Prevalence  string   `json:"prevalence"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
	Causes      []string `json:"causes"`
	Treatments  []string `json:"treatments"`
	Prevention  []string `json:"prevention"`
}

// Category is one entry of the library's category taxonomy.
// The "all" sentinel bypasses category filtering.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryAll is the sentinel category id matching every record.
const CategoryAll = "all"

// Categories is the fixed category taxonomy shown alongside the library.
var Categories = []Category{
	{ID: CategoryAll, Name: "All Diseases", Count: 24},
	{ID: "cardiovascular", Name: "Cardiovascular", Count: 6},
	{ID: "neurological", Name: "Neurological", Count: 4},
	{ID: "respiratory", Name: "Respiratory", Count: 5},
	{ID: "digestive", Name: "Digestive", Count: 4},
	{ID: "musculoskeletal", Name: "Musculoskeletal", Count: 3},
	{ID: "ophthalmology", Name: "Eye Conditions", Count: 2},
}

// Diseases is the static encyclopedia content.
var Diseases = []Disease{
	{
		ID:          "hypertension",
		Name:        "Hypertension (High Blood Pressure)",
		Category:    "cardiovascular",
		Severity:    SeverityMedium,
		Prevalence:  "Very Common",
		Description: "A condition in which the blood vessels have persistently raised pressure. Blood pressure is created by the force of blood pushing against the walls of blood vessels as it is pumped by the heart.",
		Symptoms:    []string{"Headaches", "Shortness of breath", "Nosebleeds", "Chest pain", "Visual changes"},
		Causes:      []string{"Genetics", "Poor diet", "Lack of exercise", "Stress", "Obesity", "Excessive salt intake"},
		Treatments:  []string{"Lifestyle changes", "ACE inhibitors", "Diuretics", "Beta-blockers", "Regular monitoring"},
		Prevention:  []string{"Regular exercise", "Healthy diet", "Limit salt intake", "Maintain healthy weight", "Manage stress"},
	},
	{
		ID:          "diabetes",
		Name:        "Type 2 Diabetes",
		Category:    "endocrine",
		Severity:    SeverityHigh,
		Prevalence:  "Common",
		Description: "A chronic condition that affects the way the body processes blood sugar (glucose). The body either resists the effects of insulin or doesn't produce enough insulin.",
		Symptoms:    []string{"Increased thirst", "Frequent urination", "Fatigue", "Blurred vision", "Slow healing wounds"},
		Causes:      []string{"Insulin resistance", "Genetics", "Obesity", "Sedentary lifestyle", "Age"},
		Treatments:  []string{"Metformin", "Insulin therapy", "Diet modification", "Exercise", "Blood sugar monitoring"},
		Prevention:  []string{"Maintain healthy weight", "Regular exercise", "Balanced diet", "Regular check-ups"},
	},
	{
		ID:          "asthma",
		Name:        "Asthma",
		Category:    "respiratory",
		Severity:    SeverityMedium,
		Prevalence:  "Common",
		Description: "A condition in which airways narrow and swell and may produce extra mucus. This can make breathing difficult and trigger coughing, wheezing, and shortness of breath.",
		Symptoms:    []string{"Wheezing", "Shortness of breath", "Chest tightness", "Coughing", "Difficulty sleeping"},
		Causes:      []string{"Allergens", "Air pollution", "Respiratory infections", "Physical activity", "Weather changes"},
		Treatments:  []string{"Inhalers", "Bronchodilators", "Corticosteroids", "Allergy medications", "Immunotherapy"},
		Prevention:  []string{"Avoid triggers", "Use air purifiers", "Regular medication", "Vaccination", "Monitor air quality"},
	},
	{
		ID:          "migraine",
		Name:        "Migraine",
		Category:    "neurological",
		Severity:    SeverityMedium,
		Prevalence:  "Common",
		Description: "A neurological condition that can cause multiple symptoms including severe headaches, nausea, vomiting, and sensitivity to light and sound.",
		Symptoms:    []string{"Severe headache", "Nausea", "Vomiting", "Light sensitivity", "Sound sensitivity", "Visual aura"},
		Causes:      []string{"Genetics", "Hormonal changes", "Stress", "Certain foods", "Sleep changes", "Weather changes"},
		Treatments:  []string{"Pain relievers", "Triptans", "Preventive medications", "Lifestyle changes", "Stress management"},
		Prevention:  []string{"Regular sleep", "Stress management", "Avoid triggers", "Regular meals", "Stay hydrated"},
	},
	{
		ID:          "arthritis",
		Name:        "Osteoarthritis",
		Category:    "musculoskeletal",
		Severity:    SeverityMedium,
		Prevalence:  "Very Common",
		Description: "The most common form of arthritis, occurring when the protective cartilage that cushions the ends of bones wears down over time.",
		Symptoms:    []string{"Joint pain", "Stiffness", "Tenderness", "Loss of flexibility", "Grating sensation", "Bone spurs"},
		Causes:      []string{"Age", "Obesity", "Joint injuries", "Genetics", "Bone deformities", "Certain metabolic diseases"},
		Treatments:  []string{"Pain medications", "Physical therapy", "Occupational therapy", "Cortisone injections", "Surgery"},
		Prevention:  []string{"Maintain healthy weight", "Regular exercise", "Avoid joint injuries", "Good posture"},
	},
	{
		ID:          "depression",
		Name:        "Major Depression",
		Category:    "neurological",
		Severity:    SeverityHigh,
		Prevalence:  "Common",
		Description: "A mental health disorder characterized by persistently depressed mood or loss of interest in activities, causing significant impairment in daily life.",
		Symptoms:    []string{"Persistent sadness", "Loss of interest", "Fatigue", "Sleep disturbances", "Appetite changes"},
		Causes:      []string{"Brain chemistry", "Genetics", "Life events", "Medical conditions", "Substance abuse"},
		Treatments:  []string{"Antidepressants", "Psychotherapy", "Lifestyle changes", "Support groups", "ECT in severe cases"},
		Prevention:  []string{"Regular exercise", "Social support", "Stress management", "Adequate sleep", "Healthy diet"},
	},
}

// ByID looks up a disease record. Returns nil when the id is unknown.
func ByID(id string) *Disease {
	for i := range Diseases {
		if Diseases[i].ID == id {
			return &Diseases[i]
		}
	}
	return nil
}
