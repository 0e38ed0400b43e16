/*
Package consult contains the scripted health consultation chat: the specialist
directory, keyword-based specialty inference, per-session message flow with a
delayed assistant reply, and the session manager.
*/
package consult

import "strings"

// GeneralSpecialty is the fallback when no keyword rule matches.
const GeneralSpecialty = "general"

// Specialist is one entry in the specialist directory.
type Specialist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

var specialists = []Specialist{
	{ID: "cardiology", Name: "Cardiologist", Description: "Heart and cardiovascular health", Available: true},
	{ID: "neurology", Name: "Neurologist", Description: "Brain and nervous system", Available: true},
	{ID: "general", Name: "General Physician", Description: "General health consultation", Available: true},
	{ID: "ophthalmology", Name: "Ophthalmologist", Description: "Eye and vision care", Available: false},
	{ID: "orthopedics", Name: "Orthopedist", Description: "Bone and joint health", Available: true},
	{ID: "pediatrics", Name: "Pediatrician", Description: "Child healthcare", Available: true},
	{ID: "pharmacy", Name: "Pharmacist", Description: "Medication guidance", Available: true},
	{ID: "fitness", Name: "Fitness Expert", Description: "Exercise and wellness", Available: true},
}

// Specialists returns the full specialist directory.
func Specialists() []Specialist {
	out := make([]Specialist, len(specialists))
	copy(out, specialists)
	return out
}

// SpecialistByID looks up a directory entry; nil when unknown.
func SpecialistByID(id string) *Specialist {
	for i := range specialists {
		if specialists[i].ID == id {
			s := specialists[i]
			return &s
		}
	}
	return nil
}

// keywordRule maps symptom keywords to a specialty. Rules are evaluated in
// order and the first match wins.
type keywordRule struct {
	keywords  []string
	specialty string
}

var inferenceRules = []keywordRule{
	{[]string{"heart", "chest", "palpitation"}, "cardiology"},
	{[]string{"head", "brain", "memory"}, "neurology"},
	{[]string{"eye", "vision", "sight"}, "ophthalmology"},
	{[]string{"bone", "joint", "muscle"}, "orthopedics"},
}

// InferSpecialty suggests a specialist from a free-text symptom description.
func InferSpecialty(symptoms string) string {
	lower := strings.ToLower(symptoms)

	for _, rule := range inferenceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.specialty
			}
		}
	}
	return GeneralSpecialty
}

var diseaseCategorySpecialty = map[string]string{
	"cardiovascular":  "cardiology",
	"neurological":    "neurology",
	"respiratory":     "general",
	"musculoskeletal": "orthopedics",
	"ophthalmology":   "ophthalmology",
}

// SpecialtyForDiseaseCategory maps a disease taxonomy category to the
// specialist handling it. Unknown categories go to the general physician.
func SpecialtyForDiseaseCategory(category string) string {
	if s, ok := diseaseCategorySpecialty[strings.ToLower(category)]; ok {
		return s
	}
	return GeneralSpecialty
}
