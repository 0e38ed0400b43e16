// Package programs holds offline health program listings: browsing, search,
// joining, and organizer-created entries.
package programs

import (
	"strings"
	"sync"

	"sangini/internal/app/library"
	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/optimistic"
	"sangini/internal/pkg/randx"
)

// Program is one offline health event.
type Program struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Organizer    string `json:"organizer"`
	Participants int    `json:"participants"`
	MaxCapacity  int    `json:"maxCapacity"`
	IsJoined     bool   `json:"isJoined"`
	Image        string `json:"image"`
}

func seedPrograms() []Program {
	return []Program{
		{
			ID:          "1",
			Title:       "Heart Health Awareness Workshop",
			Description: "Learn about cardiovascular health, risk factors, and prevention strategies from leading cardiologists.",
			Category:    "cardiology",
			Date:        "2024-02-15",
			Time:        "10:00 AM - 12:00 PM",
			Location:    "Community Health Center, Downtown",
			Organizer:   "Dr. Sarah Johnson",
			Participants: 45, MaxCapacity: 60,
			IsJoined: false,
			Image:    "/placeholder.svg?height=200&width=300&text=Heart+Health",
		},
		{
			ID:          "2",
			Title:       "Mental Wellness Support Group",
			Description: "A safe space to discuss mental health challenges and learn coping strategies together.",
			Category:    "mental-health",
			Date:        "2024-02-18",
			Time:        "6:00 PM - 8:00 PM",
			Location:    "Wellness Center, Midtown",
			Organizer:   "Dr. Priya Patel",
			Participants: 32, MaxCapacity: 40,
			IsJoined: true,
			Image:    "/placeholder.svg?height=200&width=300&text=Mental+Wellness",
		},
		{
			ID:          "3",
			Title:       "Nutrition and Diabetes Management",
			Description: "Practical guidance on meal planning and blood sugar management for diabetic patients.",
			Category:    "nutrition",
			Date:        "2024-02-20",
			Time:        "2:00 PM - 4:00 PM",
			Location:    "Health Education Hall, Eastside",
			Organizer:   "Mike Chen",
			Participants: 28, MaxCapacity: 35,
			IsJoined: false,
			Image:    "/placeholder.svg?height=200&width=300&text=Nutrition",
		},
	}
}

// NormalizeCategory maps a display category to its filter token,
// e.g. "Mental Health" -> "mental-health".
func NormalizeCategory(category string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(category)), " ", "-")
}

// Store owns the program list. Like the feed it is in-memory and
// copy-on-write under the mutex.
type Store struct {
	mu       sync.RWMutex
	programs []Program
}

func NewStore() *Store {
	return &Store{programs: seedPrograms()}
}

// Programs returns a snapshot of the current listings.
func (s *Store) Programs() []Program {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Program, len(s.programs))
	copy(out, s.programs)
	return out
}

// Filter returns programs matching the search term (title, description,
// location) and category. The "all" category matches everything.
func (s *Store) Filter(searchTerm, category string) []Program {
	all := s.Programs()

	out := make([]Program, 0, len(all))
	for _, p := range all {
		if !library.MatchesSearch(searchTerm, p.Title, p.Description, p.Location) {
			continue
		}
		if !library.MatchesCategory(p.Category, NormalizeCategory(category)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ToggleJoin flips the caller's joined flag and moves the participant count
// with it. Joining a full program is rejected; leaving always succeeds.
func (s *Store) ToggleJoin(programID string) (*Program, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Program, len(s.programs))
	copy(next, s.programs)

	for i := range next {
		if next[i].ID != programID {
			continue
		}
		if !next[i].IsJoined && next[i].Participants >= next[i].MaxCapacity {
			return nil, errs.NewError(errs.ErrProgramAtCapacity)
		}

		next[i].IsJoined, next[i].Participants = optimistic.Toggle(next[i].IsJoined, next[i].Participants)
		s.programs = next

		updated := next[i]
		return &updated, nil
	}

	return nil, errs.NewError(errs.ErrProgramNotFound)
}

// CreateInput carries the organizer form for a new program.
type CreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	MaxCapacity int    `json:"maxCapacity"`
}

// Validate checks the required fields of a create request.
func (in *CreateInput) Validate() *errs.CustomError {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Time) == "" ||
		strings.TrimSpace(in.Location) == "" {
		return errs.NewError(errs.ErrInvalidParams)
	}
	if in.MaxCapacity <= 0 {
		return errs.NewError(errs.ErrInvalidParams)
	}
	return nil
}

// Create adds a new program to the front of the list with the caller as
// organizer and first participant.
func (s *Store) Create(in CreateInput, organizer string) Program {
	p := Program{
		ID:          randx.ID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    NormalizeCategory(in.Category),
		Date:        in.Date,
		Time:        in.Time,
		Location:    strings.TrimSpace(in.Location),
		Organizer:   organizer,
		Participants: 1,
		MaxCapacity: in.MaxCapacity,
		IsJoined:    true,
		Image:       "/placeholder.svg?height=200&width=300&text=New+Program",
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.programs = append([]Program{p}, s.programs...)

	return p
}
