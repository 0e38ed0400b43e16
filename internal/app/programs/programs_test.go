package programs

import "testing"

func get(t *testing.T, s *Store, id string) Program {
	t.Helper()
	for _, p := range s.Programs() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("program %q not found", id)
	return Program{}
}

func TestToggleJoinRoundTrip(t *testing.T) {
	s := NewStore()

	before := get(t, s, "1")
	if before.IsJoined || before.Participants != 45 {
		t.Fatalf("unexpected seed state: joined=%v participants=%d", before.IsJoined, before.Participants)
	}

	joined, cErr := s.ToggleJoin("1")
	if cErr != nil {
		t.Fatalf("ToggleJoin: %v", cErr)
	}
	if !joined.IsJoined || joined.Participants != 46 {
		t.Fatalf("after join: joined=%v participants=%d, want true/46", joined.IsJoined, joined.Participants)
	}

	left, cErr := s.ToggleJoin("1")
	if cErr != nil {
		t.Fatalf("ToggleJoin: %v", cErr)
	}
	if left.IsJoined || left.Participants != 45 {
		t.Fatalf("after leave: joined=%v participants=%d, want false/45", left.IsJoined, left.Participants)
	}
}

func TestToggleJoinFullProgram(t *testing.T) {
	s := NewStore()
	s.programs[0].Participants = s.programs[0].MaxCapacity

	if _, cErr := s.ToggleJoin("1"); cErr == nil {
		t.Fatal("expected capacity error")
	}

	// Leaving a full program still works.
	s.programs[1].Participants = s.programs[1].MaxCapacity
	if _, cErr := s.ToggleJoin("2"); cErr != nil {
		t.Fatalf("leaving full program: %v", cErr)
	}
}

func TestFilter(t *testing.T) {
	s := NewStore()

	tests := []struct {
		name     string
		search   string
		category string
		wantIDs  []string
	}{
		{"all", "", "all", []string{"1", "2", "3"}},
		{"by category", "", "cardiology", []string{"1"}},
		{"display category normalized", "", "Mental Health", []string{"2"}},
		{"by search term", "diabetes", "all", []string{"3"}},
		{"location search", "midtown", "all", []string{"2"}},
		{"no match", "yoga", "all", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Filter(tt.search, tt.category)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d programs, want %d", len(got), len(tt.wantIDs))
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Fatalf("got id %q at %d, want %q", p.ID, i, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestCreatePrependsAndJoins(t *testing.T) {
	s := NewStore()

	in := CreateInput{
		Title:       "Sleep Hygiene Seminar",
		Description: "Improving sleep quality without medication.",
		Category:    "Mental Health",
		Date:        "2024-03-01",
		Time:        "5:00 PM - 6:30 PM",
		Location:    "City Library",
		MaxCapacity: 25,
	}
	if cErr := in.Validate(); cErr != nil {
		t.Fatalf("Validate: %v", cErr)
	}

	p := s.Create(in, "Dr. Sarah Johnson")
	if !p.IsJoined || p.Participants != 1 {
		t.Fatalf("creator not joined: joined=%v participants=%d", p.IsJoined, p.Participants)
	}
	if p.Category != "mental-health" {
		t.Fatalf("category not normalized: %q", p.Category)
	}

	list := s.Programs()
	if list[0].ID != p.ID {
		t.Fatalf("new program not first: got %q", list[0].ID)
	}
}

func TestCreateInputValidate(t *testing.T) {
	in := CreateInput{Title: "x"}
	if cErr := in.Validate(); cErr == nil {
		t.Fatal("expected validation error for missing fields")
	}

	in = CreateInput{
		Title: "t", Description: "d", Category: "c",
		Date: "2024-03-01", Time: "10:00", Location: "l",
		MaxCapacity: 0,
	}
	if cErr := in.Validate(); cErr == nil {
		t.Fatal("expected validation error for zero capacity")
	}
}
