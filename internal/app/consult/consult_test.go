package consult

import (
	"strings"
	"testing"
	"time"

	"sangini/internal/configs"
	"sangini/internal/pkg/errs"
)

func testConfig() *configs.AppConfig {
	return &configs.AppConfig{AssistantReplyDelay: 10 * time.Millisecond}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(testConfig())
	t.Cleanup(m.Shutdown)
	return m
}

func TestInferSpecialty(t *testing.T) {
	tests := []struct {
		symptoms string
		want     string
	}{
		{"chest pain after climbing stairs", "cardiology"},
		{"memory loss and confusion", "neurology"},
		{"blurry vision in one eye", "ophthalmology"},
		{"joint stiffness in the morning", "orthopedics"},
		{"mild fever and sore throat", "general"},
		{"", "general"},
		// First matching rule wins even when later rules also match.
		{"chest pain and blurry vision", "cardiology"},
	}
	for _, tt := range tests {
		if got := InferSpecialty(tt.symptoms); got != tt.want {
			t.Errorf("InferSpecialty(%q) = %q, want %q", tt.symptoms, got, tt.want)
		}
	}
}

func TestSpecialtyForDiseaseCategory(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"cardiovascular", "cardiology"},
		{"neurological", "neurology"},
		{"respiratory", "general"},
		{"musculoskeletal", "orthopedics"},
		{"ophthalmology", "ophthalmology"},
		{"mental-health", "general"},
	}
	for _, tt := range tests {
		if got := SpecialtyForDiseaseCategory(tt.category); got != tt.want {
			t.Errorf("SpecialtyForDiseaseCategory(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestStartFromIntake(t *testing.T) {
	m := newTestManager(t)

	s, cErr := m.StartFromIntake("user-1", Intake{
		Name:     "Asha",
		Symptoms: "chest pain at night",
		Urgency:  "medium",
	})
	if cErr != nil {
		t.Fatalf("StartFromIntake: %v", cErr)
	}
	if s.Specialty != "cardiology" {
		t.Fatalf("specialty = %q, want cardiology", s.Specialty)
	}

	msgs := s.Messages()
	if len(msgs) != 1 || msgs[0].Type != SenderAssistant {
		t.Fatalf("expected single assistant greeting, got %d messages", len(msgs))
	}
	if !strings.Contains(msgs[0].Content, "Asha") || !strings.Contains(msgs[0].Content, "Cardiologist") {
		t.Fatalf("greeting missing name or specialist: %q", msgs[0].Content)
	}

	if got := m.Get(s.ID); got != s {
		t.Fatal("Get did not return the started session")
	}
}

func TestStartFromIntakeIncomplete(t *testing.T) {
	m := newTestManager(t)

	_, cErr := m.StartFromIntake("user-1", Intake{Name: "Asha"})
	if cErr == nil || cErr.Code != errs.ErrIntakeIncomplete {
		t.Fatalf("expected intake incomplete error, got %v", cErr)
	}
}

func TestStartFromIntakeUnavailableSpecialist(t *testing.T) {
	m := newTestManager(t)

	_, cErr := m.StartFromIntake("user-1", Intake{
		Name:     "Asha",
		Symptoms: "sudden loss of sight",
	})
	if cErr == nil || cErr.Code != errs.ErrSpecialistUnavailable {
		t.Fatalf("expected specialist unavailable error, got %v", cErr)
	}
}

func TestStartFromDiseaseGreeting(t *testing.T) {
	m := newTestManager(t)

	s, cErr := m.StartFromDisease("user-1", "Hypertension", "cardiovascular")
	if cErr != nil {
		t.Fatalf("StartFromDisease: %v", cErr)
	}
	if s.Specialty != "cardiology" {
		t.Fatalf("specialty = %q, want cardiology", s.Specialty)
	}

	greeting := s.Messages()[0].Content
	if !strings.Contains(greeting, "Hypertension") {
		t.Fatalf("greeting missing disease name: %q", greeting)
	}
}

func TestSendMessageSchedulesReply(t *testing.T) {
	m := newTestManager(t)

	s, cErr := m.StartFromIntake("user-1", Intake{Name: "Asha", Symptoms: "headache"})
	if cErr != nil {
		t.Fatalf("StartFromIntake: %v", cErr)
	}

	ch, cancel := s.Subscribe()
	defer cancel()

	sent, cErr := s.SendMessage("It gets worse in the evening.")
	if cErr != nil {
		t.Fatalf("SendMessage: %v", cErr)
	}
	if sent.Type != SenderUser {
		t.Fatalf("sent message type = %q", sent.Type)
	}

	// First the user message lands, then the delayed assistant reply.
	first := <-ch
	if first.ID != sent.ID {
		t.Fatalf("first streamed message id = %q, want %q", first.ID, sent.ID)
	}

	select {
	case reply := <-ch:
		if reply.Type != SenderAssistant {
			t.Fatalf("reply type = %q, want assistant", reply.Type)
		}
		if reply.ID == sent.ID {
			t.Fatal("reply reused the user message id")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("assistant reply never arrived")
	}

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("transcript has %d messages, want 3", len(msgs))
	}
	seen := map[string]bool{}
	for _, msg := range msgs {
		if seen[msg.ID] {
			t.Fatalf("duplicate message id %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestSendMessageValidation(t *testing.T) {
	m := newTestManager(t)

	s, _ := m.StartFromIntake("user-1", Intake{Name: "Asha", Symptoms: "headache"})

	if _, cErr := s.SendMessage("   "); cErr == nil {
		t.Fatal("expected error for blank message")
	}

	long := strings.Repeat("a", MaxMessageLength+1)
	if _, cErr := s.SendMessage(long); cErr == nil || cErr.Code != errs.ErrMessageContentTooLong {
		t.Fatalf("expected content too long error, got %v", cErr)
	}
}

func TestSessionScreenNavigation(t *testing.T) {
	m := newTestManager(t)

	s, cErr := m.StartFromIntake("user-1", Intake{Name: "Asha", Symptoms: "headache"})
	if cErr != nil {
		t.Fatalf("StartFromIntake: %v", cErr)
	}

	if s.View() != ViewChat {
		t.Fatalf("session opened on %q, want chat", s.View())
	}

	if cErr := s.Navigate(ViewHistory); cErr != nil {
		t.Fatalf("chat -> history: %v", cErr)
	}
	if cErr := s.Navigate(ViewHistory); cErr == nil || cErr.Code != errs.ErrInvalidViewTransition {
		t.Fatalf("expected self-transition rejection, got %v", cErr)
	}
	if cErr := s.Navigate("elsewhere"); cErr == nil || cErr.Code != errs.ErrInvalidViewTransition {
		t.Fatalf("expected unknown view rejection, got %v", cErr)
	}
	if s.View() != ViewHistory {
		t.Fatalf("view moved on rejected transition: %q", s.View())
	}
}

func TestScreenMachineStartsAtIntake(t *testing.T) {
	machine := NewScreenMachine()

	if machine.Current() != ViewIntake {
		t.Fatalf("initial view = %q", machine.Current())
	}
	if err := machine.To(ViewChat); err != nil {
		t.Fatalf("intake -> chat: %v", err)
	}
	if err := machine.To(ViewChat); err == nil {
		t.Fatal("expected self-transition to be rejected")
	}
}
