package consult

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"sangini/internal/configs"
	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/logx"
)

const (
	// SessionIdleTimeout is how long a session may sit without messages
	// before the janitor removes it.
	SessionIdleTimeout = 30 * time.Minute

	janitorInterval = 5 * time.Minute
)

// Manager coordinates all active consultation sessions.
type Manager struct {
	sessions map[string]*Session

	config *configs.AppConfig

	mu sync.RWMutex

	// done stops the janitor loop.
	done chan struct{}

	// wg waits for the janitor goroutine during shutdown.
	wg sync.WaitGroup

	logger zerolog.Logger
}

// NewManager constructs a Manager and starts its janitor loop.
func NewManager(cfg *configs.AppConfig) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		config:   cfg,
		done:     make(chan struct{}),
		logger:   logx.Logger().With().Str("component", "ConsultManager").Logger(),
	}

	m.wg.Add(1)
	go m.runJanitor()

	return m
}

// runJanitor periodically sweeps out idle sessions.
func (m *Manager) runJanitor() {
	defer m.wg.Done()

	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	m.logger.Info().Msg("Janitor loop started.")

	for {
		select {
		case <-ticker.C:
			m.sweepIdle()
		case <-m.done:
			m.logger.Info().Msg("Janitor loop stopped.")
			return
		}
	}
}

func (m *Manager) sweepIdle() {
	cutoff := time.Now().Add(-SessionIdleTimeout)

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if s.LastActive().Before(cutoff) {
			s.closeSubscribers()
			delete(m.sessions, id)
			m.logger.Info().Str("session_id", id).Msg("Idle session removed.")
		}
	}
}

// StartFromIntake validates the intake form, infers the specialist from the
// symptom text, and opens a session greeting the patient by name.
func (m *Manager) StartFromIntake(userID string, in Intake) (*Session, *errs.CustomError) {
	if cErr := in.Validate(); cErr != nil {
		return nil, cErr
	}

	specialty := InferSpecialty(in.Symptoms)
	sp := SpecialistByID(specialty)
	if sp == nil || !sp.Available {
		return nil, errs.NewError(errs.ErrSpecialistUnavailable)
	}

	return m.add(newSession(userID, specialty, greetingFromIntake(in, *sp), m.config.AssistantReplyDelay)), nil
}

// StartFromSpecialist opens a session with an explicitly chosen specialist.
func (m *Manager) StartFromSpecialist(userID, specialistID string, in Intake) (*Session, *errs.CustomError) {
	sp := SpecialistByID(specialistID)
	if sp == nil || !sp.Available {
		return nil, errs.NewError(errs.ErrSpecialistUnavailable)
	}

	return m.add(newSession(userID, sp.ID, greetingFromIntake(in, *sp), m.config.AssistantReplyDelay)), nil
}

// StartFromDisease opens a session directly in chat for a disease looked up in
// the library, routed by the disease's taxonomy category.
func (m *Manager) StartFromDisease(userID, diseaseName, diseaseCategory string) (*Session, *errs.CustomError) {
	specialty := SpecialtyForDiseaseCategory(diseaseCategory)
	sp := SpecialistByID(specialty)
	if sp != nil && !sp.Available {
		return nil, errs.NewError(errs.ErrSpecialistUnavailable)
	}

	return m.add(newSession(userID, specialty, greetingFromDisease(diseaseName, sp), m.config.AssistantReplyDelay)), nil
}

func (m *Manager) add(s *Session) *Session {
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Info().
		Str("session_id", s.ID).
		Str("specialty", s.Specialty).
		Msg("Consultation session started.")

	return s
}

// Get retrieves a session by id; nil when absent or expired.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Shutdown stops the janitor and tears down all sessions.
func (m *Manager) Shutdown() {
	m.logger.Info().Msg("Shutting down consultation manager...")

	m.mu.Lock()
	for _, s := range m.sessions {
		s.closeSubscribers()
	}
	m.sessions = nil
	m.mu.Unlock()

	close(m.done)
	m.wg.Wait()

	m.logger.Info().Msg("Consultation manager shutdown complete.")
}
