package consult

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/logx"
	"sangini/internal/pkg/randx"
	"sangini/internal/pkg/viewstate"
)

// Consultation screen views.
const (
	ViewIntake      viewstate.View = "intake"
	ViewSpecialists viewstate.View = "specialists"
	ViewChat        viewstate.View = "chat"
	ViewHistory     viewstate.View = "history"
)

// screenTransitions is the consultation screen's transition table. Chat is
// reachable from every other view; every view can go back to intake.
var screenTransitions = map[viewstate.View][]viewstate.View{
	ViewIntake:      {ViewSpecialists, ViewChat, ViewHistory},
	ViewSpecialists: {ViewChat, ViewIntake, ViewHistory},
	ViewChat:        {ViewIntake, ViewSpecialists, ViewHistory},
	ViewHistory:     {ViewChat, ViewIntake, ViewSpecialists},
}

// NewScreenMachine returns a fresh consultation view machine starting at the
// intake form.
func NewScreenMachine() *viewstate.Machine {
	return viewstate.New(ViewIntake, screenTransitions)
}

const subscriberBuffer = 64

// Intake carries the consultation form.
type Intake struct {
	Name     string `json:"name"`
	Age      string `json:"age"`
	Gender   string `json:"gender"`
	Location string `json:"location"`
	Symptoms string `json:"symptoms"`
	Urgency  string `json:"urgency"`
}

// Validate checks that the required intake fields are present and the urgency
// level is one of low/medium/high (empty defaults to low).
func (in *Intake) Validate() *errs.CustomError {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Symptoms) == "" {
		return errs.NewError(errs.ErrIntakeIncomplete)
	}

	switch in.Urgency {
	case "", "low", "medium", "high":
		return nil
	default:
		return errs.NewError(errs.ErrInvalidParams)
	}
}

// Session is a single active consultation. Messages are append-only; each user
// message schedules a canned assistant reply after a fixed delay.
type Session struct {
	ID        string
	UserID    string
	Specialty string

	replyDelay time.Duration

	mu          sync.RWMutex
	screen      *viewstate.Machine
	messages    []Message
	subscribers map[chan Message]struct{}
	lastActive  time.Time

	logger zerolog.Logger
}

func newSession(userID, specialty, greeting string, replyDelay time.Duration) *Session {
	id := randx.ID()

	s := &Session{
		ID:          id,
		UserID:      userID,
		Specialty:   specialty,
		replyDelay:  replyDelay,
		screen:      NewScreenMachine(),
		subscribers: make(map[chan Message]struct{}),
		lastActive:  time.Now(),
		logger: logx.Logger().With().
			Str("session_id", id).
			Str("specialty", specialty).
			Logger(),
	}

	specialistName := "Doctor"
	if sp := SpecialistByID(specialty); sp != nil {
		specialistName = sp.Name
	}

	s.messages = []Message{{
		ID:        randx.ID(),
		Type:      SenderAssistant,
		Content:   greeting,
		Timestamp: time.Now(),
		Category:  specialistName,
	}}

	// the greeting is already in the transcript, so the screen opens on chat
	if err := s.screen.To(ViewChat); err != nil {
		s.logger.Warn().Err(err).Msg("Initial screen transition rejected.")
	}

	return s
}

// View reports which consultation screen the session is on.
func (s *Session) View() viewstate.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen.Current()
}

// Navigate moves the session to another consultation screen. A transition the
// screen table does not allow is rejected and leaves the view unchanged.
func (s *Session) Navigate(target viewstate.View) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.To(target); err != nil {
		return errs.NewError(errs.ErrInvalidViewTransition)
	}

	s.lastActive = time.Now()
	return nil
}

func greetingFromIntake(in Intake, sp Specialist) string {
	return fmt.Sprintf(
		"Hello %s! I'm your AI %s. Based on your symptoms: %q, I'll help you with your %s. How can I assist you further?",
		in.Name, sp.Name, in.Symptoms, strings.ToLower(sp.Description),
	)
}

func greetingFromDisease(disease string, sp *Specialist) string {
	name := "Doctor"
	if sp != nil {
		name = sp.Name
	}
	return fmt.Sprintf(
		"Hello! I'm your AI %s specializing in %s. I understand you're seeking information about this condition. How can I help you today? Please describe your specific concerns or symptoms related to %s.",
		name, disease, disease,
	)
}

// Messages returns a snapshot of the transcript.
func (s *Session) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// SendMessage appends a user message and schedules the assistant reply.
// The reply fires after the configured delay and cannot be canceled.
func (s *Session) SendMessage(content string) (*Message, *errs.CustomError) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errs.NewError(errs.ErrInvalidParams)
	}
	if len(content) > MaxMessageLength {
		return nil, errs.NewError(errs.ErrMessageContentTooLong)
	}

	msg := s.append(Message{
		ID:        randx.ID(),
		Type:      SenderUser,
		Content:   content,
		Timestamp: time.Now(),
	})

	time.AfterFunc(s.replyDelay, func() {
		s.append(Message{
			ID:        randx.ID(),
			Type:      SenderAssistant,
			Content:   assistantReply,
			Timestamp: time.Now(),
		})
	})

	return &msg, nil
}

// append stores the message, touches the activity clock, and fans it out to
// all subscribers.
func (s *Session) append(msg Message) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msg)
	s.lastActive = time.Now()

	for ch := range s.subscribers {
		select {
		case ch <- msg:
		default:
			s.logger.Warn().Str("message_id", msg.ID).Msg("Subscriber channel full, dropping message.")
		}
	}

	return msg
}

// Subscribe registers a listener for new messages. The returned cancel
// function must be called when the listener goes away.
func (s *Session) Subscribe() (<-chan Message, func()) {
	ch := make(chan Message, subscriberBuffer)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}

	return ch, cancel
}

// LastActive reports when the session last saw a message.
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

// closeSubscribers tears down all listener channels during manager shutdown.
func (s *Session) closeSubscribers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = make(map[chan Message]struct{})
}
