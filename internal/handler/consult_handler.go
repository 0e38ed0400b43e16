package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sangini/internal/app/consult"
	"sangini/internal/app/library"
	"sangini/internal/pkg/auth/jwt"
	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/req"
	"sangini/internal/pkg/resp"
	"sangini/internal/pkg/viewstate"
)

// HandleSpecialists returns the specialist directory.
func HandleSpecialists(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"specialists": consult.Specialists(),
		})
	}
}

// HandleConsultHistory returns the past consultation list.
func HandleConsultHistory(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"history": consult.History(),
		})
	}
}

type IntakeInput struct {
	Name         string `json:"name"`
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	Location     string `json:"location"`
	Symptoms     string `json:"symptoms"`
	Urgency      string `json:"urgency"`
	SpecialistID string `json:"specialistId,omitempty"`
}

// HandleConsultIntake opens a consultation from the intake form. When a
// specialist id is given it is used directly; otherwise the specialty is
// inferred from the symptom text.
func HandleConsultIntake(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input IntakeInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		intake := consult.Intake{
			Name:     input.Name,
			Age:      input.Age,
			Gender:   input.Gender,
			Location: input.Location,
			Symptoms: input.Symptoms,
			Urgency:  input.Urgency,
		}

		identity := jwt.GetPayloadFromContext(r)

		var (
			sess      *consult.Session
			customErr *errs.CustomError
		)
		if input.SpecialistID != "" {
			sess, customErr = deps.Consults.StartFromSpecialist(identity.ID, input.SpecialistID, intake)
		} else {
			sess, customErr = deps.Consults.StartFromIntake(identity.ID, intake)
		}
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		respondSession(w, r, sess)
	}
}

type ConsultStartInput struct {
	DiseaseID string `json:"diseaseId"`
}

// HandleConsultStart opens a consultation directly in chat for a library
// disease, routed by the disease's category.
func HandleConsultStart(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input ConsultStartInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		disease := library.ByID(input.DiseaseID)
		if disease == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrDiseaseNotFound))
			return
		}

		identity := jwt.GetPayloadFromContext(r)
		sess, customErr := deps.Consults.StartFromDisease(identity.ID, disease.Name, disease.Category)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		respondSession(w, r, sess)
	}
}

// ownedSession fetches a session and checks it belongs to the caller.
func ownedSession(deps *AppDeps, r *http.Request) (*consult.Session, *errs.CustomError) {
	sess := deps.Consults.Get(chi.URLParam(r, "id"))
	if sess == nil {
		return nil, errs.NewError(errs.ErrConsultNotFound)
	}

	identity := jwt.GetPayloadFromContext(r)
	if identity == nil || sess.UserID != identity.ID {
		return nil, errs.NewError(errs.ErrConsultNotFound)
	}

	return sess, nil
}

// HandleConsultSession returns one session's transcript.
func HandleConsultSession(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, customErr := ownedSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		respondSession(w, r, sess)
	}
}

type ConsultMessageInput struct {
	Content string `json:"content"`
}

// HandleConsultMessage appends a user message; the assistant reply follows
// after the configured delay.
func HandleConsultMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, customErr := ownedSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input ConsultMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		msg, customErr := sess.SendMessage(input.Content)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"message": msg})
	}
}

type ConsultViewInput struct {
	View string `json:"view"`
}

// HandleConsultNavigate moves a session between the consultation screens
// (intake, specialists, chat, history). Disallowed transitions are rejected
// and leave the view unchanged.
func HandleConsultNavigate(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, customErr := ownedSession(deps, r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input ConsultViewInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := sess.Navigate(viewstate.View(input.View)); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"view": sess.View()})
	}
}

func respondSession(w http.ResponseWriter, r *http.Request, sess *consult.Session) {
	resp.RespondSuccess(w, r, map[string]any{
		"session": map[string]any{
			"id":        sess.ID,
			"specialty": sess.Specialty,
			"view":      sess.View(),
			"messages":  sess.Messages(),
		},
	})
}
