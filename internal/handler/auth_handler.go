/*
Package handler provides HTTP handler functions for account registration,
sign-in, sign-out, and the current session.
*/
package handler

import (
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/crypto/bcrypt"

	"sangini/internal/app/db"
	"sangini/internal/app/session"
	"sangini/internal/pkg/auth/jwt"
	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/logx"
	"sangini/internal/pkg/req"
	"sangini/internal/pkg/resp"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new account from name, email, and password, then
// signs the caller in.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payload := jwt.GetPayloadFromContext(r); payload != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input RegisterInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.Email = strings.ToLower(strings.TrimSpace(input.Email))
		input.Name = strings.TrimSpace(input.Name)

		if input.Name == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}
		if !emailRegex.MatchString(input.Email) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidEmail))
			return
		}

		passwordLen := utf8.RuneCountInString(input.Password)
		if passwordLen < 6 || passwordLen > 50 {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidPassword))
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		user, err := deps.DB.CreateUser(r.Context(), input.Email, input.Name, string(hashedPassword))
		if err != nil {
			if db.IsUniqueViolation(err) {
				logx.Warn("registration conflict: email already exists", "email", input.Email)
				resp.RespondError(w, r, errs.NewError(errs.ErrEmailTaken))
				return
			}

			logx.Error(err, "failed to create user in database")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		issueSession(w, r, deps, user)
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and issues a session token.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if identity := jwt.GetPayloadFromContext(r); identity != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input LoginInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		dbUser, err := deps.DB.GetUserByEmail(r.Context(), email)
		if err != nil {
			logx.Error(err, "login: user fetch failed", "email", email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}
		if dbUser == nil {
			logx.Warn("login: unknown email", "email", email)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(input.Password)); err != nil {
			logx.Warn("login: password mismatch", "email", email)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if err := deps.DB.UpdateLastLogin(r.Context(), dbUser.ID); err != nil {
			logx.Error(err, "login: failed to update last_login_at", "user_id", dbUser.ID)
		}

		issueSession(w, r, deps, dbUser)
	}
}

// issueSession records a session row, signs its token, and writes the
// token+user response shared by register and login.
func issueSession(w http.ResponseWriter, r *http.Request, deps *AppDeps, user *db.User) {
	sess, err := deps.DB.CreateSession(r.Context(), user.ID, time.Now().Add(jwt.SessionExpiration))
	if err != nil {
		logx.Error(err, "failed to create session row", "user_id", user.ID)
		resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
		return
	}

	payload := &jwt.Payload{
		ID:        user.ID.String(),
		SessionID: sess.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.AvatarURL.String,
		Verified:  user.Verified,
	}

	tokenString, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
	if err != nil {
		logx.Error(err, "failed to generate session token", "user_id", user.ID)
		resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
		return
	}

	resp.RespondSuccess(w, r, map[string]any{
		"token": tokenString,
		"user":  session.FromPayload(payload),
	})
}

// HandleLogout deletes the caller's session row. The token itself stays valid
// until expiry; clients drop it on sign-out.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)

		var sessionUUID pgtype.UUID
		if err := sessionUUID.Scan(identity.SessionID); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		if err := deps.DB.DeleteSession(r.Context(), sessionUUID); err != nil {
			logx.Error(err, "logout: failed to delete session row", "session_id", identity.SessionID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]string{"status": "signed_out"})
	}
}

// HandleSession returns the current user, or a null user for anonymous
// callers. When the identity database is attached the record is refreshed from
// the users table, so profile edits show up without re-issuing the token.
func HandleSession(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		user := session.FromPayload(identity)

		if user != nil && deps.DB != nil {
			var userUUID pgtype.UUID
			if err := userUUID.Scan(identity.ID); err == nil {
				dbUser, err := deps.DB.GetUserByID(r.Context(), userUUID)
				switch {
				case err != nil:
					logx.Error(err, "session: user refresh failed", "user_id", identity.ID)
				case dbUser == nil:
					// account deleted since the token was issued
					user = nil
				default:
					user.Name = dbUser.Name
					user.Email = dbUser.Email
					user.Avatar = dbUser.AvatarURL.String
					user.Verified = dbUser.Verified
				}
			}
		}

		resp.RespondSuccess(w, r, map[string]any{"user": user})
	}
}
