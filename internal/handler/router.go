/*
Package handler provides the HTTP handlers and routing setup for the Health Sangini server.

This file defines the main Router, applying middleware like logging, CORS,
and IP-based rate limiting before delegating requests to specific handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"sangini/internal/pkg/auth/jwt"
	"sangini/internal/pkg/limiter"
	"sangini/internal/pkg/logx"
	"sangini/internal/pkg/resp"
)

const (
	RegisterRate   = 0.05
	RegisterBurst  = 2
	CreateRate     = 0.05
	CreateBurst    = 2
	PublishRate    = 0.2
	PublishBurst   = 5
	WSConnectRate  = 0.2
	WSConnectBurst = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters, configures CORS, and applies global and
// per-route middleware.
func Router(deps *AppDeps) http.Handler {
	registerLimiter := limiter.NewIPRateLimiter(rate.Limit(RegisterRate), RegisterBurst)
	createLimiter := limiter.NewIPRateLimiter(rate.Limit(CreateRate), CreateBurst)
	publishLimiter := limiter.NewIPRateLimiter(rate.Limit(PublishRate), PublishBurst)
	wsLimiter := limiter.NewIPRateLimiter(rate.Limit(WSConnectRate), WSConnectBurst)

	r := chi.NewRouter()

	allowedOrigins := make(map[string]struct{})
	for _, origin := range deps.Config.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	var wsUpgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if deps.Config.Environment == "development" {
				return true
			}

			origin := r.Header.Get("Origin")
			if _, ok := allowedOrigins[origin]; ok {
				return true
			}

			logx.Warn("WebSocket connection rejected: Origin not allowed.", "origin", origin)
			return false
		},
	}

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", HandleHealth(deps))

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", registerLimiter.Middleware(HandleRegister(deps)).ServeHTTP)
			auth.Post("/login", HandleLogin(deps))
			auth.Post("/logout", jwt.RequireUser(HandleLogout(deps)))
		})

		api.Get("/session", HandleSession(deps))

		api.Route("/library", func(lib chi.Router) {
			lib.Get("/categories", HandleLibraryCategories(deps))
			lib.Get("/diseases", HandleLibraryDiseases(deps))
			lib.Get("/diseases/{id}", HandleLibraryDisease(deps))
		})

		api.Route("/feed", func(f chi.Router) {
			f.Get("/", HandleFeed(deps))
			f.Post("/{id}/like", jwt.RequireUser(HandleToggleLike(deps)))
			f.Post("/{id}/repost", jwt.RequireUser(HandleToggleRepost(deps)))
			f.Post("/{id}/comment", jwt.RequireUser(HandleComment(deps)))
			f.Post("/{id}/report", jwt.RequireUser(HandleReport(deps)))
		})

		api.Route("/programs", func(p chi.Router) {
			p.Get("/", HandlePrograms(deps))
			p.Post("/", jwt.RequireUser(createLimiter.Middleware(HandleCreateProgram(deps)).ServeHTTP))
			p.Post("/{id}/join", jwt.RequireUser(HandleToggleJoin(deps)))
		})

		api.Route("/consult", func(cr chi.Router) {
			cr.Get("/specialists", HandleSpecialists(deps))
			cr.Get("/history", HandleConsultHistory(deps))
			cr.Post("/intake", jwt.RequireUser(HandleConsultIntake(deps)))
			cr.Post("/start", jwt.RequireUser(HandleConsultStart(deps)))
			cr.Get("/{id}", jwt.RequireUser(HandleConsultSession(deps)))
			cr.Post("/{id}/messages", jwt.RequireUser(HandleConsultMessage(deps)))
			cr.Post("/{id}/view", jwt.RequireUser(HandleConsultNavigate(deps)))
		})

		api.Route("/composer", func(cp chi.Router) {
			cp.Get("/", jwt.RequireUser(HandleComposerState(deps)))
			cp.Post("/images/presign", jwt.RequireUser(HandlePresignImage(deps)))
			cp.Post("/images", jwt.RequireUser(HandleAttachImage(deps)))
			cp.Delete("/images/{index}", jwt.RequireUser(HandleRemoveImage(deps)))
			cp.Post("/advance", jwt.RequireUser(HandleComposerAdvance(deps)))
			cp.Post("/back", jwt.RequireUser(HandleComposerBack(deps)))
			cp.Post("/details", jwt.RequireUser(HandleComposerDetails(deps)))
			cp.Post("/hashtags", jwt.RequireUser(HandleAddHashtag(deps)))
			cp.Delete("/hashtags/{tag}", jwt.RequireUser(HandleRemoveHashtag(deps)))
			cp.Post("/save", jwt.RequireUser(HandleComposerSave(deps)))
			cp.Post("/publish", jwt.RequireUser(publishLimiter.Middleware(HandleComposerPublish(deps)).ServeHTTP))
		})

		api.Get("/dashboard", jwt.RequireUser(HandleDashboard(deps)))

		api.Route("/premium", func(pr chi.Router) {
			pr.Get("/plans", HandlePremiumPlans(deps))
			pr.Post("/subscribe", jwt.RequireUser(HandleSubscribe(deps)))
		})
	})

	r.Get("/ws/consult/{id}", HandleConsultSocket(wsUpgrader, wsLimiter, deps))

	return r
}

// HandleHealth reports service status together with a database ping.
func HandleHealth(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbStatus := "ok"
		if deps.DB == nil {
			dbStatus = "disabled"
		} else if err := deps.DB.Ping(r.Context()); err != nil {
			logx.Error(err, "Health check database ping failed.")
			dbStatus = "unavailable"
		}

		resp.RespondSuccess(w, r, map[string]string{
			"status":   "ok",
			"service":  "Health Sangini Server",
			"database": dbStatus,
		})
	}
}
