package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"sangini/internal/app/feed"
	"sangini/internal/pkg/auth/jwt"
	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/logx"
	"sangini/internal/pkg/req"
	"sangini/internal/pkg/resp"
)

// HandleFeed returns the community posts together with the daily quote.
func HandleFeed(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"quote": feed.DailyQuote,
			"posts": deps.Feed.Posts(),
		})
	}
}

// HandleToggleLike flips the like state of a post.
func HandleToggleLike(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, customErr := deps.Feed.ToggleLike(chi.URLParam(r, "id"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"post": post})
	}
}

// HandleToggleRepost flips the repost state of a post.
func HandleToggleRepost(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, customErr := deps.Feed.ToggleRepost(chi.URLParam(r, "id"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"post": post})
	}
}

type CommentInput struct {
	Content string `json:"content"`
}

// HandleComment accepts a comment on a post. Comments are acknowledged and
// logged only; there is no thread storage.
func HandleComment(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CommentInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if strings.TrimSpace(input.Content) == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		postID := chi.URLParam(r, "id")
		if _, customErr := deps.Feed.Post(postID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		identity := jwt.GetPayloadFromContext(r)
		logx.Info("Comment received.",
			"post_id", postID,
			"user_id", identity.ID,
		)

		resp.RespondSuccess(w, r, map[string]string{"status": "received"})
	}
}

type ReportInput struct {
	Reason string `json:"reason"`
}

// HandleReport accepts an abuse report on a post; logged for moderation.
func HandleReport(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input ReportInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		postID := chi.URLParam(r, "id")
		if _, customErr := deps.Feed.Post(postID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		identity := jwt.GetPayloadFromContext(r)
		logx.Warn("Post reported.",
			"post_id", postID,
			"user_id", identity.ID,
			"reason", input.Reason,
		)

		resp.RespondSuccess(w, r, map[string]string{"status": "reported"})
	}
}
