package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sangini/internal/app/programs"
	"sangini/internal/pkg/auth/jwt"
	"sangini/internal/pkg/req"
	"sangini/internal/pkg/resp"
)

// HandlePrograms lists health programs filtered by search term and category.
func HandlePrograms(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		search := query.Get("search")
		category := query.Get("category")
		if category == "" {
			category = "all"
		}

		resp.RespondSuccess(w, r, map[string]any{
			"programs": deps.Programs.Filter(search, category),
		})
	}
}

// HandleCreateProgram adds a new program organized by the caller.
func HandleCreateProgram(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input programs.CreateInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if customErr := input.Validate(); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		identity := jwt.GetPayloadFromContext(r)
		program := deps.Programs.Create(input, identity.Name)

		resp.RespondSuccess(w, r, map[string]any{"program": program})
	}
}

// HandleToggleJoin flips the caller's membership in a program.
func HandleToggleJoin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		program, customErr := deps.Programs.ToggleJoin(chi.URLParam(r, "id"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"program": program})
	}
}
