package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sangini/internal/app/library"
	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/resp"
)

// HandleLibraryCategories returns the disease category taxonomy.
func HandleLibraryCategories(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"categories": library.Categories,
		})
	}
}

// HandleLibraryDiseases lists diseases filtered by the search and category
// query parameters.
func HandleLibraryDiseases(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		search := query.Get("search")
		category := query.Get("category")
		if category == "" {
			category = library.CategoryAll
		}

		resp.RespondSuccess(w, r, map[string]any{
			"diseases": library.Filter(library.Diseases, search, category),
		})
	}
}

// HandleLibraryDisease returns one disease record by id.
func HandleLibraryDisease(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := library.ByID(chi.URLParam(r, "id"))
		if d == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrDiseaseNotFound))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"disease": d})
	}
}
