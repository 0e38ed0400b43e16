package handler

import (
	"net/http"

	"sangini/internal/app/dashboard"
	"sangini/internal/app/premium"
	"sangini/internal/pkg/auth/jwt"
	"sangini/internal/pkg/req"
	"sangini/internal/pkg/resp"
)

// HandleDashboard returns the signed-in user's health overview.
func HandleDashboard(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, dashboard.Get())
	}
}

// HandlePremiumPlans returns the pricing tiers and the feature matrix.
func HandlePremiumPlans(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"plans":    premium.Plans(),
			"features": premium.Features(),
		})
	}
}

type SubscribeInput struct {
	PlanID string `json:"planId"`
}

// HandleSubscribe records a subscription request for the caller.
func HandleSubscribe(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SubscribeInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		identity := jwt.GetPayloadFromContext(r)
		plan, customErr := premium.Subscribe(identity.ID, input.PlanID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"plan": plan})
	}
}
