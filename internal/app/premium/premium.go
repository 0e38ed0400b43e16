// Package premium exposes the subscription catalog: the feature comparison
// matrix and the three pricing plans. Subscribing is mock-only and logged.
package premium

import (
	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/logx"
)

// Feature is one row of the plan comparison matrix.
type Feature struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Included    map[string]bool `json:"included"`
}

// Price carries both billing periods.
type Price struct {
	Monthly int `json:"monthly"`
	Yearly  int `json:"yearly"`
}

// Plan is one subscription tier.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    Price    `json:"price"`
	Popular  bool     `json:"popular,omitempty"`
	Features []string `json:"features"`
}

var features = []Feature{
	{
		Title:       "Unlimited AI Consultations",
		Description: "Chat with AI specialists without daily limits",
		Included:    map[string]bool{"basic": false, "premium": true, "pro": true},
	},
	{
		Title:       "Priority Scheduling",
		Description: "Get faster response times and priority support",
		Included:    map[string]bool{"basic": false, "premium": true, "pro": true},
	},
	{
		Title:       "Advanced Health Analytics",
		Description: "Detailed health insights and personalized recommendations",
		Included:    map[string]bool{"basic": false, "premium": false, "pro": true},
	},
	{
		Title:       "Enhanced Privacy",
		Description: "Advanced encryption and data protection",
		Included:    map[string]bool{"basic": false, "premium": true, "pro": true},
	},
	{
		Title:       "Family Health Plans",
		Description: "Manage health for up to 5 family members",
		Included:    map[string]bool{"basic": false, "premium": false, "pro": true},
	},
	{
		Title:       "Wellness Tracking",
		Description: "Advanced health metrics and progress tracking",
		Included:    map[string]bool{"basic": false, "premium": true, "pro": true},
	},
}

var plans = []Plan{
	{
		ID:    "basic",
		Name:  "Basic",
		Price: Price{Monthly: 0, Yearly: 0},
		Features: []string{
			"5 AI consultations per day",
			"Basic community access",
			"Standard response time",
			"Basic health tips",
		},
	},
	{
		ID:      "premium",
		Name:    "Premium",
		Price:   Price{Monthly: 19, Yearly: 190},
		Popular: true,
		Features: []string{
			"Unlimited AI consultations",
			"Priority support",
			"Advanced health analytics",
			"Enhanced privacy protection",
			"Wellness tracking",
			"Premium community features",
		},
	},
	{
		ID:    "pro",
		Name:  "Pro",
		Price: Price{Monthly: 39, Yearly: 390},
		Features: []string{
			"Everything in Premium",
			"Family health plans (5 members)",
			"Advanced AI diagnostics",
			"Personal health coach",
			"Custom health programs",
			"24/7 priority support",
		},
	},
}

// Features returns the plan comparison matrix.
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features)
	return out
}

// Plans returns the three pricing tiers.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanByID looks up a tier; nil when unknown.
func PlanByID(id string) *Plan {
	for i := range plans {
		if plans[i].ID == id {
			p := plans[i]
			return &p
		}
	}
	return nil
}

// Subscribe records a subscription request. There is no payment flow; the
// request is validated and logged only.
func Subscribe(userID, planID string) (*Plan, *errs.CustomError) {
	plan := PlanByID(planID)
	if plan == nil {
		return nil, errs.NewError(errs.ErrPlanNotFound)
	}

	logx.Info("Subscription requested.", "user_id", userID, "plan_id", plan.ID)
	return plan, nil
}
