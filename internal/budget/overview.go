package budget

import (
	"context"

	"github.com/budget-rule/backend/internal/allocation"
	"github.com/budget-rule/backend/internal/authz"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/store"
	"github.com/shopspring/decimal"
)

// Recommendation codes
const (
	RecommendationNeedsHigh     = "needs-above-60"
	RecommendationSavingsLow    = "savings-below-15"
	RecommendationWantsHigh     = "wants-above-35"
	RecommendationSavingsOnGoal = "savings-on-target"
)

var recommendationMessages = map[string]string{
	RecommendationNeedsHigh:     "Your needs spending is above 60%. Consider finding ways to reduce essential expenses.",
	RecommendationSavingsLow:    "Try to increase your savings rate to at least 20% for better financial security.",
	RecommendationWantsHigh:     "Your wants spending is high. Look for areas where you can cut back on discretionary expenses.",
	RecommendationSavingsOnGoal: "Great job! You're meeting the recommended 20% savings rate. Keep it up!",
}

type Recommendation struct {
	Code    string `json:"code" example:"savings-on-target"`                                              // Machine readable code
	Message string `json:"message" example:"Great job! You're meeting the recommended 20% savings rate."` // Text for the user
}

// MonthSummary is one month of the yearly overview.
type MonthSummary struct {
	Month     int             `json:"month" example:"3"`
	HasBudget bool            `json:"hasBudget" example:"true"`
	Income    decimal.Decimal `json:"income" example:"4000"`
	Needs     decimal.Decimal `json:"needs" example:"1800"`
	Wants     decimal.Decimal `json:"wants" example:"900"`
	Savings   decimal.Decimal `json:"savings" example:"800"`
	Spent     decimal.Decimal `json:"spent" example:"3500"`
}

// Overview summarizes one year of budgets.
type Overview struct {
	Year    int `json:"year" example:"2025"`
	Budgets int `json:"budgets" example:"7"` // Number of budgets in the year

	Income  decimal.Decimal `json:"income" example:"28000"`
	Needs   decimal.Decimal `json:"needs" example:"14000"`
	Wants   decimal.Decimal `json:"wants" example:"8400"`
	Savings decimal.Decimal `json:"savings" example:"5600"`
	Spent   decimal.Decimal `json:"spent" example:"28000"` // Needs, wants and savings together
	Net     decimal.Decimal `json:"net" example:"0"`       // Income minus spent

	SavingsRate decimal.Decimal `json:"savingsRate" example:"20"` // Savings in percent of income

	// Average share of income per category over all budgets with income
	AverageNeedsPercentage   decimal.Decimal `json:"averageNeedsPercentage" example:"50"`
	AverageWantsPercentage   decimal.Decimal `json:"averageWantsPercentage" example:"30"`
	AverageSavingsPercentage decimal.Decimal `json:"averageSavingsPercentage" example:"20"`

	Months          []MonthSummary   `json:"months"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Overview computes the yearly overview for the caller.
func (s *Service) Overview(ctx context.Context, id authz.Identity, year int) (Overview, error) {
	if err := authenticated(id); err != nil {
		return Overview{}, err
	}

	if year == 0 {
		return Overview{}, ErrYearRequired
	}

	budgets, _, err := s.store.ListBudgets(ctx, store.BudgetFilter{OwnerID: id.Subject, Year: year})
	if err != nil {
		return Overview{}, err
	}

	return Summarize(year, budgets), nil
}

// Summarize computes the overview over budgets, which all need to be in year.
func Summarize(year int, budgets []models.MonthlyBudget) Overview {
	hundred := decimal.NewFromInt(100)

	o := Overview{
		Year:            year,
		Budgets:         len(budgets),
		Months:          make([]MonthSummary, 12),
		Recommendations: []Recommendation{},
	}

	for i := range o.Months {
		o.Months[i].Month = i + 1
	}

	var totals allocation.Amounts
	var shares allocation.Amounts
	withIncome := 0

	for _, b := range budgets {
		actuals := b.Actuals()

		o.Income = o.Income.Add(b.Income)
		totals.Needs = totals.Needs.Add(actuals.Needs)
		totals.Wants = totals.Wants.Add(actuals.Wants)
		totals.Savings = totals.Savings.Add(actuals.Savings)

		if b.Month >= 1 && b.Month <= 12 {
			m := &o.Months[b.Month-1]
			m.HasBudget = true
			m.Income = b.Income
			m.Needs = actuals.Needs
			m.Wants = actuals.Wants
			m.Savings = actuals.Savings
			m.Spent = actuals.Total()
		}

		if b.Income.IsPositive() {
			withIncome++
			shares.Needs = shares.Needs.Add(actuals.Needs.Div(b.Income).Mul(hundred))
			shares.Wants = shares.Wants.Add(actuals.Wants.Div(b.Income).Mul(hundred))
			shares.Savings = shares.Savings.Add(actuals.Savings.Div(b.Income).Mul(hundred))
		}
	}

	o.Needs = totals.Needs
	o.Wants = totals.Wants
	o.Savings = totals.Savings
	o.Spent = totals.Total()
	o.Net = o.Income.Sub(o.Spent)

	if o.Income.IsPositive() {
		o.SavingsRate = o.Savings.Div(o.Income).Mul(hundred).Round(1)
	}

	if withIncome == 0 {
		return o
	}

	count := decimal.NewFromInt(int64(withIncome))
	needs := shares.Needs.Div(count)
	wants := shares.Wants.Div(count)
	savings := shares.Savings.Div(count)

	o.AverageNeedsPercentage = needs.Round(1)
	o.AverageWantsPercentage = wants.Round(1)
	o.AverageSavingsPercentage = savings.Round(1)

	// Thresholds apply to the exact averages
	o.Recommendations = recommend(needs, wants, savings)
	return o
}

func recommend(needs, wants, savings decimal.Decimal) []Recommendation {
	codes := []string{}

	if needs.GreaterThan(decimal.NewFromInt(60)) {
		codes = append(codes, RecommendationNeedsHigh)
	}

	if savings.LessThan(decimal.NewFromInt(15)) {
		codes = append(codes, RecommendationSavingsLow)
	}

	if wants.GreaterThan(decimal.NewFromInt(35)) {
		codes = append(codes, RecommendationWantsHigh)
	}

	if savings.GreaterThanOrEqual(decimal.NewFromInt(20)) {
		codes = append(codes, RecommendationSavingsOnGoal)
	}

	recommendations := make([]Recommendation, 0, len(codes))
	for _, c := range codes {
		recommendations = append(recommendations, Recommendation{Code: c, Message: recommendationMessages[c]})
	}
	return recommendations
}
