// Package storetest contains behaviour tests that every store.Store
// implementation must pass.
package storetest

import (
	"context"
	"testing"

	"github.com/budget-rule/backend/internal/allocation"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/store"
	"github.com/budget-rule/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store. Cleanup is the job of the factory.
type Factory func(t *testing.T) store.Store

// Run runs all behaviour tests against stores created by newStore.
func Run(t *testing.T, newStore Factory) {
	tests := []struct {
		name string
		fn   func(*testing.T, store.Store)
	}{
		{"BudgetRoundTrip", testBudgetRoundTrip},
		{"BudgetNotFound", testBudgetNotFound},
		{"BudgetUnique", testBudgetUnique},
		{"ListBudgets", testListBudgets},
		{"PreviousBudget", testPreviousBudget},
		{"DeleteBudgetsForYear", testDeleteBudgetsForYear},
		{"Templates", testTemplates},
		{"DeleteOwner", testDeleteOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

func budget(owner string, year, month int) *models.MonthlyBudget {
	b := &models.MonthlyBudget{
		OwnerID: owner,
		Year:    year,
		Month:   month,
		Income:  decimal.NewFromInt(4000),
		NeedsItems: models.Items{
			{Name: "Rent", Amount: decimal.NewFromInt(1500), IsRecurring: true, Provider: "Landlord"},
		},
		WantsItems: models.Items{
			{Name: "Gym", Amount: decimal.NewFromFloat(39.99), IsRecurring: true, Frequency: types.FrequencyQuarterly, RecurringType: types.RecurringTypeSubscription},
		},
		Notes: "notes",
	}
	b.SetPercentages(allocation.Default())
	return b
}

func testBudgetRoundTrip(t *testing.T, s store.Store) {
	ctx := context.Background()
	b := budget("owner", 2025, 5)
	b.TemplateID = uuid.New()

	require.Nil(t, s.CreateBudget(ctx, b))
	require.NotEqual(t, uuid.Nil, b.ID)

	got, err := s.GetBudget(ctx, b.ID)
	require.Nil(t, err)

	assert.Equal(t, "owner", got.OwnerID)
	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, 5, got.Month)
	assert.True(t, got.Income.Equal(decimal.NewFromInt(4000)))
	assert.Equal(t, allocation.Default(), got.Percentages())
	assert.Equal(t, b.TemplateID, got.TemplateID)
	assert.Equal(t, "notes", got.Notes)
	assert.True(t, got.ActualNeeds.Equal(decimal.NewFromInt(1500)), got.ActualNeeds.String())
	assert.True(t, got.ActualWants.Equal(decimal.NewFromFloat(39.99)), got.ActualWants.String())
	assert.True(t, got.ActualSavings.IsZero())
	require.Len(t, got.NeedsItems, 1)
	assert.Equal(t, types.FrequencyMonthly, got.NeedsItems[0].Frequency)
	assert.Equal(t, types.RecurringTypeOther, got.NeedsItems[0].RecurringType)
	assert.Equal(t, "Landlord", got.NeedsItems[0].Provider)
	assert.True(t, got.NeedsItems[0].IsRecurring)
	require.Len(t, got.WantsItems, 1)
	assert.Equal(t, types.FrequencyQuarterly, got.WantsItems[0].Frequency)
	assert.NotNil(t, got.SavingsItems)
	assert.Len(t, got.SavingsItems, 0)

	// Replace the whole document
	got.Income = decimal.NewFromInt(5000)
	got.NeedsItems = models.Items{}
	got.SavingsItems = models.Items{{Name: "ETF", Amount: decimal.NewFromInt(800)}}
	require.Nil(t, s.SaveBudget(ctx, &got))

	saved, err := s.GetBudget(ctx, b.ID)
	require.Nil(t, err)
	assert.True(t, saved.Income.Equal(decimal.NewFromInt(5000)))
	assert.Len(t, saved.NeedsItems, 0)
	assert.True(t, saved.ActualNeeds.IsZero())
	assert.True(t, saved.ActualSavings.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, got.CreatedAt.Unix(), saved.CreatedAt.Unix())

	require.Nil(t, s.DeleteBudget(ctx, b.ID))
	_, err = s.GetBudget(ctx, b.ID)
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}

func testBudgetNotFound(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.GetBudget(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrResourceNotFound)

	assert.ErrorIs(t, s.DeleteBudget(ctx, uuid.New()), models.ErrResourceNotFound)

	_, err = s.PreviousBudget(ctx, "owner", 2025, 1)
	assert.ErrorIs(t, err, models.ErrResourceNotFound)

	_, err = s.GetTemplate(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrResourceNotFound)

	assert.ErrorIs(t, s.DeleteTemplate(ctx, uuid.New()), models.ErrResourceNotFound)
}

func testBudgetUnique(t *testing.T, s store.Store) {
	ctx := context.Background()

	require.Nil(t, s.CreateBudget(ctx, budget("owner", 2025, 1)))
	assert.ErrorIs(t, s.CreateBudget(ctx, budget("owner", 2025, 1)), models.ErrBudgetMonthNotUnique)

	exists, err := s.BudgetExists(ctx, "owner", 2025, 1)
	require.Nil(t, err)
	assert.True(t, exists)

	exists, err = s.BudgetExists(ctx, "other", 2025, 1)
	require.Nil(t, err)
	assert.False(t, exists)

	// Moving a budget onto an existing month fails
	feb := budget("owner", 2025, 2)
	require.Nil(t, s.CreateBudget(ctx, feb))
	feb.Month = 1
	assert.ErrorIs(t, s.SaveBudget(ctx, feb), models.ErrBudgetMonthNotUnique)
}

func testListBudgets(t *testing.T, s store.Store) {
	ctx := context.Background()

	for _, b := range []*models.MonthlyBudget{
		budget("owner", 2024, 12),
		budget("owner", 2025, 1),
		budget("owner", 2025, 3),
		budget("owner", 2025, 2),
		budget("other", 2025, 4),
	} {
		require.Nil(t, s.CreateBudget(ctx, b))
	}

	months := func(budgets []models.MonthlyBudget) [][2]int {
		out := make([][2]int, 0, len(budgets))
		for _, b := range budgets {
			out = append(out, [2]int{b.Year, b.Month})
		}
		return out
	}

	tests := []struct {
		name     string
		filter   store.BudgetFilter
		expected [][2]int
		total    int64
	}{
		{"All", store.BudgetFilter{OwnerID: "owner"}, [][2]int{{2025, 3}, {2025, 2}, {2025, 1}, {2024, 12}}, 4},
		{"Year", store.BudgetFilter{OwnerID: "owner", Year: 2025}, [][2]int{{2025, 3}, {2025, 2}, {2025, 1}}, 3},
		{"Month", store.BudgetFilter{OwnerID: "owner", Month: 12}, [][2]int{{2024, 12}}, 1},
		{"Limit", store.BudgetFilter{OwnerID: "owner", Limit: 2}, [][2]int{{2025, 3}, {2025, 2}}, 4},
		{"Offset", store.BudgetFilter{OwnerID: "owner", Offset: 3}, [][2]int{{2024, 12}}, 4},
		{"Other owner", store.BudgetFilter{OwnerID: "other"}, [][2]int{{2025, 4}}, 1},
		{"Nobody", store.BudgetFilter{OwnerID: "nobody"}, [][2]int{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budgets, total, err := s.ListBudgets(ctx, tt.filter)
			require.Nil(t, err)
			assert.Equal(t, tt.expected, months(budgets))
			assert.Equal(t, tt.total, total)
		})
	}
}

func testPreviousBudget(t *testing.T, s store.Store) {
	ctx := context.Background()

	for _, b := range []*models.MonthlyBudget{
		budget("owner", 2024, 11),
		budget("owner", 2025, 1),
		budget("owner", 2025, 4),
		budget("owner", 2025, 9),
		budget("other", 2025, 6),
	} {
		require.Nil(t, s.CreateBudget(ctx, b))
	}

	prev, err := s.PreviousBudget(ctx, "owner", 2025, 7)
	require.Nil(t, err)
	assert.Equal(t, 4, prev.Month)

	prev, err = s.PreviousBudget(ctx, "owner", 2025, 4)
	require.Nil(t, err)
	assert.Equal(t, 1, prev.Month)

	// Earlier years are not considered
	_, err = s.PreviousBudget(ctx, "owner", 2025, 1)
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}

func testDeleteBudgetsForYear(t *testing.T, s store.Store) {
	ctx := context.Background()

	for _, b := range []*models.MonthlyBudget{
		budget("owner", 2024, 12),
		budget("owner", 2025, 1),
		budget("owner", 2025, 2),
		budget("other", 2025, 1),
	} {
		require.Nil(t, s.CreateBudget(ctx, b))
	}

	count, err := s.DeleteBudgetsForYear(ctx, "owner", 2025)
	require.Nil(t, err)
	assert.Equal(t, int64(2), count)

	count, err = s.DeleteBudgetsForYear(ctx, "owner", 2025)
	require.Nil(t, err)
	assert.Equal(t, int64(0), count)

	_, total, err := s.ListBudgets(ctx, store.BudgetFilter{OwnerID: "owner"})
	require.Nil(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = s.ListBudgets(ctx, store.BudgetFilter{OwnerID: "other"})
	require.Nil(t, err)
	assert.Equal(t, int64(1), total)
}

func testTemplates(t *testing.T, s store.Store) {
	ctx := context.Background()

	lean := &models.BudgetTemplate{
		OwnerID:      "owner",
		TemplateName: "Lean",
		NeedsItems:   models.Items{{Name: "Rent", Amount: decimal.NewFromInt(900), IsRecurring: true}},
	}
	lean.SetPercentages(allocation.Percentages{Needs: 60, Wants: 10, Savings: 30})
	require.Nil(t, s.CreateTemplate(ctx, lean))

	student := &models.BudgetTemplate{OwnerID: "owner", TemplateName: "Student"}
	student.SetPercentages(allocation.Default())
	require.Nil(t, s.CreateTemplate(ctx, student))

	foreign := &models.BudgetTemplate{OwnerID: "other", TemplateName: "Lean"}
	foreign.SetPercentages(allocation.Default())
	require.Nil(t, s.CreateTemplate(ctx, foreign))

	got, err := s.GetTemplate(ctx, lean.ID)
	require.Nil(t, err)
	assert.Equal(t, "Lean", got.TemplateName)
	assert.Equal(t, 60, got.NeedsPercentage)
	require.Len(t, got.NeedsItems, 1)
	assert.Equal(t, types.FrequencyMonthly, got.NeedsItems[0].Frequency)

	all, err := s.ListTemplates(ctx, store.TemplateFilter{OwnerID: "owner"})
	require.Nil(t, err)
	assert.Len(t, all, 2)

	filtered, err := s.ListTemplates(ctx, store.TemplateFilter{OwnerID: "owner", Name: "Le*"})
	require.Nil(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, lean.ID, filtered[0].ID)

	got.TemplateName = "Leaner"
	require.Nil(t, s.SaveTemplate(ctx, &got))
	saved, err := s.GetTemplate(ctx, lean.ID)
	require.Nil(t, err)
	assert.Equal(t, "Leaner", saved.TemplateName)

	require.Nil(t, s.DeleteTemplate(ctx, lean.ID))
	_, err = s.GetTemplate(ctx, lean.ID)
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}

func testDeleteOwner(t *testing.T, s store.Store) {
	ctx := context.Background()

	require.Nil(t, s.CreateBudget(ctx, budget("owner", 2025, 1)))
	require.Nil(t, s.CreateBudget(ctx, budget("other", 2025, 1)))

	template := &models.BudgetTemplate{OwnerID: "owner", TemplateName: "Mine"}
	template.SetPercentages(allocation.Default())
	require.Nil(t, s.CreateTemplate(ctx, template))

	require.Nil(t, s.DeleteOwner(ctx, "owner"))

	_, total, err := s.ListBudgets(ctx, store.BudgetFilter{OwnerID: "owner"})
	require.Nil(t, err)
	assert.Equal(t, int64(0), total)

	templates, err := s.ListTemplates(ctx, store.TemplateFilter{OwnerID: "owner"})
	require.Nil(t, err)
	assert.Len(t, templates, 0)

	_, total, err = s.ListBudgets(ctx, store.BudgetFilter{OwnerID: "other"})
	require.Nil(t, err)
	assert.Equal(t, int64(1), total)
}
