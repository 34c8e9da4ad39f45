package budget_test

import (
	"testing"

	"github.com/budget-rule/backend/internal/allocation"
	"github.com/budget-rule/backend/internal/authz"
	"github.com/budget-rule/backend/internal/budget"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/store"
	"github.com/budget-rule/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func january() models.MonthlyBudget {
	b := models.MonthlyBudget{
		Year:   2025,
		Month:  1,
		Income: decimal.NewFromInt(5000),
		NeedsItems: models.Items{
			{Name: "Rent", Amount: decimal.NewFromInt(1500), IsRecurring: true, Frequency: types.FrequencyMonthly},
			{Name: "Car repair", Amount: decimal.NewFromInt(400)},
		},
		WantsItems: models.Items{
			{Name: "Streaming", Amount: decimal.NewFromInt(15), IsRecurring: true, Frequency: types.FrequencyMonthly, RecurringType: types.RecurringTypeSubscription},
			{Name: "Gym", Amount: decimal.NewFromInt(90), IsRecurring: true, Frequency: types.FrequencyQuarterly},
		},
		SavingsItems: models.Items{
			{Name: "Insurance", Amount: decimal.NewFromInt(600), IsRecurring: true, Frequency: types.FrequencyYearly},
		},
	}
	b.SetPercentages(allocation.Percentages{Needs: 60, Wants: 25, Savings: 15})
	return b
}

func (suite *TestSuiteStandard) createJanuary() models.MonthlyBudget {
	b, err := suite.service.CreateBudget(suite.ctx, alice, january(), budget.CreateOptions{})
	suite.Require().Nil(err)
	return b
}

func (suite *TestSuiteStandard) TestCreateBudget() {
	b := january()
	b.OwnerID = "mallory"
	b.SetPercentages(allocation.Percentages{})

	created, err := suite.service.CreateBudget(suite.ctx, alice, b, budget.InheritAll)
	suite.Require().Nil(err)

	suite.Assert().NotEqual(uuid.Nil, created.ID)
	suite.Assert().Equal("alice", created.OwnerID, "owner must always be the caller")
	suite.Assert().Equal(allocation.Default(), created.Percentages(), "unset percentages must default to 50/30/20")
	suite.Assert().True(created.ActualNeeds.Equal(decimal.NewFromInt(1900)))
	suite.Assert().True(created.ActualWants.Equal(decimal.NewFromInt(105)))
	suite.Assert().True(created.ActualSavings.Equal(decimal.NewFromInt(600)))
}

func (suite *TestSuiteStandard) TestCreateBudgetConflict() {
	suite.createJanuary()

	_, err := suite.service.CreateBudget(suite.ctx, alice, january(), budget.InheritAll)
	suite.Assert().ErrorIs(err, models.ErrBudgetMonthNotUnique)

	// Other owners have their own months
	_, err = suite.service.CreateBudget(suite.ctx, bob, january(), budget.InheritAll)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestCreateBudgetInvalid() {
	b := january()
	b.Month = 13

	_, err := suite.service.CreateBudget(suite.ctx, alice, b, budget.InheritAll)
	suite.Assert().ErrorIs(err, models.ErrMonthOutOfRange)

	b = january()
	b.SetPercentages(allocation.Percentages{Needs: 50, Wants: 50, Savings: 50})
	_, err = suite.service.CreateBudget(suite.ctx, alice, b, budget.CreateOptions{})
	suite.Assert().ErrorIs(err, allocation.ErrPercentageSum)
}

func (suite *TestSuiteStandard) TestCreateBudgetUnauthenticated() {
	_, err := suite.service.CreateBudget(suite.ctx, authz.Identity{}, january(), budget.InheritAll)
	suite.Assert().ErrorIs(err, authz.ErrUnauthenticated)
}

func (suite *TestSuiteStandard) TestCreateBudgetCarryForward() {
	suite.createJanuary()

	tests := []struct {
		name    string
		month   int
		needs   []string
		wants   []string
		savings []string
	}{
		{"February", 2, []string{"Rent"}, []string{"Streaming"}, []string{}},
		{"April", 4, []string{"Rent"}, []string{"Streaming", "Gym"}, []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			created, err := suite.service.CreateBudget(suite.ctx, alice, models.MonthlyBudget{Year: 2025, Month: tt.month}, budget.InheritAll)
			suite.Require().Nil(err)

			suite.Assert().True(created.Income.Equal(decimal.NewFromInt(5000)), "income must be inherited")
			suite.Assert().Equal(allocation.Percentages{Needs: 60, Wants: 25, Savings: 15}, created.Percentages())
			suite.Assert().Equal(tt.needs, names(created.NeedsItems))
			suite.Assert().Equal(tt.wants, names(created.WantsItems))
			suite.Assert().Equal(tt.savings, names(created.SavingsItems))

			// Clean up so that January stays the source for the next case
			suite.Require().Nil(suite.service.DeleteBudget(suite.ctx, alice, created.ID))
		})
	}
}

func (suite *TestSuiteStandard) TestCreateBudgetCarryForwardSameYearOnly() {
	suite.createJanuary()

	created, err := suite.service.CreateBudget(suite.ctx, alice, models.MonthlyBudget{Year: 2026, Month: 1}, budget.InheritAll)
	suite.Require().Nil(err)

	suite.Assert().True(created.Income.IsZero())
	suite.Assert().Equal(allocation.Default(), created.Percentages())
	suite.Assert().False(created.HasItems())
}

func (suite *TestSuiteStandard) TestCreateBudgetWithoutInheritance() {
	suite.createJanuary()

	created, err := suite.service.CreateBudget(suite.ctx, alice, models.MonthlyBudget{Year: 2025, Month: 2}, budget.CreateOptions{})
	suite.Require().Nil(err)

	suite.Assert().True(created.Income.IsZero())
	suite.Assert().Equal(allocation.Default(), created.Percentages())
	suite.Assert().False(created.HasItems())
}

func (suite *TestSuiteStandard) TestCreateBudgetFromTemplate() {
	suite.createJanuary()

	tpl := models.BudgetTemplate{
		TemplateName: "Lean",
		NeedsItems:   models.Items{{Name: "Groceries", Amount: decimal.NewFromInt(300)}},
	}
	tpl.SetPercentages(allocation.Percentages{Needs: 70, Wants: 10, Savings: 20})
	tpl, err := suite.service.CreateTemplate(suite.ctx, alice, tpl)
	suite.Require().Nil(err)

	created, err := suite.service.CreateBudget(suite.ctx, alice, models.MonthlyBudget{Year: 2025, Month: 2, TemplateID: tpl.ID}, budget.InheritAll)
	suite.Require().Nil(err)

	suite.Assert().Equal(tpl.Percentages(), created.Percentages())
	suite.Assert().Equal([]string{"Groceries"}, names(created.NeedsItems))
	suite.Assert().Equal([]string{}, names(created.WantsItems))
	suite.Assert().True(created.Income.Equal(decimal.NewFromInt(5000)), "income still comes from the previous month")
	suite.Assert().Equal(tpl.ID, created.TemplateID)

	// Templates of other owners cannot be used
	_, err = suite.service.CreateBudget(suite.ctx, bob, models.MonthlyBudget{Year: 2025, Month: 2, TemplateID: tpl.ID}, budget.InheritAll)
	suite.Assert().ErrorIs(err, budget.ErrTemplateNotOwned)
}

func (suite *TestSuiteStandard) TestGetBudgetOwnership() {
	b := suite.createJanuary()

	got, err := suite.service.GetBudget(suite.ctx, alice, b.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(b.ID, got.ID)

	_, err = suite.service.GetBudget(suite.ctx, bob, b.ID)
	suite.Assert().ErrorIs(err, authz.ErrForbidden)

	_, err = suite.service.GetBudget(suite.ctx, alice, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.service.GetBudget(suite.ctx, alice, uuid.Nil)
	suite.Assert().ErrorIs(err, budget.ErrIDRequired)
}

func (suite *TestSuiteStandard) TestListBudgetsOnlyOwn() {
	suite.createJanuary()
	_, err := suite.service.CreateBudget(suite.ctx, bob, january(), budget.CreateOptions{})
	suite.Require().Nil(err)

	budgets, total, err := suite.service.ListBudgets(suite.ctx, alice, store.BudgetFilter{OwnerID: "bob"})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), total)
	suite.Assert().Equal("alice", budgets[0].OwnerID)
}

func (suite *TestSuiteStandard) TestReplaceBudget() {
	b := suite.createJanuary()

	replacement := models.MonthlyBudget{
		Year:         2025,
		Month:        3,
		Income:       decimal.NewFromInt(4000),
		SavingsItems: models.Items{{Name: "ETF", Amount: decimal.NewFromInt(800)}},
		OwnerID:      "bob",
	}
	replacement.SetPercentages(allocation.Default())

	replaced, err := suite.service.ReplaceBudget(suite.ctx, alice, b.ID, replacement)
	suite.Require().Nil(err)
	suite.Assert().Equal(b.ID, replaced.ID)
	suite.Assert().Equal("alice", replaced.OwnerID)
	suite.Assert().Equal(3, replaced.Month)
	suite.Assert().True(replaced.ActualNeeds.IsZero())
	suite.Assert().True(replaced.ActualSavings.Equal(decimal.NewFromInt(800)))

	got, err := suite.service.GetBudget(suite.ctx, alice, b.ID)
	suite.Require().Nil(err)
	suite.Assert().True(got.Remaining().Equal(decimal.NewFromInt(3200)))

	_, err = suite.service.ReplaceBudget(suite.ctx, bob, b.ID, replacement)
	suite.Assert().ErrorIs(err, authz.ErrForbidden)
}

func (suite *TestSuiteStandard) TestReplaceBudgetMonthTaken() {
	b := suite.createJanuary()
	_, err := suite.service.CreateBudget(suite.ctx, alice, models.MonthlyBudget{Year: 2025, Month: 2}, budget.CreateOptions{})
	suite.Require().Nil(err)

	moved := january()
	moved.Month = 2
	_, err = suite.service.ReplaceBudget(suite.ctx, alice, b.ID, moved)
	suite.Assert().ErrorIs(err, models.ErrBudgetMonthNotUnique)
}

func (suite *TestSuiteStandard) TestRebalanceBudget() {
	b := suite.createJanuary()

	rebalanced, err := suite.service.RebalanceBudget(suite.ctx, alice, b.ID, types.CategoryNeeds, 50)
	suite.Require().Nil(err)
	suite.Assert().Equal(allocation.Percentages{Needs: 50, Wants: 31, Savings: 19}, rebalanced.Percentages())

	got, err := suite.service.GetBudget(suite.ctx, alice, b.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(rebalanced.Percentages(), got.Percentages())

	_, err = suite.service.RebalanceBudget(suite.ctx, alice, b.ID, types.CategoryNeeds, 101)
	suite.Assert().ErrorIs(err, budget.ErrValueOutOfRange)

	_, err = suite.service.RebalanceBudget(suite.ctx, bob, b.ID, types.CategoryNeeds, 10)
	suite.Assert().ErrorIs(err, authz.ErrForbidden)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	b := suite.createJanuary()

	suite.Assert().ErrorIs(suite.service.DeleteBudget(suite.ctx, bob, b.ID), authz.ErrForbidden)
	suite.Require().Nil(suite.service.DeleteBudget(suite.ctx, alice, b.ID))

	_, err := suite.service.GetBudget(suite.ctx, alice, b.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteBudgetsForYear() {
	for _, month := range []int{1, 2, 3} {
		_, err := suite.service.CreateBudget(suite.ctx, alice, models.MonthlyBudget{Year: 2024, Month: month}, budget.CreateOptions{})
		suite.Require().Nil(err)
	}
	suite.createJanuary()
	_, err := suite.service.CreateBudget(suite.ctx, bob, models.MonthlyBudget{Year: 2024, Month: 1}, budget.CreateOptions{})
	suite.Require().Nil(err)

	count, err := suite.service.DeleteBudgetsForYear(suite.ctx, alice, 2024)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(3), count)

	_, total, err := suite.service.ListBudgets(suite.ctx, alice, store.BudgetFilter{})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), total)

	_, total, err = suite.service.ListBudgets(suite.ctx, bob, store.BudgetFilter{})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), total)

	_, err = suite.service.DeleteBudgetsForYear(suite.ctx, alice, 0)
	suite.Assert().ErrorIs(err, budget.ErrYearRequired)
}

func (suite *TestSuiteStandard) TestDeleteEverything() {
	suite.createJanuary()
	_, err := suite.service.CreateTemplate(suite.ctx, alice, models.BudgetTemplate{TemplateName: "Default"})
	suite.Require().Nil(err)
	_, err = suite.service.CreateBudget(suite.ctx, bob, january(), budget.CreateOptions{})
	suite.Require().Nil(err)

	suite.Require().Nil(suite.service.DeleteEverything(suite.ctx, alice))

	_, total, err := suite.service.ListBudgets(suite.ctx, alice, store.BudgetFilter{})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), total)

	templates, err := suite.service.ListTemplates(suite.ctx, alice, store.TemplateFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(templates, 0)

	_, total, err = suite.service.ListBudgets(suite.ctx, bob, store.BudgetFilter{})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), total)
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	_, err := suite.service.CreateBudget(suite.ctx, alice, january(), budget.InheritAll)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func names(items models.Items) []string {
	n := []string{}
	for _, i := range items {
		n = append(n, i.Name)
	}
	return n
}
