package models_test

import (
	"github.com/budget-rule/backend/internal/allocation"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/types"
	"github.com/shopspring/decimal"
)

func validBudget() models.MonthlyBudget {
	b := models.MonthlyBudget{
		OwnerID: "user-a",
		Year:    2025,
		Month:   1,
		Income:  decimal.NewFromInt(3000),
		NeedsItems: models.Items{
			{Name: "Rent", Amount: decimal.NewFromInt(1200), IsRecurring: true},
			{Name: "Groceries", Amount: decimal.NewFromFloat(250.5)},
		},
		WantsItems: models.Items{
			{Name: "Streaming", Amount: decimal.NewFromInt(15), IsRecurring: true, Frequency: types.FrequencyMonthly, RecurringType: types.RecurringTypeSubscription},
		},
	}
	b.SetPercentages(allocation.Default())
	return b
}

func (suite *TestSuiteStandard) TestBudgetActualsRecomputedOnSave() {
	b := validBudget()

	// Stale values are overwritten
	b.ActualNeeds = decimal.NewFromInt(1)
	b.ActualSavings = decimal.NewFromInt(99)

	suite.Require().Nil(models.DB.Create(&b).Error)

	var stored models.MonthlyBudget
	suite.Require().Nil(models.DB.First(&stored, "id = ?", b.ID).Error)

	suite.Assert().True(stored.ActualNeeds.Equal(decimal.NewFromFloat(1450.5)), stored.ActualNeeds.String())
	suite.Assert().True(stored.ActualWants.Equal(decimal.NewFromInt(15)), stored.ActualWants.String())
	suite.Assert().True(stored.ActualSavings.IsZero(), stored.ActualSavings.String())
	suite.Assert().True(stored.Remaining().Equal(decimal.NewFromFloat(1534.5)), stored.Remaining().String())

	// Defaults are applied to items
	suite.Assert().Equal(types.FrequencyMonthly, stored.NeedsItems[1].Frequency)
	suite.Assert().Equal(types.RecurringTypeOther, stored.NeedsItems[1].RecurringType)

	// Empty lists are stored as empty lists
	suite.Assert().NotNil(stored.SavingsItems)
	suite.Assert().Len(stored.SavingsItems, 0)

	// Updating items updates the totals
	stored.SavingsItems = append(stored.SavingsItems, models.BudgetItem{Name: "ETF", Amount: decimal.NewFromInt(300)})
	suite.Require().Nil(models.DB.Save(&stored).Error)

	var updated models.MonthlyBudget
	suite.Require().Nil(models.DB.First(&updated, "id = ?", b.ID).Error)
	suite.Assert().True(updated.ActualSavings.Equal(decimal.NewFromInt(300)), updated.ActualSavings.String())
}

func (suite *TestSuiteStandard) TestBudgetValidate() {
	tests := []struct {
		name   string
		modify func(*models.MonthlyBudget)
		err    error
	}{
		{"No owner", func(b *models.MonthlyBudget) { b.OwnerID = "" }, models.ErrOwnerEmpty},
		{"Month 0", func(b *models.MonthlyBudget) { b.Month = 0 }, models.ErrMonthOutOfRange},
		{"Month 13", func(b *models.MonthlyBudget) { b.Month = 13 }, models.ErrMonthOutOfRange},
		{"Year", func(b *models.MonthlyBudget) { b.Year = 12 }, models.ErrYearOutOfRange},
		{"Income", func(b *models.MonthlyBudget) { b.Income = decimal.NewFromInt(-1) }, models.ErrIncomeNegative},
		{"Percentage sum", func(b *models.MonthlyBudget) { b.NeedsPercentage = 60 }, allocation.ErrPercentageSum},
		{"Negative amount", func(b *models.MonthlyBudget) { b.WantsItems[0].Amount = decimal.NewFromInt(-5) }, models.ErrItemAmountNegative},
		{"Empty name", func(b *models.MonthlyBudget) { b.NeedsItems[0].Name = "" }, models.ErrItemNameEmpty},
		{"Frequency", func(b *models.MonthlyBudget) { b.NeedsItems[0].Frequency = "daily" }, models.ErrItemFrequency},
		{"Recurring type", func(b *models.MonthlyBudget) { b.NeedsItems[0].RecurringType = "loan" }, models.ErrItemRecurringType},
	}

	suite.Assert().Nil(validBudget().Validate())

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			b := validBudget()
			tt.modify(&b)
			suite.Assert().ErrorIs(b.Validate(), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTemplateValidate() {
	t := models.BudgetTemplate{OwnerID: "user-a", TemplateName: "Lean"}
	t.SetPercentages(allocation.Percentages{Needs: 60, Wants: 10, Savings: 30})
	suite.Assert().Nil(t.Validate())

	t.TemplateName = ""
	suite.Assert().ErrorIs(t.Validate(), models.ErrTemplateNameEmpty)

	t.TemplateName = "Lean"
	t.WantsPercentage = 11
	suite.Assert().ErrorIs(t.Validate(), allocation.ErrPercentageSum)
}

func (suite *TestSuiteStandard) TestItemsClone() {
	items := models.Items{{Name: "Rent", Amount: decimal.NewFromInt(1)}}
	clone := items.Clone()
	clone[0].Name = "Changed"

	suite.Assert().Equal("Rent", items[0].Name)
}
