package models

import (
	"fmt"

	"github.com/budget-rule/backend/internal/allocation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyBudget is the budget of one owner for one month of one year.
//
// There is at most one budget per owner, year and month.
type MonthlyBudget struct {
	DefaultModel
	OwnerID           string          `gorm:"uniqueIndex:idx_budget_owner_month,priority:1;not null"`
	Year              int             `gorm:"uniqueIndex:idx_budget_owner_month,priority:2"`
	Month             int             `gorm:"uniqueIndex:idx_budget_owner_month,priority:3"`
	Income            decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	NeedsPercentage   int
	WantsPercentage   int
	SavingsPercentage int
	NeedsItems        Items           `gorm:"serializer:json"`
	WantsItems        Items           `gorm:"serializer:json"`
	SavingsItems      Items           `gorm:"serializer:json"`
	ActualNeeds       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ActualWants       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ActualSavings     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Notes             string
	TemplateID        uuid.UUID `gorm:"type:text"` // advisory only, templates may be deleted
}

// BeforeSave recomputes the derived totals so that they always match the items.
func (b *MonthlyBudget) BeforeSave(_ *gorm.DB) error {
	b.Normalize()
	return nil
}

// Normalize applies item defaults and recomputes the actual totals.
func (b *MonthlyBudget) Normalize() {
	b.NeedsItems = b.NeedsItems.normalize()
	b.WantsItems = b.WantsItems.normalize()
	b.SavingsItems = b.SavingsItems.normalize()

	b.ActualNeeds = b.NeedsItems.Total()
	b.ActualWants = b.WantsItems.Total()
	b.ActualSavings = b.SavingsItems.Total()
}

// Percentages returns the allocation split of the budget.
func (b MonthlyBudget) Percentages() allocation.Percentages {
	return allocation.Percentages{
		Needs:   b.NeedsPercentage,
		Wants:   b.WantsPercentage,
		Savings: b.SavingsPercentage,
	}
}

// SetPercentages sets the allocation split of the budget.
func (b *MonthlyBudget) SetPercentages(p allocation.Percentages) {
	b.NeedsPercentage = p.Needs
	b.WantsPercentage = p.Wants
	b.SavingsPercentage = p.Savings
}

// Actuals returns the sum of the items per category.
func (b MonthlyBudget) Actuals() allocation.Amounts {
	return allocation.Amounts{
		Needs:   b.ActualNeeds,
		Wants:   b.ActualWants,
		Savings: b.ActualSavings,
	}
}

// Remaining is the income not yet allocated to any item.
func (b MonthlyBudget) Remaining() decimal.Decimal {
	return b.Income.Sub(b.Actuals().Total())
}

// HasItems reports if any of the item lists has an item.
func (b MonthlyBudget) HasItems() bool {
	return len(b.NeedsItems)+len(b.WantsItems)+len(b.SavingsItems) > 0
}

// Validate checks the budget for invalid values.
func (b MonthlyBudget) Validate() error {
	if b.OwnerID == "" {
		return ErrOwnerEmpty
	}

	if b.Month < 1 || b.Month > 12 {
		return fmt.Errorf("%w, got %d", ErrMonthOutOfRange, b.Month)
	}

	if b.Year < 1900 || b.Year > 9999 {
		return fmt.Errorf("%w, got %d", ErrYearOutOfRange, b.Year)
	}

	if b.Income.IsNegative() {
		return ErrIncomeNegative
	}

	if err := b.Percentages().Validate(); err != nil {
		return err
	}

	for _, items := range []Items{b.NeedsItems, b.WantsItems, b.SavingsItems} {
		if err := items.Validate(); err != nil {
			return err
		}
	}

	return nil
}
