package models

import (
	"github.com/budget-rule/backend/internal/allocation"
	"gorm.io/gorm"
)

// BudgetTemplate is a reusable set of percentages and items that new
// budgets can be created from. Names do not need to be unique.
type BudgetTemplate struct {
	DefaultModel
	OwnerID           string `gorm:"index;not null"`
	TemplateName      string
	NeedsPercentage   int
	WantsPercentage   int
	SavingsPercentage int
	NeedsItems        Items `gorm:"serializer:json"`
	WantsItems        Items `gorm:"serializer:json"`
	SavingsItems      Items `gorm:"serializer:json"`
}

func (t *BudgetTemplate) BeforeSave(_ *gorm.DB) error {
	t.Normalize()
	return nil
}

// Normalize applies item defaults.
func (t *BudgetTemplate) Normalize() {
	t.NeedsItems = t.NeedsItems.normalize()
	t.WantsItems = t.WantsItems.normalize()
	t.SavingsItems = t.SavingsItems.normalize()
}

func (t BudgetTemplate) Percentages() allocation.Percentages {
	return allocation.Percentages{
		Needs:   t.NeedsPercentage,
		Wants:   t.WantsPercentage,
		Savings: t.SavingsPercentage,
	}
}

func (t *BudgetTemplate) SetPercentages(p allocation.Percentages) {
	t.NeedsPercentage = p.Needs
	t.WantsPercentage = p.Wants
	t.SavingsPercentage = p.Savings
}

// Validate checks the template for invalid values.
func (t BudgetTemplate) Validate() error {
	if t.OwnerID == "" {
		return ErrOwnerEmpty
	}

	if t.TemplateName == "" {
		return ErrTemplateNameEmpty
	}

	if err := t.Percentages().Validate(); err != nil {
		return err
	}

	for _, items := range []Items{t.NeedsItems, t.WantsItems, t.SavingsItems} {
		if err := items.Validate(); err != nil {
			return err
		}
	}

	return nil
}
