package models

import (
	"fmt"

	"github.com/budget-rule/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetItem is a single line item of a budget or template.
//
// Items have no identity beyond their position in the list they are in.
type BudgetItem struct {
	Name          string              `json:"name" example:"Rent"`                                                                                    // Name of the item
	Amount        decimal.Decimal     `json:"amount" example:"1200" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`  // Amount of the item
	IsRecurring   bool                `json:"isRecurring" example:"true" default:"false"`                                                             // Is the item carried into new months?
	Frequency     types.Frequency     `json:"frequency" example:"monthly" enums:"weekly,bi-weekly,monthly,quarterly,yearly" default:"monthly"`        // How often the item recurs
	RecurringType types.RecurringType `json:"recurringType" example:"subscription" enums:"subscription,investment,installment,other" default:"other"` // What kind of recurring item it is
	Provider      string              `json:"provider" example:"Landlord Inc."`                                                                       // Who the item is paid to
}

// withDefaults returns the item with frequency and recurring type set
// to their defaults if they are empty.
func (i BudgetItem) withDefaults() BudgetItem {
	i.Frequency = i.Frequency.OrDefault()
	i.RecurringType = i.RecurringType.OrDefault()
	return i
}

// Validate checks the item for invalid values.
func (i BudgetItem) Validate() error {
	if i.Name == "" {
		return ErrItemNameEmpty
	}

	if i.Amount.IsNegative() {
		return fmt.Errorf("%w, got %s for %q", ErrItemAmountNegative, i.Amount, i.Name)
	}

	if !i.Frequency.OrDefault().Known() {
		return fmt.Errorf("%w, got %q for %q", ErrItemFrequency, i.Frequency, i.Name)
	}

	if !i.RecurringType.OrDefault().Known() {
		return fmt.Errorf("%w, got %q for %q", ErrItemRecurringType, i.RecurringType, i.Name)
	}

	return nil
}

// Items is a list of budget items.
type Items []BudgetItem

// Total returns the sum of all item amounts.
func (items Items) Total() decimal.Decimal {
	total := decimal.Zero
	for _, i := range items {
		total = total.Add(i.Amount)
	}
	return total
}

// Validate validates every item in the list.
func (items Items) Validate() error {
	for _, i := range items {
		if err := i.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// normalize returns a copy of the list with defaults applied. It never
// returns nil so that empty lists are stored and encoded as [].
func (items Items) normalize() Items {
	out := make(Items, 0, len(items))
	for _, i := range items {
		out = append(out, i.withDefaults())
	}
	return out
}

// Clone returns a copy of the list that shares no memory with items.
func (items Items) Clone() Items {
	out := make(Items, len(items))
	copy(out, items)
	return out
}
