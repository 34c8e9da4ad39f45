// Package recurring decides which budget items are carried from one month
// into another.
//
// Each frequency has a strategy that decides, based on the number of months
// between the source and the target month, if an item is carried forward.
package recurring

import (
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/types"
)

// Checker decides if an item with a given frequency is carried forward
// over monthDiff months.
type Checker interface {
	Includes(monthDiff int) bool
}

// Always carries the item into every month.
type Always struct{}

func (Always) Includes(int) bool { return true }

// Quarterly carries the item when the month difference is a multiple of three.
// Negative multiples count as well.
type Quarterly struct{}

func (Quarterly) Includes(monthDiff int) bool { return monthDiff%3 == 0 }

// Yearly carries the item when the target month is exactly twelve months
// after the source month.
type Yearly struct{}

func (Yearly) Includes(monthDiff int) bool { return monthDiff == 12 }

var checkers = map[types.Frequency]Checker{
	types.FrequencyWeekly:    Always{},
	types.FrequencyBiWeekly:  Always{},
	types.FrequencyMonthly:   Always{},
	types.FrequencyQuarterly: Quarterly{},
	types.FrequencyYearly:    Yearly{},
}

// CheckerFor returns the strategy for a frequency. Empty and unknown
// frequencies behave like monthly items.
func CheckerFor(f types.Frequency) Checker {
	if c, ok := checkers[f]; ok {
		return c
	}
	return Always{}
}

// CarryForward returns copies of the recurring items that are due in the
// target month. monthDiff is the plain difference targetMonth - sourceMonth,
// it does not take years into account.
//
// The result is never nil.
func CarryForward(items []models.BudgetItem, sourceMonth, targetMonth int) []models.BudgetItem {
	monthDiff := targetMonth - sourceMonth
	carried := make([]models.BudgetItem, 0, len(items))

	for _, item := range items {
		if !item.IsRecurring {
			continue
		}

		if CheckerFor(item.Frequency).Includes(monthDiff) {
			carried = append(carried, item)
		}
	}

	return carried
}

// CarryForwardAll applies CarryForward to each of the three category lists.
func CarryForwardAll(needs, wants, savings []models.BudgetItem, sourceMonth, targetMonth int) ([]models.BudgetItem, []models.BudgetItem, []models.BudgetItem) {
	return CarryForward(needs, sourceMonth, targetMonth),
		CarryForward(wants, sourceMonth, targetMonth),
		CarryForward(savings, sourceMonth, targetMonth)
}
