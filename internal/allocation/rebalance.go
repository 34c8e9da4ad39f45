package allocation

import (
	"github.com/budget-rule/backend/internal/types"
	"github.com/shopspring/decimal"
)

// others returns the two categories that are not c, in the fixed order
// needs, wants, savings.
func others(c types.Category) (types.Category, types.Category, bool) {
	switch c {
	case types.CategoryNeeds:
		return types.CategoryWants, types.CategorySavings, true
	case types.CategoryWants:
		return types.CategoryNeeds, types.CategorySavings, true
	case types.CategorySavings:
		return types.CategoryNeeds, types.CategoryWants, true
	}
	return "", "", false
}

// Rebalance sets the edited category to newValue and splits the rest of the
// 100 percent between the other two categories in proportion to their
// current values. When both are zero, the rest is split evenly.
//
// The first of the two other categories gets the rounded share, the second
// one gets whatever is left so that the result always sums to 100.
// newValue is not clamped, callers validate it.
func Rebalance(current Percentages, edited types.Category, newValue int) Percentages {
	first, second, ok := others(edited)
	if !ok {
		return current
	}

	remaining := 100 - newValue
	a := current.Get(first)
	b := current.Get(second)

	// share = round(remaining * a / (a + b)), half away from zero
	raw := decimal.NewFromInt(int64(remaining)).Div(decimal.NewFromInt(2))
	if a+b != 0 {
		raw = decimal.NewFromInt(int64(remaining * a)).Div(decimal.NewFromInt(int64(a + b)))
	}

	share := int(raw.Round(0).IntPart())

	result := current
	result.set(edited, newValue)
	result.set(first, share)
	result.set(second, remaining-share)

	return result
}
