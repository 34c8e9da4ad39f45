// Package allocation implements the needs / wants / savings percentage split
// of a budget and the rebalancing that keeps it at 100 percent.
package allocation

import (
	"errors"
	"fmt"

	"github.com/budget-rule/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	ErrPercentageOutOfRange = errors.New("percentages must be between 0 and 100")
	ErrPercentageSum        = errors.New("needs, wants and savings percentages must add up to 100")
)

// Percentages is the share of income allocated to each category.
type Percentages struct {
	Needs   int `json:"needsPercentage" example:"50" minimum:"0" maximum:"100"`   // Share of income for needs
	Wants   int `json:"wantsPercentage" example:"30" minimum:"0" maximum:"100"`   // Share of income for wants
	Savings int `json:"savingsPercentage" example:"20" minimum:"0" maximum:"100"` // Share of income for savings
}

// Default returns the 50/30/20 split.
func Default() Percentages {
	return Percentages{Needs: 50, Wants: 30, Savings: 20}
}

// Sum returns the total of all three percentages.
func (p Percentages) Sum() int {
	return p.Needs + p.Wants + p.Savings
}

// IsZero reports if no percentage is set.
func (p Percentages) IsZero() bool {
	return p.Needs == 0 && p.Wants == 0 && p.Savings == 0
}

// Validate checks that each percentage is in range and that they sum to 100.
func (p Percentages) Validate() error {
	for _, v := range []int{p.Needs, p.Wants, p.Savings} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w, got %d", ErrPercentageOutOfRange, v)
		}
	}

	if p.Sum() != 100 {
		return fmt.Errorf("%w, got %d", ErrPercentageSum, p.Sum())
	}

	return nil
}

// Get returns the percentage for a category.
func (p Percentages) Get(c types.Category) int {
	switch c {
	case types.CategoryNeeds:
		return p.Needs
	case types.CategoryWants:
		return p.Wants
	case types.CategorySavings:
		return p.Savings
	}
	return 0
}

func (p *Percentages) set(c types.Category, v int) {
	switch c {
	case types.CategoryNeeds:
		p.Needs = v
	case types.CategoryWants:
		p.Wants = v
	case types.CategorySavings:
		p.Savings = v
	}
}

// Amounts is a decimal value per category.
type Amounts struct {
	Needs   decimal.Decimal `json:"needs" example:"1500"`
	Wants   decimal.Decimal `json:"wants" example:"900"`
	Savings decimal.Decimal `json:"savings" example:"600"`
}

// Total returns the sum over all categories.
func (a Amounts) Total() decimal.Decimal {
	return a.Needs.Add(a.Wants).Add(a.Savings)
}

// Targets returns the amount of income each category is allotted.
func (p Percentages) Targets(income decimal.Decimal) Amounts {
	hundred := decimal.NewFromInt(100)

	return Amounts{
		Needs:   income.Mul(decimal.NewFromInt(int64(p.Needs))).Div(hundred),
		Wants:   income.Mul(decimal.NewFromInt(int64(p.Wants))).Div(hundred),
		Savings: income.Mul(decimal.NewFromInt(int64(p.Savings))).Div(hundred),
	}
}
