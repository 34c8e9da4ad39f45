// Package types implements the enumerations used by budgets and templates.
package types

import (
	"encoding/json"
	"fmt"
)

// Frequency is how often a recurring budget item occurs.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiWeekly  Frequency = "bi-weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Frequencies lists all known frequencies in ascending interval order.
var Frequencies = []Frequency{
	FrequencyWeekly,
	FrequencyBiWeekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencyYearly,
}

// Known reports if the frequency is one of the defined values.
func (f Frequency) Known() bool {
	for _, k := range Frequencies {
		if f == k {
			return true
		}
	}
	return false
}

// OrDefault returns the frequency, or monthly if it is not set.
func (f Frequency) OrDefault() Frequency {
	if f == "" {
		return FrequencyMonthly
	}
	return f
}

// RecurringType describes what kind of recurring expense an item is.
// It is informational only.
type RecurringType string

const (
	RecurringTypeSubscription RecurringType = "subscription"
	RecurringTypeInvestment   RecurringType = "investment"
	RecurringTypeInstallment  RecurringType = "installment"
	RecurringTypeOther        RecurringType = "other"
)

var RecurringTypes = []RecurringType{
	RecurringTypeSubscription,
	RecurringTypeInvestment,
	RecurringTypeInstallment,
	RecurringTypeOther,
}

// Known reports if the recurring type is one of the defined values.
func (r RecurringType) Known() bool {
	for _, k := range RecurringTypes {
		if r == k {
			return true
		}
	}
	return false
}

// OrDefault returns the recurring type, or "other" if it is not set.
func (r RecurringType) OrDefault() RecurringType {
	if r == "" {
		return RecurringTypeOther
	}
	return r
}

// Category is one of the three buckets of the allocation rule.
type Category string

const (
	CategoryNeeds   Category = "needs"
	CategoryWants   Category = "wants"
	CategorySavings Category = "savings"
)

// Categories is the fixed order in which categories are processed.
var Categories = []Category{CategoryNeeds, CategoryWants, CategorySavings}

// ParseCategory returns the Category for s.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	for _, k := range Categories {
		if c == k {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// UnmarshalJSON implements the json.Unmarshaler interface and rejects
// unknown categories.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
