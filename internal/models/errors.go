package models

import (
	"errors"
)

var (
	ErrGeneral              = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound     = errors.New("there is no")
	ErrBudgetMonthNotUnique = errors.New("budget for this month already exists")
)

// Validation errors
var (
	ErrMonthOutOfRange    = errors.New("month must be between 1 and 12")
	ErrYearOutOfRange     = errors.New("year must be between 1900 and 9999")
	ErrIncomeNegative     = errors.New("income must not be negative")
	ErrItemAmountNegative = errors.New("item amounts must not be negative")
	ErrItemNameEmpty      = errors.New("item name must not be empty")
	ErrItemFrequency      = errors.New("item frequency must be one of weekly, bi-weekly, monthly, quarterly, yearly")
	ErrItemRecurringType  = errors.New("item recurring type must be one of subscription, investment, installment, other")
	ErrTemplateNameEmpty  = errors.New("template name must not be empty")
	ErrOwnerEmpty         = errors.New("owner must be set")
)
