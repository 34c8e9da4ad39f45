// Package store defines the persistence interface for budgets and templates.
//
// Implementations return models.ErrResourceNotFound for missing records,
// models.ErrBudgetMonthNotUnique when a second budget for the same owner
// and month is stored and models.ErrGeneral for backend failures.
package store

import (
	"context"

	"github.com/budget-rule/backend/internal/models"
	"github.com/google/uuid"
)

// BudgetFilter selects budgets of one owner. Zero values match everything.
type BudgetFilter struct {
	OwnerID string
	Year    int
	Month   int
	Offset  int
	Limit   int // Values < 1 return all budgets
}

// TemplateFilter selects templates of one owner.
type TemplateFilter struct {
	OwnerID string
	Name    string // Glob pattern for the template name
}

// Store persists budgets and templates.
type Store interface {
	// ListBudgets returns the matching budgets, newest month first, and
	// the total number of matches ignoring offset and limit.
	ListBudgets(ctx context.Context, filter BudgetFilter) ([]models.MonthlyBudget, int64, error)
	GetBudget(ctx context.Context, id uuid.UUID) (models.MonthlyBudget, error)

	// PreviousBudget returns the latest budget of the owner in year with a
	// month before month.
	PreviousBudget(ctx context.Context, ownerID string, year, month int) (models.MonthlyBudget, error)
	BudgetExists(ctx context.Context, ownerID string, year, month int) (bool, error)
	CreateBudget(ctx context.Context, budget *models.MonthlyBudget) error
	SaveBudget(ctx context.Context, budget *models.MonthlyBudget) error
	DeleteBudget(ctx context.Context, id uuid.UUID) error

	// DeleteBudgetsForYear deletes all budgets of the owner in year and
	// returns how many were deleted.
	DeleteBudgetsForYear(ctx context.Context, ownerID string, year int) (int64, error)

	// ListTemplates returns the matching templates, newest first.
	ListTemplates(ctx context.Context, filter TemplateFilter) ([]models.BudgetTemplate, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (models.BudgetTemplate, error)
	CreateTemplate(ctx context.Context, template *models.BudgetTemplate) error
	SaveTemplate(ctx context.Context, template *models.BudgetTemplate) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error

	// DeleteOwner removes every budget and template of the owner.
	DeleteOwner(ctx context.Context, ownerID string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
